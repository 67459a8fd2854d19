package commands

import (
	"context"
	"log/slog"
	"time"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
)

// CarrierDocumentAlert names a carrier with documents that run out inside
// the checked window. Expired lists those that are already invalid today.
type CarrierDocumentAlert struct {
	CarrierID kernel.UUID
	ShortName string
	Expiring  []carrier.Document
	Expired   []carrier.Document
}

type CheckCarrierDocumentsCommandHandler struct {
	uowFactory CarrierUoWFactory
	clock      Clock
	logger     *slog.Logger
}

func NewCheckCarrierDocumentsCommandHandler(
	uowFactory CarrierUoWFactory,
	clock Clock,
	logger *slog.Logger,
) CheckCarrierDocumentsCommandHandler {
	return CheckCarrierDocumentsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "CheckCarrierDocumentsCommandHandler"),
	}
}

// Handle returns one alert per carrier, ordered as the repository returns
// them. It only reads, so no transaction is opened.
func (h *CheckCarrierDocumentsCommandHandler) Handle(
	ctx context.Context,
	cmd CheckCarrierDocumentsCommand,
) ([]CarrierDocumentAlert, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock()
	cutoff := carrier.CutoffDay(now, cmd.Window())

	carriers, err := h.uowFactory.Create().CarrierRepository().GetAllWithDocumentsExpiringBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	alerts := make([]CarrierDocumentAlert, 0, len(carriers))
	for _, c := range carriers {
		expiring := c.DocumentsExpiringWithin(now, cmd.Window())
		if len(expiring) == 0 {
			continue
		}
		alerts = append(alerts, CarrierDocumentAlert{
			CarrierID: c.ID(),
			ShortName: c.ShortName(),
			Expiring:  expiring,
			Expired:   c.ExpiredDocumentsOn(now),
		})
	}

	h.logger.DebugContext(ctx, "carrier documents checked",
		"cutoff", cutoff.Format(time.DateOnly),
		"alerts", len(alerts),
	)
	return alerts, nil
}
