package jobs

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/carrier"

	"github.com/robfig/cron/v3"
)

const (
	DefaultCarrierExpirySchedule = "0 0 6 * * *"
	DefaultCarrierExpiryWindow   = 30 * 24 * time.Hour

	carrierExpiryTimeout = time.Minute
)

// CarrierDocumentChecker is satisfied by *commands.CheckCarrierDocumentsCommandHandler.
type CarrierDocumentChecker interface {
	Handle(ctx context.Context, cmd commands.CheckCarrierDocumentsCommand) ([]commands.CarrierDocumentAlert, error)
}

// CarrierDocumentExpiryJob warns about carriers whose insurance or licence
// runs out within the configured window.
type CarrierDocumentExpiryJob struct {
	checker  CarrierDocumentChecker
	schedule string
	window   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCarrierDocumentExpiryJob uses a six-field cron schedule (with seconds).
// Empty schedule and zero window fall back to the defaults.
func NewCarrierDocumentExpiryJob(
	checker CarrierDocumentChecker,
	schedule string,
	window time.Duration,
	logger *slog.Logger,
) *CarrierDocumentExpiryJob {
	if strings.TrimSpace(schedule) == "" {
		schedule = DefaultCarrierExpirySchedule
	}
	if window <= 0 {
		window = DefaultCarrierExpiryWindow
	}
	return &CarrierDocumentExpiryJob{
		checker:  checker,
		schedule: schedule,
		window:   window,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "carrier_document_expiry_job"),
	}
}

func (j *CarrierDocumentExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Carrier document expiry job started",
		"schedule", j.schedule,
		"window", j.window.String(),
	)
	return nil
}

// Stop waits for a running check to finish.
func (j *CarrierDocumentExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Carrier document expiry job stopped")
}

func (j *CarrierDocumentExpiryJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), carrierExpiryTimeout)
	defer cancel()

	if _, err := j.Check(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Carrier document expiry job failed", "error", err)
	}
}

// Check runs one pass and logs a warning per affected carrier.
func (j *CarrierDocumentExpiryJob) Check(ctx context.Context) ([]commands.CarrierDocumentAlert, error) {
	cmd, err := commands.NewCheckCarrierDocumentsCommand(j.window)
	if err != nil {
		return nil, err
	}

	alerts, err := j.checker.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	for _, a := range alerts {
		j.logger.WarnContext(ctx, "carrier documents expiring",
			"carrier_id", a.CarrierID.String(),
			"short_name", a.ShortName,
			"expiring", documentNames(a.Expiring),
			"expired", documentNames(a.Expired),
		)
	}
	return alerts, nil
}

func documentNames(docs []carrier.Document) []string {
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.String()
	}
	return names
}
