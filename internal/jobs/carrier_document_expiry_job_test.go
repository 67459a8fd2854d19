package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCarrierDocumentChecker struct{ mock.Mock }

func (m *MockCarrierDocumentChecker) Handle(
	ctx context.Context,
	cmd commands.CheckCarrierDocumentsCommand,
) ([]commands.CarrierDocumentAlert, error) {
	args := m.Called(ctx, cmd)
	alerts, _ := args.Get(0).([]commands.CarrierDocumentAlert)
	return alerts, args.Error(1)
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func windowIs(window time.Duration) any {
	return mock.MatchedBy(func(cmd commands.CheckCarrierDocumentsCommand) bool {
		return cmd.Validate() == nil && cmd.Window() == window
	})
}

func TestCarrierDocumentExpiryJob_Check_LogsEveryAlert(t *testing.T) {
	ctx := t.Context()
	logger, buf := bufferLogger()
	id := kernel.NewUUID()

	checker := new(MockCarrierDocumentChecker)
	checker.On("Handle", ctx, windowIs(72*time.Hour)).Return([]commands.CarrierDocumentAlert{{
		CarrierID: id,
		ShortName: "NORDIC",
		Expiring:  []carrier.Document{carrier.Insurance, carrier.Licence},
		Expired:   []carrier.Document{carrier.Licence},
	}}, nil).Once()

	job := jobs.NewCarrierDocumentExpiryJob(checker, "", 72*time.Hour, logger)

	alerts, err := job.Check(ctx)

	require.NoError(t, err)
	assert.Len(t, alerts, 1)
	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"component":"carrier_document_expiry_job"`)
	assert.Contains(t, out, id.String())
	assert.Contains(t, out, `"expiring":["INSURANCE","LICENCE"]`)
	assert.Contains(t, out, `"expired":["LICENCE"]`)
	checker.AssertExpectations(t)
}

func TestCarrierDocumentExpiryJob_Check_DefaultWindow(t *testing.T) {
	ctx := t.Context()
	logger, buf := bufferLogger()

	checker := new(MockCarrierDocumentChecker)
	checker.On("Handle", ctx, windowIs(jobs.DefaultCarrierExpiryWindow)).Return(nil, nil).Once()

	job := jobs.NewCarrierDocumentExpiryJob(checker, "", 0, logger)

	alerts, err := job.Check(ctx)

	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.NotContains(t, buf.String(), `"level":"WARN"`)
	checker.AssertExpectations(t)
}

func TestCarrierDocumentExpiryJob_Check_Error(t *testing.T) {
	ctx := t.Context()
	logger, _ := bufferLogger()
	boom := errors.New("database is down")

	checker := new(MockCarrierDocumentChecker)
	checker.On("Handle", ctx, mock.Anything).Return(nil, boom).Once()

	job := jobs.NewCarrierDocumentExpiryJob(checker, "", time.Hour, logger)

	_, err := job.Check(ctx)

	require.ErrorIs(t, err, boom)
}

func TestCarrierDocumentExpiryJob_StartStop(t *testing.T) {
	logger, buf := bufferLogger()
	checker := new(MockCarrierDocumentChecker)

	job := jobs.NewCarrierDocumentExpiryJob(checker, "0 0 6 * * *", time.Hour, logger)

	require.NoError(t, job.Start())
	job.Stop()

	assert.Contains(t, buf.String(), "Carrier document expiry job started")
	assert.Contains(t, buf.String(), "Carrier document expiry job stopped")
	checker.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCarrierDocumentExpiryJob_Start_InvalidSchedule(t *testing.T) {
	logger, _ := bufferLogger()

	// five fields are rejected by a parser that expects seconds
	job := jobs.NewCarrierDocumentExpiryJob(new(MockCarrierDocumentChecker), "0 6 * * *", time.Hour, logger)

	require.Error(t, job.Start())
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	logger, _ := bufferLogger()

	jm := jobs.NewJobManager(new(MockCarrierDocumentChecker), "", 0, logger)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	bad := jobs.NewJobManager(new(MockCarrierDocumentChecker), "not a schedule", 0, logger)
	require.ErrorContains(t, bad.StartAll(), "carrier document expiry job")
}
