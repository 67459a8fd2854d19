package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	carrierDocumentExpiryJob *CarrierDocumentExpiryJob
}

func NewJobManager(
	checker CarrierDocumentChecker,
	carrierExpirySchedule string,
	carrierExpiryWindow time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		carrierDocumentExpiryJob: NewCarrierDocumentExpiryJob(
			checker, carrierExpirySchedule, carrierExpiryWindow, logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.carrierDocumentExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start carrier document expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.carrierDocumentExpiryJob.Stop()
}
