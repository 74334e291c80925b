package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	capacityAuditJob *CapacityAuditJob
}

func NewJobManager(capacityAuditJob *CapacityAuditJob) *JobManager {
	return &JobManager{
		capacityAuditJob: capacityAuditJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.capacityAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start capacity audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.capacityAuditJob.Stop()
}
