// Package job contains the scheduled background jobs of the web server.
package job

import (
	"course-admin/database"
	"course-admin/logger"
)

// CheckpointJob flushes the SQLite write-ahead log back into the main
// database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint job err:", err)
	}
}
