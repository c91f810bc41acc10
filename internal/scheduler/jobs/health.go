package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/ohaeng/backend/pkg/database"
	"github.com/wonny/ohaeng/backend/pkg/logger"
)

// HealthChecker pkg/database.DB
type HealthChecker interface {
	HealthCheck(ctx context.Context) (*database.HealthStatus, error)
}

// DBHealthJob logs connection pool stats periodically
type DBHealthJob struct {
	db     HealthChecker
	logger *logger.Logger
}

// NewDBHealthJob creates a new health job
func NewDBHealthJob(db HealthChecker, log *logger.Logger) *DBHealthJob {
	return &DBHealthJob{
		db:     db,
		logger: log.Component("job.db_health"),
	}
}

// Name returns the job name
func (j *DBHealthJob) Name() string {
	return "db_health"
}

// Schedule returns the cron schedule (every 10 minutes)
func (j *DBHealthJob) Schedule() string {
	return "0 */10 * * * *"
}

// Run pings the database and logs pool stats
func (j *DBHealthJob) Run(ctx context.Context) error {
	status, err := j.db.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("database unhealthy: %w", err)
	}

	j.logger.WithFields(map[string]interface{}{
		"response_time": status.ResponseTime,
		"total_conns":   status.Stats.TotalConns,
		"idle_conns":    status.Stats.IdleConns,
	}).Debug("Database healthy")

	return nil
}
