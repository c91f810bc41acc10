package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/ohaeng/backend/internal/profile"
	"github.com/wonny/ohaeng/backend/internal/service"
	"github.com/wonny/ohaeng/backend/pkg/logger"
)

// MemberLister 사전 계산 대상 멤버
type MemberLister interface {
	ListAll(ctx context.Context) ([]profile.Member, error)
}

// Precomputer 멤버별 일간 운세 생성 (service.ForecastService)
type Precomputer interface {
	Precompute(ctx context.Context, members []profile.Member, target time.Time) (*service.PrecomputeResult, error)
}

// DailyFortuneJob precomputes today's record for every stored member
// Schedule: 00:05 daily, so the first request of the day hits the cache
type DailyFortuneJob struct {
	members MemberLister
	engine  Precomputer
	now     func() time.Time
	logger  *logger.Logger
}

// NewDailyFortuneJob creates a new precompute job
func NewDailyFortuneJob(members MemberLister, engine Precomputer, log *logger.Logger) *DailyFortuneJob {
	return &DailyFortuneJob{
		members: members,
		engine:  engine,
		now:     time.Now,
		logger:  log.Component("job.daily_fortune"),
	}
}

// Name returns the job name
func (j *DailyFortuneJob) Name() string {
	return "daily_fortune_precompute"
}

// Schedule returns the cron schedule (00:05:00 daily, with seconds)
func (j *DailyFortuneJob) Schedule() string {
	return "0 5 0 * * *"
}

// Run executes the precompute
// 일부 멤버 실패는 로그만 남기고, 전원 실패일 때만 에러 (재시도 대상)
func (j *DailyFortuneJob) Run(ctx context.Context) error {
	today := j.now()
	target := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	members, err := j.members.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list members: %w", err)
	}
	if len(members) == 0 {
		j.logger.Info("No members to precompute")
		return nil
	}

	result, err := j.engine.Precompute(ctx, members, target)
	if err != nil {
		return fmt.Errorf("precompute: %w", err)
	}

	j.logger.WithFields(map[string]interface{}{
		"target":    target.Format("2006-01-02"),
		"members":   result.Members,
		"generated": result.Generated,
		"failed":    result.Failed,
	}).Info("Daily fortune precompute finished")

	if result.Generated == 0 && result.Failed > 0 {
		return fmt.Errorf("precompute failed for all %d members", result.Failed)
	}
	return nil
}
