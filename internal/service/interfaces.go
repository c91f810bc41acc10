// Package service wires the pure fortune and compatibility engines to the
// cache and storage layers.
package service

import (
	"context"
	"time"

	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/fortune"
	"github.com/wonny/ohaeng/backend/internal/profile"
)

// DailyStore 일간 운세 영구 저장소 (fortune.Repository)
type DailyStore interface {
	SaveDaily(ctx context.Context, birth time.Time, record contracts.DailyFortuneRecord, tablesHash string) (*fortune.StoredRecord, error)
	GetDaily(ctx context.Context, birth, target time.Time) (*fortune.StoredRecord, error)
	ListByBirth(ctx context.Context, birth, from, to time.Time) ([]fortune.StoredRecord, error)
}

// Cache 공유 캐시 (pkg/redis.Cache)
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, fn func() (interface{}, error)) error
	Delete(ctx context.Context, key string) error
}

// MemberStore 멤버 저장/조회 (profile.Repository)
type MemberStore interface {
	SaveMember(ctx context.Context, m profile.Member) error
	DeleteMember(ctx context.Context, id string) error
	GetMember(ctx context.Context, id string) (*profile.Member, error)
	ListByTeam(ctx context.Context, teamID string) ([]profile.Member, error)
	ListAll(ctx context.Context) ([]profile.Member, error)
}
