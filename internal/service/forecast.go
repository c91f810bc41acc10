package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/fortune"
	"github.com/wonny/ohaeng/backend/internal/profile"
	"github.com/wonny/ohaeng/backend/pkg/redis"
)

// precomputeWorkers 배치 사전 계산 동시성
const precomputeWorkers = 4

// ForecastService 일간/주간 운세 조회
// 조회 순서: in-process LRU → Redis → Postgres → 생성 후 저장
// ⭐ SSOT: (birth, target) 레코드는 처음 저장된 것이 이후 모든 조회의 결과
type ForecastService struct {
	gen   *fortune.Generator
	store DailyStore // nil 이면 저장하지 않음 (CLI)
	cache Cache      // nil 이면 공유 캐시 생략
	local *lru.Cache
	ttl   time.Duration
	log   zerolog.Logger
}

// ForecastOptions optional collaborators
type ForecastOptions struct {
	Store     DailyStore
	Cache     Cache
	CacheSize int
	CacheTTL  time.Duration
}

// NewForecastService creates the service
func NewForecastService(gen *fortune.Generator, opts ForecastOptions, log zerolog.Logger) (*ForecastService, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = 1024
	}
	local, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}

	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = redis.TTLDaily
	}

	return &ForecastService{
		gen:   gen,
		store: opts.Store,
		cache: opts.Cache,
		local: local,
		ttl:   ttl,
		log:   log.With().Str("component", "service.forecast").Logger(),
	}, nil
}

// TablesHash scoring tables in use
func (s *ForecastService) TablesHash() string {
	return s.gen.TablesHash()
}

// DailyFromText parses YYYY-MM-DD inputs (fortune.ErrInvalidDate on failure)
func (s *ForecastService) DailyFromText(ctx context.Context, birth, target string) (*contracts.DailyFortuneRecord, error) {
	birthDate, err := fortune.ParseDate(birth)
	if err != nil {
		return nil, fmt.Errorf("birth date: %w", err)
	}
	targetDate, err := fortune.ParseDate(target)
	if err != nil {
		return nil, fmt.Errorf("target date: %w", err)
	}
	return s.Daily(ctx, birthDate, targetDate)
}

// Daily returns the stable record for (birth, target)
func (s *ForecastService) Daily(ctx context.Context, birth, target time.Time) (*contracts.DailyFortuneRecord, error) {
	birthText := birth.Format(contracts.DateLayout)
	targetText := target.Format(contracts.DateLayout)
	key := redis.DailyKey(s.gen.TablesHash(), birthText, targetText)

	// 1. in-process LRU
	if v, ok := s.local.Get(key); ok {
		record := v.(contracts.DailyFortuneRecord)
		return cloneRecord(record), nil
	}

	// 2. Redis
	if s.cache != nil {
		var cached contracts.DailyFortuneRecord
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			s.local.Add(key, cached)
			return cloneRecord(cached), nil
		}
	}

	// 3. Postgres
	record, err := s.loadOrCreate(ctx, birth, target)
	if err != nil {
		return nil, err
	}

	s.local.Add(key, record)
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, record, s.ttl); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}

	return cloneRecord(record), nil
}

// loadOrCreate 저장본이 있으면 그대로, 없으면 생성 후 저장 (동시 저장 시 먼저 쓴 쪽 유지)
func (s *ForecastService) loadOrCreate(ctx context.Context, birth, target time.Time) (contracts.DailyFortuneRecord, error) {
	if s.store == nil {
		return s.gen.GenerateDaily(birth, target), nil
	}

	stored, err := s.store.GetDaily(ctx, birth, target)
	if err != nil {
		return contracts.DailyFortuneRecord{}, fmt.Errorf("load daily record: %w", err)
	}
	if stored != nil {
		if stored.TablesHash != s.gen.TablesHash() {
			s.log.Debug().
				Str("stored_hash", stored.TablesHash).
				Str("target", target.Format(contracts.DateLayout)).
				Msg("serving record generated with older tables")
		}
		return stored.Record, nil
	}

	generated := s.gen.GenerateDaily(birth, target)
	saved, err := s.store.SaveDaily(ctx, birth, generated, s.gen.TablesHash())
	if err != nil {
		return contracts.DailyFortuneRecord{}, fmt.Errorf("save daily record: %w", err)
	}

	s.log.Info().
		Str("target", target.Format(contracts.DateLayout)).
		Int("score", saved.Record.OverallScore).
		Msg("daily record stored")

	return saved.Record, nil
}

// WeeklyFromText parses inputs and validates days (fortune.ErrInvalidDays)
func (s *ForecastService) WeeklyFromText(ctx context.Context, birth, start string, days int) (*contracts.WeeklyForecast, error) {
	birthDate, err := fortune.ParseDate(birth)
	if err != nil {
		return nil, fmt.Errorf("birth date: %w", err)
	}
	startDate, err := fortune.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	if days < 1 || days > fortune.MaxForecastDays {
		return nil, fmt.Errorf("%w: days must be in [1, %d], got %d", fortune.ErrInvalidDays, fortune.MaxForecastDays, days)
	}
	return s.Weekly(ctx, birthDate, startDate, days)
}

// Weekly 결정적 계산이므로 저장 없이 Redis에만 짧게 캐시
func (s *ForecastService) Weekly(ctx context.Context, birth, start time.Time, days int) (*contracts.WeeklyForecast, error) {
	if s.cache == nil {
		forecast := s.gen.GenerateWeekly(birth, start, days)
		return &forecast, nil
	}

	key := redis.WeeklyKey(s.gen.TablesHash(), birth.Format(contracts.DateLayout), start.Format(contracts.DateLayout), days)

	var forecast contracts.WeeklyForecast
	err := s.cache.GetOrSet(ctx, key, &forecast, redis.TTLShort, func() (interface{}, error) {
		return s.gen.GenerateWeekly(birth, start, days), nil
	})
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("weekly cache failed, computing directly")
		forecast = s.gen.GenerateWeekly(birth, start, days)
	}

	return &forecast, nil
}

// maxHistoryDays History 조회 기간 상한
const maxHistoryDays = 366

// History lists stored records for birth in [from, to]
// 저장소가 없으면 빈 목록
func (s *ForecastService) History(ctx context.Context, birth, from, to time.Time) ([]fortune.StoredRecord, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: from %s is after to %s", fortune.ErrInvalidDate,
			from.Format(contracts.DateLayout), to.Format(contracts.DateLayout))
	}
	if to.Sub(from) > maxHistoryDays*24*time.Hour {
		return nil, fmt.Errorf("%w: history range exceeds %d days", fortune.ErrInvalidDays, maxHistoryDays)
	}
	if s.store == nil {
		return []fortune.StoredRecord{}, nil
	}

	records, err := s.store.ListByBirth(ctx, birth, from, to)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if records == nil {
		records = []fortune.StoredRecord{}
	}
	return records, nil
}

// PrecomputeResult 배치 결과
type PrecomputeResult struct {
	Target    time.Time `json:"target"`
	Members   int       `json:"members"`
	Generated int       `json:"generated"`
	Failed    int       `json:"failed"`
}

// Precompute 멤버 전원의 target 일자 레코드를 미리 생성
// 멤버별 실패는 집계만 하고 나머지는 계속 진행
func (s *ForecastService) Precompute(ctx context.Context, members []profile.Member, target time.Time) (*PrecomputeResult, error) {
	result := &PrecomputeResult{Target: target, Members: len(members)}

	var generated, failed int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(precomputeWorkers)

	for _, m := range members {
		m := m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := s.Daily(gctx, m.BirthDate, target); err != nil {
				atomic.AddInt64(&failed, 1)
				s.log.Warn().Err(err).Str("member_id", m.ID).Msg("precompute failed")
				return nil
			}
			atomic.AddInt64(&generated, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Generated = int(generated)
	result.Failed = int(failed)

	s.log.Info().
		Str("target", target.Format(contracts.DateLayout)).
		Int("members", result.Members).
		Int("generated", result.Generated).
		Int("failed", result.Failed).
		Msg("precompute finished")

	return result, nil
}

func cloneRecord(r contracts.DailyFortuneRecord) *contracts.DailyFortuneRecord {
	out := r
	out.LuckyColors = append([]string(nil), r.LuckyColors...)
	out.LuckyDirections = append([]string(nil), r.LuckyDirections...)
	out.CompatibleElements = append([]contracts.Element(nil), r.CompatibleElements...)
	out.IncompatibleElements = append([]contracts.Element(nil), r.IncompatibleElements...)
	return &out
}
