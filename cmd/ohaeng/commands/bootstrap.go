package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/wonny/ohaeng/backend/internal/compatibility"
	"github.com/wonny/ohaeng/backend/internal/fortune"
	"github.com/wonny/ohaeng/backend/internal/fortuneconfig"
	"github.com/wonny/ohaeng/backend/internal/profile"
	"github.com/wonny/ohaeng/backend/internal/service"
	"github.com/wonny/ohaeng/backend/migrations"
	"github.com/wonny/ohaeng/backend/pkg/config"
	"github.com/wonny/ohaeng/backend/pkg/database"
	"github.com/wonny/ohaeng/backend/pkg/logger"
	"github.com/wonny/ohaeng/backend/pkg/redis"
)

// cachePrefix Redis 키 네임스페이스
const cachePrefix = "ohaeng"

// applyFlags copies global flag overrides into cfg
func applyFlags(cfg *config.Config) {
	if tablesPath != "" {
		cfg.Fortune.TablesPath = tablesPath
	}
	if seed != 0 {
		cfg.Fortune.RandomSeed = seed
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
}

// loadCLIConfig config for offline commands (DB 불필요)
func loadCLIConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyFlags(cfg)
	return cfg, nil
}

// cliLogger logs to stderr so stdout stays clean for results
func cliLogger(cfg *config.Config) *logger.Logger {
	if !verbose {
		cfg.LogLevel = "warn"
	}
	cfg.LogFormat = "console"
	return logger.NewWithWriter(cfg, os.Stderr)
}

// newGenerator builds the engine from configured tables
// ⭐ SSOT: CLI/API/스케줄러 모두 이 경로로 Generator 생성
func newGenerator(cfg *config.Config, log *logger.Logger) (*fortune.Generator, error) {
	tables, err := fortuneconfig.LoadTables(cfg.Fortune.TablesPath)
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"tables_hash": tables.Hash,
		"seeded":      cfg.Fortune.RandomSeed != 0,
	}).Debug("Fortune generator ready")

	return fortune.NewGeneratorWithTables(tables, fortune.NewLockedRand(cfg.Fortune.RandomSeed), log.Zerolog()), nil
}

// offlineForecasts service without store or shared cache
func offlineForecasts(cfg *config.Config, log *logger.Logger) (*service.ForecastService, error) {
	gen, err := newGenerator(cfg, log)
	if err != nil {
		return nil, err
	}

	return service.NewForecastService(gen, service.ForecastOptions{
		CacheSize: cfg.Fortune.CacheSize,
	}, log.Zerolog())
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// serverDeps DB/Redis가 필요한 명령(api, scheduler, members)의 공용 의존성
type serverDeps struct {
	cfg       *config.Config
	log       *logger.Logger
	db        *database.DB
	redis     *redis.Client
	members   *profile.Repository
	forecasts *service.ForecastService
	teams     *service.TeamService
}

// newServerDeps connects storage and builds the services
// migrate=true 이면 서비스 생성 전에 내장 마이그레이션 적용
func newServerDeps(ctx context.Context, migrate bool) (*serverDeps, error) {
	// 1. Load config
	cfg, err := config.LoadForServer()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyFlags(cfg)

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	log.Info("Connected to database")

	if migrate {
		applied, err := db.Migrate(ctx, migrations.FS)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.WithField("files", applied).Info("Migrations applied")
	}

	// 4. Connect to Redis (REDIS_ENABLED=false 이면 no-op 클라이언트)
	rdb, err := redis.New(cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	log.WithField("enabled", rdb.Enabled()).Info("Redis client ready")
	cache := redis.NewCache(rdb, cachePrefix)

	// 5. Engines
	gen, err := newGenerator(cfg, log)
	if err != nil {
		_ = rdb.Close()
		db.Close()
		return nil, fmt.Errorf("init engine: %w", err)
	}

	// 6. Services
	forecasts, err := service.NewForecastService(gen, service.ForecastOptions{
		Store:     fortune.NewRepository(db.Pool),
		Cache:     cache,
		CacheSize: cfg.Fortune.CacheSize,
		CacheTTL:  cfg.Fortune.CacheTTL,
	}, log.Zerolog())
	if err != nil {
		_ = rdb.Close()
		db.Close()
		return nil, err
	}

	members := profile.NewRepository(db.Pool)
	teams := service.NewTeamService(members, compatibility.NewAnalyzer(log.Zerolog()), cache, log.Zerolog())

	return &serverDeps{
		cfg:       cfg,
		log:       log,
		db:        db,
		redis:     rdb,
		members:   members,
		forecasts: forecasts,
		teams:     teams,
	}, nil
}

// Close releases Redis and the DB pool
func (d *serverDeps) Close() {
	if err := d.redis.Close(); err != nil {
		d.log.WithError(err).Warn("Redis close failed")
	}
	d.db.Close()
}
