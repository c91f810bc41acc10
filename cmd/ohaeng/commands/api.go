package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/ohaeng/backend/internal/api"
	"github.com/wonny/ohaeng/backend/internal/api/handlers"
	"github.com/wonny/ohaeng/backend/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

이 명령어는:
- PostgreSQL / Redis 연결
- 운세 테이블 로드 및 엔진 생성
- HTTP API 서버 시작 (전역 + 클라이언트별 레이트 리밋)

Endpoints:
  GET  /health                                - Health check
  GET  /api/fortune/daily?birth=&date=        - 일간 운세
  GET  /api/fortune/weekly?birth=&start=&days= - 주간 요약
  GET  /api/fortune/context?birth=&date=      - 어시스턴트 프롬프트 컨텍스트
  GET  /api/fortune/history?birth=&from=&to=  - 저장된 일간 운세 이력
  POST /api/compatibility                     - 두 프로필 궁합
  POST /api/team/analyze                      - 팀 역학 (요청 본문 멤버)
  GET  /api/team/{teamID}/dynamics            - 팀 역학 (저장된 멤버)
  GET  /api/members/{a}/compatibility/{b}     - 저장된 멤버 궁합

Example:
  go run ./cmd/ohaeng api
  go run ./cmd/ohaeng api --port 8080 --migrate --with-scheduler`,
	RunE: runAPIServer,
}

var (
	apiPort          string
	apiMigrate       bool
	apiWithScheduler bool
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (default: PORT)")
	apiCmd.Flags().BoolVar(&apiMigrate, "migrate", false, "시작 전 마이그레이션 적용")
	apiCmd.Flags().BoolVar(&apiWithScheduler, "with-scheduler", false, "사전 계산 스케줄러를 같은 프로세스에서 실행")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Ohaeng API Server ===")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := newServerDeps(ctx, apiMigrate)
	if err != nil {
		return err
	}
	defer deps.Close()

	cfg, log := deps.cfg, deps.log
	if apiPort != "" {
		cfg.Port = apiPort
	}

	log.WithFields(map[string]interface{}{
		"port":        cfg.Port,
		"env":         cfg.Env,
		"tables_hash": deps.forecasts.TablesHash(),
	}).Info("Initializing API server")

	// Handlers
	h := api.Handlers{
		Fortune: handlers.NewFortuneHandler(deps.forecasts, log),
		Team:    handlers.NewTeamHandler(deps.teams, log),
	}

	// Rate limits
	limits := api.Limits{
		Global:      api.NewGlobalLimiter(cfg.API.RateLimit, cfg.API.RateBurst),
		Clients:     redis.NewRateLimiter(deps.redis, cachePrefix),
		ClientLimit: cfg.API.ClientLimit,
	}

	server := api.New(cfg, log, api.NewRouter(h, limits, log))

	if apiWithScheduler {
		sched, err := buildScheduler(deps)
		if err != nil {
			return fmt.Errorf("init scheduler: %w", err)
		}
		sched.Start()
		defer sched.Stop()
		log.WithField("jobs", sched.GetAllJobs()).Info("Scheduler started")
	}

	// Start server with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
