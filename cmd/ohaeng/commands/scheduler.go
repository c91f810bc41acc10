package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/ohaeng/backend/internal/scheduler"
	"github.com/wonny/ohaeng/backend/internal/scheduler/jobs"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "스케줄러 관리",
	Long: `스케줄러를 시작하거나 작업을 관리합니다.

이 명령어는:
- 스케줄러 데몬 시작
- 등록된 작업 조회
- 작업 즉시 실행

Subcommands:
  start   - 스케줄러 시작
  list    - 등록된 작업 목록과 다음 실행 시각
  run     - 특정 작업 즉시 실행 (완료까지 대기)

Example:
  go run ./cmd/ohaeng scheduler start
  go run ./cmd/ohaeng scheduler list
  go run ./cmd/ohaeng scheduler run daily_fortune_precompute`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "스케줄러 시작",
		Long: `스케줄러를 시작하고 등록된 모든 작업을 스케줄합니다.

등록되는 작업:
- daily_fortune_precompute: 매일 00:05 (저장된 멤버 전원의 오늘 운세 생성)
- db_health: 10분마다 (커넥션 풀 상태 로깅)

스케줄러는 Ctrl+C로 종료할 수 있습니다.`,
		RunE: runScheduler,
	}

	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "등록된 작업 목록",
		RunE:  listJobs,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "특정 작업 즉시 실행",
		Args:  cobra.ExactArgs(1),
		RunE:  runJob,
	}
)

var (
	jobRetries    int
	jobRetryDelay time.Duration
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)

	schedulerCmd.PersistentFlags().IntVar(&jobRetries, "retries", 2, "작업 실패 시 재시도 횟수")
	schedulerCmd.PersistentFlags().DurationVar(&jobRetryDelay, "retry-delay", 30*time.Second, "재시도 간격")
}

// buildScheduler registers the precompute and health jobs
func buildScheduler(deps *serverDeps) (*scheduler.Scheduler, error) {
	sched := scheduler.New(deps.log, scheduler.WithRetry(jobRetries, jobRetryDelay))

	if err := sched.AddJob(jobs.NewDailyFortuneJob(deps.members, deps.forecasts, deps.log)); err != nil {
		return nil, err
	}
	if err := sched.AddJob(jobs.NewDBHealthJob(deps.db, deps.log)); err != nil {
		return nil, err
	}

	return sched, nil
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Ohaeng Scheduler ===")

	deps, err := newServerDeps(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer deps.Close()

	sched, err := buildScheduler(deps)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	sched.Start()

	fmt.Println("\n✅ Scheduler started successfully")
	printJobList(sched)
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down scheduler...")
	sched.Stop()
	fmt.Println("Scheduler stopped")

	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	deps, err := newServerDeps(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer deps.Close()

	sched, err := buildScheduler(deps)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	// 다음 실행 시각은 cron이 시작된 뒤에만 계산됨
	sched.Start()
	defer sched.Stop()

	printJobList(sched)
	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	jobName := args[0]

	deps, err := newServerDeps(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer deps.Close()

	sched, err := buildScheduler(deps)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	fmt.Printf("Running job: %s\n", jobName)

	result, err := sched.RunJob(cmd.Context(), jobName)
	if err != nil {
		PrintError(fmt.Sprintf("%s failed after %d attempt(s): %v", jobName, result.Attempts, err))
		return err
	}

	PrintSuccess(fmt.Sprintf("%s completed in %s (%d attempt(s))", jobName, result.Duration.Round(time.Millisecond), result.Attempts))
	return nil
}

func printJobList(sched *scheduler.Scheduler) {
	stats := sched.GetJobStats()

	fmt.Println("\nRegistered jobs:")
	widths := []int{26, 14, 20}
	PrintTableHeader([]string{"Job", "Schedule", "Next run"}, widths)
	for _, name := range sched.GetAllJobs() {
		next := "-"
		if t, err := sched.NextRun(name); err == nil && !t.IsZero() {
			next = t.Format("2006-01-02 15:04:05")
		}
		PrintTableRow([]string{name, stats[name].Schedule, next}, widths)
	}
}
