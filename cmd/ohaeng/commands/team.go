package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/ohaeng/backend/internal/compatibility"
	"github.com/wonny/ohaeng/backend/internal/contracts"
)

// teamCmd represents the team command
var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "팀 역학 분석",
	Long: `멤버별 오행 프로필로 팀 궁합 행렬과 오행 분포를 분석합니다.

--member 는 id=profile 형식으로 반복 지정합니다.

Example:
  go run ./cmd/ohaeng team --member a=wood:yang --member b=fire:yin --member c=earth:yang`,
	RunE: runTeam,
}

var teamMembers []string

func init() {
	rootCmd.AddCommand(teamCmd)

	teamCmd.Flags().StringArrayVar(&teamMembers, "member", nil, "member as id=profile (repeatable)")
}

// parseTeamMembers id=profile 목록 → TeamMember (중복 ID 거부)
func parseTeamMembers(entries []string) ([]contracts.TeamMember, error) {
	members := make([]contracts.TeamMember, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		id, raw, ok := strings.Cut(entry, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("member %q: want id=profile", entry)
		}
		if seen[id] {
			return nil, fmt.Errorf("member %q: duplicate id", id)
		}
		seen[id] = true

		profile, err := contracts.ParseProfile(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", id, err)
		}
		members = append(members, contracts.TeamMember{ID: id, Profile: profile})
	}

	return members, nil
}

func runTeam(cmd *cobra.Command, args []string) error {
	members, err := parseTeamMembers(teamMembers)
	if err != nil {
		return err
	}

	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	log := cliLogger(cfg)

	report := compatibility.NewAnalyzer(log.Zerolog()).AnalyzeTeamDynamics(members)

	if jsonOutput {
		return printJSON(report)
	}
	printTeamReport(members, report)
	return nil
}
