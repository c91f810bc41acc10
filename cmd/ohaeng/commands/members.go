package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/fortune"
	"github.com/wonny/ohaeng/backend/internal/profile"
)

// membersCmd represents the members command
var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "팀 멤버 관리",
	Long: `저장된 팀 멤버를 추가/조회/삭제하고 팀 역학을 분석합니다.
오행 프로필은 생년월일에서 파생되며 저장하지 않습니다.

Subcommands:
  add      - 멤버 추가 (id 생략 시 UUID)
  list     - 멤버 목록
  remove   - 멤버 삭제
  dynamics - 저장된 팀의 역학 분석

Example:
  go run ./cmd/ohaeng members add --team core --name Minji --birth 1990-03-15
  go run ./cmd/ohaeng members list --team core
  go run ./cmd/ohaeng members dynamics core`,
}

var (
	membersAddCmd = &cobra.Command{
		Use:   "add",
		Short: "멤버 추가",
		RunE:  runMembersAdd,
	}

	membersListCmd = &cobra.Command{
		Use:   "list",
		Short: "멤버 목록",
		RunE:  runMembersList,
	}

	membersRemoveCmd = &cobra.Command{
		Use:   "remove [member_id]",
		Short: "멤버 삭제",
		Args:  cobra.ExactArgs(1),
		RunE:  runMembersRemove,
	}

	membersDynamicsCmd = &cobra.Command{
		Use:   "dynamics [team_id]",
		Short: "팀 역학 분석",
		Args:  cobra.ExactArgs(1),
		RunE:  runMembersDynamics,
	}
)

var (
	memberID    string
	memberTeam  string
	memberName  string
	memberBirth string
)

func init() {
	rootCmd.AddCommand(membersCmd)
	membersCmd.AddCommand(membersAddCmd)
	membersCmd.AddCommand(membersListCmd)
	membersCmd.AddCommand(membersRemoveCmd)
	membersCmd.AddCommand(membersDynamicsCmd)

	membersAddCmd.Flags().StringVar(&memberID, "id", "", "member id (default: random UUID)")
	membersAddCmd.Flags().StringVar(&memberTeam, "team", "", "team id")
	membersAddCmd.Flags().StringVar(&memberName, "name", "", "display name")
	membersAddCmd.Flags().StringVar(&memberBirth, "birth", "", "birth date (YYYY-MM-DD)")
	_ = membersAddCmd.MarkFlagRequired("team")
	_ = membersAddCmd.MarkFlagRequired("birth")

	membersListCmd.Flags().StringVar(&memberTeam, "team", "", "filter by team id")
}

func runMembersAdd(cmd *cobra.Command, args []string) error {
	birth, err := fortune.ParseDate(memberBirth)
	if err != nil {
		return err
	}

	id := memberID
	if id == "" {
		id = uuid.NewString()
	}
	m := profile.Member{ID: id, TeamID: memberTeam, Name: memberName, BirthDate: birth}
	if err := m.Validate(); err != nil {
		return err
	}

	deps, err := newServerDeps(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer deps.Close()

	if err := deps.teams.SaveMember(cmd.Context(), m); err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("member %s saved (team %s, profile %s)", m.ID, m.TeamID, m.Profile()))
	return nil
}

func runMembersList(cmd *cobra.Command, args []string) error {
	deps, err := newServerDeps(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer deps.Close()

	var members []profile.Member
	if memberTeam != "" {
		members, err = deps.members.ListByTeam(cmd.Context(), memberTeam)
	} else {
		members, err = deps.members.ListAll(cmd.Context())
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(members)
	}

	widths := []int{36, 12, 16, 10, 18}
	PrintTableHeader([]string{"ID", "Team", "Name", "Birth", "Profile"}, widths)
	for _, m := range members {
		PrintTableRow([]string{
			m.ID,
			m.TeamID,
			m.Name,
			m.BirthDate.Format(contracts.DateLayout),
			m.Profile().String(),
		}, widths)
	}
	fmt.Printf("\n%d member(s)\n", len(members))
	return nil
}

func runMembersRemove(cmd *cobra.Command, args []string) error {
	deps, err := newServerDeps(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer deps.Close()

	if err := deps.teams.RemoveMember(cmd.Context(), args[0]); err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("member %s removed", args[0]))
	return nil
}

func runMembersDynamics(cmd *cobra.Command, args []string) error {
	deps, err := newServerDeps(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer deps.Close()

	stored, err := deps.members.ListByTeam(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	report, err := deps.teams.AnalyzeTeam(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(report)
	}
	printTeamReport(profile.TeamMembers(stored), *report)
	return nil
}
