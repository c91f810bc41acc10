package compatibility

import (
	"github.com/wonny/ohaeng/backend/internal/contracts"
)

// AnalyzeTeamDynamics builds the pairwise matrix and element distribution
// 멤버 0~1명이면 balance = TeamBalanceSentinel (에러 아님)
// 같은 ID가 반복되면 첫 번째만 사용 (balance = 행렬 평균 유지)
func (an *Analyzer) AnalyzeTeamDynamics(members []contracts.TeamMember) contracts.TeamDynamicsReport {
	members, dropped := uniqueMembers(members)
	if dropped > 0 {
		an.log.Warn().Int("dropped", dropped).Msg("duplicate member ids ignored")
	}

	report := contracts.TeamDynamicsReport{
		PairwiseScores:      make(map[string]map[string]int, len(members)),
		ElementDistribution: make(map[contracts.Element]int, contracts.ElementCount),
		MissingElements:     []contracts.Element{},
		MemberCount:         len(members),
	}

	for _, e := range contracts.AllElements() {
		report.ElementDistribution[e] = 0
	}
	for _, m := range members {
		report.ElementDistribution[m.Profile.MainElement]++
	}

	// 순서 있는 쌍 (i != j) 전체
	var sum, pairs int
	for i, a := range members {
		row := make(map[string]int, len(members)-1)
		for j, b := range members {
			if i == j {
				continue
			}
			score := an.CalculatePersonalCompatibility(a.Profile, b.Profile).Score
			row[b.ID] = score
			sum += score
			pairs++
		}
		report.PairwiseScores[a.ID] = row
	}

	if pairs == 0 {
		report.OverallBalance = contracts.TeamBalanceSentinel
	} else {
		report.OverallBalance = float64(sum) / float64(pairs)
	}

	var dominantCount int
	for _, e := range contracts.AllElements() {
		count := report.ElementDistribution[e]
		if count == 0 {
			report.MissingElements = append(report.MissingElements, e)
			continue
		}
		if count > dominantCount {
			dominant := e
			report.DominantElement = &dominant
			dominantCount = count
		}
	}

	an.log.Debug().
		Int("members", len(members)).
		Int("pairs", pairs).
		Float64("balance", report.OverallBalance).
		Int("missing", len(report.MissingElements)).
		Msg("team dynamics analyzed")

	return report
}

// uniqueMembers keeps the first member per ID, preserving order
func uniqueMembers(members []contracts.TeamMember) ([]contracts.TeamMember, int) {
	seen := make(map[string]bool, len(members))
	out := make([]contracts.TeamMember, 0, len(members))
	for _, m := range members {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out, len(members) - len(out)
}
