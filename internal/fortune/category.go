package fortune

import (
	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/element"
)

// categoryScores 카테고리별 점수 계산
// baseline(overall) → 오행 친화 → 생극 보정 → 노이즈 → clamp
// 난수는 카테고리 우선순위 순서대로 소비된다
func (g *Generator) categoryScores(overall int, personal, day contracts.Element) contracts.CategoryScores {
	var scores contracts.CategoryScores
	for _, c := range contracts.AllCategories() {
		score := g.affinityScore(c, overall, personal, day)
		score += noise(g.rng, g.tables.NoiseMax)
		scores.Set(c, element.Clamp(score, contracts.MinScore, contracts.MaxScore))
	}
	return scores
}

// affinityScore 노이즈 제외 카테고리 점수 (clamp 전)
func (g *Generator) affinityScore(c contracts.Category, overall int, personal, day contracts.Element) int {
	a := g.tables.Affinities[c]
	score := overall

	if day == a.Primary {
		score += a.PrimaryBonus
	}
	if day == a.Secondary {
		score += a.SecondaryBonus
	}
	if personal == a.PenaltyElement && day == a.PenaltyElement {
		score -= a.Penalty
	}

	return score + g.relationAdjustment(personal, day)
}

// relationAdjustment base 점수와 같은 생극 규칙, 더 작은 크기
func (g *Generator) relationAdjustment(personal, day contracts.Element) int {
	r := g.tables.Relation
	adj := 0

	if element.IsGenerating(day, personal) {
		adj += r.GeneratedByDay
	}
	if element.IsGenerating(personal, day) {
		adj += r.GeneratesDay
	}
	if element.IsControlling(day, personal) {
		adj -= r.ControlledByDay
	}
	if element.IsControlling(personal, day) {
		adj -= r.ControlsDay
	}

	return adj
}
