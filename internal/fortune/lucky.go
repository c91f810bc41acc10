package fortune

import (
	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/element"
)

const (
	luckyColorCount     = 3
	luckyDirectionCount = 2
)

// luckyColors 일진 팔레트(5색)에서 3색 비복원 추출
func (g *Generator) luckyColors(day contracts.Element) []string {
	return sample(g.rng, colorPalettes[day], luckyColorCount)
}

// luckyDirections 일진 방위 + (상생 관계일 때) 개인 오행 방위, 최대 2개
func (g *Generator) luckyDirections(personal, day contracts.Element) []string {
	candidates := append([]string(nil), directionSets[day]...)

	if element.HasGeneratingRelation(personal, day) {
		for _, d := range directionSets[personal] {
			if !contains(candidates, d) {
				candidates = append(candidates, d)
			}
		}
	}

	return sample(g.rng, candidates, luckyDirectionCount)
}

// compatibleElements 일진과 상생 관계(양방향)인 오행
func compatibleElements(day contracts.Element) []contracts.Element {
	out := make([]contracts.Element, 0, 2)
	for _, e := range contracts.AllElements() {
		if element.HasGeneratingRelation(e, day) {
			out = append(out, e)
		}
	}
	return out
}

// incompatibleElements 일진과 상극 관계(양방향)인 오행
// compatible 과의 서로소 여부는 강제하지 않는다
func incompatibleElements(day contracts.Element) []contracts.Element {
	out := make([]contracts.Element, 0, 2)
	for _, e := range contracts.AllElements() {
		if element.HasControllingRelation(e, day) {
			out = append(out, e)
		}
	}
	return out
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}
