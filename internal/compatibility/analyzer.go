// Package compatibility scores pairs of elemental profiles and aggregates them
// into team-level reports.
package compatibility

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/element"
)

// Pairwise adjustments
// 상생 가점은 방향에 따라 다르고(+20 / +15), 상극 감점은 양방향 동일(-10)
const (
	compatBaseline          = 50
	bonusAGeneratesB        = 20
	bonusBGeneratesA        = 15
	penaltyControl          = 10
	penaltySamePolarity     = 5
	bonusDifferentPolarity  = 10
	bonusSecondaryAlignment = 10
)

// Analyzer 궁합 분석기 (상태 없음)
type Analyzer struct {
	log zerolog.Logger
}

// NewAnalyzer 새 분석기 생성
func NewAnalyzer(log zerolog.Logger) *Analyzer {
	return &Analyzer{
		log: log.With().Str("component", "compatibility.analyzer").Logger(),
	}
}

// CalculatePersonalCompatibility scores a against b in [0,100]
// 순서가 의미 있음: Calculate(a,b) != Calculate(b,a) 일 수 있다
func (an *Analyzer) CalculatePersonalCompatibility(a, b contracts.ElementalProfile) contracts.CompatibilityResult {
	score := compatBaseline
	factors := make([]string, 0, 4)

	if element.IsGenerating(a.MainElement, b.MainElement) {
		score += bonusAGeneratesB
		factors = append(factors, fmt.Sprintf("+%d %s generates %s", bonusAGeneratesB, a.MainElement, b.MainElement))
	}
	if element.IsGenerating(b.MainElement, a.MainElement) {
		score += bonusBGeneratesA
		factors = append(factors, fmt.Sprintf("+%d %s generates %s", bonusBGeneratesA, b.MainElement, a.MainElement))
	}
	if element.IsControlling(a.MainElement, b.MainElement) {
		score -= penaltyControl
		factors = append(factors, fmt.Sprintf("-%d %s controls %s", penaltyControl, a.MainElement, b.MainElement))
	}
	if element.IsControlling(b.MainElement, a.MainElement) {
		score -= penaltyControl
		factors = append(factors, fmt.Sprintf("-%d %s controls %s", penaltyControl, b.MainElement, a.MainElement))
	}

	if a.Polarity == b.Polarity {
		score -= penaltySamePolarity
		factors = append(factors, fmt.Sprintf("-%d same polarity (%s)", penaltySamePolarity, a.Polarity))
	} else {
		score += bonusDifferentPolarity
		factors = append(factors, fmt.Sprintf("+%d balanced polarity", bonusDifferentPolarity))
	}

	if secondaryAligned(a, b) {
		score += bonusSecondaryAlignment
		factors = append(factors, fmt.Sprintf("+%d secondary element alignment", bonusSecondaryAlignment))
	}

	return contracts.CompatibilityResult{
		Score:   element.Clamp(score, contracts.MinCompatibility, contracts.MaxCompatibility),
		Factors: factors,
	}
}

// secondaryAligned 한쪽의 보조 오행이 상대의 주 오행과 같음 (한 번만 가점)
func secondaryAligned(a, b contracts.ElementalProfile) bool {
	if a.SecondaryElement != nil && *a.SecondaryElement == b.MainElement {
		return true
	}
	return b.SecondaryElement != nil && *b.SecondaryElement == a.MainElement
}
