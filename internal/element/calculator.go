// Package element derives element/polarity pairs from dates and holds the two
// relation cycles (generating, controlling) every score is built on.
package element

import (
	"time"

	"github.com/wonny/ohaeng/backend/internal/contracts"
)

// Relation 개인 오행과 일진 오행 사이의 관계
type Relation string

const (
	RelationSame         Relation = "same"          // 같은 오행
	RelationGenerates    Relation = "generates"     // 개인 → 일진 생(生)
	RelationGeneratedBy  Relation = "generated_by"  // 일진 → 개인 생
	RelationControls     Relation = "controls"      // 개인 → 일진 극(剋)
	RelationControlledBy Relation = "controlled_by" // 일진 → 개인 극
)

// Base luck score adjustments
const (
	baseLuckBaseline       = 50
	bonusGeneratedByDay    = 20 // 일진이 나를 생함
	bonusGeneratesDay      = 10 // 내가 일진을 생함 (설기)
	penaltyControlledByDay = 15 // 일진이 나를 극함
	penaltyControlsDay     = 10 // 내가 일진을 극함
	bonusPolarityBalanced  = 5  // 음양이 다름
	penaltyPolaritySame    = 5  // 음양이 같음
)

// PersonalElement derives the elemental profile from a birth date
// main = (year+month)%5, secondary = (month+day)%5, polarity = 짝수 해 Yang
func PersonalElement(birth time.Time) contracts.ElementalProfile {
	year, month, day := birth.Date()

	main := contracts.Element(mod5(year + int(month)))
	secondary := contracts.Element(mod5(int(month) + day))

	polarity := contracts.Yin
	if year%2 == 0 {
		polarity = contracts.Yang
	}

	return contracts.ElementalProfile{
		MainElement:      main,
		SecondaryElement: &secondary,
		Polarity:         polarity,
	}
}

// DayElement derives the element and polarity of a calendar date
// element = day%5, polarity = 짝수 일 Yang
func DayElement(date time.Time) (contracts.Element, contracts.Polarity) {
	day := date.Day()

	polarity := contracts.Yin
	if day%2 == 0 {
		polarity = contracts.Yang
	}

	return contracts.Element(mod5(day)), polarity
}

// BaseLuckScore scores a personal element against the day element, clamped to [1,100]
func BaseLuckScore(personal, day contracts.Element, personalPolarity, dayPolarity contracts.Polarity) int {
	score := baseLuckBaseline

	if IsGenerating(day, personal) {
		score += bonusGeneratedByDay
	}
	if IsGenerating(personal, day) {
		score += bonusGeneratesDay
	}
	if IsControlling(day, personal) {
		score -= penaltyControlledByDay
	}
	if IsControlling(personal, day) {
		score -= penaltyControlsDay
	}

	if personalPolarity == dayPolarity {
		score -= penaltyPolaritySame
	} else {
		score += bonusPolarityBalanced
	}

	return Clamp(score, contracts.MinScore, contracts.MaxScore)
}

// RelationBetween classifies how the personal element relates to the day element
func RelationBetween(personal, day contracts.Element) Relation {
	switch {
	case personal == day:
		return RelationSame
	case IsGenerating(personal, day):
		return RelationGenerates
	case IsGenerating(day, personal):
		return RelationGeneratedBy
	case IsControlling(personal, day):
		return RelationControls
	default:
		// 5-cycle 두 개로 나머지 한 경우만 남는다
		return RelationControlledBy
	}
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mod5 always returns a non-negative index
func mod5(n int) int {
	m := n % contracts.ElementCount
	if m < 0 {
		m += contracts.ElementCount
	}
	return m
}
