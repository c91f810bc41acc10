package contracts

import (
	"fmt"
	"time"
)

// DateLayout 날짜 텍스트 형식 (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// Score bounds
const (
	MinScore = 1
	MaxScore = 100
)

// Category 운세 카테고리
// 선언 순서가 곧 동점 처리 우선순위 (career → wealth)
type Category int

const (
	CategoryCareer Category = iota
	CategoryRelationship
	CategoryCreativity
	CategoryHealth
	CategoryWealth
)

// CategoryCount 카테고리 개수
const CategoryCount = 5

// AllCategories returns categories in priority order
func AllCategories() []Category {
	return []Category{CategoryCareer, CategoryRelationship, CategoryCreativity, CategoryHealth, CategoryWealth}
}

var categoryNames = [CategoryCount]string{"career", "relationship", "creativity", "health", "wealth"}

func (c Category) String() string {
	if c < CategoryCareer || c > CategoryWealth {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory parses a category name
func ParseCategory(s string) (Category, error) {
	for i, n := range categoryNames {
		if n == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (c Category) MarshalText() ([]byte, error) {
	if c < CategoryCareer || c > CategoryWealth {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategoryScores 카테고리별 점수 (각 1~100)
type CategoryScores struct {
	Career       int `json:"career"`
	Relationship int `json:"relationship"`
	Creativity   int `json:"creativity"`
	Health       int `json:"health"`
	Wealth       int `json:"wealth"`
}

// Get returns the score for a category
func (s CategoryScores) Get(c Category) int {
	switch c {
	case CategoryCareer:
		return s.Career
	case CategoryRelationship:
		return s.Relationship
	case CategoryCreativity:
		return s.Creativity
	case CategoryHealth:
		return s.Health
	case CategoryWealth:
		return s.Wealth
	default:
		return 0
	}
}

// Set stores the score for a category
func (s *CategoryScores) Set(c Category, score int) {
	switch c {
	case CategoryCareer:
		s.Career = score
	case CategoryRelationship:
		s.Relationship = score
	case CategoryCreativity:
		s.Creativity = score
	case CategoryHealth:
		s.Health = score
	case CategoryWealth:
		s.Wealth = score
	}
}

// Highest returns the highest-scoring category
// 동점이면 우선순위가 앞선 카테고리 (strict > 비교, 먼저 본 것이 이김)
func (s CategoryScores) Highest() Category {
	best := CategoryCareer
	bestScore := s.Get(best)
	for _, c := range AllCategories()[1:] {
		if score := s.Get(c); score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

// LuckTier 운세 등급
type LuckTier string

const (
	TierExcellent LuckTier = "excellent"
	TierGood      LuckTier = "good"
	TierNeutral   LuckTier = "neutral"
	TierCaution   LuckTier = "caution"
	TierPoor      LuckTier = "poor"
)

// TierFor maps an overall score to its luck tier
// 임계값: >=85 excellent, >=70 good, >=45 neutral, >=30 caution
func TierFor(score int) LuckTier {
	switch {
	case score >= 85:
		return TierExcellent
	case score >= 70:
		return TierGood
	case score >= 45:
		return TierNeutral
	case score >= 30:
		return TierCaution
	default:
		return TierPoor
	}
}

// DailyFortuneRecord 하루 운세 결과
// 생성 후 불변. 식별/저장은 호출자 책임
type DailyFortuneRecord struct {
	Date                 time.Time      `json:"date"`
	DailyElement         Element        `json:"daily_element"`
	DailyPolarity        Polarity       `json:"daily_polarity"`
	OverallScore         int            `json:"overall_score"`   // 1~100
	CategoryScores       CategoryScores `json:"category_scores"` // 각 1~100
	Description          string         `json:"description"`
	Advice               string         `json:"advice"`
	LuckyColors          []string       `json:"lucky_colors"`     // 3개
	LuckyDirections      []string       `json:"lucky_directions"` // 1~2개
	CompatibleElements   []Element      `json:"compatible_elements"`
	IncompatibleElements []Element      `json:"incompatible_elements"`
}

// Tier returns the luck tier of the overall score
func (r *DailyFortuneRecord) Tier() LuckTier {
	return TierFor(r.OverallScore)
}

// DailyScore 주간 예보의 하루 (overall 점수만)
type DailyScore struct {
	Date          time.Time `json:"date"`
	DailyElement  Element   `json:"daily_element"`
	DailyPolarity Polarity  `json:"daily_polarity"`
	OverallScore  int       `json:"overall_score"`
}

// WeeklyForecast N일 연속 예보
type WeeklyForecast struct {
	StartDate    time.Time    `json:"start_date"`
	Days         []DailyScore `json:"days"`
	BestDate     *time.Time   `json:"best_date,omitempty"`
	WorstDate    *time.Time   `json:"worst_date,omitempty"`
	AverageScore float64      `json:"average_score"`
}
