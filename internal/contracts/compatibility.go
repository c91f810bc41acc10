package contracts

import (
	"encoding/json"
	"fmt"
)

// Compatibility bounds
const (
	MinCompatibility = 0
	MaxCompatibility = 100
)

// TeamBalanceSentinel 멤버 0~1명일 때의 balance (에러가 아닌 고정값)
const TeamBalanceSentinel = 100.0

// CompatibilityResult 두 프로필 간 궁합
type CompatibilityResult struct {
	Score   int      `json:"score"`   // 0~100
	Factors []string `json:"factors"` // 적용된 가감 요인 (설명용)
}

// TeamMember 팀 멤버 (ID ↔ 프로필 매핑은 팀 서비스 책임)
type TeamMember struct {
	ID      string           `json:"id"`
	Profile ElementalProfile `json:"profile"`
}

// UnmarshalJSON profile 누락 시 에러
func (m *TeamMember) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      string            `json:"id"`
		Profile *ElementalProfile `json:"profile"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Profile == nil {
		return fmt.Errorf("member %q: profile is required", raw.ID)
	}

	*m = TeamMember{ID: raw.ID, Profile: *raw.Profile}
	return nil
}

// TeamDynamicsReport 팀 궁합 리포트
type TeamDynamicsReport struct {
	// PairwiseScores[a][b] = Compatibility(a, b), a != b (순서 있음)
	PairwiseScores      map[string]map[string]int `json:"pairwise_scores"`
	ElementDistribution map[Element]int           `json:"element_distribution"`
	OverallBalance      float64                   `json:"overall_balance"`
	MissingElements     []Element                 `json:"missing_elements"`
	DominantElement     *Element                  `json:"dominant_element,omitempty"`
	MemberCount         int                       `json:"member_count"`
}

// Score returns the pairwise score of (a, b)
func (r *TeamDynamicsReport) Score(a, b string) (int, bool) {
	row, ok := r.PairwiseScores[a]
	if !ok {
		return 0, false
	}
	score, ok := row[b]
	return score, ok
}
