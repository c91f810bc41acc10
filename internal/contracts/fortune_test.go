package contracts

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCategoryScores_Highest(t *testing.T) {
	tests := []struct {
		name   string
		scores CategoryScores
		want   Category
	}{
		{
			name:   "clear winner",
			scores: CategoryScores{Career: 40, Relationship: 55, Creativity: 70, Health: 30, Wealth: 20},
			want:   CategoryCreativity,
		},
		{
			name:   "all tied picks career",
			scores: CategoryScores{Career: 50, Relationship: 50, Creativity: 50, Health: 50, Wealth: 50},
			want:   CategoryCareer,
		},
		{
			name:   "tie between health and wealth",
			scores: CategoryScores{Career: 10, Relationship: 10, Creativity: 10, Health: 90, Wealth: 90},
			want:   CategoryHealth,
		},
		{
			name:   "wealth only",
			scores: CategoryScores{Career: 1, Relationship: 1, Creativity: 1, Health: 1, Wealth: 2},
			want:   CategoryWealth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scores.Highest(); got != tt.want {
				t.Errorf("Highest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategoryScores_GetSet(t *testing.T) {
	var s CategoryScores
	for i, c := range AllCategories() {
		s.Set(c, 10*(i+1))
	}
	for i, c := range AllCategories() {
		if got := s.Get(c); got != 10*(i+1) {
			t.Errorf("Get(%s) = %d, want %d", c, got, 10*(i+1))
		}
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  LuckTier
	}{
		{100, TierExcellent},
		{85, TierExcellent},
		{84, TierGood},
		{70, TierGood},
		{69, TierNeutral},
		{45, TierNeutral},
		{44, TierCaution},
		{30, TierCaution},
		{29, TierPoor},
		{1, TierPoor},
	}

	for _, tt := range tests {
		if got := TierFor(tt.score); got != tt.want {
			t.Errorf("TierFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestDailyFortuneRecord_JSON(t *testing.T) {
	record := DailyFortuneRecord{
		Date:                 time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		DailyElement:         Fire,
		DailyPolarity:        Yin,
		OverallScore:         40,
		CategoryScores:       CategoryScores{Career: 32, Relationship: 42, Creativity: 38, Health: 32, Wealth: 32},
		LuckyColors:          []string{"red"},
		LuckyDirections:      []string{"south"},
		CompatibleElements:   []Element{Wood, Earth},
		IncompatibleElements: []Element{Metal, Water},
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if raw["daily_element"] != "fire" {
		t.Errorf("daily_element = %v, want fire", raw["daily_element"])
	}
	if raw["daily_polarity"] != "yin" {
		t.Errorf("daily_polarity = %v, want yin", raw["daily_polarity"])
	}

	var decoded DailyFortuneRecord
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if decoded.DailyElement != Fire || decoded.CompatibleElements[1] != Earth {
		t.Errorf("element fields not preserved: %+v", decoded)
	}
}
