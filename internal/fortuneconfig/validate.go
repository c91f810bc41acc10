package fortuneconfig

import (
	"fmt"

	"github.com/wonny/ohaeng/backend/internal/contracts"
)

// Limits
const (
	MaxAmount   = 30
	MaxNoise    = 20
	maxRelation = 30
)

// ValidationError 검증 실패
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks all required constraints
func Validate(cfg *Config) error {
	if cfg == nil {
		return ValidationError{"config", "required"}
	}

	// === Meta ===
	if cfg.Meta.TableID == "" {
		return ValidationError{"meta.table_id", "required"}
	}

	// === Categories ===
	// 다섯 카테고리가 정확히 한 번씩
	if len(cfg.Categories) != contracts.CategoryCount {
		return ValidationError{"categories", fmt.Sprintf("must list exactly %d categories, got %d", contracts.CategoryCount, len(cfg.Categories))}
	}

	seen := make(map[contracts.Category]bool, contracts.CategoryCount)
	for i, rule := range cfg.Categories {
		field := fmt.Sprintf("categories[%d]", i)

		category, err := contracts.ParseCategory(rule.Category)
		if err != nil {
			return ValidationError{field + ".category", err.Error()}
		}
		if seen[category] {
			return ValidationError{field + ".category", fmt.Sprintf("duplicate category %s", category)}
		}
		seen[category] = true

		// 고정 순서: 같은 입력이면 항상 같은 첫 에러
		bonuses := []struct {
			name  string
			bonus ElementBonus
		}{
			{"primary", rule.Primary},
			{"secondary", rule.Secondary},
			{"penalty", rule.Penalty},
		}
		elements := make([]contracts.Element, len(bonuses))
		for j, b := range bonuses {
			e, err := contracts.ParseElement(b.bonus.Element)
			if err != nil {
				return ValidationError{field + "." + b.name + ".element", err.Error()}
			}
			if b.bonus.Amount < 0 || b.bonus.Amount > MaxAmount {
				return ValidationError{field + "." + b.name + ".amount", fmt.Sprintf("must be in [0, %d]", MaxAmount)}
			}
			elements[j] = e
		}

		// 파싱된 원소로 비교 ("Metal" == "metal")
		if elements[0] == elements[1] {
			return ValidationError{field, "primary and secondary must be different elements"}
		}
	}

	// === Relation ===
	relation := []struct {
		field string
		value int
	}{
		{"relation.generated_by_day", cfg.Relation.GeneratedByDay},
		{"relation.generates_day", cfg.Relation.GeneratesDay},
		{"relation.controlled_by_day", cfg.Relation.ControlledByDay},
		{"relation.controls_day", cfg.Relation.ControlsDay},
	}
	for _, r := range relation {
		if r.value < 0 || r.value > maxRelation {
			return ValidationError{r.field, fmt.Sprintf("must be in [0, %d]", maxRelation)}
		}
	}

	// === Noise ===
	if cfg.NoiseMax < 0 || cfg.NoiseMax > MaxNoise {
		return ValidationError{"noise_max", fmt.Sprintf("must be in [0, %d]", MaxNoise)}
	}

	return nil
}
