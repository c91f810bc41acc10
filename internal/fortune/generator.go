// Package fortune generates daily and weekly fortune records from a birth date
// and a target date.
package fortune

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/element"
	"github.com/wonny/ohaeng/backend/internal/fortuneconfig"
)

// ErrInvalidDate 날짜 텍스트가 YYYY-MM-DD 형식이 아님 (호출자 전제조건 위반)
var ErrInvalidDate = errors.New("invalid date")

// Generator 일간/주간 운세 생성기
// 상태 없음: 테이블은 읽기 전용, 난수원만 주입
type Generator struct {
	tables *fortuneconfig.Tables
	rng    RandomSource
	log    zerolog.Logger
}

// NewGenerator creates a generator with the built-in tables
func NewGenerator(rng RandomSource, log zerolog.Logger) *Generator {
	return NewGeneratorWithTables(fortuneconfig.DefaultTables(), rng, log)
}

// NewGeneratorWithTables creates a generator with custom scoring tables
func NewGeneratorWithTables(tables *fortuneconfig.Tables, rng RandomSource, log zerolog.Logger) *Generator {
	if tables == nil {
		tables = fortuneconfig.DefaultTables()
	}
	if rng == nil {
		rng = NewLockedRand(0)
	}
	return &Generator{
		tables: tables,
		rng:    rng,
		log:    log.With().Str("component", "fortune.generator").Logger(),
	}
}

// TablesHash returns the hash of the scoring tables in use
func (g *Generator) TablesHash() string {
	return g.tables.Hash
}

// ParseDate parses YYYY-MM-DD; malformed input wraps ErrInvalidDate
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(contracts.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return t, nil
}

// GenerateDailyFromText parses both dates and generates the daily record
func (g *Generator) GenerateDailyFromText(birth, target string) (*contracts.DailyFortuneRecord, error) {
	birthDate, err := ParseDate(birth)
	if err != nil {
		return nil, fmt.Errorf("birth date: %w", err)
	}
	targetDate, err := ParseDate(target)
	if err != nil {
		return nil, fmt.Errorf("target date: %w", err)
	}

	record := g.GenerateDaily(birthDate, targetDate)
	return &record, nil
}

// GenerateDaily computes the full fortune record for one (birth, target) pair
func (g *Generator) GenerateDaily(birth, target time.Time) contracts.DailyFortuneRecord {
	// 1. 개인 프로필 / 일진
	profile := element.PersonalElement(birth)
	dayElem, dayPol := element.DayElement(target)
	personal := profile.MainElement

	// 2. 종합 점수
	overall := element.BaseLuckScore(personal, dayElem, profile.Polarity, dayPol)

	// 3. 카테고리 점수
	scores := g.categoryScores(overall, personal, dayElem)

	// 4. 최고 카테고리 (동점 시 우선순위)
	highest := scores.Highest()

	// 5~6. 텍스트
	tier := contracts.TierFor(overall)
	relation := element.RelationBetween(personal, dayElem)

	record := contracts.DailyFortuneRecord{
		Date:                 dateOnly(target),
		DailyElement:         dayElem,
		DailyPolarity:        dayPol,
		OverallScore:         overall,
		CategoryScores:       scores,
		Description:          describe(tier, personal, dayElem, dayPol, relation),
		Advice:               advise(tier, highest, dayElem),
		LuckyColors:          g.luckyColors(dayElem),
		LuckyDirections:      g.luckyDirections(personal, dayElem),
		CompatibleElements:   compatibleElements(dayElem),
		IncompatibleElements: incompatibleElements(dayElem),
	}

	g.log.Debug().
		Str("target", record.Date.Format(contracts.DateLayout)).
		Str("personal", personal.String()).
		Str("day_element", dayElem.String()).
		Str("relation", string(relation)).
		Int("overall", overall).
		Str("highest", highest.String()).
		Msg("daily fortune generated")

	return record
}

// dateOnly normalizes to midnight UTC so records are stable across time zones
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
