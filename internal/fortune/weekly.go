package fortune

import (
	"errors"
	"fmt"
	"time"

	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/element"
)

// MaxForecastDays 텍스트 입력 경로의 최대 일수
const MaxForecastDays = 31

// ErrInvalidDays 예보 일수가 [1, MaxForecastDays] 밖
var ErrInvalidDays = errors.New("invalid forecast days")

// GenerateWeekly computes the overall score for `days` consecutive dates
// 날짜 간 상태 없음, 난수 미사용
func (g *Generator) GenerateWeekly(birth, start time.Time, days int) contracts.WeeklyForecast {
	forecast := contracts.WeeklyForecast{
		StartDate: dateOnly(start),
		Days:      []contracts.DailyScore{},
	}
	if days <= 0 {
		return forecast
	}

	profile := element.PersonalElement(birth)

	var sum int
	var best, worst *contracts.DailyScore
	for i := 0; i < days; i++ {
		date := forecast.StartDate.AddDate(0, 0, i)
		dayElem, dayPol := element.DayElement(date)

		forecast.Days = append(forecast.Days, contracts.DailyScore{
			Date:          date,
			DailyElement:  dayElem,
			DailyPolarity: dayPol,
			OverallScore:  element.BaseLuckScore(profile.MainElement, dayElem, profile.Polarity, dayPol),
		})
	}

	for i := range forecast.Days {
		d := &forecast.Days[i]
		sum += d.OverallScore
		if best == nil || d.OverallScore > best.OverallScore {
			best = d
		}
		if worst == nil || d.OverallScore < worst.OverallScore {
			worst = d
		}
	}

	bestDate, worstDate := best.Date, worst.Date
	forecast.BestDate = &bestDate
	forecast.WorstDate = &worstDate
	forecast.AverageScore = float64(sum) / float64(len(forecast.Days))

	g.log.Debug().
		Str("start", forecast.StartDate.Format(contracts.DateLayout)).
		Int("days", days).
		Float64("average", forecast.AverageScore).
		Msg("weekly forecast generated")

	return forecast
}

// GenerateWeeklyFromText parses dates and validates the day count
func (g *Generator) GenerateWeeklyFromText(birth, start string, days int) (*contracts.WeeklyForecast, error) {
	birthDate, err := ParseDate(birth)
	if err != nil {
		return nil, fmt.Errorf("birth date: %w", err)
	}
	startDate, err := ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	if days < 1 || days > MaxForecastDays {
		return nil, fmt.Errorf("%w: days must be in [1, %d], got %d", ErrInvalidDays, MaxForecastDays, days)
	}

	forecast := g.GenerateWeekly(birthDate, startDate, days)
	return &forecast, nil
}
