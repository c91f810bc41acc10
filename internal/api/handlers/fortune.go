package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/wonny/ohaeng/backend/internal/advisor"
	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/fortune"
	"github.com/wonny/ohaeng/backend/internal/service"
	"github.com/wonny/ohaeng/backend/pkg/logger"
)

// defaultForecastDays weekly 요청에 days가 없을 때
const defaultForecastDays = 7

// FortuneHandler handles fortune API endpoints
// ⭐ SSOT: 운세 API 핸들러는 이 구조체에서만
type FortuneHandler struct {
	forecasts *service.ForecastService
	logger    *logger.Logger
}

// NewFortuneHandler creates a new fortune handler
func NewFortuneHandler(forecasts *service.ForecastService, log *logger.Logger) *FortuneHandler {
	return &FortuneHandler{
		forecasts: forecasts,
		logger:    log,
	}
}

// GetDaily returns the daily fortune record
// GET /api/fortune/daily?birth=YYYY-MM-DD&date=YYYY-MM-DD (date 생략 시 오늘)
func (h *FortuneHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	birth, date, ok := birthAndDate(w, r)
	if !ok {
		return
	}

	record, err := h.forecasts.DailyFromText(r.Context(), birth, date)
	if err != nil {
		respondServiceError(w, h.logger, err, "daily fortune")
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// GetWeekly returns consecutive overall scores
// GET /api/fortune/weekly?birth=YYYY-MM-DD&start=YYYY-MM-DD&days=7
func (h *FortuneHandler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	birth, start := q.Get("birth"), q.Get("start")
	if birth == "" || start == "" {
		respondError(w, http.StatusBadRequest, "birth and start are required")
		return
	}

	days := defaultForecastDays
	if v := q.Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = n
	}

	forecast, err := h.forecasts.WeeklyFromText(r.Context(), birth, start, days)
	if err != nil {
		respondServiceError(w, h.logger, err, "weekly forecast")
		return
	}

	respondJSON(w, http.StatusOK, forecast)
}

// GetContext returns the advisor prompt context built from the daily record
// GET /api/fortune/context?birth=YYYY-MM-DD&date=YYYY-MM-DD (date 생략 시 오늘)
func (h *FortuneHandler) GetContext(w http.ResponseWriter, r *http.Request) {
	birth, date, ok := birthAndDate(w, r)
	if !ok {
		return
	}

	record, err := h.forecasts.DailyFromText(r.Context(), birth, date)
	if err != nil {
		respondServiceError(w, h.logger, err, "daily fortune")
		return
	}

	promptCtx, err := advisor.BuildContext(record)
	if err != nil {
		respondServiceError(w, h.logger, err, "advisor context")
		return
	}

	respondJSON(w, http.StatusOK, promptCtx)
}

// GetHistory lists stored daily records for a birth date
// GET /api/fortune/history?birth=YYYY-MM-DD&from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *FortuneHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	dates := make([]time.Time, 0, 3)
	for _, name := range []string{"birth", "from", "to"} {
		d, err := fortune.ParseDate(q.Get(name))
		if err != nil {
			respondError(w, http.StatusBadRequest, name+": "+err.Error())
			return
		}
		dates = append(dates, d)
	}

	records, err := h.forecasts.History(r.Context(), dates[0], dates[1], dates[2])
	if err != nil {
		respondServiceError(w, h.logger, err, "fortune history")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(records),
		"records": records,
	})
}

// birthAndDate birth는 필수, date는 서버 로컬 기준 오늘로 기본값
func birthAndDate(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	q := r.URL.Query()
	birth, date := q.Get("birth"), q.Get("date")
	if birth == "" {
		respondError(w, http.StatusBadRequest, "birth is required")
		return "", "", false
	}
	if date == "" {
		date = time.Now().Format(contracts.DateLayout)
	}
	return birth, date, true
}
