package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/ohaeng/backend/internal/api/handlers"
	"github.com/wonny/ohaeng/backend/internal/compatibility"
	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/fortune"
	"github.com/wonny/ohaeng/backend/internal/profile"
	"github.com/wonny/ohaeng/backend/internal/service"
	"github.com/wonny/ohaeng/backend/pkg/logger"
)

type stubMembers struct {
	members []profile.Member
}

func (s stubMembers) GetMember(_ context.Context, id string) (*profile.Member, error) {
	for _, m := range s.members {
		if m.ID == id {
			found := m
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", profile.ErrMemberNotFound, id)
}

func (s stubMembers) ListByTeam(_ context.Context, teamID string) ([]profile.Member, error) {
	var out []profile.Member
	for _, m := range s.members {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s stubMembers) SaveMember(context.Context, profile.Member) error {
	return nil
}

func (s stubMembers) DeleteMember(_ context.Context, id string) error {
	return fmt.Errorf("%w: %s", profile.ErrMemberNotFound, id)
}

func (s stubMembers) ListAll(_ context.Context) ([]profile.Member, error) {
	return s.members, nil
}

func newTestRouter(t *testing.T, limits Limits) http.Handler {
	t.Helper()

	log := logger.Nop()
	gen := fortune.NewGenerator(fortune.NewLockedRand(42), zerolog.Nop())
	forecasts, err := service.NewForecastService(gen, service.ForecastOptions{CacheSize: 8}, zerolog.Nop())
	require.NoError(t, err)

	members := stubMembers{members: []profile.Member{
		{ID: "ana", TeamID: "core", BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "bo", TeamID: "core", BirthDate: time.Date(1987, 8, 21, 0, 0, 0, 0, time.UTC)},
	}}
	teams := service.NewTeamService(members, compatibility.NewAnalyzer(zerolog.Nop()), nil, zerolog.Nop())

	return NewRouter(Handlers{
		Fortune: handlers.NewFortuneHandler(forecasts, log),
		Team:    handlers.NewTeamHandler(teams, log),
	}, limits, log)
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &payload)
	return rec, payload
}

func TestHealth(t *testing.T) {
	rec, payload := do(t, newTestRouter(t, Limits{}), "GET", "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", payload["status"])
}

func TestFortuneEndpoints(t *testing.T) {
	router := newTestRouter(t, Limits{})

	tests := []struct {
		name       string
		target     string
		wantStatus int
		check      func(t *testing.T, payload map[string]interface{})
	}{
		{
			name:       "daily",
			target:     "/api/fortune/daily?birth=1990-03-15&date=2024-06-01",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, p map[string]interface{}) {
				assert.Equal(t, float64(40), p["overall_score"])
				assert.Equal(t, "fire", p["daily_element"])
				assert.Len(t, p["lucky_colors"], 3)
			},
		},
		{
			name:       "daily malformed birth",
			target:     "/api/fortune/daily?birth=15-03-1990&date=2024-06-01",
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, p map[string]interface{}) {
				assert.Contains(t, p["error"], "birth date")
			},
		},
		{
			name:       "daily missing birth",
			target:     "/api/fortune/daily?date=2024-06-01",
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, p map[string]interface{}) {
				assert.Equal(t, "birth is required", p["error"])
			},
		},
		{
			name:       "weekly default days",
			target:     "/api/fortune/weekly?birth=1990-03-15&start=2024-06-01",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, p map[string]interface{}) {
				assert.Len(t, p["days"], 7)
				assert.InDelta(t, 365.0/7.0, p["average_score"], 1e-9)
			},
		},
		{
			name:       "weekly too many days",
			target:     "/api/fortune/weekly?birth=1990-03-15&start=2024-06-01&days=40",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "weekly non-numeric days",
			target:     "/api/fortune/weekly?birth=1990-03-15&start=2024-06-01&days=week",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "history without store",
			target:     "/api/fortune/history?birth=1990-03-15&from=2024-06-01&to=2024-06-07",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, p map[string]interface{}) {
				assert.Equal(t, float64(0), p["count"])
			},
		},
		{
			name:       "history bad range",
			target:     "/api/fortune/history?birth=1990-03-15&from=2024-06-07&to=2024-06-01",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "history missing from",
			target:     "/api/fortune/history?birth=1990-03-15&to=2024-06-01",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "advisor context",
			target:     "/api/fortune/context?birth=1990-03-15&date=2024-06-01",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, p map[string]interface{}) {
				assert.Equal(t, "caution", p["tier"])
				assert.Contains(t, p["text"], "Fire day, overall score 40/100")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, payload := do(t, router, "GET", tt.target, "")
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.check != nil {
				tt.check(t, payload)
			}
		})
	}
}

func TestFortuneEndpoints_DateDefaultsToToday(t *testing.T) {
	router := newTestRouter(t, Limits{})

	for _, path := range []string{"/api/fortune/daily", "/api/fortune/context"} {
		t.Run(path, func(t *testing.T) {
			before := time.Now().Format(contracts.DateLayout)
			rec, payload := do(t, router, "GET", path+"?birth=1990-03-15", "")
			after := time.Now().Format(contracts.DateLayout)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			date, _ := payload["date"].(string)
			assert.True(t, strings.HasPrefix(date, before) || strings.HasPrefix(date, after), date)
		})
	}
}

func TestCompatibilityEndpoint(t *testing.T) {
	router := newTestRouter(t, Limits{})

	rec, payload := do(t, router, "POST", "/api/compatibility",
		`{"a":{"main_element":"wood","polarity":"yang"},"b":{"main_element":"fire","polarity":"yin"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(80), payload["score"])

	rec, _ = do(t, router, "POST", "/api/compatibility",
		`{"a":{"main_element":"lava","polarity":"yang"},"b":{"main_element":"fire","polarity":"yin"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, router, "POST", "/api/compatibility", `{"a":{"main_element":"wood","polarity":"yang"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, payload = do(t, router, "POST", "/api/compatibility", `{"a":{},"b":{}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, payload["error"], "main_element is required")

	rec, payload = do(t, router, "POST", "/api/compatibility",
		`{"a":{"main_element":"wood"},"b":{"main_element":"fire","polarity":"yin"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, payload["error"], "polarity is required")
}

func TestTeamEndpoints(t *testing.T) {
	router := newTestRouter(t, Limits{})

	t.Run("analyze", func(t *testing.T) {
		rec, payload := do(t, router, "POST", "/api/team/analyze", `{"members":[
			{"id":"a","profile":{"main_element":"wood","polarity":"yang"}},
			{"id":"b","profile":{"main_element":"fire","polarity":"yin"}},
			{"id":"c","profile":{"main_element":"earth","polarity":"yang"}}]}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, float64(3), payload["member_count"])
		assert.Equal(t, []interface{}{"metal", "water"}, payload["missing_elements"])
		assert.Equal(t, "wood", payload["dominant_element"])
	})

	t.Run("analyze empty team", func(t *testing.T) {
		rec, payload := do(t, router, "POST", "/api/team/analyze", `{"members":[]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(100), payload["overall_balance"])
	})

	t.Run("analyze duplicate ids", func(t *testing.T) {
		rec, _ := do(t, router, "POST", "/api/team/analyze", `{"members":[
			{"id":"a","profile":{"main_element":"wood","polarity":"yang"}},
			{"id":"a","profile":{"main_element":"fire","polarity":"yin"}}]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("analyze member without polarity", func(t *testing.T) {
		rec, payload := do(t, router, "POST", "/api/team/analyze", `{"members":[
			{"id":"a","profile":{"main_element":"wood","polarity":"yang"}},
			{"id":"b","profile":{"main_element":"fire"}}]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, payload["error"], "polarity is required")
	})

	t.Run("analyze member without profile", func(t *testing.T) {
		rec, payload := do(t, router, "POST", "/api/team/analyze", `{"members":[{"id":"a"}]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, payload["error"], "profile is required")
	})

	t.Run("stored team dynamics", func(t *testing.T) {
		rec, payload := do(t, router, "GET", "/api/team/core/dynamics", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), payload["member_count"])
	})

	t.Run("member compatibility", func(t *testing.T) {
		rec, payload := do(t, router, "GET", "/api/members/ana/compatibility/bo", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, payload, "score")
	})

	t.Run("unknown member", func(t *testing.T) {
		rec, _ := do(t, router, "GET", "/api/members/ana/compatibility/zed", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRateLimit(t *testing.T) {
	router := newTestRouter(t, Limits{Global: NewGlobalLimiter(0.001, 1)})

	rec, _ := do(t, router, "GET", "/api/fortune/daily?birth=1990-03-15&date=2024-06-01", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, payload := do(t, router, "GET", "/api/fortune/daily?birth=1990-03-15&date=2024-06-01", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate limit exceeded", payload["error"])
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// health는 제한 없음
	rec, _ = do(t, router, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewGlobalLimiter(t *testing.T) {
	assert.Nil(t, NewGlobalLimiter(0, 10))
	limiter := NewGlobalLimiter(5, 0)
	require.NotNil(t, limiter)
	assert.Equal(t, 1, limiter.Burst())
}

func TestRecoveryMiddleware(t *testing.T) {
	h := recoveryMiddleware(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec, payload := do(t, h, "GET", "/anything", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", payload["error"])
}
