package api

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/wonny/ohaeng/backend/internal/api/handlers"
	"github.com/wonny/ohaeng/backend/pkg/logger"
	"github.com/wonny/ohaeng/backend/pkg/redis"
)

// Handlers groups the API handlers
type Handlers struct {
	Fortune *handlers.FortuneHandler
	Team    *handlers.TeamHandler
}

// Limits request throttling
// Global: 프로세스 전체 토큰 버킷, Clients: Redis 공유 클라이언트별 윈도우
type Limits struct {
	Global      *rate.Limiter
	Clients     *redis.RateLimiter
	ClientLimit int // per minute
}

// NewRouter creates and configures the HTTP router
// ⭐ SSOT: 라우팅 설정은 이 함수에서만
func NewRouter(h Handlers, limits Limits, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Fortune endpoints
	api.HandleFunc("/fortune/daily", h.Fortune.GetDaily).Methods("GET")
	api.HandleFunc("/fortune/weekly", h.Fortune.GetWeekly).Methods("GET")
	api.HandleFunc("/fortune/context", h.Fortune.GetContext).Methods("GET")
	api.HandleFunc("/fortune/history", h.Fortune.GetHistory).Methods("GET")

	// Compatibility / team endpoints
	api.HandleFunc("/compatibility", h.Team.Compatibility).Methods("POST")
	api.HandleFunc("/team/analyze", h.Team.Analyze).Methods("POST")
	api.HandleFunc("/team/{teamID}/dynamics", h.Team.GetDynamics).Methods("GET")
	api.HandleFunc("/members/{a}/compatibility/{b}", h.Team.GetMemberCompatibility).Methods("GET")

	api.Use(rateLimitMiddleware(limits, log))

	// Apply middleware
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "ohaeng-api",
	})
}

// statusRecorder captures the response status for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			// Call next handler
			next.ServeHTTP(rec, r)

			// Log request
			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// rateLimitMiddleware rejects requests over the global or per-client limit
func rateLimitMiddleware(limits Limits, log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limits.Global != nil && !limits.Global.Allow() {
				tooManyRequests(w, time.Second)
				return
			}

			if limits.Clients != nil && limits.ClientLimit > 0 {
				cfg := redis.ClientRateLimit(clientIP(r), limits.ClientLimit)
				allowed, remaining, err := limits.Clients.Allow(r.Context(), cfg)
				if err != nil {
					// Redis 장애 시 요청은 통과
					log.WithError(err).Warn("client rate limit check failed")
				} else {
					w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
					if !allowed {
						tooManyRequests(w, cfg.Window)
						return
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func tooManyRequests(w http.ResponseWriter, retryAfter time.Duration) {
	w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	json.NewEncoder(w).Encode(map[string]string{
		"error": "rate limit exceeded",
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// recoveryMiddleware recovers from panics
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// NewGlobalLimiter builds the token bucket (rps <= 0 → nil, unlimited)
func NewGlobalLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
