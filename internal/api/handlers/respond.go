package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wonny/ohaeng/backend/internal/fortune"
	"github.com/wonny/ohaeng/backend/internal/profile"
	"github.com/wonny/ohaeng/backend/pkg/logger"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// respondServiceError maps service errors to HTTP status
// 입력 형식 오류 → 400, 없는 멤버 → 404, 그 외 → 500 (메시지 숨김)
func respondServiceError(w http.ResponseWriter, log *logger.Logger, err error, action string) {
	switch {
	case errors.Is(err, fortune.ErrInvalidDate), errors.Is(err, fortune.ErrInvalidDays):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, profile.ErrMemberNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		log.WithError(err).Error(action + " failed")
		respondError(w, http.StatusInternalServerError, action+" failed")
	}
}
