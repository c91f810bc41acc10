package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/service"
	"github.com/wonny/ohaeng/backend/pkg/logger"
)

// maxTeamMembers ad-hoc 분석 요청 상한 (쌍 수 = n*(n-1))
const maxTeamMembers = 200

// TeamHandler handles compatibility and team endpoints
type TeamHandler struct {
	teams  *service.TeamService
	logger *logger.Logger
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teams *service.TeamService, log *logger.Logger) *TeamHandler {
	return &TeamHandler{
		teams:  teams,
		logger: log,
	}
}

type compatibilityRequest struct {
	A *contracts.ElementalProfile `json:"a"`
	B *contracts.ElementalProfile `json:"b"`
}

type analyzeRequest struct {
	Members []contracts.TeamMember `json:"members"`
}

// Compatibility scores two profiles (a against b)
// POST /api/compatibility
func (h *TeamHandler) Compatibility(w http.ResponseWriter, r *http.Request) {
	var req compatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.A == nil || req.B == nil {
		respondError(w, http.StatusBadRequest, "profiles a and b are required")
		return
	}

	respondJSON(w, http.StatusOK, h.teams.Compatibility(*req.A, *req.B))
}

// Analyze builds a team report from the posted members
// POST /api/team/analyze
func (h *TeamHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if len(req.Members) > maxTeamMembers {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("at most %d members", maxTeamMembers))
		return
	}

	seen := make(map[string]bool, len(req.Members))
	for _, m := range req.Members {
		if m.ID == "" {
			respondError(w, http.StatusBadRequest, "member id is required")
			return
		}
		if seen[m.ID] {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("duplicate member id %q", m.ID))
			return
		}
		seen[m.ID] = true
	}

	respondJSON(w, http.StatusOK, h.teams.AnalyzeProfiles(req.Members))
}

// GetDynamics analyzes a stored team
// GET /api/team/{teamID}/dynamics
func (h *TeamHandler) GetDynamics(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["teamID"]
	if teamID == "" {
		respondError(w, http.StatusBadRequest, "teamID is required")
		return
	}

	report, err := h.teams.AnalyzeTeam(r.Context(), teamID)
	if err != nil {
		respondServiceError(w, h.logger, err, "team dynamics")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// GetMemberCompatibility scores stored member a against stored member b
// GET /api/members/{a}/compatibility/{b}
func (h *TeamHandler) GetMemberCompatibility(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	result, err := h.teams.MemberCompatibility(r.Context(), vars["a"], vars["b"])
	if err != nil {
		respondServiceError(w, h.logger, err, "member compatibility")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
