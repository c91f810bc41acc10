package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wonny/ohaeng/backend/internal/compatibility"
	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/profile"
	"github.com/wonny/ohaeng/backend/pkg/redis"
)

// TeamService 저장된 멤버 기반 궁합/팀 분석
type TeamService struct {
	members  MemberStore
	analyzer *compatibility.Analyzer
	cache    Cache // nil 이면 캐시 생략
	log      zerolog.Logger
}

// NewTeamService creates the service
func NewTeamService(members MemberStore, analyzer *compatibility.Analyzer, cache Cache, log zerolog.Logger) *TeamService {
	return &TeamService{
		members:  members,
		analyzer: analyzer,
		cache:    cache,
		log:      log.With().Str("component", "service.team").Logger(),
	}
}

// MemberCompatibility scores stored member a against stored member b
func (s *TeamService) MemberCompatibility(ctx context.Context, idA, idB string) (*contracts.CompatibilityResult, error) {
	a, err := s.members.GetMember(ctx, idA)
	if err != nil {
		return nil, err
	}
	b, err := s.members.GetMember(ctx, idB)
	if err != nil {
		return nil, err
	}

	result := s.analyzer.CalculatePersonalCompatibility(a.Profile(), b.Profile())
	return &result, nil
}

// AnalyzeTeam builds the dynamics report for a stored team
// 멤버가 없는 팀도 에러가 아니다 (sentinel balance)
// 캐시 장애 시 저장소에서 직접 계산 (Weekly와 동일)
func (s *TeamService) AnalyzeTeam(ctx context.Context, teamID string) (*contracts.TeamDynamicsReport, error) {
	var loadErr error
	load := func() (interface{}, error) {
		members, err := s.members.ListByTeam(ctx, teamID)
		if err != nil {
			loadErr = fmt.Errorf("list team %s: %w", teamID, err)
			return nil, loadErr
		}
		return s.analyzer.AnalyzeTeamDynamics(profile.TeamMembers(members)), nil
	}

	if s.cache != nil {
		var report contracts.TeamDynamicsReport
		err := s.cache.GetOrSet(ctx, redis.TeamKey(teamID), &report, redis.TTLShort, load)
		if err == nil {
			s.log.Debug().Str("team_id", teamID).Int("members", report.MemberCount).Msg("team analyzed")
			return &report, nil
		}
		if loadErr != nil {
			return nil, loadErr
		}
		s.log.Warn().Err(err).Str("team_id", teamID).Msg("team cache unavailable, computing directly")
	}

	v, err := load()
	if err != nil {
		return nil, err
	}
	report := v.(contracts.TeamDynamicsReport)
	return &report, nil
}

// SaveMember stores m and drops the cached reports of its old and new team
func (s *TeamService) SaveMember(ctx context.Context, m profile.Member) error {
	if err := m.Validate(); err != nil {
		return err
	}

	var oldTeam string
	prev, err := s.members.GetMember(ctx, m.ID)
	switch {
	case err == nil:
		oldTeam = prev.TeamID
	case errors.Is(err, profile.ErrMemberNotFound):
	default:
		return err
	}

	if err := s.members.SaveMember(ctx, m); err != nil {
		return err
	}

	s.invalidateTeam(ctx, m.TeamID)
	if oldTeam != "" && oldTeam != m.TeamID {
		s.invalidateTeam(ctx, oldTeam)
	}
	return nil
}

// RemoveMember deletes a stored member and drops its team's cached report
func (s *TeamService) RemoveMember(ctx context.Context, id string) error {
	m, err := s.members.GetMember(ctx, id)
	if err != nil {
		return err
	}
	if err := s.members.DeleteMember(ctx, id); err != nil {
		return err
	}

	s.invalidateTeam(ctx, m.TeamID)
	return nil
}

// invalidateTeam 실패해도 멤버 변경은 유지 (TTL 만료까지 stale 가능, 경고만)
func (s *TeamService) invalidateTeam(ctx context.Context, teamID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, redis.TeamKey(teamID)); err != nil {
		s.log.Warn().Err(err).Str("team_id", teamID).Msg("team cache invalidation failed")
	}
}

// AnalyzeProfiles analyzes ad-hoc members (no storage)
func (s *TeamService) AnalyzeProfiles(members []contracts.TeamMember) contracts.TeamDynamicsReport {
	return s.analyzer.AnalyzeTeamDynamics(members)
}

// Compatibility scores two ad-hoc profiles
func (s *TeamService) Compatibility(a, b contracts.ElementalProfile) contracts.CompatibilityResult {
	return s.analyzer.CalculatePersonalCompatibility(a, b)
}
