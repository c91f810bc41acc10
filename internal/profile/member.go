// Package profile stores team members and derives their elemental profiles.
package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/element"
)

// ErrMemberNotFound 멤버 ID 조회 실패
var ErrMemberNotFound = errors.New("member not found")

// Member 팀 멤버 (프로필은 생년월일에서 파생, 저장하지 않음)
type Member struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile derives the elemental profile from the birth date
func (m Member) Profile() contracts.ElementalProfile {
	return element.PersonalElement(m.BirthDate)
}

// TeamMember converts to the analyzer input
func (m Member) TeamMember() contracts.TeamMember {
	return contracts.TeamMember{ID: m.ID, Profile: m.Profile()}
}

// Validate checks required fields
func (m Member) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("member id is required")
	}
	if strings.TrimSpace(m.TeamID) == "" {
		return fmt.Errorf("member %s: team id is required", m.ID)
	}
	if m.BirthDate.IsZero() {
		return fmt.Errorf("member %s: birth date is required", m.ID)
	}
	return nil
}

// TeamMembers converts members to analyzer inputs, preserving order
func TeamMembers(members []Member) []contracts.TeamMember {
	out := make([]contracts.TeamMember, 0, len(members))
	for _, m := range members {
		out = append(out, m.TeamMember())
	}
	return out
}
