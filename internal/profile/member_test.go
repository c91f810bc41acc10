package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/ohaeng/backend/internal/contracts"
)

func TestMember_Profile(t *testing.T) {
	m := Member{ID: "m1", TeamID: "core", BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)}

	p := m.Profile()
	assert.Equal(t, contracts.Metal, p.MainElement)
	require.NotNil(t, p.SecondaryElement)
	assert.Equal(t, contracts.Metal, *p.SecondaryElement)
	assert.Equal(t, contracts.Yang, p.Polarity)

	tm := m.TeamMember()
	assert.Equal(t, "m1", tm.ID)
	assert.Equal(t, p, tm.Profile)
}

func TestMember_Validate(t *testing.T) {
	birth := time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		member  Member
		wantErr bool
	}{
		{"valid", Member{ID: "m1", TeamID: "core", BirthDate: birth}, false},
		{"missing id", Member{TeamID: "core", BirthDate: birth}, true},
		{"missing team", Member{ID: "m1", BirthDate: birth}, true},
		{"missing birth", Member{ID: "m1", TeamID: "core"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.member.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTeamMembers_PreservesOrder(t *testing.T) {
	members := []Member{
		{ID: "b", BirthDate: time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "a", BirthDate: time.Date(1992, 2, 2, 0, 0, 0, 0, time.UTC)},
	}

	out := TeamMembers(members)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
}
