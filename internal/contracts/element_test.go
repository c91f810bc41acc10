package contracts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseElement(t *testing.T) {
	for _, e := range AllElements() {
		got, err := ParseElement(e.Title())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}

	_, err := ParseElement("aether")
	assert.Error(t, err)
}

func TestElement_Invalid(t *testing.T) {
	bad := Element(9)
	assert.False(t, bad.Valid())
	assert.Equal(t, "element(9)", bad.String())

	_, err := json.Marshal(bad)
	assert.Error(t, err)
}

func TestParsePolarity(t *testing.T) {
	p, err := ParsePolarity(" YANG ")
	require.NoError(t, err)
	assert.Equal(t, Yang, p)

	_, err = ParsePolarity("both")
	assert.Error(t, err)
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		input   string
		want    ElementalProfile
		wantErr bool
	}{
		{input: "metal/water:yang", want: ElementalProfile{MainElement: Metal, SecondaryElement: ElementPtr(Water), Polarity: Yang}},
		{input: "fire:yin", want: ElementalProfile{MainElement: Fire, Polarity: Yin}},
		{input: "Wood/Wood:Yin", want: ElementalProfile{MainElement: Wood, SecondaryElement: ElementPtr(Wood), Polarity: Yin}},
		{input: "fire", wantErr: true},
		{input: "fire/air:yin", wantErr: true},
		{input: "stone:yang", wantErr: true},
		{input: "fire:up", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseProfile(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestElementalProfile_String(t *testing.T) {
	p := ElementalProfile{MainElement: Metal, SecondaryElement: ElementPtr(Water), Polarity: Yang}
	assert.Equal(t, "metal/water:yang", p.String())

	roundTrip, err := ParseProfile(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, roundTrip)
}

func TestElementalProfile_JSON(t *testing.T) {
	data := []byte(`{"main_element":"earth","polarity":"yin"}`)

	var p ElementalProfile
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, Earth, p.MainElement)
	assert.Equal(t, Yin, p.Polarity)
	assert.False(t, p.HasSecondary())

	err := json.Unmarshal([]byte(`{"main_element":"plasma","polarity":"yin"}`), &p)
	assert.Error(t, err)
}

func TestElementalProfile_JSONRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty object", `{}`, "main_element is required"},
		{"missing polarity", `{"main_element":"fire"}`, "polarity is required"},
		{"missing main element", `{"polarity":"yang"}`, "main_element is required"},
		{"null main element", `{"main_element":null,"polarity":"yang"}`, "main_element is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p ElementalProfile
			err := json.Unmarshal([]byte(tt.input), &p)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	t.Run("round trip with secondary", func(t *testing.T) {
		in := ElementalProfile{MainElement: Metal, SecondaryElement: ElementPtr(Water), Polarity: Yang}
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out ElementalProfile
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})
}

func TestTeamMember_JSONRequiresProfile(t *testing.T) {
	var m TeamMember
	assert.ErrorContains(t, json.Unmarshal([]byte(`{"id":"a"}`), &m), "profile is required")
	assert.ErrorContains(t, json.Unmarshal([]byte(`{"id":"a","profile":null}`), &m), "profile is required")
	assert.ErrorContains(t, json.Unmarshal([]byte(`{"id":"a","profile":{"main_element":"wood"}}`), &m), "polarity is required")

	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","profile":{"main_element":"wood","polarity":"yang"}}`), &m))
	assert.Equal(t, TeamMember{ID: "a", Profile: ElementalProfile{MainElement: Wood, Polarity: Yang}}, m)
}

func TestElementDistribution_JSONKeys(t *testing.T) {
	dist := map[Element]int{Wood: 2, Water: 1}
	data, err := json.Marshal(dist)
	require.NoError(t, err)
	assert.JSONEq(t, `{"wood":2,"water":1}`, string(data))
}
