package fortuneconfig

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/ohaeng/backend/internal/contracts"
)

func TestLoad_DefaultFileMatchesBuiltin(t *testing.T) {
	path := "../../config/fortune/default_tables.yaml"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("table file not found")
	}

	cfg, yamlData, err := Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, yamlData)

	fromFile, err := Compile(cfg)
	require.NoError(t, err)

	builtin := DefaultTables()
	assert.Equal(t, builtin.Affinities, fromFile.Affinities)
	assert.Equal(t, builtin.Relation, fromFile.Relation)
	assert.Equal(t, builtin.NoiseMax, fromFile.NoiseMax)
	assert.Equal(t, builtin.Hash, fromFile.Hash, "same table → same hash")
}

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()

	career := tables.Affinities[contracts.CategoryCareer]
	assert.Equal(t, contracts.Metal, career.Primary)
	assert.Equal(t, 10, career.PrimaryBonus)
	assert.Equal(t, contracts.Earth, career.Secondary)
	assert.Equal(t, 6, career.SecondaryBonus)
	assert.Equal(t, contracts.Fire, career.PenaltyElement)
	assert.Equal(t, 8, career.Penalty)

	assert.Equal(t, 8, tables.NoiseMax)
	assert.Len(t, tables.Hash, 64)
}

func TestHash_Deterministic(t *testing.T) {
	h1, err := Hash(Default())
	require.NoError(t, err)
	h2, err := Hash(Default())
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	changed := Default()
	changed.NoiseMax = 5
	h3, err := Hash(changed)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestHash_ElementCaseInsensitive(t *testing.T) {
	base, err := Hash(Default())
	require.NoError(t, err)

	variant := Default()
	variant.Categories[0].Primary.Element = "METAL"
	variant.Categories[0].Secondary.Element = " Earth "
	got, err := Hash(variant)
	require.NoError(t, err)
	assert.Equal(t, base, got)

	compiled, err := Compile(variant)
	require.NoError(t, err)
	assert.Equal(t, DefaultTables().Hash, compiled.Hash)
	assert.Equal(t, DefaultTables().Affinities, compiled.Affinities)

	// 원본 Config는 건드리지 않음
	assert.Equal(t, "METAL", variant.Categories[0].Primary.Element)
}

func TestValidate_FirstErrorIsStable(t *testing.T) {
	cfg := Default()
	cfg.Categories[0].Primary.Element = "aether"
	cfg.Categories[0].Secondary.Amount = -1
	cfg.Categories[0].Penalty.Amount = 99

	for i := 0; i < 50; i++ {
		err := Validate(cfg)
		require.Error(t, err)
		assert.Equal(t, "categories[0].primary.element", err.(ValidationError).Field)
	}

	cfg = Default()
	cfg.Relation.GeneratedByDay = -1
	cfg.Relation.GeneratesDay = 99
	cfg.Relation.ControlledByDay = 99
	cfg.Relation.ControlsDay = 99

	for i := 0; i < 50; i++ {
		err := Validate(cfg)
		require.Error(t, err)
		assert.Equal(t, "relation.generated_by_day", err.(ValidationError).Field)
	}
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	yamlText := `
meta:
  table_id: test
noise_max: 8
nosie_max: 3
`
	_, err := Parse([]byte(yamlText))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nosie_max")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "default is valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing table id",
			mutate:  func(cfg *Config) { cfg.Meta.TableID = "" },
			wantErr: "meta.table_id",
		},
		{
			name:    "missing category",
			mutate:  func(cfg *Config) { cfg.Categories = cfg.Categories[:4] },
			wantErr: "exactly 5",
		},
		{
			name:    "duplicate category",
			mutate:  func(cfg *Config) { cfg.Categories[1].Category = "career" },
			wantErr: "duplicate",
		},
		{
			name:    "unknown element",
			mutate:  func(cfg *Config) { cfg.Categories[0].Primary.Element = "aether" },
			wantErr: "primary.element",
		},
		{
			name:    "negative amount",
			mutate:  func(cfg *Config) { cfg.Categories[2].Penalty.Amount = -1 },
			wantErr: "penalty.amount",
		},
		{
			name:    "primary equals secondary",
			mutate:  func(cfg *Config) { cfg.Categories[0].Secondary.Element = "metal" },
			wantErr: "must be different",
		},
		{
			name:    "primary equals secondary ignoring case",
			mutate:  func(cfg *Config) { cfg.Categories[0].Secondary.Element = "Metal" },
			wantErr: "must be different",
		},
		{
			name:    "noise too large",
			mutate:  func(cfg *Config) { cfg.NoiseMax = 50 },
			wantErr: "noise_max",
		},
		{
			name:    "relation out of range",
			mutate:  func(cfg *Config) { cfg.Relation.ControlsDay = 99 },
			wantErr: "relation.controls_day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), "error %q should mention %q", err, tt.wantErr)
		})
	}
}

func TestLoadTables_EmptyPathUsesDefault(t *testing.T) {
	tables, err := LoadTables("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTables().Hash, tables.Hash)
}

func TestLoadTables_MissingFile(t *testing.T) {
	_, err := LoadTables("does-not-exist.yaml")
	assert.Error(t, err)
}
