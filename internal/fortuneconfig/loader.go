package fortuneconfig

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wonny/ohaeng/backend/internal/contracts"
)

// Load reads a YAML table file and returns the Config with raw bytes
// KnownFields(true): 오타/미사용 필드는 즉시 실패
func Load(path string) (*Config, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, data, err
	}

	return cfg, data, nil
}

// Parse decodes and validates YAML table bytes
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode tables: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadTables loads and compiles a table file; empty path → built-in default
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}

	cfg, _, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("load tables %s: %w", path, err)
	}

	return Compile(cfg)
}

// Hash generates a SHA256 hash from Config (canonical JSON)
// 저장된 레코드가 어떤 테이블로 계산됐는지 추적용
// 원소 이름은 정규화 후 해시 (대소문자만 다른 테이블은 같은 해시)
func Hash(cfg *Config) (string, error) {
	jsonBytes, err := json.Marshal(canonical(cfg))
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}

// canonical returns a copy with element names in their lower-case form
func canonical(cfg *Config) Config {
	c := *cfg
	c.Categories = make([]CategoryRule, len(cfg.Categories))
	for i, rule := range cfg.Categories {
		rule.Primary.Element = canonicalElement(rule.Primary.Element)
		rule.Secondary.Element = canonicalElement(rule.Secondary.Element)
		rule.Penalty.Element = canonicalElement(rule.Penalty.Element)
		c.Categories[i] = rule
	}
	return c
}

func canonicalElement(name string) string {
	if e, err := contracts.ParseElement(name); err == nil {
		return e.String()
	}
	return name
}

// Compile validates cfg and converts it into typed Tables
func Compile(cfg *Config) (*Tables, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	hash, err := Hash(cfg)
	if err != nil {
		return nil, fmt.Errorf("hash tables: %w", err)
	}

	tables := &Tables{
		Relation: cfg.Relation,
		NoiseMax: cfg.NoiseMax,
		Hash:     hash,
	}

	for _, rule := range cfg.Categories {
		// Validate에서 이미 검사했으므로 에러 없음
		category, _ := contracts.ParseCategory(rule.Category)
		primary, _ := contracts.ParseElement(rule.Primary.Element)
		secondary, _ := contracts.ParseElement(rule.Secondary.Element)
		penalty, _ := contracts.ParseElement(rule.Penalty.Element)

		tables.Affinities[category] = Affinity{
			Primary:        primary,
			PrimaryBonus:   rule.Primary.Amount,
			Secondary:      secondary,
			SecondaryBonus: rule.Secondary.Amount,
			PenaltyElement: penalty,
			Penalty:        rule.Penalty.Amount,
		}
	}

	return tables, nil
}
