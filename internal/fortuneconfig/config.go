package fortuneconfig

import (
	"github.com/wonny/ohaeng/backend/internal/contracts"
)

// Config는 카테고리 점수 테이블의 YAML 표현
// 오행/카테고리 이름은 문자열로 받아 Compile에서 검증한다
type Config struct {
	Meta       Meta           `yaml:"meta" json:"meta"`
	Categories []CategoryRule `yaml:"categories" json:"categories"`
	Relation   RelationAdjust `yaml:"relation" json:"relation"`
	NoiseMax   int            `yaml:"noise_max" json:"noise_max"` // 카테고리 노이즈 ±NoiseMax
}

// Meta 메타 정보
type Meta struct {
	TableID string `yaml:"table_id" json:"table_id"`
	Version string `yaml:"version" json:"version"`
}

// CategoryRule 카테고리별 오행 가중치
type CategoryRule struct {
	Category  string       `yaml:"category" json:"category"`
	Primary   ElementBonus `yaml:"primary" json:"primary"`
	Secondary ElementBonus `yaml:"secondary" json:"secondary"`
	Penalty   ElementBonus `yaml:"penalty" json:"penalty"` // 개인=일진=Element 일 때 차감
}

// ElementBonus element + 가감 크기 (항상 양수로 기록)
type ElementBonus struct {
	Element string `yaml:"element" json:"element"`
	Amount  int    `yaml:"amount" json:"amount"`
}

// RelationAdjust 카테고리 점수에 적용하는 상생/상극 보정 (base 점수보다 작게)
type RelationAdjust struct {
	GeneratedByDay  int `yaml:"generated_by_day" json:"generated_by_day"`
	GeneratesDay    int `yaml:"generates_day" json:"generates_day"`
	ControlledByDay int `yaml:"controlled_by_day" json:"controlled_by_day"`
	ControlsDay     int `yaml:"controls_day" json:"controls_day"`
}

// Affinity 컴파일된 카테고리 규칙
type Affinity struct {
	Primary        contracts.Element
	PrimaryBonus   int
	Secondary      contracts.Element
	SecondaryBonus int
	PenaltyElement contracts.Element
	Penalty        int
}

// Tables 점수 계산에 쓰이는 타입 안전 테이블
// ⭐ SSOT: fortune.Generator는 이 구조체만 참조
type Tables struct {
	Affinities [contracts.CategoryCount]Affinity
	Relation   RelationAdjust
	NoiseMax   int
	Hash       string
}

// Default returns the built-in scoring table
func Default() *Config {
	return &Config{
		Meta: Meta{TableID: "ohaeng_default", Version: "1"},
		Categories: []CategoryRule{
			{Category: "career", Primary: ElementBonus{"metal", 10}, Secondary: ElementBonus{"earth", 6}, Penalty: ElementBonus{"fire", 8}},
			{Category: "relationship", Primary: ElementBonus{"fire", 10}, Secondary: ElementBonus{"water", 6}, Penalty: ElementBonus{"metal", 8}},
			{Category: "creativity", Primary: ElementBonus{"wood", 10}, Secondary: ElementBonus{"fire", 6}, Penalty: ElementBonus{"earth", 8}},
			{Category: "health", Primary: ElementBonus{"earth", 10}, Secondary: ElementBonus{"wood", 6}, Penalty: ElementBonus{"water", 8}},
			{Category: "wealth", Primary: ElementBonus{"water", 10}, Secondary: ElementBonus{"metal", 6}, Penalty: ElementBonus{"wood", 8}},
		},
		Relation: RelationAdjust{
			GeneratedByDay:  8,
			GeneratesDay:    4,
			ControlledByDay: 8,
			ControlsDay:     4,
		},
		NoiseMax: 8,
	}
}

// DefaultTables compiles Default(); the built-in table always validates
func DefaultTables() *Tables {
	tables, err := Compile(Default())
	if err != nil {
		panic("fortuneconfig: default table invalid: " + err.Error())
	}
	return tables
}
