package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Element 오행 (Wood, Fire, Earth, Metal, Water)
// ⭐ SSOT: 오행 순서는 여기서만 정의 (관계 테이블 인덱스로 사용)
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// ElementCount 오행 개수
const ElementCount = 5

// AllElements returns the five elements in canonical order
func AllElements() []Element {
	return []Element{Wood, Fire, Earth, Metal, Water}
}

var elementNames = [ElementCount]string{"wood", "fire", "earth", "metal", "water"}

// String returns the lower-case element name
func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("element(%d)", int(e))
	}
	return elementNames[e]
}

// Title returns the capitalized element name for display text
func (e Element) Title() string {
	s := e.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether e is one of the five elements
func (e Element) Valid() bool {
	return e >= Wood && e <= Water
}

// ParseElement parses an element name (case-insensitive)
func ParseElement(s string) (Element, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range elementNames {
		if n == name {
			return Element(i), nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", s)
}

// MarshalText implements encoding.TextMarshaler (JSON map key 지원)
func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("invalid element %d", int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *Element) UnmarshalText(text []byte) error {
	parsed, err := ParseElement(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Polarity 음양
type Polarity int

const (
	Yin Polarity = iota
	Yang
)

// String returns "yin" or "yang"
func (p Polarity) String() string {
	switch p {
	case Yin:
		return "yin"
	case Yang:
		return "yang"
	default:
		return fmt.Sprintf("polarity(%d)", int(p))
	}
}

// Title returns the capitalized polarity name
func (p Polarity) Title() string {
	switch p {
	case Yin:
		return "Yin"
	case Yang:
		return "Yang"
	default:
		return p.String()
	}
}

// Valid reports whether p is Yin or Yang
func (p Polarity) Valid() bool {
	return p == Yin || p == Yang
}

// ParsePolarity parses "yin" / "yang" (case-insensitive)
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yin":
		return Yin, nil
	case "yang":
		return Yang, nil
	default:
		return 0, fmt.Errorf("unknown polarity %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (p Polarity) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid polarity %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Polarity) UnmarshalText(text []byte) error {
	parsed, err := ParsePolarity(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ElementalProfile 개인 오행 프로필
// SecondaryElement는 선택 사항이며 MainElement와 같아도 된다
type ElementalProfile struct {
	MainElement      Element  `json:"main_element"`
	SecondaryElement *Element `json:"secondary_element,omitempty"`
	Polarity         Polarity `json:"polarity"`
}

// UnmarshalJSON main_element와 polarity 누락 시 에러 (zero value wood/yin으로 채우지 않음)
func (p *ElementalProfile) UnmarshalJSON(data []byte) error {
	var raw struct {
		MainElement      *Element  `json:"main_element"`
		SecondaryElement *Element  `json:"secondary_element"`
		Polarity         *Polarity `json:"polarity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.MainElement == nil {
		return errors.New("profile: main_element is required")
	}
	if raw.Polarity == nil {
		return errors.New("profile: polarity is required")
	}

	*p = ElementalProfile{
		MainElement:      *raw.MainElement,
		SecondaryElement: raw.SecondaryElement,
		Polarity:         *raw.Polarity,
	}
	return nil
}

// HasSecondary reports whether a secondary element is set
func (p ElementalProfile) HasSecondary() bool {
	return p.SecondaryElement != nil
}

// String formats the profile as main[/secondary]:polarity
func (p ElementalProfile) String() string {
	if p.SecondaryElement != nil {
		return fmt.Sprintf("%s/%s:%s", p.MainElement, *p.SecondaryElement, p.Polarity)
	}
	return fmt.Sprintf("%s:%s", p.MainElement, p.Polarity)
}

// ParseProfile parses the compact form main[/secondary]:polarity
// Example: "metal/water:yang", "fire:yin"
func ParseProfile(s string) (ElementalProfile, error) {
	elems, pol, ok := strings.Cut(s, ":")
	if !ok {
		return ElementalProfile{}, fmt.Errorf("profile %q: missing polarity (want main[/secondary]:polarity)", s)
	}

	polarity, err := ParsePolarity(pol)
	if err != nil {
		return ElementalProfile{}, fmt.Errorf("profile %q: %w", s, err)
	}

	mainStr, secStr, hasSec := strings.Cut(elems, "/")
	main, err := ParseElement(mainStr)
	if err != nil {
		return ElementalProfile{}, fmt.Errorf("profile %q: %w", s, err)
	}

	profile := ElementalProfile{MainElement: main, Polarity: polarity}
	if hasSec {
		sec, err := ParseElement(secStr)
		if err != nil {
			return ElementalProfile{}, fmt.Errorf("profile %q: %w", s, err)
		}
		profile.SecondaryElement = &sec
	}

	return profile, nil
}

// ElementPtr returns a pointer to e (SecondaryElement 설정용)
func ElementPtr(e Element) *Element {
	return &e
}
