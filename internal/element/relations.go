package element

import "github.com/wonny/ohaeng/backend/internal/contracts"

// ⭐ SSOT: 상생/상극 테이블은 여기서만 정의
// 상생: Wood → Fire → Earth → Metal → Water → Wood
var generates = [contracts.ElementCount]contracts.Element{
	contracts.Wood:  contracts.Fire,
	contracts.Fire:  contracts.Earth,
	contracts.Earth: contracts.Metal,
	contracts.Metal: contracts.Water,
	contracts.Water: contracts.Wood,
}

// 상극: Wood → Earth → Water → Fire → Metal → Wood
var controls = [contracts.ElementCount]contracts.Element{
	contracts.Wood:  contracts.Earth,
	contracts.Fire:  contracts.Metal,
	contracts.Earth: contracts.Water,
	contracts.Metal: contracts.Wood,
	contracts.Water: contracts.Fire,
}

// IsGenerating reports whether a generates (feeds) b
func IsGenerating(a, b contracts.Element) bool {
	return a.Valid() && generates[a] == b
}

// IsControlling reports whether a controls (restrains) b
func IsControlling(a, b contracts.Element) bool {
	return a.Valid() && controls[a] == b
}

// Generates returns the element that e generates
func Generates(e contracts.Element) contracts.Element {
	return generates[e]
}

// GeneratedBy returns the element that generates e
func GeneratedBy(e contracts.Element) contracts.Element {
	for src, dst := range generates {
		if dst == e {
			return contracts.Element(src)
		}
	}
	return e
}

// Controls returns the element that e controls
func Controls(e contracts.Element) contracts.Element {
	return controls[e]
}

// ControlledBy returns the element that controls e
func ControlledBy(e contracts.Element) contracts.Element {
	for src, dst := range controls {
		if dst == e {
			return contracts.Element(src)
		}
	}
	return e
}

// HasGeneratingRelation reports a generating relation in either direction
func HasGeneratingRelation(a, b contracts.Element) bool {
	return IsGenerating(a, b) || IsGenerating(b, a)
}

// HasControllingRelation reports a controlling relation in either direction
func HasControllingRelation(a, b contracts.Element) bool {
	return IsControlling(a, b) || IsControlling(b, a)
}
