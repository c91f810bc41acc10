package fortune

import (
	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/element"
)

// ═══════════════════════════════════════════════════════════
// 고정 어휘 테이블
// 배열 길이가 ElementCount / CategoryCount 로 고정되어 있어
// 오행·카테고리 추가 시 컴파일 단계에서 누락이 드러난다
// ═══════════════════════════════════════════════════════════

var elementKeywords = [contracts.ElementCount][]string{
	contracts.Wood:  {"growth", "flexibility", "new beginnings"},
	contracts.Fire:  {"passion", "visibility", "momentum"},
	contracts.Earth: {"stability", "nourishment", "patience"},
	contracts.Metal: {"clarity", "discipline", "decisiveness"},
	contracts.Water: {"intuition", "adaptability", "depth"},
}

var polarityTraits = map[contracts.Polarity][]string{
	contracts.Yang: {"action", "expression", "initiative"},
	contracts.Yin:  {"reflection", "receptivity", "rest"},
}

var colorPalettes = [contracts.ElementCount][]string{
	contracts.Wood:  {"green", "teal", "olive", "jade", "mint"},
	contracts.Fire:  {"red", "orange", "crimson", "coral", "purple"},
	contracts.Earth: {"yellow", "brown", "beige", "ochre", "terracotta"},
	contracts.Metal: {"white", "silver", "gray", "ivory", "champagne"},
	contracts.Water: {"black", "navy", "blue", "indigo", "charcoal"},
}

var directionSets = [contracts.ElementCount][]string{
	contracts.Wood:  {"east", "southeast"},
	contracts.Fire:  {"south", "southwest"},
	contracts.Earth: {"center", "northeast"},
	contracts.Metal: {"west", "northwest"},
	contracts.Water: {"north", "northeast"},
}

var tierSummaries = map[contracts.LuckTier]string{
	contracts.TierExcellent: "An exceptionally auspicious day.",
	contracts.TierGood:      "A favorable day with steady support.",
	contracts.TierNeutral:   "A balanced day with mixed influences.",
	contracts.TierCaution:   "A day that calls for care and patience.",
	contracts.TierPoor:      "A challenging day; keep plans modest.",
}

var tierOpeners = map[contracts.LuckTier]string{
	contracts.TierExcellent: "Seize the opportunities in front of you.",
	contracts.TierGood:      "Move forward with confidence.",
	contracts.TierNeutral:   "Keep a steady pace.",
	contracts.TierCaution:   "Proceed carefully and double-check details.",
	contracts.TierPoor:      "Conserve your energy and avoid major commitments.",
}

// %[1]s = 개인 오행, %[2]s = 일진 오행
var relationSentences = map[element.Relation]string{
	element.RelationSame:         "Your %[1]s nature resonates with the day's %[2]s, amplifying your natural strengths.",
	element.RelationGenerates:    "Your %[1]s feeds the day's %[2]s, so the effort you give flows outward.",
	element.RelationGeneratedBy:  "The day's %[2]s nourishes your %[1]s, lending you quiet support.",
	element.RelationControls:     "Your %[1]s restrains the day's %[2]s, giving you the upper hand if you apply effort.",
	element.RelationControlledBy: "The day's %[2]s presses on your %[1]s; avoid forcing outcomes.",
}

// adviceTemplates[category][day element]
var adviceTemplates = [contracts.CategoryCount][contracts.ElementCount]string{
	contracts.CategoryCareer: {
		contracts.Wood:  "plant seeds for long-term projects and pitch new ideas to colleagues.",
		contracts.Fire:  "present your work visibly; leadership moments reward boldness.",
		contracts.Earth: "consolidate processes and finish what is already on your desk.",
		contracts.Metal: "make firm decisions and tighten loose ends in your plans.",
		contracts.Water: "research, network quietly, and let information guide your next move.",
	},
	contracts.CategoryRelationship: {
		contracts.Wood:  "reach out to someone new and let the connection grow naturally.",
		contracts.Fire:  "express warmth openly; shared excitement deepens bonds.",
		contracts.Earth: "offer practical support to those close to you.",
		contracts.Metal: "set honest boundaries and speak with clarity.",
		contracts.Water: "listen more than you speak; empathy carries the day.",
	},
	contracts.CategoryCreativity: {
		contracts.Wood:  "sketch freely and follow the ideas that sprout.",
		contracts.Fire:  "work on the bold piece you have been postponing.",
		contracts.Earth: "refine existing drafts into something tangible.",
		contracts.Metal: "edit ruthlessly and sharpen the form of your work.",
		contracts.Water: "let intuition lead; daydreams hold useful material.",
	},
	contracts.CategoryHealth: {
		contracts.Wood:  "stretch, walk outdoors, and favor fresh greens.",
		contracts.Fire:  "channel energy into cardio but guard against overheating.",
		contracts.Earth: "keep regular meals and ground yourself with routine.",
		contracts.Metal: "focus on breathing exercises and posture.",
		contracts.Water: "hydrate well and prioritize deep rest.",
	},
	contracts.CategoryWealth: {
		contracts.Wood:  "invest in learning or assets that compound over time.",
		contracts.Fire:  "watch for impulse purchases driven by excitement.",
		contracts.Earth: "review budgets and secure stable income streams.",
		contracts.Metal: "cut unnecessary expenses and settle outstanding accounts.",
		contracts.Water: "let cash circulate; small, diversified moves work best.",
	},
}

var closingSentences = [contracts.ElementCount]string{
	contracts.Wood:  "Let the day's growing energy carry you forward.",
	contracts.Fire:  "Let the day's warmth light your path.",
	contracts.Earth: "Trust the steady ground beneath you.",
	contracts.Metal: "Let clarity cut through any doubt.",
	contracts.Water: "Flow around obstacles rather than through them.",
}
