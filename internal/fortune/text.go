package fortune

import (
	"fmt"
	"strings"

	"github.com/wonny/ohaeng/backend/internal/contracts"
	"github.com/wonny/ohaeng/backend/internal/element"
)

// describe 운세 설명 문장 조립
// 등급 요약 + 일진 키워드 + 관계 문장 + 음양 특성
func describe(tier contracts.LuckTier, personal, day contracts.Element, dayPol contracts.Polarity, relation element.Relation) string {
	sentences := []string{
		tierSummaries[tier],
		fmt.Sprintf("%s energy rules the day, bringing %s.", day.Title(), joinWords(elementKeywords[day])),
		fmt.Sprintf(relationSentences[relation], personal.Title(), day.Title()),
		fmt.Sprintf("%s influence favors %s.", dayPol.Title(), joinWords(polarityTraits[dayPol])),
	}
	return strings.Join(sentences, " ")
}

// advise 조언 문장 조립
// 등급 오프너 + 카테고리×일진 템플릿 + 일진 마무리
func advise(tier contracts.LuckTier, highest contracts.Category, day contracts.Element) string {
	return fmt.Sprintf("%s Focus on %s today: %s %s",
		tierOpeners[tier],
		highest,
		adviceTemplates[highest][day],
		closingSentences[day],
	)
}

// joinWords "a, b and c"
func joinWords(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	default:
		return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
	}
}
