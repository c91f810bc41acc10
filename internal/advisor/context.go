// Package advisor turns a stored daily fortune into the context block that is
// prepended to prompts for the chat assistant.
package advisor

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/wonny/ohaeng/backend/internal/contracts"
)

// PromptContext 채팅 프롬프트에 넣을 운세 요약
// 레코드 필드만 읽는다 (엔진 호출 없음)
type PromptContext struct {
	Date         string             `json:"date"`
	DailyElement contracts.Element  `json:"daily_element"`
	OverallScore int                `json:"overall_score"`
	Tier         contracts.LuckTier `json:"tier"`
	Advice       string             `json:"advice"`
	Text         string             `json:"text"`
}

var contextTemplate = template.Must(template.New("context").Parse(
	`Today's fortune ({{.Date}}): {{.ElementTitle}} day, overall score {{.OverallScore}}/100 ({{.Tier}}).
Advice: {{.Advice}}
Keep answers consistent with this reading.`))

// BuildContext renders the prompt context for a record
func BuildContext(record *contracts.DailyFortuneRecord) (*PromptContext, error) {
	if record == nil {
		return nil, fmt.Errorf("advisor: nil record")
	}

	ctx := &PromptContext{
		Date:         record.Date.Format(contracts.DateLayout),
		DailyElement: record.DailyElement,
		OverallScore: record.OverallScore,
		Tier:         record.Tier(),
		Advice:       record.Advice,
	}

	var buf bytes.Buffer
	err := contextTemplate.Execute(&buf, struct {
		*PromptContext
		ElementTitle string
	}{ctx, record.DailyElement.Title()})
	if err != nil {
		return nil, fmt.Errorf("advisor: render context: %w", err)
	}
	ctx.Text = buf.String()

	return ctx, nil
}
