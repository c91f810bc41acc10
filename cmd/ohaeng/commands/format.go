package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/wonny/ohaeng/backend/internal/contracts"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 모든 커맨드가 동일한 출력 포맷을 사용하도록 통일
// ═══════════════════════════════════════════════════════════

const keyWidth = 14

// PrintHeader prints a titled banner
func PrintHeader(title string) {
	fmt.Println()
	PrintDoubleSeparator()
	fmt.Printf("  %s\n", title)
	PrintSeparator()
}

// PrintSeparator prints a visual separator
func PrintSeparator() {
	fmt.Println("───────────────────────────────────────────────────────────")
}

// PrintDoubleSeparator prints a double-line separator
func PrintDoubleSeparator() {
	fmt.Println("═══════════════════════════════════════════════════════════")
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Printf("⚠️  %s\n", message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("✅ %s\n", message)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Printf("❌ %s\n", message)
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	fmt.Printf("ℹ️  %s\n", message)
}

// PrintTableHeader prints a table header
func PrintTableHeader(columns []string, widths []int) {
	PrintTableRow(columns, widths)

	totalWidth := 0
	for i, width := range widths {
		totalWidth += width
		if i < len(widths)-1 {
			totalWidth += 2 // spacing
		}
	}
	fmt.Println(strings.Repeat("─", totalWidth))
}

// PrintTableRow prints a table row
func PrintTableRow(values []string, widths []int) {
	for i, val := range values {
		fmt.Printf("%-*s", widths[i], val)
		if i < len(values)-1 {
			fmt.Print("  ")
		}
	}
	fmt.Println()
}

// PrintList prints a bulleted list
func PrintList(items []string) {
	for _, item := range items {
		fmt.Printf("   • %s\n", item)
	}
}

// PrintKeyValue prints key-value pairs
func PrintKeyValue(key string, value string) {
	fmt.Printf("   %-*s : %s\n", keyWidth, key, value)
}

// printJSON writes v as indented JSON to stdout (--json)
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// scoreBar renders 0~100 as a 20-cell bar
func scoreBar(score int) string {
	filled := score / 5
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}

func elementNames(elems []contracts.Element) string {
	if len(elems) == 0 {
		return "-"
	}
	names := make([]string, len(elems))
	for i, e := range elems {
		names[i] = e.String()
	}
	return strings.Join(names, ", ")
}

// printDaily human-readable daily record
func printDaily(birth string, rec *contracts.DailyFortuneRecord) {
	PrintHeader(fmt.Sprintf("Daily Fortune  %s", rec.Date.Format(contracts.DateLayout)))
	PrintKeyValue("Birth", birth)
	PrintKeyValue("Day element", fmt.Sprintf("%s (%s)", rec.DailyElement, rec.DailyPolarity))
	PrintKeyValue("Overall", fmt.Sprintf("%3d %s %s", rec.OverallScore, scoreBar(rec.OverallScore), contracts.TierFor(rec.OverallScore)))
	PrintSeparator()

	for _, c := range contracts.AllCategories() {
		score := rec.CategoryScores.Get(c)
		PrintKeyValue(c.String(), fmt.Sprintf("%3d %s", score, scoreBar(score)))
	}
	PrintSeparator()

	PrintKeyValue("Lucky colors", strings.Join(rec.LuckyColors, ", "))
	PrintKeyValue("Directions", strings.Join(rec.LuckyDirections, ", "))
	PrintKeyValue("Compatible", elementNames(rec.CompatibleElements))
	PrintKeyValue("Incompatible", elementNames(rec.IncompatibleElements))
	PrintSeparator()

	fmt.Printf("   %s\n", rec.Description)
	fmt.Printf("   💡 %s\n", rec.Advice)
	PrintDoubleSeparator()
}

// printWeekly human-readable weekly summary
func printWeekly(w *contracts.WeeklyForecast) {
	PrintHeader(fmt.Sprintf("Weekly Forecast  from %s (%d days)", w.StartDate.Format(contracts.DateLayout), len(w.Days)))

	widths := []int{10, 12, 5, 20, 6}
	PrintTableHeader([]string{"Date", "Element", "Score", "", "Mark"}, widths)
	for _, d := range w.Days {
		mark := ""
		switch {
		case w.BestDate != nil && d.Date.Equal(*w.BestDate):
			mark = "best"
		case w.WorstDate != nil && d.Date.Equal(*w.WorstDate):
			mark = "worst"
		}
		PrintTableRow([]string{
			d.Date.Format(contracts.DateLayout),
			fmt.Sprintf("%s/%s", d.DailyElement, d.DailyPolarity),
			fmt.Sprintf("%d", d.OverallScore),
			scoreBar(d.OverallScore),
			mark,
		}, widths)
	}
	PrintSeparator()
	PrintKeyValue("Average", fmt.Sprintf("%.2f", w.AverageScore))
	PrintDoubleSeparator()
}

// printCompatibility pair result with factors
func printCompatibility(a, b contracts.ElementalProfile, res contracts.CompatibilityResult) {
	PrintHeader("Personal Compatibility")
	PrintKeyValue("A", a.String())
	PrintKeyValue("B", b.String())
	PrintKeyValue("Score", fmt.Sprintf("%3d %s", res.Score, scoreBar(res.Score)))
	if len(res.Factors) > 0 {
		PrintSeparator()
		PrintList(res.Factors)
	}
	PrintDoubleSeparator()
}

// printTeamReport distribution, balance and pairwise matrix
func printTeamReport(members []contracts.TeamMember, report contracts.TeamDynamicsReport) {
	PrintHeader(fmt.Sprintf("Team Dynamics  (%d members)", report.MemberCount))
	PrintKeyValue("Balance", fmt.Sprintf("%.2f", report.OverallBalance))
	PrintKeyValue("Missing", elementNames(report.MissingElements))
	if report.DominantElement != nil {
		PrintKeyValue("Dominant", report.DominantElement.String())
	} else {
		PrintKeyValue("Dominant", "-")
	}

	dist := make([]string, 0, contracts.ElementCount)
	for _, e := range contracts.AllElements() {
		dist = append(dist, fmt.Sprintf("%s=%d", e, report.ElementDistribution[e]))
	}
	PrintKeyValue("Distribution", strings.Join(dist, " "))

	if len(report.PairwiseScores) == 0 {
		PrintDoubleSeparator()
		return
	}

	PrintSeparator()
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	sort.Strings(ids)

	widths := make([]int, len(ids)+1)
	header := append([]string{""}, ids...)
	for i, id := range ids {
		widths[0] = maxInt(widths[0], len(id))
		widths[i+1] = maxInt(len(id), 5)
	}
	PrintTableHeader(header, widths)

	for _, a := range ids {
		row := []string{a}
		for _, b := range ids {
			if a == b {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%d", report.PairwiseScores[a][b]))
		}
		PrintTableRow(row, widths)
	}
	PrintDoubleSeparator()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
