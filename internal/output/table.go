package output

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/discourses/discourses-go"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// FormatAnalysis renders a single-text analysis as a table.
func (f *TableFormatter) FormatAnalysis(result *discourses.AnalysisResult) (string, error) {
	if result == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Label", result.Label},
		{"Confidence", fmt.Sprintf("%.2f", result.Confidence)},
		{"Outlook", fmt.Sprintf("%.2f", result.Outlook)},
		{"Bullish", fmt.Sprintf("%.2f", result.Scores.Bullish)},
		{"Bearish", fmt.Sprintf("%.2f", result.Scores.Bearish)},
		{"Neutral", fmt.Sprintf("%.2f", result.Scores.Neutral)},
		{"Confusion", fmt.Sprintf("%.2f", result.Scores.Confusion)},
		{"Words", humanize.Comma(int64(result.WordCount))},
		{"Matched", humanize.Comma(int64(result.MatchedCount))},
		{"Negations", humanize.Comma(int64(result.NegationCount))},
	})

	return t.Render(), nil
}

// FormatCompare renders a cross-era comparison as a table with a drift
// summary footer.
func (f *TableFormatter) FormatCompare(result *discourses.CompareResult) (string, error) {
	if result == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Era", "Label", "Outlook"})

	for _, era := range eraOrder(result.Results) {
		entry := result.Results[era]
		t.AppendRow(table.Row{era, entryLabel(entry), formatOutlook(entry)})
	}

	summary := fmt.Sprintf("drift %s (%.2f)", result.DriftDirection(), result.DriftMagnitude())
	if peak := result.PeakEra(); peak != "" {
		summary += fmt.Sprintf(", peak %s", peak)
	}
	if min := result.MinEra(); min != "" {
		summary += fmt.Sprintf(", min %s", min)
	}
	t.AppendFooter(table.Row{"", summary, ""})

	return t.Render(), nil
}

// FormatBatch renders a batch result as a table, one row per item.
func (f *TableFormatter) FormatBatch(result *discourses.BatchResult) (string, error) {
	if result == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Label", "Outlook", "Error"})

	for _, id := range result.IDs() {
		entry := result.Results[id]
		t.AppendRow(table.Row{id, entryLabel(entry), formatOutlook(entry), entryError(entry)})
	}

	summary := fmt.Sprintf("%s processed, %s failed",
		humanize.Comma(int64(result.TextsProcessed())),
		humanize.Comma(int64(result.TextsFailed())))
	if elapsed := result.ProcessingTime(); elapsed > 0 {
		summary += fmt.Sprintf(" in %s", elapsed)
	}
	t.AppendFooter(table.Row{"", summary, "", ""})

	return t.Render(), nil
}
