package output

import (
	"fmt"
	"strings"

	"github.com/discourses/discourses-go"
)

// MarkdownFormatter renders results as markdown tables.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) FormatAnalysis(result *discourses.AnalysisResult) (string, error) {
	if result == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("## Sentiment analysis\n\n")
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Label | %s |\n", escapeMarkdownCell(result.Label)))
	sb.WriteString(fmt.Sprintf("| Confidence | %.2f |\n", result.Confidence))
	sb.WriteString(fmt.Sprintf("| Outlook | %.2f |\n", result.Outlook))
	sb.WriteString(fmt.Sprintf("| Words | %d |\n", result.WordCount))
	sb.WriteString(fmt.Sprintf("| Matched | %d |\n", result.MatchedCount))
	sb.WriteString(fmt.Sprintf("| Negations | %d |\n", result.NegationCount))
	return sb.String(), nil
}

func (f *MarkdownFormatter) FormatCompare(result *discourses.CompareResult) (string, error) {
	if result == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("## Era comparison\n\n")
	sb.WriteString("| Era | Label | Outlook |\n")
	sb.WriteString("|-----|-------|--------|\n")

	for _, era := range eraOrder(result.Results) {
		entry := result.Results[era]
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
			escapeMarkdownCell(era),
			escapeMarkdownCell(entryLabel(entry)),
			formatOutlook(entry),
		))
	}

	sb.WriteString(fmt.Sprintf("\n**Drift**: %s (%.2f)\n",
		escapeMarkdownCell(result.DriftDirection()), result.DriftMagnitude()))
	return sb.String(), nil
}

func (f *MarkdownFormatter) FormatBatch(result *discourses.BatchResult) (string, error) {
	if result == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("## Batch analysis\n\n")
	sb.WriteString("| ID | Label | Outlook | Error |\n")
	sb.WriteString("|----|-------|---------|-------|\n")

	for _, id := range result.IDs() {
		entry := result.Results[id]
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			escapeMarkdownCell(id),
			escapeMarkdownCell(entryLabel(entry)),
			formatOutlook(entry),
			escapeMarkdownCell(entryError(entry)),
		))
	}

	sb.WriteString(fmt.Sprintf("\n**Summary**: %d processed, %d failed\n",
		result.TextsProcessed(), result.TextsFailed()))
	return sb.String(), nil
}

func escapeMarkdownCell(value string) string {
	value = strings.ReplaceAll(value, "|", "\\|")
	return strings.ReplaceAll(value, "\n", " ")
}
