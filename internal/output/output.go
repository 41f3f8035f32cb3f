// Package output renders SDK results for the CLI in table, JSON, and
// markdown formats.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/discourses/discourses-go"
)

// Format represents an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formatter renders each result type.
type Formatter interface {
	FormatAnalysis(result *discourses.AnalysisResult) (string, error)
	FormatCompare(result *discourses.CompareResult) (string, error)
	FormatBatch(result *discourses.BatchResult) (string, error)
}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatMarkdown):
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}

// Per-era and per-item payloads are opaque maps; these helpers pull out the
// fields the human-readable formats display.

func entryLabel(entry map[string]any) string {
	if classification, ok := entry["classification"].(map[string]any); ok {
		if label, ok := classification["label"].(string); ok {
			return label
		}
	}
	return ""
}

func entryOutlook(entry map[string]any) (float64, bool) {
	if scores, ok := entry["scores"].(map[string]any); ok {
		if outlook, ok := scores["outlook"].(float64); ok {
			return outlook, true
		}
	}
	return 0, false
}

func entryError(entry map[string]any) string {
	switch v := entry["error"].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// eraOrder sorts era names chronologically where known, alphabetically
// otherwise, so compare output is stable.
func eraOrder(results map[string]map[string]any) []string {
	rank := make(map[string]int, 4)
	for i, era := range discourses.Eras() {
		rank[era.String()] = i
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, iKnown := rank[names[i]]
		rj, jKnown := rank[names[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return names[i] < names[j]
		}
	})
	return names
}

func formatOutlook(entry map[string]any) string {
	if outlook, ok := entryOutlook(entry); ok {
		return fmt.Sprintf("%.2f", outlook)
	}
	return "-"
}
