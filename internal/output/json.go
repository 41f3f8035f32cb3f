package output

import (
	"encoding/json"

	"github.com/discourses/discourses-go"
)

// JSONFormatter renders the raw API payload as JSON.
type JSONFormatter struct {
	Indent bool
}

func (f *JSONFormatter) FormatAnalysis(result *discourses.AnalysisResult) (string, error) {
	if result == nil {
		return "", nil
	}
	return f.render(result.Raw)
}

func (f *JSONFormatter) FormatCompare(result *discourses.CompareResult) (string, error) {
	if result == nil {
		return "", nil
	}
	return f.render(result.Raw)
}

func (f *JSONFormatter) FormatBatch(result *discourses.BatchResult) (string, error) {
	if result == nil {
		return "", nil
	}
	return f.render(result.Raw)
}

func (f *JSONFormatter) render(payload map[string]any) (string, error) {
	var (
		data []byte
		err  error
	)

	if f.Indent {
		data, err = json.MarshalIndent(payload, "", "  ")
	} else {
		data, err = json.Marshal(payload)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}
