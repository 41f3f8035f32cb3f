package mockserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/discourses/discourses-go"
)

const rateLimitMarker = "[ratelimit]"

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)

		if token == "" || (s.opts.APIKey != "" && token != s.opts.APIKey) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "invalid api key"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

type analyzeRequest struct {
	Text string `json:"text"`
	Era  string `json:"era"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if rejectBadText(w, req.Text) {
		return
	}

	era := discourses.EraPresent
	if req.Era != "" {
		parsed, err := discourses.ParseEra(req.Era)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "unknown era: " + req.Era})
			return
		}
		era = parsed
	}

	writeJSON(w, http.StatusOK, analysisPayload(req.Text, era))
}

type compareRequest struct {
	Text string   `json:"text"`
	Eras []string `json:"eras"`
}

func (s *Server) handleCompareEras(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if rejectBadText(w, req.Text) {
		return
	}

	eras := discourses.Eras()
	if len(req.Eras) > 0 {
		eras = make([]discourses.Era, 0, len(req.Eras))
		for _, token := range req.Eras {
			parsed, err := discourses.ParseEra(token)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]any{"message": "unknown era: " + token})
				return
			}
			eras = append(eras, parsed)
		}
		eras = chronological(eras)
	}

	results := make(map[string]any, len(eras))
	for _, era := range eras {
		results[era.String()] = analysisPayload(req.Text, era)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"drift":   driftPayload(eras),
		"meta": map[string]any{
			"eras_compared":      len(eras),
			"processing_time_ms": 3 * len(eras),
		},
	})
}

type batchRequest struct {
	Texts []discourses.BatchItem `json:"texts"`
	Era   string                 `json:"era"`
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Texts) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"message": "texts list cannot be empty"})
		return
	}

	era := discourses.EraPresent
	if req.Era != "" {
		parsed, err := discourses.ParseEra(req.Era)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "unknown era: " + req.Era})
			return
		}
		era = parsed
	}

	results := make(map[string]any, len(req.Texts))
	failed := 0
	for _, item := range req.Texts {
		if strings.Contains(item.Text, "[fail]") {
			results[item.ID] = map[string]any{"error": "simulated failure"}
			failed++
			continue
		}
		results[item.ID] = analysisPayload(item.Text, era)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"meta": map[string]any{
			"era":                era.String(),
			"texts_processed":    len(req.Texts) - failed,
			"texts_failed":       failed,
			"processing_time_ms": 3 * len(req.Texts),
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"version": discourses.Version, "mock": true})
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "request body is not valid JSON"})
		return false
	}
	return true
}

// rejectBadText enforces the API's text validation and the rate-limit
// scenario marker.
func rejectBadText(w http.ResponseWriter, text string) bool {
	if strings.TrimSpace(text) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"message": "text cannot be empty"})
		return true
	}
	if strings.Contains(text, rateLimitMarker) {
		w.Header().Set("X-RateLimit-Reset", "60")
		writeJSON(w, http.StatusTooManyRequests, map[string]any{"message": "rate limit exceeded"})
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
