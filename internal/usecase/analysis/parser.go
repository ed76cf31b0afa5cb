package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/calldesk-team/call-insight/internal/domain/entities"
)

// Parser handles parsing and validation of Groq API responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// rawResult mirrors the JSON object the model is instructed to return
type rawResult struct {
	Summary   string `json:"summary"`
	Sentiment string `json:"sentiment"`
}

// ParseAnalysisResponse parses the JSON response from Groq into an
// AnalysisResult, normalizing the sentiment label.
func (p *Parser) ParseAnalysisResponse(jsonString string) (*entities.AnalysisResult, error) {
	// Extract JSON from response (Groq might wrap it in markdown code blocks)
	jsonString = extractJSON(jsonString)

	var raw rawResult
	if err := json.Unmarshal([]byte(jsonString), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	// Validate required fields
	if raw.Summary == "" {
		return nil, fmt.Errorf("missing summary in response")
	}
	if raw.Sentiment == "" {
		return nil, fmt.Errorf("missing sentiment in response")
	}

	return &entities.AnalysisResult{
		Summary:   raw.Summary,
		Sentiment: entities.ParseSentiment(raw.Sentiment),
	}, nil
}

// extractJSON strips markdown code fences and surrounding prose, returning
// the first top-level JSON object in the string.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
