package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentiment is the emotional tone recognized for a transcript
type Sentiment string

// Sentiment labels. Unknown covers every failure or unrecognized reply.
const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
	SentimentUnknown  Sentiment = "Unknown"
)

// ParseSentiment normalizes a model-supplied label. Anything outside the
// three known labels maps to Unknown.
func ParseSentiment(s string) Sentiment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive":
		return SentimentPositive
	case "neutral":
		return SentimentNeutral
	case "negative":
		return SentimentNegative
	default:
		return SentimentUnknown
	}
}

// String implements fmt.Stringer
func (s Sentiment) String() string {
	return string(s)
}

// BadgeClass returns the CSS class used for the sentiment badge on the
// result page. Unknown renders without a color class.
func (s Sentiment) BadgeClass() string {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return strings.ToLower(string(s))
	default:
		return ""
	}
}

// AnalysisResult represents the structured output from Groq LLM analysis
type AnalysisResult struct {
	Summary   string    `json:"summary"`
	Sentiment Sentiment `json:"sentiment"`
}

// Analysis is one analyzed transcript. The ID and timestamp are carried in
// logs only; the CSV row holds transcript, summary and sentiment.
type Analysis struct {
	ID         uuid.UUID
	Transcript string
	Result     AnalysisResult
	CreatedAt  time.Time
}

// NewAnalysis creates a new Analysis record
func NewAnalysis(transcript string, result AnalysisResult) *Analysis {
	return &Analysis{
		ID:         uuid.New(),
		Transcript: transcript,
		Result:     result,
		CreatedAt:  time.Now(),
	}
}
