package analysis

import (
	"testing"

	"github.com/calldesk-team/call-insight/internal/domain/entities"
)

func TestParseAnalysisResponse_PlainJSON(t *testing.T) {
	p := NewParser()
	result, err := p.ParseAnalysisResponse(`{"summary":"Customer asked for a refund.","sentiment":"Negative"}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.Summary != "Customer asked for a refund." {
		t.Fatalf("unexpected summary %q", result.Summary)
	}
	if result.Sentiment != entities.SentimentNegative {
		t.Fatalf("unexpected sentiment %s", result.Sentiment)
	}
}

func TestParseAnalysisResponse_MarkdownFences(t *testing.T) {
	p := NewParser()
	raw := "```json\n{\"summary\":\"All good.\",\"sentiment\":\"positive\"}\n```"
	result, err := p.ParseAnalysisResponse(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.Sentiment != entities.SentimentPositive {
		t.Fatalf("expected normalized Positive, got %s", result.Sentiment)
	}
}

func TestParseAnalysisResponse_SurroundingProse(t *testing.T) {
	p := NewParser()
	raw := `Here is the analysis: {"summary":"Billing issue resolved.","sentiment":"Neutral"} hope that helps`
	result, err := p.ParseAnalysisResponse(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.Summary != "Billing issue resolved." {
		t.Fatalf("unexpected summary %q", result.Summary)
	}
}

func TestParseAnalysisResponse_InvalidJSON(t *testing.T) {
	p := NewParser()
	if _, err := p.ParseAnalysisResponse("not json at all"); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}

func TestParseAnalysisResponse_MissingFields(t *testing.T) {
	p := NewParser()
	if _, err := p.ParseAnalysisResponse(`{"sentiment":"Positive"}`); err == nil {
		t.Fatalf("expected error for missing summary")
	}
	if _, err := p.ParseAnalysisResponse(`{"summary":"something"}`); err == nil {
		t.Fatalf("expected error for missing sentiment")
	}
}

func TestParseAnalysisResponse_UnrecognizedLabel(t *testing.T) {
	p := NewParser()
	result, err := p.ParseAnalysisResponse(`{"summary":"s","sentiment":"ecstatic"}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.Sentiment != entities.SentimentUnknown {
		t.Fatalf("expected Unknown for unrecognized label, got %s", result.Sentiment)
	}
}
