package analysis

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/calldesk-team/call-insight/internal/domain/entities"
)

type fakeClient struct {
	content string
	err     error
	calls   int
}

func (f *fakeClient) Analyze(ctx context.Context, transcript string) (string, error) {
	f.calls++
	return f.content, f.err
}

type fakeLog struct {
	appended []*entities.Analysis
	err      error
}

func (f *fakeLog) Append(ctx context.Context, a *entities.Analysis) error {
	f.appended = append(f.appended, a)
	return f.err
}

func TestAnalyze_Success(t *testing.T) {
	client := &fakeClient{content: `{"summary":"Order delayed, refund requested.","sentiment":"Negative"}`}
	lg := &fakeLog{}
	svc := NewService(client, lg, zap.NewNop())

	record := svc.Analyze(context.Background(), "my order is late")
	if record.Result.Summary != "Order delayed, refund requested." {
		t.Fatalf("unexpected summary %q", record.Result.Summary)
	}
	if record.Result.Sentiment != entities.SentimentNegative {
		t.Fatalf("unexpected sentiment %s", record.Result.Sentiment)
	}
	if len(lg.appended) != 1 {
		t.Fatalf("expected exactly one appended row, got %d", len(lg.appended))
	}
	if lg.appended[0].Transcript != "my order is late" {
		t.Fatalf("transcript not persisted: %q", lg.appended[0].Transcript)
	}
}

func TestAnalyze_ClientFailureDegrades(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("connection refused")}
	lg := &fakeLog{}
	svc := NewService(client, lg, zap.NewNop())

	record := svc.Analyze(context.Background(), "transcript")
	if record.Result.Sentiment != entities.SentimentUnknown {
		t.Fatalf("expected Unknown sentiment, got %s", record.Result.Sentiment)
	}
	if !strings.Contains(record.Result.Summary, "connection refused") {
		t.Fatalf("expected error text in summary, got %q", record.Result.Summary)
	}
	// The degraded result is still persisted
	if len(lg.appended) != 1 {
		t.Fatalf("expected degraded row to be appended, got %d rows", len(lg.appended))
	}
}

func TestAnalyze_MalformedReplyDegrades(t *testing.T) {
	client := &fakeClient{content: "oops not json"}
	lg := &fakeLog{}
	svc := NewService(client, lg, zap.NewNop())

	record := svc.Analyze(context.Background(), "transcript")
	if record.Result.Sentiment != entities.SentimentUnknown {
		t.Fatalf("expected Unknown sentiment, got %s", record.Result.Sentiment)
	}
	if !strings.Contains(record.Result.Summary, "An error occurred with the Groq API") {
		t.Fatalf("unexpected summary %q", record.Result.Summary)
	}
}

func TestAnalyze_AppendFailureStillReturnsRecord(t *testing.T) {
	client := &fakeClient{content: `{"summary":"fine","sentiment":"Neutral"}`}
	lg := &fakeLog{err: fmt.Errorf("disk full")}
	svc := NewService(client, lg, zap.NewNop())

	record := svc.Analyze(context.Background(), "transcript")
	if record == nil || record.Result.Summary != "fine" {
		t.Fatalf("append failure must not change the result, got %+v", record)
	}
}

func TestAnalyze_NoDeduplication(t *testing.T) {
	client := &fakeClient{content: `{"summary":"same","sentiment":"Neutral"}`}
	lg := &fakeLog{}
	svc := NewService(client, lg, zap.NewNop())

	svc.Analyze(context.Background(), "identical transcript")
	svc.Analyze(context.Background(), "identical transcript")
	if len(lg.appended) != 2 {
		t.Fatalf("expected two independent rows, got %d", len(lg.appended))
	}
	if client.calls != 2 {
		t.Fatalf("expected two model calls, got %d", client.calls)
	}
}
