package analysis

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/calldesk-team/call-insight/internal/domain/entities"
	domainrepo "github.com/calldesk-team/call-insight/internal/domain/repositories"
)

// Client sends a transcript to the model endpoint and returns the raw
// assistant reply. *ai.GroqClient satisfies it.
type Client interface {
	Analyze(ctx context.Context, transcript string) (string, error)
}

// Service defines analysis orchestration methods
type Service interface {
	// Analyze runs the model call, degrades failures into an Unknown
	// result, appends the record to the log, and returns the record. It
	// never returns an error to the caller; failures surface as the
	// record's summary text.
	Analyze(ctx context.Context, transcript string) *entities.Analysis
}

type analysisService struct {
	client Client
	parser *Parser
	log    domainrepo.AnalysisLog
	logger *zap.Logger
}

// NewService constructs a new analysis service
func NewService(client Client, log domainrepo.AnalysisLog, logger *zap.Logger) Service {
	return &analysisService{
		client: client,
		parser: NewParser(),
		log:    log,
		logger: logger,
	}
}

// Analyze implements Service
func (s *analysisService) Analyze(ctx context.Context, transcript string) *entities.Analysis {
	result := s.analyze(ctx, transcript)
	record := entities.NewAnalysis(transcript, result)

	if s.logger != nil {
		s.logger.Info("analysis complete",
			zap.String("analysis_id", record.ID.String()),
			zap.String("transcript", record.Transcript),
			zap.String("summary", record.Result.Summary),
			zap.String("sentiment", record.Result.Sentiment.String()),
		)
	}

	// Degraded results are persisted too; a failed append never fails the
	// request.
	if err := s.log.Append(ctx, record); err != nil {
		if s.logger != nil {
			s.logger.Error("failed to append analysis to log",
				zap.String("analysis_id", record.ID.String()),
				zap.Error(err),
			)
		}
	}

	return record
}

// analyze performs the model call and parse, converting any failure into an
// Unknown-sentiment result carrying the error text as the summary.
func (s *analysisService) analyze(ctx context.Context, transcript string) entities.AnalysisResult {
	content, err := s.client.Analyze(ctx, transcript)
	if err != nil {
		return s.degrade(err)
	}

	result, err := s.parser.ParseAnalysisResponse(content)
	if err != nil {
		return s.degrade(err)
	}
	return *result
}

func (s *analysisService) degrade(err error) entities.AnalysisResult {
	msg := fmt.Sprintf("An error occurred with the Groq API: %v", err)
	if s.logger != nil {
		s.logger.Error("transcript analysis failed", zap.Error(err))
	}
	return entities.AnalysisResult{
		Summary:   msg,
		Sentiment: entities.SentimentUnknown,
	}
}
