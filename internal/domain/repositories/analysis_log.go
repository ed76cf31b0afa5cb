package repositories

import (
	"context"

	"github.com/calldesk-team/call-insight/internal/domain/entities"
)

// AnalysisLog persists analyzed transcripts, append-only
type AnalysisLog interface {
	// Append writes one analysis as a new row. Rows are never updated or
	// deleted, and the same transcript may appear more than once.
	Append(ctx context.Context, analysis *entities.Analysis) error
}
