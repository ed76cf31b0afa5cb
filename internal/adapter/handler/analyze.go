package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/calldesk-team/call-insight/errors"
	"github.com/calldesk-team/call-insight/internal/usecase/analysis"
)

// AnalyzeRequest is the analyze form payload
type AnalyzeRequest struct {
	Transcript string `form:"transcript" validate:"required"`
}

// pageData feeds the index template
type pageData struct {
	Transcript string
	Summary    string
	Sentiment  string
	BadgeClass string
	HasResult  bool
	CSVFile    string
}

// AnalyzeController serves the transcript form and the analyze endpoint
type AnalyzeController struct {
	svc     analysis.Service
	csvFile string
	logger  *zap.Logger
}

// NewAnalyzeController creates a new analyze controller
func NewAnalyzeController(svc analysis.Service, csvFile string, logger *zap.Logger) *AnalyzeController {
	return &AnalyzeController{svc: svc, csvFile: csvFile, logger: logger}
}

// Index renders the empty form page
func (ac *AnalyzeController) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", pageData{})
}

// Analyze runs analysis on the submitted transcript and re-renders the page
// with the result. An empty transcript short-circuits with a plain-text 400
// before any model call or log write.
func (ac *AnalyzeController) Analyze(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrMissingTranscript())
	}

	record := ac.svc.Analyze(c.Request().Context(), req.Transcript)

	return c.Render(http.StatusOK, "index.html", pageData{
		Transcript: record.Transcript,
		Summary:    record.Result.Summary,
		Sentiment:  record.Result.Sentiment.String(),
		BadgeClass: record.Result.Sentiment.BadgeClass(),
		HasResult:  true,
		CSVFile:    ac.csvFile,
	})
}
