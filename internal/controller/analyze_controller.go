package controller

import (
	"errors"
	"net/http"

	"fathom-go/internal/fathom"
	"fathom-go/internal/report"
	"fathom-go/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyzeController exposes the readability analyzer over HTTP.
type AnalyzeController struct {
	analyzer *service.AnalyzerService
	logger   *zap.Logger
}

func NewAnalyzeController(analyzer *service.AnalyzerService, logger *zap.Logger) *AnalyzeController {
	return &AnalyzeController{analyzer: analyzer, logger: logger}
}

type AnalyzeFileRequest struct {
	Path string `json:"path" binding:"required"`
}

type AnalyzeSourceRequest struct {
	Source   string `json:"source" binding:"required"`
	Language string `json:"language" binding:"required"`
	Module   string `json:"module,omitempty"`
}

type AnalyzeResponse struct {
	RunID            string          `json:"run_id"`
	Counters         fathom.Counters `json:"counters"`
	Score            float64         `json:"score"`
	Label            string          `json:"label"`
	Report           string          `json:"report"`
	SkippedReexports []string        `json:"skipped_reexports,omitempty"`
}

// AnalyzeFile handles POST /api/v1/analyzeFile.
func (ac *AnalyzeController) AnalyzeFile(c *gin.Context) {
	var req AnalyzeFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ac.analyzer.AnalyzeFile(req.Path)
	if err != nil {
		ac.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ac.toResponse(result))
}

// AnalyzeSource handles POST /api/v1/analyzeSource.
func (ac *AnalyzeController) AnalyzeSource(c *gin.Context) {
	var req AnalyzeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	module := req.Module
	if module == "" {
		module = "main"
	}
	result, err := ac.analyzer.AnalyzeSource([]byte(req.Source), req.Language, module)
	if err != nil {
		ac.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ac.toResponse(result))
}

func (ac *AnalyzeController) toResponse(result *fathom.Result) AnalyzeResponse {
	return AnalyzeResponse{
		RunID:            result.RunID,
		Counters:         result.Counters,
		Score:            result.Score.Value,
		Label:            result.Score.Label,
		Report:           report.NewReporter(ac.analyzer.Verbosity()).Render(result),
		SkippedReexports: result.SkippedReexports,
	}
}

func (ac *AnalyzeController) respondError(c *gin.Context, err error) {
	var degenerate *fathom.DegenerateInputError
	if errors.As(err, &degenerate) {
		// no score can be produced for an empty or pathological program
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	ac.logger.Error("analysis request failed", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
