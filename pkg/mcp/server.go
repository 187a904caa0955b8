package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"fathom-go/internal/fathom"
	"fathom-go/internal/report"
	"fathom-go/internal/service"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// ReadabilityServer exposes the analyzer as an MCP tool over stdio.
type ReadabilityServer struct {
	analyzer *service.AnalyzerService
	logger   *zap.Logger
	server   *mcp.Server
}

// NewReadabilityServer creates the server and registers its tools.
func NewReadabilityServer(analyzer *service.AnalyzerService, logger *zap.Logger) *ReadabilityServer {
	s := &ReadabilityServer{
		analyzer: analyzer,
		logger:   logger,
	}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "fathom-mcp-server",
		Version: "0.1.0",
	}, nil)
	s.registerTools()

	return s
}

type analyzeParams struct {
	Path     string `json:"path,omitempty"`
	Source   string `json:"source,omitempty"`
	Language string `json:"language,omitempty"`
}

func (s *ReadabilityServer) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "analyze_readability",
		Description: "Estimate the structural readability of a program: token/expression/statement/subroutine counts plus a weighted score and verdict. Pass either 'path' to a source file, or 'source' with 'language' (go, python, javascript, typescript, java).",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path": {
					Type:        "string",
					Description: "Path to a source file to analyze",
				},
				"source": {
					Type:        "string",
					Description: "Inline source code to analyze (requires 'language')",
				},
				"language": {
					Type:        "string",
					Description: "Language of the inline source",
				},
			},
		},
	}, s.handleAnalyze)
}

func (s *ReadabilityServer) handleAnalyze(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params analyzeParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse(fmt.Errorf("invalid parameters: %w", err))
	}

	result, err := s.analyze(params)
	if err != nil {
		return createErrorResponse(err)
	}

	return createJSONResponse(map[string]interface{}{
		"run_id":            result.RunID,
		"tokens":            result.Counters.Tokens,
		"expressions":       result.Counters.Expressions,
		"statements":        result.Counters.Statements,
		"subroutines":       result.Counters.Subroutines,
		"score":             result.Score.Value,
		"label":             result.Score.Label,
		"report":            report.NewReporter(s.analyzer.Verbosity()).Render(result),
		"skipped_reexports": result.SkippedReexports,
	})
}

func (s *ReadabilityServer) analyze(params analyzeParams) (*fathom.Result, error) {
	switch {
	case params.Path != "":
		return s.analyzer.AnalyzeFile(params.Path)
	case params.Source != "":
		if params.Language == "" {
			return nil, fmt.Errorf("'language' is required with inline source")
		}
		return s.analyzer.AnalyzeSource([]byte(params.Source), params.Language, "main")
	default:
		return nil, fmt.Errorf("either 'path' or 'source' must be provided")
	}
}

// Run serves MCP requests on stdio until the context is cancelled.
func (s *ReadabilityServer) Run(ctx context.Context) error {
	s.logger.Info("starting MCP server on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// createJSONResponse creates a standardized JSON response for MCP tools.
func createJSONResponse(data interface{}) (*mcp.CallToolResult, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response data: %v", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(content)},
		},
	}, nil
}

func createErrorResponse(err error) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: err.Error()},
		},
	}, nil
}
