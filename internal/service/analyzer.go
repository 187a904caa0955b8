package service

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"fathom-go/internal/config"
	"fathom-go/internal/fathom"
	"fathom-go/internal/frontend"
	"fathom-go/internal/util"

	"go.uber.org/zap"
)

// AnalyzerService ties the front end to the analysis pipeline. It is the
// single entry point shared by the CLI, the HTTP API and the MCP server.
type AnalyzerService struct {
	logger    *zap.Logger
	verbosity int
}

// NewAnalyzerService creates the service with the configured verbosity.
func NewAnalyzerService(logger *zap.Logger, verbosity int) *AnalyzerService {
	return &AnalyzerService{logger: logger, verbosity: verbosity}
}

// Verbosity returns the configured verbosity level.
func (s *AnalyzerService) Verbosity() int {
	return s.verbosity
}

// AnalyzeFile parses one source file and runs the readability analysis on
// it. Each call owns a fresh parser and analysis run.
func (s *AnalyzerService) AnalyzeFile(filePath string) (*fathom.Result, error) {
	parser := frontend.NewFileParser(s.logger)
	program, err := parser.ParseFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return s.analyze(program)
}

// AnalyzeSource analyzes in-memory source content in the given language.
func (s *AnalyzerService) AnalyzeSource(content []byte, language string, moduleName string) (*fathom.Result, error) {
	langType := frontend.NewLanguageTypeFromString(language)
	if langType == frontend.Unknown {
		return nil, fmt.Errorf("unsupported language: %s", language)
	}
	parser := frontend.NewFileParser(s.logger)
	program, err := parser.ParseSource(content, langType, moduleName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	return s.analyze(program)
}

// TargetResult collects the per-file outcomes of analyzing a configured
// target directory. Files that could not be analyzed are kept in Failures
// with the error message, keyed by path like Files.
type TargetResult struct {
	Files    map[string]*fathom.Result
	Failures map[string]string
}

// AnalyzeTarget walks a configured target directory and analyzes every
// supported source file in it. Directories and files on the skip lists
// (vendored, generated, minified) are ignored. A file that fails to parse
// or produces a degenerate program is recorded in Failures and does not
// stop the walk.
func (s *AnalyzerService) AnalyzeTarget(target *config.Target) (*TargetResult, error) {
	out := &TargetResult{
		Files:    make(map[string]*fathom.Result),
		Failures: make(map[string]string),
	}

	err := filepath.WalkDir(target.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if util.ShouldSkipDirectory(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if util.ShouldSkipFile(path) {
			return nil
		}
		if target.Language != "" && !util.IsLanguageMatch(path, target.Language) {
			return nil
		}
		parser := frontend.NewFileParser(s.logger)
		if target.Language == "" && parser.DetectLanguage(path) == frontend.Unknown {
			return nil
		}

		result, analyzeErr := s.AnalyzeFile(path)
		if analyzeErr != nil {
			s.logger.Warn("skipping file in target walk",
				zap.String("path", path),
				zap.Error(analyzeErr))
			out.Failures[path] = analyzeErr.Error()
			return nil
		}
		out.Files[path] = result
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk target %s: %w", target.Name, err)
	}

	return out, nil
}

func (s *AnalyzerService) analyze(program *frontend.Program) (*fathom.Result, error) {
	run := fathom.NewAnalysisRun(s.logger, s.verbosity)
	result, err := run.Analyze(program.Main, program.Globals)
	if err != nil {
		return nil, fmt.Errorf("analysis %s failed: %w", run.ID(), err)
	}
	return result, nil
}
