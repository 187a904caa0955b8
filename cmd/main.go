package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"

	"fathom-go/internal/config"
	"fathom-go/internal/controller"
	"fathom-go/internal/handler"
	"fathom-go/internal/report"
	"fathom-go/internal/service"
	"fathom-go/pkg/mcp"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stringSliceFlag is a custom flag type that allows multiple values
type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func main() {
	var configPath = flag.String("config", "app.yaml", "Path to configuration file")
	var verbosity = flag.Int("verbosity", -1, "Verbosity level (overrides configuration when >= 0)")
	var mcpMode = flag.Bool("mcp", false, "Serve as an MCP server on stdio")
	var files stringSliceFlag
	var targets stringSliceFlag
	flag.Var(&files, "file", "Source file to analyze (can be specified multiple times)")
	flag.Var(&targets, "target", "Configured target to analyze (can be specified multiple times)")
	flag.Parse()

	cfgZap := zap.NewProductionConfig()
	cfgZap.Level.SetLevel(zapcore.InfoLevel)
	if *mcpMode || len(files) > 0 || len(targets) > 0 {
		// keep stdout clean for reports and the MCP transport
		cfgZap.OutputPaths = []string{"stderr"}
	}
	logger, err := cfgZap.Build()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	if *verbosity >= 0 {
		cfg.App.Verbosity = *verbosity
	}
	if cfg.App.Verbosity >= 2 {
		cfgZap.Level.SetLevel(zapcore.DebugLevel)
	}

	analyzer := service.NewAnalyzerService(logger, cfg.App.Verbosity)

	if *mcpMode {
		logger.Info("Running in MCP mode")
		server := mcp.NewReadabilityServer(analyzer, logger)
		if err := server.Run(context.Background()); err != nil {
			logger.Fatal("MCP server failed", zap.Error(err))
		}
		return
	}

	if len(files) > 0 || len(targets) > 0 {
		logger.Info("Running in CLI mode",
			zap.Strings("files", files),
			zap.Strings("targets", targets))
		if ok := AnalyzeCommand(cfg, logger, analyzer, files, targets); !ok {
			os.Exit(1)
		}
		return
	}

	analyzeController := controller.NewAnalyzeController(analyzer, logger)
	router := handler.SetupRouter(analyzeController, logger)

	logger.Info("Starting server", zap.Int("port", cfg.App.Port))
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), router); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// AnalyzeCommand runs one-shot analyses for the given files and configured
// targets and prints reports to stdout. It returns false if any analysis
// failed.
func AnalyzeCommand(cfg *config.Config, logger *zap.Logger, analyzer *service.AnalyzerService, files, targets []string) bool {
	reporter := report.NewReporter(cfg.App.Verbosity)
	ok := true

	for _, filePath := range files {
		result, err := analyzer.AnalyzeFile(filePath)
		if err != nil {
			logger.Error("Failed to analyze file",
				zap.String("path", filePath),
				zap.Error(err))
			ok = false
			continue
		}
		fmt.Printf("%s:\n%s\n", filePath, reporter.Render(result))
	}

	for _, targetName := range targets {
		target, err := cfg.GetTarget(targetName)
		if err != nil {
			logger.Error("Target not found in configuration",
				zap.String("target", targetName),
				zap.Error(err))
			ok = false
			continue
		}
		if target.Disabled {
			logger.Info("Skipping disabled target", zap.String("target", targetName))
			continue
		}

		results, err := analyzer.AnalyzeTarget(target)
		if err != nil {
			logger.Error("Failed to analyze target",
				zap.String("target", targetName),
				zap.Error(err))
			ok = false
			continue
		}

		paths := make([]string, 0, len(results.Files))
		for path := range results.Files {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			fmt.Printf("%s:\n%s\n", path, reporter.Render(results.Files[path]))
		}
		for path, reason := range results.Failures {
			logger.Warn("File skipped during target analysis",
				zap.String("path", path),
				zap.String("reason", reason))
		}
		logger.Info("Completed target analysis",
			zap.String("target", targetName),
			zap.Int("analyzed", len(results.Files)),
			zap.Int("failed", len(results.Failures)))
	}

	return ok
}
