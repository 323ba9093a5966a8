package main

import (
	"fmt"
	"os"

	"github.com/copyleftdev/SEEKR/internal/config"
	"github.com/copyleftdev/SEEKR/internal/logging"
	"github.com/copyleftdev/SEEKR/internal/render"
	"github.com/copyleftdev/SEEKR/internal/report"
	"github.com/copyleftdev/SEEKR/internal/search"
	"github.com/copyleftdev/SEEKR/internal/search/blind"
	"github.com/copyleftdev/SEEKR/internal/search/objectives"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Use standard error output as fallback if config loading fails
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize base logger
	logger, err := logging.NewLogger(&logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Create a service logger with additional fields
	serviceLogger := logger.WithFields(map[string]interface{}{
		"service": "seekr",
		"version": "1.0.0",
	})

	// Resolve the objective function
	objective, err := objectives.ByName(cfg.Search.Objective)
	if err != nil {
		serviceLogger.Fatal("Unknown objective", map[string]interface{}{
			"objective": cfg.Search.Objective,
			"error":     err.Error(),
		})
	}

	searchCfg := search.Config{
		Dimension:   cfg.Search.Dimension,
		LowerBound:  cfg.Search.LowerBound,
		UpperBound:  cfg.Search.UpperBound,
		SampleCount: cfg.Search.SampleCount,
		Objective:   objectives.Bind(objective),
		RandomSeed:  cfg.Search.Seed,
	}

	strategy, err := blind.NewBlindSearch(searchCfg)
	if err != nil {
		serviceLogger.Fatal("Invalid search configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	serviceLogger.Info("Starting blind search", map[string]interface{}{
		"objective":    objective.Name(),
		"dimension":    searchCfg.Dimension,
		"lower_bound":  searchCfg.LowerBound,
		"upper_bound":  searchCfg.UpperBound,
		"sample_count": searchCfg.SampleCount,
		"seed":         searchCfg.RandomSeed,
	})

	result, err := strategy.Run(searchCfg)
	if err != nil {
		serviceLogger.Fatal("Search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	serviceLogger.Info("Search finished", map[string]interface{}{
		"best_value":       result.BestValue,
		"improving_points": len(result.Trace),
		"evaluations":      result.Evaluations,
	})

	if err := report.Pretty(os.Stdout, searchCfg, result); err != nil {
		serviceLogger.Fatal("Failed to print report", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if cfg.Report.CSVPath != "" {
		if err := writeCSV(cfg.Report.CSVPath, result); err != nil {
			serviceLogger.Fatal("Failed to write trace CSV", map[string]interface{}{
				"path":  cfg.Report.CSVPath,
				"error": err.Error(),
			})
		}
		serviceLogger.Info("Wrote trace CSV", map[string]interface{}{
			"path": cfg.Report.CSVPath,
		})
	}

	// Visualization only applies to two-dimensional searches
	if cfg.Render.Enabled && searchCfg.Dimension == 2 {
		renderer := render.NewRenderer(render.Config{
			OutputDir:  cfg.Render.OutputDir,
			GridSize:   cfg.Render.GridSize,
			FrameDelay: cfg.Render.FrameDelay,
		}, logging.NewZapLogger(serviceLogger))

		if err := renderer.Render(searchCfg, searchCfg.Objective, result.Trace); err != nil {
			serviceLogger.Fatal("Rendering failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func writeCSV(path string, result *search.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := report.CSV(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
