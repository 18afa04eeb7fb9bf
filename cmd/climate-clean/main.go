// Command climate-clean merges the raw NetCDF climate files: files sharing a
// filename prefix are concatenated along the time axis into one combined
// dataset per group, and a metadata report is printed for review.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/kbrou/cocoaclim/internal/climate"
	"github.com/kbrou/cocoaclim/internal/config"
	"github.com/kbrou/cocoaclim/internal/watch"
)

var (
	configPath = flag.String("config", "", "path to a YAML settings file")
	inputDir   = flag.String("input", "", "directory of NetCDF files to merge (overrides config)")
	outputDir  = flag.String("output", "", "directory for combined artifacts (overrides config)")
	keepGoing  = flag.Bool("continue", false, "keep processing remaining groups when one fails")
	watchMode  = flag.Bool("watch", false, "stay running and re-merge when input files change")
)

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Error("Could not load settings", "err", err)
			os.Exit(1)
		}
	}
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *keepGoing {
		cfg.ContinueOnError = true
	}

	m := climate.NewMerger(logger, climate.Options{
		InputDir:        cfg.InputDir,
		OutputDir:       cfg.OutputDir,
		Extension:       cfg.Extension,
		JoinAxis:        cfg.JoinAxis,
		ContinueOnError: cfg.ContinueOnError,
	})

	runOnce := func() error {
		results, err := m.Run()
		if werr := climate.WriteReport(os.Stdout, results); werr != nil {
			logger.Error("Could not write report", "err", werr)
		}
		return err
	}

	if err := runOnce(); err != nil {
		logger.Error("Merge failed", "err", err)
		os.Exit(1)
	}

	if *watchMode {
		w := watch.New(logger, cfg.InputDir, cfg.Extension, func() {
			if err := runOnce(); err != nil {
				logger.Error("Merge failed", "err", err)
			}
		})
		if err := w.Run(); err != nil {
			logger.Error("Watcher stopped", "err", err)
			os.Exit(1)
		}
	}
}
