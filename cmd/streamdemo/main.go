// Command streamdemo prints the word count, flattened list and second-highest
// number for the built-in example inputs, or for inputs given as flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/hasbyte1/go-stream-idioms/internal/config"
	"github.com/hasbyte1/go-stream-idioms/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns 0 on success, 2 for bad arguments and 1 for output failures.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.WithError(err).Error("invalid arguments")
		return 2
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Error("invalid log level")
		return 2
	}
	logger.SetLevel(level)

	logger.WithFields(log.Fields{
		"sentence": cfg.Sentence,
		"nested":   fmt.Sprint(cfg.Nested),
		"numbers":  fmt.Sprint(cfg.Numbers),
	}).Debug("computing results")

	result := report.New(cfg)
	if !result.Found {
		logger.WithField("numbers", fmt.Sprint(cfg.Numbers)).Debug("fewer than two distinct numbers")
	}

	if err := report.Render(stdout, cfg.Format, result); err != nil {
		logger.WithError(err).Error("render failed")
		return 1
	}
	logger.WithField("format", cfg.Format).Debug("done")
	return 0
}

// parseFlags overlays command-line flags on [config.DefaultConfig].
func parseFlags(args []string, stderr io.Writer) (config.Config, error) {
	cfg := config.DefaultConfig()

	fs := flag.NewFlagSet("streamdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Sentence, "text", cfg.Sentence, "sentence whose space-separated words are counted")
	nested := fs.String("nested", "", `nested list to flatten, groups separated by ";" e.g. "1,2;3,4"`)
	numbers := fs.String("numbers", "", `comma-separated numbers searched for the second highest, e.g. "5,3,9"`)
	fs.StringVar(&cfg.Format, "format", cfg.Format, `output format: "table" or "plain"`)
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	// Only explicitly set flags replace the defaults, so "-numbers=" means an
	// empty list rather than the example list.
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "nested":
			cfg.Nested, err = config.ParseNested(*nested)
		case "numbers":
			cfg.Numbers, err = config.ParseNumbers(*numbers)
		}
	})
	if err != nil {
		return cfg, fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("parse flags: unexpected arguments %v", fs.Args())
	}
	return cfg, cfg.Validate()
}
