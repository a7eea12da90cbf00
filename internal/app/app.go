// Package app wires configuration, logging and output around the
// ground-motion operations exposed by the CLI.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/quakemetrics/groundmotion/configs"
	"github.com/quakemetrics/groundmotion/internal/logging"
	"github.com/quakemetrics/groundmotion/internal/output"
	"github.com/quakemetrics/groundmotion/pkg/syngine"
)

// Context holds the application context and configuration
type Context struct {
	// CLI arguments
	OutputFile   string
	OutputFormat string
	Verbose      bool
	Quiet        bool

	// Runtime context
	Logger logging.Logger
	Config *configs.Config
}

// App handles one CLI invocation's lifecycle
type App struct {
	ctx    *Context
	config *configs.Config
	logger logging.Logger
	client *syngine.Client
}

// NewApp sets up logging, loads and validates configuration, and prepares
// the synthetics client.
func NewApp(ctx *Context) (*App, error) {
	logger := setupLogging(ctx)
	ctx.Logger = logger

	config, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := configs.ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	ctx.Config = config

	if ctx.OutputFormat == "" {
		ctx.OutputFormat = config.OutputFormat
	}

	client := syngine.NewClient(&syngine.ClientConfig{
		Endpoint:     config.Syngine.Endpoint,
		DefaultModel: config.Syngine.Model,
		Timeout:      config.Syngine.Timeout,
		UserAgent:    config.Syngine.UserAgent,
		Logger:       logger,
	})

	logger.Debug("Application initialized", logging.Fields{
		"endpoint":      config.Syngine.Endpoint,
		"model":         config.Syngine.Model,
		"output_format": ctx.OutputFormat,
	})

	return &App{
		ctx:    ctx,
		config: config,
		logger: logger,
		client: client,
	}, nil
}

// setupLogging configures logging based on context
func setupLogging(ctx *Context) logging.Logger {
	level := "info"
	if ctx.Verbose {
		level = "debug"
	} else if ctx.Quiet {
		level = "error"
	}
	return logging.NewLogger(level)
}

// Output formats the result and writes it to the output file or stdout
func (a *App) Output(data any) error {
	formatter, err := output.NewFormatter(a.ctx.OutputFormat)
	if err != nil {
		return err
	}

	formatted, err := formatter.Format(data, true)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if a.ctx.OutputFile != "" {
		return a.writeToFile(formatted)
	}

	_, err = os.Stdout.Write(formatted)
	return err
}

// writeToFile writes data to the configured output file
func (a *App) writeToFile(data []byte) error {
	dir := filepath.Dir(a.ctx.OutputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(a.ctx.OutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	a.logger.Info("Results written to file", logging.Fields{
		"output_file": a.ctx.OutputFile,
		"size_bytes":  len(data),
	})

	return nil
}
