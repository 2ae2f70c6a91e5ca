package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/nao1215/apodex/internal/config"
	"github.com/nao1215/apodex/internal/groq"
	applog "github.com/nao1215/apodex/internal/log"
	"github.com/nao1215/apodex/internal/model"
	"github.com/nao1215/apodex/internal/nasa"
	"github.com/nao1215/apodex/internal/pipeline"
	"github.com/nao1215/apodex/internal/report"
	"github.com/nao1215/apodex/internal/simplify"
	"github.com/spf13/cobra"
)

// NewExplainCmd creates the explain command.
func NewExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Fetch today's APOD and simplify its explanation",
		Long: `Explain fetches NASA's Astronomy Picture of the Day, rewrites the
technical explanation into plain language via the Groq completion API,
and saves the picture together with both versions of the text.

The run needs two environment variables (or a .env file):
  NASA_KEY      NASA API key (https://api.nasa.gov)
  GROQ_API_KEY  Groq API key (https://console.groq.com)

Examples:
  # Explain today's picture
  apodex explain

  # Explain a specific day
  apodex explain --date 2025-06-01

  # Write a Markdown report into ./reports
  apodex explain --markdown --output-dir reports

  # Skip the image download
  apodex explain --no-image

Configuration file (.apodex) example:
  model: llama-3.1-8b-instant
  temperature: 0.7
  outputDir: screenshots
  format: markdown`,
		Args: cobra.NoArgs,
		RunE: runExplainCmd,
	}

	// Record selection flags
	cmd.Flags().StringP("date", "d", "",
		"APOD date in YYYY-MM-DD format (default: today)")

	// Network flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each API request")
	cmd.Flags().Bool("no-image", false,
		"Skip downloading the image; the report references the remote URL")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .apodex in current, XDG config, or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Write a JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Write a Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output-dir", "o", config.DefaultOutputDir,
		"Directory for the report and image files (created if needed)")

	return cmd
}

// runExplainCmd executes the explain command.
func runExplainCmd(cmd *cobra.Command, _ []string) error {
	// Build config from file, environment, and flags
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration. Missing credentials fail here, before
	// any HTTP client exists.
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with credential redaction
	logger := applog.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runExplain(ctx, cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file, the environment,
// and cobra command flags. Precedence, lowest to highest: defaults,
// config file, flags. Credentials come from the environment only.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the optional config file first so flags can override it.
	// An explicitly requested file that does not exist is an error;
	// a missing default file is not.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.Date, err = cmd.Flags().GetString("date")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.SkipImage, err = cmd.Flags().GetBool("no-image")
	if err != nil {
		return nil, err
	}

	jsonReport, err := cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	if jsonReport {
		cfg.JSONReport = true
		cfg.MarkdownReport = false
	}

	markdownReport, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	if markdownReport {
		cfg.MarkdownReport = true
		cfg.JSONReport = jsonReport // keep the conflict visible for Validate
	}

	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir, err = cmd.Flags().GetString("output-dir")
		if err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Seed the environment from .env if present, then read the keys.
	config.LoadDotEnv()
	cfg.LoadCredentials()

	return cfg, nil
}

// runExplain executes the fetch-simplify-render pipeline.
func runExplain(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting run",
		"date", cfg.Date,
		"model", cfg.Model,
		"outputDir", cfg.OutputDir,
		"skipImage", cfg.SkipImage,
	)

	nasaClient := nasa.NewClient(cfg.NASAAPIKey,
		nasa.WithEndpoint(cfg.APODEndpoint),
		nasa.WithTimeout(cfg.Timeout),
		nasa.WithMaxImageSize(cfg.MaxImageSize),
	)

	groqClient := groq.NewClient(cfg.GroqAPIKey,
		groq.WithEndpoint(cfg.GroqEndpoint),
		groq.WithModel(cfg.Model),
		groq.WithTemperature(cfg.Temperature),
		groq.WithMaxTokens(cfg.MaxTokens),
		groq.WithTimeout(cfg.Timeout),
	)

	simplifier := simplify.New(groqClient, simplify.WithLogger(logger))

	p := pipeline.New([]pipeline.Step{
		pipeline.NewFetchStep(nasaClient, cfg.Date, pipeline.WithFetchLogger(logger)),
		pipeline.NewImageStep(nasaClient,
			pipeline.WithImageSkip(cfg.SkipImage),
			pipeline.WithImageLogger(logger),
		),
		pipeline.NewSimplifyStep(simplifier, pipeline.WithSimplifyLogger(logger)),
	}, pipeline.WithLogger(logger))

	runReport := model.NewReport()

	fmt.Fprintln(cmd.OutOrStdout(), "Fetching Astronomy Picture of the Day...")
	startTime := time.Now()

	if err := p.Execute(ctx, runReport); err != nil {
		logger.Error("run failed", "error", err)
		return err
	}

	elapsed := time.Since(startTime)
	fmt.Fprintf(cmd.OutOrStdout(), "Done in %s\n\n", elapsed.Round(time.Millisecond))

	// Persist the image first so the report can reference the saved file.
	if err := saveImage(cfg, runReport); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	reportPath, err := outputReport(cfg, runReport)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	printSummary(cmd, runReport, reportPath)
	return nil
}

// reportBaseName returns the per-day file name stem, e.g. "apod-2025-06-01".
func reportBaseName(r *model.Report) string {
	date := ""
	if r.Apod != nil {
		date = r.Apod.Date
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return "apod-" + date
}

// saveImage writes the downloaded image bytes next to the report and
// records the saved file name on the report. A skipped or video record
// leaves LocalPath empty so the report falls back to the remote URL.
func saveImage(cfg *config.Config, r *model.Report) error {
	if !r.Image.Downloaded() {
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	name := reportBaseName(r) + imageExtension(r.Image)
	path := filepath.Join(cfg.OutputDir, name)

	if err := os.WriteFile(path, r.Image.Data, 0600); err != nil {
		return err
	}

	// Relative to the report file, which lives in the same directory.
	r.Image.LocalPath = name
	return nil
}

// imageExtension picks a file extension from the Content-Type, falling
// back to the URL's extension and then ".jpg".
func imageExtension(img *model.ImageAsset) string {
	switch {
	case strings.Contains(img.ContentType, "png"):
		return ".png"
	case strings.Contains(img.ContentType, "gif"):
		return ".gif"
	case strings.Contains(img.ContentType, "webp"):
		return ".webp"
	case strings.Contains(img.ContentType, "jpeg"), strings.Contains(img.ContentType, "jpg"):
		return ".jpg"
	}

	if ext := strings.ToLower(filepath.Ext(img.URL)); ext == ".png" || ext == ".gif" || ext == ".webp" || ext == ".jpg" || ext == ".jpeg" {
		return ext
	}
	return ".jpg"
}

// outputReport writes the report in the requested format and returns
// the path it was written to. A write failure here is fatal to the run;
// the whole point of the pipeline is the saved artifact.
func outputReport(cfg *config.Config, r *model.Report) (string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	ext := ".txt"
	switch {
	case cfg.JSONReport:
		ext = ".json"
	case cfg.MarkdownReport:
		ext = ".md"
	}
	path := filepath.Join(cfg.OutputDir, reportBaseName(r)+ext)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // Path derives from user-chosen output dir
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(f, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(f)
	default:
		writer = report.NewTextWriter(f)
	}

	if _, err := writer.Write(r); err != nil {
		return "", err
	}
	return path, nil
}

// printSummary prints the run result to the terminal.
func printSummary(cmd *cobra.Command, r *model.Report, reportPath string) {
	out := cmd.OutOrStdout()

	if r.Apod != nil {
		fmt.Fprintf(out, "%s (%s)\n\n", r.Apod.Title, r.Apod.Date)
	}
	if r.Simplified != nil {
		fmt.Fprintf(out, "%s\n\n", r.Simplified.Text)
		if r.Apod != nil {
			fmt.Fprintf(out, "Original: %d words, simplified: %d words\n",
				r.Apod.ExplanationWordCount(), r.Simplified.Words)
		}
	}

	fmt.Fprintf(out, "Report saved: %s\n", reportPath)
	if r.Image != nil && r.Image.LocalPath != "" {
		fmt.Fprintf(out, "Image saved:  %s\n", filepath.Join(filepath.Dir(reportPath), r.Image.LocalPath))
	}
}
