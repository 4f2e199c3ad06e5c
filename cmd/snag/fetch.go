package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ligustah/snag/internal/batch"
	"github.com/ligustah/snag/internal/catalog"
	"github.com/ligustah/snag/internal/config"
	"github.com/ligustah/snag/internal/fetch"
	"github.com/ligustah/snag/internal/progress"
	"github.com/ligustah/snag/internal/storage"
)

func runFetch(args []string) int {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)

	configPath := fs.String("config", "", "YAML config file")
	manifest := fs.String("manifest", "", "Catalog manifest file (default: built-in catalog)")
	baseURL := fs.String("base-url", "", "Override the catalog base URL")
	output := fs.String("output", "", "Destination directory or bucket URL (default: data)")
	timeout := fs.Duration("timeout", 0, "Per-request timeout (default: none)")
	retries := fs.Int("retries", 0, "Retry attempts after a failed fetch (default: none)")
	showProgress := fs.Bool("progress", false, "Print transfer totals")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: snag fetch [options]

Download every file in the catalog, one at a time, and verify each against
its known MD5 checksum. Files without a known checksum are kept unverified.
A failed file does not stop the run; the exit code reflects the summary.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	cfg, code := loadConfig(*configPath, config.Config{
		BaseURL:  *baseURL,
		Output:   *output,
		Manifest: *manifest,
		Progress: *showProgress,
		Timeout:  *timeout,
		Retry:    config.RetryConfig{Attempts: *retries},
	})
	if code != ExitSuccess {
		return code
	}

	cat, code := loadCatalog(cfg)
	if code != ExitSuccess {
		return code
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\n[snag] Received interrupt, shutting down...")
		cancel()
	}()

	// Only a destination that cannot be established aborts the run.
	store, err := storage.Open(ctx, cfg.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitOutputError
	}
	defer store.Close()

	client := fetch.NewClient(fetch.Options{
		Timeout:         cfg.Timeout,
		RetryAttempts:   cfg.Retry.Attempts,
		RetryBackoff:    cfg.Retry.Backoff,
		RetryMaxBackoff: cfg.Retry.MaxBackoff,
	})
	src := fetch.NewHTTPSource(cat.BaseURL, client)

	opts := batch.Options{Log: os.Stderr}
	if cfg.Progress {
		opts.Reporter = progress.NewReporter(progress.Options{
			TotalFiles: len(cat.Files),
			BaseURL:    cat.BaseURL,
		})
		opts.Reporter.Start()
	}

	fmt.Fprintf(os.Stderr, "[snag] Downloading %d files to %s\n", len(cat.Files), cfg.Output)

	report := batch.Run(ctx, cat, src, store, opts)

	if opts.Reporter != nil {
		opts.Reporter.Stop()
	}

	report.Render(os.Stdout)

	if !report.OK() {
		return ExitFailed
	}
	return ExitSuccess
}

// loadConfig builds the effective config: defaults, then file, then
// environment, then flag overrides.
func loadConfig(path string, overrides config.Config) (config.Config, int) {
	cfg := config.Default()

	if path != "" {
		fileCfg, err := config.LoadFromFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return config.Config{}, ExitInvalidArgs
		}
		cfg = fileCfg
	}

	if err := cfg.LoadFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return config.Config{}, ExitInvalidArgs
	}

	cfg = cfg.Merge(overrides)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return config.Config{}, ExitInvalidArgs
	}

	return cfg, ExitSuccess
}

// loadCatalog picks the manifest catalog if configured, otherwise the
// built-in one, and applies any base URL override.
func loadCatalog(cfg config.Config) (catalog.Catalog, int) {
	cat := catalog.Default()

	if cfg.Manifest != "" {
		loaded, err := catalog.LoadFromFile(cfg.Manifest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return catalog.Catalog{}, ExitInvalidArgs
		}
		cat = loaded
	}

	if cfg.BaseURL != "" {
		cat.BaseURL = cfg.BaseURL
	}

	return cat, ExitSuccess
}
