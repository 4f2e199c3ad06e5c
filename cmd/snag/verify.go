package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ligustah/snag/internal/catalog"
	"github.com/ligustah/snag/internal/checksum"
	"github.com/ligustah/snag/internal/config"
	"github.com/ligustah/snag/internal/storage"
)

// runVerify re-hashes already-downloaded files against the catalog without
// touching the network.
func runVerify(args []string) int {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)

	configPath := fs.String("config", "", "YAML config file")
	manifest := fs.String("manifest", "", "Catalog manifest file (default: built-in catalog)")
	output := fs.String("output", "", "Directory or bucket URL holding the files (default: data)")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: snag verify [options]

Recompute the MD5 checksum of each previously downloaded catalog file and
compare it against the expected value. Files without a known checksum are
skipped. No network access.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	cfg, code := loadConfig(*configPath, config.Config{
		Output:   *output,
		Manifest: *manifest,
	})
	if code != ExitSuccess {
		return code
	}

	cat, code := loadCatalog(cfg)
	if code != ExitSuccess {
		return code
	}

	ctx := context.Background()

	store, err := storage.Open(ctx, cfg.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitOutputError
	}
	defer store.Close()

	verified, failed, skipped := 0, 0, 0

	for _, spec := range cat.Files {
		if !spec.Verified() {
			fmt.Printf("- Skipped: %s (no checksum)\n", spec.Name)
			skipped++
			continue
		}

		err := verifyOne(ctx, store, spec)
		if err == nil {
			fmt.Printf("✓ Verified: %s\n", spec.Name)
			verified++
			continue
		}

		failed++
		var mismatch *checksum.MismatchError
		if errors.As(err, &mismatch) {
			fmt.Printf("✗ Failed: %s (expected %s, got %s)\n", spec.Name, mismatch.Expected, mismatch.Actual)
		} else {
			fmt.Printf("✗ Failed: %s (%v)\n", spec.Name, err)
		}
	}

	fmt.Printf("Total: %d verified, %d failed, %d skipped\n", verified, failed, skipped)

	if failed > 0 {
		return ExitFailed
	}
	return ExitSuccess
}

func verifyOne(ctx context.Context, store storage.Store, spec catalog.FileSpec) error {
	r, err := store.Open(ctx, spec.Name)
	if err != nil {
		return err
	}
	defer r.Close()

	return checksum.VerifyReader(spec.Name, r, spec.MD5)
}
