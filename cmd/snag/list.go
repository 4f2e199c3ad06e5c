package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ligustah/snag/internal/config"
)

// runList prints the catalog in order.
func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ExitOnError)

	configPath := fs.String("config", "", "YAML config file")
	manifest := fs.String("manifest", "", "Catalog manifest file (default: built-in catalog)")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: snag list [options]

Print every catalog entry with its expected MD5 checksum ("-" if none).

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	cfg, code := loadConfig(*configPath, config.Config{Manifest: *manifest})
	if code != ExitSuccess {
		return code
	}

	cat, code := loadCatalog(cfg)
	if code != ExitSuccess {
		return code
	}

	fmt.Printf("Base URL: %s\n", cat.BaseURL)
	for _, spec := range cat.Files {
		digest := spec.MD5
		if digest == "" {
			digest = "-"
		}
		fmt.Printf("%-32s  %s\n", digest, spec.Name)
	}
	fmt.Printf("%d files\n", len(cat.Files))

	return ExitSuccess
}
