package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileSpec describes one file in a catalog. MD5 is the expected digest as a
// 32-character lowercase hex string; empty means the file has no known
// checksum and is accepted as-is after a successful fetch.
type FileSpec struct {
	Name string `yaml:"name"`
	MD5  string `yaml:"md5,omitempty"`
}

// Verified reports whether the spec carries an expected digest.
func (f FileSpec) Verified() bool {
	return f.MD5 != ""
}

// Catalog is the ordered list of files to fetch from a base URL.
// Order is meaningful: files are fetched and reported in catalog order.
type Catalog struct {
	BaseURL string     `yaml:"base_url"`
	Files   []FileSpec `yaml:"files"`
}

// Default returns the compiled-in catalog: the UK Biobank synthetic dataset
// HES_SimDates files with their published MD5 checksums.
func Default() Catalog {
	return Catalog{
		BaseURL: "https://biobank.ndph.ox.ac.uk/synthetic_dataset/tabular/",
		Files: []FileSpec{
			{Name: "41260_HES_SimDates.tsv", MD5: "4ff448b195ad417c3ae1324312782c30"},
			{Name: "41262_HES_SimDates.tsv", MD5: "46aced37adea430907b81b8370f4718b"},
			{Name: "41263_HES_SimDates.tsv", MD5: "5fc75c1d4d221d4e8366d4ce7920e7f8"},
			{Name: "41280_HES_SimDates.tsv", MD5: "60007421300548e3a03c317e3392e5d1"},
			{Name: "41281_HES_SimDates.tsv", MD5: "3b5a706c475050c5a64ad4359d224309"},
			{Name: "41282_HES_SimDates.tsv", MD5: "7592c86dbb8502ca0630a763aa85be47"},
			{Name: "41283_HES_SimDates.tsv", MD5: "5c35335d9e91f1eb4c0dca92213f6cb9"},
		},
	}
}

// LoadFromFile loads a catalog manifest from a YAML file.
func LoadFromFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read manifest: %w", err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("parse manifest: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}

	return cat, nil
}

// Lookup returns the spec for name, or nil if the catalog has no such file.
func (c Catalog) Lookup(name string) *FileSpec {
	for i := range c.Files {
		if c.Files[i].Name == name {
			return &c.Files[i]
		}
	}
	return nil
}

// Validate checks the catalog for structural problems.
func (c Catalog) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("catalog: base_url is required")
	}
	if len(c.Files) == 0 {
		return fmt.Errorf("catalog: no files listed")
	}

	seen := make(map[string]bool, len(c.Files))
	for _, f := range c.Files {
		if f.Name == "" {
			return fmt.Errorf("catalog: file with empty name")
		}
		if seen[f.Name] {
			return fmt.Errorf("catalog: duplicate file %s", f.Name)
		}
		seen[f.Name] = true

		if f.MD5 != "" {
			if err := validateDigest(f.MD5); err != nil {
				return fmt.Errorf("catalog: file %s: %w", f.Name, err)
			}
		}
	}

	return nil
}

// validateDigest checks for a 32-character lowercase hex MD5 string.
func validateDigest(d string) error {
	if len(d) != 32 {
		return fmt.Errorf("md5 must be 32 hex characters, got %d", len(d))
	}
	for _, r := range d {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return fmt.Errorf("md5 contains non-hex character %q", r)
		}
	}
	return nil
}
