package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	if cat.BaseURL == "" {
		t.Error("expected non-empty base URL")
	}
	if len(cat.Files) != 7 {
		t.Fatalf("expected 7 files, got %d", len(cat.Files))
	}

	// Every default entry carries a checksum
	for _, f := range cat.Files {
		if !f.Verified() {
			t.Errorf("expected %s to have a checksum", f.Name)
		}
	}

	if err := cat.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	// Order matters: first and last entries are fixed
	if cat.Files[0].Name != "41260_HES_SimDates.tsv" {
		t.Errorf("unexpected first file: %s", cat.Files[0].Name)
	}
	if cat.Files[6].Name != "41283_HES_SimDates.tsv" {
		t.Errorf("unexpected last file: %s", cat.Files[6].Name)
	}
}

func TestLookup(t *testing.T) {
	cat := Catalog{
		BaseURL: "https://example.com/",
		Files: []FileSpec{
			{Name: "a.tsv", MD5: "4ff448b195ad417c3ae1324312782c30"},
			{Name: "b.tsv"},
		},
	}

	spec := cat.Lookup("a.tsv")
	if spec == nil {
		t.Fatal("expected to find a.tsv")
	}
	if spec.MD5 != "4ff448b195ad417c3ae1324312782c30" {
		t.Errorf("unexpected digest: %s", spec.MD5)
	}

	if got := cat.Lookup("missing.tsv"); got != nil {
		t.Errorf("expected nil for missing file, got %+v", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	manifest := `
base_url: https://example.com/files/
files:
  - name: a.tsv
    md5: 4ff448b195ad417c3ae1324312782c30
  - name: b.tsv
`
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "manifest.yaml")
	if err := os.WriteFile(path, []byte(manifest), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	cat, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cat.BaseURL != "https://example.com/files/" {
		t.Errorf("unexpected base URL: %s", cat.BaseURL)
	}
	if len(cat.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(cat.Files))
	}
	if cat.Files[0].Name != "a.tsv" || !cat.Files[0].Verified() {
		t.Errorf("unexpected first entry: %+v", cat.Files[0])
	}
	if cat.Files[1].Name != "b.tsv" || cat.Files[1].Verified() {
		t.Errorf("unexpected second entry: %+v", cat.Files[1])
	}
}

func TestLoadFromFileNotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/manifest.yaml")
	if err == nil {
		t.Error("expected error for nonexistent manifest")
	}
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "manifest.yaml")
	if err := os.WriteFile(path, []byte("files: [bad: yaml"), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cat     Catalog
		wantErr bool
	}{
		{
			name: "valid",
			cat: Catalog{
				BaseURL: "https://example.com/",
				Files: []FileSpec{
					{Name: "a.tsv", MD5: "4ff448b195ad417c3ae1324312782c30"},
					{Name: "b.tsv"},
				},
			},
			wantErr: false,
		},
		{
			name: "missing base URL",
			cat: Catalog{
				Files: []FileSpec{{Name: "a.tsv"}},
			},
			wantErr: true,
		},
		{
			name:    "no files",
			cat:     Catalog{BaseURL: "https://example.com/"},
			wantErr: true,
		},
		{
			name: "empty name",
			cat: Catalog{
				BaseURL: "https://example.com/",
				Files:   []FileSpec{{Name: ""}},
			},
			wantErr: true,
		},
		{
			name: "duplicate name",
			cat: Catalog{
				BaseURL: "https://example.com/",
				Files:   []FileSpec{{Name: "a.tsv"}, {Name: "a.tsv"}},
			},
			wantErr: true,
		},
		{
			name: "short digest",
			cat: Catalog{
				BaseURL: "https://example.com/",
				Files:   []FileSpec{{Name: "a.tsv", MD5: "abc123"}},
			},
			wantErr: true,
		},
		{
			name: "uppercase digest",
			cat: Catalog{
				BaseURL: "https://example.com/",
				Files:   []FileSpec{{Name: "a.tsv", MD5: "4FF448B195AD417C3AE1324312782C30"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
