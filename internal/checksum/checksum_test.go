package checksum

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "d41d8cd98f00b204e9800998ecf8427e"},
		{"abc", "abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"message digest", "message digest", "f96b697d7cb7938d525a2f31aaf161d0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sum(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Sum: %v", err)
			}
			if got != tt.want {
				t.Errorf("Sum(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestSumLargeInput(t *testing.T) {
	// Larger than the internal read buffer, so hashing spans many chunks
	input := strings.Repeat("a", 100000)
	got, err := Sum(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if got != "1af6d6f2f682f76f80e606aeaaee1680" {
		t.Errorf("unexpected digest for 100k 'a': %s", got)
	}
}

func TestFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "data.bin")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if got != "900150983cd24fb0d6963f7d28e17f72" {
		t.Errorf("unexpected digest: %s", got)
	}
}

func TestFileNotFound(t *testing.T) {
	if _, err := File("/nonexistent/data.bin"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestVerifyMatch(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "data.bin")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := Verify(path, "900150983cd24fb0d6963f7d28e17f72"); err != nil {
		t.Errorf("Verify: %v", err)
	}

	// Uppercase expected digest still matches
	if err := Verify(path, "900150983CD24FB0D6963F7D28E17F72"); err != nil {
		t.Errorf("Verify uppercase: %v", err)
	}
}

func TestVerifyMismatch(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "data.bin")
	if err := os.WriteFile(path, []byte("corrupted"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	err := Verify(path, "900150983cd24fb0d6963f7d28e17f72")
	if err == nil {
		t.Fatal("expected mismatch error")
	}

	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *MismatchError, got %T: %v", err, err)
	}
	if mismatch.Expected != "900150983cd24fb0d6963f7d28e17f72" {
		t.Errorf("unexpected Expected: %s", mismatch.Expected)
	}
	if mismatch.Actual == "" || mismatch.Actual == mismatch.Expected {
		t.Errorf("unexpected Actual: %s", mismatch.Actual)
	}
	// Both digests surface in the message
	if !strings.Contains(err.Error(), mismatch.Expected) || !strings.Contains(err.Error(), mismatch.Actual) {
		t.Errorf("error message missing digests: %v", err)
	}
}

func TestVerifyReader(t *testing.T) {
	if err := VerifyReader("a.tsv", strings.NewReader("abc"), "900150983cd24fb0d6963f7d28e17f72"); err != nil {
		t.Errorf("VerifyReader: %v", err)
	}

	err := VerifyReader("a.tsv", strings.NewReader("xyz"), "900150983cd24fb0d6963f7d28e17f72")
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *MismatchError, got %v", err)
	}
	if mismatch.Path != "a.tsv" {
		t.Errorf("unexpected path: %s", mismatch.Path)
	}
}
