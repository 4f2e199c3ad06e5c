package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestReporterOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(Options{
		TotalFiles: 3,
		BaseURL:    "https://example.com/files/",
		Output:     &buf,
	})

	r.Start()
	r.FileCompleted(1024)
	r.FileCompleted(2048)
	r.FileFailed()
	r.Stop()

	out := buf.String()
	if !strings.Contains(out, "Source: https://example.com/files/") {
		t.Errorf("missing source line: %s", out)
	}
	if !strings.Contains(out, "Files: 3") {
		t.Errorf("missing file count: %s", out)
	}
	if !strings.Contains(out, "Fetched 2/3 files (3.00 KB)") {
		t.Errorf("missing fetch summary: %s", out)
	}
	if !strings.Contains(out, "Failed: 1 files") {
		t.Errorf("missing failure line: %s", out)
	}
	if !strings.Contains(out, "Average speed:") {
		t.Errorf("missing speed line: %s", out)
	}
}

func TestReporterNoFailures(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(Options{TotalFiles: 1, Output: &buf})

	r.Start()
	r.FileCompleted(10)
	r.Stop()

	if strings.Contains(buf.String(), "Failed:") {
		t.Errorf("unexpected failure line: %s", buf.String())
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{5 * 1024 * 1024 * 1024, "5.00 GB"},
		{2 * 1024 * 1024 * 1024 * 1024, "2.00 TB"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
