package progress

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"
)

// Options configures the progress reporter.
type Options struct {
	// TotalFiles is the number of files in the run.
	TotalFiles int

	// BaseURL is the source being downloaded from (for display).
	BaseURL string

	// Output is where to write progress output.
	// Default: os.Stderr
	Output io.Writer
}

// Reporter tracks per-file download progress and prints a transfer summary
// when the run finishes. Counters are atomic out of caution, though the
// fetch loop itself is strictly sequential.
type Reporter struct {
	opts Options

	completedFiles atomic.Int32
	failedFiles    atomic.Int32
	completedBytes atomic.Int64
	startTime      time.Time
}

// NewReporter creates a new progress reporter.
func NewReporter(opts Options) *Reporter {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	return &Reporter{opts: opts}
}

// Start begins the run and prints the header.
func (r *Reporter) Start() {
	r.startTime = time.Now()
	fmt.Fprintf(r.opts.Output, "[snag] Source: %s\n", r.opts.BaseURL)
	fmt.Fprintf(r.opts.Output, "[snag] Files: %d\n", r.opts.TotalFiles)
}

// FileCompleted records a successfully fetched file.
func (r *Reporter) FileCompleted(size int64) {
	r.completedFiles.Add(1)
	r.completedBytes.Add(size)
}

// FileFailed records a failed file.
func (r *Reporter) FileFailed() {
	r.failedFiles.Add(1)
}

// Stop prints the final transfer summary.
func (r *Reporter) Stop() {
	completed := int(r.completedFiles.Load())
	failed := int(r.failedFiles.Load())
	bytes := r.completedBytes.Load()
	duration := time.Since(r.startTime)

	avgSpeed := int64(0)
	if duration > 0 {
		avgSpeed = int64(float64(bytes) / duration.Seconds())
	}

	fmt.Fprintf(r.opts.Output, "[snag] Fetched %d/%d files (%s) in %s",
		completed,
		r.opts.TotalFiles,
		formatBytes(bytes),
		formatDuration(duration),
	)
	if bytes > 0 {
		fmt.Fprintf(r.opts.Output, " | Average speed: %s/s", formatBytes(avgSpeed))
	}
	fmt.Fprintln(r.opts.Output)

	if failed > 0 {
		fmt.Fprintf(r.opts.Output, "[snag] Failed: %d files\n", failed)
	}
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case b >= TB:
		return fmt.Sprintf("%.2f TB", float64(b)/float64(TB))
	case b >= GB:
		return fmt.Sprintf("%.2f GB", float64(b)/float64(GB))
	case b >= MB:
		return fmt.Sprintf("%.2f MB", float64(b)/float64(MB))
	case b >= KB:
		return fmt.Sprintf("%.2f KB", float64(b)/float64(KB))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// formatDuration formats a duration as a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// FormatBytes is exported for use by other packages.
func FormatBytes(b int64) string {
	return formatBytes(b)
}
