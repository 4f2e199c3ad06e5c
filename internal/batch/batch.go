package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ligustah/snag/internal/catalog"
	"github.com/ligustah/snag/internal/checksum"
	"github.com/ligustah/snag/internal/fetch"
	"github.com/ligustah/snag/internal/progress"
	"github.com/ligustah/snag/internal/storage"
)

// Options configures a batch run.
type Options struct {
	// Log is where per-file progress lines are written.
	// Default: os.Stderr
	Log io.Writer

	// Reporter is an optional transfer reporter. The run calls
	// FileCompleted/FileFailed; Start/Stop are the caller's job.
	Reporter *progress.Reporter
}

// Result records the outcome of one catalog entry.
type Result struct {
	Name   string
	Status Status
	Bytes  int64
	Err    error

	// Expected and Actual carry the digests on a checksum mismatch.
	Expected string
	Actual   string
}

// OK reports whether the entry counts as a successful download.
func (r Result) OK() bool {
	return r.Status.OK()
}

// Report is the ordered outcome of a batch run: one Result per catalog
// entry, in catalog order.
type Report struct {
	Results []Result
}

// Successful returns the number of successful entries.
func (r *Report) Successful() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// OK reports whether every entry succeeded.
func (r *Report) OK() bool {
	return r.Successful() == len(r.Results)
}

// Render writes the summary table: a status line per file in catalog order,
// then the aggregate count.
func (r *Report) Render(w io.Writer) {
	divider := "============================================================"

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "Download Summary:")
	fmt.Fprintln(w, divider)

	for _, res := range r.Results {
		if res.OK() {
			fmt.Fprintf(w, "✓ Success: %s\n", res.Name)
		} else {
			fmt.Fprintf(w, "✗ Failed: %s\n", res.Name)
		}
	}

	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Total: %d/%d files downloaded successfully\n", r.Successful(), len(r.Results))
}

// Run fetches every catalog entry in order, verifying each downloaded file
// against its expected digest when one is known. Per-file failures are
// recorded and the run continues; the report always holds exactly one
// result per catalog entry, in catalog order.
func Run(ctx context.Context, cat catalog.Catalog, src fetch.Source, store storage.Store, opts Options) *Report {
	if opts.Log == nil {
		opts.Log = os.Stderr
	}

	report := &Report{Results: make([]Result, 0, len(cat.Files))}

	for _, spec := range cat.Files {
		res := fetchOne(ctx, spec, src, store, opts)
		report.Results = append(report.Results, res)

		if opts.Reporter != nil {
			if res.OK() {
				opts.Reporter.FileCompleted(res.Bytes)
			} else {
				opts.Reporter.FileFailed()
			}
		}
	}

	return report
}

// fetchOne runs the per-file pipeline: fetch, store, then verify if the
// spec carries a digest.
func fetchOne(ctx context.Context, spec catalog.FileSpec, src fetch.Source, store storage.Store, opts Options) Result {
	res := Result{Name: spec.Name}

	fmt.Fprintf(opts.Log, "[snag] Downloading %s... ", spec.Name)

	n, err := fetchToStore(ctx, spec.Name, src, store)
	if err != nil {
		fmt.Fprintln(opts.Log, "✗")
		fmt.Fprintf(opts.Log, "[snag]   Error: %v\n", err)
		res.Status = StatusFetchFailed
		res.Err = err
		return res
	}
	res.Bytes = n
	fmt.Fprintln(opts.Log, "✓")

	if !spec.Verified() {
		fmt.Fprintln(opts.Log, "[snag]   Warning: no checksum available for verification")
		res.Status = StatusUnverified
		return res
	}

	fmt.Fprint(opts.Log, "[snag]   Verifying checksum... ")

	err = verifyStored(ctx, spec, store)
	if err == nil {
		fmt.Fprintln(opts.Log, "✓")
		res.Status = StatusVerified
		return res
	}

	res.Status = StatusVerifyFailed
	res.Err = err

	var mismatch *checksum.MismatchError
	if errors.As(err, &mismatch) {
		res.Expected = mismatch.Expected
		res.Actual = mismatch.Actual
		fmt.Fprintf(opts.Log, "✗ (expected %s, got %s)\n", mismatch.Expected, mismatch.Actual)
	} else {
		fmt.Fprintln(opts.Log, "✗")
		fmt.Fprintf(opts.Log, "[snag]   Error: %v\n", err)
	}

	return res
}

// fetchToStore streams one remote file into the store, returning the number
// of bytes written. On failure the destination is left however the failed
// write left it.
func fetchToStore(ctx context.Context, name string, src fetch.Source, store storage.Store) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	body, _, err := src.Fetch(ctx, name)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	w, err := store.Create(ctx, name)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(w, body)
	if err != nil {
		w.Close()
		return n, fmt.Errorf("write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return n, fmt.Errorf("close %s: %w", name, err)
	}

	return n, nil
}

// verifyStored re-reads the stored file and checks its digest.
func verifyStored(ctx context.Context, spec catalog.FileSpec, store storage.Store) error {
	r, err := store.Open(ctx, spec.Name)
	if err != nil {
		return fmt.Errorf("reopen %s: %w", spec.Name, err)
	}
	defer r.Close()

	return checksum.VerifyReader(spec.Name, r, spec.MD5)
}
