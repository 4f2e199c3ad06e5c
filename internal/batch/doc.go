// Package batch runs the sequential fetch-and-verify pipeline.
//
// Run walks the catalog in order, one file at a time: fetch the remote
// file, stream it into the destination store, then re-read it and check its
// MD5 digest when the catalog knows one. A file with no known digest is
// accepted as successful with a warning.
//
// Per-file failures never abort the run; each is converted into a Result
// and the loop continues. The Report holds exactly one Result per catalog
// entry, in catalog order, and renders the summary table with the
// "Total: X/Y files downloaded successfully" trailer.
//
// Per-file states:
//
//	fetch failed              -> StatusFetchFailed (verification skipped)
//	fetched, digest matches   -> StatusVerified
//	fetched, digest mismatch  -> StatusVerifyFailed
//	fetched, no known digest  -> StatusUnverified (counts as success)
package batch
