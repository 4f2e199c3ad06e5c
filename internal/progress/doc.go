// Package progress provides transfer reporting for download runs.
//
// The reporter counts completed and failed files and bytes transferred, and
// prints a header at the start of the run plus a total-time and
// average-speed summary at the end.
//
// # Output Format
//
//	[snag] Source: https://biobank.ndph.ox.ac.uk/synthetic_dataset/tabular/
//	[snag] Files: 7
//	[snag] Fetched 7/7 files (1.92 GB) in 4m 12s | Average speed: 7.80 MB/s
package progress
