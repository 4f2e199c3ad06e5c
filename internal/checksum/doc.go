// Package checksum computes and verifies MD5 digests of downloaded files.
//
// Files are read incrementally in small fixed-size chunks, so hashing a file
// never loads it wholesale into memory. Digests are rendered as 32-character
// lowercase hex strings.
//
// Verification failures are reported as *MismatchError, which carries both
// the expected and the actual digest so callers can surface them.
package checksum
