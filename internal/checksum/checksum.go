package checksum

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// readBufferSize bounds memory use when hashing arbitrarily large files.
const readBufferSize = 4096

// MismatchError reports a digest that did not match its expected value.
type MismatchError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Sum computes the MD5 digest of everything readable from r, returned as a
// lowercase hex string.
func Sum(r io.Reader) (string, error) {
	h := md5.New()
	buf := make([]byte, readBufferSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// File computes the MD5 digest of the file at path.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sum, err := Sum(f)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return sum, nil
}

// Verify compares the MD5 digest of the file at path against expected.
// Both sides are lowercased before comparison; expected digests are stored
// lowercase but caller input may not be. Returns nil on match, a
// *MismatchError on mismatch, or the underlying error if the file cannot
// be read.
func Verify(path, expected string) error {
	actual, err := File(path)
	if err != nil {
		return err
	}
	return compare(path, expected, actual)
}

// VerifyReader is Verify for an already-open stream.
func VerifyReader(name string, r io.Reader, expected string) error {
	actual, err := Sum(r)
	if err != nil {
		return fmt.Errorf("hash %s: %w", name, err)
	}
	return compare(name, expected, actual)
}

func compare(path, expected, actual string) error {
	expected = strings.ToLower(expected)
	actual = strings.ToLower(actual)
	if actual != expected {
		return &MismatchError{Path: path, Expected: expected, Actual: actual}
	}
	return nil
}
