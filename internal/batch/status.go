package batch

// Status is the terminal state of one catalog entry.
type Status int

const (
	// StatusVerified: fetched and the digest matched.
	StatusVerified Status = iota

	// StatusUnverified: fetched, no known digest to check against.
	StatusUnverified

	// StatusFetchFailed: the fetch or the local write failed; verification
	// was never attempted.
	StatusFetchFailed

	// StatusVerifyFailed: fetched, but the digest did not match or the file
	// could not be re-read for hashing.
	StatusVerifyFailed
)

// OK reports whether the status counts as a successful download.
func (s Status) OK() bool {
	return s == StatusVerified || s == StatusUnverified
}

func (s Status) String() string {
	switch s {
	case StatusVerified:
		return "verified"
	case StatusUnverified:
		return "unverified"
	case StatusFetchFailed:
		return "fetch failed"
	case StatusVerifyFailed:
		return "verify failed"
	default:
		return "unknown"
	}
}
