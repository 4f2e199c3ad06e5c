// Package fetch retrieves remote files over HTTP.
//
// The Client wraps net/http with typed status-code errors and an optional
// retry loop with exponential backoff. Both the request timeout and the
// retry count default to off: a single blocking GET per file, which may wait
// indefinitely on a stalled connection. That is the tool's historical
// behavior and is preserved deliberately; callers opt in to timeouts and
// retries through Options.
//
// Source is the small capability interface the orchestrator depends on
// ("produce bytes for a name"), so tests can substitute in-memory fakes for
// real network access.
package fetch
