package fetch

import (
	"context"
	"io"
	"strings"
)

// Source produces the bytes of a remote file by name. Implementations other
// than HTTPSource exist only in tests.
type Source interface {
	// Fetch returns a reader over the named file's content and the declared
	// content length (-1 if unknown). The caller must close the reader.
	Fetch(ctx context.Context, name string) (io.ReadCloser, int64, error)
}

// HTTPSource fetches files from <base-url>/<name>.
type HTTPSource struct {
	base   string
	client *Client
}

// NewHTTPSource creates a Source rooted at baseURL. The catalog is static
// and trusted, so names are joined onto the base without sanitization.
func NewHTTPSource(baseURL string, client *Client) *HTTPSource {
	if client == nil {
		client = NewClient(DefaultOptions())
	}
	return &HTTPSource{
		base:   strings.TrimSuffix(baseURL, "/"),
		client: client,
	}
}

// Fetch issues a GET for the named file.
func (s *HTTPSource) Fetch(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	return s.client.Get(ctx, s.base+"/"+name)
}
