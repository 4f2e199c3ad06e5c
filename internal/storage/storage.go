package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Store is a destination for downloaded files. Open reads a stored file
// back, which is how downloads are re-read for checksum verification.
type Store interface {
	// Create opens a writer for the named file, replacing any existing
	// content. The caller must close the writer.
	Create(ctx context.Context, name string) (io.WriteCloser, error)

	// Open opens the named file for reading. The caller must close the
	// reader.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Close releases any resources held by the store.
	Close() error
}

// Open returns a Store for dest. A destination with a URL scheme (s3://,
// gs://, file://, mem://) opens a blob bucket; anything else is treated as
// a local directory path, created if absent.
func Open(ctx context.Context, dest string) (Store, error) {
	if hasScheme(dest) {
		return OpenBucket(ctx, dest)
	}
	return NewDirStore(dest)
}

func hasScheme(dest string) bool {
	i := strings.Index(dest, "://")
	return i > 0
}

// DirStore writes files directly into a local directory. Writes are not
// atomic: a failed download can leave a truncated file at the final path.
type DirStore struct {
	root string
}

// NewDirStore creates the directory (and parents) if absent and returns a
// store rooted there. Creating an already-existing directory is not an
// error.
func NewDirStore(root string) (*DirStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", root, err)
	}
	return &DirStore{root: root}, nil
}

// Root returns the directory the store writes into.
func (s *DirStore) Root() string {
	return s.root
}

// Path returns the local path the named file is stored at.
func (s *DirStore) Path(name string) string {
	return filepath.Join(s.root, name)
}

func (s *DirStore) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	path := s.Path(name)
	if dir := filepath.Dir(path); dir != s.root {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

func (s *DirStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(s.Path(name))
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *DirStore) Close() error {
	return nil
}

// BucketStore writes files into an object storage bucket via gocloud.
type BucketStore struct {
	bucket *blob.Bucket
}

// OpenBucket opens a bucket URL (s3://, gs://, file://, mem://) as a Store.
func OpenBucket(ctx context.Context, url string) (*BucketStore, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", url, err)
	}
	return &BucketStore{bucket: bucket}, nil
}

// NewBucketStore wraps an already-open bucket.
func NewBucketStore(bucket *blob.Bucket) *BucketStore {
	return &BucketStore{bucket: bucket}
}

func (s *BucketStore) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	w, err := s.bucket.NewWriter(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("create object %s: %w", name, err)
	}
	return w, nil
}

func (s *BucketStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *BucketStore) Close() error {
	return s.bucket.Close()
}
