//go:build integration

package main

import (
	"context"
	"io"
	"testing"
	"time"

	_ "gocloud.dev/blob/s3blob"

	"github.com/ligustah/snag/internal/testutils"
)

func TestCLIIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	files := map[string][]byte{
		"a.tsv": []byte("alpha"),
		"b.tsv": []byte("unverified content"),
	}

	t.Log("Starting HTTP test server...")
	server := testutils.StartFileServer(t, files)
	defer server.Close()

	t.Log("Starting Minio container...")
	minio := testutils.StartMinioContainer(t, ctx, "cli-test-bucket")
	defer func() {
		if err := minio.Close(ctx); err != nil {
			t.Logf("failed to terminate minio container: %v", err)
		}
	}()

	manifest := writeManifest(t, server.URL,
		"  - name: a.tsv\n    md5: "+alphaMD5+"\n  - name: b.tsv\n")

	t.Run("fetch_to_bucket", func(t *testing.T) {
		exitCode := runFetch([]string{
			"-manifest", manifest,
			"-output", minio.BucketURL,
		})
		if exitCode != ExitSuccess {
			t.Fatalf("fetch failed with exit code %d", exitCode)
		}

		// Objects landed in the bucket with the right content
		bucket, err := minio.OpenBucket(ctx)
		if err != nil {
			t.Fatalf("open bucket: %v", err)
		}
		defer bucket.Close()

		for name, want := range files {
			r, err := bucket.NewReader(ctx, name, nil)
			if err != nil {
				t.Fatalf("open object %s: %v", name, err)
			}
			data, err := io.ReadAll(r)
			r.Close()
			if err != nil {
				t.Fatalf("read object %s: %v", name, err)
			}
			if string(data) != string(want) {
				t.Errorf("%s: unexpected content %q", name, data)
			}
		}
	})

	t.Run("verify_bucket", func(t *testing.T) {
		exitCode := runVerify([]string{
			"-manifest", manifest,
			"-output", minio.BucketURL,
		})
		if exitCode != ExitSuccess {
			t.Fatalf("verify failed with exit code %d", exitCode)
		}
	})
}
