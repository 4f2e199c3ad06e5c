// Package storage abstracts the download destination.
//
// The default destination is a local directory (DirStore), which writes
// files directly at their final path. Object storage destinations
// (BucketStore) are supported through gocloud.dev/blob, so the same run can
// target s3://, gs://, file:// or mem:// URLs.
//
// Open picks the backend from the destination string: URL schemes open a
// bucket, plain paths open a directory.
//
// DirStore writes are deliberately non-atomic. An interrupted or failed
// download can leave a truncated file at the destination path; the file is
// left as-is and the failure is reported.
package storage
