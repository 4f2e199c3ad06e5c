// Package catalog defines the fixed list of files the snag CLI fetches.
//
// A catalog pairs a base URL with an ordered list of filenames, each with an
// optional expected MD5 digest. The compiled-in default is the UK Biobank
// synthetic dataset file list; a custom catalog can be loaded from a YAML
// manifest:
//
//	base_url: https://example.com/files/
//	files:
//	  - name: a.tsv
//	    md5: 4ff448b195ad417c3ae1324312782c30
//	  - name: b.tsv    # no md5: accepted unverified
//
// Catalog order is preserved end to end: files are fetched, verified, and
// reported in the order they are listed.
package catalog
