// Package snpmaf holds the input plumbing shared by the snpmaf tools: path
// expansion, local or Google Storage sources, and transparent decompression.
package snpmaf

import (
	"io"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// OpenInput opens a local file, a ~/ path, or a gs:// object (if client is
// non-nil) and returns a reader over its decompressed contents. The caller
// must close the result.
func OpenInput(path string, client *storage.Client) (io.ReadCloser, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	f, _, err := MaybeOpenSeekerFromGoogleStorage(expanded, client)
	if err != nil {
		return nil, err
	}

	rc, _, err := MaybeDecompressReadCloser(f)
	if err != nil {
		f.Close()
		return nil, pfx.Err(err)
	}

	return rc, nil
}
