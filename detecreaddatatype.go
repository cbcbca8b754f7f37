package snpmaf

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZlib
	DataTypeBZip2
)

func (dt DataType) String() string {
	switch dt {
	case DataTypeNoCompression:
		return "uncompressed"
	case DataTypeGzip:
		return "gzip"
	case DataTypeZip:
		return "zip"
	case DataTypeXZ:
		return "xz"
	case DataTypeZlib:
		return "zlib"
	case DataTypeBZip2:
		return "bzip2"
	}

	return "invalid"
}

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZlib:  {0x78, 0x9c}, // default compression level
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType attempts to detect the data type of a stream by checking
// against a set of known data types.  Byte code signatures from
// https://stackoverflow.com/a/19127748/199475
//
// Streams shorter than the longest signature are only compared against the
// bytes that were actually read. An empty stream is reported as
// uncompressed.
func DetectDataType(r io.Reader) (DataType, error) {
	buff := make([]byte, 6)
	n, err := io.ReadFull(r, buff)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return DataTypeInvalid, err
	}
	buff = buff[:n]

	// Match known signatures
Outer:
	for dt, sig := range byteCodeSigs {
		if len(buff) < len(sig) {
			continue
		}
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return dt, nil
	}

	return DataTypeNoCompression, nil
}

// MaybeDecompressReadCloser sniffs the first bytes of f and, if they match a
// known compression format, returns a reader that decompresses f. Otherwise
// f itself is returned. Closing the result closes f.
func MaybeDecompressReadCloser(f ReadSeekCloser) (io.ReadCloser, DataType, error) {
	dt, err := DetectDataType(f)
	if err != nil {
		return nil, DataTypeInvalid, pfx.Err(err)
	}

	// Reset your original reader before any decompressor consumes a header
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, dt, pfx.Err(err)
	}

	switch dt {
	case DataTypeGzip:
		r, err := gzip.NewReader(f)
		if err != nil {
			return nil, dt, pfx.Err(err)
		}
		return &stackedReadCloser{ReadCloser: r, under: f}, dt, nil
	case DataTypeZip:
		zr := zipstream.NewReader(f)
		// Only the first entry of the archive is read
		if _, err := zr.Next(); err != nil {
			return nil, dt, pfx.Err(err)
		}
		return &stackedReadCloser{ReadCloser: io.NopCloser(zr), under: f}, dt, nil
	case DataTypeBZip2:
		return plainIfUndecodable(f, dt, io.NopCloser(bzip2.NewReader(f)), nil)
	case DataTypeXZ:
		reader, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, dt, pfx.Err(err)
		}
		return &stackedReadCloser{ReadCloser: io.NopCloser(reader), under: f}, dt, nil
	case DataTypeZlib:
		r, err := zlib.NewReader(f)
		return plainIfUndecodable(f, dt, r, err)
	}

	// No data type detected. For now, we assume this is uncompressed.
	return f, dt, nil
}

// plainIfUndecodable guards the short bzip2 and zlib signatures, which a text
// file can start with by chance (a header beginning "BZh", say). If the
// decompressor cannot produce its first byte, f is rewound and returned as
// uncompressed text.
func plainIfUndecodable(f ReadSeekCloser, dt DataType, rc io.ReadCloser, openErr error) (io.ReadCloser, DataType, error) {
	if openErr == nil {
		br := bufio.NewReader(rc)
		if _, err := br.Peek(1); err == nil || err == io.EOF {
			return &stackedReadCloser{ReadCloser: &bufferedReadCloser{Reader: br, Closer: rc}, under: f}, dt, nil
		}
		rc.Close()
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, dt, pfx.Err(err)
	}

	return f, DataTypeNoCompression, nil
}

type bufferedReadCloser struct {
	*bufio.Reader
	io.Closer
}

// stackedReadCloser closes the decompressor and then the stream beneath it.
type stackedReadCloser struct {
	io.ReadCloser
	under io.Closer
}

func (c *stackedReadCloser) Close() error {
	err := c.ReadCloser.Close()
	if uerr := c.under.Close(); err == nil {
		err = uerr
	}

	return err
}
