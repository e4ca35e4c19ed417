// Package romfile loads ROM and boot ROM images from disk, unpacking
// compressed files and archives by their extension.
package romfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned for archives without a regular file.
var ErrEmptyArchive = errors.New("romfile: archive is empty")

// Load reads filename and decodes it with Decode.
func Load(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Decode(filepath.Base(filename), data)
}

// Decode unpacks data according to the extension of name. Gzip and xz
// streams are decompressed; for zip and 7z archives the first regular
// file is returned. Anything else is returned as is.
func Decode(name string, data []byte) ([]byte, error) {
	var (
		r   io.Reader
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".gz":
		r, err = gzip.NewReader(bytes.NewReader(data))
	case ".xz":
		r, err = xz.NewReader(bytes.NewReader(data))
	case ".zip":
		r, err = openZip(data)
	case ".7z":
		r, err = open7z(data)
	default:
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("romfile: %s: %w", name, err)
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("romfile: %s: %w", name, err)
	}
	return out, nil
}

func openZip(data []byte) (io.Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if isRegular(f.FileInfo()) {
			return f.Open()
		}
	}
	return nil, ErrEmptyArchive
}

func open7z(data []byte) (io.Reader, error) {
	zr, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if isRegular(f.FileInfo()) {
			return f.Open()
		}
	}
	return nil, ErrEmptyArchive
}

func isRegular(fi fs.FileInfo) bool {
	return !fi.IsDir()
}
