package quirkml

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/hstranslate/quirk/core/errors"
	"github.com/hstranslate/quirk/core/quirk"
)

// LoadList reads a quirk document from a file and parses it into an ordered
// list. Files ending in .xz or .gz are decompressed transparently. Read
// failures are reported as IOError; parse failures as in Parse.
func LoadList(path string) ([]*quirk.Quirk, error) {
	return LoadListWith(path, ParseOptions{})
}

// LoadListWith is LoadList with explicit parse options.
func LoadListWith(path string, opts ParseOptions) ([]*quirk.Quirk, error) {
	data, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return ParseWith(data, opts)
}

// LoadMap reads a quirk document from a file and parses it into a
// name-keyed map, last write wins.
func LoadMap(path string) (map[string]*quirk.Quirk, error) {
	return LoadMapWith(path, ParseOptions{})
}

// LoadMapWith is LoadMap with explicit parse options.
func LoadMapWith(path string, opts ParseOptions) (map[string]*quirk.Quirk, error) {
	data, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return ParseMapWith(data, opts)
}

func readDocument(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		reader = xzr
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		defer gzr.Close()
		reader = gzr
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return data, nil
}
