package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"

	"github.com/matzehuels/graphnet/pkg/graph"
)

// Ext is the conventional extension of library files.
const Ext = ".fgn"

// CompressedExt marks a snappy-compressed library file.
const CompressedExt = ".sz"

// IsCompressed reports whether path names a snappy-compressed file.
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, CompressedExt)
}

// ImportFile reads and parses the library file at path.
// Paths ending in [CompressedExt] are decompressed first.
func ImportFile[L, G, N, E any](path string) (*graph.Library[L, G, N, E], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if IsCompressed(path) {
		r = snappy.NewReader(r)
	}
	lib, err := Read[L, G, N, E](r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// ReadFile returns the document stored at path, decompressing it when the
// path ends in [CompressedExt].
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if IsCompressed(path) {
		r = snappy.NewReader(r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// ExportFile saves lib to path, replacing any existing file.
// Paths ending in [CompressedExt] are snappy-compressed.
func ExportFile[L, G, N, E any](lib *graph.Library[L, G, N, E], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeFile(lib, f, IsCompressed(path)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writeFile[L, G, N, E any](lib *graph.Library[L, G, N, E], w io.Writer, compress bool) error {
	if !compress {
		return Write(lib, w)
	}
	sw := snappy.NewBufferedWriter(w)
	if err := Write(lib, sw); err != nil {
		return err
	}
	return sw.Close()
}
