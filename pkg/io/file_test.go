package io

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	want := trickyLibrary()
	for _, name := range []string{"lib" + Ext, "lib" + Ext + CompressedExt} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := ExportFile(want, path); err != nil {
				t.Fatalf("ExportFile() error = %v", err)
			}
			got, err := ImportFile[any, any, any, any](path)
			if err != nil {
				t.Fatalf("ImportFile() error = %v", err)
			}
			if Save(got) != Save(want) {
				t.Error("library changed after file round trip")
			}
		})
	}
}

func TestExportFileCompressed(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "a.fgn")
	packed := filepath.Join(dir, "a.fgn.sz")
	lib := trickyLibrary()

	if err := ExportFile(lib, plain); err != nil {
		t.Fatal(err)
	}
	if err := ExportFile(lib, packed); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(plain)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != Save(lib) {
		t.Error("plain file does not match Save()")
	}
	sz, err := os.ReadFile(packed)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(raw, sz) {
		t.Error("compressed file equals plain file")
	}
}

func TestImportFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ImportFile[any, any, any, any](filepath.Join(dir, "missing.fgn")); err == nil {
		t.Error("ImportFile() on missing file expected error")
	}

	bad := filepath.Join(dir, "bad.fgn")
	if err := os.WriteFile(bad, []byte("-n orphan\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportFile[any, any, any, any](bad); err == nil {
		t.Error("ImportFile() on malformed file expected error")
	}

	notSnappy := filepath.Join(dir, "plain.fgn.sz")
	if err := os.WriteFile(notSnappy, []byte("-g G\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportFile[any, any, any, any](notSnappy); err == nil {
		t.Error("ImportFile() on uncompressed .sz file expected error")
	}
}

func TestReadFile(t *testing.T) {
	lib := trickyLibrary()
	packed := filepath.Join(t.TempDir(), "a.fgn.sz")
	if err := ExportFile(lib, packed); err != nil {
		t.Fatal(err)
	}
	data, err := ReadFile(packed)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != Save(lib) {
		t.Error("ReadFile() did not return the decompressed document")
	}
}

func TestIsCompressed(t *testing.T) {
	tests := map[string]bool{
		"a.fgn":    false,
		"a.fgn.sz": true,
		"a.sz":     true,
		"sz":       false,
	}
	for path, want := range tests {
		if got := IsCompressed(path); got != want {
			t.Errorf("IsCompressed(%q) = %v, want %v", path, got, want)
		}
	}
}
