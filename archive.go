package goabnorm

import (
	"archive/zip"
	"fmt"
	"strings"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// Archive is read-only access to the named arrays of a patient ".npz" file.
// Each entry is a NumPy ".npy" payload addressed by its key (the entry name
// without the extension). Callers decode only the entries they ask for, so
// cohort scripts can skip arrays they do not need.
type Archive struct {
	path string
	zr   *zip.ReadCloser
}

// OpenArchive opens an .npz archive for reading.
func OpenArchive(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("goabnorm: open archive %s: %w", path, err)
	}
	return &Archive{path: path, zr: zr}, nil
}

// Close releases the underlying file.
func (a *Archive) Close() error { return a.zr.Close() }

// Keys lists the array names stored in the archive.
func (a *Archive) Keys() []string {
	keys := make([]string, 0, len(a.zr.File))
	for _, f := range a.zr.File {
		keys = append(keys, strings.TrimSuffix(f.Name, ".npy"))
	}
	return keys
}

// Has reports whether the archive contains the named array.
func (a *Archive) Has(key string) bool {
	return a.entry(key) != nil
}

func (a *Archive) entry(key string) *zip.File {
	for _, f := range a.zr.File {
		if f.Name == key || f.Name == key+".npy" {
			return f
		}
	}
	return nil
}

func (a *Archive) read(key string, dst interface{}) error {
	f := a.entry(key)
	if f == nil {
		return fmt.Errorf("goabnorm: archive %s has no entry %q", a.path, key)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("goabnorm: archive %s: open %q: %w", a.path, key, err)
	}
	defer rc.Close()
	if err := npyio.Read(rc, dst); err != nil {
		return fmt.Errorf("goabnorm: archive %s: decode %q: %w", a.path, key, err)
	}
	return nil
}

// Matrix decodes a 2-D float64 entry.
func (a *Archive) Matrix(key string) (*mat.Dense, error) {
	var m mat.Dense
	if err := a.read(key, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Floats decodes a 1-D float64 entry.
func (a *Archive) Floats(key string) ([]float64, error) {
	var v []float64
	if err := a.read(key, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Bools decodes a 1-D boolean entry.
func (a *Archive) Bools(key string) ([]bool, error) {
	var v []bool
	if err := a.read(key, &v); err != nil {
		return nil, err
	}
	return v, nil
}
