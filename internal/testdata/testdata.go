package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// DefsReader returns a reader for the given register-definition fixture for testing.
func DefsReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(DefsPath(file))
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// DefsPath returns the path for the given register-definition fixture.
func DefsPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "defs", file)
}
