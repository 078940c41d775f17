// Package mmfile loads whole files into memory, mapping them where the
// platform allows it.
package mmfile

import (
	"io"
	"os"
)

func noop() error { return nil }

// readAll reads f to EOF. Read errors keep the file path attached.
func readAll(f *os.File) ([]byte, func() error, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, &os.PathError{Op: "read", Path: f.Name(), Err: unwrapPathErr(err)}
	}
	return data, noop, nil
}

func unwrapPathErr(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}
	return err
}
