//go:build windows

package mmfile

import "os"

// Map reads the whole file. $I records are a few hundred bytes, so mapping
// them on Windows is not worth the handle juggling.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return readAll(f)
}
