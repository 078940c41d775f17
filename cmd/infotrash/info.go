package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/joshuapare/trashkit/internal/logger"
	"github.com/joshuapare/trashkit/internal/mmfile"
	"github.com/joshuapare/trashkit/pkg/recyclebin"
)

// runInfo decodes each path in order and writes one line per file to out.
// Per-file failures are reported inline and never stop the run.
func runInfo(out io.Writer, paths []string) error {
	decoded := 0
	for _, path := range paths {
		ok, err := printRecord(out, path)
		if err != nil {
			logger.Error("writing output failed", "path", path, "error", err)
			return err
		}
		if ok {
			decoded++
		}
	}
	logger.Info("run complete", "files", len(paths), "decoded", decoded, "failed", len(paths)-decoded)
	return nil
}

// printRecord writes the summary line for path, or the reason it could not be
// produced, and reports whether the file decoded. Only a failing writer is
// returned as an error.
func printRecord(out io.Writer, path string) (bool, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		logger.Warn("could not read file", "path", path, "error", err)
		_, werr := fmt.Fprintf(out, "Could not read file %s: %s\n", path, osCause(err))
		return false, werr
	}
	defer release()

	rec, err := recyclebin.Decode(data)
	if err != nil {
		logger.Warn("could not decode file", "path", path, "bytes", len(data), "error", err)
		_, werr := fmt.Fprintf(out, "Could not decode file %s: %v\n", path, err)
		return false, werr
	}

	logger.Debug("decoded record",
		"path", path,
		"bytes", len(data),
		"version", rec.Version(),
		"file_size", rec.FileSize,
		"name_length", rec.NameLength,
		"deleted_at", rec.DeletedAt(),
	)
	_, err = fmt.Fprintln(out, recyclebin.Format(rec))
	return err == nil, err
}

// osCause strips the op and path that *fs.PathError adds, leaving the OS message.
func osCause(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}
