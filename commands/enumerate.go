package commands

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// itemFileInfo stores path and size for progress tracking.
type itemFileInfo struct {
	path string
	size int64
}

// listFiles lists the files to upload from dir, along with their total size
// in bytes. By default only the directory's immediate files are included;
// with recursive set, files in subdirectories are included too. A missing or
// non-directory target is a fatal error.
func listFiles(dir string, recursive bool) ([]itemFileInfo, int64, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("directory %q does not exist", dir)
		}
		return nil, 0, fmt.Errorf("failed to stat directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, 0, fmt.Errorf("%q is not a directory", dir)
	}

	if recursive {
		return walkFiles(dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	var files []itemFileInfo
	var totalSize int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		entryInfo, err := entry.Info()
		if err != nil {
			return nil, 0, fmt.Errorf("failed to get file info for %s: %w", entry.Name(), err)
		}
		files = append(files, itemFileInfo{path: filepath.Join(dir, entry.Name()), size: entryInfo.Size()})
		totalSize += entryInfo.Size()
	}
	return files, totalSize, nil
}

// walkFiles collects every file under dir. Errors on individual entries are
// logged and skipped so one unreadable subdirectory does not sink the run.
func walkFiles(dir string) ([]itemFileInfo, int64, error) {
	var files []itemFileInfo
	var totalSize int64
	var walkErrs []error
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// If the error is about the root dir itself, propagate it.
			if path == dir {
				return fmt.Errorf("directory %q disappeared or unreadable: %w", dir, err)
			}
			logger.Error("Error accessing path during walk, skipping",
				slog.String("path", path),
				slog.String("error", err.Error()))
			walkErrs = append(walkErrs, err)
			return nil // Continue walking
		}

		if d.IsDir() {
			return nil
		}

		info, statErr := d.Info()
		if statErr != nil {
			return fmt.Errorf("failed to get file info for %s: %w", path, statErr)
		}
		files = append(files, itemFileInfo{path: path, size: info.Size()})
		totalSize += info.Size()
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to walk directory %q: %w", dir, err)
	}
	if len(walkErrs) > 0 {
		logger.Warn("Encountered errors during directory walk, proceeding with successfully found files",
			slog.Int("error_count", len(walkErrs)))
	}
	return files, totalSize, nil
}
