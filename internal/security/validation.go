// Package security provides validation utilities for handling untrusted
// archive input.
package security

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ValidateArchivePath validates a path taken from an archive member before
// it is written under baseDir. Rejects traversal and absolute paths.
func ValidateArchivePath(memberPath, baseDir string) error {
	if memberPath == "" {
		return fmt.Errorf("empty archive member path")
	}

	if strings.Contains(memberPath, "..") {
		return fmt.Errorf("archive member path contains directory traversal (..) - not allowed")
	}

	if filepath.IsAbs(memberPath) {
		return fmt.Errorf("absolute paths in archives are not allowed")
	}

	// Ensure the final path would be within baseDir.
	finalPath := filepath.Join(baseDir, memberPath)
	cleanFinal := filepath.Clean(finalPath)
	cleanBase := filepath.Clean(baseDir)

	if !strings.HasPrefix(cleanFinal, cleanBase+string(filepath.Separator)) &&
		cleanFinal != cleanBase {
		return fmt.Errorf("archive member path would escape base directory")
	}

	return nil
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be
// read. This prevents decompression bomb attacks when extracting archives.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, fmt.Errorf("decompression size limit exceeded")
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
