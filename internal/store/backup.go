package store

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/huegen/internal/security"
)

// maxRestoreBytes caps the decompressed size of a single restored record.
// Palette files are a few hundred bytes; anything near this limit is a
// decompression bomb, not a palette.
const maxRestoreBytes = 1 * 1024 * 1024

// Backup writes every JSON record in the store to a tar.xz archive at
// path. The archive contains flat file names, no directories.
func (s *FileStore) Backup(path string) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read store directory: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer out.Close()

	xzw, err := xz.NewWriter(out)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	tw := tar.NewWriter(xzw)

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		hdr := &tar.Header{
			Name:    entry.Name(),
			Mode:    0o644,
			Size:    int64(len(data)),
			ModTime: time.Now(),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("failed to write tar header for %s: %w", entry.Name(), err)
		}
		if _, err := tw.Write(data); err != nil {
			return fmt.Errorf("failed to write %s to archive: %w", entry.Name(), err)
		}
		count++
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finalize tar archive: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to finalize xz stream: %w", err)
	}

	s.logger.Info("backed up palette store", "path", path, "palettes", count)
	return nil
}

// Restore reads a tar.xz archive produced by Backup and writes its
// records into the store, overwriting records with matching names.
// Archive members that would escape the store directory or exceed the
// size limit abort the restore.
func (s *FileStore) Restore(path string) (int, error) {
	in, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open backup file: %w", err)
	}
	defer in.Close()

	xzr, err := xz.NewReader(in)
	if err != nil {
		return 0, fmt.Errorf("failed to create xz reader: %w", err)
	}
	tr := tar.NewReader(xzr)

	count := 0
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read tar archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		if !strings.HasSuffix(hdr.Name, ".json") {
			s.logger.Warn("skipping non-palette archive member", "name", hdr.Name)
			continue
		}
		if err := security.ValidateArchivePath(hdr.Name, s.dir); err != nil {
			return count, fmt.Errorf("refusing archive member %q: %w", hdr.Name, err)
		}

		data, err := io.ReadAll(security.NewLimitedReader(tr, maxRestoreBytes))
		if err != nil {
			return count, fmt.Errorf("failed to read archive member %q: %w", hdr.Name, err)
		}

		dest := filepath.Join(s.dir, filepath.Base(hdr.Name))
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return count, fmt.Errorf("failed to restore %q: %w", hdr.Name, err)
		}
		count++
	}

	s.logger.Info("restored palette store", "path", path, "palettes", count)
	return count, nil
}
