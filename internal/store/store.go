// Package store persists named palettes as JSON records on disk. The
// generator itself owns no state; everything stateful lives behind the
// Repository interface so the CLI and server depend on the contract, not
// the filesystem layout.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huegen/internal/palette"
)

// ErrNotFound is returned when no stored palette matches the given name.
var ErrNotFound = errors.New("palette not found")

// Repository is the persistence contract for the palette collection.
type Repository interface {
	Save(p *palette.Palette) error
	Load(name string) (*palette.Palette, error)
	Delete(name string) error
	List() ([]*palette.Palette, error)
}

// FileStore implements Repository with one JSON file per palette under a
// single directory. Palette names map to filenames via a conservative
// sanitizer, so two names that collapse to the same slug address the same
// record.
type FileStore struct {
	dir    string
	logger hclog.Logger
}

var _ Repository = (*FileStore)(nil)

// NewFileStore creates (if needed) the store directory and returns a
// FileStore over it.
func NewFileStore(dir string, logger hclog.Logger) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("store directory must not be empty")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir, logger: logger.Named("store")}, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save validates and writes the palette, overwriting any record with the
// same name. A palette saved for the first time is assigned a uuid.
func (s *FileStore) Save(p *palette.Palette) error {
	if p == nil {
		return fmt.Errorf("cannot save a nil palette")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode palette %q: %w", p.Name, err)
	}

	path := s.pathFor(p.Name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write palette %q: %w", p.Name, err)
	}

	s.logger.Debug("saved palette", "name", p.Name, "id", p.ID, "path", path)
	return nil
}

// Load reads one palette by name. Returns ErrNotFound (wrapped) when no
// record exists.
func (s *FileStore) Load(name string) (*palette.Palette, error) {
	data, err := os.ReadFile(s.pathFor(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("palette %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read palette %q: %w", name, err)
	}

	var p palette.Palette
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("palette %q is corrupt: %w", name, err)
	}
	return &p, nil
}

// Delete removes one palette by name. Returns ErrNotFound (wrapped) when
// no record exists.
func (s *FileStore) Delete(name string) error {
	path := s.pathFor(name)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("palette %q: %w", name, ErrNotFound)
		}
		return fmt.Errorf("failed to delete palette %q: %w", name, err)
	}
	s.logger.Debug("deleted palette", "name", name, "path", path)
	return nil
}

// List returns all stored palettes sorted by name. Unreadable or corrupt
// records are skipped with a warning rather than failing the listing.
func (s *FileStore) List() ([]*palette.Palette, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read store directory: %w", err)
	}

	var palettes []*palette.Palette
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			s.logger.Warn("skipping unreadable palette file", "file", entry.Name(), "error", err)
			continue
		}
		var p palette.Palette
		if err := json.Unmarshal(data, &p); err != nil {
			s.logger.Warn("skipping corrupt palette file", "file", entry.Name(), "error", err)
			continue
		}
		palettes = append(palettes, &p)
	}

	sort.Slice(palettes, func(i, j int) bool { return palettes[i].Name < palettes[j].Name })
	return palettes, nil
}

// pathFor maps a palette name to its file path.
func (s *FileStore) pathFor(name string) string {
	return filepath.Join(s.dir, sanitizeName(name)+".json")
}

// sanitizeName reduces a palette name to a filesystem-safe slug:
// lowercase, with runs of anything outside [a-z0-9._-] collapsed to a
// single dash.
func sanitizeName(name string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "palette"
	}
	return slug
}
