package papertrade

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists one JSON file per identity under a single directory.
//
// Writes go to a temp file first and are moved into place with a rename, so
// a reader never observes a torn record. Nothing guards two processes
// writing the same identity concurrently: that is last-write-wins, and the
// Registry keeps it a non-issue within a single process.
type Store struct {
	path string
}

// NewStore returns a store rooted at path. The directory is created lazily
// on the first save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// file returns the record path for an identity, e.g. "portfolio_alice.json".
func (s *Store) file(identity string) string {
	return filepath.Join(s.path, "portfolio_"+sanitizeIdentity(identity)+".json")
}

// sanitizeIdentity maps an opaque identity to a safe file name fragment.
// Anything outside [a-zA-Z0-9._-] becomes '_'.
func sanitizeIdentity(identity string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, identity)
}

// Exists reports whether a record is persisted for identity.
func (s *Store) Exists(identity string) bool {
	_, err := os.Stat(s.file(identity))
	return err == nil
}

// Load reads and decodes the record persisted for identity. The returned
// ledger is attached to this store, so its mutations persist back here.
// A missing record is reported with an error satisfying errors.Is(err,
// fs.ErrNotExist).
func (s *Store) Load(identity, currency string) (*Ledger, error) {
	path := s.file(identity)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f, identity, currency)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	l.store = s
	return l, nil
}

// Save serializes the entire ledger, fully overwriting any prior record for
// its identity.
func (s *Store) Save(l *Ledger) error {
	if l.identity == "" {
		return fmt.Errorf("cannot save ledger with an empty identity")
	}
	if err := os.MkdirAll(s.path, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.path, err)
	}

	path := s.file(l.identity)
	tmp, err := os.CreateTemp(s.path, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temp file for %q: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temp file for %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not move record into place at %q: %w", path, err)
	}
	return nil
}
