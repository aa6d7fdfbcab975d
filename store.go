package stocks

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store owns the persistence of the lot collection in a single CSV file.
// It keeps no in-memory state: Load returns the collection, Save replaces the
// file content with the one given (full overwrite, not append).
type Store struct {
	path string
}

// NewStore creates a store backed by the given CSV file path.
func NewStore(path string) *Store { return &Store{path: path} }

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the full ledger from the backing file. If the file does not
// exist yet, an empty schema-correct file is created and an empty ledger
// returned.
func (s *Store) Load() (Ledger, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("%s not present, creating a default one", s.path)
		if err := s.Save(Ledger{}); err != nil {
			return nil, err
		}
		return Ledger{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not open %q: %v", ErrStorage, s.path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not load %q: %w", s.path, err)
	}
	return ledger, nil
}

// Save persists the full ledger, replacing any prior content. The parent
// directory is created if needed. Failures are surfaced immediately, there is
// no retry.
func (s *Store) Save(ledger Ledger) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: could not create directory for %q: %v", ErrStorage, s.path, err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: could not open %q for writing: %v", ErrStorage, s.path, err)
	}
	defer f.Close()

	if err := EncodeLedger(f, ledger); err != nil {
		return fmt.Errorf("could not save %q: %w", s.path, err)
	}
	return nil
}
