package entries

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/clipdir/internal/common"
)

// Test seams for injecting filesystem failures.
var (
	removeFile = os.Remove
	readFile   = os.ReadFile
)

// Store manages the entries of one directory.
type Store struct {
	dir string
	now func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now as the source of entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(dir string, opts ...Option) *Store {
	s := &Store{dir: dir, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) Dir() string {
	return s.dir
}

// List returns the regular files of the directory sorted by name
// descending, i.e. newest first. Entries that cannot be stat'ed or are
// not regular files are skipped.
func (s *Store) List() ([]Entry, error) {
	des, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read clipboard directory %s: %w", common.ErrIO, s.dir, err)
	}

	list := make([]Entry, 0, len(des))
	for _, de := range des {
		// os.Stat follows symlinks, so a link to a regular file counts.
		fi, err := os.Stat(filepath.Join(s.dir, de.Name()))
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		list = append(list, newEntry(s.dir, de.Name(), fi.Size()))
	}

	slices.SortFunc(list, func(a, b Entry) int {
		return strings.Compare(b.Name, a.Name)
	})
	return list, nil
}

// Create writes data to a new "{now}.{ext}" file. The file is created
// exclusively: a name collision fails with an error wrapping fs.ErrExist.
// The directory must already exist.
func (s *Store) Create(data []byte, ext string) (Entry, error) {
	name := formatName(s.now().UnixMicro(), ext)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: create clipboard file: %w", common.ErrIO, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = removeFile(path)
		return Entry{}, fmt.Errorf("%w: write clipboard file: %w", common.ErrIO, err)
	}
	if err := f.Close(); err != nil {
		_ = removeFile(path)
		return Entry{}, fmt.Errorf("%w: close clipboard file: %w", common.ErrIO, err)
	}

	return newEntry(s.dir, name, int64(len(data))), nil
}

// Delete removes e.
func (s *Store) Delete(e Entry) error {
	if err := removeFile(e.Path); err != nil {
		return fmt.Errorf("%w: delete clipboard file: %w", common.ErrIO, err)
	}
	return nil
}

// DeleteNewest removes the entry at index 0 and reports whether there was
// one.
func (s *Store) DeleteNewest() (bool, error) {
	list, err := s.List()
	if err != nil {
		return false, err
	}
	if len(list) == 0 {
		return false, nil
	}
	if err := s.Delete(list[0]); err != nil {
		return false, err
	}
	return true, nil
}

// Open opens e for reading.
func (s *Store) Open(e Entry) (*os.File, error) {
	f, err := os.Open(e.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open clipboard file: %w", common.ErrIO, err)
	}
	return f, nil
}
