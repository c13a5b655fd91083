// Package source holds translation units on their way into the front end.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// MaxUnitBytes is the largest translation unit accepted (16MB).
const MaxUnitBytes = 16 << 20

// validName allows plain relative paths made of word characters, dots and dashes.
var validName = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_.\-]*(/[a-zA-Z0-9_][a-zA-Z0-9_.\-]*)*$`)

var (
	ErrNotFound        = errors.New("translation unit not found")
	ErrInvalidName     = errors.New("invalid translation unit name")
	ErrTooLarge        = errors.New("translation unit too large")
	ErrInvalidEncoding = errors.New("source is not valid UTF-8")
)

// Text is one translation unit's contents. The zero value is an empty unit.
type Text struct {
	name string
	data string
}

// New copies data into a Text after validating its encoding.
func New(name string, data []byte) (Text, error) {
	if len(data) > MaxUnitBytes {
		return Text{}, fmt.Errorf("%s: %w", name, ErrTooLarge)
	}
	if !utf8.Valid(data) {
		return Text{}, fmt.Errorf("%s: %w", name, ErrInvalidEncoding)
	}
	return Text{name: name, data: string(data)}, nil
}

func (t Text) Name() string   { return t.name }
func (t Text) String() string { return t.data }
func (t Text) Len() int       { return len(t.data) }

// LoadFile reads a translation unit from the host file system.
func LoadFile(path string) (Text, error) {
	fullPath, err := filepath.Abs(path)
	if err != nil {
		return Text{}, err
	}
	info, err := os.Stat(fullPath)
	if err != nil {
		return Text{}, err
	}
	if info.Size() > MaxUnitBytes {
		return Text{}, fmt.Errorf("%s: %w", path, ErrTooLarge)
	}
	raw, err := os.ReadFile(fullPath)
	if err != nil {
		return Text{}, err
	}
	return New(path, raw)
}

type entry struct {
	text     Text
	modified time.Time
}

// Set is an in-memory collection of named translation units, safe for
// concurrent use.
type Set struct {
	mu    sync.RWMutex
	units map[string]*entry
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{units: make(map[string]*entry)}
}

// Write stores data under name, replacing any existing unit.
// The data is copied, so callers may reuse the slice.
func (s *Set) Write(name string, data []byte) error {
	if !validName.MatchString(name) {
		return ErrInvalidName
	}

	text, err := New(name, data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.units[name] = &entry{text: text, modified: time.Now()}
	return nil
}

// Read returns the unit stored under name.
func (s *Set) Read(name string) (Text, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !validName.MatchString(name) {
		return Text{}, ErrInvalidName
	}
	e, ok := s.units[name]
	if !ok {
		return Text{}, ErrNotFound
	}
	return e.text, nil
}

// Size returns the length in bytes of the unit stored under name.
func (s *Set) Size(name string) (int, error) {
	t, err := s.Read(name)
	if err != nil {
		return 0, err
	}
	return t.Len(), nil
}

// Modified returns when the unit was last written or loaded.
func (s *Set) Modified(name string) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.units[name]
	if !ok {
		return time.Time{}, ErrNotFound
	}
	return e.modified, nil
}

// Delete removes a unit from the set.
func (s *Set) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !validName.MatchString(name) {
		return ErrInvalidName
	}
	if _, ok := s.units[name]; !ok {
		return ErrNotFound
	}
	delete(s.units, name)
	return nil
}

// List returns the sorted names of all units in the set.
func (s *Set) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.units))
	for k := range s.units {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of units in the set.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.units)
}

// IsSourceFile reports whether name has a C source or header extension.
func IsSourceFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".c", ".h":
		return true
	}
	return false
}

// LoadDir adds every C source and header file under dir to the set, keyed by
// its slash-separated path relative to dir.
// Files whose relative path is not a valid unit name are skipped silently.
// Returns nil if the directory does not exist.
func (s *Set) LoadDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsSourceFile(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if !validName.MatchString(name) {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := s.Write(name, raw); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if info, err := d.Info(); err == nil {
			s.mu.Lock()
			s.units[name].modified = info.ModTime()
			s.mu.Unlock()
		}
		return nil
	})
}
