package classify

import (
	"encoding/json"
	"os"
	"path/filepath"

	"flyerhub/internal/model"
)

// FileStore keeps the classification cache in a single JSON file.
// Puts mutate memory; Save rewrites the whole file (tmp + rename).
type FileStore struct {
	Path    string
	entries map[string]model.ClassificationEntry
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{Path: path, entries: map[string]model.ClassificationEntry{}}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &s.entries); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore) Get(name string) (model.ClassificationEntry, bool, error) {
	e, ok := s.entries[name]
	return e, ok, nil
}

func (s *FileStore) Put(name string, e model.ClassificationEntry) error {
	s.entries[name] = e
	return nil
}

func (s *FileStore) Len() int {
	return len(s.entries)
}

func (s *FileStore) Save() error {
	b, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), ".cache-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.Path)
}
