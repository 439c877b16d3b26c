package repositories

import (
	"encoding/json"
	"fmt"
	"os"

	"userdir/internal/models"

	"github.com/spf13/afero"
)

// JSONFileStorage keeps the collection as a pretty-printed JSON array in a single file.
// Every Save rewrites the whole file; there is no locking between writers.
type JSONFileStorage struct {
	fs   afero.Fs
	path string
}

// NewJSONFileStorage creates a storage backed by the file at path on fs.
// Pass afero.NewOsFs() for the real filesystem.
func NewJSONFileStorage(fs afero.Fs, path string) *JSONFileStorage {
	return &JSONFileStorage{
		fs:   fs,
		path: path,
	}
}

// Path returns the location of the backing file.
func (s *JSONFileStorage) Path() string {
	return s.path
}

// Initialize creates the backing file with an empty array when it does not exist yet.
// An existing file is left as is.
func (s *JSONFileStorage) Initialize() error {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return storageErr("initialize", err)
	}
	if exists {
		return nil
	}
	if err := afero.WriteFile(s.fs, s.path, []byte("[]"), 0o644); err != nil {
		return storageErr("initialize", fmt.Errorf("failed to create %s: %w", s.path, err))
	}
	return nil
}

// Load reads and decodes the whole collection.
func (s *JSONFileStorage) Load() ([]models.User, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, storageErr("load", fmt.Errorf("failed to read %s: %w", s.path, err))
	}
	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, storageErr("load", fmt.Errorf("malformed JSON in %s: %w", s.path, err))
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Save overwrites the backing file with the given collection, indented by two spaces.
func (s *JSONFileStorage) Save(users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return storageErr("save", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, os.FileMode(0o644)); err != nil {
		return storageErr("save", fmt.Errorf("failed to write %s: %w", s.path, err))
	}
	return nil
}
