package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/nholste/docdex/internal/docs"
)

// CorpusStorage defines the interface for persisting an authored corpus.
type CorpusStorage interface {
	Load() (*docs.Corpus, error)
	Save(corpus *docs.Corpus) error
}

// JSONStorage implements CorpusStorage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the corpus from the JSON file.
// Returns the built-in default corpus if the file doesn't exist.
func (s *JSONStorage) Load() (*docs.Corpus, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return docs.DefaultCorpus(), nil
		}
		return nil, err
	}

	var corpus docs.Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, err
	}

	// Ensure slices are not nil
	if corpus.Pages == nil {
		corpus.Pages = []docs.Page{}
	}
	if corpus.Sections == nil {
		corpus.Sections = []docs.Section{}
	}

	return &corpus, nil
}

// Save writes the corpus to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(corpus *docs.Corpus) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(corpus, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// DefaultCorpusPath returns the default corpus path: ~/.config/docdex/corpus.json
func DefaultCorpusPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "docdex", "corpus.json"), nil
}
