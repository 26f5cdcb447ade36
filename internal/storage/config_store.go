package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/framecraft/promptdeck/internal/models"
	"gopkg.in/yaml.v3"
)

// ConfigStore persists and retrieves the versioned token/template document
// under a caller-chosen key. Implementations are external collaborators;
// callers catch failures and surface them rather than retrying.
type ConfigStore interface {
	// Load returns the document stored under key, or (nil, nil) when no
	// document exists yet.
	Load(key string) (*models.Config, error)
	// Save writes the document under key, replacing any previous version.
	Save(key string, cfg *models.Config) error
	// Clear removes the document stored under key. Clearing an absent key
	// is not an error.
	Clear(key string) error
}

// FileStore is a ConfigStore backed by YAML files under a root directory.
type FileStore struct {
	rootPath string
}

// NewFileStore creates a file store rooted at rootPath, defaulting to
// ~/.promptdeck when empty.
func NewFileStore(rootPath string) (*FileStore, error) {
	if rootPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		rootPath = filepath.Join(homeDir, ".promptdeck")
	}

	return &FileStore{rootPath: rootPath}, nil
}

// InitLibrary creates the directory structure for a prompt library.
func (s *FileStore) InitLibrary() error {
	if err := os.MkdirAll(s.rootPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", s.rootPath, err)
	}
	return nil
}

// GetBaseDir returns the root path of the store.
func (s *FileStore) GetBaseDir() string {
	return s.rootPath
}

func (s *FileStore) filePath(key string) string {
	return filepath.Join(s.rootPath, key+".yaml")
}

// Load reads and parses the config document stored under key.
func (s *FileStore) Load(key string) (*models.Config, error) {
	path := s.filePath(key)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg models.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// Save serializes the config document to YAML and writes it under key.
func (s *FileStore) Save(key string, cfg *models.Config) error {
	path := s.filePath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Clear removes the config document stored under key.
func (s *FileStore) Clear(key string) error {
	err := os.Remove(s.filePath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}
	return nil
}
