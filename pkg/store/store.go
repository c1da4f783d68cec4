package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DocumentStore хранит именованные коллекции как JSON-документы на диске.
// Одна коллекция — один файл; чтение и запись выполняются целиком,
// одновременная запись из нескольких процессов не защищена.
type DocumentStore struct {
	dir string
	mu  sync.Mutex
}

func NewDocumentStore(dir string) (*DocumentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ошибка создания каталога хранилища: %w", err)
	}
	return &DocumentStore{dir: dir}, nil
}

func (s *DocumentStore) Read(collection string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("ошибка чтения коллекции %s: %w", collection, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("ошибка разбора коллекции %s: %w", collection, err)
	}

	return nil
}

func (s *DocumentStore) Write(collection string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации коллекции %s: %w", collection, err)
	}

	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("ошибка записи коллекции %s: %w", collection, err)
	}

	if err := os.Rename(tmp, s.path(collection)); err != nil {
		return fmt.Errorf("ошибка сохранения коллекции %s: %w", collection, err)
	}

	return nil
}

func (s *DocumentStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
