package session

import (
	"encoding/json"
	"os"
	"sync"
)

// Store persists session fields as independent key/value writes. Adapters
// exist for a JSON file (CLI use) and plain memory (tests).
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryStore keeps session state in a map
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

// Get returns the stored value for key
func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete removes key
func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// FileStore persists session state as a JSON object in a single file. Each
// Set/Delete rewrites the file; the session holds only three small fields so
// that costs nothing.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by the file at path. The file is
// created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get returns the stored value for key
func (f *FileStore) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	values := f.read()
	v, ok := values[key]
	return v, ok
}

// Set stores value under key
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values := f.read()
	values[key] = value
	return f.write(values)
}

// Delete removes key
func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values := f.read()
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return f.write(values)
}

func (f *FileStore) read() map[string]string {
	values := map[string]string{}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return values
	}
	// a corrupt session file reads as an empty session
	_ = json.Unmarshal(b, &values)
	return values
}

func (f *FileStore) write(values map[string]string) error {
	b, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, b, 0600)
}
