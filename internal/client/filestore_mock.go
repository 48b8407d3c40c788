package client

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
)

// MockFileStore is an in-memory FileStore for tests.
// The Func fields override the default behavior when set.
type MockFileStore struct {
	BaseURL string

	PutFunc    func(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	DeleteFunc func(ctx context.Context, key string) error
	ExistsFunc func(ctx context.Context, key string) (bool, error)
	ListFunc   func(ctx context.Context, prefix string) ([]string, error)

	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

// NewMockFileStore creates an empty in-memory store
func NewMockFileStore() *MockFileStore {
	return &MockFileStore{
		BaseURL: "/media",
		objects: make(map[string][]byte),
	}
}

func (m *MockFileStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, body, size, contentType)
	}
	if err := ValidateKey(key); err != nil {
		return err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *MockFileStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok, nil
}

func (m *MockFileStore) List(ctx context.Context, prefix string) ([]string, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, prefix)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := []string{}
	for k := range m.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MockFileStore) URL(key string) string {
	return m.BaseURL + "/" + key
}

// Object returns the stored bytes for key
func (m *MockFileStore) Object(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	return data, ok
}

// Len returns the number of stored objects
func (m *MockFileStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// Deleted returns the keys passed to Delete, in call order
func (m *MockFileStore) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}

var (
	_ FileStore = (*MockFileStore)(nil)
	_ FileStore = (*LocalStore)(nil)
	_ FileStore = (*S3Store)(nil)
)
