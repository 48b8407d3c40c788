package client

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"kanban-board-api/internal/config"
)

// FileStore stores task images under slash separated keys such as "tasks/<name>.jpg"
type FileStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string) ([]string, error)
	URL(key string) string
}

// OperationRecorder receives timing for every storage call
type OperationRecorder interface {
	RecordStorageOperation(backend, operation string, duration time.Duration, err error)
}

// NewFileStore builds the store selected by storage.backend
func NewFileStore(cfg *config.Config, recorder OperationRecorder) (FileStore, error) {
	switch cfg.Storage.Backend {
	case "local":
		return NewLocalStore(cfg.Storage.MediaRoot, cfg.Storage.BaseURL, recorder)
	case "s3":
		return NewS3Store(&cfg.S3, recorder)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// ValidateKey rejects keys that would escape the store root
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty storage key")
	}
	if strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return fmt.Errorf("invalid storage key %q", key)
	}
	cleaned := path.Clean(key)
	if cleaned != key || cleaned == "." || strings.HasPrefix(cleaned, "../") || cleaned == ".." {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}

func record(recorder OperationRecorder, backend, operation string, start time.Time, err error) {
	if recorder == nil {
		return
	}
	recorder.RecordStorageOperation(backend, operation, time.Since(start), err)
}
