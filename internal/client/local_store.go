package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const tempPrefix = ".upload-"

// LocalStore keeps files under a directory on disk and serves them below baseURL
type LocalStore struct {
	root     string
	baseURL  string
	recorder OperationRecorder
}

// NewLocalStore creates the media root if needed
func NewLocalStore(root, baseURL string, recorder OperationRecorder) (*LocalStore, error) {
	if root == "" {
		return nil, fmt.Errorf("media root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &LocalStore{
		root:     root,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		recorder: recorder,
	}, nil
}

// Root returns the directory the store writes to
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

// Put writes to a temp file next to the target and renames it into place,
// so readers never observe a partially written file.
func (s *LocalStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (err error) {
	start := time.Now()
	defer func() { record(s.recorder, "local", "put", start, err) }()

	if err = ValidateKey(key); err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	target := s.path(key)
	if err = os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), tempPrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err = os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) (err error) {
	start := time.Now()
	defer func() { record(s.recorder, "local", "delete", start, err) }()

	if err = ValidateKey(key); err != nil {
		return err
	}
	if err = os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := ValidateKey(key); err != nil {
		return false, err
	}
	info, err := os.Stat(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// List returns the keys of all files whose key starts with prefix, sorted
func (s *LocalStore) List(ctx context.Context, prefix string) (keys []string, err error) {
	start := time.Now()
	defer func() { record(s.recorder, "local", "list", start, err) }()

	keys = []string{}
	err = filepath.WalkDir(s.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), tempPrefix) {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *LocalStore) URL(key string) string {
	return s.baseURL + "/" + path.Clean(key)
}
