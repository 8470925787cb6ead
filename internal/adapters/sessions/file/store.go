package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gotd/td/session"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
)

const (
	storeDirMode   = 0o700
	sessionFileMod = 0o600
	sessionExt     = ".session"
)

// Store keeps one messenger session blob per file under root.
type Store struct {
	root string
	mu   sync.RWMutex
}

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForName(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return fmt.Errorf("create sessions directory: %w", err)
	}

	if err := os.WriteFile(path, data, sessionFileMod); err != nil {
		return fmt.Errorf("write session %q: %w", name, err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.pathForName(name)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("session %q: %w", name, domain.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("read session %q: %w", name, err)
	}

	return data, nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForName(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete session %q: %w", name, err)
	}

	return nil
}

// List returns the names of all stored sessions, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read sessions directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), sessionExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), sessionExt))
	}
	sort.Strings(names)

	return names, nil
}

// ForSession adapts a single named session to the MTProto client storage.
func (s *Store) ForSession(name string) session.Storage {
	return &namedStorage{store: s, name: name}
}

type namedStorage struct {
	store *Store
	name  string
}

func (n *namedStorage) LoadSession(ctx context.Context) ([]byte, error) {
	data, err := n.store.Get(ctx, n.name)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, session.ErrNotFound
	}

	return data, nil
}

func (n *namedStorage) StoreSession(ctx context.Context, data []byte) error {
	return n.store.Put(ctx, n.name, data)
}

func (s *Store) pathForName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", errors.New("session name is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") || cleaned == "." || strings.ContainsRune(cleaned, filepath.Separator) {
		return "", fmt.Errorf("invalid session name %q", name)
	}

	return filepath.Join(s.root, cleaned+sessionExt), nil
}
