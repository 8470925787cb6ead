package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/ranchfarm/ranch-farmer/internal/ports"
)

const (
	fingerprintsFileMode = 0o600
	fingerprintsDirMode  = 0o700
	tempFilePattern      = ".user-agents-*.toml.tmp"
)

// FingerprintRepository keeps one user agent per session name in a single
// TOML file shared by every account of the process.
type FingerprintRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.FingerprintRepository = (*FingerprintRepository)(nil)

func NewFingerprintRepository(path string) (*FingerprintRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("user agents path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve user agents path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &FingerprintRepository{path: absPath, mu: lockForPath(absPath)}, nil
}

func (r *FingerprintRepository) List(ctx context.Context) ([]domain.Fingerprint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	fingerprints := make([]domain.Fingerprint, 0, len(file.Sessions))
	for _, entry := range file.Sessions {
		fingerprints = append(fingerprints, domain.Fingerprint{SessionName: entry.SessionName, UserAgent: entry.UserAgent})
	}

	return fingerprints, nil
}

// Append re-reads the file and adds the record unless the session already
// has one. It returns the record held by the file afterwards.
func (r *FingerprintRepository) Append(ctx context.Context, fingerprint domain.Fingerprint) (domain.Fingerprint, error) {
	if err := ctx.Err(); err != nil {
		return domain.Fingerprint{}, err
	}
	if strings.TrimSpace(fingerprint.SessionName) == "" {
		return domain.Fingerprint{}, errors.New("session name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Fingerprint{}, err
	}

	for _, entry := range file.Sessions {
		if entry.SessionName == fingerprint.SessionName {
			return domain.Fingerprint{SessionName: entry.SessionName, UserAgent: entry.UserAgent}, nil
		}
	}

	file.Sessions = append(file.Sessions, fingerprintSchema{
		SessionName: fingerprint.SessionName,
		UserAgent:   fingerprint.UserAgent,
	})

	if err := ctx.Err(); err != nil {
		return domain.Fingerprint{}, err
	}
	if err := r.writeSchema(file); err != nil {
		return domain.Fingerprint{}, err
	}

	return fingerprint, nil
}

func (r *FingerprintRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read user agents file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode user agents file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *FingerprintRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), fingerprintsDirMode); err != nil {
		return fmt.Errorf("create user agents directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode user agents file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp user agents file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp user agents file: %w", err)
	}

	if err := tempFile.Chmod(fingerprintsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp user agents file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp user agents file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace user agents file: %w", err)
	}
	cleanup = false

	return nil
}
