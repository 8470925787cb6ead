package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/ranchfarm/ranch-farmer/internal/ports"
)

// FingerprintService hands every session a stable user agent. The backing
// file is read once; new sessions are appended on first use.
type FingerprintService struct {
	repo      ports.FingerprintRepository
	generator ports.UserAgentGenerator

	mu     sync.Mutex
	loaded bool
	known  map[string]string
}

func NewFingerprintService(repo ports.FingerprintRepository, generator ports.UserAgentGenerator) *FingerprintService {
	return &FingerprintService{repo: repo, generator: generator, known: map[string]string{}}
}

func (s *FingerprintService) UserAgent(ctx context.Context, sessionName string) (string, error) {
	name := strings.TrimSpace(sessionName)
	if name == "" {
		return "", errors.New("session name is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return "", err
	}
	if ua, ok := s.known[name]; ok {
		return ua, nil
	}

	stored, err := s.repo.Append(ctx, domain.Fingerprint{SessionName: name, UserAgent: s.generator.Generate()})
	if err != nil {
		return "", fmt.Errorf("save user agent: %w", err)
	}
	s.known[name] = stored.UserAgent

	return stored.UserAgent, nil
}

// Lookup returns the stored user agent without creating one.
func (s *FingerprintService) Lookup(ctx context.Context, sessionName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return "", err
	}

	ua, ok := s.known[strings.TrimSpace(sessionName)]
	if !ok {
		return "", fmt.Errorf("session %q: %w", sessionName, domain.ErrFingerprintNotFound)
	}

	return ua, nil
}

func (s *FingerprintService) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	fingerprints, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load user agents: %w", err)
	}
	for _, fp := range fingerprints {
		s.known[fp.SessionName] = fp.UserAgent
	}
	s.loaded = true

	return nil
}
