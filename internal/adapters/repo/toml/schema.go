package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int                 `toml:"version"`
	Sessions []fingerprintSchema `toml:"sessions"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported user agents schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type fingerprintSchema struct {
	SessionName string `toml:"session_name"`
	UserAgent   string `toml:"user_agent"`
}
