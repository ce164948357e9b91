package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFiles are looked up in the working directory, in order, when no
// explicit config path is given.
var DefaultFiles = []string{
	".ai-flavor-remover.json",
	".ai-flavor-remover.yaml",
	".ai-flavor-remover.yml",
}

// Load reads configuration from a JSON or YAML file and environment variables.
// Priority: ENV > file > defaults (via env-default tags).
// An explicit path must exist. Without one, the first of DefaultFiles found
// in the working directory is used; if none exists, ENV + defaults only.
func Load(explicit string) (*Config, error) {
	return LoadDir(".", explicit)
}

// LoadDir is Load with the default-file lookup rooted at dir.
func LoadDir(dir, explicit string) (*Config, error) {
	// Best-effort: a missing .env is fine.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg := Config{}
	path, err := resolvePath(dir, explicit)
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if cfg.CustomReplacements == nil {
		cfg.CustomReplacements = map[string]string{}
	}
	if cfg.PreservePatterns == nil {
		cfg.PreservePatterns = []string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func resolvePath(dir, explicit string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config: file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	for _, name := range DefaultFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// ErrExists is returned by WriteTemplate when the target already exists.
var ErrExists = errors.New("config file already exists")

// WriteTemplate writes the default configuration to path, as YAML for
// .yaml/.yml and JSON otherwise.
func WriteTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config: %s: %w", path, ErrExists)
	}
	raw, err := Marshal(Defaults(), path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Marshal encodes cfg in the format implied by the file name.
func Marshal(cfg Config, name string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		raw, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: marshal yaml: %w", err)
		}
		return raw, nil
	default:
		raw, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("config: marshal json: %w", err)
		}
		return append(raw, '\n'), nil
	}
}
