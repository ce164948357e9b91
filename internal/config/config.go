package config

import (
	"fmt"
	"strings"

	"flavor_remover/internal/remover"
	"flavor_remover/internal/rewrite"
	"flavor_remover/internal/style"
	"flavor_remover/internal/tier"
)

// Config is the persisted configuration. The first four fields are the
// rewriting config; the rest configure the command line tool around it.
type Config struct {
	Mode               string            `json:"mode"               yaml:"mode"               env:"AFR_MODE"     env-default:"medium"`
	Domain             string            `json:"domain"             yaml:"domain"             env:"AFR_DOMAIN"   env-default:"general"`
	CustomReplacements map[string]string `json:"customReplacements" yaml:"customReplacements"`
	PreservePatterns   []string          `json:"preservePatterns"   yaml:"preservePatterns"   env:"AFR_PRESERVE" env-separator:","`

	Workers int           `json:"workers" yaml:"workers" env:"AFR_WORKERS" env-default:"0"`
	Log     LogConfig     `json:"log"     yaml:"log"`
	History HistoryConfig `json:"history" yaml:"history"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `json:"level"  yaml:"level"  env:"AFR_LOG_LEVEL"  env-default:"info"`
	Format string `json:"format" yaml:"format" env:"AFR_LOG_FORMAT" env-default:"text"`
}

// HistoryConfig controls the sqlite run history. An empty Path means the
// default location under the user's data directory.
type HistoryConfig struct {
	Disabled bool   `json:"disabled" yaml:"disabled" env:"AFR_HISTORY_DISABLED"`
	Path     string `json:"path"     yaml:"path"     env:"AFR_HISTORY_PATH"`
}

func Defaults() Config {
	return Config{
		Mode:               string(tier.Medium),
		Domain:             string(style.General),
		CustomReplacements: map[string]string{},
		PreservePatterns:   []string{},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks the fields that would otherwise fail later. Unknown modes
// and domains are accepted: they fall back to medium and to no style profile.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if _, err := rewrite.CompilePreserve(c.PreservePatterns); err != nil {
		return err
	}
	return nil
}

// Remover converts the persisted fields into the rewriting config.
func (c *Config) Remover() remover.Config {
	domain, _ := style.ParseDomain(c.Domain)
	custom := make(map[string]string, len(c.CustomReplacements))
	for k, v := range c.CustomReplacements {
		custom[k] = v
	}
	return remover.Config{
		Mode:               tier.Mode(strings.ToLower(strings.TrimSpace(c.Mode))),
		Domain:             domain,
		CustomReplacements: custom,
		PreservePatterns:   append([]string(nil), c.PreservePatterns...),
	}
}
