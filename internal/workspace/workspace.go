package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

const BaseDirName = ".ai-flavor-remover"

// Paths locates the per-user data directory and what lives inside it.
type Paths struct {
	Root       string
	HistoryDB  string
	ReportsDir string
}

func EnsureDefault() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

func EnsureAt(base string) (Paths, error) {
	p := Paths{
		Root:       base,
		HistoryDB:  filepath.Join(base, "history", "runs.db"),
		ReportsDir: filepath.Join(base, "reports"),
	}
	for _, dir := range []string{filepath.Dir(p.HistoryDB), p.ReportsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Paths{}, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return p, nil
}
