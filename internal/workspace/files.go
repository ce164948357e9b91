package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"flavor_remover/internal/ingest"
)

// PolishedSuffix replaces the input extension when no output is given.
const PolishedSuffix = ".polished.md"

// ListInputs returns the supported documents directly inside dir, sorted by
// name. Previously polished outputs are skipped.
func ListInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !ingest.Supported(name) || strings.HasSuffix(name, PolishedSuffix) {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}
	slices.Sort(out)
	return out, nil
}

// OutputPath decides where the rewritten text for input goes.
//   - single file with an explicit output: output
//   - batch with an output directory: dir/<name>, where .md and .txt keep
//     their name and other formats get ".md" appended (x.docx -> x.docx.md)
//   - otherwise next to the input: a.md -> a.polished.md,
//     a.txt -> a.txt.polished.md
func OutputPath(input, output string, batch bool) string {
	output = strings.TrimSpace(output)
	switch {
	case output != "" && batch:
		name := filepath.Base(input)
		if !isText(name) {
			name += ".md"
		}
		return filepath.Join(output, name)
	case output != "":
		return output
	default:
		return filepath.Join(filepath.Dir(input), stem(input)+PolishedSuffix)
	}
}

// Targets maps every input through target and fails when two inputs would
// share a destination.
func Targets(inputs []string, target func(string) string) ([]string, error) {
	out := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		t := filepath.Clean(target(in))
		if prev, ok := seen[t]; ok {
			return nil, fmt.Errorf("%s and %s would both write %s", prev, in, t)
		}
		seen[t] = in
		out[i] = t
	}
	return out, nil
}

// stem drops a .md extension and keeps any other, so a.md and a.txt never
// share derived names.
func stem(input string) string {
	base := filepath.Base(input)
	if strings.EqualFold(filepath.Ext(base), ".md") {
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base
}

func isText(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".txt":
		return true
	}
	return false
}

// WriteText writes text to path, creating parent directories.
func WriteText(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// ReportPath names the JSON report for input inside dir.
func ReportPath(dir, input string) string {
	return filepath.Join(dir, sanitizeName(stem(input))+".report.json")
}

func SaveReport(path string, report any) error {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func sanitizeName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "document"
	}
	return strings.ReplaceAll(base, "..", "")
}
