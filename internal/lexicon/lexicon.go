package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

//go:embed markers.json
var markersJSON []byte

// Entry is one flavor marker with its ordered replacement candidates.
// An empty candidate means the marker is simply deleted.
type Entry struct {
	Marker     string   `json:"marker"`
	Candidates []string `json:"candidates"`
}

// MechanicalPattern is a sentence shape that reads as machine-assembled.
type MechanicalPattern struct {
	ID          string
	Description string
	Expr        *regexp.Regexp
}

var defaultPatterns = []MechanicalPattern{
	{
		ID:          "enumeration",
		Description: "首先…其次…最后 enumeration",
		Expr:        regexp.MustCompile(`首先.*其次.*最后`),
	},
	{
		ID:          "long-unpunctuated",
		Description: "30+ characters without any punctuation",
		Expr:        regexp.MustCompile(`^[^，。！？]{30,}$`),
	},
	{
		ID:          "parenthetical-numbering",
		Description: "（一）（二）（三） style numbering",
		Expr:        regexp.MustCompile(`（[一二三四五]）`),
	},
}

// Lexicon is an immutable, ordered marker table plus the mechanical patterns.
type Lexicon struct {
	entries  []Entry
	index    map[string]int
	patterns []MechanicalPattern
}

// Default returns the built-in lexicon. It panics only if the embedded table
// is malformed, which is a build defect.
func Default() *Lexicon {
	var entries []Entry
	if err := json.Unmarshal(markersJSON, &entries); err != nil {
		panic(fmt.Sprintf("lexicon: decode embedded markers: %v", err))
	}
	lex, err := New(entries, defaultPatterns)
	if err != nil {
		panic(err)
	}
	return lex
}

// New builds a lexicon from entries in the given order. Markers must be
// non-empty and distinct, and each must carry at least one candidate.
func New(entries []Entry, patterns []MechanicalPattern) (*Lexicon, error) {
	lex := &Lexicon{
		entries:  make([]Entry, 0, len(entries)),
		index:    make(map[string]int, len(entries)),
		patterns: slices.Clone(patterns),
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Marker) == "" {
			return nil, fmt.Errorf("lexicon: entry %d: empty marker", i)
		}
		if len(e.Candidates) == 0 {
			return nil, fmt.Errorf("lexicon: marker %q: no candidates", e.Marker)
		}
		if _, dup := lex.index[e.Marker]; dup {
			return nil, fmt.Errorf("lexicon: duplicate marker %q", e.Marker)
		}
		lex.index[e.Marker] = len(lex.entries)
		lex.entries = append(lex.entries, Entry{Marker: e.Marker, Candidates: slices.Clone(e.Candidates)})
	}
	return lex, nil
}

// Merge layers user replacements over the lexicon and returns a new one.
// A marker that already exists keeps its position but its candidate list is
// replaced by the single override. New markers are appended in key order.
func (l *Lexicon) Merge(custom map[string]string) *Lexicon {
	out := &Lexicon{
		entries:  make([]Entry, 0, len(l.entries)+len(custom)),
		index:    make(map[string]int, len(l.entries)+len(custom)),
		patterns: l.patterns,
	}
	for _, e := range l.entries {
		if repl, ok := custom[e.Marker]; ok {
			e = Entry{Marker: e.Marker, Candidates: []string{repl}}
		}
		out.index[e.Marker] = len(out.entries)
		out.entries = append(out.entries, e)
	}
	for _, marker := range slices.Sorted(maps.Keys(custom)) {
		if marker == "" {
			continue
		}
		if _, ok := out.index[marker]; ok {
			continue
		}
		out.index[marker] = len(out.entries)
		out.entries = append(out.entries, Entry{Marker: marker, Candidates: []string{custom[marker]}})
	}
	return out
}

func (l *Lexicon) Lookup(marker string) ([]string, bool) {
	i, ok := l.index[marker]
	if !ok {
		return nil, false
	}
	return slices.Clone(l.entries[i].Candidates), true
}

// Markers returns every marker in table order.
func (l *Lexicon) Markers() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Marker
	}
	return out
}

// Entries returns a copy of the table in order.
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = Entry{Marker: e.Marker, Candidates: slices.Clone(e.Candidates)}
	}
	return out
}

func (l *Lexicon) Patterns() []MechanicalPattern {
	return slices.Clone(l.patterns)
}

func (l *Lexicon) Len() int { return len(l.entries) }

// Preferred is the fixed substitution for a candidate list: the first
// candidate when non-empty, else the second when present, else deletion.
func Preferred(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	if candidates[0] != "" {
		return candidates[0]
	}
	if len(candidates) > 1 {
		return candidates[1]
	}
	return ""
}
