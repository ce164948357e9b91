package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholders are single runes from Supplementary Private Use Area-A, so
// no marker, connective or terminator can match across one. Runes of that
// area already present in the input are never used as placeholders.
const (
	placeholderFirst rune = 0xF0000
	placeholderLast  rune = 0xFFFFD
)

// Spans maps each placeholder rune to the text it hides.
type Spans map[rune]string

// Preserver masks spans that must survive rewriting untouched.
type Preserver struct {
	exprs []*regexp.Regexp
}

// CompilePreserve builds a Preserver. An entry wrapped in slashes, like
// `/v\d+\.\d+/`, is a regular expression; anything else matches literally.
func CompilePreserve(patterns []string) (*Preserver, error) {
	p := &Preserver{}
	for _, raw := range patterns {
		if raw == "" {
			continue
		}
		expr, err := compilePattern(raw)
		if err != nil {
			return nil, err
		}
		p.exprs = append(p.exprs, expr)
	}
	return p, nil
}

func compilePattern(raw string) (*regexp.Regexp, error) {
	if len(raw) >= 2 && strings.HasPrefix(raw, "/") && strings.HasSuffix(raw, "/") {
		expr, err := regexp.Compile(raw[1 : len(raw)-1])
		if err != nil {
			return nil, fmt.Errorf("preserve pattern %q: %w", raw, err)
		}
		return expr, nil
	}
	return regexp.MustCompile(regexp.QuoteMeta(raw)), nil
}

func (p *Preserver) Empty() bool { return p == nil || len(p.exprs) == 0 }

// Mask swaps every preserved span for a placeholder rune the text does not
// already contain.
func (p *Preserver) Mask(text string) (string, Spans) {
	if p.Empty() {
		return text, nil
	}
	taken := map[rune]bool{}
	for _, r := range text {
		if r >= placeholderFirst && r <= placeholderLast {
			taken[r] = true
		}
	}

	spans := Spans{}
	next := placeholderFirst
	for _, expr := range p.exprs {
		text = expr.ReplaceAllStringFunc(text, func(m string) string {
			for next <= placeholderLast && taken[next] {
				next++
			}
			if m == "" || next > placeholderLast {
				return m
			}
			mark := next
			next++
			spans[mark] = m
			return string(mark)
		})
	}
	return text, spans
}

// Unmask restores spans replaced by Mask. A span can hold placeholders of
// spans masked before it, so restoration recurses.
func Unmask(text string, spans Spans) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if span, ok := spans[r]; ok {
			b.WriteString(Unmask(span, spans))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
