package rewrite

import (
	"strings"
	"unicode/utf8"

	"flavor_remover/internal/chunk"
	"flavor_remover/internal/lexicon"
	"flavor_remover/internal/style"
	"flavor_remover/internal/tier"
)

type replacement struct {
	from string
	to   string
}

// Light-tier connectives. Keyed on the phrase plus a full-width comma.
var lightConnectives = []replacement{
	{"首先，", "先来说说"},
	{"其次，", "再说"},
	{"最后，", "最后说说"},
}

var mediumConnectives = []replacement{
	{"此外，", "还有，"},
	{"然而，", "但是，"},
	{"因此，", "所以，"},
}

const (
	casualEvery     = 3
	casualMinLength = 20
)

// Rewriter applies the light, medium and heavy tiers. Each tier starts from
// the output of the tier below it.
type Rewriter struct {
	lex      *lexicon.Lexicon
	advisor  *style.Advisor
	domain   style.Domain
	decider  Decider
	preserve *Preserver
}

type Option func(*Rewriter)

func WithDecider(d Decider) Option {
	return func(r *Rewriter) { r.decider = d }
}

func WithAdvisor(a *style.Advisor) Option {
	return func(r *Rewriter) { r.advisor = a }
}

func WithDomain(d style.Domain) Option {
	return func(r *Rewriter) { r.domain = d }
}

func WithPreserver(p *Preserver) Option {
	return func(r *Rewriter) { r.preserve = p }
}

func New(lex *lexicon.Lexicon, opts ...Option) *Rewriter {
	r := &Rewriter{
		lex:    lex,
		domain: style.General,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.lex == nil {
		r.lex = lexicon.Default()
	}
	if r.advisor == nil {
		r.advisor = style.NewAdvisor()
	}
	if r.decider == nil {
		r.decider = NewUnseededDecider()
	}
	return r
}

// Fork returns a copy of r that draws from d. The copy shares the immutable
// lexicon, advisor and preserver.
func (r *Rewriter) Fork(d Decider) *Rewriter {
	cp := *r
	cp.decider = d
	return &cp
}

// Rewrite runs the tier named by m.
func (r *Rewriter) Rewrite(text string, m tier.Mode) string {
	switch m {
	case tier.Light:
		return r.Light(text)
	case tier.Heavy:
		return r.Heavy(text)
	default:
		return r.Medium(text)
	}
}

func (r *Rewriter) Light(text string) string  { return r.guard(text, r.light) }
func (r *Rewriter) Medium(text string) string { return r.guard(text, r.medium) }
func (r *Rewriter) Heavy(text string) string  { return r.guard(text, r.heavy) }

func (r *Rewriter) guard(text string, fn func(string) string) string {
	if text == "" {
		return ""
	}
	masked, spans := r.preserve.Mask(text)
	return Unmask(fn(masked), spans)
}

func (r *Rewriter) light(text string) string {
	result := text
	for _, e := range r.lex.Entries() {
		if strings.Contains(result, e.Marker) {
			result = strings.ReplaceAll(result, e.Marker, lexicon.Preferred(e.Candidates))
		}
	}
	return replaceAll(result, lightConnectives)
}

func (r *Rewriter) medium(text string) string {
	segments := chunk.Sentences(r.light(text))
	for i, seg := range segments {
		if seg.Terminator {
			continue
		}
		if i > 0 && i%casualEvery == 0 && utf8.RuneCountInString(seg.Text) > casualMinLength {
			segments[i].Text = casualTouch(seg.Text, r.decider)
		}
	}
	return replaceAll(chunk.Join(segments), mediumConnectives)
}

// heavy hands the medium output to the domain's style strategy. The default
// strategy is identity, so heavy output equals medium output until a deeper
// rewrite is registered on the advisor.
func (r *Rewriter) heavy(text string) string {
	return r.advisor.Apply(r.domain, r.medium(text))
}

func replaceAll(text string, pairs []replacement) string {
	for _, p := range pairs {
		text = strings.ReplaceAll(text, p.from, p.to)
	}
	return text
}
