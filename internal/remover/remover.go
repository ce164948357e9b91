// Package remover binds a run configuration to the detector and rewriter.
// It is the only entry point the I/O layer needs: Detect reports how
// machine-flavored a document reads, Process rewrites it.
package remover

import (
	"fmt"

	"flavor_remover/internal/detect"
	"flavor_remover/internal/lexicon"
	"flavor_remover/internal/rewrite"
	"flavor_remover/internal/style"
	"flavor_remover/internal/tier"
)

// Config is the resolved, read-only configuration for one run.
type Config struct {
	Mode               tier.Mode
	Domain             style.Domain
	CustomReplacements map[string]string
	PreservePatterns   []string
}

type Remover struct {
	cfg      Config
	lex      *lexicon.Lexicon
	detector *detect.Detector
	rewriter *rewrite.Rewriter
}

type options struct {
	base    *lexicon.Lexicon
	advisor *style.Advisor
	decider rewrite.Decider
}

type Option func(*options)

// WithLexicon replaces the built-in lexicon. Custom replacements from the
// config are still layered over it.
func WithLexicon(l *lexicon.Lexicon) Option {
	return func(o *options) { o.base = l }
}

func WithAdvisor(a *style.Advisor) Option {
	return func(o *options) { o.advisor = a }
}

func WithDecider(d rewrite.Decider) Option {
	return func(o *options) { o.decider = d }
}

// New builds a Remover. The only failure is an invalid preserve regex.
func New(cfg Config, opts ...Option) (*Remover, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.base == nil {
		o.base = lexicon.Default()
	}

	preserve, err := rewrite.CompilePreserve(cfg.PreservePatterns)
	if err != nil {
		return nil, fmt.Errorf("remover: %w", err)
	}

	lex := o.base.Merge(cfg.CustomReplacements)
	rwOpts := []rewrite.Option{
		rewrite.WithDomain(cfg.Domain),
		rewrite.WithPreserver(preserve),
	}
	if o.advisor != nil {
		rwOpts = append(rwOpts, rewrite.WithAdvisor(o.advisor))
	}
	if o.decider != nil {
		rwOpts = append(rwOpts, rewrite.WithDecider(o.decider))
	}

	return &Remover{
		cfg:      cfg,
		lex:      lex,
		detector: detect.New(lex),
		rewriter: rewrite.New(lex, rwOpts...),
	}, nil
}

func (r *Remover) Config() Config { return r.cfg }

// Detect scores text against the effective lexicon.
func (r *Remover) Detect(text string) detect.Report {
	return r.detector.Detect(text)
}

// Process rewrites text with the configured mode. Unknown modes run medium.
func (r *Remover) Process(text string) string {
	return r.rewriter.Rewrite(text, tier.Parse(string(r.cfg.Mode)))
}

// WithDecider returns a Remover sharing everything with r except its random
// source. Use one per goroutine when processing documents in parallel.
func (r *Remover) WithDecider(d rewrite.Decider) *Remover {
	cp := *r
	cp.rewriter = r.rewriter.Fork(d)
	return &cp
}
