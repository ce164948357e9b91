package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"flavor_remover/internal/config"
	"flavor_remover/internal/ingest"
	"flavor_remover/internal/logger"
	"flavor_remover/internal/pipeline"
	"flavor_remover/internal/remover"
	"flavor_remover/internal/report"
	"flavor_remover/internal/rewrite"
	"flavor_remover/internal/store"
	"flavor_remover/internal/style"
	"flavor_remover/internal/tier"
	"flavor_remover/internal/workspace"
)

type processOptions struct {
	mode       string
	domain     string
	output     string
	format     string
	reportPath string
	workers    int
	detectOnly bool
	verbose    bool
	batch      bool
	saveReport bool
}

var errNotProcessed = errors.New("not processed")

func loadConfig(g *globalOptions) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.Log, g.debug), nil
}

// applyFlags lets explicitly set flags win over file and env values.
func applyFlags(cmd *cobra.Command, cfg *config.Config, p *processOptions) error {
	flags := cmd.Flags()
	if flags.Changed("mode") {
		if !tier.Valid(p.mode) {
			return fmt.Errorf("invalid mode %q (expected light|medium|heavy)", p.mode)
		}
		cfg.Mode = string(tier.Parse(p.mode))
	}
	if flags.Changed("domain") {
		d, ok := style.ParseDomain(p.domain)
		if !ok {
			return fmt.Errorf("invalid domain %q (expected tech|essay|business|casual|general)", p.domain)
		}
		cfg.Domain = string(d)
	}
	if flags.Changed("workers") {
		if p.workers < 0 {
			return fmt.Errorf("workers must be >= 0, got %d", p.workers)
		}
		cfg.Workers = p.workers
	}
	return nil
}

func runProcess(cmd *cobra.Command, g *globalOptions, p *processOptions, input string) error {
	if err := report.CheckFormat(p.format); err != nil {
		return err
	}
	cfg, log, err := loadConfig(g)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg, p); err != nil {
		return err
	}

	inputs, batch, parse, err := resolveInputs(cmd, input, p.batch)
	if err != nil {
		return err
	}
	outputs, err := outputTargets(inputs, p, batch)
	if err != nil {
		return err
	}
	reports, err := reportTargets(inputs, p, batch)
	if err != nil {
		return err
	}

	rm, err := remover.New(cfg.Remover())
	if err != nil {
		return err
	}
	log.Debug("run configured",
		"mode", rm.Config().Mode,
		"domain", rm.Config().Domain,
		"documents", len(inputs),
		"detect_only", p.detectOnly,
	)

	started := time.Now()
	results := make([]report.Result, len(inputs))
	indexes := make([]int, len(inputs))
	for i, src := range inputs {
		indexes[i] = i
		results[i] = report.Result{Source: src, Err: errNotProcessed}
	}

	errs := pipeline.Run(cmd.Context(), indexes, cfg.Workers, func(_ context.Context, i int) error {
		res := processDocument(rm.WithDecider(rewrite.NewUnseededDecider()), inputs[i], outputs[i], parse, p.detectOnly)
		results[i] = res
		if res.Err != nil {
			log.Error("document failed", "source", res.Source, "error", res.Err)
			return res.Err
		}
		log.Debug("document done",
			"source", res.Source,
			"output", res.Output,
			"markers", len(res.Report.HighFrequencyMarkers),
			"recommended", res.Report.RecommendedMode,
		)
		return nil
	})

	if err := writeReports(results, reports); err != nil {
		log.Warn("report not saved", "error", err)
	}
	if err := printResults(cmd, rm.Config(), results, p, batch); err != nil {
		return err
	}
	if !cfg.History.Disabled {
		if err := recordHistory(cmd.Context(), cfg, rm.Config(), started, results, p.detectOnly); err != nil {
			log.Warn("history not recorded", "error", err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d document(s) failed", len(errs), len(inputs))
	}
	return nil
}

func processDocument(rm *remover.Remover, src, out string, parse parseFunc, detectOnly bool) report.Result {
	res := report.Result{Source: src}
	parsed, err := parse(src)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", src, err)
		return res
	}
	res.InputBytes = int64(len(parsed.Text))
	res.Report = rm.Detect(parsed.Text)
	if detectOnly {
		return res
	}

	polished := rm.Process(parsed.Text)
	res.OutputBytes = int64(len(polished))
	if out == "" {
		res.Text = polished
		return res
	}
	if err := workspace.WriteText(out, polished); err != nil {
		res.Err = fmt.Errorf("%s: %w", src, err)
		return res
	}
	res.Output = out
	return res
}

func printResults(cmd *cobra.Command, rc remover.Config, results []report.Result, p *processOptions, batch bool) error {
	out := cmd.OutOrStdout()

	if !batch {
		r := results[0]
		if r.Failed() {
			return nil
		}
		if p.detectOnly {
			return report.Detection(out, r.Source, r.Report, p.format)
		}
		if p.verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "markers: %d, mode: %s, domain: %s\n",
				len(r.Report.HighFrequencyMarkers), tier.Parse(string(rc.Mode)), rc.Domain)
		}
		if r.Output != "" {
			fmt.Fprintf(out, "saved to %s\n", r.Output)
			return nil
		}
		_, err := fmt.Fprint(out, r.Text)
		return err
	}

	if p.detectOnly && p.format != report.FormatJSON {
		for _, r := range results {
			if !r.Failed() {
				if err := report.Detection(out, r.Source, r.Report, p.format); err != nil {
					return err
				}
			}
		}
	}
	return report.Results(out, results, p.format)
}

type parseFunc func(src string) (*ingest.Parsed, error)

// stdinInput is the input argument that reads the document from stdin.
const stdinInput = "-"

// resolveInputs expands the input argument. A directory lists its supported
// documents and forces batch mode; a single named file is read even with an
// unknown extension; "-" reads stdin.
func resolveInputs(cmd *cobra.Command, input string, batch bool) ([]string, bool, parseFunc, error) {
	if input == stdinInput {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, false, nil, fmt.Errorf("read stdin: %w", err)
		}
		parsed, err := ingest.ParseText("stdin", raw)
		if err != nil {
			return nil, false, nil, fmt.Errorf("stdin: %w", err)
		}
		return []string{"stdin"}, false, func(string) (*ingest.Parsed, error) { return parsed, nil }, nil
	}

	info, err := os.Stat(input)
	if err != nil {
		return nil, false, nil, fmt.Errorf("input: %w", err)
	}
	if !info.IsDir() {
		return []string{input}, batch, ingest.ParseAny, nil
	}
	inputs, err := workspace.ListInputs(input)
	if err != nil {
		return nil, false, nil, err
	}
	if len(inputs) == 0 {
		return nil, false, nil, fmt.Errorf("no supported documents (.md, .txt, .docx, .pdf) in %s", input)
	}
	return inputs, true, ingest.ParseFile, nil
}

// outputTargets returns the file each input is written to. An empty target
// means stdout. Two inputs sharing a target is an error.
func outputTargets(inputs []string, p *processOptions, batch bool) ([]string, error) {
	output := strings.TrimSpace(p.output)
	if p.detectOnly || (!batch && output == "") {
		return make([]string, len(inputs)), nil
	}
	return workspace.Targets(inputs, func(in string) string {
		return workspace.OutputPath(in, output, batch)
	})
}

// reportTargets returns where each input's JSON report goes, or nil when no
// report was asked for.
func reportTargets(inputs []string, p *processOptions, batch bool) ([]string, error) {
	target := strings.TrimSpace(p.reportPath)
	if target == "" && !p.saveReport {
		return nil, nil
	}
	if target == "" {
		paths, err := workspace.EnsureDefault()
		if err != nil {
			return nil, err
		}
		target = paths.ReportsDir
		batch = true
	}
	if !batch {
		return []string{target}, nil
	}
	return workspace.Targets(inputs, func(in string) string {
		return workspace.ReportPath(target, in)
	})
}

func writeReports(results []report.Result, targets []string) error {
	if targets == nil {
		return nil
	}
	var errs []error
	for i, r := range results {
		if r.Failed() {
			continue
		}
		if err := workspace.SaveReport(targets[i], r.Report); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func historyPath(cfg *config.Config) (string, error) {
	if cfg.History.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.History.Path), 0o755); err != nil {
			return "", fmt.Errorf("create history dir: %w", err)
		}
		return cfg.History.Path, nil
	}
	paths, err := workspace.EnsureDefault()
	if err != nil {
		return "", err
	}
	return paths.HistoryDB, nil
}

func recordHistory(ctx context.Context, cfg *config.Config, rc remover.Config, started time.Time, results []report.Result, detectOnly bool) error {
	path, err := historyPath(cfg)
	if err != nil {
		return err
	}
	h, err := store.Open(path)
	if err != nil {
		return err
	}
	defer h.Close()

	docs := make([]store.Document, len(results))
	for i, r := range results {
		docs[i] = store.Document{
			Source:      r.Source,
			Output:      r.Output,
			Markers:     len(r.Report.HighFrequencyMarkers),
			Occurrences: r.Report.TotalOccurrences(),
			Recommended: string(r.Report.RecommendedMode),
			InputBytes:  r.InputBytes,
			OutputBytes: r.OutputBytes,
		}
		if r.Err != nil {
			docs[i].Err = r.Err.Error()
		}
	}

	_, err = h.RecordRun(ctx, store.Run{
		ID:         uuid.NewString(),
		StartedAt:  started,
		Mode:       string(tier.Parse(string(rc.Mode))),
		Domain:     string(rc.Domain),
		DetectOnly: detectOnly,
	}, docs)
	return err
}
