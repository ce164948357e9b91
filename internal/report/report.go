package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"flavor_remover/internal/detect"
	"flavor_remover/internal/style"
)

const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Result is the outcome of one document in a run.
type Result struct {
	Source      string        `json:"source"`
	Output      string        `json:"output,omitempty"`
	Report      detect.Report `json:"report"`
	InputBytes  int64         `json:"input_bytes"`
	OutputBytes int64         `json:"output_bytes,omitempty"`
	// Text holds the rewritten document when it goes to stdout instead of
	// a file.
	Text string `json:"-"`
	Err  error  `json:"-"`
}

func (r Result) Failed() bool { return r.Err != nil }

// CheckFormat rejects anything but pretty|json.
func CheckFormat(format string) error {
	switch format {
	case FormatPretty, FormatJSON, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

type detectionPayload struct {
	Document string `json:"document"`
	detect.Report
}

// Detection prints one detection report as pretty|json.
func Detection(w io.Writer, name string, rep detect.Report, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(detectionPayload{Document: name, Report: rep})
	case FormatPretty, "":
		printPrettyDetection(w, name, rep)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyDetection(w io.Writer, name string, rep detect.Report) {
	th := newTheme(w)

	fmt.Fprintln(w, th.Title.Render(name))
	fmt.Fprintf(w, "%s %s\n", th.Label.Render("Recommended:"), rep.RecommendedMode)
	fmt.Fprintf(w, "%s %d distinct / %d total\n",
		th.Label.Render("Markers:    "), len(rep.HighFrequencyMarkers), rep.TotalOccurrences())
	for _, m := range rep.HighFrequencyMarkers {
		fmt.Fprintf(w, "  - %s x%d\n", m.Marker, m.Count)
	}

	patterns := "none"
	if len(rep.MechanicalMatches) > 0 {
		patterns = strings.Join(rep.MechanicalMatches, ", ")
	}
	fmt.Fprintf(w, "%s %s\n", th.Label.Render("Mechanical: "), patterns)
	fmt.Fprintln(w)
}

type resultPayload struct {
	Result
	Error string `json:"error,omitempty"`
}

// Results prints a batch run: Summary for pretty, an array of results for json.
func Results(w io.Writer, results []Result, format string) error {
	switch format {
	case FormatJSON:
		payload := make([]resultPayload, len(results))
		for i, r := range results {
			payload[i] = resultPayload{Result: r}
			if r.Err != nil {
				payload[i].Error = r.Err.Error()
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(payload)
	case FormatPretty, "":
		Summary(w, results)
		return nil
	default:
		return CheckFormat(format)
	}
}

// Summary prints one line per document and a totals line.
func Summary(w io.Writer, results []Result) {
	th := newTheme(w)

	var in, out int64
	failed := 0
	for _, r := range results {
		in += r.InputBytes
		out += r.OutputBytes
		if r.Failed() {
			failed++
			fmt.Fprintf(w, "- [%s] %s\n  error: %v\n", th.Fail.Render("FAIL"), r.Source, r.Err)
			continue
		}
		fmt.Fprintf(w, "- [%s] %s (%d markers, %s)\n",
			th.OK.Render("OK"), r.Source, len(r.Report.HighFrequencyMarkers), r.Report.RecommendedMode)
		if r.Output != "" {
			fmt.Fprintf(w, "  -> %s %s\n", r.Output,
				th.Subtitle.Render(fmt.Sprintf("(%s -> %s)", humanize.Bytes(uint64(r.InputBytes)), humanize.Bytes(uint64(r.OutputBytes)))))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, th.Title.Render(fmt.Sprintf("%d document(s), %d failed, %s read, %s written",
		len(results), failed, humanize.Bytes(uint64(in)), humanize.Bytes(uint64(out)))))
}

// Profile prints a domain style profile in a bordered card.
func Profile(w io.Writer, p style.Profile) {
	th := newTheme(w)

	var b strings.Builder
	b.WriteString(th.Title.Render(p.Title))
	b.WriteString(" ")
	b.WriteString(th.Subtitle.Render("(" + string(p.Domain) + ")"))
	b.WriteString("\n")
	for _, g := range p.Guidelines {
		b.WriteString("- " + g + "\n")
	}
	b.WriteString(p.Summary)

	fmt.Fprintln(w, th.Card.Render(b.String()))
}
