package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flavor_remover/internal/detect"
	"flavor_remover/internal/style"
	"flavor_remover/internal/tier"
)

func sampleReport() detect.Report {
	return detect.Report{
		HighFrequencyMarkers: []detect.MarkerCount{
			{Marker: "值得注意的是", Count: 2},
			{Marker: "首先", Count: 1},
		},
		MechanicalMatches: []string{"enumeration"},
		RecommendedMode:   tier.Light,
	}
}

func TestDetectionPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Detection(&buf, "a.md", sampleReport(), FormatPretty))

	out := buf.String()
	assert.Contains(t, out, "a.md")
	assert.Contains(t, out, "light")
	assert.Contains(t, out, "2 distinct / 3 total")
	assert.Contains(t, out, "值得注意的是 x2")
	assert.Contains(t, out, "enumeration")
}

func TestDetectionPrettyNoPatterns(t *testing.T) {
	var buf bytes.Buffer
	rep := detect.Report{RecommendedMode: tier.Light}
	require.NoError(t, Detection(&buf, "clean.txt", rep, ""))
	assert.Contains(t, buf.String(), "none")
}

func TestDetectionJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Detection(&buf, "a.md", sampleReport(), FormatJSON))

	var decoded struct {
		Document        string `json:"document"`
		RecommendedMode string `json:"recommended_mode"`
		Markers         []struct {
			Marker string `json:"marker"`
			Count  int    `json:"count"`
		} `json:"high_frequency_markers"`
		Mechanical []string `json:"mechanical_matches"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "a.md", decoded.Document)
	assert.Equal(t, "light", decoded.RecommendedMode)
	require.Len(t, decoded.Markers, 2)
	assert.Equal(t, "值得注意的是", decoded.Markers[0].Marker)
	assert.Equal(t, []string{"enumeration"}, decoded.Mechanical)
}

func TestDetectionUnknownFormat(t *testing.T) {
	err := Detection(&bytes.Buffer{}, "a.md", sampleReport(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, []Result{
		{Source: "a.md", Output: "a.polished.md", Report: sampleReport(), InputBytes: 2048, OutputBytes: 1900},
		{Source: "b.pdf", Err: errors.New("no text layer")},
	})

	out := buf.String()
	assert.Contains(t, out, "a.md")
	assert.Contains(t, out, "a.polished.md")
	assert.Contains(t, out, "2.0 kB")
	assert.Contains(t, out, "no text layer")
	assert.Contains(t, out, "2 document(s), 1 failed")
}

func TestProfileCard(t *testing.T) {
	p, ok := style.NewAdvisor().Profile(style.Tech)
	require.True(t, ok)

	var buf bytes.Buffer
	Profile(&buf, p)
	out := buf.String()
	assert.Contains(t, out, p.Title)
	assert.Contains(t, out, "tech")
	assert.Contains(t, out, p.Guidelines[0])
}

func TestResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Results(&buf, []Result{
		{Source: "a.md", Output: "out/a.md", Report: sampleReport(), InputBytes: 10, OutputBytes: 8},
		{Source: "b.md", Err: errors.New("boom")},
	}, FormatJSON))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "a.md", decoded[0]["source"])
	assert.Equal(t, "out/a.md", decoded[0]["output"])
	assert.NotContains(t, decoded[0], "error")
	assert.Equal(t, "boom", decoded[1]["error"])
}

func TestResultsRejectsUnknownFormat(t *testing.T) {
	require.Error(t, Results(&bytes.Buffer{}, nil, "yaml"))
	require.Error(t, CheckFormat("yaml"))
	require.NoError(t, CheckFormat(""))
}
