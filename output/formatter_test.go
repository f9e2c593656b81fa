package output_test

import (
	"encoding/json"
	"github.com/hscells/codiesp"
	"github.com/hscells/codiesp/output"
	"github.com/hscells/codiesp/score"
	"math"
	"strings"
	"testing"
)

func metrics(t *testing.T) score.Metrics {
	gold := []codiesp.CodeEntry{
		{Document: "doc1", Code: "e10"},
		{Document: "doc1", Code: "e11"},
		{Document: "doc2", Code: "e20"},
		{Document: "doc3", Code: "e30"},
	}
	pred := []codiesp.CodeEntry{
		{Document: "doc1", Code: "e10"},
		{Document: "doc2", Code: "e99"},
	}
	m, err := score.SetMatch(gold, pred)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestRound(t *testing.T) {
	for v, want := range map[float64]string{
		1:          "1.0",
		0:          "0.0",
		0.5:        "0.5",
		1.0 / 3.0:  "0.333",
		2.0 / 3.0:  "0.667",
		0.4:        "0.4",
		math.NaN(): "nan",
	} {
		if got := output.Round(v); got != want {
			t.Errorf("Round(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestSummaryLine(t *testing.T) {
	m := metrics(t)
	if got := output.SummaryLine(m); got != "0.5|0.25|0.333" {
		t.Errorf("got %q", got)
	}
}

func TestTextFormatter(t *testing.T) {
	mp := 0.25
	s, err := output.TextFormatter(output.Report{Metrics: metrics(t), MAP: &mp, Summary: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Clinical case name\t\t\tPrecision",
		"Clinical case name\t\t\tRecall",
		"Clinical case name\t\t\tF-score",
		"doc1\t\t1.0\n",
		"doc3\t\tnan\n",
		"Micro-average precision = 0.5",
		"Micro-average recall = 0.25",
		"Micro-average F-score = 0.333",
		"MICRO-AVERAGE STATISTICS:",
		"MAP estimate: 0.25",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("report does not contain %q", want)
		}
	}
	if !strings.HasSuffix(s, "\n0.5|0.25|0.333\n") {
		t.Error("report does not end with the summary line")
	}
}

func TestJSONFormatter(t *testing.T) {
	s, err := output.JSONFormatter(output.Report{RunID: "run", Subtask: "D", Tolerance: -1, Metrics: metrics(t)})
	if err != nil {
		t.Fatal(err)
	}

	var v struct {
		RunID     string   `json:"run_id"`
		Tolerance *int     `json:"tolerance"`
		MAP       *float64 `json:"map"`
		Micro     struct {
			Precision *float64 `json:"precision"`
		} `json:"micro"`
		Documents []struct {
			Document  string   `json:"document"`
			Precision *float64 `json:"precision"`
		} `json:"documents"`
		Diagnostics []struct {
			Kind string `json:"kind"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatal(err)
	}
	if v.RunID != "run" || v.Tolerance != nil || v.MAP != nil {
		t.Errorf("unexpected header %+v", v)
	}
	if v.Micro.Precision == nil || *v.Micro.Precision != 0.5 {
		t.Errorf("unexpected micro precision %v", v.Micro.Precision)
	}
	if len(v.Documents) != 3 || v.Documents[2].Document != "doc3" || v.Documents[2].Precision != nil {
		t.Errorf("undefined precision should be null: %+v", v.Documents)
	}
	if len(v.Diagnostics) == 0 || v.Diagnostics[0].Kind != codiesp.MissingPredictions.String() {
		t.Errorf("unexpected diagnostics %+v", v.Diagnostics)
	}
}

func TestCSVFormatter(t *testing.T) {
	s, err := output.CSVFormatter(output.Report{Metrics: metrics(t)})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	if lines[1] != "doc1,1,2,1,1,0.5,0.6666666666666666" {
		t.Errorf("got %q", lines[1])
	}
	if !strings.HasPrefix(lines[4], "micro,1,4,2,0.5,0.25,") {
		t.Errorf("got %q", lines[4])
	}
}

func TestFormatters(t *testing.T) {
	for _, name := range []string{"text", "json", "csv"} {
		if _, ok := output.Formatters[name]; !ok {
			t.Errorf("formatter %s is not registered", name)
		}
	}
}
