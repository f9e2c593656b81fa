// Package output provides different formats for the results of an evaluation.
package output

import (
	"github.com/hscells/codiesp/score"
	"math"
	"strconv"
	"strings"
)

// Report is everything that is known about an evaluation once it has been scored.
type Report struct {
	RunID   string
	Subtask string
	// Tolerance is only meaningful for span-matched subtasks; it is negative otherwise.
	Tolerance int
	Metrics   score.Metrics
	// MAP is nil unless mean average precision was computed.
	MAP *float64
	// Summary adds a precision|recall|f1 line to the text format.
	Summary bool
}

// Formatter renders a report.
type Formatter func(r Report) (string, error)

// Formatters maps the name of an output format to its formatter.
var Formatters = map[string]Formatter{
	"text": TextFormatter,
	"json": JSONFormatter,
	"csv":  CSVFormatter,
}

// Round formats v rounded to three decimals, printing NaN as "nan".
func Round(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	s := strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// SummaryLine is the machine readable precision|recall|f1 line.
func SummaryLine(m score.Metrics) string {
	return Round(m.Precision) + "|" + Round(m.Recall) + "|" + Round(m.F1)
}
