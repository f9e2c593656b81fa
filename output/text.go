package output

import (
	"fmt"
	"github.com/hscells/codiesp/score"
	"strings"
)

const (
	rule       = "-----------------------------------------------------"
	doubleRule = "__________________________________________________________"
)

// TextFormatter writes a table per metric with one row per clinical case, followed by the micro-averages.
func TextFormatter(r Report) (string, error) {
	var b strings.Builder
	m := r.Metrics

	section := func(title, name string, value func(d score.DocumentMetrics) float64, micro float64) {
		fmt.Fprintf(&b, "\n%s\nClinical case name\t\t\t%s\n%s\n", rule, title, rule)
		for _, d := range m.Documents {
			fmt.Fprintf(&b, "%s\t\t%s\n%s\n", d.Document, Round(value(d)), rule)
		}
		fmt.Fprintf(&b, "\nMicro-average %s = %s\n\n", name, Round(micro))
	}

	section("Precision", "precision", func(d score.DocumentMetrics) float64 { return d.Precision }, m.Precision)
	section("Recall", "recall", func(d score.DocumentMetrics) float64 { return d.Recall }, m.Recall)
	section("F-score", "F-score", func(d score.DocumentMetrics) float64 { return d.F1 }, m.F1)

	fmt.Fprintf(&b, "\n%s\n\nMICRO-AVERAGE STATISTICS:\n", doubleRule)
	fmt.Fprintf(&b, "\nMicro-average precision = %s\n", Round(m.Precision))
	fmt.Fprintf(&b, "\nMicro-average recall = %s\n", Round(m.Recall))
	fmt.Fprintf(&b, "\nMicro-average F-score = %s\n\n", Round(m.F1))

	if r.MAP != nil {
		fmt.Fprintf(&b, "\nMAP estimate: %s\n\n", Round(*r.MAP))
	}
	if r.Summary {
		fmt.Fprintf(&b, "\n%s\n", SummaryLine(m))
	}
	return b.String(), nil
}
