// Package score matches predicted codes against a gold standard and aggregates the matches into per-document and
// micro-averaged precision, recall and F1.
package score

import (
	"github.com/hscells/codiesp"
	"math"
	"sort"
)

// DocumentMetrics are the counts and metrics for a single gold document.
// Precision is NaN when the document has no predictions, and F1 is NaN whenever it cannot be computed.
type DocumentMetrics struct {
	Document           string
	TruePositives      int
	GoldPositives      int
	PredictedPositives int
	Precision          float64
	Recall             float64
	F1                 float64
}

// Metrics is the result of scoring a run. Documents are ordered by document id and only contain gold documents.
type Metrics struct {
	Documents          []DocumentMetrics
	TruePositives      int
	GoldPositives      int
	PredictedPositives int
	Precision          float64
	Recall             float64
	F1                 float64
	Diagnostics        codiesp.Diagnostics
}

// Document returns the metrics of a single document.
func (m Metrics) Document(id string) (DocumentMetrics, bool) {
	i := sort.Search(len(m.Documents), func(i int) bool {
		return m.Documents[i].Document >= id
	})
	if i < len(m.Documents) && m.Documents[i].Document == id {
		return m.Documents[i], true
	}
	return DocumentMetrics{}, false
}

// counts are the per-document quantities both scorers produce.
type counts struct {
	tp   int
	gold int
	pred int
}

func ratio(n, d int) float64 {
	if d == 0 {
		return math.NaN()
	}
	return float64(n) / float64(d)
}

func harmonic(p, r float64) float64 {
	if math.IsNaN(p) || math.IsNaN(r) || p+r == 0 {
		return math.NaN()
	}
	return (2 * p * r) / (p + r)
}

// aggregate computes document and micro metrics for the gold documents in docs (which must be sorted).
func aggregate(docs []string, c map[string]counts, diagnostics codiesp.Diagnostics) Metrics {
	m := Metrics{
		Documents: make([]DocumentMetrics, len(docs)),
	}

	var missing []string
	for i, doc := range docs {
		dc := c[doc]
		dm := DocumentMetrics{
			Document:           doc,
			TruePositives:      dc.tp,
			GoldPositives:      dc.gold,
			PredictedPositives: dc.pred,
			Precision:          ratio(dc.tp, dc.pred),
			Recall:             ratio(dc.tp, dc.gold),
		}
		dm.F1 = harmonic(dm.Precision, dm.Recall)
		if dc.pred == 0 {
			missing = append(missing, doc)
		}
		m.Documents[i] = dm

		m.TruePositives += dc.tp
		m.GoldPositives += dc.gold
		m.PredictedPositives += dc.pred
	}

	if len(missing) > 0 {
		diagnostics.Add(codiesp.MissingPredictions,
			"some documents do not have predicted codes, document-wise precision and F-score not computed for them",
			missing...)
	}

	if m.PredictedPositives == 0 {
		diagnostics.Add(codiesp.UndefinedMicro, "no predicted positives in gold documents, micro-average precision set to zero")
	} else {
		m.Precision = float64(m.TruePositives) / float64(m.PredictedPositives)
	}
	if m.GoldPositives == 0 {
		diagnostics.Add(codiesp.UndefinedMicro, "no gold positives, micro-average recall set to zero")
	} else {
		m.Recall = float64(m.TruePositives) / float64(m.GoldPositives)
	}

	// Unlike the document-wise F-score, the global F-score falls back to zero.
	if m.Precision+m.Recall == 0 {
		m.F1 = 0
		diagnostics.Add(codiesp.ZeroF1, "global F1 score automatically set to zero to avoid division by zero")
	} else {
		m.F1 = (2 * m.Precision * m.Recall) / (m.Precision + m.Recall)
	}

	m.Diagnostics = diagnostics
	return m
}

// outside lists the documents of predicted that are not gold documents.
func outside(predicted map[string][]string, gold map[string][]string) []string {
	var docs []string
	for doc := range predicted {
		if _, ok := gold[doc]; !ok {
			docs = append(docs, doc)
		}
	}
	sort.Strings(docs)
	return docs
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
