package output

import (
	"encoding/json"
	"math"
)

type jsonMetrics struct {
	Document           string   `json:"document,omitempty"`
	TruePositives      int      `json:"true_positives"`
	GoldPositives      int      `json:"gold_positives"`
	PredictedPositives int      `json:"predicted_positives"`
	Precision          *float64 `json:"precision"`
	Recall             *float64 `json:"recall"`
	F1                 *float64 `json:"f1"`
}

type jsonDiagnostic struct {
	Kind      string   `json:"kind"`
	Message   string   `json:"message"`
	Documents []string `json:"documents,omitempty"`
}

type jsonReport struct {
	RunID       string           `json:"run_id,omitempty"`
	Subtask     string           `json:"subtask,omitempty"`
	Tolerance   *int             `json:"tolerance,omitempty"`
	Micro       jsonMetrics      `json:"micro"`
	MAP         *float64         `json:"map,omitempty"`
	Documents   []jsonMetrics    `json:"documents"`
	Diagnostics []jsonDiagnostic `json:"diagnostics,omitempty"`
}

// number returns nil for NaN, which JSON cannot represent.
func number(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// JSONFormatter outputs the report in a JSON format. Undefined values are null.
func JSONFormatter(r Report) (string, error) {
	m := r.Metrics
	j := jsonReport{
		RunID:   r.RunID,
		Subtask: r.Subtask,
		Micro: jsonMetrics{
			TruePositives:      m.TruePositives,
			GoldPositives:      m.GoldPositives,
			PredictedPositives: m.PredictedPositives,
			Precision:          number(m.Precision),
			Recall:             number(m.Recall),
			F1:                 number(m.F1),
		},
		Documents: make([]jsonMetrics, len(m.Documents)),
	}
	if r.Tolerance >= 0 {
		t := r.Tolerance
		j.Tolerance = &t
	}
	if r.MAP != nil {
		j.MAP = number(*r.MAP)
	}
	for i, d := range m.Documents {
		j.Documents[i] = jsonMetrics{
			Document:           d.Document,
			TruePositives:      d.TruePositives,
			GoldPositives:      d.GoldPositives,
			PredictedPositives: d.PredictedPositives,
			Precision:          number(d.Precision),
			Recall:             number(d.Recall),
			F1:                 number(d.F1),
		}
	}
	for _, d := range m.Diagnostics {
		j.Diagnostics = append(j.Diagnostics, jsonDiagnostic{
			Kind:      d.Kind.String(),
			Message:   d.Message,
			Documents: d.Documents,
		})
	}

	v, err := json.MarshalIndent(j, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}
