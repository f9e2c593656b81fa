package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter outputs one row per clinical case followed by a "micro" row.
func CSVFormatter(r Report) (string, error) {
	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	err := w.Write([]string{"Document", "TP", "GoldPositives", "PredictedPositives", "Precision", "Recall", "F1"})
	if err != nil {
		return "", err
	}

	m := r.Metrics
	record := func(doc string, tp, gold, pred int, p, rec, f1 float64) []string {
		return []string{
			doc,
			strconv.Itoa(tp),
			strconv.Itoa(gold),
			strconv.Itoa(pred),
			strconv.FormatFloat(p, 'f', -1, 64),
			strconv.FormatFloat(rec, 'f', -1, 64),
			strconv.FormatFloat(f1, 'f', -1, 64),
		}
	}
	for _, d := range m.Documents {
		if err := w.Write(record(d.Document, d.TruePositives, d.GoldPositives, d.PredictedPositives, d.Precision, d.Recall, d.F1)); err != nil {
			return "", err
		}
	}
	if err := w.Write(record("micro", m.TruePositives, m.GoldPositives, m.PredictedPositives, m.Precision, m.Recall, m.F1)); err != nil {
		return "", err
	}
	w.Flush()
	return b.String(), w.Error()
}
