package tsv

import (
	"github.com/hscells/codiesp"
	"github.com/pkg/errors"
	"io"
	"strings"
)

// ReadSpanGold reads a five column gold standard: document, label, code, reference text and offsets.
// Offsets of discontinuous references are collapsed into a single span.
func ReadSpanGold(r io.Reader, name string) ([]codiesp.SpanEntry, error) {
	rows, err := readRows(r, name, SpanGoldColumns)
	if err != nil {
		return nil, err
	}
	gold := make([]codiesp.SpanEntry, len(rows))
	for i, row := range rows {
		s, err := codiesp.ParseOffsets(row.fields[4])
		if err != nil {
			return nil, &FormatError{Name: name, Line: row.line, Err: err}
		}
		gold[i] = codiesp.SpanEntry{
			Document: row.fields[0],
			Code:     codiesp.NormaliseCode(row.fields[2]),
			Span:     s,
		}
	}
	return gold, nil
}

// ReadSpanGoldFile reads a five column gold standard from a file.
func ReadSpanGoldFile(path string) (gold []codiesp.SpanEntry, err error) {
	err = readFile(path, func(r io.Reader, name string) error {
		gold, err = ReadSpanGold(r, name)
		return err
	})
	return
}

// ReadSpanPredictions reads four column predictions: document, "start end", label and code. When valid is not
// nil, codes not in it are removed. Repeated predictions are kept since each may match a different reference.
func ReadSpanPredictions(r io.Reader, name string, valid codiesp.CodeSet) ([]codiesp.SpanEntry, codiesp.Diagnostics, error) {
	rows, err := readRows(r, name, SpanPredictionColumns)
	if err != nil {
		return nil, nil, err
	}

	var diagnostics codiesp.Diagnostics
	pred := make([]codiesp.SpanEntry, 0, len(rows))
	for _, row := range rows {
		code := codiesp.NormaliseCode(row.fields[3])
		if valid != nil && !valid.Contains(code) {
			continue
		}
		if n := len(strings.Fields(row.fields[1])); n != 2 {
			return nil, nil, &FormatError{Name: name, Line: row.line, Err: errors.Errorf("prediction position %q must be a start and an end offset", row.fields[1])}
		}
		s, err := codiesp.ParseOffsets(row.fields[1])
		if err != nil {
			return nil, nil, &FormatError{Name: name, Line: row.line, Err: err}
		}
		pred = append(pred, codiesp.SpanEntry{
			Document: row.fields[0],
			Code:     code,
			Span:     s,
		})
	}
	checkPredictions(&diagnostics, len(rows), len(pred))

	return pred, diagnostics, nil
}

// ReadSpanPredictionsFile reads four column predictions from a file.
func ReadSpanPredictionsFile(path string, valid codiesp.CodeSet) (pred []codiesp.SpanEntry, diagnostics codiesp.Diagnostics, err error) {
	err = readFile(path, func(r io.Reader, name string) error {
		pred, diagnostics, err = ReadSpanPredictions(r, name, valid)
		return err
	})
	return
}
