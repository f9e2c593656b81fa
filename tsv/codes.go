package tsv

import (
	"github.com/hscells/codiesp"
	"io"
)

// ReadValidCodes reads the first column of a valid codes file.
func ReadValidCodes(r io.Reader, name string) (codiesp.CodeSet, error) {
	rows, err := readRows(r, name, 0)
	if err != nil {
		return nil, err
	}
	codes := make([]string, len(rows))
	for i, row := range rows {
		codes[i] = row.fields[0]
	}
	return codiesp.NewCodeSet(codes...), nil
}

// ReadValidCodesFiles reads the union of the valid codes in each of the files.
func ReadValidCodesFiles(paths ...string) (codiesp.CodeSet, error) {
	valid := make(codiesp.CodeSet)
	for _, path := range paths {
		err := readFile(path, func(r io.Reader, name string) error {
			codes, err := ReadValidCodes(r, name)
			if err != nil {
				return err
			}
			valid = valid.Union(codes)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return valid, nil
}

// ReadCodeGold reads a two column (document, code) gold standard.
func ReadCodeGold(r io.Reader, name string) ([]codiesp.CodeEntry, error) {
	rows, err := readRows(r, name, CodeColumns)
	if err != nil {
		return nil, err
	}
	gold := make([]codiesp.CodeEntry, len(rows))
	for i, row := range rows {
		gold[i] = codiesp.CodeEntry{
			Document: row.fields[0],
			Code:     codiesp.NormaliseCode(row.fields[1]),
		}
	}
	return gold, nil
}

// ReadCodeGoldFile reads a two column gold standard from a file.
func ReadCodeGoldFile(path string) (gold []codiesp.CodeEntry, err error) {
	err = readFile(path, func(r io.Reader, name string) error {
		gold, err = ReadCodeGold(r, name)
		return err
	})
	return
}

// ReadCodePredictions reads two column (document, code) predictions. When valid is not nil, codes not in it are
// removed. Repeated (document, code) predictions are removed, keeping the first, so the order of the file can be
// used as a ranking.
func ReadCodePredictions(r io.Reader, name string, valid codiesp.CodeSet) ([]codiesp.CodeEntry, codiesp.Diagnostics, error) {
	rows, err := readRows(r, name, CodeColumns)
	if err != nil {
		return nil, nil, err
	}

	var diagnostics codiesp.Diagnostics
	pred := make([]codiesp.CodeEntry, 0, len(rows))
	for _, row := range rows {
		e := codiesp.CodeEntry{
			Document: row.fields[0],
			Code:     codiesp.NormaliseCode(row.fields[1]),
		}
		if valid != nil && !valid.Contains(e.Code) {
			continue
		}
		pred = append(pred, e)
	}
	checkPredictions(&diagnostics, len(rows), len(pred))

	return codiesp.UniqueCodes(pred), diagnostics, nil
}

// ReadCodePredictionsFile reads two column predictions from a file.
func ReadCodePredictionsFile(path string, valid codiesp.CodeSet) (pred []codiesp.CodeEntry, diagnostics codiesp.Diagnostics, err error) {
	err = readFile(path, func(r io.Reader, name string) error {
		pred, diagnostics, err = ReadCodePredictions(r, name, valid)
		return err
	})
	return
}

func checkPredictions(diagnostics *codiesp.Diagnostics, read, kept int) {
	switch {
	case read == 0:
		diagnostics.Add(codiesp.EmptyPredictions, "the predictions file is empty")
	case kept == 0:
		diagnostics.Add(codiesp.NoValidPredictions, "none of the predicted codes are considered valid codes")
	}
}
