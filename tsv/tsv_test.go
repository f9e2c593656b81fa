package tsv_test

import (
	"errors"
	"github.com/hscells/codiesp"
	"github.com/hscells/codiesp/tsv"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCodeGold(t *testing.T) {
	gold, err := tsv.ReadCodeGold(strings.NewReader("doc1\tR69\ndoc1\tN39.0\n\ndoc2\tBW03ZZZ\r\n"), "gold.tsv")
	if err != nil {
		t.Fatal(err)
	}
	want := []codiesp.CodeEntry{
		{Document: "doc1", Code: "r69"},
		{Document: "doc1", Code: "n39.0"},
		{Document: "doc2", Code: "bw03zzz"},
	}
	if len(gold) != len(want) {
		t.Fatalf("got %d entries, want %d", len(gold), len(want))
	}
	for i := range want {
		if gold[i] != want[i] {
			t.Errorf("entry %d = %v, want %v", i, gold[i], want[i])
		}
	}
}

func TestReadCodeGoldColumns(t *testing.T) {
	_, err := tsv.ReadCodeGold(strings.NewReader("doc1\tr69\ndoc1\tr69\textra\n"), "gold.tsv")
	var fe *tsv.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected a format error, got %v", err)
	}
	if fe.Line != 2 || fe.Want != 2 || fe.Got != 3 {
		t.Errorf("unexpected format error %+v", fe)
	}
}

func TestReadCodePredictions(t *testing.T) {
	valid := codiesp.NewCodeSet("r69", "n39.0")
	pred, diagnostics, err := tsv.ReadCodePredictions(strings.NewReader("doc1\tN39.0\ndoc1\tR69\ndoc1\tn39.0\ndoc2\tzzz\n"), "pred.tsv", valid)
	if err != nil {
		t.Fatal(err)
	}
	if len(diagnostics) != 0 {
		t.Errorf("unexpected diagnostics %v", diagnostics)
	}
	if len(pred) != 2 || pred[0].Code != "n39.0" || pred[1].Code != "r69" {
		t.Errorf("unexpected predictions %v", pred)
	}
}

func TestReadCodePredictionsWarnings(t *testing.T) {
	_, diagnostics, err := tsv.ReadCodePredictions(strings.NewReader(""), "pred.tsv", codiesp.NewCodeSet("r69"))
	if err != nil {
		t.Fatal(err)
	}
	if !diagnostics.Has(codiesp.EmptyPredictions) || diagnostics.Has(codiesp.NoValidPredictions) {
		t.Errorf("empty file: diagnostics = %v", diagnostics)
	}

	pred, diagnostics, err := tsv.ReadCodePredictions(strings.NewReader("doc1\tzzz\n"), "pred.tsv", codiesp.NewCodeSet("r69"))
	if err != nil {
		t.Fatal(err)
	}
	if len(pred) != 0 || !diagnostics.Has(codiesp.NoValidPredictions) {
		t.Errorf("invalid codes: pred = %v, diagnostics = %v", pred, diagnostics)
	}
}

func TestReadSpanGold(t *testing.T) {
	in := "S0004-06142005000900016-1\tDIAGNOSTICO\tN44.8\tdolor testicular\t1235 1251\n" +
		"S0004-06142005000900016-1\tPROCEDIMIENTO\tBW03ZZZ\tradiografía de tórax\t100 111 130 135\n"
	gold, err := tsv.ReadSpanGold(strings.NewReader(in), "gold.tsv")
	if err != nil {
		t.Fatal(err)
	}
	if len(gold) != 2 {
		t.Fatalf("got %d entries", len(gold))
	}
	if gold[0].Code != "n44.8" || gold[0].Start != 1235 || gold[0].End != 1251 {
		t.Errorf("entry 0 = %+v", gold[0])
	}
	if gold[1].Code != "bw03zzz" || gold[1].Start != 100 || gold[1].End != 135 {
		t.Errorf("entry 1 = %+v", gold[1])
	}
}

func TestReadSpanGoldBadOffsets(t *testing.T) {
	_, err := tsv.ReadSpanGold(strings.NewReader("doc\tDIAGNOSTICO\tr69\tfiebre\t12\n"), "gold.tsv")
	var fe *tsv.FormatError
	if !errors.As(err, &fe) || fe.Line != 1 {
		t.Fatalf("expected a format error on line 1, got %v", err)
	}

	_, err = tsv.ReadSpanGold(strings.NewReader("doc\tDIAGNOSTICO\tr69\t12 20\n"), "gold.tsv")
	if !errors.As(err, &fe) || fe.Want != tsv.SpanGoldColumns {
		t.Fatalf("expected a column count error, got %v", err)
	}
}

func TestReadSpanPredictions(t *testing.T) {
	in := "doc\t12 20\tDIAGNOSTICO\tR69\n" +
		"doc\t12 20\tDIAGNOSTICO\tR69\n" +
		"doc\t30 40\tPROCEDIMIENTO\tzzz\n"
	pred, diagnostics, err := tsv.ReadSpanPredictions(strings.NewReader(in), "pred.tsv", codiesp.NewCodeSet("r69"))
	if err != nil {
		t.Fatal(err)
	}
	if len(diagnostics) != 0 {
		t.Errorf("unexpected diagnostics %v", diagnostics)
	}
	if len(pred) != 2 {
		t.Fatalf("got %d predictions, want 2", len(pred))
	}
	if pred[0].Start != 12 || pred[0].End != 20 || pred[0].Code != "r69" {
		t.Errorf("prediction 0 = %+v", pred[0])
	}

	pred, _, err = tsv.ReadSpanPredictions(strings.NewReader(in), "pred.tsv", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(pred) != 3 {
		t.Errorf("without valid codes got %d predictions, want 3", len(pred))
	}

	_, _, err = tsv.ReadSpanPredictions(strings.NewReader("doc\t12 20 30 40\tDIAGNOSTICO\tr69\n"), "pred.tsv", nil)
	var fe *tsv.FormatError
	if !errors.As(err, &fe) {
		t.Errorf("expected a format error for a discontinuous prediction, got %v", err)
	}
}

func TestReadValidCodesFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "codiesp")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	d := filepath.Join(dir, "codes_d.tsv")
	p := filepath.Join(dir, "codes_p.tsv")
	if err := ioutil.WriteFile(d, []byte("R69\tSignos y síntomas\nN39.0\tInfección\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(p, []byte("BW03ZZZ\tRadiografía\n"), 0644); err != nil {
		t.Fatal(err)
	}

	valid, err := tsv.ReadValidCodesFiles(d, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(valid) != 3 || !valid.Contains("r69") || !valid.Contains("bw03zzz") {
		t.Errorf("unexpected valid codes %v", valid)
	}

	if _, err := tsv.ReadValidCodesFiles(filepath.Join(dir, "missing.tsv")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
