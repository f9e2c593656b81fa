package codiesp

import "testing"

func TestDiagnostics(t *testing.T) {
	var ds Diagnostics
	ds.Add(MissingPredictions, "documents without predictions", "a", "b")
	ds.Add(ZeroF1, "f1 set to zero")

	if !ds.Has(MissingPredictions) || !ds.Has(ZeroF1) || ds.Has(EmptyPredictions) {
		t.Fatalf("unexpected diagnostics %v", ds)
	}
	if s := ds[0].String(); s != "documents without predictions (a, b)" {
		t.Errorf("got %q", s)
	}
	if s := ds[1].String(); s != "f1 set to zero" {
		t.Errorf("got %q", s)
	}
	if ZeroF1.String() != "ZeroF1" {
		t.Errorf("got %q", ZeroF1.String())
	}
}
