package codiesp

import (
	"fmt"
	"strings"
)

// DiagnosticKind classifies a non-fatal condition found while loading or scoring a run.
type DiagnosticKind uint8

const (
	// EmptyPredictions indicates the predictions file contained no rows.
	EmptyPredictions DiagnosticKind = iota
	// NoValidPredictions indicates no predicted code survived filtering against the valid codes.
	NoValidPredictions
	// NoPredictions indicates the scorer was given zero predictions.
	NoPredictions
	// MissingPredictions indicates gold documents that have no predictions; their precision and F1 are undefined.
	MissingPredictions
	// PredictionsOutsideGold indicates predicted documents that are not in the gold standard and were ignored.
	PredictionsOutsideGold
	// UndefinedMicro indicates a micro-average denominator of zero; the value was reported as zero.
	UndefinedMicro
	// ZeroF1 indicates global precision and recall were both zero, so F1 was set to zero.
	ZeroF1
)

func (k DiagnosticKind) String() string {
	switch k {
	case EmptyPredictions:
		return "EmptyPredictions"
	case NoValidPredictions:
		return "NoValidPredictions"
	case NoPredictions:
		return "NoPredictions"
	case MissingPredictions:
		return "MissingPredictions"
	case PredictionsOutsideGold:
		return "PredictionsOutsideGold"
	case UndefinedMicro:
		return "UndefinedMicro"
	case ZeroF1:
		return "ZeroF1"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", uint8(k))
}

// Diagnostic is a warning-level record. It never aborts a run.
type Diagnostic struct {
	Kind      DiagnosticKind
	Message   string
	Documents []string
}

func (d Diagnostic) String() string {
	if len(d.Documents) == 0 {
		return d.Message
	}
	return fmt.Sprintf("%s (%s)", d.Message, strings.Join(d.Documents, ", "))
}

// Diagnostics is an ordered list of diagnostics.
type Diagnostics []Diagnostic

// Add appends a diagnostic of the given kind.
func (ds *Diagnostics) Add(kind DiagnosticKind, message string, documents ...string) {
	*ds = append(*ds, Diagnostic{Kind: kind, Message: message, Documents: documents})
}

// Has reports whether a diagnostic of the given kind is present.
func (ds Diagnostics) Has(kind DiagnosticKind) bool {
	for _, d := range ds {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
