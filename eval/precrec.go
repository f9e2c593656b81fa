package eval

import (
	"fmt"
	"github.com/hscells/trecresults"
)

type numRel struct{}

// PrecisionAtK is the fraction of the top K retrieved documents that are relevant.
type PrecisionAtK struct {
	K int
}

// NumRel is the number of relevant documents.
var NumRel = numRel{}

func relevant(qrels trecresults.Qrels, docID string) bool {
	qrel, ok := qrels[docID]
	return ok && qrel.Score > 0
}

func (numRel) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	n := 0.0
	for _, qrel := range qrels {
		if qrel.Score > 0 {
			n++
		}
	}
	return n
}

func (numRel) Name() string {
	return "NumRel"
}

func (p PrecisionAtK) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	if p.K <= 0 {
		return 0
	}
	n := 0.0
	for i, result := range *results {
		if i >= p.K {
			break
		}
		if relevant(qrels, result.DocId) {
			n++
		}
	}
	return n / float64(p.K)
}

func (p PrecisionAtK) Name() string {
	return fmt.Sprintf("P@%d", p.K)
}
