package eval

import (
	"github.com/hscells/codiesp"
	"github.com/hscells/trecresults"
)

// QrelsFromCodes converts gold codes into relevance assessments, one topic per document. Every gold code is relevant.
func QrelsFromCodes(gold []codiesp.CodeEntry) trecresults.QrelsFile {
	q := make(map[string]trecresults.Qrels)
	for _, e := range gold {
		if _, ok := q[e.Document]; !ok {
			q[e.Document] = make(trecresults.Qrels)
		}
		q[e.Document][e.Code] = &trecresults.Qrel{
			Topic:     e.Document,
			Iteration: "0",
			DocId:     e.Code,
			Score:     1,
		}
	}
	return trecresults.QrelsFile{Qrels: q}
}

// RunFromCodes converts predicted codes into a run. Codes are ranked in the order they appear; a code predicted more
// than once for a document keeps its first rank.
func RunFromCodes(pred []codiesp.CodeEntry, runName string) trecresults.ResultFile {
	r := make(map[string]trecresults.ResultList)
	for _, e := range codiesp.UniqueCodes(pred) {
		rank := int64(len(r[e.Document]) + 1)
		r[e.Document] = append(r[e.Document], &trecresults.Result{
			Topic:     e.Document,
			Iteration: "Q0",
			DocId:     e.Code,
			Rank:      rank,
			Score:     10,
			RunName:   runName,
		})
	}
	return trecresults.ResultFile{Results: r}
}
