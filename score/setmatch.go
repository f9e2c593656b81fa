package score

import (
	"github.com/hscells/codiesp"
	"github.com/pkg/errors"
	"github.com/xtgo/set"
	"sort"
)

// SetMatch scores predicted codes against gold codes by exact match. Both datasets are deduplicated by
// (document, code) first. Only documents present in the gold standard are scored.
func SetMatch(gold, pred []codiesp.CodeEntry, opts ...Option) (Metrics, error) {
	o := newOptions(opts...)

	for i, e := range gold {
		if len(e.Document) == 0 || len(e.Code) == 0 {
			return Metrics{}, errors.Wrapf(ErrInvalidInput, "gold entry %d has no document or code", i)
		}
	}

	var diagnostics codiesp.Diagnostics
	if len(pred) == 0 {
		diagnostics.Add(codiesp.NoPredictions, "there are no predicted codes to score")
	}

	goldCodes := groupCodes(gold)
	predCodes := groupCodes(pred)

	if docs := outside(predCodes, goldCodes); len(docs) > 0 {
		diagnostics.Add(codiesp.PredictionsOutsideGold, "ignoring predictions for documents not in the gold standard", docs...)
	}

	docs := sortedKeys(goldCodes)
	c := make(map[string]counts, len(docs))
	for _, doc := range docs {
		g, p := goldCodes[doc], predCodes[doc]
		c[doc] = counts{
			tp:   intersect(g, p),
			gold: len(g),
			pred: len(p),
		}
		o.step()
	}

	return aggregate(docs, c, diagnostics), nil
}

// groupCodes groups the distinct codes of each document into sorted slices.
func groupCodes(entries []codiesp.CodeEntry) map[string][]string {
	g := make(map[string][]string)
	for _, e := range entries {
		g[e.Document] = append(g[e.Document], e.Code)
	}
	for doc, codes := range g {
		g[doc] = uniq(codes)
	}
	return g
}

// uniq sorts codes and removes duplicates in place.
func uniq(codes []string) []string {
	sort.Strings(codes)
	return codes[:set.Uniq(sort.StringSlice(codes))]
}

// intersect returns the size of the intersection of two sorted, duplicate-free slices.
func intersect(a, b []string) int {
	x := make([]string, 0, len(a)+len(b))
	x = append(x, a...)
	x = append(x, b...)
	return set.Inter(sort.StringSlice(x), len(a))
}
