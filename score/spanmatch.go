package score

import (
	"github.com/hscells/codiesp"
	"github.com/pkg/errors"
)

// Matches reports whether a predicted span covers a gold span without overrunning it by more than tolerance
// characters on either side.
func Matches(gold, pred codiesp.Span, tolerance int) bool {
	startSpace := gold.Start - pred.Start
	endSpace := pred.End - gold.End
	return startSpace >= 0 && startSpace <= tolerance &&
		endSpace >= 0 && endSpace <= tolerance
}

// SpanMatch scores predicted mentions against gold mentions. A code is a true positive for a document when any of
// its gold references is matched by any prediction of the same code (see Matches). Positive counts use the
// (document, code) deduplicated datasets, while matching uses every entry.
func SpanMatch(gold, pred []codiesp.SpanEntry, opts ...Option) (Metrics, error) {
	o := newOptions(opts...)
	if o.tolerance < 0 {
		return Metrics{}, errors.Wrapf(ErrInvalidInput, "tolerance %d is negative", o.tolerance)
	}

	for i, e := range gold {
		if len(e.Document) == 0 || len(e.Code) == 0 {
			return Metrics{}, errors.Wrapf(ErrInvalidInput, "gold entry %d has no document or code", i)
		}
		if !e.Span.Valid() {
			return Metrics{}, errors.Wrapf(ErrInvalidInput, "gold entry %d has an invalid span [%d,%d]", i, e.Start, e.End)
		}
	}

	var diagnostics codiesp.Diagnostics
	if len(pred) == 0 {
		diagnostics.Add(codiesp.NoPredictions, "there are no predicted codes to score")
	}

	goldCodes := groupSpanCodes(gold)
	predCodes := groupSpanCodes(pred)

	if docs := outside(predCodes, goldCodes); len(docs) > 0 {
		diagnostics.Add(codiesp.PredictionsOutsideGold, "ignoring predictions for documents not in the gold standard", docs...)
	}

	candidates := make(map[codiesp.Key][]codiesp.Span)
	for _, p := range pred {
		candidates[p.Key()] = append(candidates[p.Key()], p.Span)
	}

	references := make(map[string][]codiesp.SpanEntry)
	for _, g := range gold {
		references[g.Document] = append(references[g.Document], g)
	}

	docs := sortedKeys(goldCodes)
	c := make(map[string]counts, len(docs))
	for _, doc := range docs {
		matched := make(map[string]bool)
		for _, g := range references[doc] {
			if matched[g.Code] {
				continue
			}
			for _, p := range candidates[g.Key()] {
				if Matches(g.Span, p, o.tolerance) {
					matched[g.Code] = true
					break
				}
			}
		}
		c[doc] = counts{
			tp:   len(matched),
			gold: len(goldCodes[doc]),
			pred: len(predCodes[doc]),
		}
		o.step()
	}

	return aggregate(docs, c, diagnostics), nil
}

func groupSpanCodes(entries []codiesp.SpanEntry) map[string][]string {
	g := make(map[string][]string)
	for _, e := range entries {
		g[e.Document] = append(g[e.Document], e.Code)
	}
	for doc, codes := range g {
		g[doc] = uniq(codes)
	}
	return g
}
