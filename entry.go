// Package codiesp contains the data model shared by the CodiEsp evaluation tools: gold and predicted code entries,
// mention spans, valid code sets and the diagnostics produced while loading and scoring them.
package codiesp

import (
	"sort"
)

// Key identifies a code assigned to a document. A key counts once no matter how many times it appears in a dataset.
type Key struct {
	Document string
	Code     string
}

// CodeEntry is a (document, code) pair used by the classification subtasks.
type CodeEntry struct {
	Document string
	Code     string
}

// Key returns the (document, code) key of the entry.
func (e CodeEntry) Key() Key {
	return Key{Document: e.Document, Code: e.Code}
}

// SpanEntry is a single annotated or predicted mention of a code in a document.
// Several span entries may share the same key when a code is referenced more than once.
type SpanEntry struct {
	Document string
	Code     string
	Span
}

// Key returns the (document, code) key of the entry.
func (e SpanEntry) Key() Key {
	return Key{Document: e.Document, Code: e.Code}
}

// Span is a continuous character range in a document.
type Span struct {
	Start int
	End   int
}

// Valid reports whether the span has a non-negative start and does not end before it starts.
func (s Span) Valid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// CodeSet is a set of normalised codes.
type CodeSet map[string]struct{}

// NewCodeSet creates a code set, normalising each of the codes.
func NewCodeSet(codes ...string) CodeSet {
	s := make(CodeSet, len(codes))
	for _, code := range codes {
		s[NormaliseCode(code)] = struct{}{}
	}
	return s
}

// Contains reports whether the (already normalised) code is in the set.
func (s CodeSet) Contains(code string) bool {
	_, ok := s[code]
	return ok
}

// Union returns a new set containing the codes of s and all others.
func (s CodeSet) Union(others ...CodeSet) CodeSet {
	u := make(CodeSet, len(s))
	for code := range s {
		u[code] = struct{}{}
	}
	for _, o := range others {
		for code := range o {
			u[code] = struct{}{}
		}
	}
	return u
}

// UniqueCodes deduplicates entries by key, keeping the first occurrence of each key.
func UniqueCodes(entries []CodeEntry) []CodeEntry {
	seen := make(map[Key]struct{}, len(entries))
	unique := make([]CodeEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Key()]; ok {
			continue
		}
		seen[e.Key()] = struct{}{}
		unique = append(unique, e)
	}
	return unique
}

// Documents returns the sorted, distinct document ids of the keys.
func Documents(keys []Key) []string {
	seen := make(map[string]struct{})
	var docs []string
	for _, k := range keys {
		if _, ok := seen[k.Document]; !ok {
			seen[k.Document] = struct{}{}
			docs = append(docs, k.Document)
		}
	}
	sort.Strings(docs)
	return docs
}
