package codiesp

import (
	"fmt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"strconv"
	"strings"
)

// NormaliseCode puts a code into the form used for comparison: NFKC normalised, trimmed and lowercase.
func NormaliseCode(code string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(norm.NFKC.String(code)))
}

// ParseOffsets parses a whitespace separated list of start/end offset pairs, e.g. "12 20 45 50".
// Discontinuous references are collapsed into one span from the first start to the last end, so the text
// between the parts is considered part of the reference.
func ParseOffsets(s string) (Span, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 || len(fields)%2 != 0 {
		return Span{}, fmt.Errorf("offsets %q must contain one or more start/end pairs", s)
	}
	start, err := strconv.Atoi(fields[0])
	if err != nil {
		return Span{}, fmt.Errorf("start offset %q is not an integer", fields[0])
	}
	end, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return Span{}, fmt.Errorf("end offset %q is not an integer", fields[len(fields)-1])
	}
	for _, f := range fields[1 : len(fields)-1] {
		if _, err := strconv.Atoi(f); err != nil {
			return Span{}, fmt.Errorf("offset %q is not an integer", f)
		}
	}
	span := Span{Start: start, End: end}
	if !span.Valid() {
		return Span{}, fmt.Errorf("offsets %q do not describe a valid span", s)
	}
	return span, nil
}
