package chem

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// elementTokenRegex matches one element token: an uppercase letter,
// optional lowercase letters, optional subscript digits ("Al2", "O").
var elementTokenRegex = regexp.MustCompile(`([A-Z][a-z]*)(\d*)`)

// FormulaError reports a formula that could not be parsed.
type FormulaError struct {
	Formula string
	Reason  string
}

func (e *FormulaError) Error() string {
	return fmt.Sprintf("invalid formula %q: %s", e.Formula, e.Reason)
}

// Composition maps element symbols to their atom counts in a formula.
// Counts are always >= 1; a symbol with no atoms is never stored.
type Composition map[string]int

// Parse scans a chemical formula string into a Composition.
//
// The grammar is a flat sequence of element tokens: uppercase letter,
// optional lowercase letters, optional count digits (absent digits mean
// 1). Repeated symbols accumulate, so "OHO" yields O:2 H:1. Whitespace
// is stripped before scanning. Parsing is strict: any span not covered
// by an element token (parentheses, hydration dots, charges) fails, as
// does an empty string or a symbol missing from the element table.
func Parse(formula string) (Composition, error) {
	stripped := strings.Join(strings.Fields(formula), "")
	if stripped == "" {
		return nil, &FormulaError{Formula: formula, Reason: "formula is empty"}
	}

	matches := elementTokenRegex.FindAllStringSubmatchIndex(stripped, -1)
	if matches == nil {
		return nil, &FormulaError{Formula: formula, Reason: "no element tokens found"}
	}

	comp := make(Composition)
	prevEnd := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start != prevEnd {
			return nil, &FormulaError{
				Formula: formula,
				Reason:  fmt.Sprintf("unexpected characters %q", stripped[prevEnd:start]),
			}
		}
		prevEnd = end

		symbol := stripped[m[2]:m[3]]
		if _, ok := AtomicWeight(symbol); !ok {
			return nil, &FormulaError{
				Formula: formula,
				Reason:  fmt.Sprintf("unknown element %q", symbol),
			}
		}

		count := 1
		if m[4] != m[5] {
			n, err := strconv.Atoi(stripped[m[4]:m[5]])
			if err != nil || n < 1 {
				return nil, &FormulaError{
					Formula: formula,
					Reason:  fmt.Sprintf("invalid atom count for %q", symbol),
				}
			}
			count = n
		}
		comp[symbol] += count
	}

	if prevEnd != len(stripped) {
		return nil, &FormulaError{
			Formula: formula,
			Reason:  fmt.Sprintf("unexpected characters %q", stripped[prevEnd:]),
		}
	}

	return comp, nil
}

// Weight returns the molecular weight in g/mol: the sum of atomic
// weight times atom count over every element in the composition.
func (c Composition) Weight() float64 {
	mw := 0.0
	for symbol, count := range c {
		w, _ := AtomicWeight(symbol)
		mw += w * float64(count)
	}
	return mw
}
