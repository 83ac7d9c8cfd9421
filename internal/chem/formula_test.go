package chem

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParseKnownFormulas(t *testing.T) {
	tests := []struct {
		formula string
		want    Composition
	}{
		{"Al2O3", Composition{"Al": 2, "O": 3}},
		{"KNO3", Composition{"K": 1, "N": 1, "O": 3}},
		{"C6H14O6", Composition{"C": 6, "H": 14, "O": 6}},
		{"KClO4", Composition{"K": 1, "Cl": 1, "O": 4}},
		{"Fe2O3", Composition{"Fe": 2, "O": 3}},
		{"Al", Composition{"Al": 1}},
		// Repeated symbols accumulate
		{"OHO", Composition{"O": 2, "H": 1}},
		{"CH3OH", Composition{"C": 1, "H": 4, "O": 1}},
		// Whitespace is stripped before scanning
		{" KNO3 ", Composition{"K": 1, "N": 1, "O": 3}},
		{"K N O3", Composition{"K": 1, "N": 1, "O": 3}},
	}

	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			got, err := Parse(tt.formula)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.formula, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.formula, got, tt.want)
			}
			for symbol, count := range tt.want {
				if got[symbol] != count {
					t.Errorf("Parse(%q)[%s] = %d, want %d", tt.formula, symbol, got[symbol], count)
				}
			}
		})
	}
}

func TestParseInvalidFormulas(t *testing.T) {
	tests := []struct {
		name    string
		formula string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"unknown element", "Xx2"},
		{"unknown two-letter element", "KNoO3"},
		{"lowercase start", "kNO3"},
		{"parenthesized group", "Ca(NO3)2"},
		{"hydration dot", "CuSO4.5H2O"},
		{"charge suffix", "NH4+"},
		{"digits only", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.formula)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.formula)
			}
			var fe *FormulaError
			if !errors.As(err, &fe) {
				t.Errorf("Parse(%q) returned %T, want *FormulaError", tt.formula, err)
			}
		})
	}
}

func TestCompositionWeight(t *testing.T) {
	comp, err := Parse("KNO3")
	if err != nil {
		t.Fatal(err)
	}
	want := 39.098 + 14.007 + 3*15.999
	if got := comp.Weight(); !closeTo(got, want, 1e-9) {
		t.Errorf("Weight() = %v, want %v", got, want)
	}
}

// genComposition generates small compositions over distinct symbols.
func genComposition() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("C", "K", "Fe", "Al", "Na", "Mg"),
		gen.IntRange(1, 12),
		gen.OneConstOf("H", "O", "Cl", "S", "N", "Ti"),
		gen.IntRange(1, 12),
	).Map(func(values []interface{}) Composition {
		return Composition{
			values[0].(string): values[1].(int),
			values[2].(string): values[3].(int),
		}
	})
}

// formulaString writes a composition back out as a formula, using the
// implicit subscript for count 1.
func formulaString(comp Composition, order []string) string {
	s := ""
	for _, symbol := range order {
		count, ok := comp[symbol]
		if !ok {
			continue
		}
		if count == 1 {
			s += symbol
		} else {
			s += fmt.Sprintf("%s%d", symbol, count)
		}
	}
	return s
}

func TestPropertyFormulaRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	symbols := []string{"C", "K", "Fe", "Al", "Na", "Mg", "H", "O", "Cl", "S", "N", "Ti"}

	properties.Property("formulaString then Parse returns the same composition", prop.ForAll(
		func(comp Composition) bool {
			parsed, err := Parse(formulaString(comp, symbols))
			if err != nil {
				t.Logf("Parse failed for %v: %v", comp, err)
				return false
			}
			if len(parsed) != len(comp) {
				return false
			}
			for symbol, count := range comp {
				if parsed[symbol] != count {
					return false
				}
			}
			return true
		},
		genComposition(),
	))

	properties.Property("molecular weight is strictly positive", prop.ForAll(
		func(comp Composition) bool {
			parsed, err := Parse(formulaString(comp, symbols))
			if err != nil {
				return false
			}
			return parsed.Weight() > 0
		},
		genComposition(),
	))

	properties.TestingRun(t)
}

func closeTo(got, want, tol float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	scale := want
	if scale < 0 {
		scale = -scale
	}
	if scale < 1 {
		scale = 1
	}
	return diff <= tol*scale
}
