package mixture

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/obtools/obcalc/internal/chem"
)

func TestSolveBinaryThermite(t *testing.T) {
	// Fe2O3 has OB 0 (3 O vs 2*1.5 demand), Al is deeply negative, so
	// balancing to 0 puts everything on the oxidizer.
	split, err := SolveBinary("Fe2O3", "Al", 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(split.RatioA-100) > 1e-9 || math.Abs(split.RatioB) > 1e-9 {
		t.Errorf("split = %v/%v, want 100/0", split.RatioA, split.RatioB)
	}
}

func TestSolveBinaryReachesTarget(t *testing.T) {
	tests := []struct {
		a, b   string
		target float64
	}{
		{"KClO4", "Al", 0},
		{"KClO4", "Al", -5},
		{"KNO3", "Mg", 0},
		{"KNO3", "C6H14O6", -10},
	}

	for _, tt := range tests {
		split, err := SolveBinary(tt.a, tt.b, tt.target)
		if err != nil {
			t.Fatalf("SolveBinary(%s, %s, %v) failed: %v", tt.a, tt.b, tt.target, err)
		}
		if math.Abs(split.RatioA+split.RatioB-100) > 1e-9 {
			t.Errorf("ratios sum to %v, want 100", split.RatioA+split.RatioB)
		}
		// The solved split must aggregate back to the target OB.
		result, err := Aggregate([]Component{
			{tt.a, split.RatioA},
			{tt.b, split.RatioB},
		})
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(result.Balance-tt.target) > 1e-9 {
			t.Errorf("aggregated OB = %v, want target %v", result.Balance, tt.target)
		}
	}
}

func TestSolveBinaryTargetAtComponent(t *testing.T) {
	al, err := chem.Evaluate("Al")
	if err != nil {
		t.Fatal(err)
	}

	// Target equal to one compound's own OB is a valid 0/100 split.
	split, err := SolveBinary("KClO4", "Al", al.Balance)
	if err != nil {
		t.Fatalf("target at component OB should solve, got %v", err)
	}
	if math.Abs(split.RatioA) > 1e-9 || math.Abs(split.RatioB-100) > 1e-9 {
		t.Errorf("split = %v/%v, want 0/100", split.RatioA, split.RatioB)
	}
}

func TestSolveBinarySameSide(t *testing.T) {
	// Both oxidizers sit above a deeply negative target.
	_, err := SolveBinary("KClO4", "KNO3", -80)
	if !errors.Is(err, ErrSameSide) {
		t.Errorf("SolveBinary same side = %v, want ErrSameSide", err)
	}

	// Both fuels sit below a positive target.
	_, err = SolveBinary("Al", "Mg", 20)
	if !errors.Is(err, ErrSameSide) {
		t.Errorf("SolveBinary same side = %v, want ErrSameSide", err)
	}
}

func TestSolveBinaryEqualBalance(t *testing.T) {
	_, err := SolveBinary("Al", "Al", 0)
	if !errors.Is(err, ErrEqualBalance) {
		t.Errorf("SolveBinary equal OB = %v, want ErrEqualBalance", err)
	}
}

func TestSolveBinaryPropagatesFormulaError(t *testing.T) {
	_, err := SolveBinary("Xx2", "Al", 0)
	var fe *chem.FormulaError
	if !errors.As(err, &fe) {
		t.Errorf("SolveBinary bad formula = %v, want *chem.FormulaError", err)
	}
}

func TestPropertySolveBinarySymmetry(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	oxidizers := gen.OneConstOf("KClO4", "KNO3", "NH4NO3", "BaO2")
	fuels := gen.OneConstOf("Al", "Mg", "C6H14O6", "CH3OH")

	properties.Property("swapping inputs swaps the ratios", prop.ForAll(
		func(ox, fuel string, target float64) bool {
			forward, err := SolveBinary(ox, fuel, target)
			if err != nil {
				// Target outside the bracket; the swapped call must
				// agree that it is unsolvable.
				_, swappedErr := SolveBinary(fuel, ox, target)
				return swappedErr != nil
			}
			swapped, err := SolveBinary(fuel, ox, target)
			if err != nil {
				return false
			}
			return math.Abs(forward.RatioA-swapped.RatioB) < 1e-9 &&
				math.Abs(forward.RatioB-swapped.RatioA) < 1e-9
		},
		oxidizers,
		fuels,
		gen.Float64Range(-40, 10),
	))

	properties.TestingRun(t)
}
