package mixture

import (
	"errors"
	"fmt"

	"github.com/obtools/obcalc/internal/chem"
)

var (
	// ErrSameSide means both compounds sit strictly on the same side of
	// the target oxygen balance, so no positive mass split can reach it.
	ErrSameSide = errors.New("both components lie on the same side of the target oxygen balance")
	// ErrEqualBalance means the two compounds have the same oxygen
	// balance, leaving the mixing ratio undefined.
	ErrEqualBalance = errors.New("components have equal oxygen balance")
)

// Split is the solved mass split between two compounds. RatioA and
// RatioB are mass percentages summing to 100.
type Split struct {
	A, B   *chem.Compound
	Target float64
	RatioA float64
	RatioB float64
}

// SolveBinary computes the mass split between two compounds whose
// mixture reaches the target oxygen balance. OB% is linear in mass
// fraction, so the split is the exact solution of
//
//	x*obA + (1-x)*obB = target  =>  x = (target - obB) / (obA - obB)
//
// A target equal to one compound's own balance yields a 100/0 split.
// Formula errors propagate; ErrSameSide and ErrEqualBalance report the
// two unsolvable configurations.
func SolveBinary(formulaA, formulaB string, target float64) (*Split, error) {
	a, err := chem.Evaluate(formulaA)
	if err != nil {
		return nil, err
	}
	b, err := chem.Evaluate(formulaB)
	if err != nil {
		return nil, err
	}

	if (a.Balance > target && b.Balance > target) ||
		(a.Balance < target && b.Balance < target) {
		return nil, fmt.Errorf("%s vs %s at target %+.2f%%: %w",
			a.Formula, b.Formula, target, ErrSameSide)
	}
	if a.Balance == b.Balance {
		return nil, fmt.Errorf("%s vs %s: %w", a.Formula, b.Formula, ErrEqualBalance)
	}

	x := (target - b.Balance) / (a.Balance - b.Balance)
	return &Split{
		A:      a,
		B:      b,
		Target: target,
		RatioA: x * 100,
		RatioB: (1 - x) * 100,
	}, nil
}
