// Package mixture aggregates weighted compounds into mixture-level
// oxygen balance and solves two-component stoichiometric splits.
package mixture

import (
	"errors"
	"fmt"

	"github.com/obtools/obcalc/internal/chem"
)

var (
	// ErrNoComponents is returned when an aggregation has nothing to work on.
	ErrNoComponents = errors.New("mixture has no components")
	// ErrNonPositiveTotal is returned when the proportions sum to zero or less.
	ErrNonPositiveTotal = errors.New("total mass proportion must be positive")
)

// Component is one mixture input: a formula with an unnormalized mass
// proportion. Proportions need not sum to 100.
type Component struct {
	Formula    string
	Proportion float64
}

// Entry is one distinct formula in an aggregated mixture. Proportion is
// the sum over all input components with this formula.
type Entry struct {
	Formula    string
	Weight     float64 // molecular weight, g/mol
	Balance    float64 // compound oxygen balance, percent
	Proportion float64
	MassPct    float64
}

// Result is an aggregated mixture. Entries keep the first-occurrence
// order of their formulas in the input so display output is stable.
type Result struct {
	Entries []Entry
	Total   float64 // sum of all input proportions
	Balance float64 // mass-fraction weighted oxygen balance, percent
}

// Aggregate groups components by formula, summing proportions per
// distinct formula, and computes each formula's mass percentage plus
// the mixture oxygen balance. Each distinct formula is parsed and
// evaluated once; later occurrences reuse the cached compound so
// duplicates always contribute a single merged entry.
func Aggregate(components []Component) (*Result, error) {
	if len(components) == 0 {
		return nil, ErrNoComponents
	}

	res := &Result{}
	seen := make(map[string]int) // formula -> index into res.Entries
	for _, c := range components {
		if i, ok := seen[c.Formula]; ok {
			res.Entries[i].Proportion += c.Proportion
		} else {
			compound, err := chem.Evaluate(c.Formula)
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", c.Formula, err)
			}
			seen[c.Formula] = len(res.Entries)
			res.Entries = append(res.Entries, Entry{
				Formula:    c.Formula,
				Weight:     compound.Weight,
				Balance:    compound.Balance,
				Proportion: c.Proportion,
			})
		}
		res.Total += c.Proportion
	}

	if res.Total <= 0 {
		return nil, ErrNonPositiveTotal
	}

	for i := range res.Entries {
		fraction := res.Entries[i].Proportion / res.Total
		res.Entries[i].MassPct = fraction * 100
		res.Balance += fraction * res.Entries[i].Balance
	}

	return res, nil
}
