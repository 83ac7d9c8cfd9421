package chem

// Compound bundles the derived properties of one parsed formula.
type Compound struct {
	Formula     string
	Composition Composition
	Weight      float64 // molecular weight, g/mol
	Balance     float64 // oxygen balance, signed percent
}

// OxygenBalance computes the oxygen balance percentage of a composition
// given its molecular weight.
//
//	OB% = (available O - required O) * 15.999 / mw * 100
//
// Available oxygen is the O atom count; required oxygen sums the
// per-element demand coefficient times atom count over all non-oxygen
// elements. Positive means surplus, negative means deficit. A zero
// molecular weight returns 0 so synthetic inputs cannot divide by zero.
func OxygenBalance(comp Composition, mw float64) float64 {
	if mw == 0 {
		return 0.0
	}

	available := float64(comp["O"])
	required := 0.0
	for symbol, count := range comp {
		if symbol == "O" {
			continue
		}
		required += OxygenDemand(symbol) * float64(count)
	}

	return (available - required) * OxygenWeight / mw * 100
}

// Evaluate parses a formula and computes its molecular weight and
// oxygen balance in one step.
func Evaluate(formula string) (*Compound, error) {
	comp, err := Parse(formula)
	if err != nil {
		return nil, err
	}
	mw := comp.Weight()
	return &Compound{
		Formula:     formula,
		Composition: comp,
		Weight:      mw,
		Balance:     OxygenBalance(comp, mw),
	}, nil
}
