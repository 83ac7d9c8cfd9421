package chem

import "testing"

func TestOxygenDemandDefaultsToZero(t *testing.T) {
	// N, Cl and F form no reference oxide and consume nothing.
	for _, symbol := range []string{"N", "Cl", "F", "Zz"} {
		if d := OxygenDemand(symbol); d != 0 {
			t.Errorf("OxygenDemand(%s) = %v, want 0", symbol, d)
		}
	}
}

func TestDemandTableSymbolsAreWeighable(t *testing.T) {
	// Every element with a demand coefficient must also have a weight,
	// or a formula using it could never be evaluated.
	for symbol := range oxygenDemand {
		if _, ok := AtomicWeight(symbol); !ok {
			t.Errorf("demand table symbol %s missing from atomic weights", symbol)
		}
	}
}

func TestRegister(t *testing.T) {
	if _, ok := AtomicWeight("W"); ok {
		t.Fatal("W should not be built in")
	}

	Register("W", 183.84, 3.0)
	t.Cleanup(func() {
		delete(atomicWeights, "W")
		delete(oxygenDemand, "W")
	})

	w, ok := AtomicWeight("W")
	if !ok || w != 183.84 {
		t.Errorf("AtomicWeight(W) = %v, %v; want 183.84, true", w, ok)
	}
	if d := OxygenDemand("W"); d != 3.0 {
		t.Errorf("OxygenDemand(W) = %v, want 3.0", d)
	}

	compound, err := Evaluate("WO3")
	if err != nil {
		t.Fatalf("Evaluate(WO3) failed: %v", err)
	}
	// 3 O available against demand 3: exactly balanced.
	if compound.Balance != 0 {
		t.Errorf("Evaluate(WO3).Balance = %v, want 0", compound.Balance)
	}
}
