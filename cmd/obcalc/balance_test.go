package main

import "testing"

func TestHasMetalFuel(t *testing.T) {
	tests := []struct {
		formula string
		want    bool
	}{
		{"Al", true},
		{"Al2O3", true},
		{"MgO", true},
		{"TiO2", true},
		{"KNO3", false},
		{"C6H14O6", false},
		{"Fe2O3", false},
	}

	for _, tt := range tests {
		if got := hasMetalFuel(tt.formula); got != tt.want {
			t.Errorf("hasMetalFuel(%q) = %v, want %v", tt.formula, got, tt.want)
		}
	}
}
