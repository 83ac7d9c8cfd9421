// Package chem implements chemical formula parsing and oxygen-balance
// computation for compounds made of the supported elements.
package chem

// OxygenWeight is the atomic weight of oxygen used in the OB% formula.
const OxygenWeight = 15.999

// atomicWeights maps element symbols to atomic weights (g/mol).
var atomicWeights = map[string]float64{
	// Non-metals
	"H": 1.008, "C": 12.011, "N": 14.007, "O": 15.999,
	"Si": 28.085, "P": 30.974, "S": 32.06, "Cl": 35.45,
	"B": 10.81, "F": 18.998, "Br": 79.904, "I": 126.90,

	// Alkali and alkaline earth metals
	"Li": 6.94, "Na": 22.990, "K": 39.098,
	"Mg": 24.305, "Ca": 40.078, "Sr": 87.62, "Ba": 137.327,

	// Transition metals and other metal fuels
	"Al": 26.982, "Fe": 55.845, "Ti": 47.867, "Zn": 65.38,
	"Zr": 91.224, "Cu": 63.546, "Mn": 54.938, "Pb": 207.2,
	"Cr": 51.996, "Sb": 121.76,
}

// oxygenDemand maps element symbols to the number of oxygen atoms one
// atom consumes on complete combustion to its reference oxide
// (C -> CO2 takes 2, Al -> Al2O3 takes 1.5). Elements missing from the
// map bind no oxygen (N, Cl, F, noble species) and count as 0.
var oxygenDemand = map[string]float64{
	// Organic backbone
	"C": 2.0, // CO2
	"H": 0.5, // H2O
	"S": 2.0, // SO2

	// Metal fuels
	"Al": 1.5, // Al2O3
	"Mg": 1.0, // MgO
	"Ti": 2.0, // TiO2
	"Zr": 2.0, // ZrO2
	"Zn": 1.0, // ZnO
	"Fe": 1.5, // Fe2O3
	"Si": 2.0, // SiO2
	"B":  1.5, // B2O3
	"Sb": 1.5, // Sb2O3

	// Oxidizer cations
	"K":  0.5, // K2O
	"Na": 0.5, // Na2O
	"Li": 0.5, // Li2O
	"Ca": 1.0, // CaO
	"Sr": 1.0, // SrO
	"Ba": 1.0, // BaO
}

// AtomicWeight returns the atomic weight for a symbol and whether the
// element is known.
func AtomicWeight(symbol string) (float64, bool) {
	w, ok := atomicWeights[symbol]
	return w, ok
}

// OxygenDemand returns the oxygen-demand coefficient for a symbol.
// Unknown symbols consume no oxygen and return 0.
func OxygenDemand(symbol string) float64 {
	return oxygenDemand[symbol]
}

// KnownElements returns all supported element symbols in unspecified
// order.
func KnownElements() []string {
	symbols := make([]string, 0, len(atomicWeights))
	for s := range atomicWeights {
		symbols = append(symbols, s)
	}
	return symbols
}

// Register adds or overrides an element in the lookup tables. It exists
// so user configuration can extend the built-in table and must only be
// called during program startup, before any parsing or computation; the
// tables are treated as read-only afterwards.
func Register(symbol string, weight, demand float64) {
	atomicWeights[symbol] = weight
	if demand != 0 {
		oxygenDemand[symbol] = demand
	} else {
		delete(oxygenDemand, symbol)
	}
}
