package output

import (
	"os"
	"strings"

	"github.com/fatih/color"
)

// NearZero is the band around 0 OB% rendered as balanced rather than
// surplus or deficit.
const NearZero = 0.5

var (
	// Oxygen-balance sign colors
	Surplus  = color.New(color.FgGreen)
	Deficit  = color.New(color.FgRed)
	Balanced = color.New(color.FgYellow)

	// Message colors
	Success = color.New(color.FgGreen)
	Warning = color.New(color.FgYellow)
	Error   = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)
	Dim     = color.New(color.Faint)

	// Structural colors
	Header  = color.New(color.FgWhite, color.Bold)
	Formula = color.New(color.FgBlue, color.Bold)
)

// NoColor disables color output
func NoColor() {
	color.NoColor = true
}

// ForceColor enables color output even when not a TTY
func ForceColor() {
	color.NoColor = false
}

// IsTerminal returns true if stdout is a terminal
func IsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// BalanceColor returns the color for an oxygen-balance value: green for
// surplus, red for deficit, yellow near zero.
func BalanceColor(ob float64) *color.Color {
	switch {
	case ob > NearZero:
		return Surplus
	case ob < -NearZero:
		return Deficit
	default:
		return Balanced
	}
}

// FormatBalance formats a signed OB percentage with its sign color.
func FormatBalance(ob float64, precision int) string {
	return BalanceColor(ob).Sprintf("%+.*f%%", precision, ob)
}

// FormatFormula formats a chemical formula with color.
func FormatFormula(formula string) string {
	return Formula.Sprint(formula)
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	Success.Printf("✓ "+format+"\n", args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	Error.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	Warning.Printf("⚠ "+format+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	Info.Printf("→ "+format+"\n", args...)
}

// Printf prints with color
func Printf(c *color.Color, format string, args ...interface{}) {
	c.Printf(format, args...)
}

// Println prints with color and newline
func Println(c *color.Color, a ...interface{}) {
	c.Println(a...)
}

// Rule prints a dim horizontal rule of the given width.
func Rule(width int) {
	Dim.Println(strings.Repeat("-", width))
}

// HeaderLine prints a bold header row.
func HeaderLine(format string, args ...interface{}) {
	Header.Printf(format+"\n", args...)
}

// Hint prints the qualitative reading of a mixture oxygen balance.
func Hint(ob float64) {
	switch {
	case ob > NearZero:
		PrintInfo("positive oxygen balance: excess oxygen remains after complete combustion")
	case ob < -NearZero:
		PrintInfo("negative oxygen balance: combustion is oxygen-limited and may leave CO, H2 or soot")
	default:
		PrintInfo("near-zero oxygen balance: oxygen supply roughly matches demand")
	}
}
