package scicalc

import "strconv"

// DefaultDigits is the number of significant digits shown for results.
const DefaultDigits = 10

// ErrorText is what the display shows after a failed evaluation.
const ErrorText = "Error"

// FormatResult formats v with at most digits significant digits. Trailing
// zeros after the decimal point are dropped, integers have no decimal point,
// and very large or small magnitudes use exponent notation. If digits is not
// positive, DefaultDigits is used.
func FormatResult(v float64, digits int) string {
	if digits <= 0 {
		digits = DefaultDigits
	}
	if v == 0 {
		// Includes -0.
		return "0"
	}
	// strconv trims trailing zeros for 'g' with an explicit precision.
	return strconv.FormatFloat(v, 'g', digits, 64)
}

// exact formats v as a decimal literal the tokenizer accepts and that parses
// back to exactly v.
func exact(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
