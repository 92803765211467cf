package helpers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GSTCents returns the 10% GST on a subtotal expressed in cents,
// rounded half-up to the nearest cent. Matches rounding the decimal
// amount to 2 places at the display boundary.
func GSTCents(subtotalCents int64) int64 {
	if subtotalCents <= 0 {
		return 0
	}
	return (subtotalCents + 5) / 10
}

// RoundPercent returns the half-up rounded integer percentage of part
// over whole, e.g. 5000 over 25000 -> 20.
func RoundPercent(partCents, wholeCents int64) int {
	return int(math.Round(float64(partCents) / float64(wholeCents) * 100))
}

// FormatAUD formats an amount in cents as an Australian dollar string,
// e.g. 803000 -> "$8,030.00".
func FormatAUD(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	dollars := cents / 100
	remainder := cents % 100

	// Insert thousands separators
	digits := strconv.FormatInt(dollars, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := fmt.Sprintf("$%s.%02d", strings.Join(groups, ","), remainder)
	if negative {
		return "-" + formatted
	}
	return formatted
}
