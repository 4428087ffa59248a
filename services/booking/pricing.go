package booking

import (
	"math"
	"strings"

	"shotz/models"
)

// ParsePrice converts a formatted price string (e.g. "$1,000") into whole
// currency units by stripping every non-digit character.
func ParsePrice(price string) int {
	var b strings.Builder
	for _, r := range price {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0
	}
	n := 0
	for _, r := range digits {
		n = n*10 + int(r-'0')
	}
	return n
}

// ComputeDeposit returns the required upfront deposit for a package: half the
// package price, rounded half-up to the nearest whole currency unit.
func ComputeDeposit(pkg models.Package) int {
	price := ParsePrice(pkg.Price)
	return int(math.Round(float64(price) * 0.5))
}
