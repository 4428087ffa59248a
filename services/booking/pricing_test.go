package booking

import (
	"testing"

	"shotz/models"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"$500", 500},
		{"$1,000", 1000},
		{"$2,500", 2500},
		{"$45", 45},
		{"1000", 1000},
		{"", 0},
		{"$", 0},
		{"free", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePrice(tc.in), "ParsePrice(%q)", tc.in)
	}
}

func TestComputeDeposit(t *testing.T) {
	cases := []struct {
		price string
		want  int
	}{
		{"$500", 250},
		{"$1,000", 500},
		{"$2,500", 1250},
		// Odd price: half rounds up.
		{"$45", 23},
		{"$0", 0},
	}
	for _, tc := range cases {
		pkg := models.Package{Name: "Standard", Price: tc.price}
		assert.Equal(t, tc.want, ComputeDeposit(pkg), "deposit for %q", tc.price)
	}
}

func TestComputeDepositBounds(t *testing.T) {
	prices := []string{"$45", "$150", "$1,000", "$2,500", "$5,500", "$6,000"}
	for _, p := range prices {
		pkg := models.Package{Price: p}
		deposit := ComputeDeposit(pkg)
		total := ParsePrice(p)
		assert.GreaterOrEqual(t, deposit, 0)
		assert.LessOrEqual(t, deposit, total)
		// Deterministic for identical input.
		assert.Equal(t, deposit, ComputeDeposit(pkg))
	}
}
