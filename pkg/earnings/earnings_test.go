package earnings

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		views    int
		rate     float64
		expected float64
	}{
		{"standard payout", 35000, 0.12, 4.20},
		{"exact thousand", 1000, 1.50, 1.50},
		{"sub-thousand views", 500, 0.10, 0.05},
		{"rounds to cents", 333, 0.10, 0.03},
		{"large count", 1_000_000, 0.12, 120.00},
		{"zero views", 0, 0.12, 0},
		{"zero rate", 35000, 0, 0},
		{"negative views clamp to zero", -100, 0.12, 0},
		{"negative rate clamps to zero", 35000, -0.12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Amount(tt.views, tt.rate))
		})
	}
}

func TestAmountNeverInvalid(t *testing.T) {
	// Hostile rates must not poison wallet totals.
	assert.Equal(t, 0.0, Amount(1000, math.NaN()))
	assert.Equal(t, 0.0, Amount(1000, math.Inf(1)))

	for _, views := range []int{0, 1, 999, 1000, 12345, 10_000_000} {
		got := Amount(views, 0.07)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Equal(t, Round2(got), got, "amount must already be cent-rounded")
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.20, Round2(4.2000001))
	assert.Equal(t, 0.05, Round2(0.049999999999))
	assert.Equal(t, 1.01, Round2(1.012))
	assert.Equal(t, -2.50, Round2(-2.499999))
}
