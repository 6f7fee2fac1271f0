package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepreciationFactor_Schedule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		age  int
		want float64
	}{
		{"age zero keeps full value", 0, 1.0},
		{"future model year keeps full value", -2, 1.0},
		{"one year", 1, 0.80},
		{"two years", 2, 0.80 * 0.85},
		{"four years", 4, 0.80 * 0.85 * 0.90 * 0.90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, DepreciationFactor(tt.age), 1e-9)
		})
	}
}

func TestDepreciationFactor_BeyondYearTen(t *testing.T) {
	t.Parallel()

	f10 := DepreciationFactor(10)
	assert.InDelta(t, f10*0.97, DepreciationFactor(11), 1e-9)
	assert.InDelta(t, f10*0.97*0.97, DepreciationFactor(12), 1e-9)
}

func TestDepreciationFactor_Floor(t *testing.T) {
	t.Parallel()

	// At age 60 the chain is still above the floor; it first binds at 76.
	assert.Greater(t, DepreciationFactor(60), 0.05)
	assert.Equal(t, 0.05, DepreciationFactor(76))
	assert.Equal(t, 0.05, DepreciationFactor(200))
}

func TestDepreciationFactor_MonotonicNonIncreasing(t *testing.T) {
	t.Parallel()

	prev := DepreciationFactor(0)
	for age := 1; age <= 40; age++ {
		f := DepreciationFactor(age)
		assert.LessOrEqual(t, f, prev, "factor rose at age %d", age)
		assert.GreaterOrEqual(t, f, 0.05)
		prev = f
	}
}
