package rounding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfUp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"tie rounds up", 2.5, 3},
		{"negative tie rounds away from zero", -2.5, -3},
		{"below tie rounds down", 2.4, 2},
		{"above tie rounds up", 2.6, 3},
		{"negative below tie", -2.4, -2},
		{"integer unchanged", 100, 100},
		{"zero", 0, 0},
		{"sub-half rounds to zero", 0.4, 0},
		{"half rounds to one", 0.5, 1},
		{"just under tie", 100.4999, 100},
		{"large value", 1e12 + 0.5, 1e12 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HalfUp(tt.in))
		})
	}
}

func TestHalfUpIdempotent(t *testing.T) {
	for _, x := range []float64{2.5, -2.5, 2.4, 0.0001, -99.99, 123456.789} {
		once := HalfUp(x)
		assert.Equal(t, once, HalfUp(once), "HalfUp must be idempotent for %v", x)
	}
}

func TestHalfUpNonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(HalfUp(math.NaN())))
	assert.True(t, math.IsInf(HalfUp(math.Inf(1)), 1))
	assert.True(t, math.IsInf(HalfUp(math.Inf(-1)), -1))
}

func TestHalfUpInt(t *testing.T) {
	v, ok := HalfUpInt(100.5)
	assert.True(t, ok)
	assert.Equal(t, int64(101), v)

	_, ok = HalfUpInt(math.NaN())
	assert.False(t, ok)
	_, ok = HalfUpInt(math.Inf(1))
	assert.False(t, ok)
}
