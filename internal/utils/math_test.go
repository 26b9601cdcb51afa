package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"already rounded", 12.34, 12.34},
		{"rounds down", 1.234, 1.23},
		{"rounds half up", 1.235, 1.24},
		{"whole number", 100, 100},
		{"zero", 0, 0},
		{"tiny value", 0.004, 0},
		{"large value", 123456.789, 123456.79},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Round2(tt.value), 1e-9)
		})
	}
}

func TestUniform(t *testing.T) {
	assert.Equal(t, 0.7, Uniform(0, 0.7, 1.3))
	assert.InDelta(t, 1.0, Uniform(0.5, 0.7, 1.3), 1e-9)
	assert.Less(t, Uniform(0.999999, 0.7, 1.3), 1.3)
}

func TestRandomFloat_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		v := RandomFloat()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.InDelta(t, 6.5, Sum([]float64{1, 2.5, 3}), 1e-9)
}
