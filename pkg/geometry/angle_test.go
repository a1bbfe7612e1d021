package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name  string
		theta float64
		want  float64
	}{
		{"zero", 0, 0},
		{"in range", math.Pi / 3, math.Pi / 3},
		{"negative", -math.Pi / 2, 3 * math.Pi / 2},
		{"full turn", 2 * math.Pi, 0},
		{"over a turn", 5 * math.Pi, math.Pi},
		{"deep negative", -5 * math.Pi / 2, 3 * math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeAngle(tt.theta), 1e-12)
		})
	}
}

func TestAngleInSweep(t *testing.T) {
	eps := 1e-9

	tests := []struct {
		name         string
		theta        float64
		start, delta float64
		want         bool
	}{
		{"inside quarter arc", math.Pi / 4, 0, math.Pi / 2, true},
		{"outside quarter arc", math.Pi, 0, math.Pi / 2, false},
		{"start endpoint inclusive", 0, 0, math.Pi / 2, true},
		{"end endpoint inclusive", math.Pi / 2, 0, math.Pi / 2, true},
		{"just past end", math.Pi/2 + 1e-6, 0, math.Pi / 2, false},
		{"crosses the seam", 0.1, 3 * math.Pi / 2, math.Pi, true},
		{"seam-crossing miss", math.Pi, 3 * math.Pi / 2, math.Pi, false},
		{"negative sweep inside", -math.Pi / 4, 0, -math.Pi / 2, true},
		{"negative sweep far endpoint", -math.Pi / 2, 0, -math.Pi / 2, true},
		{"negative sweep outside", math.Pi / 4, 0, -math.Pi / 2, false},
		{"full circle covers everything", 5.1, 1.2, 2 * math.Pi, true},
		{"over-full sweep covers everything", 3.3, 0.4, 3 * math.Pi, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AngleInSweep(tt.theta, tt.start, tt.delta, eps))
		})
	}
}
