package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		value, lo, hi float64
		want          float64
	}{
		{"inside", 1.0, 0.5, 1.5, 1.0},
		{"below", 0.01, 0.5, 1.5, 0.5},
		{"above", 10, 0.5, 1.5, 1.5},
		{"at bound", 1.5, 0.5, 1.5, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.value, tt.lo, tt.hi))
		})
	}
}

func TestClampAbs(t *testing.T) {
	assert.Equal(t, 40.0, ClampAbs(100, 40))
	assert.Equal(t, -40.0, ClampAbs(-100, 40))
	assert.Equal(t, 12.0, ClampAbs(12, 40))
	assert.Equal(t, 0.0, ClampAbs(12, -5), "negative max collapses to zero")
}

func TestVec(t *testing.T) {
	v := V(3, 4)
	assert.Equal(t, 5.0, v.Len())
	assert.Equal(t, V(1.5, 2), v.Scale(0.5))
	assert.Equal(t, V(4, 6), v.Add(V(1, 2)))
	assert.Equal(t, 5.0, V(0, 0).Dist(v))
}
