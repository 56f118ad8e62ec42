package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEasingEndpointsAndClamp(t *testing.T) {
	for _, e := range []Easing{Linear, EaseOut, EaseInOut, Emphasized, Gentle} {
		t.Run(e.Name, func(t *testing.T) {
			assert.Equal(t, 0.0, e.At(0))
			assert.Equal(t, 1.0, e.At(1))
			assert.Equal(t, 0.0, e.At(-3))
			assert.Equal(t, 1.0, e.At(7))
		})
	}
}

func TestEasingMonotonic(t *testing.T) {
	for _, e := range []Easing{Linear, EaseOut, EaseInOut, Emphasized, Gentle} {
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := e.At(float64(i) / 100)
			assert.GreaterOrEqual(t, v, prev-1e-6, "%s at %d", e.Name, i)
			prev = v
		}
	}
}

func TestEasingShapes(t *testing.T) {
	assert.InDelta(t, 0.3, Linear.At(0.3), 1e-12)
	assert.InDelta(t, 0.5, EaseInOut.At(0.5), 1e-4, "symmetric curve passes through the centre")
	assert.Greater(t, EaseOut.At(0.3), 0.3, "ease-out runs ahead of linear")
	assert.Greater(t, Emphasized.At(0.2), 0.6, "emphasized curve front-loads motion")
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 10.0, Lerp(10, 20, 0))
}
