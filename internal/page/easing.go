package page

import "math"

// Easing is a CSS style cubic-bezier timing curve through (0,0) and (1,1).
type Easing struct {
	Name           string
	X1, Y1, X2, Y2 float64
}

var (
	Linear     = Easing{Name: "linear", X1: 0, Y1: 0, X2: 1, Y2: 1}
	EaseOut    = Easing{Name: "ease-out", X1: 0, Y1: 0, X2: 0.58, Y2: 1}
	EaseInOut  = Easing{Name: "ease-in-out", X1: 0.42, Y1: 0, X2: 0.58, Y2: 1}
	Emphasized = Easing{Name: "emphasized", X1: 0.16, Y1: 1, X2: 0.3, Y2: 1}
	Gentle     = Easing{Name: "gentle", X1: 0.25, Y1: 0.46, X2: 0.45, Y2: 0.94}
)

// At maps linear progress t in [0,1] to eased progress. Inputs outside the
// range are clamped.
func (e Easing) At(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if e.X1 == e.Y1 && e.X2 == e.Y2 {
		return t
	}
	return bezier(e.Y1, e.Y2, e.solveX(t))
}

// solveX finds the curve parameter whose x coordinate equals x.
func (e Easing) solveX(x float64) float64 {
	u := x
	for i := 0; i < 8; i++ {
		dx := bezier(e.X1, e.X2, u) - x
		if math.Abs(dx) < 1e-7 {
			return u
		}
		d := bezierSlope(e.X1, e.X2, u)
		if math.Abs(d) < 1e-6 {
			break
		}
		u -= dx / d
	}

	lo, hi := 0.0, 1.0
	u = x
	for i := 0; i < 50; i++ {
		v := bezier(e.X1, e.X2, u)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}

func bezier(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

func bezierSlope(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
