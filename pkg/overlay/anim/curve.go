package anim

import "math"

// Curve maps normalized stage time t in [0,1] to animation progress.
// Progress(0) must be 0 and Progress(1) must be 1; values in between may
// overshoot (springs do).
type Curve interface {
	Progress(t float64) float64
}

// CurveFunc adapts a plain function to [Curve].
type CurveFunc func(t float64) float64

// Progress implements Curve.
func (f CurveFunc) Progress(t float64) float64 { return f(clamp01(t)) }

// Linear progresses at a constant rate.
var Linear Curve = CurveFunc(func(t float64) float64 { return t })

// EaseInOut is a cubic ease-in-out curve.
var EaseInOut Curve = CurveFunc(func(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
})

// Spring is a damped spring normalized to the stage duration.
//
// Damping is the damping ratio: values below 1 oscillate around the target,
// 1 and above approach it without overshoot. Velocity is the initial
// velocity in units of total distance per stage duration.
type Spring struct {
	Damping  float64
	Velocity float64
}

// springSettle is the envelope amplitude reached at t = 1.
const springSettle = 1e-3

// Progress implements Curve.
func (s Spring) Progress(t float64) float64 {
	t = clamp01(t)
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}

	zeta := s.Damping
	if zeta <= 0 {
		zeta = 1
	}
	omega := -math.Log(springSettle) / zeta
	v0 := s.Velocity

	if zeta >= 1 {
		return 1 - math.Exp(-omega*t)*(1+(omega-v0)*t)
	}

	wd := omega * math.Sqrt(1-zeta*zeta)
	envelope := math.Exp(-zeta * omega * t)
	return 1 - envelope*(math.Cos(wd*t)+((zeta*omega-v0)/wd)*math.Sin(wd*t))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
