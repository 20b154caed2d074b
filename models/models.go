package models

import (
	"math"

	"github.com/variolab/vgram/internal/special"
)

// Spherical — spherical variogram model
//
// Formula:
//
//	γ(h) = b + c0·(1.5·(h/a) − 0.5·(h/a)³)   for h ≤ r
//	γ(h) = b + c0                             for h > r
//
// with range parameter a = r: for the spherical model the effective
// range and the range parameter coincide, and the sill is reached
// exactly at h = r.
//
// Parameters:
//   - h  — lag distance(s), non-negative
//   - r  — effective range, positive
//   - c0 — partial sill
//   - b  — nugget
func Spherical[L Lags](h L, r, c0, b float64) L {
	return apply(func(h float64) float64 { return spherical(h, r, c0, b) }, h)
}

// Exponential — exponential variogram model
//
// Formula:
//
//	γ(h) = b + c0·(1 − e^(−h/a)),   a = r/3
//
// The sill is approached asymptotically; r is the lag at which 95% of
// the sill is exceeded, which fixes the range parameter at a = r/3.
func Exponential[L Lags](h L, r, c0, b float64) L {
	return apply(func(h float64) float64 { return exponential(h, r, c0, b) }, h)
}

// Gaussian — gaussian variogram model
//
// Formula:
//
//	γ(h) = b + c0·(1 − e^(−(h/a)²)),   a = r/2
//
// Parabolic near the origin, asymptotic sill; the 95% convention fixes
// the range parameter at a = r/2.
func Gaussian[L Lags](h L, r, c0, b float64) L {
	return apply(func(h float64) float64 { return gaussian(h, r, c0, b) }, h)
}

// Cubic — cubic variogram model
//
// Formula:
//
//	γ(h) = b + c0·(7·(h/a)² − (35/4)·(h/a)³ + (7/2)·(h/a)⁵ − (3/4)·(h/a)⁷)  for h ≤ r
//	γ(h) = b + c0                                                            for h > r
//
// with a = r: like the spherical model, the cubic model reaches its
// sill exactly at h = r.
func Cubic[L Lags](h L, r, c0, b float64) L {
	return apply(func(h float64) float64 { return cubic(h, r, c0, b) }, h)
}

// Stable — stable variogram model
//
// Formula:
//
//	γ(h) = b + c0·(1 − e^(−(h/a)^s)),   a = r/3^(1/s)
//
// The shape parameter s controls curvature: s ⪅ 2 behaves like the
// exponential/spherical models, s > 2 approaches the gaussian shape.
// s = 1 recovers the exponential model exactly.
func Stable[L Lags](h L, r, c0, s, b float64) L {
	return apply(func(h float64) float64 { return stable(h, r, c0, s, b) }, h)
}

// Matern — Matérn variogram model
//
// Formula:
//
//	γ(h) = b + c0·(1 − (2/Γ(s))·((h·√s)/a)^s·K_s(2·(h·√s)/a)),   a = r/2
//
// where Γ is the gamma function and K_s the modified Bessel function of
// the second kind. The smoothness parameter s shapes the curve from
// rough (s = 0.5, the exponential model) towards smooth (s ⪆ 10 is
// practically gaussian).
//
// The Bessel term is singular at h = 0; the kernel returns the limit
// γ(0) = b explicitly.
func Matern[L Lags](h L, r, c0, s, b float64) L {
	return apply(func(h float64) float64 { return matern(h, r, c0, s, b) }, h)
}

// spherical evaluates the spherical model at a single lag.
func spherical(h, r, c0, b float64) float64 {
	if h > r {
		return b + c0
	}
	hr := h / r

	return b + c0*(1.5*hr-0.5*hr*hr*hr)
}

// exponential evaluates the exponential model at a single lag.
func exponential(h, r, c0, b float64) float64 {
	a := r / 3.0

	return b + c0*(1.0-math.Exp(-h/a))
}

// gaussian evaluates the gaussian model at a single lag.
func gaussian(h, r, c0, b float64) float64 {
	a := r / 2.0

	return b + c0*(1.0-math.Exp(-(h*h)/(a*a)))
}

// cubic evaluates the cubic model at a single lag.
func cubic(h, r, c0, b float64) float64 {
	if h > r {
		return b + c0
	}
	hr := h / r
	hr2 := hr * hr
	hr3 := hr2 * hr
	hr5 := hr3 * hr2
	hr7 := hr5 * hr2

	return b + c0*(7.0*hr2-(35.0/4.0)*hr3+(7.0/2.0)*hr5-(3.0/4.0)*hr7)
}

// stable evaluates the stable model at a single lag.
func stable(h, r, c0, s, b float64) float64 {
	a := r / math.Pow(3.0, 1.0/s)

	return b + c0*(1.0-math.Exp(-math.Pow(h/a, s)))
}

// matern evaluates the Matérn model at a single lag, returning the
// nugget limit at h = 0 where the Bessel term is singular.
func matern(h, r, c0, s, b float64) float64 {
	if h == 0 {
		return b
	}
	a := r / 2.0
	u := h * math.Sqrt(s) / a

	return b + c0*(1.0-(2.0/math.Gamma(s))*math.Pow(u, s)*special.BesselK(s, 2.0*u))
}
