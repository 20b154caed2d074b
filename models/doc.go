// Package models implements the six theoretical variogram families as
// pure semivariance kernels with a uniform, order-preserving vectorized
// calling convention.
//
// 🚀 What is a variogram model?
//
//	A closed-form curve γ(h) describing how dissimilarity grows with the
//	separation distance (lag) h between two spatial locations. Fitted
//	models drive kriging weights, simulation and plotting. All six
//	classic families are provided:
//	  • Spherical   — piecewise cubic, exact sill at h = r
//	  • Exponential — asymptotic, range parameter a = r/3
//	  • Gaussian    — asymptotic, parabolic origin, a = r/2
//	  • Cubic       — piecewise degree-7 polynomial, exact sill at h = r
//	  • Stable      — exponential with curvature exponent s, a = r/3^(1/s)
//	  • Matérn      — Bessel-K smoothness family, a = r/2
//
// ✨ Key conventions:
//   - r is the EFFECTIVE range (lag at ~95% of the sill), not the raw
//     range parameter; each family derives its own a from r
//   - c0 is the partial sill, b the nugget; γ never exceeds b + c0
//   - every function accepts a single lag or a []float64 of lags and
//     returns the matching shape, element order preserved
//   - parameters are NOT validated: callers own r > 0, c0 ≥ 0, b ≥ 0,
//     and the shape parameter where required
//   - matérn at h = 0 returns the nugget limit explicitly instead of
//     evaluating the singular Bessel term
//
// ⚙️ Usage:
//
//	import "github.com/variolab/vgram/models"
//
//	// one lag
//	g := models.Spherical(5.0, 10.0, 6.0, 1.0)
//
//	// a whole grid, order preserved
//	gs := models.Matern([]float64{0, 2.5, 5, 10}, 10.0, 6.0, 1.5, 1.0)
//
// Every kernel is a pure function of its arguments: no shared state, no
// locks, safe for concurrent use from any number of goroutines.
package models
