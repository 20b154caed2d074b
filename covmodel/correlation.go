package covmodel

import (
	"math"

	"github.com/variolab/vgram/internal/special"
)

// correlation returns the dimensionless correlation function of a
// class, with the class's shape parameter bound. Every cor satisfies
// cor(0) = 1 and decays monotonically towards 0; the compact-support
// classes (Spherical, Cubic) reach 0 exactly at x = 1.
func correlation(class string, alpha, nu float64) func(x float64) float64 {
	switch class {
	case ClassSpherical:
		return corSpherical
	case ClassExponential:
		return corExponential
	case ClassGaussian:
		return corGaussian
	case ClassCubic:
		return corCubic
	case ClassStable:
		return func(x float64) float64 { return corStable(x, alpha) }
	case ClassMatern:
		return func(x float64) float64 { return corMatern(x, nu) }
	}

	// New rejects unknown classes before binding.
	panic("covmodel: unreachable class " + class)
}

// corSpherical: 1 − 1.5x + 0.5x³ on [0, 1), 0 beyond.
func corSpherical(x float64) float64 {
	if x >= 1 {
		return 0
	}

	return 1.0 - 1.5*x + 0.5*x*x*x
}

// corExponential: e^(−x).
func corExponential(x float64) float64 {
	return math.Exp(-x)
}

// corGaussian: e^(−x²).
func corGaussian(x float64) float64 {
	return math.Exp(-x * x)
}

// corCubic: 1 − 7x² + (35/4)x³ − (7/2)x⁵ + (3/4)x⁷ on [0, 1), 0 beyond.
func corCubic(x float64) float64 {
	if x >= 1 {
		return 0
	}
	x2 := x * x
	x3 := x2 * x
	x5 := x3 * x2
	x7 := x5 * x2

	return 1.0 - 7.0*x2 + (35.0/4.0)*x3 - (7.0/2.0)*x5 + (3.0/4.0)*x7
}

// corStable: e^(−x^α).
func corStable(x, alpha float64) float64 {
	return math.Exp(-math.Pow(x, alpha))
}

// corMatern: the standard Matérn correlation
//
//	cor(x) = 2^(1−ν)/Γ(ν) · (√(2ν)·x)^ν · K_ν(√(2ν)·x)
//
// with the limit cor(0) = 1 taken explicitly (the Bessel term is
// singular at the origin).
func corMatern(x, nu float64) float64 {
	if x == 0 {
		return 1
	}
	z := math.Sqrt(2.0*nu) * x

	return math.Exp2(1.0-nu) / math.Gamma(nu) * math.Pow(z, nu) * special.BesselK(nu, z)
}
