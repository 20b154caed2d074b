package models_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/variolab/vgram/models"
)

// Shared fit used across the table-driven tests: effective range 10,
// partial sill 6, nugget 1.
const (
	testRange  = 10.0
	testSill   = 6.0
	testNugget = 1.0
	testShape  = 1.5
)

// family bundles a kernel behind a uniform scalar signature so the
// shared-property tests can iterate all six models without caring about
// the shape parameter.
type family struct {
	name      string
	eval      func(h float64) float64
	piecewise bool // exact sill for every h ≥ r
}

func allFamilies() []family {
	return []family{
		{"spherical", func(h float64) float64 {
			return models.Spherical(h, testRange, testSill, testNugget)
		}, true},
		{"exponential", func(h float64) float64 {
			return models.Exponential(h, testRange, testSill, testNugget)
		}, false},
		{"gaussian", func(h float64) float64 {
			return models.Gaussian(h, testRange, testSill, testNugget)
		}, false},
		{"cubic", func(h float64) float64 {
			return models.Cubic(h, testRange, testSill, testNugget)
		}, true},
		{"stable", func(h float64) float64 {
			return models.Stable(h, testRange, testSill, testShape, testNugget)
		}, false},
		{"matern", func(h float64) float64 {
			return models.Matern(h, testRange, testSill, testShape, testNugget)
		}, false},
	}
}

// TestModels_NuggetAtZeroLag verifies γ(0) == b for every family,
// including the matérn explicit limit at the singular Bessel argument.
func TestModels_NuggetAtZeroLag(t *testing.T) {
	for _, f := range allFamilies() {
		got := f.eval(0)
		assert.Equal(t, testNugget, got, "%s: γ(0) must recover the nugget exactly", f.name)
		assert.False(t, math.IsNaN(got), "%s: γ(0) must not be NaN", f.name)
	}
}

// TestModels_SillBeyondRange verifies that the piecewise families hold
// γ == b + c0 exactly for every h ≥ r, and that the asymptotic families
// stay strictly below the total sill while approaching it.
func TestModels_SillBeyondRange(t *testing.T) {
	total := testNugget + testSill
	for _, f := range allFamilies() {
		for _, h := range []float64{testRange, testRange * 1.5, testRange * 20} {
			got := f.eval(h)
			if f.piecewise {
				assert.Equal(t, total, got, "%s: exact sill at h=%g", f.name, h)
			} else {
				// At very large lags the asymptote rounds onto the sill.
				assert.LessOrEqual(t, got, total, "%s: sill never exceeded at h=%g", f.name, h)
			}
		}
		// 95% convention: at the effective range, at least 95% of the
		// partial sill is accounted for.
		assert.GreaterOrEqual(t, f.eval(testRange), testNugget+0.95*testSill,
			"%s: effective range must carry ≥95%% of the sill", f.name)
	}
}

// TestModels_MonotoneOnRange verifies γ is non-decreasing on [0, r] for
// every family, on a dense lag grid.
func TestModels_MonotoneOnRange(t *testing.T) {
	hs := make([]float64, 200)
	floats.Span(hs, 0, testRange)
	for _, f := range allFamilies() {
		prev := f.eval(hs[0])
		for _, h := range hs[1:] {
			cur := f.eval(h)
			require.GreaterOrEqual(t, cur, prev, "%s: γ must not decrease at h=%g", f.name, h)
			prev = cur
		}
	}
}

// TestSpherical_ExactValues pins the spherical polynomial at hand-checked
// lags: γ(r/2) = b + 0.6875·c0 and γ(r) = b + c0.
func TestSpherical_ExactValues(t *testing.T) {
	assert.InDelta(t, testNugget+0.6875*testSill,
		models.Spherical(testRange/2, testRange, testSill, testNugget), 1e-15)
	assert.Equal(t, testNugget+testSill,
		models.Spherical(testRange, testRange, testSill, testNugget))
}

// TestExponential_EffectiveRange checks the defining property of the
// a = r/3 convention: γ(r) = b + c0·(1 − e⁻³).
func TestExponential_EffectiveRange(t *testing.T) {
	want := testNugget + testSill*(1.0-math.Exp(-3.0))
	assert.InDelta(t, want, models.Exponential(testRange, testRange, testSill, testNugget), 1e-15)
}

// TestGaussian_EffectiveRange checks γ(r) = b + c0·(1 − e⁻⁴) under the
// a = r/2 convention.
func TestGaussian_EffectiveRange(t *testing.T) {
	want := testNugget + testSill*(1.0-math.Exp(-4.0))
	assert.InDelta(t, want, models.Gaussian(testRange, testRange, testSill, testNugget), 1e-15)
}

// TestCubic_ExactSillAtRange verifies the degree-7 polynomial sums to
// exactly 1 at h = r (7 − 35/4 + 7/2 − 3/4 = 1).
func TestCubic_ExactSillAtRange(t *testing.T) {
	assert.InDelta(t, testNugget+testSill,
		models.Cubic(testRange, testRange, testSill, testNugget), 1e-12)
}

// TestStable_ShapeOneIsExponential verifies that s = 1 collapses the
// stable model onto the exponential model at every lag.
func TestStable_ShapeOneIsExponential(t *testing.T) {
	hs := make([]float64, 50)
	floats.Span(hs, 0, 3*testRange)
	for _, h := range hs {
		assert.InDelta(t,
			models.Exponential(h, testRange, testSill, testNugget),
			models.Stable(h, testRange, testSill, 1.0, testNugget),
			1e-12, "stable(s=1) vs exponential at h=%g", h)
	}
}

// TestStable_EffectiveRange checks the a = r/3^(1/s) convention:
// γ(r) = b + c0·(1 − e⁻³) for every shape.
func TestStable_EffectiveRange(t *testing.T) {
	want := testNugget + testSill*(1.0-math.Exp(-3.0))
	for _, s := range []float64{0.8, 1.5, 2.0, 3.0} {
		assert.InDelta(t, want,
			models.Stable(testRange, testRange, testSill, s, testNugget),
			1e-12, "shape %g", s)
	}
}

// TestMatern_HalfSmoothnessClosedForm verifies the s = 1/2 reduction of
// the Matérn model: with a = r/2 and K_{1/2} in closed form,
// γ(h) = b + c0·(1 − e^(−2·√2·h/r)).
func TestMatern_HalfSmoothnessClosedForm(t *testing.T) {
	for _, h := range []float64{0.1, 1, 2.5, 5, 10, 20} {
		want := testNugget + testSill*(1.0-math.Exp(-2.0*math.Sqrt2*h/testRange))
		got := models.Matern(h, testRange, testSill, 0.5, testNugget)
		assert.InDelta(t, want, got, 1e-10, "matern(s=0.5) at h=%g", h)
	}
}

// TestMatern_SmoothnessOrdersCurvature verifies the smoothness sweep:
// within the range, a rougher model (small s) sits above a smoother one
// (large s) near the origin, while all share the nugget and the sill
// asymptote.
func TestMatern_SmoothnessOrdersCurvature(t *testing.T) {
	h := testRange / 5.0
	rough := models.Matern(h, testRange, testSill, 0.5, testNugget)
	mid := models.Matern(h, testRange, testSill, 2.0, testNugget)
	smooth := models.Matern(h, testRange, testSill, 10.0, testNugget)

	assert.Greater(t, rough, mid, "smaller smoothness rises faster near the origin")
	assert.Greater(t, mid, smooth, "larger smoothness flattens the origin")
}
