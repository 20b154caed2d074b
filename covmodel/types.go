// Package covmodel class names, sentinel errors, and the Model type.
package covmodel

import "errors"

// Sentinel errors for model construction.
var (
	// ErrUnknownClass indicates a class name outside the supported set.
	ErrUnknownClass = errors.New("covmodel: unknown covariance-model class")
	// ErrBadParam indicates an unknown keyword or an out-of-domain value.
	ErrBadParam = errors.New("covmodel: invalid model parameter")
)

// Supported covariance-model classes. These are the external names the
// translation registry instantiates.
const (
	ClassSpherical   = "Spherical"
	ClassExponential = "Exponential"
	ClassGaussian    = "Gaussian"
	ClassCubic       = "Cubic"
	ClassStable      = "Stable"
	ClassMatern      = "Matern"
)

// Model is a fully parametrized covariance model. It is immutable once
// built by New and safe for concurrent use; all evaluation methods are
// pure.
type Model struct {
	class    string
	dim      int
	variance float64 // partial sill, the "var" keyword
	lenScale float64
	nugget   float64
	rescale  float64
	alpha    float64 // Stable curvature exponent
	nu       float64 // Matern smoothness
	cor      func(x float64) float64
}

// Class returns the model's class name.
func (m *Model) Class() string { return m.class }

// Dim returns the spatial dimensionality.
func (m *Model) Dim() int { return m.dim }

// Var returns the partial sill (variance above the nugget).
func (m *Model) Var() float64 { return m.variance }

// LenScale returns the length scale.
func (m *Model) LenScale() float64 { return m.lenScale }

// Nugget returns the nugget.
func (m *Model) Nugget() float64 { return m.nugget }

// Rescale returns the range-convention factor folded into evaluation.
func (m *Model) Rescale() float64 { return m.rescale }

// Sill returns the total sill, var + nugget.
func (m *Model) Sill() float64 { return m.variance + m.nugget }

// Alpha returns the Stable curvature exponent (zero for other classes).
func (m *Model) Alpha() float64 { return m.alpha }

// Nu returns the Matern smoothness (zero for other classes).
func (m *Model) Nu() float64 { return m.nu }
