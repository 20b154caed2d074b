// Package convert core types, parameter keys, and sentinel errors.
package convert

import "errors"

// Sentinel errors for translation operations.
var (
	// ErrMissingDependency indicates no covariance-model provider was supplied.
	ErrMissingDependency = errors.New("convert: covariance-model provider not available")
	// ErrUnsupportedVersion indicates the provider reports a version below the minimum.
	ErrUnsupportedVersion = errors.New("convert: covariance-model provider v1.3 or greater required")
	// ErrUnsupportedModel indicates the describe record names a family outside the registry.
	ErrUnsupportedModel = errors.New("convert: variogram model not supported")
	// ErrBadDescribe indicates the describe record lacks a key its family requires.
	ErrBadDescribe = errors.New("convert: describe record is missing a required key")
)

// Constructor parameter keys shared by every covariance-model class.
// Shape parameters ride under their external names ("alpha", "nu") as
// the registry's rename table dictates.
const (
	// KeyDim is the spatial dimensionality (carried as a float64 in Params).
	KeyDim = "dim"
	// KeyVar is the partial variance, sill − nugget.
	KeyVar = "var"
	// KeyLenScale is the length scale, the fitted effective range.
	KeyLenScale = "len_scale"
	// KeyNugget is the nugget.
	KeyNugget = "nugget"
	// KeyRescale is the per-family range-convention factor.
	KeyRescale = "rescale"
)

// Params is the keyword set handed to a covariance-model constructor,
// and equally the type of caller overrides merged into it. It is a
// type alias so providers can satisfy Provider with a plain
// map[string]float64 signature, without importing this package.
// KeyDim travels as a float64 inside the map; providers convert back.
type Params = map[string]float64

// Describe is the read-only summary of a fitted variogram, produced by
// a fitting component and consumed here without mutation (passed by
// value). Shape is required for the stable family, Smoothness for
// matérn; a zero value means the key is absent (zero is outside both
// parameters' domains).
type Describe struct {
	// Name identifies the family: spherical, exponential, gaussian,
	// cubic, stable or matern.
	Name string
	// Dim is the spatial dimensionality of the fitted variogram.
	Dim int
	// Sill is the total sill (partial sill + nugget).
	Sill float64
	// Nugget is the semivariance attributed to non-spatial variance.
	Nugget float64
	// EffectiveRange is the lag at which ~95% of the sill is reached.
	EffectiveRange float64
	// Shape is the stable family's curvature exponent (0 = absent).
	Shape float64
	// Smoothness is the matérn family's smoothness parameter (0 = absent).
	Smoothness float64
}

// value resolves an internal describe key, as named by the registry's
// rename table, to its field. The second result reports whether the
// key is present.
func (d Describe) value(key string) (float64, bool) {
	switch key {
	case "sill":
		return d.Sill, true
	case "nugget":
		return d.Nugget, true
	case "effective_range":
		return d.EffectiveRange, true
	case "shape":
		return d.Shape, d.Shape != 0
	case "smoothness":
		return d.Smoothness, d.Smoothness != 0
	default:
		return 0, false
	}
}

// Provider is the capability gate onto a covariance-model library.
// Version reports the library's version for the ≥1.3 compatibility
// check; NewModel instantiates the class named by the registry with
// the final keyword set.
//
// covmodel.Library is the in-tree implementation; any backend with the
// same two methods satisfies the interface without importing convert.
type Provider interface {
	Version() string
	NewModel(class string, kw map[string]float64) (any, error)
}

// Rescale is the tagged rule reconciling the internal effective-range
// convention with a class's native range parameter: either a Constant
// factor or a Derived function of the full describe record. The set of
// variants is closed.
type Rescale interface {
	factor(d Describe) (float64, error)
}

// Constant is a fixed rescale factor.
type Constant float64

func (c Constant) factor(Describe) (float64, error) { return float64(c), nil }

// Derived computes the rescale factor from the describe record.
type Derived func(d Describe) (float64, error)

func (f Derived) factor(d Describe) (float64, error) { return f(d) }
