package covmodel

import (
	"fmt"
	"math"
)

// Constructor defaults, applied before the keyword set.
const (
	defaultDim     = 3
	defaultVar     = 1.0
	defaultLen     = 1.0
	defaultRescale = 1.0
	defaultAlpha   = 1.5
	defaultNu      = 1.5
)

// New builds a covariance model of the given class from its keyword
// set: dim, var, len_scale, nugget, rescale, and the class's shape
// keyword (alpha for Stable, nu for Matern). Omitted keywords take the
// documented defaults.
//
// Construction is strict: an unknown class yields ErrUnknownClass; an
// unknown keyword, a shape keyword on the wrong class, or a value
// outside its domain yields ErrBadParam. Nothing is silently clamped.
func New(class string, kw map[string]float64) (*Model, error) {
	switch class {
	case ClassSpherical, ClassExponential, ClassGaussian, ClassCubic, ClassStable, ClassMatern:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}

	m := &Model{
		class:    class,
		dim:      defaultDim,
		variance: defaultVar,
		lenScale: defaultLen,
		rescale:  defaultRescale,
	}
	if class == ClassStable {
		m.alpha = defaultAlpha
	}
	if class == ClassMatern {
		m.nu = defaultNu
	}

	for key, v := range kw {
		switch key {
		case "dim":
			if v < 1 || v != math.Trunc(v) {
				return nil, fmt.Errorf("%w: dim must be a positive integer, got %v", ErrBadParam, v)
			}
			m.dim = int(v)
		case "var":
			m.variance = v
		case "len_scale":
			m.lenScale = v
		case "nugget":
			m.nugget = v
		case "rescale":
			m.rescale = v
		case "alpha":
			if class != ClassStable {
				return nil, fmt.Errorf("%w: alpha is a Stable parameter, not %s", ErrBadParam, class)
			}
			m.alpha = v
		case "nu":
			if class != ClassMatern {
				return nil, fmt.Errorf("%w: nu is a Matern parameter, not %s", ErrBadParam, class)
			}
			m.nu = v
		default:
			return nil, fmt.Errorf("%w: unknown keyword %q for class %s", ErrBadParam, key, class)
		}
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	m.cor = correlation(class, m.alpha, m.nu)

	return m, nil
}

// validate enforces the value domains after the keyword set applied.
func (m *Model) validate() error {
	switch {
	case m.variance < 0:
		return fmt.Errorf("%w: var must be non-negative, got %v", ErrBadParam, m.variance)
	case m.lenScale <= 0:
		return fmt.Errorf("%w: len_scale must be positive, got %v", ErrBadParam, m.lenScale)
	case m.nugget < 0:
		return fmt.Errorf("%w: nugget must be non-negative, got %v", ErrBadParam, m.nugget)
	case m.rescale <= 0:
		return fmt.Errorf("%w: rescale must be positive, got %v", ErrBadParam, m.rescale)
	case m.class == ClassStable && m.alpha <= 0:
		return fmt.Errorf("%w: alpha must be positive, got %v", ErrBadParam, m.alpha)
	case m.class == ClassMatern && m.nu <= 0:
		return fmt.Errorf("%w: nu must be positive, got %v", ErrBadParam, m.nu)
	}

	return nil
}

// Correlation evaluates the dimensionless correlation at distance h:
// cor(h·rescale/len_scale). It is 1 at h = 0 and decays towards 0.
func (m *Model) Correlation(h float64) float64 {
	return m.cor(h * m.rescale / m.lenScale)
}

// Covariance evaluates var·correlation(h).
func (m *Model) Covariance(h float64) float64 {
	return m.variance * m.Correlation(h)
}

// Variogram evaluates nugget + var·(1 − correlation(h)); with the
// rescale factors the convert package derives, this agrees with the
// originating variogram kernel.
func (m *Model) Variogram(h float64) float64 {
	return m.nugget + m.variance*(1.0-m.Correlation(h))
}
