package convert

import (
	"fmt"
	"math"
)

// entry describes how one variogram family maps onto the external
// covariance-model contract: the class to instantiate, the rename
// table from external parameter names to internal describe keys, and
// the rescale rule.
type entry struct {
	class   string
	argMap  map[string]string
	rescale Rescale
}

// modelMap is the per-family translation table. It is built once at
// package init and never mutated afterwards; a family absent from the
// table is rejected with ErrUnsupportedModel. Supporting a new family
// means adding an entry consistent with both range conventions.
var modelMap = map[string]entry{
	"spherical":   {class: "Spherical", rescale: Constant(1.0)},
	"exponential": {class: "Exponential", rescale: Constant(3.0)},
	"gaussian":    {class: "Gaussian", rescale: Constant(2.0)},
	"cubic":       {class: "Cubic", rescale: Constant(1.0)},
	"stable": {
		class:   "Stable",
		argMap:  map[string]string{"alpha": "shape"},
		rescale: Derived(stableRescale),
	},
	"matern": {
		class:   "Matern",
		argMap:  map[string]string{"nu": "smoothness"},
		rescale: Derived(maternRescale),
	},
}

// stableRescale maps the stable family's a = r/3^(1/s) convention onto
// the external range parameter: rescale = 3^(1/shape).
func stableRescale(d Describe) (float64, error) {
	if d.Shape == 0 {
		return 0, fmt.Errorf("%w: stable rescale needs \"shape\"", ErrBadDescribe)
	}

	return math.Pow(3.0, 1.0/d.Shape), nil
}

// maternRescale approximates the matérn family's convention gap: 4.0
// over the usual smoothness window 0.5 < ν < 10.0, 6.0 outside it
// (the asymptotic sill is approached ever more slowly at the extremes).
func maternRescale(d Describe) (float64, error) {
	if d.Smoothness == 0 {
		return 0, fmt.Errorf("%w: matern rescale needs \"smoothness\"", ErrBadDescribe)
	}
	if 0.5 < d.Smoothness && d.Smoothness < 10.0 {
		return 4.0, nil
	}

	return 6.0, nil
}
