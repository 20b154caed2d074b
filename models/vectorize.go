package models

// Lags constrains the lag argument of every kernel: either a single
// lag distance or an ordered sequence of lag distances.
type Lags interface {
	float64 | []float64
}

// apply lifts a bound scalar kernel k over h: a float64 yields a single
// semivariance, a []float64 yields a fresh slice of the same length with
// k applied elementwise in input order. No aggregation, no filtering,
// no reordering.
func apply[L Lags](k func(float64) float64, h L) L {
	switch v := any(h).(type) {
	case float64:
		return any(k(v)).(L)
	case []float64:
		out := make([]float64, len(v))
		for i, hi := range v {
			out[i] = k(hi)
		}

		return any(out).(L)
	}

	// Lags admits exactly the two cases above.
	panic("models: unreachable lag type")
}
