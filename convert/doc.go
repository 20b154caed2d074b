// Package convert translates a fitted variogram's describe record into
// the constructor parameters of a covariance-model library.
//
// 🚀 What does convert do?
//
//	A fitted variogram is summarized by its effective range, sill,
//	nugget and (for stable/matérn) a shape parameter. Covariance-model
//	libraries parametrize the same curves differently — partial
//	variance instead of total sill, a native length scale instead of
//	the effective range, renamed shape parameters. convert composes the
//	four independent transformations that reconcile the two worlds:
//	  • passthrough — dim, nugget copied as-is
//	  • derivation  — var = sill − nugget, len_scale = effective_range
//	  • renaming    — shape → alpha, smoothness → nu
//	  • rescaling   — a per-family factor mapping the "95% of sill"
//	    effective-range convention onto the library's native range
//
// ✨ Guarantees:
//   - Fail-fast – a missing provider, an incompatible provider version
//     (below 1.3) or an unknown family is a classified error, never a
//     silent fallback
//   - Atomic – translation either fully succeeds or returns an error;
//     no partial parameter sets escape
//   - Idempotent – same describe record + overrides ⇒ equivalent model
//   - Immutable registry – the per-family table is fixed at init;
//     supporting a new family is a code change, not runtime mutation
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/variolab/vgram/convert"
//	  "github.com/variolab/vgram/covmodel"
//	)
//
//	tr, err := convert.Bind(covmodel.Library{})   // gate once
//	if err != nil { … }                           // ErrMissingDependency / ErrUnsupportedVersion
//
//	m, err := tr.Translate(convert.Describe{
//	  Name: "spherical", Dim: 2,
//	  Sill: 6.0, Nugget: 1.0, EffectiveRange: 10.0,
//	}, nil)
//
// Caller-supplied overrides merge last and win over every derived
// value, including dim and rescale:
//
//	m, err = tr.Translate(d, convert.Params{convert.KeyRescale: 9.9})
//
// All exported state is immutable after package init; every operation
// is a pure, synchronous translation safe for concurrent use.
package convert
