// Package covmodel is a native covariance-model library: the backend
// side of the translation contract, parametrized the way external
// field-generation libraries parametrize their models.
//
// 🚀 What is a covariance model?
//
//	The same six families the models package evaluates as variograms,
//	expressed through a dimensionless correlation function cor(x):
//
//	  correlation(h) = cor(h·rescale/len_scale)
//	  covariance(h)  = var·correlation(h)
//	  variogram(h)   = nugget + var·(1 − correlation(h))
//
//	Classes: Spherical, Exponential, Gaussian, Cubic, Stable (alpha),
//	Matern (nu).
//
// ✨ Conventions:
//   - constructor keywords: dim, var, len_scale, nugget, rescale, plus
//     alpha (Stable) or nu (Matern) — exactly the set convert derives
//   - rescale folds a caller's range convention into the length scale;
//     with the factors convert derives, a translated model's variogram
//     agrees with the originating models/ kernel
//   - strict constructors: unknown classes, unknown keywords, and
//     out-of-domain values are classified errors
//   - a Model is immutable once built and safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/variolab/vgram/covmodel"
//
//	m, err := covmodel.New(covmodel.ClassExponential, map[string]float64{
//	  "dim": 2, "var": 5.0, "len_scale": 10.0, "nugget": 1.0, "rescale": 3.0,
//	})
//	g := m.Variogram(10.0) // ≈ 1 + 5·(1 − e⁻³)
//
// Library{} exposes the package as a provider for convert.Bind; it
// reports contract revision 1.3.0 and so passes the version gate.
package covmodel
