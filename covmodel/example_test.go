package covmodel_test

import (
	"fmt"

	"github.com/variolab/vgram/convert"
	"github.com/variolab/vgram/covmodel"
)

// //////////////////////////////////////////////////////////////////////////////
// Example (end-to-end translation)
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A spherical variogram was fitted with sill 6, nugget 1 and
//	effective range 10 in two dimensions. Translate it into a
//	covariance model and evaluate the model at a few lags.
//
// Use case:
//
//	Feeding a fitted variogram into field generation or kriging while
//	keeping both range conventions consistent.
func Example() {
	tr, err := convert.Bind(covmodel.Library{})
	if err != nil {
		fmt.Println("bind failed:", err)

		return
	}

	got, err := tr.Translate(convert.Describe{
		Name:           "spherical",
		Dim:            2,
		Sill:           6.0,
		Nugget:         1.0,
		EffectiveRange: 10.0,
	}, nil)
	if err != nil {
		fmt.Println("translate failed:", err)

		return
	}

	m := got.(*covmodel.Model)
	fmt.Printf("class=%s dim=%d var=%.1f len_scale=%.1f nugget=%.1f rescale=%.1f\n",
		m.Class(), m.Dim(), m.Var(), m.LenScale(), m.Nugget(), m.Rescale())
	for _, h := range []float64{0, 5, 10, 15} {
		fmt.Printf("γ(%2.0f)=%.4f\n", h, m.Variogram(h))
	}
	// Output:
	// class=Spherical dim=2 var=5.0 len_scale=10.0 nugget=1.0 rescale=1.0
	// γ( 0)=1.0000
	// γ( 5)=4.4375
	// γ(10)=6.0000
	// γ(15)=6.0000
}
