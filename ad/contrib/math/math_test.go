// Copyright 2025 go-hessian Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math_test

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-hessian/ad"
	admath "github.com/ajroetker/go-hessian/ad/contrib/math"
)

// centralDiff returns finite-difference estimates of f'(x) and f''(x).
func centralDiff(f func(float64) float64, x float64) (d, d2 float64) {
	const h = 1e-4
	fp, f0, fm := f(x+h), f(x), f(x-h)
	return (fp - fm) / (2 * h), (fp - 2*f0 + fm) / (h * h)
}

func TestElementaryDerivatives(t *testing.T) {
	testCases := []struct {
		name string
		fn   func(ad.Ad) ad.Ad
		ref  func(float64) float64
		xs   []float64
	}{
		{"Abs", admath.Abs, stdmath.Abs, []float64{-1.3, 2}},
		{"Recip", admath.Recip, func(x float64) float64 { return 1 / x }, []float64{1.7, -0.6}},
		{"Square", admath.Square, func(x float64) float64 { return x * x }, []float64{-3, 0.4}},
		{"Sqrt", admath.Sqrt, stdmath.Sqrt, []float64{0.5, 2}},
		{"Cbrt", admath.Cbrt, stdmath.Cbrt, []float64{2, -2}},
		{"Exp", admath.Exp, stdmath.Exp, []float64{-1, 0.5}},
		{"Exp2", admath.Exp2, stdmath.Exp2, []float64{-1, 0.5}},
		{"Ln", admath.Ln, stdmath.Log, []float64{0.5, 2}},
		{"Ln1p", admath.Ln1p, stdmath.Log1p, []float64{-0.5, 1e-3, 2}},
		{"Log2", admath.Log2, stdmath.Log2, []float64{0.5, 2}},
		{"Log10", admath.Log10, stdmath.Log10, []float64{0.5, 2}},
		{"Sin", admath.Sin, stdmath.Sin, []float64{0.7, -2}},
		{"Cos", admath.Cos, stdmath.Cos, []float64{0.7, -2}},
		{"Tan", admath.Tan, stdmath.Tan, []float64{0.7, -0.3}},
		{"Asin", admath.Asin, stdmath.Asin, []float64{0.3, -0.5}},
		{"Acos", admath.Acos, stdmath.Acos, []float64{0.3, -0.5}},
		{"Atan", admath.Atan, stdmath.Atan, []float64{0.5, -2}},
		{"Sinh", admath.Sinh, stdmath.Sinh, []float64{0.5, -1}},
		{"Cosh", admath.Cosh, stdmath.Cosh, []float64{0.5, -1}},
		{"Tanh", admath.Tanh, stdmath.Tanh, []float64{0.5, -1}},
		{"Asinh", admath.Asinh, stdmath.Asinh, []float64{0.5, -1}},
		{"Acosh", admath.Acosh, stdmath.Acosh, []float64{1.5, 3}},
		{"Atanh", admath.Atanh, stdmath.Atanh, []float64{0.3, -0.5}},
		{"Powi3", func(a ad.Ad) ad.Ad { return admath.Powi(a, 3) },
			func(x float64) float64 { return x * x * x }, []float64{-1.5, 2}},
		{"Powi-2", func(a ad.Ad) ad.Ad { return admath.Powi(a, -2) },
			func(x float64) float64 { return 1 / (x * x) }, []float64{-1.5, 2}},
		{"Powf", func(a ad.Ad) ad.Ad { return admath.Powf(a, 2.5) },
			func(x float64) float64 { return stdmath.Pow(x, 2.5) }, []float64{0.5, 2}},
		{"ValuePow", func(a ad.Ad) ad.Ad { return admath.ValuePow(3, a) },
			func(x float64) float64 { return stdmath.Pow(3, x) }, []float64{-1, 0.5}},
		{"ValueDiv", func(a ad.Ad) ad.Ad { return admath.ValueDiv(3, a) },
			func(x float64) float64 { return 3 / x }, []float64{1.5, -2}},
		{"AddValue", func(a ad.Ad) ad.Ad { return admath.AddValue(a, 2) },
			func(x float64) float64 { return x + 2 }, []float64{1}},
		{"SubValue", func(a ad.Ad) ad.Ad { return admath.SubValue(a, 2) },
			func(x float64) float64 { return x - 2 }, []float64{1}},
		{"MulValue", func(a ad.Ad) ad.Ad { return admath.MulValue(a, 2) },
			func(x float64) float64 { return 2 * x }, []float64{1}},
		{"DivValue", func(a ad.Ad) ad.Ad { return admath.DivValue(a, 2) },
			func(x float64) float64 { return x / 2 }, []float64{1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, x := range tc.xs {
				got := tc.fn(ad.ActiveScalar(x))
				d, d2 := centralDiff(tc.ref, x)
				scale := stdmath.Max(1, stdmath.Abs(tc.ref(x)))
				assert.InDelta(t, tc.ref(x), got.Value(), 1e-12*scale, "value at %v", x)
				assert.InDelta(t, d, got.Grad().AtVec(0), 1e-6*scale, "first derivative at %v", x)
				assert.InDelta(t, d2, got.Hess().At(0, 0), 1e-3*scale, "second derivative at %v", x)
			}
		})
	}
}

func TestCompositionTwoVariables(t *testing.T) {
	x := ad.Active(0.3, 0, 2)
	y := ad.Active(0.5, 1, 2)
	f := admath.Exp(ad.Mul(x, y))

	e := stdmath.Exp(0.15)
	wantGrad := mat.NewVecDense(2, []float64{e * 0.5, e * 0.3})
	wantHess := mat.NewSymDense(2, []float64{
		e * 0.25, e * 1.15,
		e * 1.15, e * 0.09,
	})
	assert.InDelta(t, e, f.Value(), 1e-12)
	assert.True(t, mat.EqualApprox(wantGrad, f.Grad(), 1e-12))
	assert.True(t, mat.EqualApprox(wantHess, f.Hess(), 1e-12))

	h := admath.Hypot(x, y)
	r := stdmath.Hypot(0.3, 0.5)
	assert.InDelta(t, r, h.Value(), 1e-12)
	assert.True(t, mat.EqualApprox(mat.NewVecDense(2, []float64{0.3 / r, 0.5 / r}), h.Grad(), 1e-12))
}

func TestMulAdd(t *testing.T) {
	x := ad.Active(0.5, 0, 2)
	m := ad.Active(3, 1, 2)
	got := admath.MulAdd(x, m, ad.Inactive(2, 2))

	// 3·0.5 + 2, with the cross term of the product in the Hessian.
	assert.Equal(t, 3.5, got.Value())
	assert.True(t, mat.Equal(mat.NewVecDense(2, []float64{3, 0.5}), got.Grad()))
	assert.True(t, mat.Equal(mat.NewSymDense(2, []float64{0, 1, 1, 0}), got.Hess()))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, admath.Sign(ad.ActiveScalar(3)).Value())
	assert.Equal(t, -1.0, admath.Sign(ad.ActiveScalar(-3)).Value())
	assert.True(t, admath.Sign(ad.ActiveScalar(0)).IsZero())
	assert.Equal(t, 0.0, admath.Sign(ad.ActiveScalar(3)).Grad().AtVec(0))
}

func TestDomainErrors(t *testing.T) {
	testCases := []struct {
		want string
		call func()
	}{
		{"Sqrt out of domain: -1", func() { admath.Sqrt(ad.ActiveScalar(-1)) }},
		{"Ln out of domain: 0", func() { admath.Ln(ad.ActiveScalar(0)) }},
		{"Ln1p out of domain: -1", func() { admath.Ln1p(ad.ActiveScalar(-1)) }},
		{"Log2 out of domain: -2", func() { admath.Log2(ad.ActiveScalar(-2)) }},
		{"Log10 out of domain: 0", func() { admath.Log10(ad.ActiveScalar(0)) }},
		{"Asin out of domain: 1.5", func() { admath.Asin(ad.ActiveScalar(1.5)) }},
		{"Acos out of domain: -1.5", func() { admath.Acos(ad.ActiveScalar(-1.5)) }},
		{"Acosh out of domain: 0.5", func() { admath.Acosh(ad.ActiveScalar(0.5)) }},
		{"Atanh out of domain: 1", func() { admath.Atanh(ad.ActiveScalar(1)) }},
		{"Powi out of domain: 0", func() { admath.Powi(ad.ActiveScalar(0), 0) }},
		{"Powf out of domain: -1", func() { admath.Powf(ad.ActiveScalar(-1), 0.5) }},
		{"ValuePow out of domain: -2", func() { admath.ValuePow(-2, ad.ActiveScalar(1)) }},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			require.PanicsWithError(t, tc.want, tc.call)
		})
	}

	require.PanicsWithError(t, ad.ErrDivisionByZero.Error(), func() { admath.Recip(ad.Zero(1)) })
	require.PanicsWithError(t, ad.ErrDivisionByZero.Error(), func() { admath.DivValue(ad.ActiveScalar(1), 0) })
}

func TestPowiAtZero(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		got := admath.Powi(ad.ActiveScalar(0), n)
		require.True(t, got.IsFinite(), "Powi(0, %d) = %v", n, got)
	}
	assert.Equal(t, 1.0, admath.Powi(ad.ActiveScalar(0), 1).Grad().AtVec(0))
	assert.Equal(t, 2.0, admath.Powi(ad.ActiveScalar(0), 2).Hess().At(0, 0))
}
