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

// Package math provides the elementary functions of ad.Ad.
//
// Every function maps an Ad through a scalar function f with the chain rule
// (see ad.Chain), so the result carries f's value together with its first
// and second derivatives with respect to the original variables.
//
// Functions outside their real domain panic with a *DomainError rather than
// returning NaN derivatives.
package math

import (
	"fmt"
	stdmath "math"

	"github.com/ajroetker/go-hessian/ad"
)

// DomainError is the panic value of a function evaluated outside its domain.
type DomainError struct {
	Func  string  // function name, e.g. "Sqrt"
	Value float64 // offending argument
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s out of domain: %v", e.Func, e.Value)
}

func domain(fn string, x float64) {
	panic(&DomainError{Func: fn, Value: x})
}

// Abs returns |a|. At zero the derivative of the positive branch is used.
func Abs(a ad.Ad) ad.Ad {
	x := a.Value()
	sign := 1.0
	if x < 0 {
		sign = -1
	}
	return ad.Chain(stdmath.Abs(x), sign, 0, a)
}

// Sign returns -1, 0 or 1 as a constant with zero derivatives.
func Sign(a ad.Ad) ad.Ad {
	x := a.Value()
	switch {
	case x > 0:
		return ad.Inactive(1, a.Dim())
	case x < 0:
		return ad.Inactive(-1, a.Dim())
	}
	return ad.Zero(a.Dim())
}

// Recip returns 1/a. It panics with ad.ErrDivisionByZero if a is exactly zero.
func Recip(a ad.Ad) ad.Ad {
	return ValueDiv(1, a)
}

// Square returns a².
func Square(a ad.Ad) ad.Ad {
	x := a.Value()
	return ad.Chain(x*x, 2*x, 2, a)
}

// Sqrt returns √a.
func Sqrt(a ad.Ad) ad.Ad {
	x := a.Value()
	if x < 0 {
		domain("Sqrt", x)
	}
	f := stdmath.Sqrt(x)
	return ad.Chain(f, 0.5/f, -0.25/(f*x), a)
}

// Cbrt returns ∛a.
func Cbrt(a ad.Ad) ad.Ad {
	x := a.Value()
	f := stdmath.Cbrt(x)
	return ad.Chain(f, 1/(3*f*f), -2/(9*f*f*x), a)
}

// Exp returns eᵃ.
func Exp(a ad.Ad) ad.Ad {
	f := stdmath.Exp(a.Value())
	return ad.Chain(f, f, f, a)
}

// Exp2 returns 2ᵃ.
func Exp2(a ad.Ad) ad.Ad {
	f := stdmath.Exp2(a.Value())
	return ad.Chain(f, f*stdmath.Ln2, f*stdmath.Ln2*stdmath.Ln2, a)
}

// Ln returns the natural logarithm of a.
func Ln(a ad.Ad) ad.Ad {
	x := a.Value()
	if x <= 0 {
		domain("Ln", x)
	}
	inv := 1 / x
	return ad.Chain(stdmath.Log(x), inv, -inv*inv, a)
}

// Ln1p returns ln(1 + a), accurate when a is near zero. a must exceed -1.
func Ln1p(a ad.Ad) ad.Ad {
	x := a.Value()
	if x <= -1 {
		domain("Ln1p", x)
	}
	inv := 1 / (1 + x)
	return ad.Chain(stdmath.Log1p(x), inv, -inv*inv, a)
}

// Log2 returns the binary logarithm of a.
func Log2(a ad.Ad) ad.Ad {
	x := a.Value()
	if x <= 0 {
		domain("Log2", x)
	}
	inv := 1 / x / stdmath.Ln2
	return ad.Chain(stdmath.Log2(x), inv, -inv/x, a)
}

// Log10 returns the decimal logarithm of a.
func Log10(a ad.Ad) ad.Ad {
	x := a.Value()
	if x <= 0 {
		domain("Log10", x)
	}
	inv := 1 / x / stdmath.Ln10
	return ad.Chain(stdmath.Log10(x), inv, -inv/x, a)
}

// Sin returns the sine of the radian argument a.
func Sin(a ad.Ad) ad.Ad {
	s, c := stdmath.Sincos(a.Value())
	return ad.Chain(s, c, -s, a)
}

// Cos returns the cosine of the radian argument a.
func Cos(a ad.Ad) ad.Ad {
	s, c := stdmath.Sincos(a.Value())
	return ad.Chain(c, -s, -c, a)
}

// Tan returns the tangent of the radian argument a.
func Tan(a ad.Ad) ad.Ad {
	x := a.Value()
	c := stdmath.Cos(x)
	c2 := c * c
	return ad.Chain(stdmath.Tan(x), 1/c2, 2*stdmath.Sin(x)/(c2*c), a)
}

// Asin returns the arcsine of a, which must lie in [-1, 1].
func Asin(a ad.Ad) ad.Ad {
	x := a.Value()
	if x < -1 || x > 1 {
		domain("Asin", x)
	}
	s := 1 - x*x
	r := stdmath.Sqrt(s)
	return ad.Chain(stdmath.Asin(x), 1/r, x/(s*r), a)
}

// Acos returns the arccosine of a, which must lie in [-1, 1].
func Acos(a ad.Ad) ad.Ad {
	x := a.Value()
	if x < -1 || x > 1 {
		domain("Acos", x)
	}
	s := 1 - x*x
	r := stdmath.Sqrt(s)
	return ad.Chain(stdmath.Acos(x), -1/r, -x/(s*r), a)
}

// Atan returns the arctangent of a.
func Atan(a ad.Ad) ad.Ad {
	x := a.Value()
	s := x*x + 1
	return ad.Chain(stdmath.Atan(x), 1/s, -2*x/(s*s), a)
}

// Sinh returns the hyperbolic sine of a.
func Sinh(a ad.Ad) ad.Ad {
	x := a.Value()
	sh, ch := stdmath.Sinh(x), stdmath.Cosh(x)
	return ad.Chain(sh, ch, sh, a)
}

// Cosh returns the hyperbolic cosine of a.
func Cosh(a ad.Ad) ad.Ad {
	x := a.Value()
	sh, ch := stdmath.Sinh(x), stdmath.Cosh(x)
	return ad.Chain(ch, sh, ch, a)
}

// Tanh returns the hyperbolic tangent of a.
func Tanh(a ad.Ad) ad.Ad {
	x := a.Value()
	ch := stdmath.Cosh(x)
	ch2 := ch * ch
	return ad.Chain(stdmath.Tanh(x), 1/ch2, -2*stdmath.Sinh(x)/(ch2*ch), a)
}

// Asinh returns the inverse hyperbolic sine of a.
func Asinh(a ad.Ad) ad.Ad {
	x := a.Value()
	s := x*x + 1
	r := stdmath.Sqrt(s)
	return ad.Chain(stdmath.Asinh(x), 1/r, -x/(s*r), a)
}

// Acosh returns the inverse hyperbolic cosine of a, which must be at least 1.
func Acosh(a ad.Ad) ad.Ad {
	x := a.Value()
	if x < 1 {
		domain("Acosh", x)
	}
	sm, sp := x-1, x+1
	r := stdmath.Sqrt(sm * sp)
	return ad.Chain(stdmath.Acosh(x), 1/r, -x/(r*sm*sp), a)
}

// Atanh returns the inverse hyperbolic tangent of a, which must lie in (-1, 1).
func Atanh(a ad.Ad) ad.Ad {
	x := a.Value()
	if x <= -1 || x >= 1 {
		domain("Atanh", x)
	}
	s := 1 - x*x
	return ad.Chain(stdmath.Atanh(x), 1/s, 2*x/(s*s), a)
}

// Hypot returns √(a² + b²).
func Hypot(a, b ad.Ad) ad.Ad {
	return Sqrt(ad.Add(Square(a), Square(b)))
}

// Powi returns aⁿ. 0⁰ is undefined and panics.
func Powi(a ad.Ad, n int) ad.Ad {
	x := a.Value()
	if x == 0 && n == 0 {
		domain("Powi", x)
	}
	e := float64(n)
	return ad.Chain(stdmath.Pow(x, e), powTerm(e, x, e-1), powTerm(e*(e-1), x, e-2), a)
}

// Powf returns aᵉ for a constant exponent e. a must not be negative.
func Powf(a ad.Ad, e float64) ad.Ad {
	x := a.Value()
	if x < 0 {
		domain("Powf", x)
	}
	return ad.Chain(stdmath.Pow(x, e), powTerm(e, x, e-1), powTerm(e*(e-1), x, e-2), a)
}

// powTerm returns coef·xᵉ, and 0 whenever coef is 0 even if xᵉ is infinite.
func powTerm(coef, x, e float64) float64 {
	if coef == 0 {
		return 0
	}
	return coef * stdmath.Pow(x, e)
}

// ValuePow returns cᵃ for a positive constant base c.
func ValuePow(c float64, a ad.Ad) ad.Ad {
	if c <= 0 {
		domain("ValuePow", c)
	}
	f := stdmath.Pow(c, a.Value())
	l := stdmath.Log(c)
	return ad.Chain(f, f*l, f*l*l, a)
}

// ValueDiv returns c/a. It panics with ad.ErrDivisionByZero if a is exactly
// zero.
func ValueDiv(c float64, a ad.Ad) ad.Ad {
	x := a.Value()
	if stdmath.Abs(x) == 0 {
		panic(ad.ErrDivisionByZero)
	}
	return ad.Chain(c/x, -c/(x*x), 2*c/(x*x*x), a)
}

// AddValue returns a + c.
func AddValue(a ad.Ad, c float64) ad.Ad {
	return ad.Add(a, ad.Inactive(c, a.Dim()))
}

// SubValue returns a - c.
func SubValue(a ad.Ad, c float64) ad.Ad {
	return ad.Sub(a, ad.Inactive(c, a.Dim()))
}

// MulValue returns c·a.
func MulValue(a ad.Ad, c float64) ad.Ad {
	return ad.Mul(a, ad.Inactive(c, a.Dim()))
}

// DivValue returns a/c. It panics with ad.ErrDivisionByZero if c is zero.
func DivValue(a ad.Ad, c float64) ad.Ad {
	return ad.Div(a, ad.Inactive(c, a.Dim()))
}

// MulAdd returns m·a + b.
func MulAdd(a, m, b ad.Ad) ad.Ad {
	return ad.Add(ad.Mul(m, a), b)
}
