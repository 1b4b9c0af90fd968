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

package ad

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDivisionByZero is the panic value of every division whose divisor
	// has a value of exactly zero.
	ErrDivisionByZero = errors.New("Division By Zero!")

	// ErrUnimplemented is the panic value of operations that exist but have
	// no derivative rule, such as Rem.
	ErrUnimplemented = errors.New("not implemented")
)

// Ad is a scalar together with its gradient and Hessian with respect to N
// variables.
//
// Ad values are immutable: every operator allocates a fresh result and never
// writes through its operands, so copying an Ad is cheap and safe. The zero
// Ad has no dimension and must not be used as an operand; build values with
// Zero, Inactive, Active or Known.
type Ad struct {
	value float64
	grad  *mat.VecDense
	hess  *mat.SymDense
}

// zeroed returns an Ad of dimension n with all components zero.
func zeroed(n int) Ad {
	if n <= 0 {
		panic(fmt.Sprintf("ad: dimension must be positive, got %d", n))
	}
	return Ad{
		grad: mat.NewVecDense(n, nil),
		hess: mat.NewSymDense(n, nil),
	}
}

// Zero returns the constant 0 in dimension n.
func Zero(n int) Ad {
	return zeroed(n)
}

// One returns the constant 1 in dimension n.
func One(n int) Ad {
	return Inactive(1, n)
}

// Inactive returns a constant: its gradient and Hessian are zero.
func Inactive(value float64, n int) Ad {
	res := zeroed(n)
	res.value = value
	return res
}

// Active returns the independent variable idx of n, i.e. a value whose
// gradient is the unit vector e_idx and whose Hessian is zero.
func Active(value float64, idx, n int) Ad {
	if idx < 0 || idx >= n {
		panic(fmt.Sprintf("ad: variable index %d out of range [0, %d)", idx, n))
	}
	res := zeroed(n)
	res.value = value
	res.grad.SetVec(idx, 1)
	return res
}

// ActiveScalar returns the single variable of a univariate problem.
func ActiveScalar(value float64) Ad {
	return Active(value, 0, 1)
}

// Known returns an Ad with explicitly given derivatives. grad and hess are
// copied.
func Known(value float64, grad mat.Vector, hess mat.Symmetric) Ad {
	n := grad.Len()
	if hess.SymmetricDim() != n {
		panic(fmt.Sprintf("ad: hessian dimension %d does not match gradient length %d", hess.SymmetricDim(), n))
	}
	res := zeroed(n)
	res.value = value
	res.grad.CopyVec(grad)
	res.hess.CopySym(hess)
	return res
}

// KnownScalar is Known for the univariate case.
func KnownScalar(value, grad, hess float64) Ad {
	res := zeroed(1)
	res.value = value
	res.grad.SetVec(0, grad)
	res.hess.SetSym(0, 0, hess)
	return res
}

// ActiveVector returns len(values) independent variables, the i-th being
// active in dimension i.
func ActiveVector(values []float64) []Ad {
	n := len(values)
	res := make([]Ad, n)
	for i, v := range values {
		res[i] = Active(v, i, n)
	}
	return res
}

// InactiveVector returns constants of dimension n for each value.
func InactiveVector(values []float64, n int) []Ad {
	res := make([]Ad, len(values))
	for i, v := range values {
		res[i] = Inactive(v, n)
	}
	return res
}

// Chain applies a univariate function f to a given f(a) = value,
// f'(a) = d and f''(a) = d2:
//
//	grad = d * ∇a
//	hess = d2 * ∇a ∇aᵀ + d * ∇²a
func Chain(value, d, d2 float64, a Ad) Ad {
	res := zeroed(a.Dim())
	res.value = value
	res.grad.ScaleVec(d, a.grad)
	res.hess.ScaleSym(d, a.hess)
	res.hess.SymRankOne(res.hess, d2, a.grad)
	return res
}

// Value returns the value.
func (a Ad) Value() float64 {
	return a.value
}

// Grad returns a copy of the gradient.
func (a Ad) Grad() *mat.VecDense {
	return mat.VecDenseCopyOf(a.grad)
}

// Hess returns a copy of the Hessian.
func (a Ad) Hess() *mat.SymDense {
	res := mat.NewSymDense(a.Dim(), nil)
	res.CopySym(a.hess)
	return res
}

// Dim returns the number of variables a is differentiated against, or 0 for
// the zero Ad.
func (a Ad) Dim() int {
	if a.grad == nil {
		return 0
	}
	return a.grad.Len()
}

// Clone returns a deep copy of a.
func (a Ad) Clone() Ad {
	return Known(a.value, a.grad, a.hess)
}

// IsZero reports whether the value, gradient and Hessian are all zero.
func (a Ad) IsZero() bool {
	if a.value != 0 {
		return false
	}
	return a.all(func(x float64) bool { return x == 0 })
}

// IsFinite reports whether no component is infinite or NaN.
func (a Ad) IsFinite() bool {
	if math.IsInf(a.value, 0) || math.IsNaN(a.value) {
		return false
	}
	return a.all(func(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) })
}

func (a Ad) all(pred func(float64) bool) bool {
	n := a.Dim()
	for i := range n {
		if !pred(a.grad.AtVec(i)) {
			return false
		}
		for j := i; j < n; j++ {
			if !pred(a.hess.At(i, j)) {
				return false
			}
		}
	}
	return true
}

// String formats the value only.
func (a Ad) String() string {
	return fmt.Sprintf("Ad[%v]", a.value)
}
