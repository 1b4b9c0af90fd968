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

// Package norms computes differentiable norms and determinants of ad
// matrices. Every entry of a matrix is treated as one component, so the
// norms of a matrix are the norms of its flattened entries.
package norms

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-hessian/ad"
	admath "github.com/ajroetker/go-hessian/ad/contrib/math"
)

// MaxDeterminantDim is the largest matrix Determinant accepts. Cofactor
// expansion grows factorially with the dimension.
const MaxDeterminantDim = 6

// ErrTooLarge is the panic value of Determinant for matrices larger than
// MaxDeterminantDim.
var ErrTooLarge = errors.New("norms: determinant dimension too large")

func dim(m ad.Matrix) int {
	return m.At(0, 0).Dim()
}

// L1 returns the sum of the absolute values of the entries of m.
func L1(m ad.Matrix) ad.Ad {
	res := ad.Zero(dim(m))
	for _, e := range m.Entries() {
		res.AddAssign(admath.Abs(e))
	}
	return res
}

// L2Squared returns the sum of the squared entries of m.
func L2Squared(m ad.Matrix) ad.Ad {
	res := ad.Zero(dim(m))
	for _, e := range m.Entries() {
		res.AddAssign(admath.Square(e))
	}
	return res
}

// L2 returns the Euclidean (Frobenius) norm of m. Its derivatives are
// infinite when every entry is zero.
func L2(m ad.Matrix) ad.Ad {
	return admath.Sqrt(L2Squared(m))
}

// Lk returns (Σ|e|ᵏ)^(1/k) over the entries e of m. k must be at least 1.
func Lk(m ad.Matrix, k int) ad.Ad {
	if k < 1 {
		panic(fmt.Sprintf("norms: Lk order must be at least 1, got %d", k))
	}
	res := ad.Zero(dim(m))
	for _, e := range m.Entries() {
		res.AddAssign(admath.Powi(admath.Abs(e), k))
	}
	return admath.Powf(res, 1/float64(k))
}

// LInf returns the largest absolute entry of m, carrying that entry's
// derivatives.
func LInf(m ad.Matrix) ad.Ad {
	entries := m.Entries()
	res := admath.Abs(entries[0])
	for _, e := range entries[1:] {
		res = ad.Max(res, admath.Abs(e))
	}
	return res
}

// Scale returns factor·m, with factor as a constant.
func Scale(m ad.Matrix, factor float64) ad.Matrix {
	return ad.MulMatrix(ad.Inactive(factor, dim(m)), m)
}

// Determinant returns det(m) for a square m of dimension at most
// MaxDeterminantDim. It panics with ErrTooLarge for larger matrices.
func Determinant(m ad.Matrix) ad.Ad {
	r, c := m.Dims()
	if r != c {
		panic(fmt.Sprintf("norms: determinant of non-square %dx%d matrix", r, c))
	}
	if r > MaxDeterminantDim {
		panic(ErrTooLarge)
	}
	rows := make([]int, r)
	cols := make([]int, r)
	for i := range r {
		rows[i], cols[i] = i, i
	}
	return cofactor(m, rows, cols)
}

// cofactor expands the minor of m selected by rows and cols along its
// first row.
func cofactor(m ad.Matrix, rows, cols []int) ad.Ad {
	switch len(rows) {
	case 1:
		return m.At(rows[0], cols[0]).Clone()
	case 2:
		a, b := m.At(rows[0], cols[0]), m.At(rows[0], cols[1])
		c, d := m.At(rows[1], cols[0]), m.At(rows[1], cols[1])
		return ad.Sub(ad.Mul(a, d), ad.Mul(c, b))
	}

	sub := make([]int, 0, len(cols)-1)
	var res ad.Ad
	for k, col := range cols {
		sub = append(sub[:0], cols[:k]...)
		sub = append(sub, cols[k+1:]...)
		term := ad.Mul(m.At(rows[0], col), cofactor(m, rows[1:], sub))
		switch {
		case k == 0:
			res = term
		case k%2 == 0:
			res.AddAssign(term)
		default:
			res.SubAssign(term)
		}
	}
	return res
}
