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

// Package sparse assembles the value, gradient and Hessian of an objective
// that is a sum of small local terms.
//
// Each term reads a few global variables, listed by a stencil of indices.
// The term is evaluated on Ad variables local to the stencil, and its local
// derivatives are scattered back to the global indices:
//
//	f(x) = Σₛ term(x[s₀], x[s₁], ...)
//
// Stencils are evaluated concurrently. Results are always reduced in
// stencil order, so repeated runs return bit-identical sums.
package sparse

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-hessian/ad"
)

// Objective is one local term of a sum. Eval receives one active variable
// per stencil index, in stencil order.
type Objective interface {
	Eval(vars []ad.Ad) ad.Ad
}

// ObjectiveFunc adapts a function to Objective.
type ObjectiveFunc func(vars []ad.Ad) ad.Ad

func (f ObjectiveFunc) Eval(vars []ad.Ad) ad.Ad { return f(vars) }

// Triplet is one entry of a Hessian in coordinate form. A global entry may
// appear in several triplets; its value is their sum.
type Triplet struct {
	Row, Col int
	Value    float64
}

// Computed holds an objective's value, gradient and Hessian triplets.
type Computed struct {
	Value        float64
	Grad         *mat.VecDense
	HessTriplets []Triplet
}

// Compute evaluates obj on every stencil at x and returns the summed value,
// the assembled gradient and the Hessian triplets in stencil order.
func Compute(ctx context.Context, obj Objective, x mat.Vector, stencils [][]int) (Computed, error) {
	terms, err := evalAll(ctx, obj, x, stencils)
	if err != nil {
		return Computed{}, err
	}
	return Computed{
		Value:        sumValues(terms),
		Grad:         assembleGrad(x.Len(), terms, stencils),
		HessTriplets: triplets(terms, stencils),
	}, nil
}

// Value returns the summed value of obj over stencils at x.
func Value(ctx context.Context, obj Objective, x mat.Vector, stencils [][]int) (float64, error) {
	terms, err := evalAll(ctx, obj, x, stencils)
	if err != nil {
		return 0, err
	}
	return sumValues(terms), nil
}

// Grad returns the global gradient of obj over stencils at x.
func Grad(ctx context.Context, obj Objective, x mat.Vector, stencils [][]int) (*mat.VecDense, error) {
	terms, err := evalAll(ctx, obj, x, stencils)
	if err != nil {
		return nil, err
	}
	return assembleGrad(x.Len(), terms, stencils), nil
}

// HessTriplets returns the Hessian of obj over stencils at x as
// unreduced triplets, len(s)² per stencil s.
func HessTriplets(ctx context.Context, obj Objective, x mat.Vector, stencils [][]int) ([]Triplet, error) {
	terms, err := evalAll(ctx, obj, x, stencils)
	if err != nil {
		return nil, err
	}
	return triplets(terms, stencils), nil
}

// Hess returns the Hessian of obj over stencils at x as a dense symmetric
// matrix of dimension x.Len().
func Hess(ctx context.Context, obj Objective, x mat.Vector, stencils [][]int) (*mat.SymDense, error) {
	trips, err := HessTriplets(ctx, obj, x, stencils)
	if err != nil {
		return nil, err
	}
	return Assemble(x.Len(), trips), nil
}

// Assemble sums triplets into a dense symmetric matrix of dimension n.
// Triplets below the diagonal are skipped; a symmetric triplet set carries
// each off-diagonal value once on each side.
func Assemble(n int, trips []Triplet) *mat.SymDense {
	res := mat.NewSymDense(n, nil)
	for _, t := range trips {
		if t.Row > t.Col {
			continue
		}
		res.SetSym(t.Row, t.Col, res.At(t.Row, t.Col)+t.Value)
	}
	return res
}

// evalAll evaluates obj on every stencil. terms[i] belongs to stencils[i].
func evalAll(ctx context.Context, obj Objective, x mat.Vector, stencils [][]int) ([]ad.Ad, error) {
	n := x.Len()
	for i, s := range stencils {
		if len(s) == 0 {
			return nil, fmt.Errorf("stencil %d is empty", i)
		}
		for _, idx := range s {
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("stencil %d: index %d out of range [0, %d)", i, idx, n)
			}
		}
	}

	terms := make([]ad.Ad, len(stencils))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range stencils {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			values := make([]float64, len(s))
			for j, idx := range s {
				values[j] = x.AtVec(idx)
			}
			terms[i] = obj.Eval(ad.ActiveVector(values))
			if terms[i].Dim() != len(s) {
				return fmt.Errorf("stencil %d: objective returned dimension %d, want %d", i, terms[i].Dim(), len(s))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return terms, nil
}

func sumValues(terms []ad.Ad) float64 {
	var sum float64
	for _, t := range terms {
		sum += t.Value()
	}
	return sum
}

func assembleGrad(n int, terms []ad.Ad, stencils [][]int) *mat.VecDense {
	res := mat.NewVecDense(n, nil)
	for i, t := range terms {
		g := t.Grad()
		for local, global := range stencils[i] {
			res.SetVec(global, res.AtVec(global)+g.AtVec(local))
		}
	}
	return res
}

func triplets(terms []ad.Ad, stencils [][]int) []Triplet {
	var size int
	for _, s := range stencils {
		size += len(s) * len(s)
	}
	res := make([]Triplet, 0, size)
	for i, t := range terms {
		h := t.Hess()
		s := stencils[i]
		for r, row := range s {
			for c, col := range s {
				res = append(res, Triplet{Row: row, Col: col, Value: h.At(r, c)})
			}
		}
	}
	return res
}
