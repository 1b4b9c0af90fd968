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

//go:generate go run ../cmd/adgen all

// Package ad provides a forward-mode automatic differentiation scalar that
// carries second derivatives.
//
// An Ad holds a value together with its gradient (length N) and Hessian
// (N×N) with respect to N independent variables. Arithmetic propagates all
// three through the product and quotient rules.
//
// # Operators
//
// Go has no operator overloading, so each operator is a function. Every
// binary operator exists in four forms, one per combination of operands
// passed by value (Ad) or by reference (*Ad):
//
//	Add(a, b Ad) Ad
//	AddValRef(a Ad, b *Ad) Ad
//	AddRefVal(a *Ad, b Ad) Ad
//	AddRefRef(a, b *Ad) Ad
//
// All four compute exactly the same result. Negation has Neg and NegRef,
// and every compound assignment has a by-value and by-reference right
// operand:
//
//	x.AddAssign(y)     // x = x + y
//	x.AddAssignRef(&y) // x = x + y
//
// These functions live in operators.gen.go and scalar_matrix.gen.go,
// which are written by cmd/adgen. Do not edit them by hand; run
// go generate instead.
//
// # Failures
//
// Division by an Ad whose value is exactly zero panics with
// ErrDivisionByZero instead of producing Inf or NaN. Rem and RemAssign
// have no derivative rule and always panic with ErrUnimplemented.
//
// # Example Usage
//
//	x := ad.Active(1.5, 0, 2)
//	y := ad.Active(-0.5, 1, 2)
//	f := ad.Mul(ad.Add(x, y), x) // (x + y) * x
//	fmt.Println(f.Value(), f.Grad(), f.Hess())
package ad
