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

package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// adType is the AD scalar type the generated units operate on.
const adType = "Ad"

// OpInfo describes one arithmetic operator of the AD type.
type OpInfo struct {
	Name        string // "add"; exported identifiers are derived from it
	Symbol      string // "+"
	Doc         string // extra sentence for the by-value form's doc comment
	Body        string // statements computing res from operands a (and b)
	Implemented bool   // false emits a unit that panics with ErrUnimplemented
}

// FuncName returns the exported name of the operator, e.g. "Add".
func (op OpInfo) FuncName() string {
	return exportName(op.Name)
}

// AssignName returns the name of the compound-assignment method, e.g. "AddAssign".
func (op OpInfo) AssignName() string {
	return op.FuncName() + "Assign"
}

// exportName title-cases a descriptor name. A Caser is stateful, so one is
// made per call.
func exportName(name string) string {
	return cases.Title(language.English).String(name)
}

// Derivative propagation rules. With A = (a, ∇a, ∇²a) and B = (b, ∇b, ∇²b)
// each body computes res = (v, g, H). Bodies read operands only through
// selectors so the same text compiles for Ad and *Ad operands.

// -A = (-a, -∇a, -∇²a)
const negBody = `	res := zeroed(a.Dim())
	res.value = -a.value
	res.grad.ScaleVec(-1, a.grad)
	res.hess.ScaleSym(-1, a.hess)
	return res
`

// A+B = (a+b, ∇a+∇b, ∇²a+∇²b)
const addBody = `	res := zeroed(a.Dim())
	res.value = a.value + b.value
	res.grad.AddVec(a.grad, b.grad)
	res.hess.AddSym(a.hess, b.hess)
	return res
`

// A-B = (a-b, ∇a-∇b, ∇²a-∇²b)
const subBody = `	res := zeroed(a.Dim())
	res.value = a.value - b.value
	res.grad.SubVec(a.grad, b.grad)
	res.hess.ScaleSym(-1, b.hess)
	res.hess.AddSym(a.hess, res.hess)
	return res
`

// A·B = (ab, b∇a + a∇b, b∇²a + a∇²b + ∇a∇bᵀ + ∇b∇aᵀ)
//
// RankTwo adds both outer products; dropping either breaks symmetry.
const mulBody = `	res := zeroed(a.Dim())
	res.value = a.value * b.value
	res.grad.ScaleVec(b.value, a.grad)
	res.grad.AddScaledVec(res.grad, a.value, b.grad)
	bh := mat.NewSymDense(a.Dim(), nil)
	bh.ScaleSym(a.value, b.hess)
	res.hess.ScaleSym(b.value, a.hess)
	res.hess.AddSym(res.hess, bh)
	res.hess.RankTwo(res.hess, 1, a.grad, b.grad)
	return res
`

// A/B = (v, g, H) with
//
//	v = a/b
//	g = (b∇a - a∇b)/b²
//	H = (∇²a - g∇bᵀ - ∇b gᵀ - v∇²b)/b
//
// H uses the quotient's v and g, so they must be computed first. The zero
// check runs before any arithmetic and only traps an exact zero.
const divBody = `	if math.Abs(b.value) == 0 {
		panic(ErrDivisionByZero)
	}
	res := zeroed(a.Dim())
	res.value = a.value / b.value
	res.grad.ScaleVec(b.value, a.grad)
	res.grad.AddScaledVec(res.grad, -a.value, b.grad)
	res.grad.ScaleVec(1/(b.value*b.value), res.grad)
	res.hess.ScaleSym(-res.value, b.hess)
	res.hess.AddSym(a.hess, res.hess)
	res.hess.RankTwo(res.hess, -1, res.grad, b.grad)
	res.hess.ScaleSym(1/b.value, res.hess)
	return res
`

const unimplementedBody = `	panic(ErrUnimplemented)
`

// negOp is the only unary operator.
var negOp = OpInfo{Name: "neg", Symbol: "-", Body: negBody, Implemented: true}

// binaryOps lists the binary operators in emission order.
var binaryOps = []OpInfo{
	{Name: "add", Symbol: "+", Body: addBody, Implemented: true},
	{Name: "sub", Symbol: "-", Body: subBody, Implemented: true},
	{Name: "mul", Symbol: "*", Body: mulBody, Implemented: true},
	{Name: "div", Symbol: "/", Body: divBody, Implemented: true,
		Doc: "It panics with ErrDivisionByZero if b has a value of exactly zero."},
	{Name: "rem", Symbol: "%", Body: unimplementedBody, Implemented: false},
}

// opNamed returns the binary operator called name.
func opNamed(name string) OpInfo {
	op, ok := lo.Find(binaryOps, func(op OpInfo) bool { return op.Name == name })
	if !ok {
		panic("adgen: unknown operator " + name)
	}
	return op
}

// Unit is one generated declaration.
type Unit struct {
	Name   string // declared function or method name
	Source string // doc comment and declaration, starting with a blank line
}

// negUnit emits the negation for one operand form.
func negUnit(op OpInfo, own Ownership) Unit {
	name := op.FuncName() + variantSuffix(own)
	owns := []Ownership{own}
	var doc string
	if note := refNote([]string{"a"}, owns); note != "" {
		doc = fmt.Sprintf("%s is %s with %s.", name, op.FuncName(), note)
	} else {
		doc = fmt.Sprintf("%s returns %sa.", name, op.Symbol)
	}
	return funcUnit(name, doc, params([]string{"a"}, owns, []string{adType, adType}), adType, op.Body)
}

// binaryUnit emits one operator for one (left, right) combination. The body
// is the same for every combination; only the signature changes.
func binaryUnit(op OpInfo, left, right Ownership) Unit {
	name := op.FuncName() + variantSuffix(left, right)
	names := []string{"a", "b"}
	owns := []Ownership{left, right}
	var doc string
	switch note := refNote(names, owns); {
	case note != "":
		doc = fmt.Sprintf("%s is %s with %s.", name, op.FuncName(), note)
	case !op.Implemented:
		doc = fmt.Sprintf("%s is a placeholder for a %s b, which has no derivative rule. It always panics with ErrUnimplemented.", name, op.Symbol)
	default:
		doc = fmt.Sprintf("%s returns a %s b.", name, op.Symbol)
		if op.Doc != "" {
			doc += " " + op.Doc
		}
	}
	return funcUnit(name, doc, params(names, owns, []string{adType, adType}), adType, op.Body)
}

// assignUnit emits x op= b for one form of b. Implemented operators
// delegate to the binary unit taking (ByValue, right) so the rule is never
// restated.
func assignUnit(op OpInfo, right Ownership) Unit {
	name := op.AssignName() + variantSuffix(right)
	owns := []Ownership{right}
	var doc string
	switch note := refNote([]string{"b"}, owns); {
	case note != "":
		doc = fmt.Sprintf("%s is %s with %s.", name, op.AssignName(), note)
	case !op.Implemented:
		doc = fmt.Sprintf("%s is a placeholder for x %s= b. It always panics with ErrUnimplemented.", name, op.Symbol)
	default:
		doc = fmt.Sprintf("%s sets x to x %s b.", name, op.Symbol)
	}
	body := unimplementedBody
	if op.Implemented {
		body = fmt.Sprintf("\t*x = %s%s(*x, b)\n", op.FuncName(), variantSuffix(ByValue, right))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n// %s\n", doc)
	fmt.Fprintf(&sb, "func (x *%s) %s(%s) {\n", adType, name, params([]string{"b"}, owns, []string{adType}))
	sb.WriteString(body)
	sb.WriteString("}\n")
	return Unit{Name: name, Source: sb.String()}
}

// funcUnit renders a package-level function unit.
func funcUnit(name, doc, params, result, body string) Unit {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n// %s\n", doc)
	fmt.Fprintf(&sb, "func %s(%s) %s {\n", name, params, result)
	sb.WriteString(body)
	sb.WriteString("}\n")
	return Unit{Name: name, Source: sb.String()}
}

// operatorUnits enumerates the operators pipeline: negation, every binary
// operator in all four forms, then every compound assignment in both forms
// (the Rem stubs last, since Rem is last in binaryOps).
func operatorUnits() []Unit {
	units := lo.Map(unaryCombos, func(own Ownership, _ int) Unit {
		return negUnit(negOp, own)
	})
	units = append(units, lo.FlatMap(binaryOps, func(op OpInfo, _ int) []Unit {
		return lo.Map(binaryCombos, func(c [2]Ownership, _ int) Unit {
			return binaryUnit(op, c[0], c[1])
		})
	})...)
	units = append(units, lo.FlatMap(binaryOps, func(op OpInfo, _ int) []Unit {
		return lo.Map(unaryCombos, func(own Ownership, _ int) Unit {
			return assignUnit(op, own)
		})
	})...)
	return units
}
