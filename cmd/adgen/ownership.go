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
	"strings"

	"github.com/samber/lo"
)

// Ownership says how an operand is handed to a generated unit.
type Ownership int

const (
	ByValue Ownership = iota // T
	ByRef                    // *T
)

// String returns the name fragment used in variant suffixes.
func (o Ownership) String() string {
	if o == ByRef {
		return "Ref"
	}
	return "Val"
}

// TypeName returns the Go type of an operand of the named type.
func (o Ownership) TypeName(base string) string {
	if o == ByRef {
		return "*" + base
	}
	return base
}

// binaryCombos lists the (left, right) operand forms of binary units in
// emission order.
var binaryCombos = [][2]Ownership{
	{ByRef, ByRef},
	{ByRef, ByValue},
	{ByValue, ByRef},
	{ByValue, ByValue},
}

// unaryCombos lists the forms of a single variable operand in emission order.
// Compound assignment uses it for the right operand; the left operand is
// always the method receiver.
var unaryCombos = []Ownership{ByRef, ByValue}

// scalarMatrixCombos lists the (scalar, matrix) forms of scalar-matrix
// units in emission order.
var scalarMatrixCombos = [][2]Ownership{
	{ByValue, ByValue},
	{ByRef, ByValue},
	{ByValue, ByRef},
	{ByRef, ByRef},
}

// variantSuffix returns the identifier suffix of a unit taking operands in
// the given forms:
//
//	()                 -> ""
//	(Val)              -> ""
//	(Ref)              -> "Ref"
//	(Val, Val)         -> ""
//	(Ref, Val)         -> "RefVal"
//	(Val, Ref)         -> "ValRef"
//	(Ref, Ref)         -> "RefRef"
func variantSuffix(owns ...Ownership) string {
	if lo.EveryBy(owns, func(o Ownership) bool { return o == ByValue }) {
		return ""
	}
	if len(owns) == 1 {
		return owns[0].String()
	}
	return strings.Join(lo.Map(owns, func(o Ownership, _ int) string { return o.String() }), "")
}

// refNote returns the doc fragment naming which operands are passed by
// reference, e.g. "a and b passed by reference". It returns "" when none are.
func refNote(names []string, owns []Ownership) string {
	var refs []string
	for i, o := range owns {
		if o == ByRef {
			refs = append(refs, names[i])
		}
	}
	if len(refs) == 0 {
		return ""
	}
	return strings.Join(refs, " and ") + " passed by reference"
}

// params renders a parameter list, merging adjacent operands of the same type
// the way gofmt-conscious authors write them.
func params(names []string, owns []Ownership, base []string) string {
	var sb strings.Builder
	for i := range names {
		sb.WriteString(names[i])
		last := i == len(names)-1
		if !last && owns[i].TypeName(base[i]) == owns[i+1].TypeName(base[i+1]) {
			sb.WriteString(", ")
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(owns[i].TypeName(base[i]))
		if !last {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
