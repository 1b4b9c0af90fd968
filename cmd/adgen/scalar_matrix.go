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
)

// matrixType is the matrix-of-AD type the scalar-matrix units operate on.
const matrixType = "Matrix"

// scalarMatrixUnit emits s * m for one (scalar, matrix) combination. It never
// restates the product rule: the matrix is cloned and the in-place
// multiplication of the operators pipeline is applied to the clone.
func scalarMatrixUnit(scalar, matrix Ownership) Unit {
	mul := opNamed("mul")
	base := mul.FuncName() + matrixType
	name := base + variantSuffix(scalar, matrix)
	names := []string{"s", "m"}
	owns := []Ownership{scalar, matrix}

	doc := fmt.Sprintf("%s returns s * m, multiplying every entry of m by s.", name)
	if note := refNote(names, owns); note != "" {
		doc = fmt.Sprintf("%s is %s with %s.", name, base, note)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n// %s\n", doc)
	fmt.Fprintf(&sb, "func %s(%s) %s {\n", name, params(names, owns, []string{adType, matrixType}), matrixType)
	sb.WriteString("\tres := m.Clone()\n")
	fmt.Fprintf(&sb, "\tres.%s%s(s)\n", mul.AssignName(), variantSuffix(scalar))
	sb.WriteString("\treturn res\n")
	sb.WriteString("}\n")
	return Unit{Name: name, Source: sb.String()}
}

// scalarMatrixUnits enumerates the scalar-matrix pipeline.
func scalarMatrixUnits() []Unit {
	return lo.Map(scalarMatrixCombos, func(c [2]Ownership, _ int) Unit {
		return scalarMatrixUnit(c[0], c[1])
	})
}
