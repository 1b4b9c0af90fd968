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
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major matrix of Ad entries that share one variable
// dimension.
//
// Copying a Matrix copies a reference to its entries; use Clone before
// mutating a matrix that is shared.
type Matrix struct {
	rows, cols int
	data       []Ad
}

// NewMatrix returns an r×c matrix of zero constants of dimension n.
func NewMatrix(r, c, n int) Matrix {
	checkShape(r, c)
	data := make([]Ad, r*c)
	for i := range data {
		data[i] = zeroed(n)
	}
	return Matrix{rows: r, cols: c, data: data}
}

// InactiveMatrix returns an r×c matrix of constants of dimension n taken from
// values in row-major order.
func InactiveMatrix(r, c, n int, values []float64) Matrix {
	checkShape(r, c)
	if len(values) != r*c {
		panic(fmt.Sprintf("ad: slice length %d does not match matrix dimensions %dx%d", len(values), r, c))
	}
	return Matrix{rows: r, cols: c, data: InactiveVector(values, n)}
}

// ActiveMatrix returns an r×c matrix whose entries are the r*c independent
// variables, numbered in row-major order.
func ActiveMatrix(r, c int, values []float64) Matrix {
	checkShape(r, c)
	if len(values) != r*c {
		panic(fmt.Sprintf("ad: slice length %d does not match matrix dimensions %dx%d", len(values), r, c))
	}
	return Matrix{rows: r, cols: c, data: ActiveVector(values)}
}

// MatrixOf returns an r×c matrix holding a copy of entries, in row-major
// order.
func MatrixOf(r, c int, entries []Ad) Matrix {
	checkShape(r, c)
	if len(entries) != r*c {
		panic(fmt.Sprintf("ad: %d entries do not match matrix dimensions %dx%d", len(entries), r, c))
	}
	data := make([]Ad, len(entries))
	copy(data, entries)
	return Matrix{rows: r, cols: c, data: data}
}

func checkShape(r, c int) {
	if r <= 0 || c <= 0 {
		panic(fmt.Sprintf("ad: invalid matrix dimensions %dx%d", r, c))
	}
}

// Dims returns the number of rows and columns.
func (m Matrix) Dims() (r, c int) {
	return m.rows, m.cols
}

// At returns entry (i, j).
func (m Matrix) At(i, j int) Ad {
	return m.data[m.index(i, j)]
}

// Set sets entry (i, j) to v.
func (m *Matrix) Set(i, j int, v Ad) {
	m.data[m.index(i, j)] = v
}

func (m Matrix) index(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("ad: index (%d, %d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
	return i*m.cols + j
}

// Entries returns the entries in row-major order. The slice is shared with m.
func (m Matrix) Entries() []Ad {
	return m.data
}

// Clone returns a matrix with its own entry storage.
func (m Matrix) Clone() Matrix {
	data := make([]Ad, len(m.data))
	copy(data, m.data)
	return Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Values returns the values of the entries as a gonum matrix.
func (m Matrix) Values() *mat.Dense {
	res := mat.NewDense(m.rows, m.cols, nil)
	for i := range m.rows {
		for j := range m.cols {
			res.Set(i, j, m.data[i*m.cols+j].value)
		}
	}
	return res
}

// MulAssign multiplies every entry by s in place.
func (m *Matrix) MulAssign(s Ad) {
	for i := range m.data {
		m.data[i].MulAssign(s)
	}
}

// MulAssignRef is MulAssign with s passed by reference.
func (m *Matrix) MulAssignRef(s *Ad) {
	for i := range m.data {
		m.data[i].MulAssignRef(s)
	}
}

// T returns the transpose of m.
func (m Matrix) T() Matrix {
	res := Matrix{rows: m.cols, cols: m.rows, data: make([]Ad, len(m.data))}
	for i := range m.rows {
		for j := range m.cols {
			res.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return res
}

// MatMul returns the matrix product a·b.
func MatMul(a, b Matrix) Matrix {
	if a.cols != b.rows {
		panic(fmt.Sprintf("ad: cannot multiply %dx%d by %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
	res := Matrix{rows: a.rows, cols: b.cols, data: make([]Ad, a.rows*b.cols)}
	for i := range a.rows {
		for j := range b.cols {
			acc := MulRefRef(&a.data[i*a.cols], &b.data[j])
			for k := 1; k < a.cols; k++ {
				acc.AddAssign(MulRefRef(&a.data[i*a.cols+k], &b.data[k*b.cols+j]))
			}
			res.data[i*b.cols+j] = acc
		}
	}
	return res
}

// Trace returns the sum of the diagonal entries of a square matrix.
func (m Matrix) Trace() Ad {
	if m.rows != m.cols {
		panic(fmt.Sprintf("ad: trace of non-square %dx%d matrix", m.rows, m.cols))
	}
	acc := m.data[0]
	for i := 1; i < m.rows; i++ {
		acc.AddAssignRef(&m.data[i*m.cols+i])
	}
	return acc
}
