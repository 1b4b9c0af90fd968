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

import "cmp"

// Comparisons look at values only; derivatives are ignored.

// Equal reports whether a and b have the same value.
func (a Ad) Equal(b Ad) bool {
	return a.value == b.value
}

// Less reports whether a's value is less than b's.
func (a Ad) Less(b Ad) bool {
	return a.value < b.value
}

// Compare orders a and b by value, like cmp.Compare.
func Compare(a, b Ad) int {
	return cmp.Compare(a.value, b.value)
}

// Max returns the operand with the larger value, preferring a on ties.
func Max(a, b Ad) Ad {
	if b.value > a.value {
		return b
	}
	return a
}

// Min returns the operand with the smaller value, preferring a on ties.
func Min(a, b Ad) Ad {
	if b.value < a.value {
		return b
	}
	return a
}
