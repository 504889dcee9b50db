// This file is part of adventcalendar-2019 - https://github.com/endor/adventcalendar-2019
//
// Copyright 2019 The adventcalendar-2019 Authors
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

// Package perm generates permutations.
package perm

import "golang.org/x/exp/slices"

// Permutations returns all the permutations of s, using Heap's algorithm. Each
// permutation is a fresh slice; s is left untouched.
func Permutations[T any](s []T) [][]T {
	a := slices.Clone(s)
	c := make([]int, len(a))
	out := [][]T{slices.Clone(a)}
	for i := 1; i < len(a); {
		if c[i] >= i {
			c[i] = 0
			i++
			continue
		}
		if i%2 == 0 {
			a[0], a[i] = a[i], a[0]
		} else {
			a[c[i]], a[i] = a[i], a[c[i]]
		}
		out = append(out, slices.Clone(a))
		c[i]++
		i = 1
	}
	return out
}
