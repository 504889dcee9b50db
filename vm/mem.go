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

package vm

import "github.com/pkg/errors"

const (
	pageSize = 1024
	// largest range returned by Slice.
	maxSliceLen = 1 << 24
	// writes further than this many cells past the end of the dense region go
	// to the sparse map instead of growing it.
	denseSlack = 16 * pageSize
)

// Memory is a zero-extending Intcode memory.
//
// Cells near the loaded image are kept in a slice that grows on demand. Writes
// far beyond its end are stored in a map so that a program poking at very large
// addresses does not allocate everything in between.
type Memory struct {
	cells  []Cell
	sparse map[Cell]Cell
}

// NewMemory returns a new Memory initialized with a copy of img.
func NewMemory(img Image) *Memory {
	m := &Memory{cells: make([]Cell, len(img))}
	copy(m.cells, img)
	return m
}

// Read returns the value stored at addr. Cells that have never been written
// read as 0.
func (m *Memory) Read(addr Cell) (Cell, error) {
	if addr < 0 {
		return 0, errors.Wrapf(ErrNegativeAddress, "read at %d", addr)
	}
	if addr < Cell(len(m.cells)) {
		return m.cells[addr], nil
	}
	return m.sparse[addr], nil
}

// Write stores v at addr.
func (m *Memory) Write(addr, v Cell) error {
	if addr < 0 {
		return errors.Wrapf(ErrNegativeAddress, "write at %d", addr)
	}
	end := Cell(len(m.cells))
	switch {
	case addr < end:
		m.cells[addr] = v
	case addr < end+denseSlack:
		m.grow(addr)
		m.cells[addr] = v
	default:
		if m.sparse == nil {
			m.sparse = make(map[Cell]Cell)
		}
		m.sparse[addr] = v
	}
	return nil
}

// grow extends the dense region so that it covers addr and moves any sparse
// cells it now covers.
func (m *Memory) grow(addr Cell) {
	n := (int(addr)/pageSize + 1) * pageSize
	m.cells = append(m.cells, make([]Cell, n-len(m.cells))...)
	for a, v := range m.sparse {
		if a < Cell(n) {
			m.cells[a] = v
			delete(m.sparse, a)
		}
	}
}

// Len returns the number of materialized cells.
func (m *Memory) Len() int {
	return len(m.cells) + len(m.sparse)
}

// Slice returns a copy of the cells in [from, to).
func (m *Memory) Slice(from, to Cell) ([]Cell, error) {
	if from < 0 {
		return nil, errors.Wrapf(ErrNegativeAddress, "slice [%d:%d]", from, to)
	}
	if to < from {
		return nil, errors.Errorf("invalid slice [%d:%d]", from, to)
	}
	if to-from > maxSliceLen {
		return nil, errors.Errorf("slice [%d:%d] larger than %d cells", from, to, maxSliceLen)
	}
	s := make([]Cell, 0, to-from)
	for a := from; a < to; a++ {
		v, _ := m.Read(a)
		s = append(s, v)
	}
	return s, nil
}
