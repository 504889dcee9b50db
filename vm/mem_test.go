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

package vm_test

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endor/adventcalendar-2019/vm"
)

func TestMemory_zero(t *testing.T) {
	m := vm.NewMemory(vm.Image{1, 2, 3})
	for _, addr := range []vm.Cell{3, 4, 1023, 1024, 1 << 20, 1 << 40, 1<<62 + 7} {
		v, err := m.Read(addr)
		require.NoError(t, err)
		assert.Equal(t, vm.Cell(0), v, "memory[%d]", addr)
	}
	assert.Equal(t, 3, m.Len(), "reads must not materialize cells")
}

func TestMemory_readWrite(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	m := vm.NewMemory(nil)
	want := make(map[vm.Cell]vm.Cell)
	for n := 0; n < 5000; n++ {
		var addr vm.Cell
		switch rnd.Intn(3) {
		case 0:
			addr = vm.Cell(rnd.Intn(4096))
		case 1:
			addr = vm.Cell(rnd.Intn(1 << 20))
		default:
			addr = vm.Cell(rnd.Int63())
		}
		v := vm.Cell(rnd.Int63() - rnd.Int63())
		require.NoError(t, m.Write(addr, v))
		want[addr] = v

		got, err := m.Read(addr)
		require.NoError(t, err)
		require.Equal(t, v, got, "memory[%d]", addr)
	}
	// dense growth must not lose sparse cells
	for addr, v := range want {
		got, err := m.Read(addr)
		require.NoError(t, err)
		assert.Equal(t, v, got, "memory[%d]", addr)
	}
}

func TestMemory_growMigratesSparse(t *testing.T) {
	m := vm.NewMemory(vm.Image{99})
	require.NoError(t, m.Write(50000, 5))
	for addr := vm.Cell(10000); addr <= 60000; addr += 10000 {
		require.NoError(t, m.Write(addr, addr))
	}
	v, err := m.Read(50000)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(50000), v)
	s, err := m.Slice(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []vm.Cell{99, 0}, s)
}

func TestMemory_negative(t *testing.T) {
	m := vm.NewMemory(vm.Image{1, 2, 3})
	for _, addr := range []vm.Cell{-1, -1024, -1 << 62} {
		_, err := m.Read(addr)
		assert.Equal(t, vm.ErrNegativeAddress, errors.Cause(err))
		err = m.Write(addr, 42)
		assert.Equal(t, vm.ErrNegativeAddress, errors.Cause(err))
	}
	s, err := m.Slice(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []vm.Cell{1, 2, 3}, s)
	assert.Equal(t, 3, m.Len())

	_, err = m.Slice(-1, 2)
	assert.Equal(t, vm.ErrNegativeAddress, errors.Cause(err))
	_, err = m.Slice(2, 1)
	assert.Error(t, err)
}

func TestMemory_sliceTooLarge(t *testing.T) {
	m := vm.NewMemory(vm.Image{1, 2, 3})
	for _, r := range [][2]vm.Cell{{0, 1 << 62}, {1 << 40, 1<<62 + 1<<40}, {0, 1<<63 - 1}} {
		s, err := m.Slice(r[0], r[1])
		assert.Error(t, err, "[%d:%d]", r[0], r[1])
		assert.Nil(t, s)
	}
	s, err := m.Slice(1<<40, 1<<40+4)
	require.NoError(t, err)
	assert.Equal(t, []vm.Cell{0, 0, 0, 0}, s)
}
