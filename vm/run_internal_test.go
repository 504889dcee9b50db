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

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_trapsWriteError(t *testing.T) {
	i, err := New(Image{99})
	require.NoError(t, err)
	defer func() {
		tr, ok := recover().(trap)
		require.True(t, ok, "store did not trap")
		assert.Equal(t, ErrNegativeAddress, errors.Cause(tr.err))
	}()
	i.store(-1, 42)
}

func TestRun_advancesBySize(t *testing.T) {
	// one instruction of each size, then halt
	img := Image{1101, 1, 2, 20, 104, 7, 1105, 0, 0, 109, 3, 99}
	i, err := New(img)
	require.NoError(t, err)
	st, err := i.Resume()
	require.NoError(t, err)
	assert.Equal(t, Halted, st)
	assert.Equal(t, Cell(11), i.PC)
	assert.Equal(t, int64(5), i.InstructionCount())
}
