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

package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endor/adventcalendar-2019/vm"
)

func newInstance(t *testing.T, prog string, opts ...vm.Option) *vm.Instance {
	t.Helper()
	img, err := vm.ParseString(prog)
	require.NoError(t, err)
	i, err := vm.New(img, opts...)
	require.NoError(t, err)
	return i
}

func TestCellList_Set(t *testing.T) {
	var l cellList
	require.NoError(t, l.Set("1, 2,-3"))
	require.NoError(t, l.Set("4"))
	assert.Equal(t, cellList{1, 2, -3, 4}, l)
	assert.Equal(t, "1,2,-3,4", l.String())
	assert.Error(t, l.Set("1,x"))
}

func TestPatchList_Set(t *testing.T) {
	var l patchList
	require.NoError(t, l.Set("1=12"))
	require.NoError(t, l.Set("2=-2"))
	assert.Equal(t, patchList{{1, 12}, {2, -2}}, l)
	assert.Equal(t, "1=12,2=-2", l.String())
	for _, s := range []string{"12", "a=1", "1=b"} {
		assert.Error(t, l.Set(s), s)
	}
}

func TestRunBatch(t *testing.T) {
	defer func(p cellList) { peeks = p }(peeks)
	peeks = cellList{0}

	var b bytes.Buffer
	i := newInstance(t, "1,9,10,3,2,3,11,0,99,30,40,50",
		vm.Input(), vm.Patch(1, 9), vm.Patch(2, 10))
	require.NoError(t, runBatch(i, &b))
	assert.Equal(t, "[0] 3500\n", b.String())

	b.Reset()
	peeks = nil
	i = newInstance(t, "3,9,8,9,10,9,4,9,99,-1,8", vm.Input(8))
	require.NoError(t, runBatch(i, &b))
	assert.Equal(t, "1\n", b.String())
}

func TestRunBatch_inputExhausted(t *testing.T) {
	var b bytes.Buffer
	i := newInstance(t, "4,7,3,7,4,7,99,42")
	err := runBatch(i, &b)
	assert.Equal(t, vm.ErrInputExhausted, errors.Cause(err))
	assert.Equal(t, "42\n", b.String())
}

func TestRunASCII(t *testing.T) {
	// echo characters until a newline is read, then print 1000.
	prog := "3,100,4,100,1008,100,10,101,1006,101,0,104,1000,99"
	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	i := newInstance(t, prog)
	require.NoError(t, runASCII(i, strings.NewReader("hi\nignored"), w, false))
	assert.Equal(t, "hi\n1000\n", b.String())
	assert.Equal(t, vm.Halted, i.Status())

	b.Reset()
	i = newInstance(t, prog)
	assert.Equal(t, "EOF", errorString(runASCII(i, strings.NewReader("ab"), w, false)))
	assert.Equal(t, "ab", b.String())

	b.Reset()
	i = newInstance(t, prog)
	assert.Equal(t, "EOF", errorString(runASCII(i, strings.NewReader("a\x04b"), w, true)))
	assert.Equal(t, "a", b.String())
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func TestRunAmplifiers(t *testing.T) {
	defer func(p cellList, f, s bool) { phases, feedback, stats = p, f, s }(phases, feedback, stats)
	phases = cellList{5, 6, 7, 8, 9}
	feedback = true
	stats = true

	img, err := vm.ParseString("3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26," +
		"27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5")
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, runAmplifiers(img, nil, &b))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "139629729 (phases 9,8,7,6,5)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "120 runs, instructions: min "), lines[1])
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunBatch_writeError(t *testing.T) {
	i := newInstance(t, "104,1,104,2,99")
	err := runBatch(i, failWriter{})
	assert.EqualError(t, err, "write failed: broken pipe")
	assert.Equal(t, vm.Halted, i.Status())
}

func TestDumpVM(t *testing.T) {
	i := newInstance(t, "104,1,42")
	_, err := i.Resume()
	require.Error(t, err)
	var b bytes.Buffer
	dumpVM(&b, i)
	s := b.String()
	assert.Contains(t, s, "PC: (vm.Cell) 2")
	assert.Contains(t, s, "faulted")
	assert.Contains(t, s, "[0:10] [104 1 42 0 0 0 0 0 0 0]")
	assert.Contains(t, s, "decode 42: instruction 42: unknown opcode")
	assert.Contains(t, s, "error: fault at pc 2 (instruction 42)")
}
