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
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/endor/adventcalendar-2019/vm"
)

// window is the number of memory cells dumped on each side of the PC.
const window = 8

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// dumpVM dumps the registers of i, the instruction at PC and the memory around
// it to the specified io.Writer.
func dumpVM(w io.Writer, i *vm.Instance) {
	from := i.PC - window
	if from < 0 {
		from = 0
	}
	mem, _ := i.Mem.Slice(from, i.PC+window)
	state := struct {
		PC, RB        vm.Cell
		Status        vm.Status
		Instructions  int64
		PendingInput  int
		PendingOutput int
		Memory        string
	}{
		i.PC, i.RB, i.Status(), i.InstructionCount(), i.PendingInput(), i.PendingOutput(),
		fmt.Sprintf("[%d:%d] %v", from, i.PC+window, mem),
	}
	dumpConfig.Fdump(w, state)
	if err := i.Err(); err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
	}
	if word, err := i.Peek(i.PC); err == nil {
		ins, err := vm.Decode(word)
		if err != nil {
			fmt.Fprintf(w, "decode %d: %v\n", word, err)
			return
		}
		dumpConfig.Fdump(w, ins)
	}
}
