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
	"strconv"

	"github.com/pkg/errors"
)

// Op is an Intcode operation, the two least significant decimal digits of an
// instruction word.
type Op Cell

// Intcode operations.
const (
	OpAdd         Op = 1
	OpMul         Op = 2
	OpIn          Op = 3
	OpOut         Op = 4
	OpJumpIfTrue  Op = 5
	OpJumpIfFalse Op = 6
	OpLessThan    Op = 7
	OpEquals      Op = 8
	OpAdjustBase  Op = 9
	OpHalt        Op = 99
)

const maxParamsCount = 3

var opcodes = map[Op]struct {
	name   string
	params int
}{
	OpAdd:         {"add", 3},
	OpMul:         {"mul", 3},
	OpIn:          {"in", 1},
	OpOut:         {"out", 1},
	OpJumpIfTrue:  {"jnz", 2},
	OpJumpIfFalse: {"jz", 2},
	OpLessThan:    {"lt", 3},
	OpEquals:      {"eq", 3},
	OpAdjustBase:  {"arb", 1},
	OpHalt:        {"halt", 0},
}

// Params returns the number of parameters that follow op in memory, or -1 if
// op is not a valid operation.
func (op Op) Params() int {
	if o, ok := opcodes[op]; ok {
		return o.params
	}
	return -1
}

func (op Op) String() string {
	if o, ok := opcodes[op]; ok {
		return o.name
	}
	return "op(" + strconv.FormatInt(int64(op), 10) + ")"
}

// Mode is a parameter mode.
type Mode Cell

// Parameter modes.
const (
	// Position mode parameters are addresses.
	Position Mode = iota
	// Immediate mode parameters are literal values. They cannot be used as
	// write targets.
	Immediate
	// Relative mode parameters are addresses relative to the relative base.
	Relative
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.FormatInt(int64(m), 10) + ")"
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op    Op
	Modes [maxParamsCount]Mode
}

// Decode splits an instruction word into its operation and parameter modes.
//
// The two least significant decimal digits of w are the operation, the
// following digits are the modes of parameters 1, 2 and 3. Any other digit must
// be 0.
func Decode(w Cell) (Instruction, error) {
	var ins Instruction
	if w < 0 {
		return ins, errors.Wrapf(ErrUnknownOpcode, "instruction %d", w)
	}
	ins.Op = Op(w % 100)
	if ins.Op.Params() < 0 {
		return ins, errors.Wrapf(ErrUnknownOpcode, "instruction %d", w)
	}
	w /= 100
	for k := range ins.Modes {
		m := Mode(w % 10)
		if m > Relative {
			return ins, errors.Wrapf(ErrInvalidMode, "parameter %d mode %d", k+1, m)
		}
		ins.Modes[k] = m
		w /= 10
	}
	if w != 0 {
		return ins, errors.Wrapf(ErrInvalidMode, "extra mode digits %d", w)
	}
	return ins, nil
}

// Size returns the number of cells taken by the instruction, including the
// instruction word.
func (ins Instruction) Size() Cell {
	return Cell(ins.Op.Params() + 1)
}
