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

// trap is used to unwind the interpreter loop from within the operand helpers.
type trap struct {
	err error
}

func (i *Instance) load(addr Cell) Cell {
	v, err := i.Mem.Read(addr)
	if err != nil {
		panic(trap{err})
	}
	return v
}

// arg resolves parameter k (1-based) of ins for reading.
func (i *Instance) arg(ins Instruction, k int) Cell {
	p := i.load(i.PC + Cell(k))
	switch ins.Modes[k-1] {
	case Immediate:
		return p
	case Relative:
		return i.load(i.RB + p)
	default:
		return i.load(p)
	}
}

// addr resolves parameter k (1-based) of ins as a write target. The parameter
// itself is the address; it is never dereferenced.
func (i *Instance) addr(ins Instruction, k int) Cell {
	p := i.load(i.PC + Cell(k))
	switch ins.Modes[k-1] {
	case Position:
	case Relative:
		p += i.RB
	default:
		panic(trap{errors.Wrapf(ErrInvalidMode, "%v write target in parameter %d", ins.Modes[k-1], k)})
	}
	if p < 0 {
		panic(trap{errors.Wrapf(ErrNegativeAddress, "write target %d in parameter %d", p, k)})
	}
	return p
}

// store writes to an address returned by addr.
func (i *Instance) store(addr, v Cell) {
	if err := i.Mem.Write(addr, v); err != nil {
		panic(trap{err})
	}
}

func (i *Instance) jump(target Cell) {
	if target < 0 {
		panic(trap{errors.Wrapf(ErrNegativeAddress, "jump to %d", target)})
	}
	i.PC = target
}

func bool2Cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// run is the fetch-decode-execute loop. It returns when the instance halts,
// faults or waits for input, with i.status set accordingly. On fault, PC points
// to the instruction that triggered it and no side effect of that instruction
// has taken place.
func (i *Instance) run() {
	var word Cell
	defer func() {
		if e := recover(); e != nil {
			if t, ok := e.(trap); ok {
				i.fault(word, t.err)
				return
			}
			i.fault(word, errors.Errorf("%v", e))
		}
	}()
	for {
		word = 0
		if i.limit > 0 && i.insCount >= i.limit {
			panic(trap{errors.Wrapf(ErrInstructionLimit, "%d instructions executed", i.insCount)})
		}
		word = i.load(i.PC)
		ins, err := Decode(word)
		if err != nil {
			panic(trap{err})
		}
		switch ins.Op {
		case OpAdd:
			a, b, dst := i.arg(ins, 1), i.arg(ins, 2), i.addr(ins, 3)
			i.store(dst, a+b)
			i.PC += ins.Size()
		case OpMul:
			a, b, dst := i.arg(ins, 1), i.arg(ins, 2), i.addr(ins, 3)
			i.store(dst, a*b)
			i.PC += ins.Size()
		case OpIn:
			dst := i.addr(ins, 1)
			v, ok := i.in.pop()
			if !ok {
				// PC stays on this instruction so that it runs again on resume.
				i.status = AwaitingInput
				return
			}
			i.store(dst, v)
			i.PC += ins.Size()
		case OpOut:
			i.out.push(i.arg(ins, 1))
			i.PC += ins.Size()
		case OpJumpIfTrue:
			if v, target := i.arg(ins, 1), i.arg(ins, 2); v != 0 {
				i.jump(target)
			} else {
				i.PC += ins.Size()
			}
		case OpJumpIfFalse:
			if v, target := i.arg(ins, 1), i.arg(ins, 2); v == 0 {
				i.jump(target)
			} else {
				i.PC += ins.Size()
			}
		case OpLessThan:
			a, b, dst := i.arg(ins, 1), i.arg(ins, 2), i.addr(ins, 3)
			i.store(dst, bool2Cell(a < b))
			i.PC += ins.Size()
		case OpEquals:
			a, b, dst := i.arg(ins, 1), i.arg(ins, 2), i.addr(ins, 3)
			i.store(dst, bool2Cell(a == b))
			i.PC += ins.Size()
		case OpAdjustBase:
			i.RB += i.arg(ins, 1)
			i.PC += ins.Size()
		case OpHalt:
			i.insCount++
			i.status = Halted
			return
		}
		i.insCount++
	}
}

func (i *Instance) fault(word Cell, err error) {
	i.status = Faulted
	i.err = &Fault{PC: i.PC, Word: word, Err: err}
}
