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
	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Status is the run status of an Instance.
type Status int

// Run statuses. Halted and Faulted are terminal.
const (
	Ready Status = iota
	Running
	AwaitingInput
	Halted
	Faulted
)

var statusNames = [...]string{
	"ready",
	"running",
	"awaiting input",
	"halted",
	"faulted",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       Cell    // Program Counter (aka. Instruction Pointer)
	RB       Cell    // Relative base
	Mem      *Memory // Memory
	in       queue
	out      queue
	status   Status
	err      error
	insCount int64
	limit    int64
}

// Option interface
type Option func(*Instance) error

// Input appends the given values to the input queue.
func Input(v ...Cell) Option {
	return func(i *Instance) error { i.PushInput(v...); return nil }
}

// InstructionLimit makes the instance fault with ErrInstructionLimit once it
// has executed n instructions. A limit of 0 disables the check, which is the
// default.
func InstructionLimit(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("negative instruction limit %d", n)
		}
		i.limit = n
		return nil
	}
}

// Patch stores v at addr before the program starts. Day 2 programs for example
// expect the caller to set their "noun" and "verb" at addresses 1 and 2.
func Patch(addr, v Cell) Option {
	return func(i *Instance) error {
		return errors.Wrap(i.Mem.Write(addr, v), "patch failed")
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance.
//
// The instance works on a private copy of img, so the same image can be used
// to create any number of independent instances.
//
// Options will be set by calling SetOptions.
func New(img Image, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem: NewMemory(img),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// PushInput appends values to the input queue.
func (i *Instance) PushInput(v ...Cell) {
	i.in.push(v...)
}

// DrainOutput removes and returns all pending output values in the order they
// were produced.
func (i *Instance) DrainOutput() []Cell {
	return i.out.drain()
}

// PendingInput returns the number of queued input values.
func (i *Instance) PendingInput() int {
	return i.in.len()
}

// PendingOutput returns the number of output values waiting to be drained.
func (i *Instance) PendingOutput() int {
	return i.out.len()
}

// Status returns the current run status.
func (i *Instance) Status() Status {
	return i.status
}

// Err returns the fault that stopped the instance, if any.
func (i *Instance) Err() error {
	return i.err
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Peek returns the value of the memory cell at addr.
func (i *Instance) Peek(addr Cell) (Cell, error) {
	return i.Mem.Read(addr)
}

// Resume runs the instance until it halts, faults, or needs input that has not
// been queued yet. It returns the resulting status, and the fault if the status
// is Faulted.
//
// Output values produced during the call stay queued until DrainOutput is
// called. Calling Resume on a halted or faulted instance has no effect.
func (i *Instance) Resume() (Status, error) {
	switch i.status {
	case Halted:
		return Halted, nil
	case Faulted:
		return Faulted, i.err
	}
	i.status = Running
	i.run()
	return i.status, i.err
}

// Run runs img on a new instance with the given input values queued and returns
// all the values it outputs.
//
// Unlike Resume, Run treats starving for input as an error: if the program asks
// for more input than provided, the returned error has ErrInputExhausted as its
// cause. Output produced up to that point, or up to a fault, is returned along
// with the error.
func Run(img Image, input ...Cell) ([]Cell, error) {
	i, err := New(img, Input(input...))
	if err != nil {
		return nil, err
	}
	st, err := i.Resume()
	out := i.DrainOutput()
	if st == AwaitingInput {
		return out, errors.Wrapf(ErrInputExhausted, "input at pc %d", i.PC)
	}
	return out, err
}
