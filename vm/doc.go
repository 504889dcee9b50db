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

// Package vm implements the Intcode virtual machine.
//
// An Instance is created from a program Image and driven with Resume. Resume
// runs the program until it halts, faults, or executes an input instruction
// while its input queue is empty. In the latter case the instruction pointer is
// left on the input instruction and the instance reports AwaitingInput: the
// caller queues more values with PushInput and calls Resume again. Values
// produced by output instructions accumulate in the output queue until the
// caller collects them with DrainOutput. This makes it possible to interleave
// several instances from a single goroutine, which is what package pipeline
// does.
//
// Memory is zero-extending: reading a cell that was never written yields 0 and
// writing to any non-negative address succeeds. Negative addresses, unknown
// opcodes and invalid parameter modes fault the instance. Faults are terminal
// and are reported as *Fault errors whose cause is one of the Err* values of
// this package:
//
//	if _, err := i.Resume(); errors.Cause(err) == vm.ErrNegativeAddress {
//		// ...
//	}
//
// Arithmetic wraps on 64 bits overflow.
package vm
