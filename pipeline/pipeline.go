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

// Package pipeline chains Intcode instances into amplifier circuits: the
// outputs of each instance are the inputs of the next one and, in feedback
// mode, the outputs of the last instance loop back to the first.
//
// All the instances of a Pipeline run on the caller's goroutine. The driver
// resumes them in turn, moving output values along the chain after each call,
// until every instance has halted.
package pipeline

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/endor/adventcalendar-2019/vm"
)

var (
	// ErrDeadlock is returned when a full rotation over the instances makes no
	// progress: every instance that has not halted waits for input that no
	// other instance will produce.
	ErrDeadlock = errors.New("pipeline deadlock")
	// ErrNoSignal is returned when the last instance halts without ever
	// producing output.
	ErrNoSignal = errors.New("no output signal")
	// ErrRerun is returned by Run when the pipeline has already been run.
	ErrRerun = errors.New("pipeline already run")
)

// StageError reports a fault in one of the instances.
type StageError struct {
	Stage int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %d: %v", e.Stage, e.Err)
}

// Cause returns the underlying error, for use with errors.Cause.
func (e *StageError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error { return e.Err }

// Pipeline is a chain of Intcode instances.
type Pipeline struct {
	stages   []*vm.Instance
	feedback bool
	started  bool
}

// New creates a pipeline with one fresh instance of img per phase setting. The
// phase setting is queued as the first input of its instance. The options are
// applied to every instance.
func New(img vm.Image, phases []vm.Cell, feedback bool, opts ...vm.Option) (*Pipeline, error) {
	if len(phases) == 0 {
		return nil, errors.New("pipeline: no phase settings")
	}
	p := &Pipeline{
		stages:   make([]*vm.Instance, len(phases)),
		feedback: feedback,
	}
	for k, phase := range phases {
		i, err := vm.New(img, append([]vm.Option{vm.Input(phase)}, opts...)...)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d", k)
		}
		p.stages[k] = i
	}
	return p, nil
}

// Stages returns the pipeline instances.
func (p *Pipeline) Stages() []*vm.Instance {
	return p.stages
}

// InstructionCount returns the total number of instructions executed by all
// stages.
func (p *Pipeline) InstructionCount() int64 {
	var n int64
	for _, i := range p.stages {
		n += i.InstructionCount()
	}
	return n
}

// runnable reports whether resuming i can make progress.
func runnable(i *vm.Instance) bool {
	switch i.Status() {
	case vm.Halted, vm.Faulted:
		return false
	case vm.AwaitingInput:
		return i.PendingInput() > 0
	}
	return true
}

func (p *Pipeline) halted() bool {
	for _, i := range p.stages {
		if i.Status() != vm.Halted {
			return false
		}
	}
	return true
}

// Run sends signal to the first stage and runs the pipeline until all stages
// have halted. It returns the last value output by the last stage.
//
// In feedback mode, the outputs of the last stage are also sent back to the
// first stage. A Pipeline can only be run once, further calls return ErrRerun.
func (p *Pipeline) Run(signal vm.Cell) (vm.Cell, error) {
	var (
		n       = len(p.stages)
		last    vm.Cell
		emitted bool
		idle    int // consecutive stages that could not be resumed
	)
	if p.started {
		return 0, ErrRerun
	}
	p.started = true
	p.stages[0].PushInput(signal)
	for k := 0; !p.halted(); k = (k + 1) % n {
		i := p.stages[k]
		if !runnable(i) {
			if idle++; idle >= n {
				return last, errors.Wrapf(ErrDeadlock, "%s", p.describe())
			}
			continue
		}
		idle = 0
		_, err := i.Resume()
		out := i.DrainOutput()
		if err != nil {
			return last, &StageError{Stage: k, Err: err}
		}
		if k == n-1 {
			if len(out) > 0 {
				last, emitted = out[len(out)-1], true
			}
			if !p.feedback {
				continue
			}
		}
		p.stages[(k+1)%n].PushInput(out...)
	}
	if !emitted {
		return 0, ErrNoSignal
	}
	return last, nil
}

func (p *Pipeline) describe() string {
	s := "stages:"
	for k, i := range p.stages {
		s += fmt.Sprintf(" %d=%v", k, i.Status())
	}
	return s
}
