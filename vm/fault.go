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
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Fault causes.
var (
	ErrUnknownOpcode    = errors.New("unknown opcode")
	ErrInvalidMode      = errors.New("invalid parameter mode")
	ErrNegativeAddress  = errors.New("negative address")
	ErrInstructionLimit = errors.New("instruction limit reached")
	ErrInputExhausted   = errors.New("input exhausted")
)

// Fault is the error reported by a faulted Instance.
type Fault struct {
	PC   Cell  // address of the faulting instruction
	Word Cell  // instruction word at PC, 0 if it could not be read
	Err  error // what went wrong
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at pc %d (instruction %d): %v", f.PC, f.Word, f.Err)
}

// Cause returns the underlying error, for use with errors.Cause.
func (f *Fault) Cause() error { return f.Err }

// Unwrap returns the underlying error.
func (f *Fault) Unwrap() error { return f.Err }

// Format implements fmt.Formatter. The %+v verb includes the stack trace of
// the underlying error.
func (f *Fault) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "fault at pc %d (instruction %d): %+v", f.PC, f.Word, f.Err)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, f.Error())
	case 'q':
		fmt.Fprintf(s, "%q", f.Error())
	}
}
