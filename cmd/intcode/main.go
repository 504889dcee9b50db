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
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/endor/adventcalendar-2019/internal/iox"
	"github.com/endor/adventcalendar-2019/pipeline"
	"github.com/endor/adventcalendar-2019/vm"
)

// cellList is a repeatable flag of comma separated values.
type cellList []vm.Cell

func (l *cellList) String() string { return vm.Image(*l).String() }
func (l *cellList) Type() string   { return "values" }
func (l *cellList) Set(s string) error {
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return err
		}
		*l = append(*l, vm.Cell(n))
	}
	return nil
}

type patch struct {
	addr, value vm.Cell
}

// patchList is a repeatable flag of addr=value memory patches.
type patchList []patch

func (l *patchList) String() string {
	var s []string
	for _, p := range *l {
		s = append(s, fmt.Sprintf("%d=%d", p.addr, p.value))
	}
	return strings.Join(s, ",")
}
func (l *patchList) Type() string { return "addr=value" }
func (l *patchList) Set(s string) error {
	a, v, ok := strings.Cut(s, "=")
	if !ok {
		return errors.Errorf("%q: expected addr=value", s)
	}
	addr, err := strconv.ParseInt(a, 10, 64)
	if err != nil {
		return err
	}
	value, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return err
	}
	*l = append(*l, patch{vm.Cell(addr), vm.Cell(value)})
	return nil
}

var (
	debug    bool
	noRawIO  bool
	ascii    bool
	feedback bool
	stats    bool
	limit    int64
	inputs   cellList
	phases   cellList
	peeks    cellList
	patches  patchList
)

func setupIO() (raw bool, tearDown func()) {
	if noRawIO {
		return false, nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		return false, nil
	}
	return true, tearDown
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		log.Printf("%v", err)
		os.Exit(1)
	}
	log.Printf("%+v", err)
	if i != nil {
		dumpVM(os.Stderr, i)
	}
	os.Exit(1)
}

// runBatch runs i with its queued input and prints every output value on its
// own line, then the requested memory cells.
func runBatch(i *vm.Instance, out io.Writer) error {
	w := iox.NewErrWriter(out)
	st, err := i.Resume()
	for _, v := range i.DrainOutput() {
		fmt.Fprintln(w, v)
	}
	if err != nil {
		return err
	}
	if st == vm.AwaitingInput {
		return errors.Wrapf(vm.ErrInputExhausted, "input at pc %d", i.PC)
	}
	for _, addr := range peeks {
		v, err := i.Peek(addr)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "[%d] %d\n", addr, v)
	}
	return w.Err()
}

// runASCII runs i interactively: output values are printed as characters and
// input is read one character at a time. Values that are not ASCII characters
// are printed as numbers on their own line.
func runASCII(i *vm.Instance, r io.RuneReader, w *bufio.Writer, raw bool) error {
	for {
		st, err := i.Resume()
		for _, v := range i.DrainOutput() {
			if v >= 0 && v < utf8.RuneSelf {
				w.WriteByte(byte(v))
			} else {
				fmt.Fprintf(w, "%d\n", v)
			}
		}
		if ferr := w.Flush(); ferr != nil {
			return errors.Wrap(ferr, "write failed")
		}
		if st != vm.AwaitingInput {
			return err
		}
		c, _, err := r.ReadRune()
		if err != nil {
			return err
		}
		// in raw tty mode, we need to handle CTRL-D ourselves
		if raw && c == 4 {
			return io.EOF
		}
		i.PushInput(vm.Cell(c))
	}
}

func runAmplifiers(img vm.Image, opts []vm.Option, out io.Writer) error {
	w := iox.NewErrWriter(out)
	r, err := pipeline.Search(context.Background(), img, phases, feedback, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d (phases %s)\n", r.Signal, vm.Image(r.Phases))
	if stats {
		h := r.Instructions
		fmt.Fprintf(w, "%d runs, instructions: min %d, p50 %d, p99 %d, max %d, mean %.1f\n",
			h.TotalCount(), h.Min(), h.ValueAtQuantile(50), h.ValueAtQuantile(99), h.Max(), h.Mean())
	}
	return w.Err()
}

func main() {
	var (
		err error
		i   *vm.Instance
	)

	log.SetPrefix("intcode: ")
	log.SetFlags(0)

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if ferr := stdout.Flush(); ferr != nil && err == nil {
			err = errors.Wrap(ferr, "write failed")
		}
		atExit(i, err)
	}()

	var fileName = flag.StringP("image", "i", "input.txt", "load program from file `filename`")
	flag.VarP(&inputs, "input", "n", "queue input `values` before starting (can be specified multiple times)")
	flag.VarP(&patches, "set", "s", "store value at addr before starting (can be specified multiple times)")
	flag.VarP(&peeks, "peek", "p", "print memory at `addresses` after the program halts")
	flag.VarP(&phases, "amp", "a", "find the best amplifier chain for the given phase settings")
	flag.BoolVarP(&feedback, "feedback", "f", false, "connect amplifiers in a feedback loop")
	flag.BoolVar(&stats, "stats", false, "print instruction count statistics of amplifier runs")
	flag.BoolVar(&ascii, "ascii", false, "interactive ASCII mode")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO in ASCII mode")
	flag.Int64Var(&limit, "limit", 0, "fault after `n` instructions (0 means no limit)")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [program]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	switch flag.NArg() {
	case 0:
	case 1:
		*fileName = flag.Arg(0)
	default:
		flag.Usage()
	}

	img, err := vm.Load(*fileName)
	if err != nil {
		return
	}

	opts := []vm.Option{vm.InstructionLimit(limit)}
	for _, p := range patches {
		opts = append(opts, vm.Patch(p.addr, p.value))
	}

	if len(phases) > 0 {
		err = runAmplifiers(img, opts, stdout)
		return
	}

	i, err = vm.New(img, append(opts, vm.Input(inputs...))...)
	if err != nil {
		return
	}
	if !ascii {
		err = runBatch(i, stdout)
		return
	}

	// try to switch the terminal to raw mode.
	raw, ioTearDownFn := setupIO()
	if ioTearDownFn != nil {
		defer ioTearDownFn()
	}
	if err = runASCII(i, bufio.NewReader(os.Stdin), stdout, raw); err == io.EOF {
		err = nil
	}
}
