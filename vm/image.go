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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/pkg/errors"
)

// Image is an Intcode program: the initial contents of memory, starting at
// address 0.
type Image []Cell

// Load loads an image from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	img, err := Parse(fileName, bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	return img, nil
}

// ParseString parses an image from its text representation.
func ParseString(s string) (Image, error) {
	return Parse("", strings.NewReader(s))
}

// Parse reads an image in text form from r: decimal integers separated by
// commas. Whitespace around integers, including a trailing newline, is ignored.
//
// The name parameter is only used in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
func Parse(name string, r io.Reader) (Image, error) {
	var (
		s      scanner.Scanner
		img    Image
		err    error
		expect = true // expecting an integer, not a comma
	)
	s.Init(r)
	s.Mode = scanner.ScanInts
	s.Filename = name
	s.Error = func(s *scanner.Scanner, msg string) {
		if err == nil {
			err = scanError(s, msg)
		}
	}
	for tok := s.Scan(); err == nil && tok != scanner.EOF; tok = s.Scan() {
		if !expect {
			if tok != ',' {
				return nil, scanError(&s, "expected ',', got "+strconv.Quote(s.TokenText()))
			}
			expect = true
			continue
		}
		sign := ""
		if tok == '-' || tok == '+' {
			sign = s.TokenText()
			tok = s.Scan()
			if err != nil {
				return nil, err
			}
		}
		if tok != scanner.Int {
			return nil, scanError(&s, "expected integer, got "+strconv.Quote(s.TokenText()))
		}
		v, perr := strconv.ParseInt(sign+s.TokenText(), 10, 64)
		if perr != nil {
			return nil, scanError(&s, perr.Error())
		}
		img = append(img, Cell(v))
		expect = false
	}
	if err != nil {
		return nil, err
	}
	if len(img) == 0 {
		return nil, errors.Errorf("%s: empty program", s.Pos())
	}
	if expect {
		return nil, errors.Errorf("%s: trailing ','", s.Pos())
	}
	return img, nil
}

func scanError(s *scanner.Scanner, msg string) error {
	pos := s.Position
	if !pos.IsValid() {
		pos = s.Pos()
	}
	return errors.Errorf("%s: %s", pos, msg)
}

// String returns the text form of the image, as accepted by Parse.
func (img Image) String() string {
	var b strings.Builder
	for k, v := range img {
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}
