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

// queue is a FIFO of cells.
type queue struct {
	buf  []Cell
	head int
}

func (q *queue) push(v ...Cell) {
	q.buf = append(q.buf, v...)
}

func (q *queue) pop() (Cell, bool) {
	if q.head >= len(q.buf) {
		return 0, false
	}
	v := q.buf[q.head]
	q.head++
	if q.head == len(q.buf) {
		q.buf, q.head = q.buf[:0], 0
	}
	return v, true
}

func (q *queue) len() int {
	return len(q.buf) - q.head
}

// drain empties the queue and returns its contents, or nil if it was empty.
func (q *queue) drain() []Cell {
	if q.len() == 0 {
		return nil
	}
	v := make([]Cell, q.len())
	copy(v, q.buf[q.head:])
	q.buf, q.head = q.buf[:0], 0
	return v
}
