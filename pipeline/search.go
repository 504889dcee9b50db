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

package pipeline

import (
	"context"
	"runtime"

	"github.com/codahale/hdrhistogram"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/endor/adventcalendar-2019/internal/perm"
	"github.com/endor/adventcalendar-2019/vm"
)

// maxTrackedCount is the largest instruction count recorded exactly in
// Result.Instructions. Larger counts are clamped.
const maxTrackedCount = 1 << 40

// Result is the outcome of Search.
type Result struct {
	Signal vm.Cell   // highest final signal
	Phases []vm.Cell // phase settings that produced it
	// Instructions executed by each pipeline run.
	Instructions *hdrhistogram.Histogram
}

// Search runs a pipeline of img for every ordering of phases, each one started
// with an input signal of 0, and returns the highest signal. When several
// orderings give the same signal, the lexicographically smallest one is
// reported.
//
// Orderings are tried concurrently, each on its own instances. The first
// failure cancels the search.
func Search(ctx context.Context, img vm.Image, phases []vm.Cell, feedback bool, opts ...vm.Option) (*Result, error) {
	orders := perm.Permutations(phases)
	signals := make([]vm.Cell, len(orders))
	counts := make([]int64, len(orders))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k := range orders {
		k := k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := New(img, orders[k], feedback, opts...)
			if err != nil {
				return err
			}
			signals[k], err = p.Run(0)
			counts[k] = p.InstructionCount()
			return errors.Wrapf(err, "phases %v", orders[k])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &Result{Instructions: hdrhistogram.New(1, maxTrackedCount, 3)}
	best := -1
	for k, order := range orders {
		c := counts[k]
		if c > maxTrackedCount {
			c = maxTrackedCount
		}
		if err := r.Instructions.RecordValue(c); err != nil {
			return nil, errors.Wrap(err, "instruction histogram")
		}
		if best < 0 || signals[k] > signals[best] ||
			signals[k] == signals[best] && slices.Compare(order, orders[best]) < 0 {
			best = k
		}
	}
	r.Signal, r.Phases = signals[best], orders[best]
	return r, nil
}
