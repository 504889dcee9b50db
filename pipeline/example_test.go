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

package pipeline_test

import (
	"context"
	"fmt"

	"github.com/endor/adventcalendar-2019/pipeline"
	"github.com/endor/adventcalendar-2019/vm"
)

func ExampleSearch() {
	img, err := vm.ParseString("3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26," +
		"27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5")
	if err != nil {
		panic(err)
	}
	r, err := pipeline.Search(context.Background(), img, []vm.Cell{5, 6, 7, 8, 9}, true)
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Signal, r.Phases)

	// Output:
	// 139629729 [9 8 7 6 5]
}

func ExamplePipeline_Run() {
	img, err := vm.ParseString("3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0")
	if err != nil {
		panic(err)
	}
	p, err := pipeline.New(img, []vm.Cell{4, 3, 2, 1, 0}, false)
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Run(0))

	// Output:
	// 43210 <nil>
}
