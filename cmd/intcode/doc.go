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

// The intcode command runs Intcode programs with the package
// github.com/endor/adventcalendar-2019/vm.
//
// In batch mode, the program runs with the values given with -input and every
// output value is printed on its own line. The program must not ask for more
// input than what was provided:
//
//	intcode -n 1 day9.txt
//
// Day 2 style programs are patched with -set and inspected with -peek:
//
//	intcode -s 1=12 -s 2=2 -p 0 day2.txt
//
// With -amp, the program is run as a chain of amplifiers, one per phase
// setting, and the highest signal over all orderings of the phase settings is
// printed. Use -feedback to connect the last amplifier back to the first:
//
//	intcode -a 5,6,7,8,9 -f day7.txt
//
// With -ascii, output values are printed as characters and input is read
// from the terminal, one character at a time.
//
// Usage:
//
//	-a, --amp values
//		  find the best amplifier chain for the given phase settings
//	    --ascii
//		  interactive ASCII mode
//	    --debug
//		  enable debug diagnostics
//	-f, --feedback
//		  connect amplifiers in a feedback loop
//	-i, --image filename
//		  load program from file filename (default "input.txt")
//	-n, --input values
//		  queue input values before starting (can be specified multiple times)
//	    --limit n
//		  fault after n instructions (0 means no limit)
//	    --noraw
//		  disable raw terminal IO in ASCII mode
//	-p, --peek addresses
//		  print memory at addresses after the program halts
//	-s, --set addr=value
//		  store value at addr before starting (can be specified multiple times)
//	    --stats
//		  print instruction count statistics of amplifier runs
package main
