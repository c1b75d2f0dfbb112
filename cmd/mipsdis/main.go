// Copyright (C) 2023  gyujh630

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/gyujh630/ca-pa1/pkg/disasm"
)

var helpvar bool

const usage = "mipsdis [filename]"

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.Parse()
}

func mipsdis() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	args := flag.Args()

	var input io.Reader

	if len(args) > 1 {
		log.Println(usage)
		return 1
	} else if len(args) == 1 {
		file, err := os.Open(args[0])

		if err != nil {
			log.Println(err)
			return 1
		}

		defer file.Close()

		input = file
	} else {
		input = os.Stdin
	}

	var failed bool

	scanner := bufio.NewScanner(input)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		word, err := strconv.ParseUint(scanner.Text(), 0, 32)

		if err != nil {
			log.Printf("Invalid instruction word '%s'", scanner.Text())
			failed = true
			continue
		}

		instruction, err := disasm.Decode(uint32(word))

		if err != nil {
			log.Println(err)
			failed = true
			continue
		}

		fmt.Println(instruction)
	}

	if err := scanner.Err(); err != nil {
		log.Println(err)
		return 1
	}

	if failed {
		return 1
	}

	return 0
}

func main() {
	os.Exit(mipsdis())
}
