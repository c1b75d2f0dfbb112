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
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gyujh630/ca-pa1/pkg/assembler"
)

var helpvar bool
var strictvar bool
var outvar string

const usage = "mipsasm [-strict] [-out outfile] [filename]"

const banner = `*********************************************
*        >> MIPS instruction translator <<  *
*                                           *
*  mnemonic operand operand operand         *
*********************************************`

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(
		&strictvar, "strict", false,
		"Rejects unknown register names instead of resolving them to "+
			"$zero",
	)
	flag.StringVar(
		&outvar, "out", "",
		"Writes the encoded words to a big-endian binary file instead "+
			"of printing them",
	)
	flag.Parse()
}

func diagnose(err error, line string) {
	if tokenErr, ok := err.(assembler.TokenError); ok {
		cursor := tokenErr.GetPosition()

		underlinefmt := fmt.Sprintf(
			"%% %ds%s",
			cursor.Column,
			strings.Repeat("~", cursor.Size-1),
		)

		log.Printf(
			"%s\n%s\n\033[31m%s\033[0m",
			err,
			line,
			fmt.Sprintf(underlinefmt, "^"),
		)
	} else {
		log.Println(err)
	}
}

func mipsasm() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	args := flag.Args()

	var input io.Reader
	var interactive bool

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

		filename := filepath.Base(file.Name())

		if stat, err := file.Stat(); err != nil {
			log.Println(err)
			return 1
		} else if stat.IsDir() {
			log.Printf("%s is not a valid assembly file", filename)
			return 1
		}

		input = file
		log.SetPrefix(fmt.Sprintf("\033[1m%s:\033[0m", filename))
	} else {
		input = os.Stdin
		interactive = isTerminal(os.Stdin.Fd())
		log.SetPrefix("\033[1m<stdin>:\033[0m")
	}

	if interactive {
		fmt.Println(banner)
		fmt.Print(">> ")
	}

	translator := assembler.Translator{StrictRegisters: strictvar}

	var words []uint32
	var failed bool

	scanner := bufio.NewScanner(input)

	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.ToLower(scanner.Text())

		tokens := assembler.Tokenize(line, lineno)

		if len(tokens) == 0 {
			if interactive {
				fmt.Print(">> ")
			}
			continue
		}

		word, err := translator.Translate(tokens)

		if err != nil {
			diagnose(err, line)
			failed = true
		} else if outvar != "" {
			words = append(words, word)
		} else {
			fmt.Printf("0x%08x\n", word)
		}

		if interactive {
			fmt.Print(">> ")
		}
	}

	if err := scanner.Err(); err != nil {
		log.Println(err)
		return 1
	}

	if interactive {
		fmt.Println()
	}

	if outvar != "" {
		buffer := new(bytes.Buffer)

		if err := binary.Write(buffer, binary.BigEndian, words); err != nil {
			log.Println("Error writing output file")
			log.Println(err)
			return 1
		}

		if err := os.WriteFile(outvar, buffer.Bytes(), 0666); err != nil {
			log.Println("Error writing output file")
			log.Println(err)
			return 1
		}
	}

	if failed && !interactive {
		return 1
	}

	return 0
}

func main() {
	os.Exit(mipsasm())
}
