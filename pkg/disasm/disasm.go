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

package disasm

import (
	"fmt"

	"github.com/gyujh630/ca-pa1/pkg/assembler"
	"github.com/gyujh630/ca-pa1/pkg/encoding"
)

// Instruction is a decoded 32-bit MIPS word. Only the fields defined
// by Format are meaningful.
type Instruction struct {
	Mnemonic string
	Format   assembler.Format
	Rd       uint32
	Rs       uint32
	Rt       uint32
	Shamt    uint32
	Imm      int32
	MemoryOp bool
}

type UnknownEncodingError struct {
	Word uint32
}

func (err *UnknownEncodingError) Error() string {
	return fmt.Sprintf("Unknown instruction encoding %#08x", err.Word)
}

// Reverse lookups derived from the assembler's mnemonic table, keyed
// by funct code for opcode-0 formats and by opcode otherwise.
var functNames = make(map[uint32]string)
var opcodeNames = make(map[uint32]string)

func init() {
	for name, mnemonic := range assembler.Mnemonics {
		switch mnemonic.Format {
		case assembler.FORMAT_REGREG, assembler.FORMAT_REGSHIFT:
			functNames[mnemonic.Code] = name
		case assembler.FORMAT_IMMEDIATE:
			opcodeNames[mnemonic.Code] = name
		}
	}
}

// Decode recovers the mnemonic and operand fields of an instruction
// word produced by the assembler.
func Decode(word uint32) (Instruction, error) {
	opcode := word >> 26

	if opcode == 0 {
		funct := word & 0x3F

		name, ok := functNames[funct]

		if !ok {
			return Instruction{}, &UnknownEncodingError{word}
		}

		mnemonic := assembler.Mnemonics[name]

		return Instruction{
			Mnemonic: name,
			Format:   mnemonic.Format,
			Rd:       (word >> 11) & 0x1F,
			Rs:       (word >> 21) & 0x1F,
			Rt:       (word >> 16) & 0x1F,
			Shamt:    (word >> 6) & 0x1F,
		}, nil
	}

	name, ok := opcodeNames[opcode]

	if !ok {
		return Instruction{}, &UnknownEncodingError{word}
	}

	mnemonic := assembler.Mnemonics[name]

	return Instruction{
		Mnemonic: name,
		Format:   mnemonic.Format,
		Rs:       (word >> 21) & 0x1F,
		Rt:       (word >> 16) & 0x1F,
		Imm:      int32(encoding.SignExtend(word&0xFFFF, 16)),
		MemoryOp: mnemonic.MemoryOp,
	}, nil
}

// String renders the canonical source form of the instruction, which
// the assembler tokenizes and encodes back to the original word.
func (ins Instruction) String() string {
	switch ins.Format {
	case assembler.FORMAT_REGREG:
		return fmt.Sprintf(
			"%s %s %s %s",
			ins.Mnemonic,
			assembler.RegisterNames[ins.Rd],
			assembler.RegisterNames[ins.Rs],
			assembler.RegisterNames[ins.Rt],
		)

	case assembler.FORMAT_REGSHIFT:
		return fmt.Sprintf(
			"%s %s %s %d",
			ins.Mnemonic,
			assembler.RegisterNames[ins.Rd],
			assembler.RegisterNames[ins.Rt],
			ins.Shamt,
		)

	case assembler.FORMAT_IMMEDIATE:
		if ins.MemoryOp {
			return fmt.Sprintf(
				"%s %s %d %s",
				ins.Mnemonic,
				assembler.RegisterNames[ins.Rt],
				ins.Imm,
				assembler.RegisterNames[ins.Rs],
			)
		}

		return fmt.Sprintf(
			"%s %s %s %d",
			ins.Mnemonic,
			assembler.RegisterNames[ins.Rt],
			assembler.RegisterNames[ins.Rs],
			ins.Imm,
		)
	}

	return fmt.Sprintf("<invalid %s>", ins.Mnemonic)
}
