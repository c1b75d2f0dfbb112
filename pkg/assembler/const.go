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

package assembler

const (
	FORMAT_INVALID Format = iota
	FORMAT_REGREG
	FORMAT_REGSHIFT
	FORMAT_IMMEDIATE
)

const (
	FN_ADD uint32 = 0x20
	FN_SUB uint32 = 0x22
	FN_AND uint32 = 0x24
	FN_OR  uint32 = 0x25
	FN_NOR uint32 = 0x27

	FN_SLL uint32 = 0x00
	FN_SRL uint32 = 0x02
	FN_SRA uint32 = 0x03
)

const (
	OP_ADDI uint32 = 0x08
	OP_ANDI uint32 = 0x0C
	OP_ORI  uint32 = 0x0D
	OP_LW   uint32 = 0x23
	OP_SW   uint32 = 0x2B
	OP_BEQ  uint32 = 0x04
	OP_BNE  uint32 = 0x05
)

// Mnemonics maps each supported instruction name to its format and
// numeric code. The table is fixed at startup and never mutated.
var Mnemonics = map[string]Mnemonic{
	"add": {FORMAT_REGREG, FN_ADD, false},
	"sub": {FORMAT_REGREG, FN_SUB, false},
	"and": {FORMAT_REGREG, FN_AND, false},
	"or":  {FORMAT_REGREG, FN_OR, false},
	"nor": {FORMAT_REGREG, FN_NOR, false},

	"sll": {FORMAT_REGSHIFT, FN_SLL, false},
	"srl": {FORMAT_REGSHIFT, FN_SRL, false},
	"sra": {FORMAT_REGSHIFT, FN_SRA, false},

	"addi": {FORMAT_IMMEDIATE, OP_ADDI, false},
	"andi": {FORMAT_IMMEDIATE, OP_ANDI, false},
	"ori":  {FORMAT_IMMEDIATE, OP_ORI, false},
	"lw":   {FORMAT_IMMEDIATE, OP_LW, true},
	"sw":   {FORMAT_IMMEDIATE, OP_SW, true},
	"beq":  {FORMAT_IMMEDIATE, OP_BEQ, false},
	"bne":  {FORMAT_IMMEDIATE, OP_BNE, false},
}

// RegisterNames lists the 32 MIPS register names in index order.
var RegisterNames = [32]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// Registers maps a register name to its 5-bit index.
var Registers = make(map[string]uint32, len(RegisterNames))

func init() {
	for i, name := range RegisterNames {
		Registers[name] = uint32(i)
	}
}
