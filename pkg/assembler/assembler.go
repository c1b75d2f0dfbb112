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

import (
	"bufio"
	"io"
	"strings"

	"github.com/gyujh630/ca-pa1/pkg/encoding"
)

// Translator encodes tokenized MIPS assembly statements into 32-bit
// instruction words. The zero value resolves unknown register names to
// $zero, matching the classic permissive behavior; set StrictRegisters
// to turn them into errors instead.
type Translator struct {
	StrictRegisters bool
}

func parseLiteral(token *Token) (int64, error) {
	if strings.ContainsAny(token.Value, "xX") {
		result, err := encoding.DecodeHex(token.Value)

		if err != nil {
			return 0, &InvalidLiteralError{token.Position}
		}

		return int64(result), nil
	}

	result, err := encoding.DecodeInt(token.Value)

	if err != nil {
		return 0, &InvalidLiteralError{token.Position}
	}

	return int64(result), nil
}

func (t *Translator) parseRegister(token *Token) (uint32, error) {
	name := strings.TrimPrefix(token.Value, "$")

	if reg, ok := Registers[name]; ok {
		return reg, nil
	}

	if t.StrictRegisters {
		return 0, &UnknownRegisterError{token.Position, token.Value}
	}

	return 0, nil
}

// Translate encodes one statement from its token sequence. The first
// token is the mnemonic, already lower-cased by the caller; the rest
// are operands in source order. No state persists between calls.
func (t *Translator) Translate(tokens []Token) (uint32, error) {
	if len(tokens) == 0 {
		return 0, &InvalidNumOperandsError{Cursor{}, 1, 0}
	}

	mnemonic, ok := Mnemonics[tokens[0].Value]

	if !ok {
		return 0, &UnknownMnemonicError{tokens[0].Position, tokens[0].Value}
	}

	operands := tokens[1:]

	if count := len(operands); count != 3 {
		return 0, &InvalidNumOperandsError{tokens[0].Position, 3, count}
	}

	switch mnemonic.Format {
	// add rd, rs, rt | 000000|rs   |rt   |rd   |00000|funct |
	case FORMAT_REGREG:
		rd, err := t.parseRegister(&operands[0])
		if err != nil {
			return 0, err
		}

		rs, err := t.parseRegister(&operands[1])
		if err != nil {
			return 0, err
		}

		rt, err := t.parseRegister(&operands[2])
		if err != nil {
			return 0, err
		}

		return mnemonic.Code | rd<<11 | rt<<16 | rs<<21, nil

	// sll rd, rt, shamt | 000000|00000|rt   |rd   |shamt|funct |
	case FORMAT_REGSHIFT:
		rd, err := t.parseRegister(&operands[0])
		if err != nil {
			return 0, err
		}

		rt, err := t.parseRegister(&operands[1])
		if err != nil {
			return 0, err
		}

		shamt, err := parseLiteral(&operands[2])
		if err != nil {
			return 0, err
		}

		if shamt < 0 || shamt > 31 {
			return 0, &OversizedLiteralError{operands[2].Position, 31, shamt}
		}

		return mnemonic.Code | uint32(shamt)<<6 | rd<<11 | rt<<16, nil

	// addi rt, rs, imm | opcode|rs   |rt   |immediate        |
	// lw   rt, imm, rs | opcode|rs   |rt   |offset           |
	case FORMAT_IMMEDIATE:
		var literal *Token
		var base *Token

		if mnemonic.MemoryOp {
			literal = &operands[1]
			base = &operands[2]
		} else {
			literal = &operands[2]
			base = &operands[1]
		}

		rt, err := t.parseRegister(&operands[0])
		if err != nil {
			return 0, err
		}

		rs, err := t.parseRegister(base)
		if err != nil {
			return 0, err
		}

		imm, err := parseLiteral(literal)
		if err != nil {
			return 0, err
		}

		// Negative values are truncated to their two's-complement low
		// 16 bits; hex literals may name the raw field up to 0xFFFF.
		if imm < -32768 || imm > 0xFFFF {
			return 0, &OversizedLiteralError{literal.Position, 0xFFFF, imm}
		}

		return uint32(imm)&0xFFFF | rt<<16 | rs<<21 | mnemonic.Code<<26, nil
	}

	return 0, &UnknownMnemonicError{tokens[0].Position, tokens[0].Value}
}

// TranslateSource encodes every statement read from input, one per
// line. Lines are lower-cased before tokenizing; empty lines produce
// no word. Errors are collected per line and translation always
// continues with the next line.
func (t *Translator) TranslateSource(input io.Reader) (result []uint32, errs []error) {
	scanner := bufio.NewScanner(input)

	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.ToLower(scanner.Text())

		tokens := Tokenize(line, lineno)

		if len(tokens) == 0 {
			continue
		}

		word, err := t.Translate(tokens)

		if err != nil {
			errs = append(errs, err)
			continue
		}

		result = append(result, word)
	}

	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}

	return
}
