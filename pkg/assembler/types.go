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
	"fmt"
)

type Format uint

type Cursor struct {
	Line   int
	Column int
	Size   int
}

type Token struct {
	Position Cursor
	Value    string
}

// Mnemonic describes one instruction name: its encoding format, its
// format-specific numeric code (funct for the register formats, opcode
// for the immediate format), and whether it uses memory operand order.
type Mnemonic struct {
	Format   Format
	Code     uint32
	MemoryOp bool
}

type TokenError interface {
	GetPosition() Cursor
}

type UnknownMnemonicError struct {
	Position Cursor
	Received string
}

func (err *UnknownMnemonicError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownMnemonicError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown mnemonic '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type UnknownRegisterError struct {
	Position Cursor
	Received string
}

func (err *UnknownRegisterError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownRegisterError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown register '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type InvalidNumOperandsError struct {
	Position Cursor
	Required int
	Received int
}

func (err *InvalidNumOperandsError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidNumOperandsError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid number of operands\n\twant:%d\n\thave:%d",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}

type InvalidLiteralError struct {
	Position Cursor
}

func (err *InvalidLiteralError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidLiteralError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid numeric literal",
		err.Position.Line,
		err.Position.Column,
	)
}

type OversizedLiteralError struct {
	Position Cursor
	Required interface{}
	Received interface{}
}

func (err *OversizedLiteralError) GetPosition() Cursor {
	return err.Position
}

func (err *OversizedLiteralError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Literal exceeds allowed size\n\twant:%d\n\thave:%d",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}
