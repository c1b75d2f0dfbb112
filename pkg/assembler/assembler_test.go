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

package assembler_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gyujh630/ca-pa1/pkg/assembler"
)

type testCase struct {
	Name   string
	Input  string
	Output []uint32
	Strict bool
}

type failCase struct {
	Name   string
	Input  string
	Error  error
	Strict bool
}

func testTranslateSuccess(t *testing.T, test *testCase) {
	translator := assembler.Translator{StrictRegisters: test.Strict}

	result, errs := translator.TranslateSource(strings.NewReader(test.Input))

	if len(errs) > 0 {
		t.Fatal(errs[0])
	}

	if len(result) != len(test.Output) {
		t.Fatalf(
			"Invalid number of words\nwant:%d\nhave:%d",
			len(test.Output),
			len(result),
		)
	}

	for i, want := range test.Output {
		if have := result[i]; have != want {
			t.Fatalf(
				"Instruction encoding mismatch\n"+
					"want:%#08x (test.Output[%d])\n"+
					"have:%#08x",
				want,
				i,
				have,
			)
		}
	}
}

func testTranslateFail(t *testing.T, test *failCase) {
	if test.Error == nil {
		panic("Fail case missing error value")
	}

	translator := assembler.Translator{StrictRegisters: test.Strict}

	_, errs := translator.TranslateSource(strings.NewReader(test.Input))

	if len(errs) == 0 {
		t.Fatalf(
			"%s produced error of incorrect type"+
				"\nwant:%T (test.Error)\nhave:<nil>",
			t.Name(),
			test.Error,
		)
	}

	if len(errs) > 1 {
		errTypes := make([]reflect.Type, 0, len(errs))
		for _, err := range errs {
			errTypes = append(errTypes, reflect.TypeOf(err))
		}

		t.Fatalf(
			"%s produced multiple errors:\n\twant:%T (test.Error)\n\thave:%v",
			t.Name(),
			test.Error,
			errTypes,
		)
	}

	if reflect.TypeOf(errs[0]) != reflect.TypeOf(test.Error) {
		t.Fatalf(
			"%s produced error of incorrect type"+
				"\nwant:%T (test.Error)\nhave:%T",
			t.Name(),
			test.Error,
			errs[0],
		)
	}
}

func testSuccess(t *testing.T, tests []testCase) {
	t.Run("Success", func(t *testing.T) {
		for _, test := range tests {
			t.Run(test.Name, func(t *testing.T) {
				testTranslateSuccess(t, &test)
			})
		}
	})
}

func testFail(t *testing.T, tests []failCase) {
	t.Run("Fail", func(t *testing.T) {
		for _, test := range tests {
			t.Run(test.Name, func(t *testing.T) {
				testTranslateFail(t, &test)
			})
		}
	})
}

func TestRegReg(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:   "Add",
			Input:  "add t0 t1 t2",
			Output: []uint32{0x012A4020},
		},
		{
			Name:   "Sub",
			Input:  "sub s0 s1 s2",
			Output: []uint32{0x02328022},
		},
		{
			Name:   "And",
			Input:  "and a0 a1 a2",
			Output: []uint32{0x00A62024},
		},
		{
			Name:   "Or",
			Input:  "or v0 v1 a0",
			Output: []uint32{0x00641025},
		},
		{
			Name:   "Nor",
			Input:  "nor t8 t9 k0",
			Output: []uint32{0x033AC027},
		},
		{
			Name:   "DollarPrefix",
			Input:  "add $t0 $t1 $t2",
			Output: []uint32{0x012A4020},
		},
		{
			Name:   "UnknownRegisterDefaultsToZero",
			Input:  "add t0 t1 bogus",
			Output: []uint32{0x01204020},
		},
	})

	testFail(t, []failCase{
		{
			Name:   "UnknownRegisterStrict",
			Input:  "add t0 t1 bogus",
			Error:  &assembler.UnknownRegisterError{},
			Strict: true,
		},
		{
			Name:  "MissingOperand",
			Input: "add t0 t1",
			Error: &assembler.InvalidNumOperandsError{},
		},
		{
			Name:  "ExtraOperand",
			Input: "add t0 t1 t2 t3",
			Error: &assembler.InvalidNumOperandsError{},
		},
	})
}

func TestRegShift(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:   "Sll",
			Input:  "sll t0 t1 4",
			Output: []uint32{0x00094100},
		},
		{
			Name:   "SllHexAmount",
			Input:  "sll t0 t1 0x10",
			Output: []uint32{0x00094400},
		},
		{
			Name:   "SrlZeroAmount",
			Input:  "srl s0 s1 0",
			Output: []uint32{0x00118002},
		},
		{
			Name:   "SraMaxAmount",
			Input:  "sra t0 t1 31",
			Output: []uint32{0x000947C3},
		},
	})

	testFail(t, []failCase{
		{
			Name:  "AmountNotNumeric",
			Input: "sll t0 t1 zz",
			Error: &assembler.InvalidLiteralError{},
		},
		{
			Name:  "AmountTooLarge",
			Input: "sll t0 t1 32",
			Error: &assembler.OversizedLiteralError{},
		},
		{
			Name:  "AmountNegative",
			Input: "sll t0 t1 -1",
			Error: &assembler.OversizedLiteralError{},
		},
	})
}

func TestImmediate(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:   "AddiNegative",
			Input:  "addi t0 t1 -1",
			Output: []uint32{0x2128FFFF},
		},
		{
			Name:   "AddiMax",
			Input:  "addi t0 t1 32767",
			Output: []uint32{0x21287FFF},
		},
		{
			Name:   "AddiMin",
			Input:  "addi t0 t1 -32768",
			Output: []uint32{0x21288000},
		},
		{
			Name:   "AndiHex",
			Input:  "andi s0 s1 0xff",
			Output: []uint32{0x323000FF},
		},
		{
			Name:   "Ori",
			Input:  "ori a0 a1 255",
			Output: []uint32{0x34A400FF},
		},
		{
			Name:   "Beq",
			Input:  "beq t0 t1 16",
			Output: []uint32{0x11280010},
		},
		{
			Name:   "BneNegative",
			Input:  "bne t0 t1 -4",
			Output: []uint32{0x1528FFFC},
		},
	})

	testFail(t, []failCase{
		{
			Name:  "ImmediateNotNumeric",
			Input: "addi t0 t1 abc",
			Error: &assembler.InvalidLiteralError{},
		},
		{
			Name:  "ImmediateTooLarge",
			Input: "addi t0 t1 65536",
			Error: &assembler.OversizedLiteralError{},
		},
		{
			Name:  "ImmediateTooSmall",
			Input: "addi t0 t1 -32769",
			Error: &assembler.OversizedLiteralError{},
		},
	})
}

func TestMemory(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:   "Lw",
			Input:  "lw t0 4 t1",
			Output: []uint32{0x8D280004},
		},
		{
			Name:   "SwNegativeOffset",
			Input:  "sw s0 -8 sp",
			Output: []uint32{0xAFB0FFF8},
		},
		{
			Name:   "LwRawHexOffset",
			Input:  "lw t0 0xffff t1",
			Output: []uint32{0x8D28FFFF},
		},
	})

	testFail(t, []failCase{
		{
			Name:  "OffsetNotNumeric",
			Input: "lw t0 four t1",
			Error: &assembler.InvalidLiteralError{},
		},
	})
}

func TestUnknownMnemonic(t *testing.T) {
	testFail(t, []failCase{
		{
			Name:  "Unknown",
			Input: "foo a b c",
			Error: &assembler.UnknownMnemonicError{},
		},
	})

	// Translate itself is case-sensitive; case folding happens in
	// TranslateSource before tokenizing.
	t.Run("CaseSensitive", func(t *testing.T) {
		var translator assembler.Translator

		tokens := assembler.Tokenize("ADD t0 t1 t2", 1)

		if _, err := translator.Translate(tokens); err == nil {
			t.Fatalf(
				"Produced error of incorrect type\nwant:%T\nhave:<nil>",
				&assembler.UnknownMnemonicError{},
			)
		} else if _, ok := err.(*assembler.UnknownMnemonicError); !ok {
			t.Fatalf(
				"Produced error of incorrect type\nwant:%T\nhave:%T",
				&assembler.UnknownMnemonicError{},
				err,
			)
		}
	})
}

func TestTranslateSource(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "BlankLinesYieldNoWords",
			Input: "\n  \t \n" +
				"add t0 t1 t2\n" +
				"\n" +
				"lw t0 4 t1\n",
			Output: []uint32{0x012A4020, 0x8D280004},
		},
		{
			Name:   "UppercaseInputIsFolded",
			Input:  "ADD T0 T1 T2",
			Output: []uint32{0x012A4020},
		},
	})

	t.Run("ContinuesPastBadLine", func(t *testing.T) {
		var translator assembler.Translator

		result, errs := translator.TranslateSource(strings.NewReader(
			"add t0 t1 t2\n" +
				"foo a b c\n" +
				"sll t0 t1 4\n",
		))

		if len(errs) != 1 {
			t.Fatalf("Invalid number of errors\nwant:%d\nhave:%d", 1, len(errs))
		}

		if _, ok := errs[0].(*assembler.UnknownMnemonicError); !ok {
			t.Fatalf(
				"Produced error of incorrect type"+
					"\nwant:%T\nhave:%T",
				&assembler.UnknownMnemonicError{},
				errs[0],
			)
		}

		want := []uint32{0x012A4020, 0x00094100}

		if !reflect.DeepEqual(result, want) {
			t.Fatalf(
				"Instruction encoding mismatch\nwant:%#08x\nhave:%#08x",
				want,
				result,
			)
		}
	})
}

func TestAllRegisters(t *testing.T) {
	// or rd zero rN exercises every register index in the rt field.
	for i, name := range assembler.RegisterNames {
		var translator assembler.Translator

		tokens := assembler.Tokenize("or v0 zero "+name, 1)

		word, err := translator.Translate(tokens)

		if err != nil {
			t.Fatal(err)
		}

		want := assembler.FN_OR | 2<<11 | uint32(i)<<16

		if word != want {
			t.Fatalf(
				"Instruction encoding mismatch for '%s'"+
					"\nwant:%#08x\nhave:%#08x",
				name,
				want,
				word,
			)
		}
	}
}
