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
	"strings"
)

// Tokenize splits a source line into its maximal non-whitespace
// substrings, in source order. Whitespace is space and tab. An empty
// or all-whitespace line yields no tokens. Token values are
// independent strings and never alias the input line.
func Tokenize(line string, lineno int) []Token {
	var tokens []Token
	var builder strings.Builder

	tokenStart := 0

	flush := func() {
		if builder.Len() == 0 {
			return
		}

		tokens = append(tokens, Token{
			Position: Cursor{
				Line:   lineno,
				Column: tokenStart,
				Size:   builder.Len(),
			},
			Value: builder.String(),
		})
		builder.Reset()
	}

	for column, char := range line {
		if char == ' ' || char == '\t' {
			flush()
			continue
		}

		if builder.Len() == 0 {
			tokenStart = column + 1
		}

		builder.WriteRune(char)
	}

	flush()

	return tokens
}
