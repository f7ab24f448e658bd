// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package lex

import (
	"slices"
	"testing"
)

func TestLexer_00(t *testing.T) {
	checkLexer(t, "", 0, Token{END_OF, NewSpan(0, 0)})
}

func TestLexer_01(t *testing.T) {
	checkLexer(t, "[", 0,
		Token{LSQUARE, NewSpan(0, 1)},
		Token{END_OF, NewSpan(1, 1)})
}

func TestLexer_02(t *testing.T) {
	checkLexer(t, "[]", 0,
		Token{LSQUARE, NewSpan(0, 1)},
		Token{RSQUARE, NewSpan(1, 2)},
		Token{END_OF, NewSpan(2, 2)})
}

func TestLexer_03(t *testing.T) {
	checkLexer(t, "!", 1)
}

func TestLexer_04(t *testing.T) {
	checkLexer(t, "a16[8]", 0,
		Token{IDENT, NewSpan(0, 1)},
		Token{NUMBER, NewSpan(1, 3)},
		Token{LSQUARE, NewSpan(3, 4)},
		Token{NUMBER, NewSpan(4, 5)},
		Token{RSQUARE, NewSpan(5, 6)},
		Token{END_OF, NewSpan(6, 6)})
}

func TestLexer_05(t *testing.T) {
	checkLexer(t, "r1024 [ 5 ]", 0,
		Token{IDENT, NewSpan(0, 1)},
		Token{NUMBER, NewSpan(1, 5)},
		Token{WSPACE, NewSpan(5, 6)},
		Token{LSQUARE, NewSpan(6, 7)},
		Token{WSPACE, NewSpan(7, 8)},
		Token{NUMBER, NewSpan(8, 9)},
		Token{WSPACE, NewSpan(9, 10)},
		Token{RSQUARE, NewSpan(10, 11)},
		Token{END_OF, NewSpan(11, 11)})
}

func TestLexer_06(t *testing.T) {
	checkLexer(t, "a8!", 1,
		Token{IDENT, NewSpan(0, 1)},
		Token{NUMBER, NewSpan(1, 2)})
}

// ==================================================================
// Framework
// ==================================================================

const (
	END_OF uint = iota
	WSPACE
	LSQUARE
	RSQUARE
	NUMBER
	IDENT
)

var rules = []LexRule[rune]{
	Rule(Unit('['), LSQUARE),
	Rule(Unit(']'), RSQUARE),
	Rule(Many(Or(Unit(' '), Unit('\t'))), WSPACE),
	Rule(Many(Within('0', '9')), NUMBER),
	Rule(Within('a', 'z'), IDENT),
	Rule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	lexer := NewLexer([]rune(input), rules...)
	tokens := lexer.Collect()
	//
	if !slices.Equal(tokens, expected) {
		t.Errorf("expected tokens %v, got %v", expected, tokens)
	} else if lexer.Remaining() != remainder {
		t.Errorf("expected %d items remaining, got %d", remainder, lexer.Remaining())
	}
}
