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

//go:build !freestanding

package reg

import (
	"fmt"
	"strconv"

	"github.com/consensys/go-aluvm/pkg/util/lex"
)

// AddressError describes a failure to parse a register address, such as
// "a16[8]".
type AddressError struct {
	// Text being parsed.
	Text string
	// Offset within text where the error was detected.
	Offset int
	// Description of the error.
	Message string
}

func (p *AddressError) Error() string {
	return fmt.Sprintf("invalid register `%s` (offset %d): %s", p.Text, p.Offset, p.Message)
}

const (
	addrEnd uint = iota
	addrSpace
	addrLeft
	addrRight
	addrNumber
	addrBlock
)

var addressRules = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('['), addrLeft),
	lex.Rule(lex.Unit(']'), addrRight),
	lex.Rule(lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'))), addrSpace),
	lex.Rule(lex.Many(lex.Within('0', '9')), addrNumber),
	lex.Rule(lex.Or(lex.Unit('a'), lex.Unit('r')), addrBlock),
	lex.Rule(lex.Eof[rune](), addrEnd),
}

// The expected sequence of tokens in a register address (ignoring whitespace).
var addressGrammar = []uint{addrBlock, addrNumber, addrLeft, addrNumber, addrRight, addrEnd}

// ParseAddress parses a register address of the form "a16[8]" or "r1024[5]",
// where the letter identifies the block, followed by the register width (in
// bits) and the register index.
func ParseAddress(text string) (Address, error) {
	var (
		items  = []rune(text)
		lexer  = lex.NewLexer(items, addressRules...)
		tokens []lex.Token
	)
	// Drop whitespace
	for _, t := range lexer.Collect() {
		if t.Kind != addrSpace {
			tokens = append(tokens, t)
		}
	}
	//
	if lexer.Remaining() > 0 {
		return Address{}, addressError(text, len(items)-int(lexer.Remaining()), "unexpected character")
	}
	// Check token sequence
	for i, kind := range addressGrammar {
		if i >= len(tokens) || tokens[i].Kind != kind {
			return Address{}, addressError(text, tokenOffset(tokens, i, len(items)), "malformed register")
		}
	}
	//
	block := A
	if items[tokens[0].Span.Start()] == 'r' {
		block = R
	}
	//
	bits, err := strconv.ParseUint(string(items[tokens[1].Span.Start():tokens[1].Span.End()]), 10, 16)
	if err != nil {
		return Address{}, addressError(text, tokens[1].Span.Start(), "invalid register width")
	}
	//
	index, err := strconv.ParseUint(string(items[tokens[3].Span.Start():tokens[3].Span.End()]), 10, 8)
	if err != nil || index >= NUM_REGISTERS {
		return Address{}, addressError(text, tokens[3].Span.Start(), "invalid register index")
	}
	//
	addr := Address{block, uint16(bits), uint8(index)}
	//
	if !addr.Valid() {
		return Address{}, addressError(text, tokens[1].Span.Start(), fmt.Sprintf("no %d bit registers in block %s", bits, block))
	}
	//
	return addr, nil
}

func tokenOffset(tokens []lex.Token, i int, end int) int {
	if i < len(tokens) {
		return tokens[i].Span.Start()
	}
	//
	return end
}

func addressError(text string, offset int, msg string) *AddressError {
	return &AddressError{text, offset, msg}
}
