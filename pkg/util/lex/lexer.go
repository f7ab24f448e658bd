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

// Span represents a contiguous slice of the input, from a start index
// (inclusive) to an end index (exclusive).
type Span struct {
	start int
	end   int
}

// NewSpan constructs a new span.
func NewSpan(start int, end int) Span {
	return Span{start, end}
}

// Start returns the first index of this span.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last index of this span.
func (p Span) End() int {
	return p.end
}

// Token associates a kind (tag) with a span of the input.
type Token struct {
	Kind uint
	Span Span
}

// LexRule associates a scanner with the tag given to tokens it matches.
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer splits an input sequence into tokens according to a list of rules,
// where earlier rules take priority.
type Lexer[T any] struct {
	items  []T
	index  int
	rules  []LexRule[T]
	buffer []Token
}

// NewLexer constructs a new lexer for the given input and rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules, nil}
}

// Remaining returns the number of items not yet consumed.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// HasNext checks whether another token is available.
func (p *Lexer[T]) HasNext() bool {
	p.scan()
	return len(p.buffer) > 0
}

// Next returns the next token.  This should only be called after HasNext has
// reported a token is available.
func (p *Lexer[T]) Next() Token {
	next := p.buffer[0]
	p.buffer = p.buffer[1:]
	//
	if p.index == len(p.items) {
		// EOF condition
		p.index++
	} else {
		p.index = next.Span.End()
	}
	//
	return next
}

// Collect all remaining tokens.  Lexing stops at the first point where no rule
// matches, in which case Remaining reports a non-zero amount.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	// Keep scanning
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

func (p *Lexer[T]) scan() {
	if len(p.buffer) == 0 && p.index <= len(p.items) {
		for _, r := range p.rules {
			if n := r.scanner(p.items[p.index:]); n > 0 {
				end := min(len(p.items), p.index+int(n))
				// Insert into buffer
				p.buffer = append(p.buffer, Token{r.tag, NewSpan(p.index, end)})
				// Done
				return
			}
		}
	}
}
