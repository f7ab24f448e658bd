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
	"errors"
	"fmt"
)

// ErrCapacityExceeded indicates a literal which does not fit within the
// capacity of a register value.
var ErrCapacityExceeded = errors.New("literal exceeds register capacity")

// LiteralKind identifies the different ways in which parsing a literal can
// fail.
type LiteralKind uint8

const (
	// MALFORMED_HEX indicates a hexadecimal literal with invalid characters, an
	// odd number of digits, or too many digits.
	MALFORMED_HEX LiteralKind = iota
	// MALFORMED_DECIMAL indicates a decimal literal with invalid characters, or
	// whose magnitude does not fit within 128 bits.
	MALFORMED_DECIMAL
	// UNKNOWN_LITERAL indicates a token which is not a literal at all.
	UNKNOWN_LITERAL
)

func (k LiteralKind) String() string {
	switch k {
	case MALFORMED_HEX:
		return "malformed hexadecimal literal"
	case MALFORMED_DECIMAL:
		return "malformed decimal literal"
	case UNKNOWN_LITERAL:
		return "unknown literal"
	default:
		return fmt.Sprintf("literal error (%d)", uint8(k))
	}
}

// LiteralError describes a failure to parse a literal from assembly source.
// These are user-facing errors, and are reported rather than panicking.
type LiteralError struct {
	// Kind of failure.
	Kind LiteralKind
	// Literal text which failed to parse.
	Literal string
	// Underlying cause (if any), such as a *strconv.NumError or an error from
	// encoding/hex.
	Cause error
}

func (p *LiteralError) Error() string {
	switch {
	case p.Kind == UNKNOWN_LITERAL:
		return fmt.Sprintf("unknown token `%s` while parsing assembly literal", p.Literal)
	case p.Cause != nil:
		return fmt.Sprintf("%s `%s`: %s", p.Kind, p.Literal, p.Cause)
	default:
		return fmt.Sprintf("%s `%s`", p.Kind, p.Literal)
	}
}

// Unwrap returns the underlying cause of this error.
func (p *LiteralError) Unwrap() error {
	return p.Cause
}

// IsLiteralError checks whether a given error arose from parsing a literal of
// the given kind.
func IsLiteralError(err error, kind LiteralKind) bool {
	var lerr *LiteralError
	//
	return errors.As(err, &lerr) && lerr.Kind == kind
}

func literalError(kind LiteralKind, literal string, cause error) *LiteralError {
	return &LiteralError{kind, literal, cause}
}
