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
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/consensys/go-aluvm/pkg/util/word"
	"github.com/holiman/uint256"
)

// Bounds of signed 128 bit integers.
var (
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// FromHex constructs a value from a string of hexadecimal digits, optionally
// prefixed with "0x".  Digits are decoded pairwise into bytes in order, hence
// the value has half as many bytes as there are digits.  An error is returned
// for invalid digits, an odd number of digits, or when more than 1024 bytes
// would be decoded.
func FromHex(text string) (Value, error) {
	var (
		digits = strings.TrimPrefix(text, "0x")
		n      = len(digits) / 2
		val    Value
	)
	//
	if n > Capacity {
		cause := fmt.Errorf("%w (%d bytes, expected at most %d)", ErrCapacityExceeded, n, Capacity)
		return val, literalError(MALFORMED_HEX, text, cause)
	}
	//
	m, err := hex.Decode(val.bytes[:], []byte(digits))
	if err != nil {
		return Value{}, literalError(MALFORMED_HEX, text, err)
	}
	//
	val.len = uint16(m)
	//
	return val, nil
}

// ToHex renders the entire backing buffer of this value in hexadecimal, prefixed
// with "0x".  Observe that this includes all dirty bytes, and therefore always
// produces 2048 digits irrespective of the logical length.  Use String for the
// canonical form over the logical region only.
func (p Value) ToHex() string {
	return "0x" + hex.EncodeToString(p.bytes[:])
}

// String returns the canonical form of this value, which consists of "0x"
// followed by the hexadecimal digits of the logical region (in storage order).
func (p Value) String() string {
	return "0x" + hex.EncodeToString(p.bytes[:p.len])
}

// Abbrev returns an abbreviated form of this value, showing only the first and
// last four bytes of its logical region.  Values of at most four bytes are
// rendered in full.
func (p Value) Abbrev() string {
	if p.len <= 4 {
		return p.String()
	}
	//
	return fmt.Sprintf("0x%s..%s", hex.EncodeToString(p.bytes[:4]), hex.EncodeToString(p.bytes[p.len-4:p.len]))
}

// Format implements fmt.Formatter.  The '#' flag selects the abbreviated form
// (e.g. "%#v" or "%#s"), whilst "%x" renders the logical region without a
// prefix.
func (p Value) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if f.Flag('#') {
			io.WriteString(f, p.Abbrev())
		} else {
			io.WriteString(f, p.String())
		}
	case 'x':
		io.WriteString(f, hex.EncodeToString(p.bytes[:p.len]))
	default:
		fmt.Fprintf(f, "%%!%c(reg.Value=%s)", verb, p.String())
	}
}

// ParseLiteral parses a literal as found in assembly source.  Literals
// prefixed with "0x" are parsed as hexadecimal (see FromHex).  Literals
// prefixed with "-" are parsed as signed decimal integers of at most 128 bits,
// producing a 16 byte value in two's complement form.  Otherwise, literals
// starting with a digit are parsed as unsigned decimal integers of at most 128
// bits, producing a value of the smallest native width (1, 2, 4, 8 or 16 bytes)
// able to hold them.  Anything else is an unknown literal.
func ParseLiteral(text string) (Value, error) {
	switch {
	case strings.HasPrefix(text, "0x"):
		return FromHex(text)
	case strings.HasPrefix(text, "-"):
		return parseSignedLiteral(text)
	case len(text) > 0 && '0' <= text[0] && text[0] <= '9':
		return parseUnsignedLiteral(text)
	default:
		return Value{}, literalError(UNKNOWN_LITERAL, text, nil)
	}
}

func parseSignedLiteral(text string) (Value, error) {
	// Fast path for values which fit in 64 bits
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return FromInt128(big.NewInt(v)), nil
	} else if !errors.Is(err, strconv.ErrRange) {
		return Value{}, literalError(MALFORMED_DECIMAL, text, err)
	}
	// Slow path
	val, ok := new(big.Int).SetString(text, 10)
	//
	if !ok {
		return Value{}, literalError(MALFORMED_DECIMAL, text, numError("ParseInt128", text, strconv.ErrSyntax))
	} else if val.Cmp(minInt128) < 0 || val.Cmp(maxInt128) > 0 {
		return Value{}, literalError(MALFORMED_DECIMAL, text, numError("ParseInt128", text, strconv.ErrRange))
	}
	//
	return FromInt128(val), nil
}

func parseUnsignedLiteral(text string) (Value, error) {
	// Fast path for values which fit in 64 bits
	if v, err := strconv.ParseUint(text, 10, 64); err == nil {
		return narrowUint64(v), nil
	} else if !errors.Is(err, strconv.ErrRange) {
		return Value{}, literalError(MALFORMED_DECIMAL, text, err)
	}
	// Slow path
	val, err := uint256.FromDecimal(text)
	//
	if errors.Is(err, uint256.ErrBig256Range) || (err == nil && val.BitLen() > 128) {
		return Value{}, literalError(MALFORMED_DECIMAL, text, numError("ParseUint128", text, strconv.ErrRange))
	} else if err != nil {
		return Value{}, literalError(MALFORMED_DECIMAL, text, numError("ParseUint128", text, strconv.ErrSyntax))
	}
	//
	return FromUint256(val).Resize(16), nil
}

// narrowUint64 constructs a value from the smallest native width which holds
// the given integer.
func narrowUint64(v uint64) Value {
	var n, _ = word.NativeByteWidth(word.ByteWidth64(v))
	//
	switch n {
	case 1:
		return FromUint8(uint8(v))
	case 2:
		return FromUint16(uint16(v))
	case 4:
		return FromUint32(uint32(v))
	default:
		return FromUint64(v)
	}
}

func numError(fn string, text string, err error) *strconv.NumError {
	return &strconv.NumError{Func: fn, Num: text, Err: err}
}
