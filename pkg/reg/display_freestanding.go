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

//go:build freestanding

package reg

import (
	"strconv"
	"strings"
)

// String returns a debug-style rendering of this value, listing its first and
// last four logical bytes.  Freestanding builds carry no text codec, hence no
// hexadecimal encoder is used here.
func (p Value) String() string {
	var (
		builder strings.Builder
		n       = min(p.len, 4)
	)
	//
	builder.WriteString("0x")
	writeByteList(&builder, p.bytes[:n])
	builder.WriteString("..")
	writeByteList(&builder, p.bytes[p.len-n:p.len])
	//
	return builder.String()
}

func writeByteList(builder *strings.Builder, bytes []byte) {
	builder.WriteString("[")
	//
	for i, b := range bytes {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString("0x")
		//
		if b < 0x10 {
			builder.WriteString("0")
		}
		//
		builder.WriteString(strings.ToUpper(strconv.FormatUint(uint64(b), 16)))
	}
	//
	builder.WriteString("]")
}
