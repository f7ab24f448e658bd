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

package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/consensys/go-aluvm/pkg/reg"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] literal1 literal2 ...",
	Short: "convert literals into native integers.",
	Long: `Convert one or more assembly literals into a given native integer type,
truncating any high-order bytes which do not fit.  Negative literals must follow
"--" to avoid being read as flags.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			target    = GetString(cmd, "to")
			converter = findConverter(target)
		)
		//
		if converter == nil {
			log.Errorf("unknown native type \"%s\"", target)
			os.Exit(2)
		}
		//
		writeConversions(cmd.OutOrStdout(), args, ParseLiterals(args), converter)
	},
}

// NativeConverter renders a register value as a given native type.
type NativeConverter struct {
	// Name of the native type
	Name string
	// Width of the native type in bytes
	Bytes uint16
	// Conversion function
	Convert func(reg.Value) string
}

// Available conversions
var converters = []NativeConverter{
	{"u8", 1, func(v reg.Value) string { return strconv.FormatUint(uint64(v.Uint8()), 10) }},
	{"u16", 2, func(v reg.Value) string { return strconv.FormatUint(uint64(v.Uint16()), 10) }},
	{"u32", 4, func(v reg.Value) string { return strconv.FormatUint(uint64(v.Uint32()), 10) }},
	{"u64", 8, func(v reg.Value) string { return strconv.FormatUint(v.Uint64(), 10) }},
	{"u128", 16, func(v reg.Value) string { return v.Uint128().String() }},
	{"u256", 32, func(v reg.Value) string { return v.Uint256().ToBig().String() }},
	{"u512", 64, func(v reg.Value) string { return v.Uint512().String() }},
	{"u1024", 128, func(v reg.Value) string { return v.Uint1024().String() }},
	{"i8", 1, func(v reg.Value) string { return strconv.FormatInt(int64(v.Int8()), 10) }},
	{"i16", 2, func(v reg.Value) string { return strconv.FormatInt(int64(v.Int16()), 10) }},
	{"i32", 4, func(v reg.Value) string { return strconv.FormatInt(int64(v.Int32()), 10) }},
	{"i64", 8, func(v reg.Value) string { return strconv.FormatInt(v.Int64(), 10) }},
	{"i128", 16, func(v reg.Value) string { return v.Int128().String() }},
}

func findConverter(name string) *NativeConverter {
	var i = slices.IndexFunc(converters, func(c NativeConverter) bool { return c.Name == name })
	//
	if i < 0 {
		return nil
	}
	//
	return &converters[i]
}

func writeConversions(out io.Writer, args []string, values []reg.Value, converter *NativeConverter) {
	for i, val := range values {
		if val.Len() > converter.Bytes {
			log.Debugf("truncating %s (%d bytes) to %s", args[i], val.Len(), converter.Name)
		}
		//
		fmt.Fprintf(out, "%s\t%s\n", args[i], converter.Convert(val))
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().String("to", "u64", "native type to convert into (u8..u1024, i8..i128)")
}
