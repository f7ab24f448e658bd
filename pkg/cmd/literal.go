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

	"github.com/consensys/go-aluvm/pkg/reg"
	"github.com/spf13/cobra"
)

var literalCmd = &cobra.Command{
	Use:   "literal [flags] literal1 literal2 ...",
	Short: "parse one or more assembly literals.",
	Long: `Parse one or more assembly literals (e.g. 0xaf67, 378 or -5), reporting the
register value for each along with its length and number of set bits.  Negative
literals must follow "--" to avoid being read as flags.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			abbrev = GetFlag(cmd, "abbrev")
			raw    = GetFlag(cmd, "raw")
			values = ParseLiterals(args)
		)
		//
		writeLiterals(cmd.OutOrStdout(), args, values, abbrev, raw, terminalWidth())
	},
}

// writeLiterals writes a line for each literal and its value.  Values are
// abbreviated when requested, or when they would not fit within a terminal of
// the given width (where zero indicates no terminal).
func writeLiterals(out io.Writer, args []string, values []reg.Value, abbrev bool, raw bool, width int) {
	for i, val := range values {
		var text = val.String()
		//
		switch {
		case raw:
			text = val.ToHex()
		case abbrev || (width > 0 && len(args[i])+len(text)+32 > width):
			text = val.Abbrev()
		}
		//
		fmt.Fprintf(out, "%s\t%s\tbytes=%d\tones=%d\n", args[i], text, val.Len(), val.CountOnes())
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(literalCmd)
	literalCmd.Flags().Bool("abbrev", false, "abbreviate values to their first and last four bytes")
	literalCmd.Flags().Bool("raw", false, "show the entire backing buffer of each value")
}
