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

	"github.com/consensys/go-aluvm/pkg/reg"
	"github.com/spf13/cobra"
)

var stepCmd = &cobra.Command{
	Use:   "step literal1 literal2 ...",
	Short: "render literals as step instructions.",
	Long: `Render one or more assembly literals as the step of an increment or
decrement instruction, showing the mnemonic selected and the operand.  Negative
literals must follow "--" to avoid being read as flags.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for i, val := range ParseLiterals(args) {
			step := reg.NewStep(val)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%#v\t%v\n", args[i], step, step)
		}
	},
}

func init() {
	rootCmd.AddCommand(stepCmd)
}
