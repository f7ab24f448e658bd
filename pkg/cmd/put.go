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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-aluvm/pkg/reg"
	"github.com/consensys/go-aluvm/pkg/util/collection/hash"
	"github.com/spf13/cobra"
)

var putCmd = &cobra.Command{
	Use:   "put [flags] addr=literal ...",
	Short: "load literals into registers.",
	Long: `Load one or more literals into the registers of an empty register file,
and then report the contents of every assigned register.  Assignments are
applied in order, and an assignment of "~" clears the register.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			file = reg.NewFile()
			errs []error
		)
		//
		for _, arg := range args {
			if err := loadRegister(file, arg); err != nil {
				errs = append(errs, err)
			}
		}
		//
		exitOnErrors(errs)
		//
		writeRegisters(cmd.OutOrStdout(), file)
	},
}

// loadRegister applies a single assignment of the form "addr=literal" to the
// given register file.
func loadRegister(file *reg.File, assignment string) error {
	var lhs, rhs, ok = strings.Cut(assignment, "=")
	//
	if !ok {
		return fmt.Errorf("invalid assignment \"%s\" (expected addr=literal)", assignment)
	}
	//
	addr, err := reg.ParseAddress(strings.TrimSpace(lhs))
	if err != nil {
		return err
	}
	//
	rhs = strings.TrimSpace(rhs)
	//
	if rhs == "~" {
		file.Clear(addr)
		return nil
	} else if rhs == "" {
		return errors.New("missing literal for " + addr.String())
	}
	//
	val, err := reg.ParseLiteral(rhs)
	if err != nil {
		return err
	}
	//
	file.Set(addr, reg.SomeRegVal(val))
	//
	return nil
}

// writeRegisters writes the contents of every assigned register, followed by
// the number of distinct values held.
func writeRegisters(out io.Writer, file *reg.File) {
	var (
		assigned = file.Assigned()
		distinct = hash.NewSet[reg.Value](uint(len(assigned)))
	)
	//
	for _, addr := range assigned {
		val := file.Get(addr).Unwrap()
		//
		if distinct.Insert(val.ToClean()) {
			fmt.Fprintf(out, "%s\t%s\t(duplicate)\n", addr, val.Abbrev())
		} else {
			fmt.Fprintf(out, "%s\t%s\n", addr, val.Abbrev())
		}
	}
	//
	fmt.Fprintf(out, "%d registers, %d distinct values\n", len(assigned), distinct.Size())
}

func init() {
	rootCmd.AddCommand(putCmd)
}
