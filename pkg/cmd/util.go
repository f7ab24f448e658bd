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
	"os"

	"github.com/consensys/go-aluvm/pkg/reg"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// ParseLiterals parses a set of literals given on the command line, or exits
// reporting every literal which failed.
func ParseLiterals(args []string) []reg.Value {
	var (
		values = make([]reg.Value, len(args))
		errors []error
	)
	//
	for i, arg := range args {
		val, err := reg.ParseLiteral(arg)
		if err != nil {
			errors = append(errors, err)
		}
		//
		values[i] = val
	}
	//
	exitOnErrors(errors)
	//
	return values
}

// exitOnErrors logs the given errors (if any) and then exits.
func exitOnErrors(errors []error) {
	if len(errors) == 0 {
		return
	}
	//
	for _, err := range errors {
		log.Error(err)
	}
	//
	os.Exit(3)
}

// terminalWidth returns the width of the terminal attached to stdout, or zero
// if stdout is not a terminal.
func terminalWidth() int {
	var fd = int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return 0
	}
	//
	width, _, err := term.GetSize(fd)
	if err != nil {
		log.Debugf("unable to determine terminal size: %s", err)
		return 0
	}
	//
	return width
}
