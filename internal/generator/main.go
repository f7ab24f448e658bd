package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// License header written at the top of every generated file, in place of the
// dated header emitted by bavard.
const licenseHeader = `// Copyright Consensys Software Inc.
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
`

// Marker line identifying generated files.
const generatedMarker = "// Code generated by go-aluvm. DO NOT EDIT."

// Files generated into pkg/reg.
var outputs = []string{
	"../../pkg/reg/conv_array.go",
	"../../pkg/reg/conv_native.go",
	"../../pkg/reg/conv_regval.go",
	"../../pkg/reg/conv_gen_test.go",
}

// Byte widths for which fixed-size array conversions are generated.
var arrayWidths = []uint{1, 2, 4, 8, 16, 20, 32, 64, 128, 256, 512, 1024}

// Kinds of native type, which determine how conversions are rendered.
const (
	// Single byte natives (uint8, int8)
	byteKind = "byte"
	// Natives supported by encoding/binary (16, 32 and 64 bits)
	binaryKind = "binary"
	// Unsigned natives carried as *big.Int
	bigKind = "big"
	// Signed natives carried as *big.Int
	signedBigKind = "signed"
	// Natives carried as *uint256.Int
	u256Kind = "uint256"
)

type nativeSpec struct {
	// Name used for the conversion functions (e.g. "Uint32")
	Name string
	// Go type of the native
	Type string
	// Width in bytes
	Bytes uint
	// Rendering kind
	Kind string
	// Unsigned type of the same width, used when casting signed natives
	Unsigned string
	// Whether or not the type is signed
	Signed bool
}

// Bits returns the bitwidth of a native.
func (p nativeSpec) Bits() uint {
	return p.Bytes * 8
}

// BinaryName returns the name of the encoding/binary accessor for the
// unsigned type of the same width as this native (e.g. "Uint32").
func (p nativeSpec) BinaryName() string {
	if p.Unsigned == "" {
		return ""
	}
	//
	return strings.ToUpper(p.Unsigned[:1]) + p.Unsigned[1:]
}

type convConfig struct {
	Widths  []uint
	Natives []nativeSpec
}

var natives = []nativeSpec{
	{"Uint8", "uint8", 1, byteKind, "uint8", false},
	{"Uint16", "uint16", 2, binaryKind, "uint16", false},
	{"Uint32", "uint32", 4, binaryKind, "uint32", false},
	{"Uint64", "uint64", 8, binaryKind, "uint64", false},
	{"Uint128", "*big.Int", 16, bigKind, "", false},
	{"Uint256", "*uint256.Int", 32, u256Kind, "", false},
	{"Uint512", "*big.Int", 64, bigKind, "", false},
	{"Uint1024", "*big.Int", 128, bigKind, "", false},
	{"Int8", "int8", 1, byteKind, "uint8", true},
	{"Int16", "int16", 2, binaryKind, "uint16", true},
	{"Int32", "int32", 4, binaryKind, "uint32", true},
	{"Int64", "int64", 8, binaryKind, "uint64", true},
	{"Int128", "*big.Int", 16, signedBigKind, "", true},
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-aluvm")
	cfg := convConfig{arrayWidths, natives}
	//
	assertNoError(bgen.Generate(cfg, "reg", "templates",
		bavard.Entry{
			File:      outputs[0],
			Templates: []string{"conv_array.go.tmpl"},
		},
		bavard.Entry{
			File:      outputs[1],
			Templates: []string{"conv_native.go.tmpl"},
		},
		bavard.Entry{
			File:      outputs[2],
			Templates: []string{"conv_regval.go.tmpl"},
		},
		bavard.Entry{
			File:      outputs[3],
			Templates: []string{"conv.test.go.tmpl"},
		},
	), "for package \"reg\"")
	// replace bavard headers
	for _, file := range outputs {
		assertNoError(rewriteHeader(file), "for file \"%s\"", file)
	}
	// run gofmt on generated package
	runCmd("gofmt", "-w", "../../pkg/reg/")

	// run goimports on generated package
	runCmd("goimports", "-w", "../../pkg/reg/")
}

// rewriteHeader replaces everything up to and including the "Code generated"
// line of a file with the license header and a marker line recognised by the go
// tool.
func rewriteHeader(file string) error {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	//
	text := string(bytes)
	start := strings.Index(text, "// Code generated by")
	//
	if start < 0 {
		return fmt.Errorf("missing generated marker")
	}
	//
	end := start + strings.IndexByte(text[start:], '\n')
	text = licenseHeader + "\n" + generatedMarker + text[end:]
	//
	return os.WriteFile(file, []byte(text), 0644)
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
