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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/consensys/go-aluvm/pkg/reg"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	t.Run("canonical", func(t *testing.T) {
		out := writeLiteralsOf(t, []string{"378", "0x00ff"}, false, 0)
		require.Equal(t, "378\t0x7a01\tbytes=2\tones=6\n0x00ff\t0x00ff\tbytes=2\tones=8\n", out)
	})
	t.Run("abbrev", func(t *testing.T) {
		out := writeLiteralsOf(t, []string{"-1"}, true, 0)
		require.Equal(t, "-1\t0xffffffff..ffffffff\tbytes=16\tones=128\n", out)
	})
	t.Run("narrow terminal", func(t *testing.T) {
		out := writeLiteralsOf(t, []string{"-1", "5"}, false, 40)
		require.Equal(t, "-1\t0xffffffff..ffffffff\tbytes=16\tones=128\n5\t0x05\tbytes=1\tones=2\n", out)
	})
	t.Run("wide terminal", func(t *testing.T) {
		out := writeLiteralsOf(t, []string{"-1"}, false, 200)
		require.Equal(t, "-1\t0x"+strings.Repeat("ff", 16)+"\tbytes=16\tones=128\n", out)
	})
}

func TestLiteralCommand(t *testing.T) {
	var buf bytes.Buffer
	//
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"literal", "--abbrev=false", "--raw=false", "0x0102"})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, "0x0102\t0x0102\tbytes=2\tones=2\n", buf.String())
}

func TestConvert(t *testing.T) {
	var args = []string{"378", "-1", "0x0100000000000000000000000000000001"}
	//
	tests := []struct {
		target   string
		expected []string
	}{
		{"u8", []string{"122", "255", "1"}},
		{"u16", []string{"378", "65535", "1"}},
		{"i8", []string{"122", "-1", "1"}},
		{"i64", []string{"378", "-1", "1"}},
		{"u128", []string{"378", "340282366920938463463374607431768211455", "1"}},
		{"i128", []string{"378", "-1", "1"}},
		{"u256", []string{"378", "340282366920938463463374607431768211455", "340282366920938463463374607431768211457"}},
	}
	//
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			var (
				buf       bytes.Buffer
				converter = findConverter(tt.target)
				expected  strings.Builder
			)
			//
			require.NotNil(t, converter)
			writeConversions(&buf, args, parseLiterals(t, args), converter)
			//
			for i, arg := range args {
				expected.WriteString(arg + "\t" + tt.expected[i] + "\n")
			}
			//
			require.Equal(t, expected.String(), buf.String())
		})
	}
}

func TestConvertUnknownType(t *testing.T) {
	require.Nil(t, findConverter("u24"))
	require.Nil(t, findConverter("i256"))
}

func TestStepCommand(t *testing.T) {
	var buf bytes.Buffer
	//
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"step", "--", "1", "-1", "-5", "7"})
	require.NoError(t, rootCmd.Execute())
	//
	expected := "1\tinc\t,0x01\n" +
		"-1\tdec\t,0x" + strings.Repeat("ff", 16) + "\n" +
		"-5\tsub\t,0xfb" + strings.Repeat("ff", 15) + "\n" +
		"7\tadd\t,0x07\n"
	require.Equal(t, expected, buf.String())
}

func TestPut(t *testing.T) {
	t.Run("duplicates", func(t *testing.T) {
		out := putAll(t, "a8[1]=1", "a8[0]=0x01", "r128[3]=-1", "a16[2]=5", "a16[2]=~")
		require.Equal(t, "a8[0]\t0x01\n"+
			"a8[1]\t0x01\t(duplicate)\n"+
			"r128[3]\t0xffffffff..ffffffff\n"+
			"3 registers, 2 distinct values\n", out)
	})
	t.Run("resize", func(t *testing.T) {
		out := putAll(t, "a16[0]=1", "a8[0]=0x0102")
		require.Equal(t, "a8[0]\t0x01\na16[0]\t0x0100\n2 registers, 2 distinct values\n", out)
	})
	t.Run("whitespace", func(t *testing.T) {
		out := putAll(t, " a32 [ 4 ] = 0x01020304 ")
		require.Equal(t, "a32[4]\t0x01020304\n1 registers, 1 distinct values\n", out)
	})
}

func TestPutInvalid(t *testing.T) {
	var (
		file = reg.NewFile()
		aerr *reg.AddressError
		lerr *reg.LiteralError
	)
	//
	require.Error(t, loadRegister(file, "a8[0]"))
	require.Error(t, loadRegister(file, "a8[0]="))
	require.True(t, errors.As(loadRegister(file, "x8[0]=1"), &aerr))
	require.True(t, errors.As(loadRegister(file, "a24[0]=1"), &aerr))
	require.True(t, errors.As(loadRegister(file, "a8[32]=1"), &aerr))
	require.True(t, errors.As(loadRegister(file, "a8[0]=+5"), &lerr))
	require.Equal(t, reg.UNKNOWN_LITERAL, lerr.Kind)
	require.Empty(t, file.Assigned())
}

// ============================================================================
// Helpers
// ============================================================================

func writeLiteralsOf(t *testing.T, args []string, abbrev bool, width int) string {
	var buf bytes.Buffer
	//
	writeLiterals(&buf, args, parseLiterals(t, args), abbrev, false, width)
	//
	return buf.String()
}

func putAll(t *testing.T, assignments ...string) string {
	var (
		buf  bytes.Buffer
		file = reg.NewFile()
	)
	//
	for _, a := range assignments {
		require.NoError(t, loadRegister(file, a))
	}
	//
	writeRegisters(&buf, file)
	//
	return buf.String()
}

func parseLiterals(t *testing.T, args []string) []reg.Value {
	var values = make([]reg.Value, len(args))
	//
	for i, arg := range args {
		val, err := reg.ParseLiteral(arg)
		require.NoError(t, err)
		//
		values[i] = val
	}
	//
	return values
}
