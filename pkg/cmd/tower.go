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
package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/consensys/go-mersenne/smallfield/extensions"
)

var towerCmd = &cobra.Command{
	Use:   "tower",
	Short: "Operate on the degree-4 tower extension of the base field.",
	Long: `Operate on the degree-4 tower extension of the base field. Elements are
given as four comma-separated coordinates, e.g. "1,2,3,4". The tower constant
is an intrinsic parameter of the field and is set with --constant.`,
}

// runTowerFold builds a Run function folding two or more extension field
// elements with the given operation.
func runTowerFold(op func(f extensions.Field, x0, x1 extensions.E4, xRest ...extensions.E4) extensions.E4) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fail(cmd, fmt.Errorf("expected at least two elements"))
		}

		f := towerFromFlags(cmd)
		elems := make([]extensions.E4, len(args))

		for i, arg := range args {
			x, err := parseTuple(f, arg)
			if err != nil {
				fail(cmd, err)
			}

			elems[i] = x
		}

		fmt.Println(op(f, elems[0], elems[1], elems[2:]...))
	}
}

var towerAddCmd = &cobra.Command{
	Use:   "add x y [z ...]",
	Short: "Add extension field elements.",
	Run:   runTowerFold(extensions.Field.Add),
}

var towerSubCmd = &cobra.Command{
	Use:   "sub x y [z ...]",
	Short: "Subtract extension field elements from the first operand.",
	Run:   runTowerFold(extensions.Field.Sub),
}

var towerMulCmd = &cobra.Command{
	Use:   "mul x y [z ...]",
	Short: "Multiply extension field elements.",
	Run:   runTowerFold(extensions.Field.Mul),
}

var towerDivCmd = &cobra.Command{
	Use:   "div x y",
	Short: "Divide one extension field element by another.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fail(cmd, fmt.Errorf("expected exactly two elements"))
		}

		f := towerFromFlags(cmd)

		x, err := parseTuple(f, args[0])
		if err != nil {
			fail(cmd, err)
		}

		y, err := parseTuple(f, args[1])
		if err != nil {
			fail(cmd, err)
		}

		fmt.Println(f.Div(x, y))
	},
}

var towerInvCmd = &cobra.Command{
	Use:   "inv x",
	Short: "Invert an extension field element.",
	Long: `Invert an extension field element through the quartic norm. Zero has no
inverse; by convention the result is zero rather than an error.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fail(cmd, fmt.Errorf("expected exactly one element"))
		}

		f := towerFromFlags(cmd)

		x, err := parseTuple(f, args[0])
		if err != nil {
			fail(cmd, err)
		}

		fmt.Println(f.Inverse(x))
	},
}

var towerPowCmd = &cobra.Command{
	Use:   "pow x e",
	Short: "Raise an extension field element to a non-negative power.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fail(cmd, fmt.Errorf("expected an element and an exponent"))
		}

		f := towerFromFlags(cmd)

		x, err := parseTuple(f, args[0])
		if err != nil {
			fail(cmd, err)
		}

		e, err := parseExponent(args[1])
		if err != nil {
			fail(cmd, err)
		}

		fmt.Println(f.Exp(x, e))
	},
}

var towerBytesCmd = &cobra.Command{
	Use:   "bytes x",
	Short: "Print the sixteen-byte little-endian encoding of an extension field element.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fail(cmd, fmt.Errorf("expected exactly one element"))
		}

		f := towerFromFlags(cmd)

		x, err := parseTuple(f, args[0])
		if err != nil {
			fail(cmd, err)
		}

		buf := f.Bytes(x)
		fmt.Println(hex.EncodeToString(buf[:]))
	},
}

func init() {
	towerCmd.PersistentFlags().Uint64P("constant", "c", 2, "tower constant of the quartic extension")

	towerCmd.AddCommand(towerAddCmd)
	towerCmd.AddCommand(towerSubCmd)
	towerCmd.AddCommand(towerMulCmd)
	towerCmd.AddCommand(towerDivCmd)
	towerCmd.AddCommand(towerInvCmd)
	towerCmd.AddCommand(towerPowCmd)
	towerCmd.AddCommand(towerBytesCmd)

	rootCmd.AddCommand(towerCmd)
}
