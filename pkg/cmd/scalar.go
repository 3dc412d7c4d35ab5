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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-mersenne/smallfield"
)

// runFold builds a Run function folding two or more base field elements with
// the given operation.
func runFold(op func(f smallfield.Field, x0, x1 smallfield.Element, xRest ...smallfield.Element) smallfield.Element) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fail(cmd, fmt.Errorf("expected at least two elements"))
		}

		f := fieldFromFlags(cmd)
		elems := make([]smallfield.Element, len(args))

		for i, arg := range args {
			x, err := parseElement(f, arg)
			if err != nil {
				fail(cmd, err)
			}

			elems[i] = x
		}

		fmt.Println(op(f, elems[0], elems[1], elems[2:]...))
	}
}

// runUnary builds a Run function applying the given operation to a single
// base field element.
func runUnary(op func(f smallfield.Field, x smallfield.Element) smallfield.Element) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fail(cmd, fmt.Errorf("expected exactly one element"))
		}

		f := fieldFromFlags(cmd)

		x, err := parseElement(f, args[0])
		if err != nil {
			fail(cmd, err)
		}

		fmt.Println(op(f, x))
	}
}

var addCmd = &cobra.Command{
	Use:   "add x y [z ...]",
	Short: "Add base field elements.",
	Run:   runFold(smallfield.Field.Add),
}

var subCmd = &cobra.Command{
	Use:   "sub x y [z ...]",
	Short: "Subtract base field elements from the first operand.",
	Run:   runFold(smallfield.Field.Sub),
}

var mulCmd = &cobra.Command{
	Use:   "mul x y [z ...]",
	Short: "Multiply base field elements.",
	Run:   runFold(smallfield.Field.Mul),
}

var divCmd = &cobra.Command{
	Use:   "div x y",
	Short: "Divide one base field element by another.",
	Long: `Divide one base field element by another. Division by zero yields zero by
convention rather than reporting an error.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fail(cmd, fmt.Errorf("expected exactly two elements"))
		}

		f := fieldFromFlags(cmd)

		x, err := parseElement(f, args[0])
		if err != nil {
			fail(cmd, err)
		}

		y, err := parseElement(f, args[1])
		if err != nil {
			fail(cmd, err)
		}

		fmt.Println(f.Div(x, y))
	},
}

var negCmd = &cobra.Command{
	Use:   "neg x",
	Short: "Negate a base field element.",
	Run:   runUnary(smallfield.Field.Neg),
}

var invCmd = &cobra.Command{
	Use:   "inv x",
	Short: "Invert a base field element.",
	Long: `Invert a base field element. Zero has no inverse; by convention the result
is zero rather than an error.`,
	Run: runUnary(smallfield.Field.Inverse),
}

var powCmd = &cobra.Command{
	Use:   "pow x e",
	Short: "Raise a base field element to a non-negative power.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fail(cmd, fmt.Errorf("expected an element and an exponent"))
		}

		f := fieldFromFlags(cmd)

		x, err := parseElement(f, args[0])
		if err != nil {
			fail(cmd, err)
		}

		e, err := parseExponent(args[1])
		if err != nil {
			fail(cmd, err)
		}

		fmt.Println(f.Pow(x, e))
	},
}

var sqrtCmd = &cobra.Command{
	Use:   "sqrt x",
	Short: "Compute a square root of a base field element.",
	Long: `Compute a square root of a base field element via the Euler criterion
shortcut x^((p+1)/4). The modulus must be congruent to 3 mod 4. For an input
that is not a quadratic residue the result is meaningless; this command warns
in that case.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fail(cmd, fmt.Errorf("expected exactly one element"))
		}

		f := fieldFromFlags(cmd)

		x, err := parseElement(f, args[0])
		if err != nil {
			fail(cmd, err)
		}

		s := f.Sqrt(x)
		if f.Mul(s, s) != x {
			log.Warnf("%s is not a quadratic residue mod %d; the result is not a root", x, f.Modulus())
		}

		fmt.Println(s)
	},
}

var bytesCmd = &cobra.Command{
	Use:   "bytes x",
	Short: "Print the four-byte little-endian encoding of a base field element.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fail(cmd, fmt.Errorf("expected exactly one element"))
		}

		f := fieldFromFlags(cmd)

		x, err := parseElement(f, args[0])
		if err != nil {
			fail(cmd, err)
		}

		buf := f.Bytes(x)
		fmt.Println(hex.EncodeToString(buf[:]))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(divCmd)
	rootCmd.AddCommand(negCmd)
	rootCmd.AddCommand(invCmd)
	rootCmd.AddCommand(powCmd)
	rootCmd.AddCommand(sqrtCmd)
	rootCmd.AddCommand(bytesCmd)
}
