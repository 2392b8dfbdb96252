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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enricobottazzi/halo2-intro/pkg/circuits"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field/bls12_377"
)

var rangeCheckCmd = &cobra.Command{
	Use:   "rangecheck value range",
	Short: "Check that a value lies within [0, range).",
	Long: `Synthesise a range-check circuit claiming the given value lies
within [0, range), and check its satisfiability with the mock prover.
Claimed ranges below the threshold use the polynomial gate; larger
ranges use the shared lookup table.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		initLogging(cmd)
		//
		circuit := &circuits.RangeCircuit[bls12_377.Element]{
			Claims: []circuits.RangeClaim[bls12_377.Element]{
				{Value: field.Uint64[bls12_377.Element](parseUint(args[0])),
					Range: uint(parseUint(args[1]))},
			},
			Threshold: getUint(cmd, "threshold"),
			TableRows: getUint(cmd, "table-rows"),
		}
		//
		runCircuit(getUint(cmd, "rows"), circuit)
		//
		fmt.Printf("%s is within [0, %s)\n", args[0], args[1])
	},
}

var tieredCheckCmd = &cobra.Command{
	Use:   "tiered value num_bits",
	Short: "Check that a value has the claimed bit-length.",
	Long: `Synthesise a tiered range-check circuit claiming the given value
fits in exactly num_bits bits, and check its satisfiability with the
mock prover.  The claim is looked up as a (num_bits, value) pair in a
bit-length-tagged table.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		initLogging(cmd)
		//
		tableBits := getUint(cmd, "table-bits")
		//
		circuit := &circuits.TieredRangeCircuit[bls12_377.Element]{
			Claims: []circuits.TieredClaim[bls12_377.Element]{
				{Value: field.Uint64[bls12_377.Element](parseUint(args[0])),
					NumBits: uint(parseUint(args[1])),
					Range:   uint(1) << tableBits},
			},
			Threshold: getUint(cmd, "threshold"),
			TableBits: tableBits,
		}
		//
		runCircuit(getUint(cmd, "rows"), circuit)
		//
		fmt.Printf("%s fits in %s bits\n", args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(rangeCheckCmd)
	rootCmd.AddCommand(tieredCheckCmd)
	//
	rangeCheckCmd.Flags().Uint("rows", 9, "log2 of the number of rows")
	rangeCheckCmd.Flags().Uint("threshold", 8, "claimed ranges below this use the polynomial gate")
	rangeCheckCmd.Flags().Uint("table-rows", 256, "size of the lookup table")
	//
	tieredCheckCmd.Flags().Uint("rows", 9, "log2 of the number of rows")
	tieredCheckCmd.Flags().Uint("threshold", 8, "claimed ranges below this use the polynomial gate")
	tieredCheckCmd.Flags().Uint("table-bits", 8, "maximum bit-length the table supports")
}
