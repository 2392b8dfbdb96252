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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/enricobottazzi/halo2-intro/pkg/circuits"
	"github.com/enricobottazzi/halo2-intro/pkg/plonk"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field"
	"github.com/enricobottazzi/halo2-intro/pkg/util/field/bls12_377"
)

var functionCmd = &cobra.Command{
	Use:   "function a b c",
	Short: "Evaluate f(a, b, c) = if a == b {c} else {a - b} in-circuit.",
	Long: `Synthesise the function circuit for the given inputs, check its
satisfiability with the mock prover, and print the witnessed output.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		initLogging(cmd)
		//
		circuit := &circuits.FunctionCircuit[bls12_377.Element]{
			A: field.Uint64[bls12_377.Element](parseUint(args[0])),
			B: field.Uint64[bls12_377.Element](parseUint(args[1])),
			C: field.Uint64[bls12_377.Element](parseUint(args[2])),
		}
		//
		runCircuit(getUint(cmd, "rows"), circuit)
		//
		fmt.Printf("f(%s, %s, %s) = %s\n", circuit.A, circuit.B, circuit.C, circuit.Output.Value)
	},
}

func init() {
	rootCmd.AddCommand(functionCmd)
	functionCmd.Flags().Uint("rows", 4, "log2 of the number of rows")
}

// runCircuit synthesises and checks a circuit, printing every violation and
// exiting nonzero unless the witness satisfies every constraint.
func runCircuit[C any](k uint, circuit plonk.Circuit[bls12_377.Element, C]) {
	prover, err := plonk.Run(k, circuit)
	//
	if err != nil {
		log.Fatal(err)
	}
	//
	if failures := prover.Verify(); len(failures) > 0 {
		for _, failure := range failures {
			log.Error(failure.Message())
		}
		//
		os.Exit(1)
	}
	//
	log.Debug("witness satisfies every constraint")
}
