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
package field

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enricobottazzi/halo2-intro/pkg/util/field/bls12_377"
)

func init() {
	// make sure the interface is adhered to.
	_ = Element[bls12_377.Element](bls12_377.Element{})
}

func TestZeroOne(t *testing.T) {
	require.True(t, Zero[bls12_377.Element]().IsZero())
	require.True(t, One[bls12_377.Element]().IsOne())
}

func TestInverseOrZero(t *testing.T) {
	var (
		x   = Uint64[bls12_377.Element](7)
		inv = x.Inverse()
	)
	// x * x⁻¹ = 1
	require.True(t, x.Mul(inv).IsOne())
	// 0⁻¹ = 0 by convention
	require.True(t, Zero[bls12_377.Element]().Inverse().IsZero())
}

func TestTwoPowN(t *testing.T) {
	require.Equal(t, Uint64[bls12_377.Element](1), TwoPowN[bls12_377.Element](0))
	require.Equal(t, Uint64[bls12_377.Element](256), TwoPowN[bls12_377.Element](8))
}

func TestFieldArithmetic(t *testing.T) {
	var (
		ten    = Uint64[bls12_377.Element](10)
		twelve = Uint64[bls12_377.Element](12)
	)
	// 10 - 12 = -2, hence (10 - 12) + 12 = 10
	require.Equal(t, ten, ten.Sub(twelve).Add(twelve))
	require.Equal(t, Uint64[bls12_377.Element](120), ten.Mul(twelve))
}
