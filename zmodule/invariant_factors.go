/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package zmodule

import (
	"math/big"

	"github.com/fentec-project/homology/data"
	"github.com/fentec-project/homology/internal/reduction"
)

// InvariantFactors returns the invariant factors of
// ℤ/n₁ℤ ⊕ … ⊕ ℤ/nₖℤ: the numbers d₁ | d₂ | … | dⱼ, all at least 2,
// with ℤ/d₁ℤ ⊕ … ⊕ ℤ/dⱼℤ isomorphic to it. Numbers must be positive.
//
// For example the invariant factors of 4, 6, 9, 10 are 2, 6, 180.
func InvariantFactors(numbers []*big.Int) []*big.Int {
	if len(numbers) == 0 {
		return nil
	}

	diagonal := data.NewZeroMatrix(len(numbers), len(numbers))
	for i, n := range numbers {
		diagonal[i][i].Set(n)
	}
	snf, err := reduction.NewSmithNormalForm(diagonal)
	if err != nil {
		panic(err)
	}

	var factors []*big.Int
	for _, d := range snf.Diagonal() {
		if d.Cmp(big.NewInt(1)) > 0 {
			factors = append(factors, d)
		}
	}

	return factors
}
