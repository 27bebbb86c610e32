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

package internal

import "math/big"

// FloorDiv returns the quotient of a and b rounded towards negative
// infinity, so that a - b*FloorDiv(a, b) has the sign of b.
// It panics if b is zero.
func FloorDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		q.Sub(q, big.NewInt(1))
	}

	return q
}

// GCD returns the non-negative greatest common divisor of numbers.
// The GCD of no numbers is 0.
func GCD(numbers ...*big.Int) *big.Int {
	ret := new(big.Int)
	for _, n := range numbers {
		ret.GCD(nil, nil, ret, new(big.Int).Abs(n))
	}

	return ret
}
