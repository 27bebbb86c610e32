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

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, q int64
	}{
		{3, 2, 1},
		{-3, 2, -2},
		{3, -2, -2},
		{-3, -2, 1},
		{4, 2, 2},
		{-4, 2, -2},
		{0, 5, 0},
		{-8, 5, -2},
	}

	for _, c := range cases {
		assert.Equal(t, 0, big.NewInt(c.q).Cmp(FloorDiv(big.NewInt(c.a), big.NewInt(c.b))),
			"floor(%d / %d) should be %d", c.a, c.b, c.q)
	}
}

func TestGCD(t *testing.T) {
	assert.Equal(t, 0, big.NewInt(2).Cmp(GCD(big.NewInt(6), big.NewInt(8))))
	assert.Equal(t, 0, big.NewInt(5).Cmp(GCD(big.NewInt(-10), big.NewInt(15))))
	assert.Equal(t, 0, big.NewInt(1).Cmp(GCD(big.NewInt(6), big.NewInt(48), big.NewInt(17))))
	assert.Equal(t, 0, big.NewInt(7).Cmp(GCD(big.NewInt(7))))
	assert.Equal(t, 0, GCD().Sign())
}
