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

package data

import (
	"math/big"
	"testing"

	"github.com/fentec-project/homology/sample"
	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	l := 3
	bound := new(big.Int).Exp(big.NewInt(2), big.NewInt(20), big.NewInt(0))
	sampler := sample.NewUniformRange(big.NewInt(0), bound)

	x, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	y, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	add := x.Add(y)
	mul, err := x.Dot(y)

	if err != nil {
		t.Fatalf("Error during vector multiplication: %v", err)
	}

	modulo := int64(104729)
	mod := x.Mod(big.NewInt(modulo))

	innerProd := big.NewInt(0)
	for i := 0; i < 3; i++ {
		assert.Equal(t, new(big.Int).Add(x[i], y[i]), add[i], "coordinates should sum correctly")
		innerProd = innerProd.Add(innerProd, new(big.Int).Mul(x[i], y[i]))
		assert.Equal(t, new(big.Int).Mod(x[i], big.NewInt(modulo)), mod[i], "coordinates should mod correctly")
	}

	assert.Equal(t, innerProd, mul, "inner product should calculate correctly")
}

func TestVector_Dot_Mismatch(t *testing.T) {
	_, err := NewVectorFromInts(1, 2).Dot(NewVectorFromInts(1))
	assert.Error(t, err)
}

func TestVector_Helpers(t *testing.T) {
	v := NewVectorFromInts(3, -1, 0)

	assert.Equal(t, NewVectorFromInts(-3, 1, 0), v.Neg())
	assert.Equal(t, NewVectorFromInts(0, 1, 0), NewUnitVector(3, 1))
	assert.True(t, NewZeroVector(4).IsZero())
	assert.False(t, v.IsZero())
	assert.True(t, v.Equal(v.Copy()))
	assert.False(t, v.Equal(NewVectorFromInts(3, -1)))
	assert.Equal(t, "(3, -1, 0)", v.String())
}
