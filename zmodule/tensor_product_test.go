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

package zmodule_test

import (
	"testing"

	"github.com/fentec-project/homology/zmodule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorProduct(t *testing.T) {
	var tests = []struct {
		name        string
		multipliers []*zmodule.ZModule
		rank        int
		torsion     []int64
	}{
		{
			name:        "with zero",
			multipliers: []*zmodule.ZModule{zmodule.Zero(), zmodule.Free(1), mustModule(t, 0, 10)},
		},
		{
			name:        "free",
			multipliers: []*zmodule.ZModule{zmodule.Free(1), zmodule.Free(2), zmodule.Free(3), zmodule.Free(4)},
			rank:        24,
		},
		{
			name:        "torsion only",
			multipliers: []*zmodule.ZModule{mustModule(t, 0, 6, 48), mustModule(t, 0, 12, 24), mustModule(t, 0, 18)},
			torsion:     []int64{6, 6, 6, 6},
		},
		{
			name: "torsion only trivial",
			multipliers: []*zmodule.ZModule{
				mustModule(t, 0, 6, 48), mustModule(t, 0, 12, 12, 24), mustModule(t, 0, 18), mustModule(t, 0, 17),
			},
		},
		{
			name: "coprime torsion",
			multipliers: []*zmodule.ZModule{
				mustModule(t, 1, 6, 48), mustModule(t, 1, 12, 12, 24), mustModule(t, 1, 18), mustModule(t, 0, 17),
			},
			torsion: []int64{17},
		},
		{
			name:        "with torsion",
			multipliers: []*zmodule.ZModule{mustModule(t, 1, 2, 16), mustModule(t, 1, 4, 8), mustModule(t, 1, 32)},
			rank:        1,
			torsion:     []int64{32, 4, 4, 8, 8, 2, 2, 2, 2, 2, 2, 16, 16, 4, 4, 8, 8},
		},
		{
			name:        "mixed",
			multipliers: []*zmodule.ZModule{zmodule.Free(1), mustModule(t, 1, 26), mustModule(t, 3, 13, 52)},
			rank:        3,
			torsion:     []int64{13, 52, 26, 26, 26, 13, 26},
		},
		{
			name:        "two torsion cyclics",
			multipliers: []*zmodule.ZModule{mustModule(t, 0, 6), mustModule(t, 0, 8)},
			torsion:     []int64{2},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := zmodule.NewTensorProduct(test.multipliers...)
			require.NoError(t, err)
			assertModule(t, p.Module(), test.rank, test.torsion...)
			assert.Len(t, p.Multipliers(), len(test.multipliers))
		})
	}
}

func TestTensorProduct_TooFew(t *testing.T) {
	_, err := zmodule.NewTensorProduct(zmodule.Free(1))
	assert.ErrorIs(t, err, zmodule.ErrTooFewMultipliers)
}

func TestTensorProduct_PureTensor(t *testing.T) {
	a := mustModule(t, 1, 6)
	b := mustModule(t, 1, 8)
	p, err := zmodule.NewTensorProduct(a, b)
	require.NoError(t, err)
	assertModule(t, p.Module(), 1, 8, 6, 2)

	zero, err := p.PureTensor(mustElement(t, a, 0, 0), mustElement(t, b, 3, 5))
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	zero, err = p.PureTensor(mustElement(t, a, 3, 5), mustElement(t, b, 0, 0))
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	x, err := p.PureTensor(mustElement(t, a, -10, 9), mustElement(t, b, 20, 9))
	require.NoError(t, err)
	y, err := p.PureTensor(mustElement(t, a, 1, 1), mustElement(t, b, 1, 1))
	require.NoError(t, err)
	sum, err := x.Add(y)
	require.NoError(t, err)

	assert.Equal(t, "(-200, 6 + 8ℤ, 0 + 6ℤ, 1 + 2ℤ)", x.String())
	assert.Equal(t, "(1, 1 + 8ℤ, 1 + 6ℤ, 1 + 2ℤ)", y.String())
	assert.Equal(t, "(-199, 7 + 8ℤ, 1 + 6ℤ, 0 + 2ℤ)", sum.String())
}

func TestTensorProduct_PureTensorErrors(t *testing.T) {
	p, err := zmodule.NewTensorProduct(zmodule.Free(1), zmodule.Free(2))
	require.NoError(t, err)

	_, err = p.PureTensor(mustElement(t, zmodule.Free(1), 1))
	assert.ErrorIs(t, err, zmodule.ErrDimensionMismatch)

	_, err = p.PureTensor(mustElement(t, zmodule.Free(2), 1, 1), mustElement(t, zmodule.Free(2), 1, 1))
	assert.ErrorIs(t, err, zmodule.ErrModuleMismatch)
}

func TestTensorHomomorphism(t *testing.T) {
	z2 := zmodule.Free(2)
	f := mustHom(t, [][]int64{{1, 2}, {3, 4}}, z2, z2)
	g := mustHom(t, [][]int64{{0, 1}, {1, 0}}, z2, z2)

	h, err := zmodule.TensorHomomorphism(f, g)
	require.NoError(t, err)
	assert.True(t, h.Matrix().Equal(mustMatrix(t, [][]int64{
		{0, 1, 0, 2},
		{1, 0, 2, 0},
		{0, 3, 0, 4},
		{3, 0, 4, 0},
	})), "got\n%v", h.Matrix())

	p, err := zmodule.NewTensorProduct(z2, z2)
	require.NoError(t, err)
	x := mustElement(t, z2, 2, -1)
	y := mustElement(t, z2, 5, 3)
	fx, err := f.Apply(x)
	require.NoError(t, err)
	gy, err := g.Apply(y)
	require.NoError(t, err)

	xy, err := p.PureTensor(x, y)
	require.NoError(t, err)
	left, err := h.Apply(xy)
	require.NoError(t, err)
	right, err := p.PureTensor(fx, gy)
	require.NoError(t, err)
	assert.True(t, left.Equal(right))
}

func TestTensorHomomorphism_Torsion(t *testing.T) {
	m := mustModule(t, 1, 4)
	z6 := mustModule(t, 0, 6)
	f := mustHom(t, [][]int64{{2, 0}, {1, 2}}, m, m)
	id := zmodule.IdentityHomomorphism(z6)

	h, err := zmodule.TensorHomomorphism(f, id)
	require.NoError(t, err)

	p, err := zmodule.NewTensorProduct(m, z6)
	require.NoError(t, err)
	assertModule(t, h.Domain(), 0, 6, 2)
	assert.True(t, h.Domain().Identical(p.Module()))
	assert.True(t, h.Codomain().Identical(p.Module()))

	x := mustElement(t, m, 1, 3)
	y := mustElement(t, z6, 5)
	xy, err := p.PureTensor(x, y)
	require.NoError(t, err)
	fx, err := f.Apply(x)
	require.NoError(t, err)

	left, err := h.Apply(xy)
	require.NoError(t, err)
	right, err := p.PureTensor(fx, y)
	require.NoError(t, err)
	assert.True(t, left.Equal(right), "%v != %v", left, right)
}
