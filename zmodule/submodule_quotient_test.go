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
	"math/big"
	"testing"

	"github.com/fentec-project/homology/zmodule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmoduleQuotient(t *testing.T) {
	z3 := zmodule.Free(3)
	relations := []*zmodule.Element{
		mustElement(t, z3, 3, 0, 2),
		mustElement(t, z3, 2, 2, 2),
		mustElement(t, z3, 3, 0, 2),
	}

	q, err := zmodule.NewSubmoduleQuotient(z3, z3.CanonicalGenerators(), relations)
	require.NoError(t, err)
	assertModule(t, q.Module(), 1, 2)

	generators := q.QuotientGenerators()
	require.Len(t, generators, 2)
	assertCoordinates(t, generators[0], 0, 1, 0)
	assertCoordinates(t, generators[1], 0, 3, 1)

	for _, r := range relations {
		p, err := q.Project(r)
		require.NoError(t, err)
		assert.True(t, p.IsZero(), "%v should vanish in the quotient", r)
	}
	for i, g := range generators {
		p, err := q.Project(g)
		require.NoError(t, err)
		assert.True(t, p.Equal(q.Module().CanonicalGenerators()[i]), "generator %d projects to %v", i, p)
	}
}

func TestSubmodule(t *testing.T) {
	z3 := zmodule.Free(3)

	var tests = []struct {
		name       string
		generators []*zmodule.Element
		rank       int
	}{
		{name: "trivial"},
		{name: "zero", generators: []*zmodule.Element{z3.ZeroElement(), z3.ZeroElement(), z3.ZeroElement()}},
		{
			name:       "independent",
			generators: []*zmodule.Element{mustElement(t, z3, -1, 0, 3), mustElement(t, z3, 2, 2, 2)},
			rank:       2,
		},
		{
			name:       "dependent",
			generators: []*zmodule.Element{mustElement(t, z3, -1, 0, 3), mustElement(t, z3, 2, 0, -6)},
			rank:       1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := zmodule.Submodule(z3, test.generators)
			require.NoError(t, err)
			assertModule(t, s.Module(), test.rank)
			assert.True(t, s.Ambient().Identical(z3))
		})
	}
}

func TestSubmodule_Torsion(t *testing.T) {
	m := mustModule(t, 1, 4)

	s, err := zmodule.Submodule(m, []*zmodule.Element{mustElement(t, m, 0, 2)})
	require.NoError(t, err)
	assertModule(t, s.Module(), 0, 2)

	q, err := zmodule.NewSubmoduleQuotient(m,
		[]*zmodule.Element{mustElement(t, m, 3, 2)},
		[]*zmodule.Element{mustElement(t, m, 6, 0)})
	require.NoError(t, err)
	assertModule(t, q.Module(), 0, 2)

	p, err := q.Project(mustElement(t, m, 9, 2))
	require.NoError(t, err)
	assertCoordinates(t, p, 1)
}

func TestQuotient(t *testing.T) {
	z3 := zmodule.Free(3)

	var tests = []struct {
		name      string
		relations []*zmodule.Element
		rank      int
		torsion   []int64
	}{
		{name: "trivial", rank: 3},
		{name: "by zero", relations: []*zmodule.Element{z3.ZeroElement()}, rank: 3},
		{name: "by self", relations: z3.CanonicalGenerators()},
		{name: "free", relations: []*zmodule.Element{mustElement(t, z3, 1, 1, 1)}, rank: 2},
		{name: "with torsion", relations: []*zmodule.Element{mustElement(t, z3, 2, 4, 6)}, rank: 2, torsion: []int64{2}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q, err := zmodule.Quotient(z3, test.relations)
			require.NoError(t, err)
			assertModule(t, q.Module(), test.rank, test.torsion...)
		})
	}
}

func TestQuotient_Project(t *testing.T) {
	z3 := zmodule.Free(3)
	q, err := zmodule.Quotient(z3, []*zmodule.Element{mustElement(t, z3, 2, 4, 6)})
	require.NoError(t, err)

	half, err := q.Project(mustElement(t, z3, 1, 2, 3))
	require.NoError(t, err)
	assert.False(t, half.IsZero())
	assert.True(t, half.MulScalar(big.NewInt(2)).IsZero())

	a, err := q.Project(mustElement(t, z3, 1, 0, 0))
	require.NoError(t, err)
	b, err := q.Project(mustElement(t, z3, 3, 4, 6))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestSubmoduleQuotient_Errors(t *testing.T) {
	z3 := zmodule.Free(3)

	_, err := zmodule.NewSubmoduleQuotient(z3,
		[]*zmodule.Element{mustElement(t, z3, 1, 0, 0)},
		[]*zmodule.Element{mustElement(t, z3, 0, 1, 0)})
	assert.ErrorIs(t, err, zmodule.ErrNotSpanned)

	_, err = zmodule.Submodule(z3, []*zmodule.Element{mustElement(t, zmodule.Free(2), 1, 0)})
	assert.ErrorIs(t, err, zmodule.ErrModuleMismatch)

	_, err = zmodule.NewSubmoduleQuotient(z3, nil, []*zmodule.Element{mustElement(t, z3, 1, 0, 0)})
	assert.ErrorIs(t, err, zmodule.ErrNotSpanned)

	s, err := zmodule.Submodule(z3, []*zmodule.Element{mustElement(t, z3, 2, 0, 0)})
	require.NoError(t, err)
	_, err = s.Project(mustElement(t, z3, 1, 0, 0))
	assert.ErrorIs(t, err, zmodule.ErrNotSpanned)
}
