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

func TestDirectSum_Empty(t *testing.T) {
	sum := zmodule.NewDirectSum()

	assert.True(t, sum.Module().IsZero())
	assert.Empty(t, sum.Embeddings())
}

func TestDirectSum_WithZero(t *testing.T) {
	m := mustModule(t, 3, 2, 4, 8)
	sum := zmodule.NewDirectSum(zmodule.Zero(), m, zmodule.Zero())

	assertModule(t, sum.Module(), 3, 2, 4, 8)
	zeroColumn := [][]int64{{0}, {0}, {0}, {0}, {0}, {0}}
	assert.True(t, sum.Embedding(0).Matrix().Equal(mustMatrix(t, zeroColumn)))
	assert.True(t, sum.Embedding(1).Matrix().Equal(zmodule.IdentityHomomorphism(m).Matrix()))
	assert.True(t, sum.Embedding(2).Matrix().Equal(mustMatrix(t, zeroColumn)))
}

func TestDirectSum_ZeroInside(t *testing.T) {
	sum := zmodule.NewDirectSum(mustModule(t, 1, 2), zmodule.Zero(), zmodule.Free(2))

	assertModule(t, sum.Module(), 3, 2)
	assert.True(t, sum.Embedding(0).Matrix().Equal(mustMatrix(t, [][]int64{{1, 0}, {0, 0}, {0, 0}, {0, 1}})))
	assert.True(t, sum.Embedding(1).Matrix().Equal(mustMatrix(t, [][]int64{{0}, {0}, {0}, {0}})))
	assert.True(t, sum.Embedding(2).Matrix().Equal(mustMatrix(t, [][]int64{{0, 0}, {1, 0}, {0, 1}, {0, 0}})))
}

func TestDirectSum_Three(t *testing.T) {
	a := mustModule(t, 0, 2)
	b := zmodule.Free(2)
	c := mustModule(t, 1, 2, 3)
	sum := zmodule.NewDirectSum(a, b, c)

	assertModule(t, sum.Module(), 3, 2, 2, 3)
	assert.True(t, sum.Embedding(0).Matrix().Equal(mustMatrix(t, [][]int64{{0}, {0}, {0}, {1}, {0}, {0}})))
	assert.True(t, sum.Embedding(1).Matrix().Equal(mustMatrix(t, [][]int64{
		{1, 0}, {0, 1}, {0, 0}, {0, 0}, {0, 0}, {0, 0},
	})))
	assert.True(t, sum.Embedding(2).Matrix().Equal(mustMatrix(t, [][]int64{
		{0, 0, 0}, {0, 0, 0}, {1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {0, 0, 1},
	})))
	assert.Equal(t, []*zmodule.ZModule{a, b, c}, sum.Summands())
}

func TestDirectSum_Projections(t *testing.T) {
	summands := []*zmodule.ZModule{mustModule(t, 1, 4), zmodule.Free(2), mustModule(t, 0, 6)}
	sum := zmodule.NewDirectSum(summands...)

	for i, m := range summands {
		for j := range summands {
			composite, err := sum.Projection(j).Compose(sum.Embedding(i))
			require.NoError(t, err)
			if i == j {
				assert.True(t, composite.Equal(zmodule.IdentityHomomorphism(m)), "projection %d after embedding %d", j, i)
			} else {
				assert.True(t, composite.IsZero(), "projection %d after embedding %d", j, i)
			}
		}
	}
	assert.Len(t, sum.Projections(), 3)
}

func TestDirectSum_EmbeddingsDisjoint(t *testing.T) {
	sum := zmodule.NewDirectSum(mustModule(t, 1, 2), zmodule.Free(2), mustModule(t, 1, 3))
	embeddings := sum.Embeddings()

	used := make(map[int]int)
	for i, e := range embeddings {
		for row, entries := range e.Matrix() {
			if !entries.IsZero() {
				owner, seen := used[row]
				assert.False(t, seen, "coordinate %d used by summands %d and %d", row, owner, i)
				used[row] = i
			}
		}
	}
	assert.Len(t, used, sum.Module().Dimensions())
}
