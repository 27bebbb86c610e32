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

func TestHom(t *testing.T) {
	var tests = []struct {
		name     string
		domain   *zmodule.ZModule
		codomain *zmodule.ZModule
		rank     int
		torsion  []int64
	}{
		{name: "from zero", domain: zmodule.Zero(), codomain: mustModule(t, 3, 2, 4, 6)},
		{name: "to zero", domain: mustModule(t, 3, 2, 4, 6), codomain: zmodule.Zero()},
		{name: "free to free", domain: zmodule.Free(3), codomain: zmodule.Free(7), rank: 21},
		{name: "free to torsion", domain: zmodule.Free(3), codomain: mustModule(t, 0, 2), torsion: []int64{2, 2, 2}},
		{name: "torsion to free", domain: mustModule(t, 0, 3), codomain: zmodule.Free(2)},
		{name: "torsion to torsion", domain: mustModule(t, 0, 10), codomain: mustModule(t, 0, 15), torsion: []int64{5}},
		{name: "coprime torsion", domain: mustModule(t, 0, 4), codomain: mustModule(t, 0, 9)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := zmodule.NewHom(test.domain, test.codomain)
			assertModule(t, h.Module(), test.rank, test.torsion...)
			assert.Equal(t, test.domain, h.Domain())
			assert.Equal(t, test.codomain, h.Codomain())
		})
	}
}

func TestHom_Conversions(t *testing.T) {
	domain := mustModule(t, 1, 4)
	codomain := mustModule(t, 1, 6)
	h := zmodule.NewHom(domain, codomain)
	assertModule(t, h.Module(), 1, 6, 2)

	f := mustHom(t, [][]int64{{5, 0}, {4, 3}}, domain, codomain)
	e, err := h.ElementFromHomomorphism(f)
	require.NoError(t, err)
	assert.Equal(t, "(5, 4 + 6ℤ, 1 + 2ℤ)", e.String())

	back, err := h.HomomorphismFromElement(e)
	require.NoError(t, err)
	assert.True(t, back.Equal(f), "got %v", back)
}

func TestHom_RoundTrip(t *testing.T) {
	domain := mustModule(t, 2, 4, 6)
	codomain := mustModule(t, 1, 8, 3)
	h := zmodule.NewHom(domain, codomain)

	for _, e := range h.Module().CanonicalGenerators() {
		f, err := h.HomomorphismFromElement(e)
		require.NoError(t, err)
		back, err := h.ElementFromHomomorphism(f)
		require.NoError(t, err)
		assert.True(t, back.Equal(e), "%v became %v", e, back)
	}

	x := mustElement(t, h.Module(), append([]int64{3, -1, 5, 2}, make([]int64, h.Module().Dimensions()-4)...)...)
	f, err := h.HomomorphismFromElement(x)
	require.NoError(t, err)
	back, err := h.ElementFromHomomorphism(f)
	require.NoError(t, err)
	assert.True(t, back.Equal(x))
}

func TestHom_Mismatch(t *testing.T) {
	h := zmodule.NewHom(zmodule.Free(1), zmodule.Free(2))

	_, err := h.ElementFromHomomorphism(zmodule.IdentityHomomorphism(zmodule.Free(2)))
	assert.ErrorIs(t, err, zmodule.ErrModuleMismatch)

	_, err = h.HomomorphismFromElement(zmodule.Free(3).ZeroElement())
	assert.ErrorIs(t, err, zmodule.ErrModuleMismatch)
}
