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
)

// DirectSum is the direct sum of a list of modules together with the
// embeddings of the summands into it and the projections onto them.
//
// The free parts of all summands come first, in order, followed by
// all their torsion parts, in order.
type DirectSum struct {
	module      *ZModule
	summands    []*ZModule
	embeddings  []*Homomorphism
	projections []*Homomorphism
}

// NewDirectSum returns the direct sum of modules. The direct sum of no
// modules is the zero module.
func NewDirectSum(modules ...*ZModule) *DirectSum {
	rank := 0
	var torsion []*big.Int
	for _, m := range modules {
		rank += m.rank
		torsion = append(torsion, m.TorsionNumbers()...)
	}
	sum := &ZModule{rank: rank, torsion: torsion}

	d := &DirectSum{
		module:      sum,
		summands:    append([]*ZModule(nil), modules...),
		embeddings:  make([]*Homomorphism, len(modules)),
		projections: make([]*Homomorphism, len(modules)),
	}

	freeOffset, torsionOffset := 0, 0
	for i, m := range modules {
		e := data.NewZeroMatrix(sum.Dimensions(), m.Dimensions())
		for j := 0; j < m.rank; j++ {
			e[freeOffset+j][j].SetInt64(1)
		}
		for j := range m.torsion {
			e[sum.rank+torsionOffset+j][m.rank+j].SetInt64(1)
		}
		freeOffset += m.rank
		torsionOffset += len(m.torsion)

		d.embeddings[i] = &Homomorphism{matrix: e, domain: m, codomain: sum}
		d.projections[i] = &Homomorphism{matrix: e.Transpose(), domain: sum, codomain: m}
	}

	return d
}

// Module returns the direct sum module.
func (d *DirectSum) Module() *ZModule {
	return d.module
}

// Summands returns the summands in order.
func (d *DirectSum) Summands() []*ZModule {
	return append([]*ZModule(nil), d.summands...)
}

// Embedding returns the embedding of the i-th summand.
func (d *DirectSum) Embedding(i int) *Homomorphism {
	return d.embeddings[i]
}

// Embeddings returns the embeddings of all summands.
func (d *DirectSum) Embeddings() []*Homomorphism {
	return append([]*Homomorphism(nil), d.embeddings...)
}

// Projection returns the projection onto the i-th summand.
func (d *DirectSum) Projection(i int) *Homomorphism {
	return d.projections[i]
}

// Projections returns the projections onto all summands.
func (d *DirectSum) Projections() []*Homomorphism {
	return append([]*Homomorphism(nil), d.projections...)
}

// embeddingTarget returns the coordinate of the direct sum the first
// generator of a cyclic summand is embedded at, or -1 if the summand
// is zero.
func embeddingTarget(embedding *Homomorphism) int {
	if embedding.domain.IsZero() {
		return -1
	}
	for i, row := range embedding.matrix {
		if row[0].Sign() != 0 {
			return i
		}
	}

	return -1
}
