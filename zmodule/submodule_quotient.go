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
	"github.com/pkg/errors"
)

// SubmoduleQuotient is the quotient ⟨generators⟩ / ⟨relations⟩ of the
// submodule of an ambient module spanned by generators by the
// submodule spanned by relations, which must lie inside it.
//
// The generators are first reduced to the nonzero rows of the row
// echelon form of their coordinates. With π: ℤ^k → ambient sending the
// canonical generators to them, the quotient is ℤ^k modulo the kernel
// of π and the preimages of the relations. Its Smith normal form gives
// the rank and the torsion of the quotient.
type SubmoduleQuotient struct {
	module             *ZModule
	ambient            *ZModule
	quotientGenerators []*Element

	// nil if there are no nonzero generators
	inclusion *Homomorphism
	rowChange data.Matrix
	rank      int

	// diagonal indices of the torsion summands
	torsionIndices []int
}

// NewSubmoduleQuotient computes ⟨generators⟩ / ⟨relations⟩ inside
// ambient.
// It returns an error if an element does not belong to ambient or if
// a relation is not in the span of the generators.
func NewSubmoduleQuotient(ambient *ZModule, generators, relations []*Element) (*SubmoduleQuotient, error) {
	for _, e := range append(append([]*Element(nil), generators...), relations...) {
		if !e.module.Identical(ambient) {
			return nil, errors.Wrapf(ErrModuleMismatch, "element of %v in a submodule of %v", e.module, ambient)
		}
	}

	q := &SubmoduleQuotient{
		module:  Zero(),
		ambient: ambient,
	}

	reduced, err := reduceGenerators(ambient, generators)
	if err != nil {
		return nil, err
	}
	if len(reduced) == 0 {
		for _, r := range relations {
			if !r.IsZero() {
				return nil, errors.Wrapf(ErrNotSpanned, "relation %v in the zero submodule", r)
			}
		}
		return q, nil
	}

	k := len(reduced)
	free := Free(k)
	inclusion, err := FromCanonicalGeneratorImages(reduced, free)
	if err != nil {
		return nil, err
	}

	columns := []*Element{free.ZeroElement()}
	columns = append(columns, inclusion.KernelGenerators()...)
	for _, r := range relations {
		preimage, ok := inclusion.Preimage(r)
		if !ok {
			return nil, errors.Wrapf(ErrNotSpanned, "relation %v", r)
		}
		columns = append(columns, preimage)
	}
	relationMap, err := FromCanonicalGeneratorImages(columns, nil)
	if err != nil {
		return nil, err
	}

	snf, err := reduction.NewSmithNormalForm(relationMap.matrix)
	if err != nil {
		return nil, err
	}
	rank := snf.Rank()

	var torsion []*big.Int
	var torsionIndices []int
	for i := 0; i < rank; i++ {
		if d := snf.DiagonalEntry(i); d.Cmp(big.NewInt(1)) > 0 {
			torsion = append(torsion, d)
			torsionIndices = append(torsionIndices, i)
		}
	}
	module, err := New(k-rank, torsion...)
	if err != nil {
		return nil, err
	}

	representatives, err := inclusion.matrix.Mul(snf.InverseRowChange())
	if err != nil {
		return nil, err
	}
	representatives = representatives.Transpose()
	for j := rank; j < k; j++ {
		q.quotientGenerators = append(q.quotientGenerators, ambient.element(representatives[j]))
	}
	for _, i := range torsionIndices {
		q.quotientGenerators = append(q.quotientGenerators, ambient.element(representatives[i]))
	}

	q.module = module
	q.inclusion = inclusion
	q.rowChange = snf.RowChange()
	q.rank = rank
	q.torsionIndices = torsionIndices

	return q, nil
}

// Submodule returns the submodule of ambient spanned by generators,
// as a module of its own.
func Submodule(ambient *ZModule, generators []*Element) (*SubmoduleQuotient, error) {
	return NewSubmoduleQuotient(ambient, generators, nil)
}

// Quotient returns ambient / ⟨relations⟩.
func Quotient(ambient *ZModule, relations []*Element) (*SubmoduleQuotient, error) {
	return NewSubmoduleQuotient(ambient, ambient.CanonicalGenerators(), relations)
}

// Module returns the quotient module.
func (q *SubmoduleQuotient) Module() *ZModule {
	return q.module
}

// Ambient returns the module the generators belong to.
func (q *SubmoduleQuotient) Ambient() *ZModule {
	return q.ambient
}

// QuotientGenerators returns, for each canonical generator of the
// quotient module, a representative in the ambient module, free
// generators first.
func (q *SubmoduleQuotient) QuotientGenerators() []*Element {
	return append([]*Element(nil), q.quotientGenerators...)
}

// Project returns the class of e in the quotient module.
// It returns an error if e is not in the span of the generators.
func (q *SubmoduleQuotient) Project(e *Element) (*Element, error) {
	if !e.module.Identical(q.ambient) {
		return nil, errors.Wrapf(ErrModuleMismatch, "element of %v projected from %v", e.module, q.ambient)
	}
	if q.inclusion == nil {
		if !e.IsZero() {
			return nil, errors.Wrapf(ErrNotSpanned, "%v in the zero submodule", e)
		}
		return q.module.ZeroElement(), nil
	}

	x, ok := q.inclusion.Preimage(e)
	if !ok {
		return nil, errors.Wrapf(ErrNotSpanned, "%v", e)
	}
	y, err := q.rowChange.MulVec(x.coordinates)
	if err != nil {
		return nil, err
	}

	coordinates := append(data.Vector(nil), y[q.rank:]...)
	for _, i := range q.torsionIndices {
		coordinates = append(coordinates, y[i])
	}

	return q.module.element(coordinates), nil
}

// reduceGenerators returns the nonzero rows of the row echelon form of
// the coordinates of generators.
func reduceGenerators(ambient *ZModule, generators []*Element) ([]*Element, error) {
	if len(generators) == 0 {
		return nil, nil
	}

	rows := make(data.Matrix, len(generators))
	for i, g := range generators {
		rows[i] = g.coordinates
	}
	echelon, err := reduction.NewRowEchelon(rows)
	if err != nil {
		return nil, err
	}

	var reduced []*Element
	for _, row := range echelon.Matrix() {
		if e := ambient.element(row); !e.IsZero() {
			reduced = append(reduced, e)
		}
	}

	return reduced, nil
}
