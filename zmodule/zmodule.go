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

// Package zmodule implements finitely generated abelian groups
// (ℤ-modules), their elements and the homomorphisms between them,
// together with the standard constructions on them: direct sums,
// Hom, tensor products and quotients of submodules.
//
// A module is stored as a free rank and an ordered list of torsion
// numbers, i.e. as ℤ^rank ⊕ ℤ/t₁ℤ ⊕ … ⊕ ℤ/tₖℤ. Elements are coordinate
// vectors in that decomposition and homomorphisms are integer matrices
// acting on coordinates.
package zmodule

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/fentec-project/homology/data"
	"github.com/pkg/errors"
)

const (
	directSumSeparator  = " ⊕ "
	integersSymbol      = "ℤ"
	idealSeparator      = " + "
	coordinateSeparator = ", "
)

// ZModule represents the abelian group
// ℤ^rank ⊕ ℤ/t₁ℤ ⊕ … ⊕ ℤ/tₖℤ.
//
// A ZModule is immutable and may be shared freely.
type ZModule struct {
	rank    int
	torsion []*big.Int
}

// New returns the module with the given free rank and torsion
// numbers. The order of the torsion numbers is kept.
// It returns an error if rank is negative or a torsion number is
// smaller than 2.
func New(rank int, torsion ...*big.Int) (*ZModule, error) {
	if rank < 0 {
		return nil, errors.Wrapf(ErrNegativeRank, "rank %d", rank)
	}
	t := make([]*big.Int, len(torsion))
	for i, n := range torsion {
		if n == nil || n.Cmp(big.NewInt(2)) < 0 {
			return nil, errors.Wrapf(ErrInvalidTorsion, "torsion number %v", n)
		}
		t[i] = new(big.Int).Set(n)
	}

	return &ZModule{
		rank:    rank,
		torsion: t,
	}, nil
}

// NewFromInts is like New but takes the torsion numbers as int64.
func NewFromInts(rank int, torsion ...int64) (*ZModule, error) {
	t := make([]*big.Int, len(torsion))
	for i, n := range torsion {
		t[i] = big.NewInt(n)
	}

	return New(rank, t...)
}

// Zero returns the trivial module 0.
func Zero() *ZModule {
	return &ZModule{}
}

// Free returns ℤ^rank. It panics if rank is negative.
func Free(rank int) *ZModule {
	if rank < 0 {
		panic("zmodule: negative rank")
	}

	return &ZModule{rank: rank}
}

// Rank returns the free rank.
func (m *ZModule) Rank() int {
	return m.rank
}

// TorsionNumbers returns a copy of the torsion numbers.
func (m *ZModule) TorsionNumbers() []*big.Int {
	t := make([]*big.Int, len(m.torsion))
	for i, n := range m.torsion {
		t[i] = new(big.Int).Set(n)
	}

	return t
}

// Dimensions returns the number of coordinates of an element,
// rank + number of torsion numbers, but at least 1: the zero module
// keeps one coordinate for its only element.
func (m *ZModule) Dimensions() int {
	if d := m.rank + len(m.torsion); d > 0 {
		return d
	}

	return 1
}

// IsZero reports whether m is the trivial module.
func (m *ZModule) IsZero() bool {
	return m.rank == 0 && len(m.torsion) == 0
}

// Identical reports whether m and other have the same rank and the
// same torsion numbers in the same order.
func (m *ZModule) Identical(other *ZModule) bool {
	if m.rank != other.rank || len(m.torsion) != len(other.torsion) {
		return false
	}
	for i := range m.torsion {
		if m.torsion[i].Cmp(other.torsion[i]) != 0 {
			return false
		}
	}

	return true
}

// Canonical returns the module isomorphic to m whose torsion numbers
// are its invariant factors, each dividing the next.
func (m *ZModule) Canonical() *ZModule {
	return &ZModule{
		rank:    m.rank,
		torsion: InvariantFactors(m.torsion),
	}
}

// Element returns the element of m with the given coordinates.
// Torsion coordinates are reduced modulo their torsion numbers.
// It returns an error if the number of coordinates differs from
// Dimensions.
func (m *ZModule) Element(coordinates data.Vector) (*Element, error) {
	if len(coordinates) != m.Dimensions() {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"%d coordinates for a module of dimension %d", len(coordinates), m.Dimensions())
	}

	return m.element(coordinates), nil
}

// ElementFromInts is like Element but takes int64 coordinates.
func (m *ZModule) ElementFromInts(coordinates ...int64) (*Element, error) {
	return m.Element(data.NewVectorFromInts(coordinates...))
}

// element builds an element from a vector of the right length.
func (m *ZModule) element(coordinates data.Vector) *Element {
	if m.IsZero() {
		return &Element{module: m, coordinates: data.NewZeroVector(1)}
	}

	c := coordinates.Copy()
	for i, t := range m.torsion {
		c[m.rank+i].Mod(c[m.rank+i], t)
	}

	return &Element{module: m, coordinates: c}
}

// ZeroElement returns the neutral element of m.
func (m *ZModule) ZeroElement() *Element {
	return m.element(data.NewZeroVector(m.Dimensions()))
}

// CanonicalGenerators returns the elements whose coordinates are the
// unit vectors. The zero module is generated by its zero element.
func (m *ZModule) CanonicalGenerators() []*Element {
	if m.IsZero() {
		return []*Element{m.ZeroElement()}
	}

	generators := make([]*Element, m.Dimensions())
	for i := range generators {
		generators[i] = m.element(data.NewUnitVector(m.Dimensions(), i))
	}

	return generators
}

// String renders m as for example "ℤ^5 ⊕ ℤ/2ℤ ⊕ ℤ/4ℤ", or "0" for the
// zero module.
func (m *ZModule) String() string {
	parts := make([]string, 0, len(m.torsion)+1)
	switch {
	case m.rank == 1:
		parts = append(parts, integersSymbol)
	case m.rank > 1:
		parts = append(parts, integersSymbol+"^"+strconv.Itoa(m.rank))
	}
	for _, t := range m.torsion {
		parts = append(parts, integersSymbol+"/"+t.String()+integersSymbol)
	}
	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, directSumSeparator)
}
