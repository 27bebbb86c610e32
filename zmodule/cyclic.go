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
)

// CyclicKind tells which kind of cyclic group a Cyclic is.
type CyclicKind int

const (
	// Trivial is the zero module.
	Trivial CyclicKind = iota
	// FreeCyclic is ℤ.
	FreeCyclic
	// TorsionCyclic is ℤ/nℤ with n ≥ 2.
	TorsionCyclic
)

// Cyclic is a cyclic summand of a ZModule: 0, ℤ or ℤ/nℤ.
type Cyclic struct {
	kind    CyclicKind
	torsion *big.Int
}

// Kind returns the kind of c.
func (c Cyclic) Kind() CyclicKind {
	return c.kind
}

// Torsion returns n for ℤ/nℤ and nil otherwise.
func (c Cyclic) Torsion() *big.Int {
	if c.kind != TorsionCyclic {
		return nil
	}

	return new(big.Int).Set(c.torsion)
}

// Module returns c as a ZModule.
func (c Cyclic) Module() *ZModule {
	switch c.kind {
	case FreeCyclic:
		return Free(1)
	case TorsionCyclic:
		return &ZModule{torsion: []*big.Int{new(big.Int).Set(c.torsion)}}
	default:
		return Zero()
	}
}

// CyclicSummands decomposes m into cyclic summands, one per
// coordinate: rank copies of ℤ followed by ℤ/tℤ for each torsion
// number t. The zero module has the single summand 0.
func CyclicSummands(m *ZModule) []Cyclic {
	if m.IsZero() {
		return []Cyclic{{kind: Trivial}}
	}

	summands := make([]Cyclic, 0, m.Dimensions())
	for i := 0; i < m.rank; i++ {
		summands = append(summands, Cyclic{kind: FreeCyclic})
	}
	for _, t := range m.torsion {
		summands = append(summands, Cyclic{kind: TorsionCyclic, torsion: t})
	}

	return summands
}
