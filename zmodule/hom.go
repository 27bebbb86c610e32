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
	"github.com/fentec-project/homology/internal"
	"github.com/pkg/errors"
)

// Hom is the module Hom(domain, codomain) of all homomorphisms from
// domain to codomain, together with the isomorphism between its
// elements and actual homomorphisms.
//
// Both modules are split into cyclic summands. Each pair of a
// codomain summand and a domain summand contributes
//
//	Hom(ℤ, B)       ≅ B
//	Hom(ℤ/p, ℤ)     = 0
//	Hom(ℤ/p, ℤ/q)   ≅ ℤ/gcd(p, q)
//
// and Hom(domain, codomain) is the direct sum of these. A
// homomorphism ℤ/p → ℤ/q is multiplication by a multiple of
// q/gcd(p, q), its coordinate in ℤ/gcd(p, q) is the multiplier.
type Hom struct {
	module   *ZModule
	domain   *ZModule
	codomain *ZModule
	entries  []homEntry
}

// homEntry maps one matrix entry of a homomorphism to one coordinate
// of the Hom module.
type homEntry struct {
	row, col   int
	coordinate int
	scale      *big.Int
}

// NewHom computes Hom(domain, codomain).
func NewHom(domain, codomain *ZModule) *Hom {
	domainSummands := CyclicSummands(domain)
	codomainSummands := CyclicSummands(codomain)

	pairs := make([]*ZModule, 0, len(domainSummands)*len(codomainSummands))
	scales := make([]*big.Int, 0, cap(pairs))
	for _, c := range codomainSummands {
		for _, d := range domainSummands {
			m, scale := cyclicHom(d, c)
			pairs = append(pairs, m)
			scales = append(scales, scale)
		}
	}
	sum := NewDirectSum(pairs...)

	h := &Hom{
		module:   sum.module,
		domain:   domain,
		codomain: codomain,
	}
	for i, embedding := range sum.embeddings {
		target := embeddingTarget(embedding)
		if target < 0 {
			continue
		}
		h.entries = append(h.entries, homEntry{
			row:        i / len(domainSummands),
			col:        i % len(domainSummands),
			coordinate: target,
			scale:      scales[i],
		})
	}

	return h
}

// cyclicHom returns Hom(d, c) for cyclic modules and the factor a
// matrix entry is a multiple of.
func cyclicHom(d, c Cyclic) (*ZModule, *big.Int) {
	one := big.NewInt(1)
	if d.kind == Trivial || c.kind == Trivial {
		return Zero(), one
	}
	if d.kind == FreeCyclic {
		return c.Module(), one
	}
	if c.kind == FreeCyclic {
		return Zero(), one
	}

	g := internal.GCD(d.torsion, c.torsion)
	if g.Cmp(big.NewInt(2)) < 0 {
		return Zero(), one
	}

	return &ZModule{torsion: []*big.Int{g}}, new(big.Int).Quo(c.torsion, g)
}

// Module returns the module Hom(domain, codomain).
func (h *Hom) Module() *ZModule {
	return h.module
}

// Domain returns the domain of the homomorphisms.
func (h *Hom) Domain() *ZModule {
	return h.domain
}

// Codomain returns the codomain of the homomorphisms.
func (h *Hom) Codomain() *ZModule {
	return h.codomain
}

// ElementFromHomomorphism returns the element of the Hom module
// corresponding to f.
// It returns an error if f is not a homomorphism between the domain
// and the codomain of h.
func (h *Hom) ElementFromHomomorphism(f *Homomorphism) (*Element, error) {
	if !f.domain.Identical(h.domain) || !f.codomain.Identical(h.codomain) {
		return nil, errors.Wrapf(ErrModuleMismatch, "%v --> %v is not in Hom(%v, %v)",
			f.domain, f.codomain, h.domain, h.codomain)
	}

	coordinates := data.NewZeroVector(h.module.Dimensions())
	r := new(big.Int)
	for _, e := range h.entries {
		entry := f.matrix[e.row][e.col]
		if r.Rem(entry, e.scale).Sign() != 0 {
			return nil, errors.Wrapf(ErrInvalidHomomorphism, "entry (%d, %d) = %v is not a multiple of %v",
				e.row, e.col, entry, e.scale)
		}
		coordinates[e.coordinate].Quo(entry, e.scale)
	}

	return h.module.element(coordinates), nil
}

// HomomorphismFromElement returns the homomorphism corresponding to an
// element of the Hom module.
// It returns an error if e does not belong to the Hom module.
func (h *Hom) HomomorphismFromElement(e *Element) (*Homomorphism, error) {
	if !e.module.Identical(h.module) {
		return nil, errors.Wrapf(ErrModuleMismatch, "element of %v is not in %v", e.module, h.module)
	}

	matrix := data.NewZeroMatrix(h.codomain.Dimensions(), h.domain.Dimensions())
	for _, entry := range h.entries {
		matrix[entry.row][entry.col].Mul(e.coordinates[entry.coordinate], entry.scale)
	}

	return NewHomomorphism(matrix, h.domain, h.codomain)
}
