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

package chain

import (
	"github.com/fentec-project/homology/zmodule"
	"github.com/pkg/errors"
)

// ChainComplex is a sequence of modules C₀, …, Cₙ with boundary maps
// ∂ᵢ: Cᵢ → Cᵢ₋₁. The map ∂₀ leaves the complex and is usually the zero
// map to the zero module.
//
// A ChainComplex is immutable.
type ChainComplex struct {
	modules    []*zmodule.ZModule
	boundaries []*zmodule.Homomorphism
}

// NewChainComplex returns the complex with the given modules and
// boundary maps, the i-th boundary starting in the i-th module. If one
// boundary fewer than modules is given they are taken as ∂₁, …, ∂ₙ and
// the zero map ∂₀ from C₀ to the zero module is prepended.
//
// It returns an error if modules is empty, if the numbers of modules
// and boundaries do not fit, or if some boundary does not go from its
// module to the previous one.
func NewChainComplex(modules []*zmodule.ZModule, boundaries []*zmodule.Homomorphism) (*ChainComplex, error) {
	if len(modules) == 0 {
		return nil, ErrEmptyComplex
	}

	bs := append([]*zmodule.Homomorphism(nil), boundaries...)
	if len(bs) == len(modules)-1 {
		bs = append([]*zmodule.Homomorphism{zmodule.ZeroHomomorphism(modules[0], zmodule.Zero())}, bs...)
	}
	if len(bs) != len(modules) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d modules and %d boundaries",
			len(modules), len(boundaries))
	}

	for i, b := range bs {
		if !b.Domain().Identical(modules[i]) {
			return nil, errors.Wrapf(ErrModuleMismatch, "d%d starts in %v instead of %v",
				i, b.Domain(), modules[i])
		}
		if i > 0 && !b.Codomain().Identical(modules[i-1]) {
			return nil, errors.Wrapf(ErrModuleMismatch, "d%d ends in %v instead of %v",
				i, b.Codomain(), modules[i-1])
		}
	}

	return &ChainComplex{
		modules:    append([]*zmodule.ZModule(nil), modules...),
		boundaries: bs,
	}, nil
}

// Len returns the number of modules.
func (c *ChainComplex) Len() int {
	return len(c.modules)
}

// Modules returns the modules of c.
func (c *ChainComplex) Modules() []*zmodule.ZModule {
	return append([]*zmodule.ZModule(nil), c.modules...)
}

// Boundaries returns the boundary maps of c, the i-th starting in the
// i-th module.
func (c *ChainComplex) Boundaries() []*zmodule.Homomorphism {
	return append([]*zmodule.Homomorphism(nil), c.boundaries...)
}

// Cochain returns c read backwards, Cₙ → Cₙ₋₁ → … → C₀ → 0, as a
// cochain complex.
func (c *ChainComplex) Cochain() *CochainComplex {
	n := len(c.modules)
	modules := make([]*zmodule.ZModule, n)
	homs := make([]*zmodule.Homomorphism, n)
	for i := range c.modules {
		modules[i] = c.modules[n-1-i]
		homs[i] = c.boundaries[n-1-i]
	}

	return &CochainComplex{
		modules:       modules,
		homomorphisms: homs,
	}
}

// Homology returns the homology groups Hᵢ = ker ∂ᵢ / im ∂ᵢ₊₁ of c, one
// per module. Nothing maps into the last module.
func (c *ChainComplex) Homology(opts ...Option) ([]*zmodule.ZModule, error) {
	reversed, err := Cohomology(c.Cochain(), opts...)
	if err != nil {
		return nil, err
	}

	groups := make([]*zmodule.ZModule, len(reversed))
	for i, g := range reversed {
		groups[len(reversed)-1-i] = g
	}

	return groups, nil
}

// String renders c as for example "0 <--d0-- ℤ <--d1-- ℤ/2ℤ <--d2-- 0".
func (c *ChainComplex) String() string {
	return sequenceString(c.modules, leftArrow)
}
