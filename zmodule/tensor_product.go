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

// TensorProduct is the tensor product M₁ ⊗ … ⊗ Mₙ of at least two
// modules.
//
// Every multiplier is split into cyclic summands and the product is
// the direct sum over all combinations of one summand per multiplier,
// the last multiplier varying fastest. A combination of free summands
// gives ℤ, one containing 0 gives 0, and any other gives ℤ/g with g
// the gcd of the torsion numbers involved (0 if g < 2).
type TensorProduct struct {
	module       *ZModule
	multipliers  []*ZModule
	combinations []tensorCombination
}

// tensorCombination is one choice of cyclic summand per multiplier,
// given by coordinate indices, and the coordinate of the product it is
// sent to, -1 if its tensor product is zero.
type tensorCombination struct {
	indices    []int
	coordinate int
}

// NewTensorProduct computes the tensor product of multipliers.
// It returns an error if fewer than two multipliers are given.
func NewTensorProduct(multipliers ...*ZModule) (*TensorProduct, error) {
	if len(multipliers) < 2 {
		return nil, errors.Wrapf(ErrTooFewMultipliers, "got %d", len(multipliers))
	}

	summands := make([][]Cyclic, len(multipliers))
	for i, m := range multipliers {
		summands[i] = CyclicSummands(m)
	}

	var (
		combinations []tensorCombination
		products     []*ZModule
	)
	forEachCombination(summands, func(indices []int) {
		factors := make([]Cyclic, len(indices))
		for k, i := range indices {
			factors[k] = summands[k][i]
		}
		combinations = append(combinations, tensorCombination{indices: indices})
		products = append(products, cyclicTensor(factors))
	})

	sum := NewDirectSum(products...)
	for i, embedding := range sum.embeddings {
		combinations[i].coordinate = embeddingTarget(embedding)
	}

	return &TensorProduct{
		module:       sum.module,
		multipliers:  append([]*ZModule(nil), multipliers...),
		combinations: combinations,
	}, nil
}

// forEachCombination calls f with every tuple of indices into the
// given lists in lexicographic order. f owns the slice it receives.
func forEachCombination(lists [][]Cyclic, f func([]int)) {
	indices := make([]int, len(lists))
	for {
		f(append([]int(nil), indices...))

		k := len(indices) - 1
		for ; k >= 0; k-- {
			indices[k]++
			if indices[k] < len(lists[k]) {
				break
			}
			indices[k] = 0
		}
		if k < 0 {
			return
		}
	}
}

// cyclicTensor returns the tensor product of cyclic modules.
func cyclicTensor(factors []Cyclic) *ZModule {
	var torsion []*big.Int
	for _, c := range factors {
		switch c.kind {
		case Trivial:
			return Zero()
		case TorsionCyclic:
			torsion = append(torsion, c.torsion)
		}
	}
	if len(torsion) == 0 {
		return Free(1)
	}

	g := internal.GCD(torsion...)
	if g.Cmp(big.NewInt(2)) < 0 {
		return Zero()
	}

	return &ZModule{torsion: []*big.Int{g}}
}

// Module returns the tensor product module.
func (t *TensorProduct) Module() *ZModule {
	return t.module
}

// Multipliers returns the modules the product is taken of.
func (t *TensorProduct) Multipliers() []*ZModule {
	return append([]*ZModule(nil), t.multipliers...)
}

// PureTensor returns e₁ ⊗ … ⊗ eₙ. Each combination of cyclic
// summands receives the product of the corresponding coordinates.
// It returns an error if the elements do not belong to the
// multipliers.
func (t *TensorProduct) PureTensor(elements ...*Element) (*Element, error) {
	if len(elements) != len(t.multipliers) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%d elements for %d multipliers",
			len(elements), len(t.multipliers))
	}
	for i, e := range elements {
		if !e.module.Identical(t.multipliers[i]) {
			return nil, errors.Wrapf(ErrModuleMismatch, "element %d of %v, expected %v",
				i, e.module, t.multipliers[i])
		}
	}

	coordinates := data.NewZeroVector(t.module.Dimensions())
	for _, c := range t.combinations {
		if c.coordinate < 0 {
			continue
		}
		product := coordinates[c.coordinate].SetInt64(1)
		for k, i := range c.indices {
			product.Mul(product, elements[k].coordinates[i])
		}
	}

	return t.module.element(coordinates), nil
}

// TensorHomomorphism returns f₁ ⊗ … ⊗ fₙ, the homomorphism between the
// tensor products of the domains and of the codomains that sends
// x₁ ⊗ … ⊗ xₙ to f₁(x₁) ⊗ … ⊗ fₙ(xₙ).
// It returns an error if fewer than two components are given.
func TensorHomomorphism(components ...*Homomorphism) (*Homomorphism, error) {
	domains := make([]*ZModule, len(components))
	codomains := make([]*ZModule, len(components))
	for i, f := range components {
		domains[i] = f.domain
		codomains[i] = f.codomain
	}
	domain, err := NewTensorProduct(domains...)
	if err != nil {
		return nil, err
	}
	codomain, err := NewTensorProduct(codomains...)
	if err != nil {
		return nil, err
	}

	images := make([][]*Element, len(components))
	for i, f := range components {
		images[i] = f.CanonicalGeneratorImages()
	}

	columns := data.NewZeroMatrix(domain.module.Dimensions(), codomain.module.Dimensions())
	factors := make([]*Element, len(components))
	for _, c := range domain.combinations {
		if c.coordinate < 0 {
			continue
		}
		for k, i := range c.indices {
			factors[k] = images[k][i]
		}
		image, err := codomain.PureTensor(factors...)
		if err != nil {
			return nil, err
		}
		columns[c.coordinate] = image.coordinates
	}

	return NewHomomorphism(columns.Transpose(), domain.module, codomain.module)
}
