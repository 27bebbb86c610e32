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
	"strings"

	"github.com/fentec-project/homology/data"
	"github.com/pkg/errors"
)

// Element is an element of a ZModule, given by its coordinates.
// Torsion coordinates are always reduced modulo their torsion numbers.
type Element struct {
	module      *ZModule
	coordinates data.Vector
}

// Module returns the module e belongs to.
func (e *Element) Module() *ZModule {
	return e.module
}

// Coordinates returns a copy of the coordinates of e.
func (e *Element) Coordinates() data.Vector {
	return e.coordinates.Copy()
}

// Coordinate returns a copy of the i-th coordinate of e.
func (e *Element) Coordinate(i int) *big.Int {
	return new(big.Int).Set(e.coordinates[i])
}

// IsZero reports whether e is the neutral element.
func (e *Element) IsZero() bool {
	return e.coordinates.IsZero()
}

// Equal reports whether e and other belong to identical modules and
// have the same coordinates.
func (e *Element) Equal(other *Element) bool {
	return e.module.Identical(other.module) && e.coordinates.Equal(other.coordinates)
}

// Add returns e + other.
// It returns an error if the elements belong to different modules.
func (e *Element) Add(other *Element) (*Element, error) {
	if !e.module.Identical(other.module) {
		return nil, errors.Wrapf(ErrModuleMismatch, "cannot add an element of %v to %v",
			other.module, e.module)
	}

	return e.module.element(e.coordinates.Add(other.coordinates)), nil
}

// Sub returns e - other.
// It returns an error if the elements belong to different modules.
func (e *Element) Sub(other *Element) (*Element, error) {
	return e.Add(other.Neg())
}

// Neg returns -e.
func (e *Element) Neg() *Element {
	return e.module.element(e.coordinates.Neg())
}

// MulScalar returns k·e.
func (e *Element) MulScalar(k *big.Int) *Element {
	return e.module.element(e.coordinates.MulScalar(k))
}

// String renders e as for example "(1, 2 + 3ℤ)". Torsion coordinates
// carry their ideal. A single coordinate is not parenthesized and the
// element of the zero module is "0".
func (e *Element) String() string {
	m := e.module
	if m.IsZero() {
		return "0"
	}

	parts := make([]string, len(e.coordinates))
	for i, c := range e.coordinates {
		parts[i] = c.String()
		if i >= m.rank {
			parts[i] += idealSeparator + m.torsion[i-m.rank].String() + integersSymbol
		}
	}
	s := strings.Join(parts, coordinateSeparator)
	if len(parts) > 1 {
		s = "(" + s + ")"
	}

	return s
}

// Sum adds up elements of module m. The empty sum is the zero element.
// It returns an error if an element does not belong to m.
func Sum(m *ZModule, elements ...*Element) (*Element, error) {
	sum := m.ZeroElement()
	for _, e := range elements {
		var err error
		if sum, err = sum.Add(e); err != nil {
			return nil, err
		}
	}

	return sum, nil
}
