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
	"strconv"
	"strings"

	"github.com/fentec-project/homology/zmodule"
	"github.com/pkg/errors"
)

// CochainComplex is a sequence of modules C⁰, …, Cⁿ⁻¹ with maps
// dᵢ: Cⁱ → Cⁱ⁺¹. The codomain of the last map lies outside the complex
// and is usually the zero module.
//
// A CochainComplex is immutable.
type CochainComplex struct {
	modules       []*zmodule.ZModule
	homomorphisms []*zmodule.Homomorphism
}

// NewCochainComplex returns the complex with the given modules and
// maps. If one map fewer than modules is given, the zero map from the
// last module to the zero module is appended.
//
// It returns an error if modules is empty, if the numbers of modules
// and maps do not fit, or if some map does not go from its module to
// the next one.
func NewCochainComplex(modules []*zmodule.ZModule, homomorphisms []*zmodule.Homomorphism) (*CochainComplex, error) {
	if len(modules) == 0 {
		return nil, ErrEmptyComplex
	}

	homs := append([]*zmodule.Homomorphism(nil), homomorphisms...)
	if len(homs) == len(modules)-1 {
		homs = append(homs, zmodule.ZeroHomomorphism(modules[len(modules)-1], zmodule.Zero()))
	}
	if len(homs) != len(modules) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d modules and %d homomorphisms",
			len(modules), len(homomorphisms))
	}

	for i, h := range homs {
		if !h.Domain().Identical(modules[i]) {
			return nil, errors.Wrapf(ErrModuleMismatch, "d%d starts in %v instead of %v",
				i+1, h.Domain(), modules[i])
		}
		if i+1 < len(modules) && !h.Codomain().Identical(modules[i+1]) {
			return nil, errors.Wrapf(ErrModuleMismatch, "d%d ends in %v instead of %v",
				i+1, h.Codomain(), modules[i+1])
		}
	}

	return &CochainComplex{
		modules:       append([]*zmodule.ZModule(nil), modules...),
		homomorphisms: homs,
	}, nil
}

// Len returns the number of modules.
func (c *CochainComplex) Len() int {
	return len(c.modules)
}

// Modules returns the modules of c.
func (c *CochainComplex) Modules() []*zmodule.ZModule {
	return append([]*zmodule.ZModule(nil), c.modules...)
}

// Homomorphisms returns the maps of c, the i-th starting in the i-th
// module.
func (c *CochainComplex) Homomorphisms() []*zmodule.Homomorphism {
	return append([]*zmodule.Homomorphism(nil), c.homomorphisms...)
}

// LeftPad returns c with count zero modules prepended.
func (c *CochainComplex) LeftPad(count int) *CochainComplex {
	if count <= 0 {
		return c
	}

	zero := zmodule.Zero()
	modules := make([]*zmodule.ZModule, 0, count+len(c.modules))
	homs := make([]*zmodule.Homomorphism, 0, count+len(c.homomorphisms))
	for i := 0; i < count; i++ {
		modules = append(modules, zero)
	}
	for i := 0; i < count-1; i++ {
		homs = append(homs, zmodule.ZeroHomomorphism(zero, zero))
	}
	homs = append(homs, zmodule.ZeroHomomorphism(zero, c.modules[0]))

	return &CochainComplex{
		modules:       append(modules, c.modules...),
		homomorphisms: append(homs, c.homomorphisms...),
	}
}

// RightPad returns c with count zero modules appended. The last map of
// c is replaced by the zero map into the first of them.
func (c *CochainComplex) RightPad(count int) *CochainComplex {
	if count <= 0 {
		return c
	}

	zero := zmodule.Zero()
	last := len(c.modules) - 1
	modules := append([]*zmodule.ZModule(nil), c.modules...)
	homs := append([]*zmodule.Homomorphism(nil), c.homomorphisms[:last]...)
	homs = append(homs, zmodule.ZeroHomomorphism(c.modules[last], zero))
	for i := 0; i < count; i++ {
		modules = append(modules, zero)
		homs = append(homs, zmodule.ZeroHomomorphism(zero, zero))
	}

	return &CochainComplex{
		modules:       modules,
		homomorphisms: homs,
	}
}

// String renders c as its sequence of modules, for example
// "0 --d0--> ℤ --d1--> ℤ/2ℤ --d2--> 0", followed by one line per map
// and the rows of its matrix.
func (c *CochainComplex) String() string {
	var sb strings.Builder
	sb.WriteString(sequenceString(c.modules, rightArrow))
	sb.WriteString("\n")
	for i, h := range c.homomorphisms {
		sb.WriteString("d" + strconv.Itoa(i+1) + ": " + h.String() + "\n")
	}

	return sb.String()
}

func rightArrow(i int) string {
	return " --d" + strconv.Itoa(i) + "--> "
}

func leftArrow(i int) string {
	return " <--d" + strconv.Itoa(i) + "-- "
}

// sequenceString renders 0, the modules and 0 joined by numbered
// arrows.
func sequenceString(modules []*zmodule.ZModule, arrow func(int) string) string {
	var sb strings.Builder
	sb.WriteString("0")
	sb.WriteString(arrow(0))
	for i, m := range modules {
		sb.WriteString(m.String())
		sb.WriteString(arrow(i + 1))
	}
	sb.WriteString("0")

	return sb.String()
}
