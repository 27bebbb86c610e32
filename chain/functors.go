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

// LeftHom applies Hom(d, ·) to c: the complex of the modules
// Hom(d, Cⁱ) with the maps f ↦ dᵢ ∘ f.
func LeftHom(c *CochainComplex, d *zmodule.ZModule) (*CochainComplex, error) {
	homs := make([]*zmodule.Hom, len(c.modules))
	modules := make([]*zmodule.ZModule, len(c.modules))
	for i, m := range c.modules {
		homs[i] = zmodule.NewHom(d, m)
		modules[i] = homs[i].Module()
	}

	maps := make([]*zmodule.Homomorphism, 0, len(c.homomorphisms))
	for i, h := range c.homomorphisms {
		target := zmodule.NewHom(d, h.Codomain())
		if i+1 < len(homs) {
			target = homs[i+1]
		}
		induced, err := inducedMap(homs[i], target, func(f *zmodule.Homomorphism) (*zmodule.Homomorphism, error) {
			return h.Compose(f)
		})
		if err != nil {
			return nil, errors.Wrapf(err, "Hom(%v, d%d)", d, i+1)
		}
		maps = append(maps, induced)
	}

	return NewCochainComplex(modules, maps)
}

// RightHom applies Hom(·, x) to c. The result runs backwards: the
// modules are Hom(Cⁿ⁻¹, x), …, Hom(C⁰, x) with the maps f ↦ f ∘ dᵢ.
func RightHom(c *CochainComplex, x *zmodule.ZModule) (*CochainComplex, error) {
	n := len(c.modules)
	homs := make([]*zmodule.Hom, n)
	modules := make([]*zmodule.ZModule, n)
	for i := range c.modules {
		homs[i] = zmodule.NewHom(c.modules[n-1-i], x)
		modules[i] = homs[i].Module()
	}

	maps := make([]*zmodule.Homomorphism, 0, n-1)
	for i := 0; i+1 < n; i++ {
		d := c.homomorphisms[n-2-i]
		induced, err := inducedMap(homs[i], homs[i+1], func(f *zmodule.Homomorphism) (*zmodule.Homomorphism, error) {
			return f.Compose(d)
		})
		if err != nil {
			return nil, errors.Wrapf(err, "Hom(d%d, %v)", n-1-i, x)
		}
		maps = append(maps, induced)
	}

	return NewCochainComplex(modules, maps)
}

// LeftTensorProduct applies m ⊗ · to c: the complex of the modules
// m ⊗ Cⁱ with the maps id ⊗ dᵢ.
func LeftTensorProduct(c *CochainComplex, m *zmodule.ZModule) (*CochainComplex, error) {
	return tensorComplex(c, func(h *zmodule.Homomorphism) (*zmodule.Homomorphism, error) {
		return zmodule.TensorHomomorphism(zmodule.IdentityHomomorphism(m), h)
	})
}

// RightTensorProduct applies · ⊗ m to c: the complex of the modules
// Cⁱ ⊗ m with the maps dᵢ ⊗ id.
func RightTensorProduct(c *CochainComplex, m *zmodule.ZModule) (*CochainComplex, error) {
	return tensorComplex(c, func(h *zmodule.Homomorphism) (*zmodule.Homomorphism, error) {
		return zmodule.TensorHomomorphism(h, zmodule.IdentityHomomorphism(m))
	})
}

// tensorComplex replaces every map of c by its tensor product with an
// identity. The modules are the domains of the new maps.
func tensorComplex(c *CochainComplex, tensor func(*zmodule.Homomorphism) (*zmodule.Homomorphism, error)) (*CochainComplex, error) {
	modules := make([]*zmodule.ZModule, len(c.modules))
	maps := make([]*zmodule.Homomorphism, len(c.homomorphisms))
	for i, h := range c.homomorphisms {
		t, err := tensor(h)
		if err != nil {
			return nil, errors.Wrapf(err, "tensor product of d%d", i+1)
		}
		modules[i] = t.Domain()
		maps[i] = t
	}

	return NewCochainComplex(modules, maps)
}

// inducedMap returns the homomorphism between Hom modules sending the
// element of f to the element of apply(f).
func inducedMap(from, to *zmodule.Hom, apply func(*zmodule.Homomorphism) (*zmodule.Homomorphism, error)) (*zmodule.Homomorphism, error) {
	generators := from.Module().CanonicalGenerators()
	images := make([]*zmodule.Element, len(generators))
	for i, g := range generators {
		f, err := from.HomomorphismFromElement(g)
		if err != nil {
			return nil, err
		}
		image, err := apply(f)
		if err != nil {
			return nil, err
		}
		if images[i], err = to.ElementFromHomomorphism(image); err != nil {
			return nil, err
		}
	}

	return zmodule.FromCanonicalGeneratorImages(images, from.Module())
}
