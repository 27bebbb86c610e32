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
	"golang.org/x/sync/errgroup"
)

// term describes one group ker(kernelOf) / im(imageOf) inside module.
// imageOf is nil where nothing maps into the module.
type term struct {
	module   *zmodule.ZModule
	kernelOf *zmodule.Homomorphism
	imageOf  *zmodule.Homomorphism
}

// Cohomology returns the cohomology groups Hⁱ = ker dᵢ / im dᵢ₋₁ of c,
// one per module. Nothing maps into the first module.
func Cohomology(c *CochainComplex, opts ...Option) ([]*zmodule.ZModule, error) {
	o := newOptions(opts)
	if o.check {
		if err := c.check(); err != nil {
			return nil, err
		}
	}

	terms := make([]term, len(c.modules))
	for i, m := range c.modules {
		terms[i] = term{module: m, kernelOf: c.homomorphisms[i]}
		if i > 0 {
			terms[i].imageOf = c.homomorphisms[i-1]
		}
	}

	return compute(terms, o)
}

// Homology returns the groups of c computed after prepending the zero
// module, so that the first module receives the zero map from it. The
// result agrees with Cohomology.
func Homology(c *CochainComplex, opts ...Option) ([]*zmodule.ZModule, error) {
	o := newOptions(opts)
	if o.check {
		if err := c.check(); err != nil {
			return nil, err
		}
	}

	padded := c.LeftPad(1)
	terms := make([]term, len(c.modules))
	for i := range terms {
		terms[i] = term{
			module:   padded.modules[i+1],
			kernelOf: padded.homomorphisms[i+1],
			imageOf:  padded.homomorphisms[i],
		}
	}

	return compute(terms, o)
}

// compute evaluates the terms, up to o.concurrency at a time. With a
// limit of one the terms are computed in order on the calling goroutine.
func compute(terms []term, o *options) ([]*zmodule.ZModule, error) {
	groups := make([]*zmodule.ZModule, len(terms))

	if o.concurrency == 1 {
		for i, t := range terms {
			group, err := computeTerm(i, t, o)
			if err != nil {
				return nil, err
			}
			groups[i] = group
		}

		return groups, nil
	}

	g := new(errgroup.Group)
	g.SetLimit(o.concurrency)
	for i, t := range terms {
		i, t := i, t
		g.Go(func() error {
			group, err := computeTerm(i, t, o)
			if err != nil {
				return err
			}
			groups[i] = group

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return groups, nil
}

// computeTerm returns ker(t.kernelOf) / im(t.imageOf).
func computeTerm(i int, t term, o *options) (*zmodule.ZModule, error) {
	kernel := t.kernelOf.KernelGenerators()
	var image []*zmodule.Element
	if t.imageOf != nil {
		image = t.imageOf.CanonicalGeneratorImages()
	}

	q, err := zmodule.NewSubmoduleQuotient(t.module, kernel, image)
	if err != nil {
		return nil, errors.Wrapf(err, "term %d", i)
	}
	group := q.Module()

	o.logger.Debug("computed term", "index", i, "module", t.module,
		"kernel", len(kernel), "image", len(image), "group", group)

	return group, nil
}

// check verifies that dᵢ₊₁ ∘ dᵢ = 0 for all consecutive maps.
func (c *CochainComplex) check() error {
	for i := 0; i+1 < len(c.homomorphisms); i++ {
		composite, err := c.homomorphisms[i+1].Compose(c.homomorphisms[i])
		if err != nil {
			return err
		}
		if !composite.IsZero() {
			return errors.Wrapf(ErrNotComplex, "d%d ∘ d%d", i+2, i+1)
		}
	}

	return nil
}
