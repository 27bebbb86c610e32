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
	"sync"

	"github.com/fentec-project/homology/data"
	"github.com/fentec-project/homology/internal/reduction"
	"github.com/pkg/errors"
)

// Homomorphism is a group homomorphism between two ZModules, given by
// the integer matrix that maps domain coordinates to codomain
// coordinates. Rows belonging to torsion summands of the codomain are
// stored reduced modulo their torsion numbers.
//
// A Homomorphism is immutable. Its Smith normal form and kernel
// generators are computed on first use and cached, so it is safe to
// share between goroutines.
type Homomorphism struct {
	matrix   data.Matrix
	domain   *ZModule
	codomain *ZModule

	snfOnce sync.Once
	snf     *reduction.SmithNormalForm

	kernelOnce sync.Once
	kernel     []*Element
}

// NewHomomorphism returns the homomorphism from domain to codomain
// given by matrix, which must have codomain.Dimensions() rows and
// domain.Dimensions() columns.
//
// It returns an error if the matrix is empty, ragged or of the wrong
// shape, or if it does not respect the torsion of the domain, i.e. if
// some generator of order t is not sent to an element killed by t.
func NewHomomorphism(matrix data.Matrix, domain, codomain *ZModule) (*Homomorphism, error) {
	if matrix.Rows() == 0 || matrix.Cols() == 0 {
		return nil, ErrEmptyMatrix
	}
	for _, row := range matrix {
		if len(row) != matrix.Cols() {
			return nil, ErrRaggedMatrix
		}
	}
	if matrix.Cols() != domain.Dimensions() {
		return nil, errors.Wrapf(ErrDimensionMismatch, "domain %v has dimension %d, matrix has %d columns",
			domain, domain.Dimensions(), matrix.Cols())
	}
	if matrix.Rows() != codomain.Dimensions() {
		return nil, errors.Wrapf(ErrDimensionMismatch, "codomain %v has dimension %d, matrix has %d rows",
			codomain, codomain.Dimensions(), matrix.Rows())
	}

	h := &Homomorphism{
		matrix:   reduceRows(matrix, codomain),
		domain:   domain,
		codomain: codomain,
	}
	if err := h.checkTorsion(); err != nil {
		return nil, err
	}

	return h, nil
}

// NewFreeHomomorphism returns the homomorphism ℤ^cols → ℤ^rows given
// by matrix.
func NewFreeHomomorphism(matrix data.Matrix) (*Homomorphism, error) {
	return NewHomomorphism(matrix, Free(matrix.Cols()), Free(matrix.Rows()))
}

// ZeroHomomorphism returns the homomorphism sending everything to zero.
func ZeroHomomorphism(domain, codomain *ZModule) *Homomorphism {
	return &Homomorphism{
		matrix:   data.NewZeroMatrix(codomain.Dimensions(), domain.Dimensions()),
		domain:   domain,
		codomain: codomain,
	}
}

// IdentityHomomorphism returns the identity of m.
func IdentityHomomorphism(m *ZModule) *Homomorphism {
	return &Homomorphism{
		matrix:   reduceRows(data.NewIdentityMatrix(m.Dimensions()), m),
		domain:   m,
		codomain: m,
	}
}

// FromCanonicalGeneratorImages returns the homomorphism sending the
// i-th canonical generator of domain to images[i]. A nil domain stands
// for the free module of rank len(images).
//
// It returns an error if images is empty, if the images do not belong
// to identical modules, or if they do not fit the domain.
func FromCanonicalGeneratorImages(images []*Element, domain *ZModule) (*Homomorphism, error) {
	if len(images) == 0 {
		return nil, errors.Wrap(ErrEmptyMatrix, "no generator images")
	}
	codomain := images[0].module
	for _, image := range images[1:] {
		if !image.module.Identical(codomain) {
			return nil, errors.Wrapf(ErrModuleMismatch, "images in %v and %v", codomain, image.module)
		}
	}
	if domain == nil {
		domain = Free(len(images))
	}

	columns := make(data.Matrix, len(images))
	for i, image := range images {
		columns[i] = image.coordinates
	}

	return NewHomomorphism(columns.Transpose(), domain, codomain)
}

// Domain returns the domain of h.
func (h *Homomorphism) Domain() *ZModule {
	return h.domain
}

// Codomain returns the codomain of h.
func (h *Homomorphism) Codomain() *ZModule {
	return h.codomain
}

// Matrix returns a copy of the matrix of h.
func (h *Homomorphism) Matrix() data.Matrix {
	return h.matrix.Copy()
}

// Apply returns h(e).
// It returns an error if e does not belong to the domain of h.
func (h *Homomorphism) Apply(e *Element) (*Element, error) {
	if !e.module.Identical(h.domain) {
		return nil, errors.Wrapf(ErrModuleMismatch, "element of %v applied to a homomorphism from %v",
			e.module, h.domain)
	}
	image, err := h.matrix.MulVec(e.coordinates)
	if err != nil {
		return nil, errors.Wrapf(err, "applying %v --> %v", h.domain, h.codomain)
	}

	return h.codomain.element(image), nil
}

// Compose returns h∘other, the homomorphism applying other first.
// It returns an error if the codomain of other is not the domain of h.
func (h *Homomorphism) Compose(other *Homomorphism) (*Homomorphism, error) {
	if !h.domain.Identical(other.codomain) {
		return nil, errors.Wrapf(ErrModuleMismatch, "cannot compose %v --> %v after %v --> %v",
			h.domain, h.codomain, other.domain, other.codomain)
	}
	product, err := h.matrix.Mul(other.matrix)
	if err != nil {
		return nil, errors.Wrapf(err, "composing %v --> %v after %v --> %v",
			h.domain, h.codomain, other.domain, other.codomain)
	}

	return &Homomorphism{
		matrix:   reduceRows(product, h.codomain),
		domain:   other.domain,
		codomain: h.codomain,
	}, nil
}

// CanonicalGeneratorImages returns the images of the canonical
// generators of the domain, i.e. the columns of the matrix.
func (h *Homomorphism) CanonicalGeneratorImages() []*Element {
	columns := h.matrix.Transpose()
	images := make([]*Element, len(columns))
	for i, column := range columns {
		images[i] = h.codomain.element(column)
	}

	return images
}

// Preimage returns an element x of the domain with h(x) = e. The
// second return value is false if e is not in the image of h or does
// not belong to the codomain.
//
// With U·A·V = D the Smith normal form of the matrix A of h, extended
// by the torsion relations of the codomain, A·x = b has a solution iff
// every coordinate of U·b within the rank is divisible by the
// corresponding diagonal entry and every other one is zero.
func (h *Homomorphism) Preimage(e *Element) (*Element, bool) {
	if !e.module.Identical(h.codomain) {
		return nil, false
	}
	snf := h.smithNormalForm()

	c, err := snf.RowChange().MulVec(e.coordinates)
	if err != nil {
		return nil, false
	}
	z := data.NewZeroVector(snf.Matrix().Cols())
	rem := new(big.Int)
	for j, cj := range c {
		if j >= snf.Rank() {
			if cj.Sign() != 0 {
				return nil, false
			}
			continue
		}
		d := snf.DiagonalEntry(j)
		if rem.Rem(cj, d).Sign() != 0 {
			return nil, false
		}
		z[j].Quo(cj, d)
	}

	x, err := snf.ColumnChange().MulVec(z)
	if err != nil {
		return nil, false
	}

	return h.domain.element(x[:h.domain.Dimensions()]), true
}

// KernelGenerators returns nonzero generators of the kernel of h.
// The kernel is computed on the matrix extended by one relation
// column per torsion number of the codomain, so elements mapping to a
// multiple of a torsion number are found as well. The result is empty
// if h is injective.
func (h *Homomorphism) KernelGenerators() []*Element {
	h.kernelOnce.Do(func() {
		k, err := reduction.NewKernelAndImage(h.augmented())
		if err != nil {
			panic(err)
		}
		for _, v := range k.Kernel() {
			e := h.domain.element(v[:h.domain.Dimensions()])
			if !e.IsZero() {
				h.kernel = append(h.kernel, e)
			}
		}
	})

	kernel := make([]*Element, len(h.kernel))
	copy(kernel, h.kernel)

	return kernel
}

// IsZero reports whether h sends everything to zero.
func (h *Homomorphism) IsZero() bool {
	return h.matrix.IsZero()
}

// Equal reports whether h and other have identical domains and
// codomains and the same matrix.
func (h *Homomorphism) Equal(other *Homomorphism) bool {
	return h.domain.Identical(other.domain) &&
		h.codomain.Identical(other.codomain) &&
		h.matrix.Equal(other.matrix)
}

// String renders h as "domain --> codomain," followed by the rows of
// its matrix, one per line.
func (h *Homomorphism) String() string {
	var sb strings.Builder
	sb.WriteString(h.domain.String())
	sb.WriteString(" --> ")
	sb.WriteString(h.codomain.String())
	sb.WriteString(",")
	for _, row := range h.matrix {
		sb.WriteString("\n")
		sb.WriteString(row.String())
	}

	return sb.String()
}

// smithNormalForm returns the cached Smith normal form of the
// augmented matrix.
func (h *Homomorphism) smithNormalForm() *reduction.SmithNormalForm {
	h.snfOnce.Do(func() {
		snf, err := reduction.NewSmithNormalForm(h.augmented())
		if err != nil {
			// the augmented matrix is never empty or ragged
			panic(err)
		}
		h.snf = snf
	})

	return h.snf
}

// augmented returns the matrix of h with one column appended per
// torsion number t of the codomain, holding -t in that torsion row.
func (h *Homomorphism) augmented() data.Matrix {
	rank := h.codomain.rank
	torsion := h.codomain.torsion
	a := make(data.Matrix, h.matrix.Rows())
	for i, row := range h.matrix {
		extra := data.NewZeroVector(len(torsion))
		if k := i - rank; k >= 0 && k < len(torsion) {
			extra[k].Neg(torsion[k])
		}
		a[i] = append(row.Copy(), extra...)
	}

	return a
}

// checkTorsion verifies that t·h(g) = 0 for every generator g of order
// t of the domain.
func (h *Homomorphism) checkTorsion() error {
	columns := h.matrix.Transpose()
	for k, t := range h.domain.torsion {
		image := h.codomain.element(columns[h.domain.rank+k].MulScalar(t))
		if !image.IsZero() {
			return errors.Wrapf(ErrInvalidHomomorphism, "generator %d of order %v is sent to %v",
				h.domain.rank+k, t, h.codomain.element(columns[h.domain.rank+k]))
		}
	}

	return nil
}

// reduceRows reduces the rows of matrix belonging to torsion summands
// of codomain. The matrix of a map into the zero module is zero.
func reduceRows(matrix data.Matrix, codomain *ZModule) data.Matrix {
	if codomain.IsZero() {
		return data.NewZeroMatrix(matrix.Rows(), matrix.Cols())
	}

	reduced := matrix.Copy()
	for k, t := range codomain.torsion {
		reduced[codomain.rank+k] = reduced[codomain.rank+k].Mod(t)
	}

	return reduced
}
