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

package reduction

import (
	"math/big"

	"github.com/fentec-project/homology/data"
)

// SmithNormalForm is the result of diagonalizing an integer matrix M
// with unimodular row and column operations:
//
//	RowChange · M · ColumnChange = Matrix
//
// where Matrix is zero except for the first Rank diagonal entries,
// which are positive and each divides the next.
//
// SmithNormalForm is immutable; its accessors return copies.
type SmithNormalForm struct {
	matrix              data.Matrix
	diagonal            data.Vector
	rowChange           data.Matrix
	inverseRowChange    data.Matrix
	columnChange        data.Matrix
	inverseColumnChange data.Matrix
	rank                int
	unitEntryCount      int
}

// NewSmithNormalForm computes the Smith normal form of m.
// It returns an error if m is empty or ragged.
func NewSmithNormalForm(m data.Matrix) (*SmithNormalForm, error) {
	if err := validate(m); err != nil {
		return nil, err
	}

	calc := newSmithCalculator(m)
	calc.calculate()

	return calc.result(), nil
}

// Matrix returns the diagonal matrix.
func (s *SmithNormalForm) Matrix() data.Matrix {
	return s.matrix.Copy()
}

// Diagonal returns the nonzero diagonal entries, the invariant
// factors of M. Its length is Rank.
func (s *SmithNormalForm) Diagonal() data.Vector {
	return s.diagonal.Copy()
}

// DiagonalEntry returns the i-th nonzero diagonal entry.
func (s *SmithNormalForm) DiagonalEntry(i int) *big.Int {
	return new(big.Int).Set(s.diagonal[i])
}

// RowChange returns U with U · M · V = Matrix.
func (s *SmithNormalForm) RowChange() data.Matrix {
	return s.rowChange.Copy()
}

// InverseRowChange returns the inverse of RowChange.
func (s *SmithNormalForm) InverseRowChange() data.Matrix {
	return s.inverseRowChange.Copy()
}

// ColumnChange returns V with U · M · V = Matrix.
func (s *SmithNormalForm) ColumnChange() data.Matrix {
	return s.columnChange.Copy()
}

// InverseColumnChange returns the inverse of ColumnChange.
func (s *SmithNormalForm) InverseColumnChange() data.Matrix {
	return s.inverseColumnChange.Copy()
}

// Rank returns the number of nonzero diagonal entries.
func (s *SmithNormalForm) Rank() int {
	return s.rank
}

// UnitEntryCount returns the number of diagonal entries equal to 1.
// They always come first.
func (s *SmithNormalForm) UnitEntryCount() int {
	return s.unitEntryCount
}

type smithCalculator struct {
	*Manipulator
	rank           int
	unitEntryCount int
}

func newSmithCalculator(m data.Matrix) *smithCalculator {
	return &smithCalculator{
		Manipulator: NewManipulator(m),
	}
}

func (c *smithCalculator) result() *SmithNormalForm {
	a := c.Matrix()
	diagonal := make(data.Vector, c.rank)
	for i := range diagonal {
		diagonal[i] = new(big.Int).Set(a[i][i])
	}

	return &SmithNormalForm{
		matrix:              a,
		diagonal:            diagonal,
		rowChange:           c.RowChange(),
		inverseRowChange:    c.InverseRowChange(),
		columnChange:        c.ColumnChange(),
		inverseColumnChange: c.InverseColumnChange(),
		rank:                c.rank,
		unitEntryCount:      c.unitEntryCount,
	}
}

func (c *smithCalculator) calculate() {
	a := c.Matrix()
	pivot := 0

	for pivot < c.Rows() && pivot < c.Cols() && !c.submatrixIsZero(pivot) {
		c.step(pivot)

		if a[pivot][pivot].Sign() < 0 {
			c.NegateRow(pivot)
		}
		if a[pivot][pivot].IsInt64() && a[pivot][pivot].Int64() == 1 {
			c.unitEntryCount++
		}

		pivot++
	}

	c.rank = pivot
}

// step clears row and column pivot except for the pivot entry and
// makes the pivot divide every entry of the remaining submatrix.
//
// Each round either finishes or strictly decreases the absolute value
// of the pivot, which guarantees termination.
func (c *smithCalculator) step(pivot int) {
	a := c.Matrix()
	for {
		c.moveMinimalEntry(pivot)

		c.ReduceRowsByPivot(pivot, pivot)
		if !columnIsZeroFrom(a, pivot, pivot+1) {
			continue
		}

		c.ReduceColumnsByPivot(pivot, pivot)
		if !rowIsZeroFrom(a, pivot, pivot+1) {
			continue
		}

		row, _, found := c.findNondivisibleEntry(pivot)
		if !found {
			return
		}
		// The entry reappears in the pivot row, where reducing it
		// leaves a remainder smaller than the pivot.
		c.AddMultipleOfRow(pivot, row, big.NewInt(1))
	}
}

// moveMinimalEntry moves the entry with the smallest nonzero absolute
// value of the submatrix starting at (pivot, pivot) to that position.
// Ties go to the first entry in row-major order.
func (c *smithCalculator) moveMinimalEntry(pivot int) {
	a := c.Matrix()
	bestRow, bestCol := -1, -1
	for i := pivot; i < c.Rows(); i++ {
		for j := pivot; j < c.Cols(); j++ {
			if a[i][j].Sign() == 0 {
				continue
			}
			if bestRow < 0 || a[i][j].CmpAbs(a[bestRow][bestCol]) < 0 {
				bestRow, bestCol = i, j
			}
		}
	}
	if bestRow < 0 {
		return
	}

	if bestRow != pivot {
		c.ExchangeRows(pivot, bestRow)
	}
	if bestCol != pivot {
		c.ExchangeColumns(pivot, bestCol)
	}
}

// findNondivisibleEntry returns the position of the first entry of the
// submatrix starting at (pivot, pivot) that is not divisible by the
// pivot entry.
func (c *smithCalculator) findNondivisibleEntry(pivot int) (int, int, bool) {
	a := c.Matrix()
	p := a[pivot][pivot]
	r := new(big.Int)
	for i := pivot; i < c.Rows(); i++ {
		for j := pivot; j < c.Cols(); j++ {
			if r.Rem(a[i][j], p).Sign() != 0 {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

func (c *smithCalculator) submatrixIsZero(pivot int) bool {
	a := c.Matrix()
	for i := pivot; i < c.Rows(); i++ {
		if !rowIsZeroFrom(a, i, pivot) {
			return false
		}
	}

	return true
}

// rowIsZeroFrom reports whether all entries of row row in columns at
// or right of from are zero.
func rowIsZeroFrom(a data.Matrix, row, from int) bool {
	for j := from; j < a.Cols(); j++ {
		if a[row][j].Sign() != 0 {
			return false
		}
	}

	return true
}
