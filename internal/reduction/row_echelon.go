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
	"github.com/fentec-project/homology/data"
)

// RowEchelon holds the row echelon form of an integer matrix obtained
// with row operations only, together with the row change matrices:
//
//	Change · original = Matrix
//
// RowEchelon is immutable; its accessors return copies.
type RowEchelon struct {
	matrix        data.Matrix
	change        data.Matrix
	inverseChange data.Matrix
	rank          int
}

// NewRowEchelon reduces m to row echelon form.
//
// Pivots are chosen column by column. Within a pivot column the row
// with the smallest nonzero absolute value (the first one on ties) is
// moved to the pivot row and the rows below are reduced by floor
// division, until the pivot is the only nonzero entry left at or below
// the pivot row. Columns without nonzero entries there are skipped.
//
// It returns an error if m is empty or ragged.
func NewRowEchelon(m data.Matrix) (*RowEchelon, error) {
	if err := validate(m); err != nil {
		return nil, err
	}

	manipulator := NewManipulator(m)
	rank := rowReduce(manipulator)

	return &RowEchelon{
		matrix:        manipulator.Matrix(),
		change:        manipulator.RowChange(),
		inverseChange: manipulator.InverseRowChange(),
		rank:          rank,
	}, nil
}

// Matrix returns the row echelon form.
func (r *RowEchelon) Matrix() data.Matrix {
	return r.matrix.Copy()
}

// Change returns the unimodular U with U · original = Matrix.
func (r *RowEchelon) Change() data.Matrix {
	return r.change.Copy()
}

// InverseChange returns the inverse of Change.
func (r *RowEchelon) InverseChange() data.Matrix {
	return r.inverseChange.Copy()
}

// Rank returns the row rank, i.e. the number of nonzero rows of the
// echelon form.
func (r *RowEchelon) Rank() int {
	return r.rank
}

func rowReduce(m *Manipulator) int {
	a := m.Matrix()
	pivotRow, pivotCol := 0, 0

	for pivotRow < m.Rows() {
		for pivotCol < m.Cols() && columnIsZeroFrom(a, pivotCol, pivotRow) {
			pivotCol++
		}
		if pivotCol >= m.Cols() {
			break
		}

		for {
			moveMinimalRowEntry(m, pivotRow, pivotCol)
			if columnIsZeroFrom(a, pivotCol, pivotRow+1) {
				break
			}
			m.ReduceRowsByPivot(pivotRow, pivotCol)
		}

		pivotRow++
		pivotCol++
	}

	return pivotRow
}

// moveMinimalRowEntry swaps the row holding the smallest nonzero
// absolute value of column col, among rows at or below row, into row.
func moveMinimalRowEntry(m *Manipulator, row, col int) {
	a := m.Matrix()
	best := -1
	for i := row; i < m.Rows(); i++ {
		if a[i][col].Sign() == 0 {
			continue
		}
		if best < 0 || a[i][col].CmpAbs(a[best][col]) < 0 {
			best = i
		}
	}

	if best > row {
		m.ExchangeRows(row, best)
	}
}

// columnIsZeroFrom reports whether all entries of column col in rows
// at or below from are zero.
func columnIsZeroFrom(a data.Matrix, col, from int) bool {
	for i := from; i < a.Rows(); i++ {
		if a[i][col].Sign() != 0 {
			return false
		}
	}

	return true
}
