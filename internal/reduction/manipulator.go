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
	"github.com/fentec-project/homology/internal"
)

// Manipulator applies elementary operations to a matrix and mirrors
// each of them on four change matrices, so that at all times
//
//	RowChange · original · ColumnChange = Matrix
//	RowChange · InverseRowChange = I
//	ColumnChange · InverseColumnChange = I
//
// A row operation E turns RowChange into E·RowChange and
// InverseRowChange into InverseRowChange·E⁻¹. Column operations are
// handled dually.
//
// Index arguments out of range cause a panic.
type Manipulator struct {
	matrix              data.Matrix
	rowChange           data.Matrix
	inverseRowChange    data.Matrix
	columnChange        data.Matrix
	inverseColumnChange data.Matrix
}

// NewManipulator returns a Manipulator working on a copy of m.
func NewManipulator(m data.Matrix) *Manipulator {
	return &Manipulator{
		matrix:              m.Copy(),
		rowChange:           data.NewIdentityMatrix(m.Rows()),
		inverseRowChange:    data.NewIdentityMatrix(m.Rows()),
		columnChange:        data.NewIdentityMatrix(m.Cols()),
		inverseColumnChange: data.NewIdentityMatrix(m.Cols()),
	}
}

// Matrix returns the current state of the manipulated matrix.
// The returned matrix is owned by the manipulator.
func (m *Manipulator) Matrix() data.Matrix {
	return m.matrix
}

// RowChange returns U such that U · original · V = current.
func (m *Manipulator) RowChange() data.Matrix {
	return m.rowChange
}

// InverseRowChange returns the inverse of RowChange.
func (m *Manipulator) InverseRowChange() data.Matrix {
	return m.inverseRowChange
}

// ColumnChange returns V such that U · original · V = current.
func (m *Manipulator) ColumnChange() data.Matrix {
	return m.columnChange
}

// InverseColumnChange returns the inverse of ColumnChange.
func (m *Manipulator) InverseColumnChange() data.Matrix {
	return m.inverseColumnChange
}

// Rows returns the number of rows of the manipulated matrix.
func (m *Manipulator) Rows() int {
	return m.matrix.Rows()
}

// Cols returns the number of columns of the manipulated matrix.
func (m *Manipulator) Cols() int {
	return m.matrix.Cols()
}

// ExchangeRows swaps rows i and j.
func (m *Manipulator) ExchangeRows(i, j int) {
	m.matrix.ExchangeRows(i, j)
	m.rowChange.ExchangeRows(i, j)
	m.inverseRowChange.ExchangeColumns(i, j)
}

// ExchangeColumns swaps columns i and j.
func (m *Manipulator) ExchangeColumns(i, j int) {
	m.matrix.ExchangeColumns(i, j)
	m.columnChange.ExchangeColumns(i, j)
	m.inverseColumnChange.ExchangeRows(i, j)
}

// NegateRow multiplies row i by -1.
func (m *Manipulator) NegateRow(i int) {
	m.matrix.NegateRow(i)
	m.rowChange.NegateRow(i)
	m.inverseRowChange.NegateColumn(i)
}

// NegateColumn multiplies column i by -1.
func (m *Manipulator) NegateColumn(i int) {
	m.matrix.NegateColumn(i)
	m.columnChange.NegateColumn(i)
	m.inverseColumnChange.NegateRow(i)
}

// AddMultipleOfRow adds k times row from to row to. The rows must differ.
func (m *Manipulator) AddMultipleOfRow(to, from int, k *big.Int) {
	m.matrix.AddMultipleOfRow(to, from, k)
	m.rowChange.AddMultipleOfRow(to, from, k)
	m.inverseRowChange.AddMultipleOfColumn(from, to, new(big.Int).Neg(k))
}

// AddMultipleOfColumn adds k times column from to column to. The
// columns must differ.
func (m *Manipulator) AddMultipleOfColumn(to, from int, k *big.Int) {
	m.matrix.AddMultipleOfColumn(to, from, k)
	m.columnChange.AddMultipleOfColumn(to, from, k)
	m.inverseColumnChange.AddMultipleOfRow(from, to, new(big.Int).Neg(k))
}

// ReduceRowsByPivot subtracts from every row below row the multiple
// of row given by floor division of its entry in column col by the
// pivot entry. Afterwards the entries of column col below the pivot
// are the remainders of that division. It does nothing if the pivot
// is zero.
func (m *Manipulator) ReduceRowsByPivot(row, col int) {
	pivot := m.matrix[row][col]
	if pivot.Sign() == 0 {
		return
	}
	for i := row + 1; i < m.Rows(); i++ {
		q := internal.FloorDiv(m.matrix[i][col], pivot)
		if q.Sign() != 0 {
			m.AddMultipleOfRow(i, row, q.Neg(q))
		}
	}
}

// ReduceColumnsByPivot is the column counterpart of ReduceRowsByPivot:
// it reduces the entries of row right of the pivot at (row, col).
func (m *Manipulator) ReduceColumnsByPivot(row, col int) {
	pivot := m.matrix[row][col]
	if pivot.Sign() == 0 {
		return
	}
	for j := col + 1; j < m.Cols(); j++ {
		q := internal.FloorDiv(m.matrix[row][j], pivot)
		if q.Sign() != 0 {
			m.AddMultipleOfColumn(j, col, q.Neg(q))
		}
	}
}

// validate checks that m is a non-empty rectangular matrix.
func validate(m data.Matrix) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return internal.ErrEmptyMatrix
	}
	for _, row := range m {
		if len(row) != m.Cols() {
			return internal.ErrRaggedMatrix
		}
	}

	return nil
}
