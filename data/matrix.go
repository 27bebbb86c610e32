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

package data

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/fentec-project/homology/sample"
)

// Matrix wraps a slice of Vector elements. It represents a row-major.
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
//
// Besides the value-returning operations, Matrix offers in-place
// elementary row and column operations (ExchangeRows, NegateRow,
// AddMultipleOfRow and their column counterparts). They panic when
// given an index out of range, the same way slice indexing does.
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, fmt.Errorf("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewMatrixFromInts builds a Matrix from rows of int64 values.
// It returns error if the rows are of different lengths.
func NewMatrixFromInts(rows [][]int64) (Matrix, error) {
	vectors := make([]Vector, len(rows))
	for i, row := range rows {
		vectors[i] = NewVectorFromInts(row...)
	}

	return NewMatrix(vectors)
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomMatrix(rows, cols int, sampler sample.Sampler) (Matrix, error) {
	mat := make([]Vector, rows)

	for i := 0; i < rows; i++ {
		vec, err := NewRandomVector(cols, sampler)
		if err != nil {
			return nil, err
		}

		mat[i] = vec
	}

	return NewMatrix(mat)
}

// NewRandomDetMatrix returns a new Matrix instance
// with random elements sampled by a pseudo-random
// number generator. Elements are sampled from [0, max) and key
// determines the pseudo-random generator.
func NewRandomDetMatrix(rows, cols int, max *big.Int, key *[32]byte) (Matrix, error) {
	l := rows * cols
	v, err := NewRandomDetVector(l, max, key)
	if err != nil {
		return nil, err
	}

	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewVector(v[(i * cols):((i + 1) * cols)])
	}

	return NewMatrix(mat)
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c *big.Int) Matrix {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewConstantVector(cols, c)
	}

	return mat
}

// NewZeroMatrix returns a rows x cols matrix of zeros.
func NewZeroMatrix(rows, cols int) Matrix {
	return NewConstantMatrix(rows, cols, big.NewInt(0))
}

// NewIdentityMatrix returns the n x n identity matrix.
func NewIdentityMatrix(n int) Matrix {
	mat := NewZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		mat[i][i].SetInt64(1)
	}

	return mat
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i >= m.Cols() {
		return nil, fmt.Errorf("column index exceeds matrix dimensions")
	}

	column := make([]*big.Int, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return NewVector(column), nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		col, _ := m.GetCol(i)
		transposed[i] = col.Copy()
	}

	mT, _ := NewMatrix(transposed)

	return mT
}

// Copy returns a deep copy of matrix m.
func (m Matrix) Copy() Matrix {
	res := make(Matrix, len(m))
	for i, v := range m {
		res[i] = v.Copy()
	}

	return res
}

// IsZero reports whether all entries of m are zero.
func (m Matrix) IsZero() bool {
	for _, v := range m {
		if !v.IsZero() {
			return false
		}
	}

	return true
}

// Equal reports whether m and other have the same
// dimensions and entries.
func (m Matrix) Equal(other Matrix) bool {
	if !m.DimsMatch(other) {
		return false
	}
	for i, v := range m {
		if !v.Equal(other[i]) {
			return false
		}
	}

	return true
}

// Sub subtracts matrix other from m.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Sub(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, fmt.Errorf("matrices mismatch in dimensions")
	}

	vecs := make([]Vector, m.Rows())

	for i, v := range m {
		vecs[i] = v.Sub(other[i])
	}

	return NewMatrix(vecs)
}

// Mul multiplies matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if the number of columns of m differs from
// the number of rows of other.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, fmt.Errorf("cannot multiply matrices")
	}

	prod := make([]Vector, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		prod[i] = make([]*big.Int, other.Cols())
		for j := 0; j < other.Cols(); j++ {
			otherCol, _ := other.GetCol(j)
			prod[i][j], _ = m[i].Dot(otherCol)
		}
	}

	return NewMatrix(prod)
}

// MulVec multiplies matrix m and vector v.
// It returns the resulting vector.
// Error is returned if the number of columns of m differs from the number
// of elements of v.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.Cols() != len(v) {
		return nil, fmt.Errorf("cannot multiply matrix by a vector")
	}

	res := make(Vector, m.Rows())
	for i, row := range m {
		res[i], _ = row.Dot(v)
	}

	return res, nil
}

// Minor returns a matrix obtained from m by removing row i and column j.
// It returns an error if i >= number of rows of m, or if j >= number of
// columns of m.
func (m Matrix) Minor(i int, j int) (Matrix, error) {
	if i >= m.Rows() || j >= m.Cols() {
		return nil, fmt.Errorf("cannot obtain minor - out of bounds")
	}
	mat := make(Matrix, m.Rows()-1)
	for k := 0; k < m.Rows(); k++ {
		if k == i {
			continue
		}
		vec := make(Vector, 0, len(m[0])-1)
		vec = append(vec, m[k][:j]...)
		vec = append(vec, m[k][j+1:]...)
		if k < i {
			mat[k] = vec
		} else {
			mat[k-1] = vec
		}
	}

	return NewMatrix(mat)
}

// Determinant returns the determinant of matrix m.
// It returns an error if the determinant does not exist.
func (m Matrix) Determinant() (*big.Int, error) {
	if m.Rows() == 0 || m.Rows() != m.Cols() {
		return nil, fmt.Errorf("determinant requires a non-empty square matrix")
	}
	if m.Rows() == 1 {
		return new(big.Int).Set(m[0][0]), nil
	}
	det := big.NewInt(0)
	sign := big.NewInt(1)
	for i := 0; i < m.Rows(); i++ {
		minor, err := m.Minor(0, i)
		if err != nil {
			return nil, err
		}
		value, err := minor.Determinant()
		if err != nil {
			return nil, err
		}
		value.Mul(value, m[0][i])
		value.Mul(value, sign)
		sign.Neg(sign)
		det.Add(det, value)
	}

	return det, nil
}

// ExchangeRows swaps rows i and j of m in place.
func (m Matrix) ExchangeRows(i, j int) {
	m.checkRow(i)
	m.checkRow(j)
	m[i], m[j] = m[j], m[i]
}

// ExchangeColumns swaps columns i and j of m in place.
func (m Matrix) ExchangeColumns(i, j int) {
	m.checkCol(i)
	m.checkCol(j)
	for _, row := range m {
		row[i], row[j] = row[j], row[i]
	}
}

// NegateRow multiplies row i of m by -1 in place.
func (m Matrix) NegateRow(i int) {
	m.checkRow(i)
	for _, c := range m[i] {
		c.Neg(c)
	}
}

// NegateColumn multiplies column i of m by -1 in place.
func (m Matrix) NegateColumn(i int) {
	m.checkCol(i)
	for _, row := range m {
		row[i].Neg(row[i])
	}
}

// AddMultipleOfRow adds k times row from to row to, in place.
func (m Matrix) AddMultipleOfRow(to, from int, k *big.Int) {
	m.checkRow(to)
	m.checkRow(from)
	prod := new(big.Int)
	for c := range m[to] {
		prod.Mul(k, m[from][c])
		m[to][c].Add(m[to][c], prod)
	}
}

// AddMultipleOfColumn adds k times column from to column to, in place.
func (m Matrix) AddMultipleOfColumn(to, from int, k *big.Int) {
	m.checkCol(to)
	m.checkCol(from)
	prod := new(big.Int)
	for _, row := range m {
		prod.Mul(k, row[from])
		row[to].Add(row[to], prod)
	}
}

func (m Matrix) checkRow(i int) {
	if i < 0 || i >= m.Rows() {
		panic(fmt.Sprintf("data: row index %d out of range [0, %d)", i, m.Rows()))
	}
}

func (m Matrix) checkCol(i int) {
	if i < 0 || i >= m.Cols() {
		panic(fmt.Sprintf("data: column index %d out of range [0, %d)", i, m.Cols()))
	}
}

// String produces a string representation of a matrix,
// one parenthesized row per line.
func (m Matrix) String() string {
	rows := make([]string, len(m))
	for i, v := range m {
		rows[i] = v.String()
	}

	return strings.Join(rows, "\n")
}
