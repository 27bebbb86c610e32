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

// KernelAndImage describes the kernel and the image of the map
// x ↦ M·x given by an integer matrix M.
type KernelAndImage struct {
	kernel []data.Vector
	image  []data.Vector
}

// NewKernelAndImage computes a basis of the kernel and a basis of the
// image of m, viewed as a map from ℤ^Cols to ℤ^Rows.
//
// The transpose of m is brought to row echelon form. The rows of the
// change matrix beyond the rank span the kernel and the nonzero rows
// of the echelon form span the image.
func NewKernelAndImage(m data.Matrix) (*KernelAndImage, error) {
	if err := validate(m); err != nil {
		return nil, err
	}

	echelon, err := NewRowEchelon(m.Transpose())
	if err != nil {
		return nil, err
	}

	rank := echelon.Rank()
	change := echelon.Change()
	reduced := echelon.Matrix()

	kernel := make([]data.Vector, 0, len(change)-rank)
	for _, row := range change[rank:] {
		kernel = append(kernel, row)
	}
	image := make([]data.Vector, 0, rank)
	for _, row := range reduced[:rank] {
		image = append(image, row)
	}

	return &KernelAndImage{
		kernel: kernel,
		image:  image,
	}, nil
}

// Kernel returns a basis of the kernel.
func (k *KernelAndImage) Kernel() []data.Vector {
	return copyVectors(k.kernel)
}

// Image returns a basis of the image.
func (k *KernelAndImage) Image() []data.Vector {
	return copyVectors(k.image)
}

func copyVectors(vectors []data.Vector) []data.Vector {
	c := make([]data.Vector, len(vectors))
	for i, v := range vectors {
		c[i] = v.Copy()
	}

	return c
}
