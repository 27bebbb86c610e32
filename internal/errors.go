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

package internal

import "errors"

// Shape errors.
var (
	ErrEmptyMatrix       = errors.New("matrix must have at least one row and one column")
	ErrRaggedMatrix      = errors.New("all rows of a matrix must have equal length")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Domain errors.
var (
	ErrNegativeRank        = errors.New("rank must be non-negative")
	ErrInvalidTorsion      = errors.New("every torsion number must be at least 2")
	ErrModuleMismatch      = errors.New("elements or homomorphisms belong to different modules")
	ErrTooFewMultipliers   = errors.New("at least 2 tensor multipliers must be provided")
	ErrInvalidHomomorphism = errors.New("matrix does not describe a homomorphism between the modules")
)

// Unsatisfiable requests.
var ErrNotSpanned = errors.New("generators do not span the relations")

// Complex errors.
var (
	ErrEmptyComplex   = errors.New("a complex needs at least one module")
	ErrLengthMismatch = errors.New("modules and homomorphisms length mismatch")
	ErrNotComplex     = errors.New("consecutive homomorphisms do not compose to zero")
)
