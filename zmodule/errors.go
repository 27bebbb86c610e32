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

import "github.com/fentec-project/homology/internal"

// Errors returned by this package. Returned errors may carry context;
// match them with errors.Is.
var (
	ErrEmptyMatrix         = internal.ErrEmptyMatrix
	ErrRaggedMatrix        = internal.ErrRaggedMatrix
	ErrDimensionMismatch   = internal.ErrDimensionMismatch
	ErrNegativeRank        = internal.ErrNegativeRank
	ErrInvalidTorsion      = internal.ErrInvalidTorsion
	ErrModuleMismatch      = internal.ErrModuleMismatch
	ErrTooFewMultipliers   = internal.ErrTooFewMultipliers
	ErrInvalidHomomorphism = internal.ErrInvalidHomomorphism
	ErrNotSpanned          = internal.ErrNotSpanned
)
