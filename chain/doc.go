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

// Package chain computes the (co)homology of chain and cochain
// complexes of ℤ-modules.
//
// A cochain complex C⁰ → C¹ → … → Cⁿ⁻¹ → 0 is given by its modules and
// the maps dᵢ: Cⁱ → Cⁱ⁺¹; its i-th cohomology group is
// ker dᵢ / im dᵢ₋₁. A chain complex uses boundary maps
// ∂ᵢ: Cᵢ → Cᵢ₋₁ instead and its i-th homology group is
// ker ∂ᵢ / im ∂ᵢ₊₁.
//
// Neither constructor checks that consecutive maps compose to zero;
// pass WithComplexCheck to verify it before computing.
package chain

import (
	"github.com/fentec-project/homology/internal"
)

// Errors returned by this package. Returned errors may carry context;
// match them with errors.Is.
var (
	ErrEmptyComplex   = internal.ErrEmptyComplex
	ErrLengthMismatch = internal.ErrLengthMismatch
	ErrNotComplex     = internal.ErrNotComplex
	ErrModuleMismatch = internal.ErrModuleMismatch
)
