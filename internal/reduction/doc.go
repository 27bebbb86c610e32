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

// Package reduction implements exact integer matrix reductions:
// row echelon form, Smith normal form, and the kernel and image of an
// integer matrix derived from them.
//
// Every reduction owns a private copy of its input, applies unimodular
// row and column operations to it through a Manipulator, and publishes
// the result as a read-only snapshot once the computation is complete.
// The change matrices are tracked along the way, with the convention
//
//	RowChange · original · ColumnChange = current
//
// and InverseRowChange, InverseColumnChange being their integer
// inverses.
package reduction
