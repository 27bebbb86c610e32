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
package sample_test

import (
	"math/big"
	"testing"

	"github.com/fentec-project/homology/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformRange(t *testing.T) {
	sampler := sample.NewUniformRange(big.NewInt(-5), big.NewInt(5))
	for i := 0; i < 100; i++ {
		x, err := sampler.Sample()
		require.NoError(t, err)
		assert.True(t, x.Cmp(big.NewInt(-5)) >= 0 && x.Cmp(big.NewInt(5)) < 0, "sample out of range: %v", x)
	}

	_, err := sample.NewUniformRange(big.NewInt(3), big.NewInt(3)).Sample()
	assert.Error(t, err)
}

func TestUniformRange_SingleValue(t *testing.T) {
	x, err := sample.NewUniformRange(big.NewInt(7), big.NewInt(8)).Sample()
	require.NoError(t, err)
	assert.Equal(t, "7", x.String())
}
