// Copyright 2025 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package symtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolynomialHash(t *testing.T) {
	for _, test := range []struct {
		key      string
		expected uint64
	}{
		{"", 0},
		{"a", 97},
		{"ab", 6363201},
		{"abc", 417419622498},
	} {
		t.Run(test.key, func(t *testing.T) {
			hash := PolynomialHash(test.key)
			assert.Equal(t, test.expected, hash)
		})
	}
}

func TestPolynomialHashDistinct(t *testing.T) {
	// not a distribution test, just a guard against degenerate collisions
	// on near-identical keys
	assert.NotEqual(t, PolynomialHash("ab"), PolynomialHash("ba"))
	assert.NotEqual(t, PolynomialHash("k1"), PolynomialHash("k2"))
}

func TestXXH3Hash(t *testing.T) {
	for _, test := range []struct {
		key      string
		expected uint32
	}{
		{"foo", 125730186},
		{"bar", 2687685474},
		{"baz", 862947621},
	} {
		t.Run(test.key, func(t *testing.T) {
			hash := uint32(XXH3Hash(test.key))
			assert.Equal(t, test.expected, hash)
		})
	}
}
