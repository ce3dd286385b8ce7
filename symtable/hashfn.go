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
	"github.com/zeebo/xxh3"
)

// HashFunc maps a key to an unsigned hash code. The hash table reduces the
// code modulo its current bucket count.
type HashFunc func(key string) uint64

const polynomialMultiplier = 65599

// PolynomialHash is the default hash function: polynomial accumulation over
// the key bytes with multiplier 65599 and natural uint64 wraparound. The
// multiplier must not change: golden test vectors depend on it.
func PolynomialHash(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = h*polynomialMultiplier + uint64(key[i])
	}
	return h
}

// XXH3Hash is an alternative hash function based on XXH3, for callers that
// prefer distribution quality over compatibility with the polynomial hash.
func XXH3Hash(key string) uint64 {
	return xxh3.HashString(key)
}
