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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashTableInitialLayout(t *testing.T) {
	table := NewHashTable[int]()

	stats := table.Stats()
	assert.Equal(t, 0, stats.Bindings)
	assert.Equal(t, 509, stats.BucketCount)
	assert.Equal(t, 0, stats.Rehashes)
}

func TestHashTableGrowth(t *testing.T) {
	table := NewHashTable[int]()

	for i := 0; i < 508; i++ {
		require.True(t, table.Put(fmt.Sprintf("k%d", i), i))
	}
	assert.Equal(t, 509, table.Stats().BucketCount)
	assert.Equal(t, 0, table.Stats().Rehashes)

	// the 509th insert fills the table exactly and triggers the rehash
	require.True(t, table.Put("k508", 508))
	stats := table.Stats()
	assert.Equal(t, 509, stats.Bindings)
	assert.Equal(t, 1021, stats.BucketCount)
	assert.Equal(t, 1, stats.Rehashes)

	// every binding survives the rehash with its value
	for i := 0; i < 509; i++ {
		value, ok := table.Get(fmt.Sprintf("k%d", i))
		require.True(t, ok, "key k%d lost in rehash", i)
		require.Equal(t, i, value)
	}

	value, ok := table.Get("k0")
	assert.True(t, ok)
	assert.Equal(t, 0, value)
	value, ok = table.Get("k508")
	assert.True(t, ok)
	assert.Equal(t, 508, value)
}

func TestHashTableGrowthSequence(t *testing.T) {
	table := NewHashTable[int]()

	for i := 0; i < 2039; i++ {
		require.True(t, table.Put(fmt.Sprintf("k%d", i), i))
	}

	stats := table.Stats()
	assert.Equal(t, 2039, stats.Bindings)
	assert.Equal(t, 4093, stats.BucketCount)
	assert.Equal(t, 3, stats.Rehashes)

	assert.Equal(t, 2039, table.Len())
	for i := 0; i < 2039; i += 97 {
		assert.True(t, table.Contains(fmt.Sprintf("k%d", i)))
	}
}

func TestHashTableForEachAcrossGrowth(t *testing.T) {
	table := NewHashTable[int]()

	for i := 0; i < 600; i++ {
		require.True(t, table.Put(fmt.Sprintf("k%d", i), i))
	}

	visited := make(map[string]int)
	table.ForEach(func(key string, value int) {
		_, seen := visited[key]
		require.False(t, seen, "binding visited twice: %s", key)
		visited[key] = value
	})
	assert.Equal(t, 600, len(visited))
}

func TestHashTableInitialCapacity(t *testing.T) {
	for _, test := range []struct {
		requested int
		expected  int
	}{
		{0, 509},
		{509, 509},
		{510, 1021},
		{5000, 8191},
		{1 << 20, 65521},
	} {
		t.Run(fmt.Sprintf("%d", test.requested), func(t *testing.T) {
			table := NewHashTable[int](WithInitialCapacity(test.requested))
			assert.Equal(t, test.expected, table.Stats().BucketCount)
		})
	}
}

func TestHashTableMaxCapacity(t *testing.T) {
	table := NewHashTable[int](WithInitialCapacity(65521))
	require.Equal(t, 65521, table.Stats().BucketCount)

	for i := 0; i < 66000; i++ {
		require.True(t, table.Put(fmt.Sprintf("k%d", i), i))
	}

	// past the last prime the table keeps its capacity and just runs with
	// longer chains
	stats := table.Stats()
	assert.Equal(t, 66000, stats.Bindings)
	assert.Equal(t, 65521, stats.BucketCount)
	assert.Equal(t, 0, stats.Rehashes)

	value, ok := table.Get("k65999")
	assert.True(t, ok)
	assert.Equal(t, 65999, value)
}

func TestHashTableCustomHashFunc(t *testing.T) {
	table := NewHashTable[int](WithHashFunc(XXH3Hash))

	for i := 0; i < 100; i++ {
		require.True(t, table.Put(fmt.Sprintf("k%d", i), i))
	}
	for i := 0; i < 100; i++ {
		value, ok := table.Get(fmt.Sprintf("k%d", i))
		require.True(t, ok)
		require.Equal(t, i, value)
	}
}

func TestHashTableCollidingKeys(t *testing.T) {
	// a constant hash forces every binding into one chain, exercising the
	// per-bucket scan and unlink paths
	table := NewHashTable[int](WithHashFunc(func(string) uint64 { return 0 }))

	table.Put("a", 1)
	table.Put("b", 2)
	table.Put("c", 3)
	assert.Equal(t, 3, table.Len())

	value, ok := table.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, value)

	value, ok = table.Remove("b")
	assert.True(t, ok)
	assert.Equal(t, 2, value)
	assert.False(t, table.Contains("b"))
	assert.True(t, table.Contains("a"))
	assert.True(t, table.Contains("c"))

	assert.False(t, table.Put("a", 10))
	assert.Equal(t, 2, table.Len())
}

func TestHashTableClearKeepsCapacity(t *testing.T) {
	table := NewHashTable[int]()
	for i := 0; i < 600; i++ {
		table.Put(fmt.Sprintf("k%d", i), i)
	}
	require.Equal(t, 1021, table.Stats().BucketCount)

	table.Clear()
	stats := table.Stats()
	assert.Equal(t, 0, stats.Bindings)
	assert.Equal(t, 1021, stats.BucketCount)

	assert.True(t, table.Put("k0", 1))
	assert.Equal(t, 1, table.Len())
}
