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
	"log/slog"
	"strings"
)

// bucketCounts is the fixed ascending sequence of prime capacities the hash
// table grows through, each roughly double the previous. The table starts at
// the first entry, advances one step per rehash and never shrinks. Past the
// last entry it keeps operating at fixed capacity with longer chains.
var bucketCounts = []int{509, 1021, 2039, 4093, 8191, 16381, 32749, 65521}

// HashTable is the hash implementation of Table. It additionally exposes a
// snapshot of its internal layout for callers that report on the table.
type HashTable[V any] interface {
	Table[V]

	// Stats returns a snapshot of the table layout. It carries no timing
	// information.
	Stats() Stats
}

// Stats is a point-in-time snapshot of a hash table's layout.
type Stats struct {
	Bindings    int `json:"bindings" yaml:"bindings"`
	BucketCount int `json:"bucket_count" yaml:"bucket_count"`
	Rehashes    int `json:"rehashes" yaml:"rehashes"`
}

type hashOptions struct {
	hashFunc        HashFunc
	initialCapacity int
}

// Option configures a hash table at construction time.
type Option func(*hashOptions)

// WithHashFunc overrides the default PolynomialHash.
func WithHashFunc(fn HashFunc) Option {
	return func(o *hashOptions) {
		o.hashFunc = fn
	}
}

// WithInitialCapacity starts the table at the first entry of the capacity
// sequence that is >= n, clamped to the last entry. Useful when the caller
// knows the expected size up front and wants to skip the early rehashes.
func WithInitialCapacity(n int) Option {
	return func(o *hashOptions) {
		o.initialCapacity = n
	}
}

// hashBinding is one node of a bucket chain. Bindings are relinked, never
// reallocated, when the table grows.
type hashBinding[V any] struct {
	key   string
	value V
	next  *hashBinding[V]
}

type hashTable[V any] struct {
	buckets  []*hashBinding[V]
	length   int
	capIndex int
	rehashes int
	hashFunc HashFunc
}

// NewHashTable creates an empty hash-backed symbol table.
func NewHashTable[V any](opts ...Option) HashTable[V] {
	options := hashOptions{
		hashFunc:        PolynomialHash,
		initialCapacity: bucketCounts[0],
	}
	for _, o := range opts {
		o(&options)
	}

	capIndex := 0
	for capIndex < len(bucketCounts)-1 && bucketCounts[capIndex] < options.initialCapacity {
		capIndex++
	}

	return &hashTable[V]{
		buckets:  make([]*hashBinding[V], bucketCounts[capIndex]),
		capIndex: capIndex,
		hashFunc: options.hashFunc,
	}
}

func (t *hashTable[V]) bucketIndex(key string) int {
	return int(t.hashFunc(key) % uint64(len(t.buckets)))
}

func (t *hashTable[V]) lookup(key string) *hashBinding[V] {
	for b := t.buckets[t.bucketIndex(key)]; b != nil; b = b.next {
		if b.key == key {
			return b
		}
	}
	return nil
}

func (t *hashTable[V]) Len() int {
	return t.length
}

func (t *hashTable[V]) Empty() bool {
	return t.length == 0
}

func (t *hashTable[V]) Put(key string, value V) bool {
	idx := t.bucketIndex(key)
	for b := t.buckets[idx]; b != nil; b = b.next {
		if b.key == key {
			return false
		}
	}

	t.buckets[idx] = &hashBinding[V]{
		key:   key,
		value: value,
		next:  t.buckets[idx],
	}
	t.length++

	// The growth check runs after every single insertion, so >= only ever
	// matches on equality today. It stays >= so that a future bulk insert
	// cannot step over the boundary.
	if t.length >= bucketCounts[t.capIndex] && t.capIndex+1 < len(bucketCounts) {
		t.grow()
	}
	return true
}

// grow relinks every binding into a bucket array sized to the next prime of
// the capacity sequence. The new array is fully built before it replaces the
// old one, so the table is never observable in a mixed state.
func (t *hashTable[V]) grow() {
	newCount := bucketCounts[t.capIndex+1]
	buckets := make([]*hashBinding[V], newCount)

	for _, b := range t.buckets {
		for b != nil {
			next := b.next
			idx := int(t.hashFunc(b.key) % uint64(newCount))
			b.next = buckets[idx]
			buckets[idx] = b
			b = next
		}
	}

	t.buckets = buckets
	t.capIndex++
	t.rehashes++

	slog.Debug(
		"Rehashed symbol table",
		slog.Int("bindings", t.length),
		slog.Int("bucket-count", newCount),
	)
}

func (t *hashTable[V]) Replace(key string, value V) (V, bool) {
	if b := t.lookup(key); b != nil {
		prev := b.value
		b.value = value
		return prev, true
	}

	var zero V
	return zero, false
}

func (t *hashTable[V]) Contains(key string) bool {
	return t.lookup(key) != nil
}

func (t *hashTable[V]) Get(key string) (V, bool) {
	if b := t.lookup(key); b != nil {
		return b.value, true
	}

	var zero V
	return zero, false
}

func (t *hashTable[V]) Remove(key string) (V, bool) {
	idx := t.bucketIndex(key)

	var prev *hashBinding[V]
	for b := t.buckets[idx]; b != nil; b = b.next {
		if b.key == key {
			if prev == nil {
				t.buckets[idx] = b.next
			} else {
				prev.next = b.next
			}
			t.length--
			return b.value, true
		}
		prev = b
	}

	var zero V
	return zero, false
}

func (t *hashTable[V]) ForEach(fn func(key string, value V)) {
	for _, bucket := range t.buckets {
		for b := bucket; b != nil; b = b.next {
			fn(b.key, b.value)
		}
	}
}

func (t *hashTable[V]) Keys() []string {
	keys := make([]string, 0, t.length)
	t.ForEach(func(key string, _ V) {
		keys = append(keys, key)
	})
	return keys
}

func (t *hashTable[V]) Values() []V {
	values := make([]V, 0, t.length)
	t.ForEach(func(_ string, value V) {
		values = append(values, value)
	})
	return values
}

// Clear drops every binding but keeps the current bucket count: the table
// never shrinks.
func (t *hashTable[V]) Clear() {
	t.buckets = make([]*hashBinding[V], len(t.buckets))
	t.length = 0
}

func (t *hashTable[V]) Stats() Stats {
	return Stats{
		Bindings:    t.length,
		BucketCount: len(t.buckets),
		Rehashes:    t.rehashes,
	}
}

func (t *hashTable[V]) String() string {
	var builder strings.Builder
	builder.WriteString("{")

	first := true
	t.ForEach(func(key string, value V) {
		if !first {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("%v: %v", key, value))
		first = false
	})
	builder.WriteString("}")
	return builder.String()
}
