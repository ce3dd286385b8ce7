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

// Package symtable provides a symbol table: an associative container that
// maps unique string keys to opaque values. Two interchangeable
// implementations are offered behind the same interface, a singly linked
// list of bindings (correctness baseline, O(n) per operation) and a hash
// table with chained buckets that grows through a fixed sequence of prime
// capacities (amortized O(1) expected case).
//
// Tables are not safe for concurrent use. Callers that share a table across
// goroutines must serialize access themselves.
package symtable

// Table is the symbol table contract shared by both implementations.
//
// Values are opaque to the table: they are stored and handed back without
// ever being inspected or copied. The absent-marker for Replace, Get and
// Remove is the (zero value, false) pair, which is never conflated with a
// stored zero value.
type Table[V any] interface {
	// Len returns the number of live bindings.
	Len() int

	// Empty reports whether the table holds no bindings.
	Empty() bool

	// Put inserts a new binding. It returns false, leaving the existing
	// binding untouched, when the key is already present.
	Put(key string, value V) bool

	// Replace swaps the value of an existing binding and returns the
	// previous one. It does not insert when the key is absent.
	Replace(key string, value V) (prev V, ok bool)

	// Contains reports whether a binding with the given key exists.
	Contains(key string) bool

	// Get returns the value bound to the given key.
	Get(key string) (V, bool)

	// Remove unlinks the binding for the given key and returns its value.
	Remove(key string) (V, bool)

	// ForEach visits every live binding exactly once. The visit order is
	// implementation defined. Inserting or removing bindings from within
	// the callback is undefined; calling Replace from the callback is the
	// supported way to update a value in place.
	ForEach(fn func(key string, value V))

	// Keys returns the keys of all live bindings, in visit order.
	Keys() []string

	// Values returns the values of all live bindings, in visit order.
	Values() []V

	// Clear drops every binding. The table remains usable as if freshly
	// created.
	Clear()

	String() string
}
