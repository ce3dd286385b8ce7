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
	"strings"
)

// listBinding is one node of the list table chain.
type listBinding[V any] struct {
	key   string
	value V
	next  *listBinding[V]
}

// listTable is the correctness-baseline implementation: a singly linked
// chain of bindings, scanned linearly. Insertion prepends, so ForEach visits
// the most recently inserted binding first.
type listTable[V any] struct {
	head   *listBinding[V]
	length int
}

// NewListTable creates an empty list-backed symbol table.
func NewListTable[V any]() Table[V] {
	return &listTable[V]{}
}

func (t *listTable[V]) Len() int {
	return t.length
}

func (t *listTable[V]) Empty() bool {
	return t.length == 0
}

func (t *listTable[V]) Put(key string, value V) bool {
	if t.Contains(key) {
		return false
	}

	t.head = &listBinding[V]{
		key:   key,
		value: value,
		next:  t.head,
	}
	t.length++
	return true
}

func (t *listTable[V]) Replace(key string, value V) (V, bool) {
	for b := t.head; b != nil; b = b.next {
		if b.key == key {
			prev := b.value
			b.value = value
			return prev, true
		}
	}

	var zero V
	return zero, false
}

func (t *listTable[V]) Contains(key string) bool {
	for b := t.head; b != nil; b = b.next {
		if b.key == key {
			return true
		}
	}
	return false
}

func (t *listTable[V]) Get(key string) (V, bool) {
	for b := t.head; b != nil; b = b.next {
		if b.key == key {
			return b.value, true
		}
	}

	var zero V
	return zero, false
}

func (t *listTable[V]) Remove(key string) (V, bool) {
	var prev *listBinding[V]
	for b := t.head; b != nil; b = b.next {
		if b.key == key {
			if prev == nil {
				t.head = b.next
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

func (t *listTable[V]) ForEach(fn func(key string, value V)) {
	for b := t.head; b != nil; b = b.next {
		fn(b.key, b.value)
	}
}

func (t *listTable[V]) Keys() []string {
	keys := make([]string, 0, t.length)
	for b := t.head; b != nil; b = b.next {
		keys = append(keys, b.key)
	}
	return keys
}

func (t *listTable[V]) Values() []V {
	values := make([]V, 0, t.length)
	for b := t.head; b != nil; b = b.next {
		values = append(values, b.value)
	}
	return values
}

func (t *listTable[V]) Clear() {
	t.head = nil
	t.length = 0
}

func (t *listTable[V]) String() string {
	var builder strings.Builder
	builder.WriteString("{")

	first := true
	for b := t.head; b != nil; b = b.next {
		if !first {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("%v: %v", b.key, b.value))
		first = false
	}
	builder.WriteString("}")
	return builder.String()
}
