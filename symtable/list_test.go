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

func TestListTableVisitOrder(t *testing.T) {
	table := NewListTable[int]()
	table.Put("first", 1)
	table.Put("second", 2)
	table.Put("third", 3)

	// insertion prepends, so the chain is most-recently-inserted first
	assert.Equal(t, []string{"third", "second", "first"}, table.Keys())
	assert.Equal(t, []int{3, 2, 1}, table.Values())
	assert.Equal(t, "{third: 3, second: 2, first: 1}", table.String())
}

func TestListTableRemoveHead(t *testing.T) {
	table := NewListTable[int]()
	table.Put("a", 1)
	table.Put("b", 2)
	table.Put("c", 3)

	value, ok := table.Remove("c")
	assert.True(t, ok)
	assert.Equal(t, 3, value)
	assert.Equal(t, []string{"b", "a"}, table.Keys())
}

func TestListTableRemoveMiddle(t *testing.T) {
	table := NewListTable[int]()
	table.Put("a", 1)
	table.Put("b", 2)
	table.Put("c", 3)

	value, ok := table.Remove("b")
	assert.True(t, ok)
	assert.Equal(t, 2, value)
	assert.Equal(t, []string{"c", "a"}, table.Keys())
}

func TestListTableRemoveTail(t *testing.T) {
	table := NewListTable[int]()
	table.Put("a", 1)
	table.Put("b", 2)
	table.Put("c", 3)

	value, ok := table.Remove("a")
	assert.True(t, ok)
	assert.Equal(t, 1, value)
	assert.Equal(t, []string{"c", "b"}, table.Keys())

	// drain the remaining bindings
	_, ok = table.Remove("b")
	assert.True(t, ok)
	_, ok = table.Remove("c")
	assert.True(t, ok)
	assert.True(t, table.Empty())
	assert.Nil(t, (table.(*listTable[int])).head)
}
