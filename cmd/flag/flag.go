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

package flag

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/streamnative/symtable/symtable"
)

func Impl(cmd *cobra.Command, conf *string) {
	cmd.Flags().StringVarP(conf, "impl", "i", "hash", "Table implementation: list or hash")
}

func HashFunc(cmd *cobra.Command, conf *string) {
	cmd.Flags().StringVar(conf, "hash-func", "poly", "Hash function: poly or xxh3")
}

func InitialCapacity(cmd *cobra.Command, conf *int) {
	cmd.Flags().IntVar(conf, "initial-capacity", 0, "Expected number of bindings, used to pre-size the hash table")
}

// ParseHashFunc resolves the hash-func flag value.
func ParseHashFunc(name string) (symtable.HashFunc, error) {
	switch name {
	case "poly":
		return symtable.PolynomialHash, nil
	case "xxh3":
		return symtable.XXH3Hash, nil
	default:
		return nil, errors.Errorf("unknown hash function: '%s'", name)
	}
}
