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

package apply

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/streamnative/symtable/cmd/flag"
	"github.com/streamnative/symtable/symtable"
)

var (
	Config = flags{}

	ErrUnknownOperation      = errors.New("unknown operation")
	ErrUnknownImplementation = errors.New("unknown table implementation")
	ErrStatsNotSupported     = errors.New("stats is only supported by the hash implementation")

	Cmd = &cobra.Command{
		Use:   "apply",
		Short: "Apply operations to a symbol table",
		Long:  `Read operations as JSON lines from a file or stdin, apply them in order to a fresh symbol table and emit one JSON result per operation`,
		Args:  cobra.NoArgs,
		RunE:  exec,
	}
)

type flags struct {
	impl            string
	hashFunc        string
	initialCapacity int
	file            string
	output          string
}

func init() {
	flag.Impl(Cmd, &Config.impl)
	flag.HashFunc(Cmd, &Config.hashFunc)
	flag.InitialCapacity(Cmd, &Config.initialCapacity)
	Cmd.Flags().StringVar(&Config.file, "file", "", "Read operations from this file instead of stdin")
	Cmd.Flags().StringVarP(&Config.output, "output", "o", "", "Write results to this file instead of stdout")
}

// operation is one JSON line of the input script.
type operation struct {
	Op     string `json:"op"`
	Key    string `json:"key"`
	Value  string `json:"value"`
	Sorted bool   `json:"sorted,omitempty"`
}

// result is the JSON line emitted for each operation.
type result struct {
	Op       string          `json:"op"`
	Key      string          `json:"key,omitempty"`
	Inserted *bool           `json:"inserted,omitempty"`
	Found    *bool           `json:"found,omitempty"`
	Value    *string         `json:"value,omitempty"`
	Prev     *string         `json:"prev,omitempty"`
	Size     *int            `json:"size,omitempty"`
	Keys     []string        `json:"keys,omitempty"`
	Stats    *symtable.Stats `json:"stats,omitempty"`
}

func exec(cmd *cobra.Command, _ []string) error {
	in := cmd.InOrStdin()
	if Config.file != "" {
		f, err := os.Open(Config.file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	if Config.output != "" {
		f, err := os.Create(Config.output)
		if err != nil {
			return err
		}
		return multierr.Combine(_exec(Config, in, f), f.Close())
	}

	return _exec(Config, in, out)
}

func _exec(flags flags, in io.Reader, out io.Writer) error {
	table, err := newTable(flags)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	scanner := bufio.NewScanner(in)
	for line := 1; scanner.Scan(); line++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var op operation
		if err := json.Unmarshal(scanner.Bytes(), &op); err != nil {
			return errors.Wrapf(err, "invalid operation at line %d", line)
		}

		res, err := applyOperation(table, op)
		if err != nil {
			return errors.Wrapf(err, "failed to apply operation at line %d", line)
		}
		if err := encoder.Encode(res); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func newTable(flags flags) (symtable.Table[string], error) {
	switch flags.impl {
	case "list":
		return symtable.NewListTable[string](), nil
	case "hash":
		hashFn, err := flag.ParseHashFunc(flags.hashFunc)
		if err != nil {
			return nil, err
		}
		return symtable.NewHashTable[string](
			symtable.WithHashFunc(hashFn),
			symtable.WithInitialCapacity(flags.initialCapacity),
		), nil
	default:
		return nil, errors.Wrap(ErrUnknownImplementation, flags.impl)
	}
}

func applyOperation(table symtable.Table[string], op operation) (result, error) {
	res := result{Op: op.Op, Key: op.Key}

	switch op.Op {
	case "put":
		inserted := table.Put(op.Key, op.Value)
		res.Inserted = &inserted

	case "get":
		value, found := table.Get(op.Key)
		res.Found = &found
		if found {
			res.Value = &value
		}

	case "replace":
		prev, found := table.Replace(op.Key, op.Value)
		res.Found = &found
		if found {
			res.Prev = &prev
		}

	case "contains":
		found := table.Contains(op.Key)
		res.Found = &found

	case "delete":
		value, found := table.Remove(op.Key)
		res.Found = &found
		if found {
			res.Value = &value
		}

	case "size":
		size := table.Len()
		res.Size = &size

	case "list":
		res.Key = ""
		if op.Sorted {
			res.Keys = sortedKeys(table)
		} else {
			res.Keys = table.Keys()
		}

	case "stats":
		res.Key = ""
		hashTable, ok := table.(symtable.HashTable[string])
		if !ok {
			return result{}, ErrStatsNotSupported
		}
		stats := hashTable.Stats()
		res.Stats = &stats

	default:
		return result{}, errors.Wrap(ErrUnknownOperation, op.Op)
	}

	return res, nil
}

func sortedKeys(table symtable.Table[string]) []string {
	tm := treemap.NewWithStringComparator()
	table.ForEach(func(key string, _ string) {
		tm.Put(key, nil)
	})

	keys := make([]string, 0, tm.Size())
	for _, key := range tm.Keys() {
		keys = append(keys, key.(string))
	}
	return keys
}
