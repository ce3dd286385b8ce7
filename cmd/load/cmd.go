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

package load

import (
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/streamnative/symtable/cmd/flag"
	"github.com/streamnative/symtable/common/metrics"
	"github.com/streamnative/symtable/common/process"
	"github.com/streamnative/symtable/symtable"
)

var (
	Config = flags{}

	Cmd = &cobra.Command{
		Use:   "load",
		Short: "Load synthetic bindings into a hash table",
		Long:  `Insert randomly keyed bindings into a hash table and report the resulting table layout`,
		Args:  cobra.NoArgs,
		RunE:  exec,
	}
)

type flags struct {
	bindings           int
	hashFunc           string
	initialCapacity    int
	metricsBindAddress string
}

func init() {
	Cmd.Flags().IntVarP(&Config.bindings, "bindings", "n", 100_000, "Number of bindings to insert")
	flag.HashFunc(Cmd, &Config.hashFunc)
	flag.InitialCapacity(Cmd, &Config.initialCapacity)
	Cmd.Flags().StringVar(&Config.metricsBindAddress, "metrics-bind-address", "", "If set, keep serving Prometheus metrics at this address after the load")
}

// report is the YAML summary printed after the load.
type report struct {
	Bindings    string `yaml:"bindings"`
	BucketCount string `yaml:"bucket_count"`
	Rehashes    int    `yaml:"rehashes"`
}

func exec(cmd *cobra.Command, _ []string) error {
	hashFn, err := flag.ParseHashFunc(Config.hashFunc)
	if err != nil {
		return err
	}

	table := symtable.NewHashTable[string](
		symtable.WithHashFunc(hashFn),
		symtable.WithInitialCapacity(Config.initialCapacity),
	)

	labels := metrics.LabelsForTable("hash")
	inserts := metrics.NewCounter("symtable_inserts",
		"The total number of insert operations", metrics.Dimensionless, labels)
	rehashes := metrics.NewCounter("symtable_rehashes",
		"The total number of bucket array rehashes", metrics.Dimensionless, labels)
	metrics.NewGauge("symtable_bindings",
		"The current number of live bindings", metrics.Dimensionless, labels,
		func() int64 { return int64(table.Len()) })

	lastRehashes := 0
	for i := 0; i < Config.bindings; i++ {
		key := uuid.NewString()
		if table.Put(key, key) {
			inserts.Inc()
		}

		if stats := table.Stats(); stats.Rehashes != lastRehashes {
			rehashes.Add(stats.Rehashes - lastRehashes)
			lastRehashes = stats.Rehashes
		}
	}

	stats := table.Stats()
	slog.Info(
		"Load completed",
		slog.String("bindings", humanize.Comma(int64(stats.Bindings))),
		slog.String("bucket-count", humanize.Comma(int64(stats.BucketCount))),
		slog.Int("rehashes", stats.Rehashes),
	)

	out, err := yaml.Marshal(report{
		Bindings:    humanize.Comma(int64(stats.Bindings)),
		BucketCount: humanize.Comma(int64(stats.BucketCount)),
		Rehashes:    stats.Rehashes,
	})
	if err != nil {
		return err
	}
	if _, err = cmd.OutOrStdout().Write(out); err != nil {
		return err
	}

	if Config.metricsBindAddress != "" {
		var promMetrics io.Closer
		if promMetrics, err = metrics.Start(Config.metricsBindAddress); err != nil {
			return err
		}
		process.WaitUntilSignal(promMetrics)
	}
	return nil
}
