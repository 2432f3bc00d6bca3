// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"os"
	"time"

	"github.com/consensys/go-polymac/pkg/polymac"
	"github.com/dustin/go-humanize"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/poly1305"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "measure authentication throughput over a range of message sizes.",
	Long: `Measure single-shot tag throughput for a sweep of message sizes, comparing
this implementation against poly1305 and HMAC-SHA256. Results are printed as
a table, and optionally rendered to an HTML bar chart with --chart.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		sizes := GetIntArray(cmd, "sizes")
		results := runBenchmarks(sizes)
		printBenchmarks(sizes, results)
		//
		if chart := GetString(cmd, "chart"); chart != "" {
			if err := writeBenchChart(chart, sizes, results); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		}
	},
}

// benchCandidates names the implementations under comparison, in the order
// they are measured and reported.
var benchCandidates = []string{"go-polymac", "poly1305", "hmac-sha256"}

// runBenchmarks measures throughput (bytes per second) for every candidate
// at every message size. Rows are indexed by candidate, columns by size.
func runBenchmarks(sizes []int) [][]float64 {
	var key [polymac.KeySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	results := make([][]float64, len(benchCandidates))
	for i := range results {
		results[i] = make([]float64, len(sizes))
	}
	//
	for j, size := range sizes {
		msg := make([]byte, size)
		if _, err := rand.Read(msg); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		results[0][j] = measure(size, func() {
			polymac.Sum(&key, msg)
		})
		results[1][j] = measure(size, func() {
			var out [16]byte
			poly1305.Sum(&out, msg, &key)
		})
		results[2][j] = measure(size, func() {
			mac := hmac.New(sha256.New, key[:])
			mac.Write(msg)
			mac.Sum(nil)
		})
		//
		log.Debugf("completed sweep for %s messages", humanize.IBytes(uint64(size)))
	}
	//
	return results
}

// measure runs fn repeatedly for a fixed wall-clock window and reports the
// aggregate throughput in bytes per second.
func measure(size int, fn func()) float64 {
	const window = 250 * time.Millisecond
	// Warm up
	fn()
	//
	var iterations int
	//
	start := time.Now()
	for time.Since(start) < window {
		fn()
		iterations++
	}
	//
	elapsed := time.Since(start)
	//
	return float64(size) * float64(iterations) / elapsed.Seconds()
}

func printBenchmarks(sizes []int, results [][]float64) {
	fmt.Printf("%-12s", "size")
	//
	for _, name := range benchCandidates {
		fmt.Printf("%14s", name)
	}
	//
	fmt.Println()
	//
	for j, size := range sizes {
		fmt.Printf("%-12s", humanize.IBytes(uint64(size)))
		for i := range benchCandidates {
			fmt.Printf("%12s/s", humanize.IBytes(uint64(results[i][j])))
		}
		//
		fmt.Println()
	}
}

// writeBenchChart renders the sweep as a grouped bar chart, one series per
// candidate, throughput in MiB/s.
func writeBenchChart(path string, sizes []int, results [][]float64) error {
	xLabels := make([]string, len(sizes))
	for j, size := range sizes {
		xLabels[j] = humanize.IBytes(uint64(size))
	}
	//
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Tag throughput", Subtitle: "MiB/s, higher is better"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "go-polymac bench", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	//
	bar.SetXAxis(xLabels)
	//
	for i, name := range benchCandidates {
		items := make([]opts.BarData, len(sizes))
		for j, bps := range results[i] {
			items[j] = opts.BarData{Value: bps / (1 << 20)}
		}
		//
		bar.AddSeries(name, items)
	}
	//
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	//
	defer f.Close()
	//
	return bar.Render(f)
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntSlice("sizes", []int{64, 1 << 10, 1 << 16, 1 << 20}, "message sizes to sweep, in bytes")
	benchCmd.Flags().String("chart", "", "write an HTML bar chart of the sweep to this file")
}
