// Sales Directory Generator
//
// This tool fills a directory with definition files and a contiguous run of
// record files for performance testing and profiling.
//
// Usage:
//
//	go run main.go ./sales            # 10000 record files
//	go run main.go ./sales 250000     # Specify the number of record files
//	go run main.go -branch-only ./sales
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/robinvdvleuten/salesagg/ledger"
	"github.com/robinvdvleuten/salesagg/loader"
)

const defaultRecords = 10000

var (
	branches = []string{
		"Sapporo", "Sendai", "Tokyo", "Yokohama", "Nagoya",
		"Kyoto", "Osaka", "Kobe", "Hiroshima", "Fukuoka",
	}

	commodities = []string{
		"Notebook PC", "Desktop PC", "Monitor", "Keyboard", "Mouse",
		"Printer", "Scanner", "Router", "Headset", "Webcam",
		"Tablet", "Docking Station",
	}
)

func main() {
	branchOnly := flag.Bool("branch-only", false, "write [branch, amount] records and no commodity.lst")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "usage: generate_sales [-branch-only] DIR [RECORDS]")
		os.Exit(2)
	}

	dir := flag.Arg(0)
	records := defaultRecords
	if flag.NArg() == 2 {
		n, err := strconv.Atoi(flag.Arg(1))
		if err != nil || n < 0 {
			fmt.Fprintf(os.Stderr, "invalid record count %q\n", flag.Arg(1))
			os.Exit(2)
		}
		records = n
	}

	if err := generate(dir, records, *branchOnly, rand.New(rand.NewSource(*seed))); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Generated %d record files in %s\n", records, dir)
}

func generate(dir string, records int, branchOnly bool, rng *rand.Rand) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var lst strings.Builder
	for i, name := range branches {
		fmt.Fprintf(&lst, "%03d,%s\n", i+1, name)
	}
	if err := os.WriteFile(filepath.Join(dir, ledger.DimensionBranch.LookupFile()), []byte(lst.String()), 0644); err != nil {
		return err
	}

	if !branchOnly {
		lst.Reset()
		for i, name := range commodities {
			fmt.Fprintf(&lst, "SFD%05d,%s\n", i+1, name)
		}
		if err := os.WriteFile(filepath.Join(dir, ledger.DimensionCommodity.LookupFile()), []byte(lst.String()), 0644); err != nil {
			return err
		}
	}

	// Amounts stay small enough that no total gets near ten digits.
	maxAmount := 1_000_000_000 / (records/len(branches) + 1)
	if maxAmount < 1 {
		maxAmount = 1
	}

	for seq := 1; seq <= records; seq++ {
		var rec strings.Builder
		fmt.Fprintf(&rec, "%03d\n", rng.Intn(len(branches))+1)
		if !branchOnly {
			fmt.Fprintf(&rec, "SFD%05d\n", rng.Intn(len(commodities))+1)
		}
		fmt.Fprintf(&rec, "%d\n", rng.Intn(maxAmount))

		name := filepath.Join(dir, fmt.Sprintf("%08d%s", seq, loader.RecordExt))
		if err := os.WriteFile(name, []byte(rec.String()), 0644); err != nil {
			return err
		}
	}

	return nil
}
