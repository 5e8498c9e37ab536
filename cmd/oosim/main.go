// Command oosim reads a trace file and simulates it through the
// out-of-order core, writing the per-instruction completion table to an
// output file and, in verbose mode, a run summary to stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/oosim/report"
	"github.com/sarchlab/oosim/timing/ooo"
	"github.com/sarchlab/oosim/trace"
)

func main() {
	inPath := flag.String("in", "test.in", "trace input file")
	outPath := flag.String("out", "output.txt", "per-instruction completion table output file")
	configPath := flag.String("config", "", "optional JSON RunOptions override file")
	verbose := flag.Bool("v", false, "print a run summary to stdout")
	flag.Parse()

	if err := run(*inPath, *outPath, *configPath, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "oosim: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, configPath string, verbose bool) error {
	header, records, skipped, err := trace.Load(inPath)
	if err != nil {
		return err
	}
	for _, s := range skipped {
		fmt.Fprintf(os.Stderr, "oosim: line %d skipped: %s: %s\n", s.LineNumber, s.Reason, s.Raw)
	}

	opts := ooo.DefaultRunOptions()
	if configPath != "" {
		opts, err = ooo.LoadRunOptions(configPath)
		if err != nil {
			return err
		}
	}
	opts.Verbose = verbose

	cfg := ooo.Config{IssueWidth: header.IssueWidth, PhysRegCount: header.PhysRegCount}
	pipeline, err := ooo.NewPipeline(cfg, records, ooo.WithRunOptions(opts))
	if err != nil {
		return err
	}

	if _, err := pipeline.Run(); err != nil {
		return err
	}

	if err := report.Write(outPath, pipeline.Records()); err != nil {
		return err
	}

	if verbose {
		stats := pipeline.Stats()
		summary := report.Summary{
			Cycles:       stats.Cycles,
			Instructions: stats.Instructions,
			RenameStalls: stats.RenameStalls,
		}
		w := bufio.NewWriter(os.Stdout)
		if err := report.Fprint(w, summary); err != nil {
			return err
		}
	}

	return nil
}
