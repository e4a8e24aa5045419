// Command stationtime reads a station network and its queries from stdin and
// prints one travel time per query to stdout.
//
// Input format: see package ioformat. With -gen it instead writes a generated
// input (line, star, ring, grid, tree, random) to stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/stationtime/audit"
	"github.com/katalvlaran/stationtime/config"
	"github.com/katalvlaran/stationtime/ioformat"
	"github.com/katalvlaran/stationtime/netgen"
	"github.com/katalvlaran/stationtime/traveltime"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("stationtime: ")

	cfg := config.Load()
	var (
		doAudit = flag.Bool("audit", cfg.Audit, "report pairs where the table differs from the shortest travel time")
		dump    = flag.Bool("dump", false, "print the built table to stderr")
		gen     = flag.String("gen", "", "emit a generated input instead: line|star|ring|grid|tree|random")
		n       = flag.Int("n", 10, "stations for -gen (rows for grid)")
		cols    = flag.Int("cols", 0, "columns for -gen grid (defaults to -n)")
		seed    = flag.Int64("seed", 1, "seed for -gen")
		minT    = flag.Int("min", 1, "minimum travel time for -gen")
		maxT    = flag.Int("max", 1, "maximum travel time for -gen")
		queries = flag.Int("queries", -1, "random queries for -gen; -1 asks for every pair")
	)
	flag.Parse()

	if *gen != "" {
		if err := generate(os.Stdout, *gen, *n, *cols, *seed, *minT, *maxT, *queries); err != nil {
			log.Fatal(err)
		}
		return
	}

	opts := batchOptions{Audit: *doAudit, AuditMax: cfg.AuditMaxStations, Dump: *dump}
	if err := run(os.Stdin, os.Stdout, os.Stderr, opts); err != nil {
		log.Fatal(err)
	}
}

// batchOptions selects the diagnostics written next to the answers.
type batchOptions struct {
	Audit    bool
	AuditMax int // 0 means no limit
	Dump     bool
}

// run is one batch: parse, build, answer, print.
func run(in io.Reader, out, diag io.Writer, opts batchOptions) error {
	input, err := ioformat.Read(bufio.NewReader(in))
	if err != nil {
		return err
	}
	net, err := traveltime.Build(input.Request)
	if err != nil {
		return err
	}
	answers, err := net.Answer(input.Queries)
	if err != nil {
		return err
	}
	if err := ioformat.WriteAnswers(out, answers); err != nil {
		return fmt.Errorf("writing answers: %w", err)
	}

	if opts.Dump {
		dumpTable(diag, net)
	}
	if !opts.Audit {
		return nil
	}
	if opts.AuditMax > 0 && input.Request.StationCount > opts.AuditMax {
		fmt.Fprintf(diag, "audit skipped: %d stations exceed limit %d\n", input.Request.StationCount, opts.AuditMax)
		return nil
	}
	found, err := audit.CheckQueries(input.Request, net, input.Queries)
	if err != nil {
		return err
	}
	for _, d := range found {
		fmt.Fprintf(diag, "audit: %s\n", d)
	}

	return nil
}

// dumpTable prints the fill summary followed by one row per station.
func dumpTable(w io.Writer, net *traveltime.Network) {
	tb := net.Table()
	fmt.Fprintf(w, "table: %d stations, %d of %d cells known, complete=%t\n",
		tb.Size(), tb.Filled(), tb.Capacity(), tb.Complete())
	fmt.Fprint(w, tb.String())
}

// generate writes a synthetic batch in the input format.
func generate(w io.Writer, kind string, n, cols int, seed int64, minT, maxT, k int) error {
	if minT < 1 || maxT < minT {
		return fmt.Errorf("invalid travel time range [%d,%d]", minT, maxT)
	}
	opts := []netgen.Option{netgen.WithSeed(seed), netgen.WithWeightFn(netgen.UniformWeight(minT, maxT))}

	var (
		req traveltime.BuildRequest
		err error
	)
	switch kind {
	case "line":
		req, err = netgen.Line(n, opts...)
	case "star":
		req, err = netgen.Star(n, opts...)
	case "ring":
		req, err = netgen.Ring(n, opts...)
	case "grid":
		if cols <= 0 {
			cols = n
		}
		req, err = netgen.Grid(n, cols, opts...)
	case "tree":
		req, err = netgen.BinaryTree(n, opts...)
	case "random":
		req, err = netgen.RandomTree(n, opts...)
	default:
		return fmt.Errorf("unknown generator %q", kind)
	}
	if err != nil {
		return err
	}

	qs := netgen.AllPairs(req.StationCount)
	if k >= 0 {
		qs, err = netgen.RandomQueries(req.StationCount, k, netgen.WithSeed(seed))
		if err != nil {
			return err
		}
	}

	return ioformat.Write(w, &ioformat.Input{Request: req, Queries: qs})
}
