// Command tsp-solve reads a TSPLIB95 symmetric TSP instance and prints
// the cost of its optimal tour, computed by exact Held-Karp
// branch-and-bound with Lagrangian 1-tree lower bounds.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/RaoulLuque/tsp-go/heldkarp"
	"github.com/RaoulLuque/tsp-go/tsplib"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("tsp-solve", flag.ContinueOnError)
	fs.SetOutput(stderr)

	printTour := fs.Bool("tour", false, "also print the optimal tour's edges")
	parallel := fs.Bool("parallel", false, "use the root-parallel solver")
	verbose := fs.Bool("verbose", false, "emit debug-level solver traces")
	bbLimit := fs.Int("bb-limit", 0, "cap on branch-and-bound nodes explored (0 = unbounded)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: tsp-solve [flags] <instance.tsp>")
		return 2
	}

	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	instance, err := tsplib.ParseInstance(fs.Arg(0), tsplib.Symmetric)
	if err != nil {
		fmt.Fprintf(stderr, "tsp-solve: %v\n", err)
		return 1
	}

	opts := heldkarp.DefaultOptions()
	opts.BBLimit = *bbLimit
	opts.Logger = logger

	solve := heldkarp.Solve
	if *parallel {
		solve = heldkarp.SolveParallel
	}

	tour, err := solve(instance, opts)
	if err != nil {
		fmt.Fprintf(stderr, "tsp-solve: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "cost: %d\n", tour.Cost)
	if *printTour {
		for _, e := range tour.Edges {
			fmt.Fprintf(stdout, "%d %d\n", e.From, e.To)
		}
	}

	return 0
}
