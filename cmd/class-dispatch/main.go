// Package main provides the CLI entrypoint for class-dispatch.
//
// class-dispatch prints the class chains that dispatch tables will walk for
// the struct types of Go packages:
//
//	class-dispatch chains [-yaml] [-dump] <package patterns...>
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"class-dispatch/internal/analyze"
	"class-dispatch/internal/common"
	"class-dispatch/internal/diagnostic"
	"class-dispatch/lineage"
)

const usage = `class-dispatch - inspect class chains of Go packages

Usage:
  class-dispatch chains [-yaml] [-dump] <package patterns...>
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if common.IsEmpty(args) {
		fmt.Fprint(stderr, usage)
		return 2
	}

	switch args[0] {
	case "chains":
		return runChains(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}
}

func runChains(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("chains", flag.ContinueOnError)
	fs.SetOutput(stderr)

	asYAML := fs.Bool("yaml", false, "print a lineage file instead of chains")
	dump := fs.Bool("dump", false, "dump the class graph")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	analyzer := analyze.NewAnalyzer()

	graph, err := analyzer.LoadPackages(fs.Args()...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	printDiagnostics(stderr, analyzer.Diagnostics())

	switch {
	case *dump:
		spew.Fdump(stdout, graph.Sorted())
	case *asYAML:
		data, err := lineage.Marshal(graph.LineageFile())
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}

		_, _ = stdout.Write(data)
	default:
		if err := printChains(stdout, graph); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	return 0
}

// printChains prints one line per class that has a parent, parents first.
func printChains(w io.Writer, graph *analyze.ClassGraph) error {
	ordered, err := graph.Ordered()
	if err != nil {
		return err
	}

	for _, c := range ordered {
		chain := c.Chain()
		if common.IsSingle(chain) {
			continue
		}

		names := make([]string, 0, len(chain))
		for _, id := range chain {
			names = append(names, id.Short())
		}

		fmt.Fprintln(w, strings.Join(names, " -> "))
	}

	return nil
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings, diags.Infos} {
		for _, d := range group {
			fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
		}
	}
}
