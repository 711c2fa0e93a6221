// Command semverxctl is a thin demonstration front end for the semverx
// core. It is not part of the core's contract (spec §1 places CLI front
// ends out of scope as an external collaborator) and exists only to
// exercise the public API end-to-end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/obinexus/semverx"
	"github.com/obinexus/semverx/resolver"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("semverxctl", flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "Usage: semverxctl <parse|satisfies|resolve-demo> [args...]")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}

	switch fs.Arg(0) {
	case "parse":
		return cmdParse(fs.Args()[1:])
	case "satisfies":
		return cmdSatisfies(fs.Args()[1:])
	case "resolve-demo":
		return cmdResolveDemo()
	default:
		fs.Usage()
		return 2
	}
}

func cmdParse(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: semverxctl parse VERSION")
		return 2
	}
	v, err := semverx.Parse(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	fmt.Println(v.Render())
	return 0
}

func cmdSatisfies(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: semverxctl satisfies VERSION RANGE")
		return 2
	}
	v, err := semverx.Parse(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	ok, err := v.Satisfies(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	fmt.Println(ok)
	return 0
}

// cmdResolveDemo builds a tiny fixed three-node chain and resolves it,
// demonstrating the resolver's public entry points wired to a logger.
func cmdResolveDemo() int {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	r := resolver.New(resolver.WithLogger(logger))

	ids := []string{"app", "lib-core", "lib-util"}
	idx := make(map[string]int, len(ids))
	for _, id := range ids {
		v, err := semverx.Parse("1.0.0")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		i, err := r.AddComponent(&resolver.Component{ID: id, Version: v})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitCodeFor(err)
		}
		idx[id] = i
	}
	if err := r.AddDependency(idx["app"], idx["lib-core"], ">=1.0.0", 1.0); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := r.AddDependency(idx["lib-core"], idx["lib-util"], ">=1.0.0", 1.0); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	result, err := r.Resolve(context.Background(), "app", resolver.StrategyAuto)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	fmt.Printf("strategy=%s iterations=%d resolved=%d\n", result.StrategyUsed, result.Iterations, len(result.ResolvedVersions))
	return 0
}

// exitCodeFor maps a semverx error to a nonzero exit code distinguishable
// from the message, per spec §6's exit-condition contract.
func exitCodeFor(err error) int {
	sx, ok := semverx.AsError(err)
	if !ok {
		return 1
	}
	switch sx.Kind {
	case semverx.KindParsing:
		return 64
	case semverx.KindValidating:
		return 65
	default:
		return 1
	}
}
