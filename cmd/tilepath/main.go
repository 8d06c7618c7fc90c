// Command tilepath runs grid path searches from the terminal.
//
//	tilepath run   [-map f.toml] [-algo bfs|dijkstra] [-iterations n] [-blocked expensive|impassable]
//	tilepath view  [same flags]     interactive tcell viewer
//	tilepath serve [-addr :8080]    HTTP API
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/tilepath/httpapi"
	"github.com/katalvlaran/tilepath/mapfile"
	"github.com/katalvlaran/tilepath/pathsearch"
	"github.com/katalvlaran/tilepath/render"
)

const usage = `usage: tilepath <command> [flags]

commands:
  run    search once and print the overlay
  view   interactive viewer (+/- budget, space algorithm, b blocked policy, q quit)
  serve  start the HTTP API
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With(slog.String("component", "tilepath"))
	if err := dispatch(os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func dispatch(args []string, out io.Writer, logger *slog.Logger) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return flag.ErrHelp
	}
	switch args[0] {
	case "run":
		sc, err := scenarioFromFlags("run", args[1:], out)
		if err != nil {
			return err
		}
		return runOnce(sc, out)
	case "view":
		sc, err := scenarioFromFlags("view", args[1:], out)
		if err != nil {
			return err
		}
		return view(sc)
	case "serve":
		fs := flag.NewFlagSet("serve", flag.ContinueOnError)
		fs.SetOutput(out)
		addr := fs.String("addr", ":8080", "listen address")
		maxCells := fs.Int("max-cells", 1<<16, "largest accepted grid, in cells")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		srv := httpapi.New(httpapi.WithLogger(logger), httpapi.WithMaxCells(*maxCells))
		return srv.ListenAndServe(*addr)
	case "-h", "--help", "help":
		fmt.Fprint(out, usage)
		return nil
	}
	fmt.Fprint(out, usage)
	return fmt.Errorf("unknown command %q", args[0])
}

// scenarioFromFlags loads -map (or the bundled lab map) and applies flag
// overrides.
func scenarioFromFlags(name string, args []string, out io.Writer) (*mapfile.Scenario, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	mapPath := fs.String("map", "", "scenario TOML file (default: bundled lab map)")
	algo := fs.String("algo", "", "bfs or dijkstra (default: from map)")
	iterations := fs.Int("iterations", -1, "expansion budget (default: from map)")
	blocked := fs.String("blocked", "", "expensive or impassable (default: from map)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var sc *mapfile.Scenario
	if *mapPath == "" {
		sc = mapfile.Default()
	} else {
		var err error
		if sc, err = mapfile.Load(*mapPath); err != nil {
			return nil, err
		}
	}
	if *algo != "" {
		k, err := pathsearch.ParseKind(*algo)
		if err != nil {
			return nil, err
		}
		sc.Kind = k
	}
	if *blocked != "" {
		p, err := pathsearch.ParseBlockedPolicy(*blocked)
		if err != nil {
			return nil, err
		}
		sc.Blocked = p
	}
	if *iterations >= 0 {
		sc.Iterations = *iterations
	}
	return sc, nil
}

func runOnce(sc *mapfile.Scenario, out io.Writer) error {
	res, err := sc.Search()
	if err != nil {
		return err
	}
	fmt.Fprint(out, render.Overlay(sc.Grid, res, sc.Start, sc.End))
	fmt.Fprintln(out, summary(sc, res))
	return nil
}

func summary(sc *mapfile.Scenario, res *pathsearch.Result) string {
	if !res.Found {
		return fmt.Sprintf("%s %v→%v: no path (%s) after %d/%d expansions, %d visited",
			res.Kind, sc.Start, sc.End, res.Stop, res.Expansions, sc.Iterations, len(res.Visited))
	}
	return fmt.Sprintf("%s %v→%v: %d steps, cost %g, %d/%d expansions",
		res.Kind, sc.Start, sc.End, len(res.Path)-1, res.Cost, res.Expansions, sc.Iterations)
}
