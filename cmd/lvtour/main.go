// Command lvtour solves a small Euclidean TSP instance by brute force.
//
// Input is a JSON array of [x, y] pairs:
//
//	[[0,0],[1,0],[1,1],[0,1]]
//
// Usage:
//
//	lvtour -input points.json                 # best tour and its length
//	lvtour -input points.json -within 5.0     # every cycle no longer than 5
//	lvtour -input points.json -plot tour.png  # also render the best tour
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/lvtour/fn"
	"github.com/katalvlaran/lvtour/geom"
	"github.com/katalvlaran/lvtour/tourplot"
	"github.com/katalvlaran/lvtour/tsp"
)

// errUsage marks flag and argument problems; main prints usage for these.
var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvtour: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("%v", err)
	}
}

// config is the parsed command line.
type config struct {
	input  string
	within float64
	plot   string
	opts   tsp.Options
}

// parseFlags maps the command line onto config, starting from tsp.DefaultOptions.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg = config{opts: tsp.DefaultOptions()}
		fs  = flag.NewFlagSet("lvtour", flag.ContinueOnError)
	)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "input", "", "JSON file with [[x,y],...] points (required)")
	fs.IntVar(&cfg.opts.StartVertex, "start", cfg.opts.StartVertex, "start vertex index")
	fs.IntVar(&cfg.opts.Workers, "workers", cfg.opts.Workers, "concurrent search goroutines")
	fs.IntVar(&cfg.opts.MaxPoints, "max-points", cfg.opts.MaxPoints, "largest accepted instance")
	fs.Float64Var(&cfg.within, "within", -1, "list every cycle not longer than this (negative: solve)")
	fs.StringVar(&cfg.plot, "plot", "", "render the best tour to this image file (png, svg, pdf); not with -within")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.input == "" {
		fs.Usage()
		return cfg, fmt.Errorf("%w: -input is required", errUsage)
	}
	if cfg.within >= 0 && cfg.plot != "" {
		fs.Usage()
		return cfg, fmt.Errorf("%w: -plot draws the best tour and cannot be combined with -within", errUsage)
	}

	return cfg, nil
}

// readPoints decodes a JSON array of [x, y] pairs.
func readPoints(path string) ([]geom.Point, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	var pairs [][2]float64
	if err = json.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return fn.Map(pairs, func(xy [2]float64) geom.Point { return geom.Pt(xy[0], xy[1]) }), nil
}

// run executes one invocation and writes the report to stdout.
func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	points, err := readPoints(cfg.input)
	if err != nil {
		return err
	}

	if cfg.within >= 0 {
		routes, err := tsp.RoutesWithin(points, cfg.within, cfg.opts)
		if err != nil {
			return err
		}
		lines := fn.Map(routes, func(r tsp.Route) string {
			return fmt.Sprintf("%s %.6f", tsp.DebugString(r.Tour), r.Length)
		})
		fmt.Fprintf(stdout, "%d routes within %g\n", len(routes), cfg.within)
		if len(lines) > 0 {
			fmt.Fprintln(stdout, strings.Join(lines, "\n"))
		}

		return nil
	}

	res, err := tsp.SolveBruteForce(points, cfg.opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "tour: %s\nlength: %.6f\n", tsp.DebugString(res.Tour), res.Cost)

	if cfg.plot != "" {
		opts := tourplot.DefaultOptions()
		opts.Title = fmt.Sprintf("%d points, length %.3f", len(points), res.Cost)
		if err = tourplot.Save(cfg.plot, points, res.Tour, opts); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "plot: %s\n", cfg.plot)
	}

	return nil
}
