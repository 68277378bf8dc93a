// Package tourplot renders a closed tour over its points with gonum/plot.
//
// The tour is drawn as a polyline through the points in visiting order
// (including the closing edge), with every point marked and labelled by its
// index. The output format follows the file extension (Save) or the format
// argument (Write): png, svg, pdf, eps, jpg, tif.
package tourplot

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvtour/geom"
	"github.com/katalvlaran/lvtour/tsp"
)

// ErrBadSize is returned for a non-positive canvas dimension.
var ErrBadSize = errors.New("tourplot: canvas width and height must be positive")

// Options controls the rendered canvas.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	Labels bool // annotate points with their indices
}

// DefaultOptions returns a 5×5 inch canvas with index labels.
func DefaultOptions() Options {
	return Options{
		Title:  "tour",
		Width:  5 * vg.Inch,
		Height: 5 * vg.Inch,
		Labels: true,
	}
}

// New builds the plot for a closed tour over points.
// The tour must satisfy tsp.ValidateTour for its own start vertex.
func New(points []geom.Point, tour []int, opts Options) (*plot.Plot, error) {
	if err := geom.Validate(points); err != nil {
		return nil, err
	}
	if len(tour) == 0 {
		return nil, fmt.Errorf("%w: empty tour", tsp.ErrInvalidOrder)
	}
	if err := tsp.ValidateTour(tour, len(points), tour[0]); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	path := make(plotter.XYs, len(tour))
	for i, v := range tour {
		path[i].X = points[v].X
		path[i].Y = points[v].Y
	}
	line, err := plotter.NewLine(path)
	if err != nil {
		return nil, fmt.Errorf("tourplot: line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)

	marks := make(plotter.XYs, len(points))
	for i, pt := range points {
		marks[i].X = pt.X
		marks[i].Y = pt.Y
	}
	scatter, err := plotter.NewScatter(marks)
	if err != nil {
		return nil, fmt.Errorf("tourplot: scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(line, scatter)

	if opts.Labels {
		names := make([]string, len(points))
		for i := range points {
			names[i] = strconv.Itoa(i)
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: marks, Labels: names})
		if err != nil {
			return nil, fmt.Errorf("tourplot: labels: %w", err)
		}
		p.Add(labels)
	}

	return p, nil
}

// Save renders the tour into path; the extension picks the format.
func Save(path string, points []geom.Point, tour []int, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return ErrBadSize
	}
	p, err := New(points, tour, opts)
	if err != nil {
		return err
	}
	if err = p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("tourplot: save %s: %w", path, err)
	}

	return nil
}

// Write renders the tour to w in the given format ("png", "svg", …).
func Write(w io.Writer, format string, points []geom.Point, tour []int, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return ErrBadSize
	}
	p, err := New(points, tour, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("tourplot: format %q: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("tourplot: write: %w", err)
	}

	return nil
}
