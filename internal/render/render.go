// Package render draws the artifacts of a finished search: a surface
// heatmap with the improving path overlaid, and an animated GIF that
// replays the improving points frame by frame.
package render

import (
	"image"
	"image/color"
	imgpalette "image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/copyleftdev/SEEKR/internal/errors"
	"github.com/copyleftdev/SEEKR/internal/search"
)

const (
	surfaceFile = "surface.png"
	replayFile  = "search.gif"

	defaultGridSize   = 200
	defaultFrameDelay = 500 * time.Millisecond
)

// Config holds the renderer settings. Zero values fall back to the current
// directory, a 200x200 mesh and 500 ms per frame.
type Config struct {
	// OutputDir is where surface.png and search.gif are written
	OutputDir string
	// GridSize is the number of mesh samples per axis
	GridSize int
	// FrameDelay is the display time of one animation frame
	FrameDelay time.Duration
}

// Renderer renders search artifacts for two-dimensional runs.
type Renderer struct {
	cfg    Config
	logger *zap.Logger
}

// NewRenderer creates a renderer with the given configuration.
func NewRenderer(cfg Config, logger *zap.Logger) *Renderer {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.GridSize <= 0 {
		cfg.GridSize = defaultGridSize
	}
	if cfg.FrameDelay <= 0 {
		cfg.FrameDelay = defaultFrameDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Renderer{cfg: cfg, logger: logger}
}

// Render samples the objective over the search domain and writes the
// surface plot and the animated trace replay. It only supports
// two-dimensional searches; the trace must be non-empty.
func (r *Renderer) Render(cfg search.Config, objective search.ObjectiveFunc, trace search.Trace) error {
	if cfg.Dimension != 2 {
		return errors.Errorf("rendering requires dimension 2, got %d", cfg.Dimension).
			WithOperation("render").WithComponent("render")
	}
	if len(trace) == 0 {
		return errors.New("nothing to render: trace is empty").
			WithOperation("render").WithComponent("render")
	}

	xs := floats.Span(make([]float64, r.cfg.GridSize), cfg.LowerBound, cfg.UpperBound)
	ys := floats.Span(make([]float64, r.cfg.GridSize), cfg.LowerBound, cfg.UpperBound)

	grid, err := sampleMesh(objective, xs, ys)
	if err != nil {
		return errors.Wrap(err, "failed to sample objective mesh").
			WithOperation("render").WithComponent("render")
	}

	surfacePath := filepath.Join(r.cfg.OutputDir, surfaceFile)
	if err := r.surfacePNG(surfacePath, xs, ys, grid, trace); err != nil {
		return errors.Wrap(err, "failed to write surface plot").
			WithOperation("render").WithComponent("render")
	}
	r.logger.Info("wrote surface plot",
		zap.String("path", surfacePath),
		zap.Int("grid_size", r.cfg.GridSize))

	replayPath := filepath.Join(r.cfg.OutputDir, replayFile)
	if err := r.animatedGIF(replayPath, cfg, grid, trace); err != nil {
		return errors.Wrap(err, "failed to write trace replay").
			WithOperation("render").WithComponent("render")
	}
	r.logger.Info("wrote trace replay",
		zap.String("path", replayPath),
		zap.Int("frames", len(trace)),
		zap.Duration("frame_delay", r.cfg.FrameDelay))

	return nil
}

// sampleMesh evaluates the objective at every (x, y) mesh node. Row i holds
// the values for ys[i], column j for xs[j].
func sampleMesh(objective search.ObjectiveFunc, xs, ys []float64) (*mat.Dense, error) {
	grid := mat.NewDense(len(ys), len(xs), nil)
	point := make([]float64, 2)

	for i, y := range ys {
		for j, x := range xs {
			point[0], point[1] = x, y
			v, err := objective(point)
			if err != nil {
				return nil, err
			}
			grid.Set(i, j, v)
		}
	}

	return grid, nil
}

// objectiveGrid adapts the sampled mesh to the plotter.GridXYZ interface.
type objectiveGrid struct {
	xs, ys []float64
	z      *mat.Dense
}

func (g *objectiveGrid) Dims() (int, int)   { return len(g.xs), len(g.ys) }
func (g *objectiveGrid) X(c int) float64    { return g.xs[c] }
func (g *objectiveGrid) Y(r int) float64    { return g.ys[r] }
func (g *objectiveGrid) Z(c, r int) float64 { return g.z.At(r, c) }

// surfacePNG draws the objective heatmap with the improving path on top.
func (r *Renderer) surfacePNG(path string, xs, ys []float64, grid *mat.Dense, trace search.Trace) error {
	p := plot.New()
	p.Title.Text = "blind search"
	p.X.Label.Text = "x1"
	p.Y.Label.Text = "x2"

	heat := plotter.NewHeatMap(&objectiveGrid{xs: xs, ys: ys, z: grid}, palette.Heat(12, 1))
	p.Add(heat)

	pts := make(plotter.XYs, len(trace))
	for i, point := range trace {
		pts[i].X = point.Coordinates[0]
		pts[i].Y = point.Coordinates[1]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Color = color.White

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 255, A: 255}

	p.Add(line, scatter)
	p.Legend.Add("improving points", scatter)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// animatedGIF replays the improving trace: frame k shows the surface with
// markers for the first k+1 points. The GIF plays once, matching a
// non-repeating animation.
func (r *Renderer) animatedGIF(path string, cfg search.Config, grid *mat.Dense, trace search.Trace) error {
	rows, cols := grid.Dims()
	raw := grid.RawMatrix().Data
	lo, hi := floats.Min(raw), floats.Max(raw)
	span := hi - lo
	if span == 0 || math.IsNaN(span) {
		span = 1
	}

	// Base frame: the normalized surface, Y flipped so up is up. NaN cells
	// take the floor color.
	base := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for j := 0; j < rows; j++ {
		y := rows - 1 - j
		rowOff := y * base.Stride
		for i := 0; i < cols; i++ {
			n := 0.0
			if v := grid.At(j, i); !math.IsNaN(v) {
				n = (v - lo) / span
			}
			shade := uint8(math.Round(n * 255))
			p := rowOff + i*4
			base.Pix[p+0] = shade
			base.Pix[p+1] = shade / 2
			base.Pix[p+2] = 255 - shade
			base.Pix[p+3] = 255
		}
	}

	delay := int(r.cfg.FrameDelay / (10 * time.Millisecond))
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(trace)),
		Delay:     make([]int, 0, len(trace)),
		LoopCount: -1, // play once
	}

	frame := image.NewNRGBA(base.Bounds())
	for k := range trace {
		copy(frame.Pix, base.Pix)
		for _, point := range trace[:k+1] {
			px, py := r.toPixel(cfg, point.Coordinates, cols, rows)
			markPoint(frame, px, py)
		}

		pimg := image.NewPaletted(frame.Bounds(), imgpalette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), frame, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}

// toPixel maps domain coordinates to frame pixels, flipping Y to match the
// base image orientation.
func (r *Renderer) toPixel(cfg search.Config, x []float64, cols, rows int) (int, int) {
	span := cfg.UpperBound - cfg.LowerBound
	px := int(math.Round((x[0] - cfg.LowerBound) / span * float64(cols-1)))
	py := rows - 1 - int(math.Round((x[1]-cfg.LowerBound)/span*float64(rows-1)))
	return px, py
}

// markPoint draws a small red square centered on (px, py), clipped to the
// frame bounds.
func markPoint(img *image.NRGBA, px, py int) {
	red := color.NRGBA{R: 255, A: 255}
	bounds := img.Bounds()

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := px+dx, py+dy
			if image.Pt(x, y).In(bounds) {
				img.SetNRGBA(x, y, red)
			}
		}
	}
}
