package contour

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// config collects the Build parameters; see the Option constructors for
// the individual knobs.
type config struct {
	origin      Point
	w, h        float64
	rtol, atol  float64
	surfCellMax float64
	min         Minimizer
	workers     int
}

// Option configures Build.
type Option func(*config)

// WithOrigin sets the minimum corner of the domain box.
// The default is (-1, -1).
func WithOrigin(p Point) Option {
	return func(c *config) { c.origin = p }
}

// WithExtent sets the side lengths of the domain box. Both must be
// positive. The default is 2×2.
func WithExtent(w, h float64) Option {
	return func(c *config) { c.w, c.h = w, h }
}

// WithRTol sets the relative tolerance governing the near-zero residual
// check and the geometric tolerances of degeneracy and out-of-box
// pruning. The default is 1e-2.
func WithRTol(v float64) Option {
	return func(c *config) { c.rtol = v }
}

// WithATol sets the absolute tolerance: cells narrower than atol are
// never split, and residuals within atol of zero are accepted.
// The default is 1e-2.
func WithATol(v float64) Option {
	return func(c *config) { c.atol = v }
}

// WithSurfCellMax sets the absolute width ceiling above which any
// ambiguous or surface-crossing cell keeps refining regardless of
// residual quality. The default is 1e-1.
func WithSurfCellMax(v float64) Option {
	return func(c *config) { c.surfCellMax = v }
}

// WithMinimizer replaces the bounded 1-D scalar minimizer used for edge
// root finding. The default is GoldenSection{}.
func WithMinimizer(m Minimizer) Option {
	return func(c *config) { c.min = m }
}

// WithParallel enables concurrent subdivision with roughly the given
// number of workers. The oracle must then be safe for concurrent reads.
// Values below 2 keep the default sequential recursion.
func WithParallel(workers int) Option {
	return func(c *config) { c.workers = workers }
}

// Build constructs the subdivision tree of oracle over the configured
// domain box and returns the root cell.
//
// The domain is recursively split into four equal quadrants wherever the
// refinement criterion finds the local surface geometry not yet captured
// by a single QEF vertex. Every cell's CellData is computed exactly once,
// before any of its children are evaluated, and the returned tree is
// read-only. Termination is guaranteed: widths strictly halve per split,
// so no leaf is deeper than ⌈log2(initialWidth/atol)⌉.
//
// Build panics with a descriptive message on a nil oracle or a
// non-positive domain extent or tolerance; numerical trouble during
// construction never panics and is encoded in the sentinel values
// described on CellData.
func Build(oracle Oracle, opts ...Option) *Cell {
	if oracle == nil {
		panic("contour: Build requires a non-nil oracle")
	}
	cfg := config{
		origin:      Point{X: -1, Y: -1},
		w:           2,
		h:           2,
		rtol:        1e-2,
		atol:        1e-2,
		surfCellMax: 1e-1,
		min:         GoldenSection{},
		workers:     1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.w <= 0 || cfg.h <= 0 {
		panic("contour: domain extent must be positive")
	}
	if cfg.atol <= 0 || cfg.rtol < 0 {
		panic("contour: tolerances must be positive")
	}
	if cfg.min == nil {
		panic("contour: minimizer must not be nil")
	}

	bd := &builder{
		oracle: oracle,
		min:    cfg.min,
		policy: refinePolicy{rtol: cfg.rtol, atol: cfg.atol, surfCellMax: cfg.surfCellMax},
	}
	root := &Cell{Box: Box{Min: cfg.origin, W: cfg.w, H: cfg.h}}
	bd.grow(root, fanOutDepth(cfg.workers))

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("contour: build complete",
			"leaves", len(root.Leaves()),
			"depth", root.Depth(),
			"workers", cfg.workers,
		)
	}
	return root
}

// builder carries the immutable build state through the recursion.
type builder struct {
	oracle Oracle
	min    Minimizer
	policy refinePolicy
}

// grow computes the cell's data and recurses while the refinement
// policy asks for a split. The top fanOut levels of the tree evaluate
// their children concurrently; below that the recursion is sequential.
func (bd *builder) grow(c *Cell, fanOut int) {
	tol := bd.policy.rtol * c.Box.MinWidth()
	c.Data = buildCellData(bd.oracle, bd.min, c.Box, tol)
	if !bd.policy.shouldRefine(c) {
		return
	}

	quads := c.Box.Split()
	c.Children = make([]*Cell, len(quads))
	for i := range quads {
		c.Children[i] = &Cell{Box: quads[i]}
	}

	if fanOut <= 0 {
		for _, child := range c.Children {
			bd.grow(child, 0)
		}
		return
	}
	var g errgroup.Group
	for _, child := range c.Children {
		child := child
		g.Go(func() error {
			bd.grow(child, fanOut-1)
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes the subtree.
	_ = g.Wait()
}

// fanOutDepth returns how many tree levels must fan out so at least
// the requested number of workers can run, given four children per
// split.
func fanOutDepth(workers int) int {
	depth := 0
	for n := 1; n < workers; n *= 4 {
		depth++
	}
	return depth
}
