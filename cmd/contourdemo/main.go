// Command contourdemo builds an adaptive dual-contouring tree for a
// small implicit scene, prints tree statistics, and renders the leaf
// cells and QEF vertices to a PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/contour"
)

func main() {
	var (
		size    = flag.Int("size", 512, "output image size in pixels")
		output  = flag.String("output", "contour.png", "output file")
		atol    = flag.Float64("atol", 0.02, "absolute tolerance (size floor)")
		rtol    = flag.Float64("rtol", 0.02, "relative tolerance")
		ceiling = flag.Float64("surfcellmax", 0.2, "surface cell width ceiling")
		workers = flag.Int("parallel", 1, "concurrent subdivision workers")
	)
	flag.Parse()

	// A circle overlapping a rounded rectangle.
	scene := contour.Union{
		A: contour.Circle{Center: contour.Pt(-0.4, 0.3), Radius: 0.9},
		B: contour.RoundedRect{
			Center: contour.Pt(0.5, -0.3),
			HalfW:  0.8, HalfH: 0.5,
			CornerRadius: 0.2,
		},
	}

	root := contour.Build(scene,
		contour.WithOrigin(contour.Pt(-2, -2)),
		contour.WithExtent(4, 4),
		contour.WithATol(*atol),
		contour.WithRTol(*rtol),
		contour.WithSurfCellMax(*ceiling),
		contour.WithParallel(*workers),
	)

	var cells, leaves, crossing int
	root.Walk(func(c *contour.Cell) bool {
		cells++
		if c.IsLeaf() {
			leaves++
			if !c.Data.Empty() {
				crossing++
			}
		}
		return true
	})
	points, _ := root.Vertices()

	log.Printf("cells=%d leaves=%d surface-leaves=%d vertices=%d depth=%d",
		cells, leaves, crossing, len(points), root.Depth())

	img := render(root, *size)
	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}
	log.Printf("Rendered to %s (%dx%d)", *output, *size, *size)
}

// render draws the leaf boxes in gray and the QEF vertices in black onto
// a white image of the given pixel size.
func render(root *contour.Cell, size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	// World [-2,2]² to pixel coordinates.
	scale := float64(size) / root.Box.W
	toPx := func(p contour.Point) (float32, float32) {
		return float32((p.X - root.Box.Min.X) * scale),
			float32((p.Y - root.Box.Min.Y) * scale)
	}

	boxes := vector.NewRasterizer(size, size)
	dots := vector.NewRasterizer(size, size)

	for _, leaf := range root.Leaves() {
		x0, y0 := toPx(leaf.Box.Min)
		w := float32(leaf.Box.W * scale)
		h := float32(leaf.Box.H * scale)
		strokeRect(boxes, x0, y0, w, h)

		d := leaf.Data
		if d.Empty() || !d.Vertex.IsFinite() {
			continue
		}
		vx, vy := toPx(d.Vertex)
		fillRect(dots, vx-1.5, vy-1.5, 3, 3)
	}

	boxes.Draw(img, img.Bounds(), image.NewUniform(color.Gray{Y: 0xcc}), image.Point{})
	dots.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{})
	return img
}

// fillRect adds an axis-aligned filled rectangle to the rasterizer.
func fillRect(r *vector.Rasterizer, x, y, w, h float32) {
	r.MoveTo(x, y)
	r.LineTo(x+w, y)
	r.LineTo(x+w, y+h)
	r.LineTo(x, y+h)
	r.ClosePath()
}

// strokeRect adds a one-pixel rectangle outline as four thin bars.
func strokeRect(r *vector.Rasterizer, x, y, w, h float32) {
	fillRect(r, x, y, w, 1)
	fillRect(r, x, y+h-1, w, 1)
	fillRect(r, x, y, 1, h)
	fillRect(r, x+w-1, y, 1, h)
}
