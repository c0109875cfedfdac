package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"dustfield/internal/field"

	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so four arcs approximate a circle.
const kappa = 0.5522847498

// Raster is a software field.Canvas backed by an *image.NRGBA. It is used
// for headless snapshots.
type Raster struct {
	img   *image.NRGBA
	bg    color.NRGBA
	rings []glowRing
	z     vector.Rasterizer
}

// NewRaster allocates a w*h raster cleared to bg.
func NewRaster(w, h int, bg color.NRGBA) *Raster {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	r := &Raster{img: image.NewNRGBA(image.Rect(0, 0, w, h)), bg: bg}
	r.Clear()
	return r
}

// SetBackground changes the colour used by Clear.
func (r *Raster) SetBackground(c color.NRGBA) { r.bg = c }

// Image returns the backing image.
func (r *Raster) Image() *image.NRGBA { return r.img }

// Clear fills the raster with the background colour.
func (r *Raster) Clear() { fillSolid(r.img.Pix, r.bg) }

// FillDot draws the dot's glow rings followed by the dot itself.
func (r *Raster) FillDot(d field.Dot) {
	r.rings = appendGlowRings(r.rings[:0], d)
	for _, g := range r.rings {
		r.fillCircle(d.X, d.Y, g.radius, g.color, g.alpha)
	}
	c := d.Color
	c.A = 255
	r.fillCircle(d.X, d.Y, d.Radius, c, float64(dotColor(d).A)/255)
}

func (r *Raster) fillCircle(cx, cy, radius float64, c color.NRGBA, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	box := image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius)), int(math.Ceil(cy+radius)),
	).Intersect(r.img.Bounds())
	if box.Empty() {
		return
	}

	// The rasterizer covers only the clipped box; the path is shifted into
	// its local coordinates and clipped by it.
	x := float32(cx) - float32(box.Min.X)
	y := float32(cy) - float32(box.Min.Y)
	rr := float32(radius)
	k := float32(kappa) * rr
	z := &r.z
	z.Reset(box.Dx(), box.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	z.ClosePath()

	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha*255 + 0.5)
	z.Draw(r.img, box, image.NewUniform(c), image.Point{})
}
