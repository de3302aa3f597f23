// Package render turns card layouts into images and writes finished decks
// to disk. It is the consumer side of the core pipeline: pkg/design decides
// which symbols share a card, pkg/layout decides where they go, and this
// package draws them.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/mkoenig/dobble/pkg/emoji"
	"github.com/mkoenig/dobble/pkg/layout"
)

// Card rendering defaults, matching the classic deck output.
const (
	DefaultCardSize = 1024
	DefaultPadding  = 0.1
)

// CardOptions controls single-card rendering.
type CardOptions struct {
	// Size is the square card image size in pixels.
	Size int

	// Padding is the relative margin kept between a symbol and its
	// layout circle, in [0, 1).
	Padding float64
}

func (o *CardOptions) setDefaults() {
	if o.Size <= 0 {
		o.Size = DefaultCardSize
	}
}

// Card draws one playing card: a white disk on a transparent background
// with every placement's symbol image scaled, rotated and positioned per
// the layout. Symbols come from the provider, keyed by placement identifier
// through the syms index.
func Card(l *layout.CardLayout, syms map[string]emoji.Symbol, provider emoji.Provider, opts CardOptions) (image.Image, error) {
	opts.setDefaults()
	if opts.Padding < 0 || opts.Padding >= 1 {
		return nil, fmt.Errorf("render: padding %v outside [0, 1)", opts.Padding)
	}

	size := float64(opts.Size)
	dc := gg.NewContext(opts.Size, opts.Size)
	dc.DrawCircle(size/2, size/2, size/2)
	dc.SetRGBA(1, 1, 1, 1)
	dc.Fill()

	for _, p := range l.Placements {
		sym, ok := syms[p.Symbol]
		if !ok {
			return nil, fmt.Errorf("render: no symbol for identifier %q", p.Symbol)
		}
		img, err := provider.Load(sym)
		if err != nil {
			return nil, err
		}

		// Unit-disk coordinates to pixels; the emoji square's side equals
		// the placement circle's diameter, so content fitted to the
		// square's inscribed disk stays inside the circle.
		cx := size/2 + p.X*size/2
		cy := size/2 - p.Y*size/2
		side := int(p.Radius * size)
		if side < 1 {
			side = 1
		}

		fitted := fitToDisk(img, opts.Padding)
		resized := imaging.Resize(fitted, side, side, imaging.Lanczos)
		rotated := imaging.Rotate(resized, p.Rotation, color.NRGBA{})

		dc.DrawImageAnchored(rotated, int(cx), int(cy), 0.5, 0.5)
	}

	return dc.Image(), nil
}

// fitToDisk rescales an image so that all of its opaque content lies inside
// the disk inscribed in its square canvas, with the given relative padding.
// The output has the same dimensions as the squared input.
func fitToDisk(img image.Image, padding float64) *image.NRGBA {
	src := squared(img)
	size := src.Bounds().Dx()
	radius := float64(size) / 2

	norm := contentNorm(src)
	if norm == 0 {
		return src
	}

	factor := (1 - padding) * radius / norm
	target := int(float64(size) * factor)
	if target < 1 {
		target = 1
	}
	resized := imaging.Resize(src, target, target, imaging.Lanczos)

	switch {
	case factor < 1:
		canvas := imaging.New(size, size, color.NRGBA{})
		return imaging.PasteCenter(canvas, resized)
	case factor > 1:
		return imaging.CropCenter(resized, size, size)
	default:
		return resized
	}
}

// squared pads a non-square image to a centered square transparent canvas.
func squared(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == b.Dy() {
		return imaging.Clone(img)
	}
	side := max(b.Dx(), b.Dy())
	canvas := imaging.New(side, side, color.NRGBA{})
	return imaging.PasteCenter(canvas, img)
}

// contentNorm returns the largest distance from the image center to any
// pixel with nonzero alpha, or 0 for a fully transparent image.
func contentNorm(img *image.NRGBA) float64 {
	b := img.Bounds()
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2

	maxSq := 0.0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[(x-b.Min.X)*4+3] == 0 {
				continue
			}
			dx := float64(x-b.Min.X) + 0.5 - cx
			dy := float64(y-b.Min.Y) + 0.5 - cy
			if d := dx*dx + dy*dy; d > maxSq {
				maxSq = d
			}
		}
	}
	return math.Sqrt(maxSq)
}
