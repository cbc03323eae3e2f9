// Package raster draws snowflake outlines into images.
package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"kochflake/internal/geom"
)

var (
	Background = color.RGBA{R: 0x0B, G: 0x0F, B: 0x14, A: 0xFF}
	Fill       = color.RGBA{R: 0x7C, G: 0x3A, B: 0xED, A: 0xFF}
)

// Render fills ring into a size×size image, fitted with a margin and y pointing up.
func Render(ring []geom.Point, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, errors.New("raster: size must be positive")
	}
	if len(ring) < 3 {
		return nil, errors.New("raster: ring needs at least 3 points")
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	bb := geom.BBoxOfRing(ring).Square(0.05)
	scale := float64(size) / bb.Width()
	project := func(p geom.Point) (float32, float32) {
		x := (p.X - bb.MinX) * scale
		y := (bb.MaxY - p.Y) * scale
		return float32(x), float32(y)
	}

	z := vector.NewRasterizer(size, size)
	z.MoveTo(project(ring[0]))
	for _, p := range ring[1:] {
		z.LineTo(project(p))
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(Fill), image.Point{})
	return dst, nil
}

// EncodePNG renders ring and writes it as PNG.
func EncodePNG(w io.Writer, ring []geom.Point, size int) error {
	img, err := Render(ring, size)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
