// Copyright 2026 The lcd44780 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdsim

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Cell geometry for basicfont.Face7x13 plus a little padding.
const (
	cellW  = 8
	cellH  = 14
	margin = 4
)

var (
	tintOff = color.RGBA{R: 0x10, G: 0x18, B: 0x10, A: 0xff}
	tintOn  = color.RGBA{R: 0x20, G: 0x68, B: 0x30, A: 0xff}
	glyph   = color.RGBA{R: 0xe8, G: 0xff, B: 0xf0, A: 0xff}
)

// Image renders the current grid to an image, for dumping a frame to a
// PNG or comparing against a golden file in tests. The background follows
// the backlight state; an off display renders as an empty panel.
func (d *Dev) Image() image.Image {
	bounds := image.Rect(0, 0, d.cols*cellW+2*margin, d.rows*cellH+2*margin)
	img := image.NewRGBA(bounds)
	bg := tintOff
	if d.backlight {
		bg = tintOn
	}
	draw.Draw(img, bounds, &image.Uniform{bg}, image.Point{}, draw.Src)
	if !d.on {
		return img
	}
	f := basicfont.Face7x13
	for r, line := range d.Text() {
		drawer := font.Drawer{
			Dst:  img,
			Src:  &image.Uniform{glyph},
			Face: f,
			Dot:  fixed.P(margin, margin+(r+1)*cellH-f.Descent),
		}
		drawer.DrawString(line)
	}
	return img
}
