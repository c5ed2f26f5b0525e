// Copyright 2026 The lcd44780 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcdsim emulates a character LCD on the terminal (stdout) using
// ANSI color codes.
//
// Useful while you are waiting for your display hardware to come by mail,
// or for exercising display code on a machine with no I²C bus. It
// implements the same display.TextDisplay interface as the real driver,
// so the two are interchangeable.
package lcdsim

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// ErrNotImplemented is returned for features the simulator does not
// support.
var ErrNotImplemented = fmt.Errorf("lcdsim: %w", display.ErrNotImplemented)

// Opts represents the options available for the simulator.
type Opts struct {
	// Rows and Cols define the emulated geometry. Defaults to 2x16.
	Rows int
	Cols int
	// Palette renders the backlight bezel. Defaults to ansi256.Default.
	Palette *ansi256.Palette
	// Writer receives the rendered frames. Defaults to a colorable
	// stdout.
	Writer io.Writer
}

// Dev is a character LCD emulator that outputs to the console. It keeps
// the full cell grid in memory, unlike the real driver which leaves the
// contents to the hardware's DDRAM.
type Dev struct {
	w       io.Writer
	rows    int
	cols    int
	palette ansi256.Palette

	cells     []byte
	row, col  int // Zero based cursor.
	on        bool
	cursor    bool
	blink     bool
	backlight bool

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	rows, cols := opts.Rows, opts.Cols
	if rows == 0 {
		rows = 2
	}
	if cols == 0 {
		cols = 16
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	d := &Dev{
		w:         w,
		rows:      rows,
		cols:      cols,
		palette:   *p,
		cells:     bytes.Repeat([]byte{' '}, rows*cols),
		on:        true,
		backlight: true,
	}
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("lcdsim{%dx%d}", d.cols, d.rows)
}

// Text returns the current contents of the grid, one string per row.
func (d *Dev) Text() []string {
	out := make([]string, d.rows)
	for r := 0; r < d.rows; r++ {
		out[r] = string(d.cells[r*d.cols : (r+1)*d.cols])
	}
	return out
}

// Not supported by the simulator. Returns display.ErrNotImplemented.
func (d *Dev) AutoScroll(enabled bool) error {
	return ErrNotImplemented
}

// Clears the grid and moves the cursor to the first position.
func (d *Dev) Clear() error {
	for i := range d.cells {
		d.cells[i] = ' '
	}
	d.row, d.col = 0, 0
	return d.render()
}

// Return the number of columns the simulator was created with.
func (d *Dev) Cols() int {
	return d.cols
}

// Return the number of rows the simulator was created with.
func (d *Dev) Rows() int {
	return d.rows
}

// Return the min column position.
func (d *Dev) MinCol() int {
	return 1
}

// Return the min row position.
func (d *Dev) MinRow() int {
	return 1
}

// Set the cursor mode. You can pass multiple arguments.
// Cursor(CursorOff, CursorUnderline)
func (d *Dev) Cursor(modes ...display.CursorMode) error {
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
			d.cursor = false
			d.blink = false
		case display.CursorUnderline:
			d.cursor = true
		case display.CursorBlink, display.CursorBlock:
			d.cursor = true
			d.blink = true
		default:
			return fmt.Errorf("lcdsim: unexpected cursor mode %d", mode)
		}
	}
	return d.render()
}

// Turn the emulated display on / off.
func (d *Dev) Display(on bool) error {
	d.on = on
	return d.render()
}

// Move the cursor home (MinRow(),MinCol()).
func (d *Dev) Home() error {
	d.row, d.col = 0, 0
	return d.render()
}

// Move the cursor forward or backward within the current row.
func (d *Dev) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Backward:
		if d.col > 0 {
			d.col--
		}
	case display.Forward:
		if d.col < d.cols-1 {
			d.col++
		}
	case display.Up, display.Down:
		fallthrough
	default:
		return ErrNotImplemented
	}
	return d.render()
}

// Move the cursor to an arbitrary position.
func (d *Dev) MoveTo(row, col int) error {
	if row < d.MinRow() || row > d.rows || col < d.MinCol() || col > d.cols {
		return fmt.Errorf("lcdsim: MoveTo(%d,%d) value out of range", row, col)
	}
	d.row, d.col = row-1, col-1
	return d.render()
}

// Write bytes into the grid at the cursor position. Writing past the end
// of a row continues on the next one; bytes past the last cell are
// dropped.
func (d *Dev) Write(p []byte) (int, error) {
	for _, b := range p {
		pos := d.row*d.cols + d.col
		if pos >= len(d.cells) {
			break
		}
		d.cells[pos] = b
		if d.col++; d.col == d.cols {
			d.col = 0
			d.row++
		}
	}
	return len(p), d.render()
}

// Write a string into the grid at the cursor position.
func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}

// Turn the emulated backlight on or off. It tints the bezel drawn around
// the grid.
func (d *Dev) Backlight(intensity display.Intensity) error {
	d.backlight = intensity > 0
	return d.render()
}

// Halt resets the terminal attributes so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// render pushes a full frame to the writer: a backlight tinted bezel
// around the cell grid, with the cursor cell in reverse video.
func (d *Dev) render() error {
	bl := color.NRGBA{R: 0x00, G: 0x20, B: 0x08, A: 0xff}
	if d.backlight {
		bl = color.NRGBA{R: 0x40, G: 0xff, B: 0x80, A: 0xff}
	}
	block := d.palette.Block(bl)
	bezel := strings.Repeat(block, d.cols+2)

	d.buf.Reset()
	d.buf.WriteString("\033[0m\n")
	d.buf.WriteString(bezel)
	d.buf.WriteByte('\n')
	for r := 0; r < d.rows; r++ {
		d.buf.WriteString(block)
		for c := 0; c < d.cols; c++ {
			ch := d.cells[r*d.cols+c]
			if !d.on {
				ch = ' '
			}
			if d.on && d.cursor && r == d.row && c == d.col {
				d.buf.WriteString("\033[7m")
				d.buf.WriteByte(ch)
				d.buf.WriteString("\033[27m")
			} else {
				d.buf.WriteByte(ch)
			}
		}
		d.buf.WriteString(block)
		d.buf.WriteByte('\n')
	}
	d.buf.WriteString(bezel)
	d.buf.WriteString("\033[0m\n")
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.TextDisplay = &Dev{}
var _ display.DisplayBacklight = &Dev{}
var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
