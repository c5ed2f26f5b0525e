// Copyright 2026 The lcd44780 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd44780

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// ErrNotImplemented is returned for features the display does not support.
var ErrNotImplemented = fmt.Errorf("%s: %w", packageName, display.ErrNotImplemented)

// Not supported by this device. Returns display.ErrNotImplemented.
func (d *Dev) AutoScroll(enabled bool) error {
	return ErrNotImplemented
}

// Return the number of columns the display supports.
func (d *Dev) Cols() int {
	return d.cols
}

// Return the number of rows the display supports.
func (d *Dev) Rows() int {
	return d.rows
}

// Return the min column position.
func (d *Dev) MinCol() int {
	return d.origin
}

// Return the min row position.
func (d *Dev) MinRow() int {
	return d.origin
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
			return fmt.Errorf("%s: unexpected cursor mode %d", packageName, mode)
		}
	}
	return d.writeDisplayControl()
}

// Turn the display on / off.
func (d *Dev) Display(on bool) error {
	d.on = on
	return d.writeDisplayControl()
}

// Move the cursor forward or backward.
func (d *Dev) Move(dir display.CursorDirection) error {
	cmd := cmdCursorShift
	switch dir {
	case display.Backward:
	case display.Forward:
		cmd |= shiftRight
	case display.Up, display.Down:
		fallthrough
	default:
		return ErrNotImplemented
	}
	return d.WriteCmd4(cmd)
}

// Move the cursor to an arbitrary origin based position.
func (d *Dev) MoveTo(row, col int) error {
	if err := d.checkBounds(row, col); err != nil {
		return err
	}
	return d.setPosition(row-d.origin, col-d.origin)
}

// Write data bytes to the display at the current cursor position.
func (d *Dev) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := d.WriteData(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Write a string output to the display at the current cursor position.
func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}

// Turn the display's backlight on (any non zero intensity) or off. The
// backpack has a single backlight line, so intermediate intensities are
// not available.
func (d *Dev) Backlight(intensity display.Intensity) error {
	return d.SetBacklight(intensity > 0)
}

// Halt clears the display and turns the backlight and the display off.
func (d *Dev) Halt() error {
	err := d.Clear()
	if e := d.SetBacklight(false); err == nil {
		err = e
	}
	if e := d.Display(false); err == nil {
		err = e
	}
	return err
}

var _ display.TextDisplay = &Dev{}
var _ display.DisplayBacklight = &Dev{}
var _ conn.Resource = &Dev{}
