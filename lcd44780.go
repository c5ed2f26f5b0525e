// Copyright 2026 The lcd44780 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcd44780 controls HD44780U character LCD displays connected
// through a PCF8574 I²C "backpack" expander.
//
// The backpack wires the expander's high nibble to the display's D4-D7
// lines and the low nibble to the control lines, which forces the
// HD44780U into 4 bit mode: every command or data byte is sent as two
// enable pulsed nibble transfers. The backlight bit is OR'd into every
// byte written to the bus.
//
// The driver assumes single threaded exclusive ownership of the display.
// Interleaving operations from multiple goroutines would corrupt the
// nibble sequence.
//
// Implements periph.io/x/conn/v3/display.TextDisplay.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/HD44780.pdf
//
// # Product Information
//
// https://www.handsontec.com/dataspecs/I2C_2004_LCD.pdf
package lcd44780

import (
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/i2c"
)

// HD44780U instruction set.
const (
	cmdClearDisplay   byte = 0x01
	cmdReturnHome     byte = 0x02
	cmdEntryModeSet   byte = 0x04
	cmdDisplayControl byte = 0x08
	cmdCursorShift    byte = 0x10
	cmdFunctionSet    byte = 0x20
	cmdSetDDRAMAddr   byte = 0x80
)

// Instruction flags, OR'd with the matching command byte.
const (
	entryIncrement byte = 0x02 // cmdEntryModeSet

	displayOn byte = 0x04 // cmdDisplayControl
	cursorOn  byte = 0x02 // cmdDisplayControl
	blinkOn   byte = 0x01 // cmdDisplayControl

	shiftRight byte = 0x04 // cmdCursorShift

	mode8Bit byte = 0x10 // cmdFunctionSet
	twoLine  byte = 0x08 // cmdFunctionSet
)

// Hardware settle times. The controller ignores traffic that arrives too
// soon after these operations, so the delays are mandatory blocking waits.
const (
	settlePowerUp = 100 * time.Millisecond
	settleClear   = 100 * time.Millisecond
	settleHome    = 50 * time.Millisecond
)

// ddramRowAddr holds the DDRAM start address of each display row, for up
// to four rows.
var ddramRowAddr = [4]byte{0x00, 0x40, 0x14, 0x54}

const packageName = "lcd44780"

// Dev is a handle to an initialized display. Row and column geometry is
// fixed at construction; the only mutable state the driver keeps is the
// backlight bit, since the hardware itself holds the cursor position and
// DDRAM contents.
type Dev struct {
	c       *i2c.Dev
	rows    int
	cols    int
	origin  int
	rowAddr [4]byte

	backlight byte
	on        bool
	blink     bool
	cursor    bool

	// sleep performs the hardware settle waits. Tests substitute a
	// recording implementation.
	sleep func(time.Duration)
}

func wrap(err error) error {
	if err == nil || strings.HasPrefix(err.Error(), packageName) {
		return err
	}
	return fmt.Errorf("%s: %w", packageName, err)
}

// New returns a display driver on the given bus and performs the hardware
// wake-up sequence. The bus must already be open; closing it afterwards is
// the caller's responsibility.
//
// Use default options if nil is used.
func New(bus i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	addr, err := opts.i2cAddr()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", packageName, err)
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", packageName, err)
	}
	d := &Dev{
		c:         &i2c.Dev{Bus: bus, Addr: addr},
		rows:      opts.Rows,
		cols:      opts.Cols,
		origin:    opts.Origin,
		rowAddr:   ddramRowAddr,
		backlight: backlightBit,
		sleep:     time.Sleep,
	}
	if err := d.init(); err != nil {
		return nil, wrap(err)
	}
	return d, nil
}

// init runs the power-up sequence from the datasheet: three "function set,
// 8 bit" commands put the controller into a known state, then a final 8
// bit style command drops it into 4 bit mode. Everything after that point
// must use the nibble protocol; another 8 bit style command would
// desynchronize the controller.
func (d *Dev) init() error {
	d.sleep(settlePowerUp) // Wait for power up.

	wake := (cmdFunctionSet | mode8Bit) >> 4
	for i := 0; i < 3; i++ {
		if err := d.WriteCmd8(wake); err != nil {
			return err
		}
		d.sleep(settlePowerUp)
	}
	if err := d.WriteCmd8(cmdFunctionSet >> 4); err != nil {
		return err
	}
	d.sleep(settlePowerUp)

	// 4 bit mode from here on.
	if err := d.WriteCmd4(cmdFunctionSet | twoLine); err != nil {
		return err
	}
	if err := d.WriteCmd4(cmdDisplayControl); err != nil {
		return err
	}
	if err := d.WriteCmd4(cmdEntryModeSet | entryIncrement); err != nil {
		return err
	}
	if err := d.Clear(); err != nil {
		return err
	}
	return d.SetDisplay(true, false, false)
}

// WriteStringAt writes text starting at the given row and column. The
// coordinates are origin based; text longer than the remaining columns on
// the row is silently truncated, it never wraps onto the next row.
//
// It returns the number of characters written. A PositionError is
// returned, and nothing is sent on the bus, when the coordinates are
// outside the configured geometry.
func (d *Dev) WriteStringAt(text string, row, col int) (int, error) {
	if err := d.checkBounds(row, col); err != nil {
		LogPositionError(err)
		return 0, err
	}
	if max := d.cols - col + d.origin; len(text) > max {
		text = text[:max]
	}
	if err := d.setPosition(row-d.origin, col-d.origin); err != nil {
		return 0, err
	}
	for i := 0; i < len(text); i++ {
		if err := d.WriteData(text[i]); err != nil {
			return i, err
		}
	}
	return len(text), nil
}

// WriteCharAt writes a single character at the given row and column. The
// same coordinate validation as WriteStringAt applies.
func (d *Dev) WriteCharAt(ch byte, row, col int) error {
	if err := d.checkBounds(row, col); err != nil {
		LogPositionError(err)
		return err
	}
	if err := d.setPosition(row-d.origin, col-d.origin); err != nil {
		return err
	}
	return d.WriteData(ch)
}

// ClearLine blanks a row from the given column to the end of the row by
// writing spaces over it.
func (d *Dev) ClearLine(row, col int) error {
	if col < d.origin || col > d.origin+d.cols-1 {
		err := &PositionError{Kind: ColOutOfRange, Row: row, Col: col}
		LogPositionError(err)
		return err
	}
	_, err := d.WriteStringAt(strings.Repeat(" ", d.cols-col+d.origin), row, col)
	return err
}

// Clear clears the display, which also returns the cursor to the home
// position. Clearing is one of the slowest controller operations and needs
// a long settle time.
func (d *Dev) Clear() error {
	err := d.WriteCmd4(cmdClearDisplay)
	d.sleep(settleClear)
	return err
}

// Home returns the cursor to the home position.
func (d *Dev) Home() error {
	err := d.WriteCmd4(cmdReturnHome)
	d.sleep(settleHome)
	return err
}

// SetDisplay sets the display, blink and cursor on or off with a single
// display control command.
func (d *Dev) SetDisplay(on, blink, cursor bool) error {
	d.on = on
	d.blink = blink
	d.cursor = cursor
	return d.writeDisplayControl()
}

// SetBacklight turns the backlight on or off. The backlight is driven by
// the backpack, not the HD44780U, so the stored flag byte is written
// directly to the bus and no settle time applies. The flag is OR'd into
// every subsequent byte sent to the expander.
func (d *Dev) SetBacklight(on bool) error {
	if on {
		d.backlight = backlightBit
	} else {
		d.backlight = 0
	}
	return wrap(d.writeByte(d.backlight))
}

// writeDisplayControl sends a display control command composed from the
// stored on/blink/cursor flags.
func (d *Dev) writeDisplayControl() error {
	cmd := cmdDisplayControl
	if d.on {
		cmd |= displayOn
	}
	if d.blink {
		cmd |= blinkOn
	}
	if d.cursor {
		cmd |= cursorOn
	}
	return d.WriteCmd4(cmd)
}

// setPosition issues a set DDRAM address command for the given zero based
// row and column. Bounds are enforced by callers.
func (d *Dev) setPosition(row, col int) error {
	return d.WriteCmd4(cmdSetDDRAMAddr | (d.rowAddr[row] + byte(col)))
}

// checkBounds validates origin based coordinates against the configured
// geometry. It reports the first violated constraint.
func (d *Dev) checkBounds(row, col int) error {
	switch {
	case row < d.origin:
		return &PositionError{Kind: RowTooLow, Row: row, Col: col}
	case row > d.origin+d.rows-1:
		return &PositionError{Kind: RowTooHigh, Row: row, Col: col}
	case col < d.origin:
		return &PositionError{Kind: ColTooLow, Row: row, Col: col}
	case col > d.origin+d.cols-1:
		return &PositionError{Kind: ColTooHigh, Row: row, Col: col}
	}
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s{%s} Rows: %d Cols: %d", packageName, d.c.String(), d.rows, d.cols)
}

var _ fmt.Stringer = &Dev{}
