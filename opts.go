// Copyright 2026 The lcd44780 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd44780

import (
	"errors"
	"fmt"
)

// Opts holds the display geometry and bus address. It is immutable after
// New returns.
type Opts struct {
	// I2CAddr is the address of the PCF8574 backpack. Zero selects the
	// default, 0x27.
	I2CAddr uint16
	// Rows is the number of display rows: 1, 2 or 4.
	Rows int
	// Cols is the number of display columns, typically 16 or 20.
	Cols int
	// Origin is the first valid row and column coordinate of the public
	// API. DefaultOpts uses 1, so the top left cell is (1, 1). A zero
	// origin works too and makes the coordinate system zero based.
	Origin int
}

// DefaultOpts is for a 16x2 display at the usual backpack address.
var DefaultOpts = Opts{
	I2CAddr: 0x27,
	Rows:    2,
	Cols:    16,
	Origin:  1,
}

func (o *Opts) i2cAddr() (uint16, error) {
	switch {
	case o.I2CAddr == 0:
		// Default address.
		return 0x27, nil
	case o.I2CAddr >= 0x20 && o.I2CAddr <= 0x27:
		// PCF8574.
		return o.I2CAddr, nil
	case o.I2CAddr >= 0x38 && o.I2CAddr <= 0x3f:
		// PCF8574A.
		return o.I2CAddr, nil
	default:
		return 0, fmt.Errorf("address %#02x not supported by the PCF8574", o.I2CAddr)
	}
}

func (o *Opts) validate() error {
	switch o.Rows {
	case 1, 2, 4:
	default:
		return fmt.Errorf("unsupported row count %d", o.Rows)
	}
	if o.Cols <= 0 {
		return errors.New("column count must be positive")
	}
	return nil
}
