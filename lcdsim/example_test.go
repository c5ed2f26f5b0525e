// Copyright 2026 The lcd44780 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdsim_test

import (
	"image/png"
	"log"
	"os"

	"github.com/psychotimmy/lcd44780/lcdsim"
)

// The simulator takes the place of the real driver when there is no
// hardware around: both implement display.TextDisplay.
func Example() {
	lcd := lcdsim.New(&lcdsim.Opts{Rows: 4, Cols: 20})
	_ = lcd.MoveTo(1, 1)
	if _, err := lcd.WriteString("Hello from Go!"); err != nil {
		log.Fatal(err)
	}
	_ = lcd.MoveTo(4, 1)
	_, _ = lcd.WriteString("no solder required")
	_ = lcd.Halt()
}

// Dump a frame to a PNG for inspection.
func ExampleDev_Image() {
	lcd := lcdsim.New(&lcdsim.Opts{Rows: 2, Cols: 16})
	_, _ = lcd.WriteString("frame grab")

	f, err := os.Create("frame.png")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, lcd.Image()); err != nil {
		log.Fatal(err)
	}
}
