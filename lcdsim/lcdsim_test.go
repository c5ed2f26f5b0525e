// Copyright 2026 The lcd44780 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdsim

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/display/displaytest"
)

func TestGrid(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{Rows: 2, Cols: 16, Writer: &buf})

	if err := d.MoveTo(2, 3); err != nil {
		t.Fatal(err)
	}
	n, err := d.WriteString("hello")
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("expected 5 bytes written, got %d", n)
	}
	rows := d.Text()
	if rows[0] != strings.Repeat(" ", 16) {
		t.Errorf("row 1 not blank: %q", rows[0])
	}
	if rows[1] != "  hello         " {
		t.Errorf("row 2: %q", rows[1])
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Error("rendered frame does not contain the written text")
	}

	if err := d.Clear(); err != nil {
		t.Fatal(err)
	}
	for i, row := range d.Text() {
		if strings.TrimSpace(row) != "" {
			t.Errorf("row %d not blank after Clear: %q", i+1, row)
		}
	}
}

func TestWrapAndDrop(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{Rows: 2, Cols: 4, Writer: &buf})
	if _, err := d.WriteString("abcdefghXYZ"); err != nil {
		t.Fatal(err)
	}
	rows := d.Text()
	if rows[0] != "abcd" || rows[1] != "efgh" {
		t.Errorf("got %q, expected writes to wrap and overflow to be dropped", rows)
	}
}

func TestMoveToBounds(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{Rows: 2, Cols: 16, Writer: &buf})
	for _, pos := range [][2]int{{0, 1}, {3, 1}, {1, 0}, {1, 17}} {
		if err := d.MoveTo(pos[0], pos[1]); err == nil {
			t.Errorf("MoveTo(%d,%d): expected an error", pos[0], pos[1])
		}
	}
}

func TestInterface(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{Rows: 4, Cols: 20, Writer: &buf})
	t.Cleanup(func() {
		_ = d.Halt()
	})
	errs := displaytest.TestTextDisplay(d, false)
	for _, err := range errs {
		if !errors.Is(err, display.ErrNotImplemented) {
			t.Error(err)
		}
	}
}

func TestImage(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{Rows: 2, Cols: 16, Writer: &buf})
	if _, err := d.WriteString("X"); err != nil {
		t.Fatal(err)
	}

	img := d.Image()
	want := image.Rect(0, 0, 16*cellW+2*margin, 2*cellH+2*margin)
	if img.Bounds() != want {
		t.Errorf("bounds %v, expected %v", img.Bounds(), want)
	}
	if img.At(0, 0) != tintOn {
		t.Errorf("corner %v, expected the backlight tint %v", img.At(0, 0), tintOn)
	}

	// The glyph must have put some non background pixels in the first cell.
	found := false
	for y := 0; y < cellH+margin && !found; y++ {
		for x := 0; x < cellW+margin && !found; x++ {
			found = img.At(x, y) == glyph
		}
	}
	if !found {
		t.Error("no glyph pixels rendered")
	}

	if err := d.Backlight(0); err != nil {
		t.Fatal(err)
	}
	if img = d.Image(); img.At(0, 0) != tintOff {
		t.Errorf("corner %v, expected the dark tint %v", img.At(0, 0), tintOff)
	}
}

func TestDisplayOff(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{Rows: 1, Cols: 8, Writer: &buf})
	if _, err := d.WriteString("secret"); err != nil {
		t.Fatal(err)
	}
	if err := d.Display(false); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := d.Home(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "secret") {
		t.Error("text rendered while the display is off")
	}
	// The grid still holds the text, like DDRAM does.
	if d.Text()[0] != "secret  " {
		t.Errorf("grid lost its contents: %q", d.Text()[0])
	}
}
