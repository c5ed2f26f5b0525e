// Copyright 2026 The lcd44780 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd44780

import (
	log "github.com/sirupsen/logrus"
)

// PCF8574 backpack control lines. They occupy the low nibble of every
// byte sent to the expander; the data nibble sits in the high four bits.
const (
	backlightBit byte = 0x08
	enableBit    byte = 0x04
	readWriteBit byte = 0x02
	registerBit  byte = 0x01
)

// WriteCmd8 writes an 8 bit style command instruction. The command is
// shifted into the data nibble and sent with the enable pulse, register
// select low.
//
// Only valid during the initialization wake-up sequence. Once the
// controller is in 4 bit mode an 8 bit style command would desynchronize
// it, so use WriteCmd4 instead.
func (d *Dev) WriteCmd8(data byte) error {
	log.Debugf("%s: cmd8 %#02x", packageName, data)
	b := (data<<4)&0xf0 | d.backlight | enableBit
	if err := d.writeByte(b); err != nil {
		return wrap(err)
	}
	return wrap(d.writeByte(b &^ enableBit))
}

// WriteCmd4 writes an 8 bit controller command as two 4 bit nibble
// transfers, register select low (command register).
func (d *Dev) WriteCmd4(data byte) error {
	log.Debugf("%s: cmd4 %#02x", packageName, data)
	return wrap(d.writeNibbles(data, 0))
}

// WriteData writes an 8 bit data byte as two 4 bit nibble transfers,
// register select high (data register). Otherwise identical to WriteCmd4.
func (d *Dev) WriteData(data byte) error {
	log.Debugf("%s: data %#02x", packageName, data)
	return wrap(d.writeNibbles(data, registerBit))
}

// writeNibbles sends the high nibble then the low nibble of data, each
// OR'd with the backlight flag and the given register select bit.
func (d *Dev) writeNibbles(data, rs byte) error {
	if err := d.strobe(data&0xf0 | d.backlight | rs); err != nil {
		return err
	}
	return d.strobe((data<<4)&0xf0 | d.backlight | rs)
}

// strobe latches one nibble into the controller: the byte is written with
// enable high, then written again with enable low.
func (d *Dev) strobe(b byte) error {
	if err := d.writeByte(b | enableBit); err != nil {
		return err
	}
	return d.writeByte(b &^ enableBit)
}

func (d *Dev) writeByte(b byte) error {
	return d.c.Tx([]byte{b}, nil)
}
