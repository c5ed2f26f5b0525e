// Copyright 2026 The lcd44780 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd44780

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// PositionKind identifies which coordinate constraint a bounds checked
// operation violated.
type PositionKind int

const (
	positionKindUnknown PositionKind = iota
	// RowTooLow means the row is lower than the origin.
	RowTooLow
	// RowTooHigh means the row is higher than origin+rows-1.
	RowTooHigh
	// ColOutOfRange means the column is outside the row entirely.
	ColOutOfRange
	// ColTooLow means the column is lower than the origin.
	ColTooLow
	// ColTooHigh means the column is higher than origin+cols-1.
	ColTooHigh
)

var positionDescriptions = map[PositionKind]string{
	RowTooLow:     "row number too low (less than the origin)",
	RowTooHigh:    "row number too high (greater than origin+rows-1)",
	ColOutOfRange: "column number out of range",
	ColTooLow:     "column number too low (less than the origin)",
	ColTooHigh:    "column number too high (greater than origin+cols-1)",
}

// String returns the description of the kind. Unrecognized kinds get a
// generic message.
func (k PositionKind) String() string {
	if s, ok := positionDescriptions[k]; ok {
		return s
	}
	return "unknown HD44780U position error"
}

// PositionError reports a row or column outside the configured display
// geometry. It is detected before any bus activity: an operation that
// returns one has written nothing to the display.
type PositionError struct {
	Kind PositionKind
	Row  int
	Col  int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s: %s (row %d, col %d)", packageName, e.Kind, e.Row, e.Col)
}

// Is matches any PositionError of the same kind, so callers can compare
// against the Err* sentinels with errors.Is.
func (e *PositionError) Is(target error) bool {
	t, ok := target.(*PositionError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrRowTooLow     = &PositionError{Kind: RowTooLow}
	ErrRowTooHigh    = &PositionError{Kind: RowTooHigh}
	ErrColOutOfRange = &PositionError{Kind: ColOutOfRange}
	ErrColTooLow     = &PositionError{Kind: ColTooLow}
	ErrColTooHigh    = &PositionError{Kind: ColTooHigh}
)

// LogPositionError logs the description of a position error. Errors that
// are not a PositionError get a generic message.
func LogPositionError(err error) {
	var pe *PositionError
	if errors.As(err, &pe) {
		log.Errorf("%s: %s (row %d, col %d)", packageName, pe.Kind, pe.Row, pe.Col)
		return
	}
	log.Errorf("%s: %s: %v", packageName, positionKindUnknown, err)
}
