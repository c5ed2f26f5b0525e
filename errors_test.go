// Copyright 2026 The lcd44780 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd44780

import (
	"errors"
	"strings"
	"testing"
)

func TestPositionKindDescriptions(t *testing.T) {
	kinds := []PositionKind{RowTooLow, RowTooHigh, ColOutOfRange, ColTooLow, ColTooHigh}
	seen := map[string]bool{}
	for _, k := range kinds {
		s := k.String()
		if strings.Contains(s, "unknown") {
			t.Errorf("kind %d: generic description %q", k, s)
		}
		if seen[s] {
			t.Errorf("kind %d: duplicate description %q", k, s)
		}
		seen[s] = true
	}
	if s := PositionKind(42).String(); !strings.Contains(s, "unknown") {
		t.Errorf("unrecognized kind: got %q, expected a generic description", s)
	}
}

func TestPositionErrorIs(t *testing.T) {
	err := error(&PositionError{Kind: ColTooHigh, Row: 1, Col: 99})
	if !errors.Is(err, ErrColTooHigh) {
		t.Error("expected a match on the kind regardless of coordinates")
	}
	if errors.Is(err, ErrColTooLow) {
		t.Error("unexpected match across kinds")
	}
	var pe *PositionError
	if !errors.As(err, &pe) || pe.Col != 99 {
		t.Error("errors.As should recover the coordinates")
	}
}

func TestPositionErrorMessage(t *testing.T) {
	err := &PositionError{Kind: RowTooLow, Row: 0, Col: 1}
	msg := err.Error()
	if !strings.HasPrefix(msg, packageName) {
		t.Errorf("message %q is missing the package prefix", msg)
	}
	if !strings.Contains(msg, RowTooLow.String()) {
		t.Errorf("message %q is missing the description", msg)
	}
}

func TestLogPositionError(t *testing.T) {
	// Must not panic, whatever it is handed.
	LogPositionError(&PositionError{Kind: ColOutOfRange, Row: 1, Col: 42})
	LogPositionError(errors.New("not a position error"))
}
