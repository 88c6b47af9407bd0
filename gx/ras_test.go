// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"errors"
	"testing"
)

func TestRasColorChannelIDFor(t *testing.T) {
	tests := []struct {
		in   ColorChannelID
		want RasColorChannelID
	}{
		{ChanColor0, RasColor0A0},
		{ChanAlpha0, RasColor0A0},
		{ChanColor0A0, RasColor0A0},
		{ChanColor1, RasColor1A1},
		{ChanColor1A1, RasColor1A1},
		{ChanAlphaBump, RasAlphaBump},
		{ChanAlphaBumpN, RasAlphaBumpN},
		{ChanColorZero, RasColorZero},
		{ChanColorNull, RasColorZero},
	}
	for _, tt := range tests {
		got, err := RasColorChannelIDFor(tt.in)
		if err != nil {
			t.Errorf("RasColorChannelIDFor(%v): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("RasColorChannelIDFor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := RasColorChannelIDFor(ColorChannelID(42)); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("invalid channel err = %v, want ErrInvalidEnum", err)
	}
}
