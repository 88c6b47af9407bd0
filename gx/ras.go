// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import "fmt"

// RasColorChannelIDFor maps the channel selector found in asset data to
// the rasterized color a TEV stage reads. Single color or alpha channels
// select their combined channel; COLOR_NULL reads zero.
func RasColorChannelIDFor(v ColorChannelID) (RasColorChannelID, error) {
	switch v {
	case ChanColor0, ChanAlpha0, ChanColor0A0:
		return RasColor0A0, nil
	case ChanColor1, ChanAlpha1, ChanColor1A1:
		return RasColor1A1, nil
	case ChanAlphaBump:
		return RasAlphaBump, nil
	case ChanAlphaBumpN:
		return RasAlphaBumpN, nil
	case ChanColorZero, ChanColorNull:
		return RasColorZero, nil
	default:
		return 0, fmt.Errorf("%w: color channel %v", ErrInvalidEnum, v)
	}
}
