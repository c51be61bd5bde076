package model

import (
	"fmt"
	"strings"
)

// Mode selects the investment product a projection is computed for.
type Mode string

const (
	// ModeNPS is the long-horizon retirement product; it carries a tax benefit.
	ModeNPS Mode = "nps"
	// ModeIndex is the market-index product.
	ModeIndex Mode = "index"
)

// ParseMode converts a user-supplied mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeNPS, ModeIndex:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, ModeNPS, ModeIndex)
	}
}
