package returns

import (
	"github.com/shopspring/decimal"

	"github.com/autosave-dev/autosave/internal/model"
)

// ModeRate is the nominal annual growth of an investment mode.
type ModeRate struct {
	Rate       decimal.Decimal
	TaxBenefit bool
}

// DefaultModeRates returns the growth table for the supported modes.
func DefaultModeRates() map[model.Mode]ModeRate {
	return map[model.Mode]ModeRate{
		model.ModeNPS:   {Rate: decimal.RequireFromString("0.0711"), TaxBenefit: true},
		model.ModeIndex: {Rate: decimal.RequireFromString("0.1449")},
	}
}
