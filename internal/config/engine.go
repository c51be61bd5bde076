package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/autosave-dev/autosave/internal/model"
	"github.com/autosave-dev/autosave/internal/returns"
	"github.com/autosave-dev/autosave/internal/savings"
)

// RoundUpOptions converts the savings section.
func (c *Config) RoundUpOptions() (savings.Options, error) {
	multiple, err := decimal.NewFromString(c.Savings.Multiple)
	if err != nil {
		return savings.Options{}, fmt.Errorf("parsing savings.multiple %q: %w", c.Savings.Multiple, err)
	}
	if multiple.Sign() <= 0 {
		return savings.Options{}, fmt.Errorf("savings.multiple must be positive, got %s", multiple)
	}
	policy, err := savings.ParseCeilingPolicy(c.Savings.CeilingPolicy)
	if err != nil {
		return savings.Options{}, fmt.Errorf("savings.ceiling_policy: %w", err)
	}
	return savings.Options{Multiple: multiple, Policy: policy}, nil
}

// EngineParams converts the savings and returns sections into projection
// settings. All parse failures are reported together.
func (c *Config) EngineParams() (returns.Params, error) {
	var errs []error
	parse := func(field, s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("parsing %s %q: %w", field, s, err))
		}
		return d
	}

	p := returns.Params{
		RetirementAge: c.Returns.RetirementAge,
		Modes:         make(map[model.Mode]returns.ModeRate, len(c.Returns.Modes)),
		DeductionRate: parse("returns.deduction_rate", c.Returns.DeductionRate),
		DeductionCap:  parse("returns.deduction_cap", c.Returns.DeductionCap),
	}
	if p.RetirementAge < 0 || p.RetirementAge > returns.MaxAge {
		errs = append(errs, fmt.Errorf("returns.retirement_age must be between 0 and %d, got %d", returns.MaxAge, p.RetirementAge))
	}

	opts, err := c.RoundUpOptions()
	if err != nil {
		errs = append(errs, err)
	}
	p.RoundUp = opts

	for name, mc := range c.Returns.Modes {
		mode, err := model.ParseMode(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("returns.modes: %w", err))
			continue
		}
		p.Modes[mode] = returns.ModeRate{
			Rate:       parse("returns.modes."+name+".rate", mc.Rate),
			TaxBenefit: mc.HasTaxBenefit(),
		}
	}

	for i, sc := range c.Returns.TaxSlabs {
		slab := returns.TaxSlab{Rate: parse(fmt.Sprintf("returns.tax_slabs[%d].rate", i), sc.Rate)}
		if sc.UpTo != "" {
			slab.UpTo = decimal.NewNullDecimal(parse(fmt.Sprintf("returns.tax_slabs[%d].up_to", i), sc.UpTo))
		}
		p.Schedule = append(p.Schedule, slab)
	}
	if err := p.Schedule.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("returns.tax_slabs: %w", err))
	}

	if len(errs) > 0 {
		return returns.Params{}, errors.Join(errs...)
	}
	return p, nil
}

// Timeout converts a seconds field.
func Timeout(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
