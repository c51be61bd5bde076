package returns

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxSlab is one band of a progressive schedule. Rate applies to the part of
// income between the previous slab's bound and UpTo. A slab without UpTo
// is unbounded and must come last.
type TaxSlab struct {
	UpTo decimal.NullDecimal
	Rate decimal.Decimal
}

// TaxSchedule is an ordered list of slabs with ascending bounds.
type TaxSchedule []TaxSlab

// DefaultTaxSchedule returns the slab table used for the NPS deduction.
func DefaultTaxSchedule() TaxSchedule {
	return TaxSchedule{
		bounded(700000, "0"),
		bounded(1000000, "0.10"),
		bounded(1200000, "0.15"),
		bounded(1500000, "0.20"),
		{Rate: decimal.RequireFromString("0.30")},
	}
}

func bounded(upTo int64, rate string) TaxSlab {
	return TaxSlab{
		UpTo: decimal.NewNullDecimal(decimal.NewFromInt(upTo)),
		Rate: decimal.RequireFromString(rate),
	}
}

// Validate checks that bounds ascend and only the last slab is unbounded.
func (s TaxSchedule) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("tax schedule is empty")
	}
	prev := decimal.Zero
	for i, slab := range s {
		if slab.Rate.IsNegative() {
			return fmt.Errorf("slab %d: negative rate %s", i, slab.Rate)
		}
		if !slab.UpTo.Valid {
			if i != len(s)-1 {
				return fmt.Errorf("slab %d: only the last slab may be unbounded", i)
			}
			continue
		}
		if !slab.UpTo.Decimal.GreaterThan(prev) {
			return fmt.Errorf("slab %d: bound %s does not exceed %s", i, slab.UpTo.Decimal, prev)
		}
		prev = slab.UpTo.Decimal
	}
	return nil
}

// Tax returns the progressive tax owed on income. Income past the last
// bound of a fully bounded schedule is taxed at the last rate.
func (s TaxSchedule) Tax(income decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	prev := decimal.Zero
	for i, slab := range s {
		last := i == len(s)-1
		if slab.UpTo.Valid && !last && income.GreaterThan(slab.UpTo.Decimal) {
			tax = tax.Add(slab.UpTo.Decimal.Sub(prev).Mul(slab.Rate))
			prev = slab.UpTo.Decimal
			continue
		}
		tax = tax.Add(income.Sub(prev).Mul(slab.Rate))
		break
	}
	return tax
}
