// Package savings turns expenses into round-up savings and applies the
// period rules that adjust and aggregate them. Every function is pure:
// inputs are never mutated and no state survives a call.
package savings

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/autosave-dev/autosave/internal/model"
)

// CeilingPolicy selects how the fractional part of an amount is treated
// before rounding up.
type CeilingPolicy string

const (
	// CeilingTruncate drops the fractional part before rounding up, so
	// 300.50 has ceiling 300 and remanent -0.50.
	CeilingTruncate CeilingPolicy = "truncate"
	// CeilingExact rounds up the full amount, so 300.50 has ceiling 400.
	CeilingExact CeilingPolicy = "exact"
)

// ParseCeilingPolicy converts a configured policy name.
func ParseCeilingPolicy(s string) (CeilingPolicy, error) {
	switch p := CeilingPolicy(s); p {
	case CeilingTruncate, CeilingExact:
		return p, nil
	default:
		return "", fmt.Errorf("unknown ceiling policy %q", s)
	}
}

// DefaultMultiple is the rounding step for ceilings.
var DefaultMultiple = decimal.NewFromInt(100)

// Options controls the round-up computation.
type Options struct {
	Multiple decimal.Decimal
	Policy   CeilingPolicy
}

// DefaultOptions returns the legacy behavior: truncate, then round up to 100.
func DefaultOptions() Options {
	return Options{Multiple: DefaultMultiple, Policy: CeilingTruncate}
}

func (o Options) multiple() decimal.Decimal {
	if o.Multiple.Sign() <= 0 {
		return DefaultMultiple
	}
	return o.Multiple
}

// ParseResult holds round-up transactions in input order and their totals.
type ParseResult struct {
	Transactions  []model.Transaction
	TotalAmount   decimal.Decimal
	TotalCeiling  decimal.Decimal
	TotalRemanent decimal.Decimal
}

// Ceiling returns the smallest multiple of the rounding step that is >= the
// amount (or its integer part, under CeilingTruncate).
func Ceiling(amount decimal.Decimal, opts Options) decimal.Decimal {
	base := amount
	if opts.Policy != CeilingExact {
		base = amount.Truncate(0)
	}
	m := opts.multiple()
	return base.Div(m).Ceil().Mul(m)
}

// RoundUpOne converts a single expense into a transaction.
func RoundUpOne(e model.Expense, opts Options) model.Transaction {
	ceiling := Ceiling(e.Amount, opts)
	return model.Transaction{
		Date:     e.Date,
		Amount:   e.Amount,
		Ceiling:  ceiling,
		Remanent: ceiling.Sub(e.Amount),
	}
}

// RoundUp converts expenses into transactions, preserving order.
func RoundUp(expenses []model.Expense, opts Options) ParseResult {
	res := ParseResult{
		Transactions:  make([]model.Transaction, 0, len(expenses)),
		TotalAmount:   decimal.Zero,
		TotalCeiling:  decimal.Zero,
		TotalRemanent: decimal.Zero,
	}
	for _, e := range expenses {
		t := RoundUpOne(e, opts)
		res.Transactions = append(res.Transactions, t)
		res.TotalAmount = res.TotalAmount.Add(t.Amount)
		res.TotalCeiling = res.TotalCeiling.Add(t.Ceiling)
		res.TotalRemanent = res.TotalRemanent.Add(t.Remanent)
	}
	return res
}
