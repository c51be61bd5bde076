package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a closed date-time range [Start, End].
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the period, both ends inclusive.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// PeriodQ replaces the remanent of matching transactions with Fixed.
type PeriodQ struct {
	Period
	Fixed decimal.Decimal
}

// PeriodP adds Extra to the remanent of matching transactions.
type PeriodP struct {
	Period
	Extra decimal.Decimal
}

// PeriodK is an aggregation window.
type PeriodK struct {
	Period
}

// SavingsByDate is the aggregated savings of one PeriodK window.
// Profits and TaxBenefit are only set by the returns projection.
type SavingsByDate struct {
	Period
	Amount     decimal.Decimal
	Profits    decimal.NullDecimal
	TaxBenefit decimal.NullDecimal
}
