package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spend as submitted by the client.
type Expense struct {
	Date   time.Time
	Amount decimal.Decimal // may be negative or fractional
}

// Transaction is an Expense with its round-up target and savings contribution.
type Transaction struct {
	Date     time.Time
	Amount   decimal.Decimal
	Ceiling  decimal.Decimal // multiple of the rounding step
	Remanent decimal.Decimal // ceiling - amount, before period adjustments
}

// Expense returns the raw expense the transaction was derived from.
func (t Transaction) Expense() Expense {
	return Expense{Date: t.Date, Amount: t.Amount}
}

// DedupKey identifies a transaction for duplicate detection.
// Two transactions collide when their instants and numeric amounts are equal,
// regardless of location or trailing zeros ("250" == "250.00").
func (t Transaction) DedupKey() string {
	return t.Date.UTC().Format(time.RFC3339Nano) + "|" + t.Amount.String()
}

// RejectReason explains why a transaction was excluded.
type RejectReason string

const (
	RejectNegativeAmount RejectReason = "negative amount"
	RejectDuplicate      RejectReason = "duplicate"
)

// InvalidTransaction is a transaction excluded from aggregation.
type InvalidTransaction struct {
	Transaction
	Reason RejectReason
}

// Message is the human-readable rejection reason.
func (t InvalidTransaction) Message() string {
	return string(t.Reason)
}
