package savings

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autosave-dev/autosave/internal/model"
)

// Rules is the set of period rules supplied with a request.
type Rules struct {
	Q []model.PeriodQ
	P []model.PeriodP
	K []model.PeriodK
}

// FilterResult holds period-adjusted transactions and the negative-amount
// rejects, both in input order.
type FilterResult struct {
	Valid   []model.Transaction
	Invalid []model.InvalidTransaction
}

// Filter applies the Q and P rules to every non-negative transaction.
// Negative amounts are rejected and never adjusted.
func Filter(rules Rules, wage decimal.Decimal, txns []model.Transaction) FilterResult {
	res := FilterResult{
		Valid:   make([]model.Transaction, 0, len(txns)),
		Invalid: make([]model.InvalidTransaction, 0),
	}
	for _, t := range txns {
		if t.Amount.IsNegative() {
			res.Invalid = append(res.Invalid, model.InvalidTransaction{Transaction: t, Reason: model.RejectNegativeAmount})
			continue
		}
		res.Valid = append(res.Valid, Adjust(t, rules))
	}
	return res
}

// Adjust returns a copy of t with its remanent rewritten by the rules:
// the matching Q period with the latest start replaces it, then every
// matching P period adds its extra.
func Adjust(t model.Transaction, rules Rules) model.Transaction {
	remanent := t.Remanent
	if q, ok := Override(rules.Q, t.Date); ok {
		remanent = q.Fixed
	}
	for _, p := range rules.P {
		if p.Contains(t.Date) {
			remanent = remanent.Add(p.Extra)
		}
	}
	t.Remanent = remanent
	return t
}

// Override selects the Q period that governs date: the one with the latest
// start among those containing it. On equal starts the first listed wins.
func Override(periods []model.PeriodQ, date time.Time) (model.PeriodQ, bool) {
	var (
		best  model.PeriodQ
		found bool
	)
	for _, q := range periods {
		if !q.Contains(date) {
			continue
		}
		if !found || q.Start.After(best.Start) {
			best, found = q, true
		}
	}
	return best, found
}
