package savings

import (
	"github.com/shopspring/decimal"

	"github.com/autosave-dev/autosave/internal/model"
)

// ValidationResult partitions a transaction list. Relative input order is
// preserved within each side.
type ValidationResult struct {
	Valid   []model.Transaction
	Invalid []model.InvalidTransaction
}

// Validate rejects negative amounts and repeated (date, amount) pairs.
//
// The first occurrence of a pair stays valid; every later one is a
// duplicate. Rejected transactions still register their pair. When a
// transaction is both negative and a duplicate it is reported as a
// negative amount.
//
// wage is part of the contract but no current rule reads it.
func Validate(wage decimal.Decimal, txns []model.Transaction) ValidationResult {
	res := ValidationResult{
		Valid:   make([]model.Transaction, 0, len(txns)),
		Invalid: make([]model.InvalidTransaction, 0),
	}
	seen := make(map[string]struct{}, len(txns))
	for _, t := range txns {
		key := t.DedupKey()
		_, dup := seen[key]
		seen[key] = struct{}{}

		if reason, rejected := rejectReason(t, dup); rejected {
			res.Invalid = append(res.Invalid, model.InvalidTransaction{Transaction: t, Reason: reason})
			continue
		}
		res.Valid = append(res.Valid, t)
	}
	return res
}

func rejectReason(t model.Transaction, duplicate bool) (model.RejectReason, bool) {
	switch {
	case t.Amount.IsNegative():
		return model.RejectNegativeAmount, true
	case duplicate:
		return model.RejectDuplicate, true
	default:
		return "", false
	}
}
