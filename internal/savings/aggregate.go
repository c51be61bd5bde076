package savings

import (
	"github.com/shopspring/decimal"

	"github.com/autosave-dev/autosave/internal/model"
)

// Aggregate sums the remanent of every transaction inside each window.
// Windows are independent and may overlap; an empty window sums to zero.
func Aggregate(windows []model.PeriodK, txns []model.Transaction) []model.SavingsByDate {
	out := make([]model.SavingsByDate, 0, len(windows))
	for _, k := range windows {
		amount := decimal.Zero
		for _, t := range txns {
			if k.Contains(t.Date) {
				amount = amount.Add(t.Remanent)
			}
		}
		out = append(out, model.SavingsByDate{Period: k.Period, Amount: amount})
	}
	return out
}
