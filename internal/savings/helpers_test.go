package savings

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autosave-dev/autosave/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func at(year int, month time.Month, day, hour, minute, sec int) time.Time {
	return time.Date(year, month, day, hour, minute, sec, 0, time.UTC)
}

func period(start, end time.Time) model.Period {
	return model.Period{Start: start, End: end}
}

// referenceExpenses is the four-expense sample used across the package tests.
func referenceExpenses() []model.Expense {
	return []model.Expense{
		{Date: at(2023, 10, 12, 20, 15, 30), Amount: dec("250")},
		{Date: at(2023, 2, 28, 15, 49, 20), Amount: dec("375")},
		{Date: at(2023, 7, 1, 21, 59, 0), Amount: dec("620")},
		{Date: at(2023, 12, 17, 8, 9, 45), Amount: dec("480")},
	}
}

func referenceRules() Rules {
	return Rules{
		Q: []model.PeriodQ{{
			Period: period(at(2023, 7, 1, 0, 0, 0), at(2023, 7, 31, 23, 59, 59)),
			Fixed:  dec("0"),
		}},
		P: []model.PeriodP{{
			Period: period(at(2023, 10, 1, 8, 0, 0), at(2023, 12, 31, 19, 59, 59)),
			Extra:  dec("25"),
		}},
		K: []model.PeriodK{
			{Period: period(at(2023, 1, 1, 0, 0, 0), at(2023, 12, 31, 23, 59, 59))},
			{Period: period(at(2023, 3, 1, 0, 0, 0), at(2023, 11, 30, 23, 59, 59))},
		},
	}
}

func remanents(txns []model.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.Remanent.String()
	}
	return out
}
