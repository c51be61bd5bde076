package savings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autosave-dev/autosave/internal/model"
)

func TestFilter_ReferenceScenario(t *testing.T) {
	txns := RoundUp(referenceExpenses(), DefaultOptions()).Transactions
	res := Filter(referenceRules(), dec("50000"), txns)

	assert.Empty(t, res.Invalid)
	// Oct +25, Feb untouched, Jul zeroed by Q, Dec +25.
	assert.Equal(t, []string{"75", "25", "0", "45"}, remanents(res.Valid))

	for i, v := range res.Valid {
		assert.Equal(t, txns[i].Date, v.Date)
		assert.True(t, txns[i].Amount.Equal(v.Amount))
		assert.True(t, txns[i].Ceiling.Equal(v.Ceiling))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	txns := RoundUp(referenceExpenses(), DefaultOptions()).Transactions
	before := remanents(txns)
	_ = Filter(referenceRules(), dec("0"), txns)
	assert.Equal(t, before, remanents(txns))
}

func TestFilter_NoMatchingPeriodsLeavesRemanent(t *testing.T) {
	txns := RoundUp(referenceExpenses(), DefaultOptions()).Transactions
	rules := Rules{
		Q: []model.PeriodQ{{Period: period(at(2020, 1, 1, 0, 0, 0), at(2020, 12, 31, 0, 0, 0)), Fixed: dec("7")}},
		P: []model.PeriodP{{Period: period(at(2021, 1, 1, 0, 0, 0), at(2021, 12, 31, 0, 0, 0)), Extra: dec("9")}},
	}
	res := Filter(rules, dec("0"), txns)
	assert.Equal(t, remanents(txns), remanents(res.Valid))
}

func TestFilter_NegativeAmountRejected(t *testing.T) {
	txns := []model.Transaction{
		{Date: at(2023, 7, 2, 0, 0, 0), Amount: dec("-20"), Ceiling: dec("0"), Remanent: dec("20")},
		{Date: at(2023, 7, 3, 0, 0, 0), Amount: dec("20"), Ceiling: dec("100"), Remanent: dec("80")},
	}
	res := Filter(referenceRules(), dec("0"), txns)
	require.Len(t, res.Invalid, 1)
	assert.Equal(t, model.RejectNegativeAmount, res.Invalid[0].Reason)
	assert.True(t, res.Invalid[0].Remanent.Equal(dec("20")), "rejects keep their original remanent")
	require.Len(t, res.Valid, 1)
	assert.True(t, res.Valid[0].Remanent.IsZero())
}

func TestFilter_LatestStartOverrideWins(t *testing.T) {
	txn := model.Transaction{Date: at(2023, 6, 15, 12, 0, 0), Amount: dec("10"), Ceiling: dec("100"), Remanent: dec("90")}
	rules := Rules{Q: []model.PeriodQ{
		{Period: period(at(2023, 6, 10, 0, 0, 0), at(2023, 6, 30, 0, 0, 0)), Fixed: dec("3")},
		{Period: period(at(2023, 1, 1, 0, 0, 0), at(2023, 12, 31, 0, 0, 0)), Fixed: dec("1")},
		{Period: period(at(2023, 6, 1, 0, 0, 0), at(2023, 6, 30, 0, 0, 0)), Fixed: dec("2")},
	}}
	got := Adjust(txn, rules)
	assert.Equal(t, "3", got.Remanent.String())
}

func TestFilter_EqualStartFirstListedWins(t *testing.T) {
	txn := model.Transaction{Date: at(2023, 6, 15, 12, 0, 0), Amount: dec("10"), Ceiling: dec("100"), Remanent: dec("90")}
	start := at(2023, 6, 1, 0, 0, 0)
	rules := Rules{Q: []model.PeriodQ{
		{Period: period(start, at(2023, 6, 20, 0, 0, 0)), Fixed: dec("11")},
		{Period: period(start, at(2023, 6, 30, 0, 0, 0)), Fixed: dec("22")},
	}}
	assert.Equal(t, "11", Adjust(txn, rules).Remanent.String())

	rules.Q[0], rules.Q[1] = rules.Q[1], rules.Q[0]
	assert.Equal(t, "22", Adjust(txn, rules).Remanent.String())
}

func TestFilter_AdditivePeriodsStackAfterOverride(t *testing.T) {
	txn := model.Transaction{Date: at(2023, 6, 15, 12, 0, 0), Amount: dec("10"), Ceiling: dec("100"), Remanent: dec("90")}
	rules := Rules{
		Q: []model.PeriodQ{{Period: period(at(2023, 6, 1, 0, 0, 0), at(2023, 6, 30, 0, 0, 0)), Fixed: dec("5")}},
		P: []model.PeriodP{
			{Period: period(at(2023, 6, 1, 0, 0, 0), at(2023, 6, 30, 0, 0, 0)), Extra: dec("1.5")},
			{Period: period(at(2023, 1, 1, 0, 0, 0), at(2023, 12, 31, 0, 0, 0)), Extra: dec("2")},
			{Period: period(at(2023, 7, 1, 0, 0, 0), at(2023, 7, 31, 0, 0, 0)), Extra: dec("100")},
		},
	}
	assert.Equal(t, "8.5", Adjust(txn, rules).Remanent.String())
}

func TestOverride_NoMatch(t *testing.T) {
	_, ok := Override(nil, at(2023, 1, 1, 0, 0, 0))
	assert.False(t, ok)
}
