// Package returns projects long-term growth of aggregated savings.
package returns

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/autosave-dev/autosave/internal/model"
	"github.com/autosave-dev/autosave/internal/savings"
)

// ErrUnknownMode is returned for a mode missing from the rate table.
var ErrUnknownMode = errors.New("unknown investment mode")

// MaxAge bounds ages and the retirement age. The compounding cost grows
// with the horizon, so Years never exceeds it.
const MaxAge = 150

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Params configures an Engine.
type Params struct {
	RetirementAge int
	Modes         map[model.Mode]ModeRate
	Schedule      TaxSchedule
	// DeductionRate caps the deduction as a share of annual income.
	DeductionRate decimal.Decimal
	// DeductionCap is the absolute deduction ceiling.
	DeductionCap decimal.Decimal
	RoundUp      savings.Options
}

// DefaultParams returns the standard projection settings.
func DefaultParams() Params {
	return Params{
		RetirementAge: 60,
		Modes:         DefaultModeRates(),
		Schedule:      DefaultTaxSchedule(),
		DeductionRate: decimal.RequireFromString("0.10"),
		DeductionCap:  decimal.NewFromInt(200000),
		RoundUp:       savings.DefaultOptions(),
	}
}

// Request is the input of a projection.
type Request struct {
	Age       int
	Wage      decimal.Decimal // monthly
	Inflation decimal.Decimal // annual, percent
	Rules     savings.Rules
	Expenses  []model.Expense
}

// Response carries totals over valid transactions and one entry per window.
type Response struct {
	TransactionsTotalAmount  decimal.Decimal
	TransactionsTotalCeiling decimal.Decimal
	SavingsByDates           []model.SavingsByDate
}

// Engine projects returns. It holds only immutable settings and is safe
// for concurrent use.
type Engine struct {
	params Params
}

// NewEngine creates an Engine.
func NewEngine(p Params) *Engine {
	return &Engine{params: p}
}

// Params returns the engine settings.
func (e *Engine) Params() Params {
	return e.params
}

// Years is the investment horizon for age, within [0, MaxAge].
func (e *Engine) Years(age int) int {
	return min(max(0, e.params.RetirementAge-age), MaxAge)
}

// Project runs round-up, period filtering and aggregation over the request,
// then computes inflation-adjusted profits (and the tax benefit when the
// mode carries one) for each window.
func (e *Engine) Project(mode model.Mode, req Request) (Response, error) {
	rate, ok := e.params.Modes[mode]
	if !ok {
		return Response{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	parsed := savings.RoundUp(req.Expenses, e.params.RoundUp)
	filtered := savings.Filter(req.Rules, req.Wage, parsed.Transactions)

	resp := Response{
		TransactionsTotalAmount:  decimal.Zero,
		TransactionsTotalCeiling: decimal.Zero,
	}
	for _, t := range filtered.Valid {
		resp.TransactionsTotalAmount = resp.TransactionsTotalAmount.Add(t.Amount)
		resp.TransactionsTotalCeiling = resp.TransactionsTotalCeiling.Add(t.Ceiling)
	}

	years := decimal.NewFromInt(int64(e.Years(req.Age)))
	growth := one.Add(rate.Rate).Pow(years)
	deflator := one.Add(req.Inflation.Div(hundred)).Pow(years)

	resp.SavingsByDates = savings.Aggregate(req.Rules.K, filtered.Valid)
	for i := range resp.SavingsByDates {
		s := &resp.SavingsByDates[i]
		s.Profits = decimal.NewNullDecimal(Profit(s.Amount, growth, deflator))
		if rate.TaxBenefit {
			s.TaxBenefit = decimal.NewNullDecimal(e.TaxBenefit(s.Amount, req.Wage))
		}
	}
	return resp, nil
}

// Profit is the real gain of amount after compounding by growth and
// discounting by deflator, rounded to cents.
func Profit(amount, growth, deflator decimal.Decimal) decimal.Decimal {
	final := amount.Mul(growth)
	adjusted := final
	if !deflator.IsZero() {
		adjusted = final.Div(deflator)
	}
	return adjusted.Sub(amount).Round(2)
}

// TaxBenefit is the tax saved by deducting amount from a monthly wage's
// annual income. The deduction is capped by the invested amount, a share of
// income and an absolute ceiling, whichever is lowest.
func (e *Engine) TaxBenefit(amount, wage decimal.Decimal) decimal.Decimal {
	annual := wage.Mul(twelve)
	deduction := decimal.Min(amount, e.params.DeductionRate.Mul(annual), e.params.DeductionCap)
	sched := e.params.Schedule
	return sched.Tax(annual).Sub(sched.Tax(annual.Sub(deduction))).Round(2)
}
