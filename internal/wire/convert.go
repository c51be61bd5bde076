package wire

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/autosave-dev/autosave/internal/model"
	"github.com/autosave-dev/autosave/internal/returns"
	"github.com/autosave-dev/autosave/internal/savings"
)

// FieldError describes one schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Problem string `json:"problem"`
}

// SchemaError collects every violation found in a document.
type SchemaError struct {
	Details []FieldError
}

func (e *SchemaError) Error() string {
	msgs := make([]string, len(e.Details))
	for i, d := range e.Details {
		msgs[i] = d.Field + ": " + d.Problem
	}
	return "invalid request: " + strings.Join(msgs, "; ")
}

// decoder accumulates field errors so a single response can report them all.
type decoder struct {
	errs []FieldError
}

func (d *decoder) fail(field, format string, args ...any) {
	d.errs = append(d.errs, FieldError{Field: field, Problem: fmt.Sprintf(format, args...)})
}

func (d *decoder) timestamp(field, s string) time.Time {
	if s == "" {
		d.fail(field, "required")
		return time.Time{}
	}
	t, err := ParseTime(s)
	if err != nil {
		d.fail(field, "%v", err)
	}
	return t
}

func (d *decoder) number(field string, v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		d.fail(field, "required")
		return decimal.Zero
	}
	return v.Decimal
}

func (d *decoder) period(field, start, end string) model.Period {
	return model.Period{
		Start: d.timestamp(field+".start", start),
		End:   d.timestamp(field+".end", end),
	}
}

// orderedPeriod is period for rules that rewrite remanents, where an
// inverted range is a client mistake. Inverted k windows stay valid and
// simply match nothing.
func (d *decoder) orderedPeriod(field, start, end string) model.Period {
	p := d.period(field, start, end)
	if !p.Start.IsZero() && !p.End.IsZero() && p.End.Before(p.Start) {
		d.fail(field, "end precedes start")
	}
	return p
}

func (d *decoder) err() error {
	if len(d.errs) == 0 {
		return nil
	}
	return &SchemaError{Details: d.errs}
}

func (d *decoder) expenses(field string, in []Expense) []model.Expense {
	out := make([]model.Expense, 0, len(in))
	for i, e := range in {
		f := fmt.Sprintf("%s[%d]", field, i)
		out = append(out, model.Expense{
			Date:   d.timestamp(f+".date", e.Date),
			Amount: d.number(f+".amount", e.Amount),
		})
	}
	return out
}

func (d *decoder) transactions(field string, in []Transaction) []model.Transaction {
	if in == nil {
		d.fail(field, "required")
	}
	out := make([]model.Transaction, 0, len(in))
	for i, t := range in {
		f := fmt.Sprintf("%s[%d]", field, i)
		out = append(out, model.Transaction{
			Date:     d.timestamp(f+".date", t.Date),
			Amount:   d.number(f+".amount", t.Amount),
			Ceiling:  d.number(f+".ceiling", t.Ceiling),
			Remanent: d.number(f+".remanent", t.Remanent),
		})
	}
	return out
}

func (d *decoder) rules(r Rules) savings.Rules {
	out := savings.Rules{
		Q: make([]model.PeriodQ, 0, len(r.Q)),
		P: make([]model.PeriodP, 0, len(r.P)),
		K: make([]model.PeriodK, 0, len(r.K)),
	}
	for i, q := range r.Q {
		f := fmt.Sprintf("q[%d]", i)
		out.Q = append(out.Q, model.PeriodQ{
			Period: d.orderedPeriod(f, q.Start, q.End),
			Fixed:  d.number(f+".fixed", q.Fixed),
		})
	}
	for i, p := range r.P {
		f := fmt.Sprintf("p[%d]", i)
		out.P = append(out.P, model.PeriodP{
			Period: d.orderedPeriod(f, p.Start, p.End),
			Extra:  d.number(f+".extra", p.Extra),
		})
	}
	for i, k := range r.K {
		out.K = append(out.K, model.PeriodK{Period: d.period(fmt.Sprintf("k[%d]", i), k.Start, k.End)})
	}
	return out
}

// DecodeExpenses converts a transactions:parse body.
func DecodeExpenses(in []Expense) ([]model.Expense, error) {
	var d decoder
	out := d.expenses("body", in)
	return out, d.err()
}

// Decode converts the period lists alone.
func (r Rules) Decode() (savings.Rules, error) {
	var d decoder
	out := d.rules(r)
	return out, d.err()
}

// Decode converts a transactions:validator body.
func (r ValidationRequest) Decode() (decimal.Decimal, []model.Transaction, error) {
	var d decoder
	wage := d.number("wage", r.Wage)
	txns := d.transactions("transactions", r.Transactions)
	return wage, txns, d.err()
}

// Decode converts a transactions:filter body.
func (r FilterRequest) Decode() (savings.Rules, decimal.Decimal, []model.Transaction, error) {
	var d decoder
	rules := d.rules(r.Rules)
	wage := d.number("wage", r.Wage)
	txns := d.transactions("transactions", r.Transactions)
	return rules, wage, txns, d.err()
}

// Decode converts a returns:* body.
func (r ReturnsRequest) Decode() (returns.Request, error) {
	var d decoder
	req := returns.Request{
		Rules:     d.rules(r.Rules),
		Wage:      d.number("wage", r.Wage),
		Inflation: d.number("inflation", r.Inflation),
	}
	switch {
	case r.Age == nil:
		d.fail("age", "required")
	case *r.Age < 0 || *r.Age > returns.MaxAge:
		d.fail("age", "must be between 0 and %d", returns.MaxAge)
	default:
		req.Age = *r.Age
	}
	if r.Transactions == nil {
		d.fail("transactions", "required")
	}
	req.Expenses = d.expenses("transactions", r.Transactions)
	return req, d.err()
}

// EncodeTransaction converts a domain transaction.
func EncodeTransaction(t model.Transaction) Transaction {
	return Transaction{
		Date:     FormatTime(t.Date),
		Amount:   decimal.NewNullDecimal(t.Amount),
		Ceiling:  decimal.NewNullDecimal(t.Ceiling),
		Remanent: decimal.NewNullDecimal(t.Remanent),
	}
}

// NewParseResponse converts a round-up result.
func NewParseResponse(res savings.ParseResult) ParseResponse {
	out := ParseResponse{
		Transactions:  make([]Transaction, 0, len(res.Transactions)),
		TotalAmount:   res.TotalAmount,
		TotalCeiling:  res.TotalCeiling,
		TotalRemanent: res.TotalRemanent,
	}
	for _, t := range res.Transactions {
		out.Transactions = append(out.Transactions, EncodeTransaction(t))
	}
	return out
}

// NewValidationResponse converts a valid/invalid partition.
func NewValidationResponse(valid []model.Transaction, invalid []model.InvalidTransaction) ValidationResponse {
	out := ValidationResponse{
		Valid:   make([]Transaction, 0, len(valid)),
		Invalid: make([]InvalidTransaction, 0, len(invalid)),
	}
	for _, t := range valid {
		out.Valid = append(out.Valid, EncodeTransaction(t))
	}
	for _, t := range invalid {
		out.Invalid = append(out.Invalid, InvalidTransaction{
			Transaction: EncodeTransaction(t.Transaction),
			Message:     t.Message(),
		})
	}
	return out
}

// NewReturnsResponse converts a projection.
func NewReturnsResponse(resp returns.Response) ReturnsResponse {
	out := ReturnsResponse{
		TransactionsTotalAmount:  resp.TransactionsTotalAmount,
		TransactionsTotalCeiling: resp.TransactionsTotalCeiling,
		SavingsByDates:           make([]SavingsByDate, 0, len(resp.SavingsByDates)),
	}
	for _, s := range resp.SavingsByDates {
		out.SavingsByDates = append(out.SavingsByDates, SavingsByDate{
			Start:      FormatTime(s.Start),
			End:        FormatTime(s.End),
			Amount:     s.Amount,
			Profits:    s.Profits,
			TaxBenefit: s.TaxBenefit,
		})
	}
	return out
}
