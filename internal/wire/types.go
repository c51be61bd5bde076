// Package wire defines the JSON documents exchanged with clients and the
// conversions between them and the domain model.
package wire

import "github.com/shopspring/decimal"

func init() {
	// Amounts travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense is a raw spend.
type Expense struct {
	Date   string              `json:"date"`
	Amount decimal.NullDecimal `json:"amount"`
}

// Transaction is an expense with ceiling and remanent.
type Transaction struct {
	Date     string              `json:"date"`
	Amount   decimal.NullDecimal `json:"amount"`
	Ceiling  decimal.NullDecimal `json:"ceiling"`
	Remanent decimal.NullDecimal `json:"remanent"`
}

// InvalidTransaction is a rejected transaction with its reason.
type InvalidTransaction struct {
	Transaction
	Message string `json:"message"`
}

// PeriodQ is a fixed-override period.
type PeriodQ struct {
	Fixed decimal.NullDecimal `json:"fixed"`
	Start string              `json:"start"`
	End   string              `json:"end"`
}

// PeriodP is an additive period.
type PeriodP struct {
	Extra decimal.NullDecimal `json:"extra"`
	Start string              `json:"start"`
	End   string              `json:"end"`
}

// PeriodK is an aggregation window.
type PeriodK struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Rules groups the period lists. Missing lists decode as empty.
type Rules struct {
	Q []PeriodQ `json:"q"`
	P []PeriodP `json:"p"`
	K []PeriodK `json:"k"`
}

// ParseResponse answers transactions:parse.
type ParseResponse struct {
	Transactions  []Transaction   `json:"transactions"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalCeiling  decimal.Decimal `json:"total_ceiling"`
	TotalRemanent decimal.Decimal `json:"total_remanent"`
}

// ValidationRequest is the body of transactions:validator.
type ValidationRequest struct {
	Wage         decimal.NullDecimal `json:"wage"`
	Transactions []Transaction       `json:"transactions"`
}

// ValidationResponse answers transactions:validator and transactions:filter.
type ValidationResponse struct {
	Valid   []Transaction        `json:"valid"`
	Invalid []InvalidTransaction `json:"invalid"`
}

// FilterRequest is the body of transactions:filter.
type FilterRequest struct {
	Rules
	Wage         decimal.NullDecimal `json:"wage"`
	Transactions []Transaction       `json:"transactions"`
}

// SavingsByDate is the aggregate of one window.
type SavingsByDate struct {
	Start      string              `json:"start"`
	End        string              `json:"end"`
	Amount     decimal.Decimal     `json:"amount"`
	Profits    decimal.NullDecimal `json:"profits"`
	TaxBenefit decimal.NullDecimal `json:"taxBenefit"`
}

// ReturnsRequest is the body of returns:nps and returns:index.
type ReturnsRequest struct {
	Rules
	Age          *int                `json:"age"`
	Wage         decimal.NullDecimal `json:"wage"`
	Inflation    decimal.NullDecimal `json:"inflation"`
	Transactions []Expense           `json:"transactions"`
}

// ReturnsResponse answers returns:nps and returns:index.
type ReturnsResponse struct {
	TransactionsTotalAmount  decimal.Decimal `json:"transactionsTotalAmount"`
	TransactionsTotalCeiling decimal.Decimal `json:"transactionsTotalCeiling"`
	SavingsByDates           []SavingsByDate `json:"savingsByDates"`
}

// PerformanceResponse answers the performance probe.
type PerformanceResponse struct {
	Time    string `json:"time"`
	Memory  string `json:"memory"`
	Threads int    `json:"threads"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}
