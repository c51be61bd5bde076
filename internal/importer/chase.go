package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/autosave-dev/autosave/internal/model"
)

// ChaseParser turns a Chase checking CSV export into expenses. Debits
// become positive spends; credits are not spends and are skipped.
type ChaseParser struct{}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColAmount  = 3
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns its debits as expenses.
func (p *ChaseParser) Parse(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var out []model.Expense
	for i, rec := range records[1:] {
		e, debit, err := parseChaseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if debit {
			out = append(out, e)
		}
	}
	return out, nil
}

func parseChaseRow(rec []string) (model.Expense, bool, error) {
	date, err := time.Parse(chaseDateFormat, rec[chaseColDate])
	if err != nil {
		return model.Expense{}, false, fmt.Errorf("parsing date %q: %w", rec[chaseColDate], err)
	}

	amount, err := decimal.NewFromString(rec[chaseColAmount])
	if err != nil {
		return model.Expense{}, false, fmt.Errorf("parsing amount %q: %w", rec[chaseColAmount], err)
	}
	if !amount.IsNegative() {
		return model.Expense{}, false, nil
	}
	return model.Expense{Date: date, Amount: amount.Neg()}, true, nil
}
