package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/autosave-dev/autosave/internal/model"
	"github.com/autosave-dev/autosave/internal/wire"
)

// CSVParser reads a headered CSV with "date" and "amount" columns in any
// position. Other columns are ignored.
type CSVParser struct{}

const (
	csvColDate   = "date"
	csvColAmount = "amount"
)

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads the CSV and returns expenses in file order.
func (p *CSVParser) Parse(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	dateCol, amountCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case csvColDate:
			dateCol = i
		case csvColAmount:
			amountCol = i
		}
	}
	if dateCol < 0 || amountCol < 0 {
		return nil, fmt.Errorf("CSV header must name %q and %q columns", csvColDate, csvColAmount)
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	var out []model.Expense
	for i, rec := range records {
		e, err := parseCSVRow(rec, dateCol, amountCol)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func parseCSVRow(rec []string, dateCol, amountCol int) (model.Expense, error) {
	date, err := wire.ParseTime(rec[dateCol])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing date %q: %w", rec[dateCol], err)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(rec[amountCol]))
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", rec[amountCol], err)
	}
	return model.Expense{Date: date, Amount: amount}, nil
}
