package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/autosave-dev/autosave/internal/model"
	"github.com/autosave-dev/autosave/internal/wire"
)

// JSONParser reads the API's expense list: either a bare array or an
// object with a "transactions" array.
type JSONParser struct{}

// Format returns the parser name.
func (p *JSONParser) Format() string { return "json" }

// Parse decodes the document and validates every entry.
func (p *JSONParser) Parse(r io.Reader) ([]model.Expense, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var raw []wire.Expense
	if data[0] == '{' {
		var doc struct {
			Transactions []wire.Expense `json:"transactions"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding JSON: %w", err)
		}
		raw = doc.Transactions
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	return wire.DecodeExpenses(raw)
}
