package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/autosave-dev/autosave/internal/cli"
	"github.com/autosave-dev/autosave/internal/model"
	"github.com/autosave-dev/autosave/internal/wire"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

var transactionHeaders = []string{"Date", "Amount", "Ceiling", "Remanent"}

func transactionRow(t model.Transaction) []string {
	return []string{
		wire.FormatTime(t.Date),
		cli.FormatAmount(t.Amount),
		cli.FormatAmount(t.Ceiling),
		cli.FormatAmount(t.Remanent),
	}
}

// renderPartition prints valid transactions and rejects as two tables.
func renderPartition(w io.Writer, valid []model.Transaction, invalid []model.InvalidTransaction) {
	rows := make([][]string, 0, len(valid))
	for _, t := range valid {
		rows = append(rows, transactionRow(t))
	}
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Valid (%d)", len(valid)),
		Headers: transactionHeaders,
		Rows:    rows,
	}))

	if len(invalid) == 0 {
		return
	}
	rows = make([][]string, 0, len(invalid))
	for _, t := range invalid {
		rows = append(rows, append(transactionRow(t.Transaction), t.Message()))
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Invalid (%d)", len(invalid)),
		Headers: append(transactionHeaders[:len(transactionHeaders):len(transactionHeaders)], "Reason"),
		Rows:    rows,
	}))
}
