package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autosave-dev/autosave/internal/cli"
	applog "github.com/autosave-dev/autosave/internal/log"
	"github.com/autosave-dev/autosave/internal/wire"
)

func newParseCommand(g *globals) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Round expenses up and report each remanent",
		Long:  "Reads expenses from a JSON or CSV file (stdin when omitted) and rounds each amount up to the next multiple.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, g, args, in)
		},
	}
	in.register(cmd)

	return cmd
}

func runParse(cmd *cobra.Command, g *globals, args []string, in inputFlags) error {
	res, err := g.roundUp(cmd, args, in)
	if err != nil {
		return err
	}
	g.logger.Debug("Expenses parsed", applog.FieldOperation, applog.OpParse, applog.FieldCount, len(res.Transactions))

	out := cmd.OutOrStdout()
	if g.output == outputJSON {
		return writeJSON(out, wire.NewParseResponse(res))
	}

	rows := make([][]string, 0, len(res.Transactions)+2)
	for _, t := range res.Transactions {
		rows = append(rows, transactionRow(t))
	}
	rows = append(rows,
		[]string{cli.SeparatorRow},
		[]string{"Total", cli.FormatAmount(res.TotalAmount), cli.FormatAmount(res.TotalCeiling), cli.FormatAmount(res.TotalRemanent)},
	)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Transactions (%d)", len(res.Transactions)),
		Headers: transactionHeaders,
		Rows:    rows,
	}))
	return nil
}
