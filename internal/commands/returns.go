package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autosave-dev/autosave/internal/cli"
	applog "github.com/autosave-dev/autosave/internal/log"
	"github.com/autosave-dev/autosave/internal/model"
	"github.com/autosave-dev/autosave/internal/returns"
	"github.com/autosave-dev/autosave/internal/wire"
)

type returnsFlags struct {
	mode      string
	age       int
	wage      decimalValue
	inflation decimalValue
	rulesPath string
}

func newReturnsCommand(g *globals) *cobra.Command {
	var in inputFlags
	var f returnsFlags

	cmd := &cobra.Command{
		Use:   "returns [file]",
		Short: "Project inflation-adjusted returns per savings window",
		Long: "Rounds expenses up, applies the period rules and projects each k window to retirement.\n" +
			"Mode nps also reports the tax benefit of the deduction.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReturns(cmd, g, args, in, f)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVar(&f.mode, "mode", string(model.ModeIndex), "investment mode: nps or index")
	cmd.Flags().IntVar(&f.age, "age", 0, "current age in years")
	cmd.Flags().Var(&f.wage, "wage", "monthly wage")
	cmd.Flags().Var(&f.inflation, "inflation", "annual inflation in percent")
	cmd.Flags().StringVar(&f.rulesPath, "rules", "", "JSON file with q, p and k period lists")
	_ = cmd.MarkFlagRequired("age")

	return cmd
}

func runReturns(cmd *cobra.Command, g *globals, args []string, in inputFlags, f returnsFlags) error {
	if f.age < 0 || f.age > returns.MaxAge {
		return fmt.Errorf("invalid --age %d: must be between 0 and %d", f.age, returns.MaxAge)
	}
	mode, err := model.ParseMode(f.mode)
	if err != nil {
		return err
	}
	rules, err := readRules(f.rulesPath)
	if err != nil {
		return err
	}
	expenses, err := g.readExpenses(cmd, args, in)
	if err != nil {
		return err
	}

	resp, err := g.engine.Project(mode, returns.Request{
		Age:       f.age,
		Wage:      f.wage.d,
		Inflation: f.inflation.d,
		Rules:     rules,
		Expenses:  expenses,
	})
	if err != nil {
		return fmt.Errorf("projecting returns: %w", err)
	}
	g.logger.Debug("Returns projected",
		applog.FieldOperation, applog.OpReturns,
		applog.FieldMode, string(mode),
		applog.FieldWindows, len(resp.SavingsByDates))

	out := cmd.OutOrStdout()
	if g.output == outputJSON {
		return writeJSON(out, wire.NewReturnsResponse(resp))
	}

	fmt.Fprint(out, cli.RenderSummary([][2]string{
		{"Mode", string(mode)},
		{"Years", fmt.Sprint(g.engine.Years(f.age))},
		{"Total amount", cli.FormatAmount(resp.TransactionsTotalAmount)},
		{"Total ceiling", cli.FormatAmount(resp.TransactionsTotalCeiling)},
	}))
	if len(resp.SavingsByDates) == 0 {
		fmt.Fprint(out, cli.RenderWarning("no k windows given; nothing to project"))
		return nil
	}

	rows := make([][]string, 0, len(resp.SavingsByDates))
	for _, s := range resp.SavingsByDates {
		rows = append(rows, []string{
			wire.FormatTime(s.Start),
			wire.FormatTime(s.End),
			cli.FormatAmount(s.Amount),
			cli.FormatOptional(s.Profits),
			cli.FormatOptional(s.TaxBenefit),
		})
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   "Savings by window",
		Headers: []string{"Start", "End", "Amount", "Profits", "Tax benefit"},
		Rows:    rows,
	}))
	return nil
}
