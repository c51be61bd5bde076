package commands

import (
	"github.com/spf13/cobra"

	applog "github.com/autosave-dev/autosave/internal/log"
	"github.com/autosave-dev/autosave/internal/savings"
	"github.com/autosave-dev/autosave/internal/wire"
)

func newFilterCommand(g *globals) *cobra.Command {
	var in inputFlags
	var wage decimalValue
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "filter [file]",
		Short: "Apply fixed (q) and extra (p) period rules to remanents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := readRules(rulesPath)
			if err != nil {
				return err
			}
			return runFilter(cmd, g, args, in, rules, wage)
		},
	}
	in.register(cmd)
	cmd.Flags().Var(&wage, "wage", "monthly wage")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "JSON file with q, p and k period lists")

	return cmd
}

func runFilter(cmd *cobra.Command, g *globals, args []string, in inputFlags, rules savings.Rules, wage decimalValue) error {
	parsed, err := g.roundUp(cmd, args, in)
	if err != nil {
		return err
	}
	res := savings.Filter(rules, wage.d, parsed.Transactions)
	g.logger.Debug("Transactions filtered",
		applog.FieldOperation, applog.OpFilter,
		applog.FieldCount, len(res.Valid),
		applog.FieldInvalid, len(res.Invalid))

	out := cmd.OutOrStdout()
	if g.output == outputJSON {
		return writeJSON(out, wire.NewValidationResponse(res.Valid, res.Invalid))
	}
	renderPartition(out, res.Valid, res.Invalid)
	return nil
}
