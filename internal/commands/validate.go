package commands

import (
	"github.com/spf13/cobra"

	applog "github.com/autosave-dev/autosave/internal/log"
	"github.com/autosave-dev/autosave/internal/savings"
	"github.com/autosave-dev/autosave/internal/wire"
)

func newValidateCommand(g *globals) *cobra.Command {
	var in inputFlags
	var wage decimalValue

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Reject negative and duplicate transactions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, g, args, in, wage)
		},
	}
	in.register(cmd)
	cmd.Flags().Var(&wage, "wage", "monthly wage")

	return cmd
}

func runValidate(cmd *cobra.Command, g *globals, args []string, in inputFlags, wage decimalValue) error {
	parsed, err := g.roundUp(cmd, args, in)
	if err != nil {
		return err
	}
	res := savings.Validate(wage.d, parsed.Transactions)
	g.logger.Debug("Transactions validated",
		applog.FieldOperation, applog.OpValidate,
		applog.FieldCount, len(res.Valid),
		applog.FieldInvalid, len(res.Invalid))

	out := cmd.OutOrStdout()
	if g.output == outputJSON {
		return writeJSON(out, wire.NewValidationResponse(res.Valid, res.Invalid))
	}
	renderPartition(out, res.Valid, res.Invalid)
	return nil
}
