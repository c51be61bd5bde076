package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/autosave-dev/autosave/internal/model"
	"github.com/autosave-dev/autosave/internal/savings"
	"github.com/autosave-dev/autosave/internal/wire"
)

// decimalValue is a flag holding a decimal amount.
type decimalValue struct {
	d decimal.Decimal
}

func (v *decimalValue) String() string { return v.d.String() }

func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	v.d = d
	return nil
}

func (v *decimalValue) Type() string { return "decimal" }

// inputFlags are shared by the commands that read an expense list.
type inputFlags struct {
	format string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "", "input format: json, csv or chase (default: by file extension)")
}

// readExpenses loads expenses from the optional file argument or stdin.
func (g *globals) readExpenses(cmd *cobra.Command, args []string, f inputFlags) ([]model.Expense, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	return g.registry.ReadFile(path, f.format, cmd.InOrStdin())
}

// roundUp reads expenses and turns them into transactions.
func (g *globals) roundUp(cmd *cobra.Command, args []string, f inputFlags) (savings.ParseResult, error) {
	expenses, err := g.readExpenses(cmd, args, f)
	if err != nil {
		return savings.ParseResult{}, err
	}
	return savings.RoundUp(expenses, g.engine.Params().RoundUp), nil
}

// readRules loads q, p and k period lists from a JSON file. An empty path
// yields no rules.
func readRules(path string) (savings.Rules, error) {
	if path == "" {
		return savings.Rules{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return savings.Rules{}, fmt.Errorf("reading rules: %w", err)
	}
	var raw wire.Rules
	if err := json.Unmarshal(data, &raw); err != nil {
		return savings.Rules{}, fmt.Errorf("parsing rules %s: %w", path, err)
	}
	rules, err := raw.Decode()
	if err != nil {
		return savings.Rules{}, fmt.Errorf("rules %s: %w", path, err)
	}
	return rules, nil
}
