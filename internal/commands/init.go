package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/autosave-dev/autosave/internal/config"
)

const exampleRules = `{
  "q": [],
  "p": [],
  "k": [
    {"start": "2023-01-01 00:00:00", "end": "2023-12-31 23:59:59"}
  ]
}
`

func newInitCommand() *cobra.Command {
	var format string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default configuration and an example rules file",
		Args:  cobra.MaximumNArgs(1),
		// Runs without loading configuration: it is what creates it.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if format != "yaml" && format != "toml" {
				return fmt.Errorf("invalid --format %q: must be yaml or toml", format)
			}
			return runInit(cmd, absDir, format, force)
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "config file format: yaml or toml")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}

func runInit(cmd *cobra.Command, dir, format string, force bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, "autosave."+format)
	rulesPath := filepath.Join(dir, "rules.json")
	if !force {
		for _, p := range []string{cfgPath, rulesPath} {
			if _, err := os.Stat(p); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", p)
			}
		}
	}

	if err := config.Save(cfgPath, config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.WriteFile(rulesPath, []byte(exampleRules), 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized autosave at %s\n", dir)
	return nil
}
