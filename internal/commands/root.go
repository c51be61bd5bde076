package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/autosave-dev/autosave/internal/buildinfo"
	"github.com/autosave-dev/autosave/internal/config"
	"github.com/autosave-dev/autosave/internal/importer"
	applog "github.com/autosave-dev/autosave/internal/log"
	"github.com/autosave-dev/autosave/internal/returns"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// globals is the state shared by every subcommand, filled in before any
// subcommand runs.
type globals struct {
	configPath string
	output     string

	cfg      *config.Config
	logger   *applog.Logger
	engine   *returns.Engine
	registry *importer.Registry
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globals{registry: importer.DefaultRegistry()}

	rootCmd := &cobra.Command{
		Use:     "autosave",
		Short:   "Round-up micro-savings and long-term returns projection",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "config file, YAML or TOML (default ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().StringVarP(&g.output, "output", "o", outputTable, "output format: table or json")

	rootCmd.AddCommand(
		newServeCommand(g),
		newParseCommand(g),
		newValidateCommand(g),
		newFilterCommand(g),
		newReturnsCommand(g),
		newInitCommand(),
	)

	return rootCmd
}

// setup loads .env, the config file and environment overrides, then builds
// the logger and engine.
func (g *globals) setup(cmd *cobra.Command) error {
	if g.output != outputTable && g.output != outputJSON {
		return fmt.Errorf("invalid --output %q: must be %s or %s", g.output, outputTable, outputJSON)
	}

	// A missing .env is normal.
	_ = godotenv.Load()

	cfg, err := config.Resolve(g.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	params, err := cfg.EngineParams()
	if err != nil {
		return err
	}

	lc := cfg.LoggerConfig()
	lc.Writer = cmd.ErrOrStderr()
	lc.Component = applog.ComponentCLI

	g.cfg = cfg
	g.logger = applog.New(lc)
	g.engine = returns.NewEngine(params)
	return nil
}
