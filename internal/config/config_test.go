package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autosave-dev/autosave/internal/model"
	"github.com/autosave-dev/autosave/internal/returns"
	"github.com/autosave-dev/autosave/internal/savings"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Server.Addr = "127.0.0.1:9000"
	cfg.Savings.CeilingPolicy = "exact"
	cfg.Returns.Modes["index"] = ModeConfig{Rate: "0.12"}

	for _, name := range []string{"autosave.yaml", "autosave.toml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, Save(path, cfg), name)

		got, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, cfg, got, name)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":5477", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "100", cfg.Savings.Multiple)
	assert.Equal(t, "truncate", cfg.Savings.CeilingPolicy)
	assert.Equal(t, 60, cfg.Returns.RetirementAge)
	assert.Len(t, cfg.Returns.TaxSlabs, 5)
	assert.Empty(t, cfg.Returns.TaxSlabs[4].UpTo)
	require.NoError(t, cfg.Validate())
}

func TestDefaultsMatchEngineDefaults(t *testing.T) {
	p, err := Default().EngineParams()
	require.NoError(t, err)
	want := returns.DefaultParams()

	assert.Equal(t, want.RetirementAge, p.RetirementAge)
	assert.True(t, want.DeductionRate.Equal(p.DeductionRate))
	assert.True(t, want.DeductionCap.Equal(p.DeductionCap))
	assert.Equal(t, savings.CeilingTruncate, p.RoundUp.Policy)
	assert.True(t, p.RoundUp.Multiple.Equal(savings.DefaultMultiple))

	require.Len(t, p.Modes, len(want.Modes))
	for mode, rate := range want.Modes {
		assert.True(t, rate.Rate.Equal(p.Modes[mode].Rate), "mode %s", mode)
		assert.Equal(t, rate.TaxBenefit, p.Modes[mode].TaxBenefit, "mode %s", mode)
	}

	require.Len(t, p.Schedule, len(want.Schedule))
	for i := range want.Schedule {
		assert.Equal(t, want.Schedule[i].UpTo.Valid, p.Schedule[i].UpTo.Valid, "slab %d", i)
		assert.True(t, want.Schedule[i].UpTo.Decimal.Equal(p.Schedule[i].UpTo.Decimal), "slab %d", i)
		assert.True(t, want.Schedule[i].Rate.Equal(p.Schedule[i].Rate), "slab %d", i)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autosave.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, ":5477", cfg.Server.Addr)
	assert.Len(t, cfg.Returns.TaxSlabs, 5)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autosave.toml")
	contents := `
[savings]
ceiling_policy = "exact"

[returns]
retirement_age = 65
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "exact", cfg.Savings.CeilingPolicy)
	assert.Equal(t, 65, cfg.Returns.RetirementAge)
	assert.Equal(t, "100", cfg.Savings.Multiple)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autosave.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not, a, map"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autosave.yaml")
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "ceiling_policy: truncate")
	assert.Contains(t, contents, "retirement_age: 60")
	assert.Contains(t, contents, "tax_slabs:")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvPort, "8080")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvRetirementAge, "58")
	t.Setenv(EnvCeilingPolicy, "exact")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 58, cfg.Returns.RetirementAge)
	assert.Equal(t, "exact", cfg.Savings.CeilingPolicy)

	t.Setenv(EnvAddr, "127.0.0.1:1234")
	cfg.ApplyEnv()
	assert.Equal(t, "127.0.0.1:1234", cfg.Server.Addr)
}

func TestApplyEnv_IgnoresBadInt(t *testing.T) {
	t.Setenv(EnvRetirementAge, "sixty")
	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, 60, cfg.Returns.RetirementAge)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default().Savings, cfg.Savings)

	custom := Default()
	custom.Savings.CeilingPolicy = "exact"
	require.NoError(t, Save(filepath.Join(dir, DefaultFile), custom))

	cfg, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "exact", cfg.Savings.CeilingPolicy)

	_, err = Resolve(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Server.Addr = "nope"
	cfg.Logging.Format = "xml"
	cfg.Savings.CeilingPolicy = "sideways"
	cfg.Returns.Modes["gold"] = ModeConfig{Rate: "0.01"}
	cfg.Returns.TaxSlabs = []TaxSlabConfig{{Rate: "0.1"}, {UpTo: "100", Rate: "x"}}

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "invalid server addr")
	assert.Contains(t, msg, "invalid log format")
	assert.Contains(t, msg, "ceiling_policy")
	assert.Contains(t, msg, `unknown mode "gold"`)
	assert.Contains(t, msg, "tax_slabs[1].rate")
}

func TestValidate_RetirementAgeRange(t *testing.T) {
	cfg := Default()
	cfg.Returns.RetirementAge = 1000000
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returns.retirement_age must be between 0 and 150")
}

func TestLoad_ModeMergesPerField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "autosave.yaml")
	require.NoError(t, os.WriteFile(path, []byte("returns:\n  modes:\n    nps:\n      rate: \"0.08\"\n    gold:\n      rate: \"0.05\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.08", cfg.Returns.Modes["nps"].Rate)
	assert.True(t, cfg.Returns.Modes["nps"].HasTaxBenefit(), "tax benefit survives a rate-only override")
	assert.Equal(t, "0.1449", cfg.Returns.Modes["index"].Rate)
	assert.False(t, cfg.Returns.Modes["gold"].HasTaxBenefit())

	_, err = cfg.EngineParams()
	assert.ErrorContains(t, err, `unknown mode "gold"`)
}

func TestLoad_ModeTaxBenefitOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "autosave.toml")
	require.NoError(t, os.WriteFile(path, []byte("[returns.modes.NPS]\ntax_benefit = false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0711", cfg.Returns.Modes["nps"].Rate)
	assert.False(t, cfg.Returns.Modes["nps"].HasTaxBenefit())

	p, err := cfg.EngineParams()
	require.NoError(t, err)
	assert.False(t, p.Modes[model.ModeNPS].TaxBenefit)
}

func TestEngineParams_ExactPolicy(t *testing.T) {
	cfg := Default()
	cfg.Savings.CeilingPolicy = "exact"
	p, err := cfg.EngineParams()
	require.NoError(t, err)
	assert.Equal(t, savings.CeilingExact, p.RoundUp.Policy)

	_, ok := p.Modes[model.ModeNPS]
	assert.True(t, ok)
}

func TestLoggerConfig(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"
	lc := cfg.LoggerConfig()
	assert.Equal(t, slog.LevelDebug, lc.Level)
	assert.Equal(t, "json", lc.Format)
}
