package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nickbeaird/recordexpungPDX/internal/model"
)

// run executes the root command with args and returns stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

type renderedDoc struct {
	Results []struct {
		Source string                   `json:"source"`
		Result *model.ExpungementResult `json:"result"`
		Error  string                   `json:"error"`
	} `json:"results"`
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "expunge "+version+"\n", out)
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "check",
		"--statute", "163.415",
		"--level", "Misdemeanor Class A",
		"--ruling", "convicted",
		"--date", "2024-01-08",
		"--as-of", "2024-01-15",
		"--format", "json",
	)
	require.NoError(t, err)

	var doc renderedDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 1)
	require.NotNil(t, doc.Results[0].Result)
	assert.Equal(t, "Person Crime", doc.Results[0].Result.TypeName)
	assert.Equal(t, model.StatusIneligible, doc.Results[0].Result.TypeEligibility.Status)
	assert.Equal(t, "2024-01-15", doc.Results[0].Result.EvaluatedOn.String())
}

func TestCheck_MalformedStatute(t *testing.T) {
	_, _, err := run(t, "check", "--statute", "abc", "--level", "Felony Class C", "--ruling", "", "--date", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed statute")
}

func TestNewCheckCharge(t *testing.T) {
	c, err := newCheckCharge("DUII", "813.010", "Misdemeanor Class A", "", "")
	require.NoError(t, err)
	assert.Nil(t, c.Disposition)

	c, err = newCheckCharge("", "813.010", "Misdemeanor Class A", "Dismissed", "03/04/2016")
	require.NoError(t, err)
	require.NotNil(t, c.Disposition)
	assert.Equal(t, model.RulingDismissed, c.Disposition.Ruling)
	assert.Equal(t, "2016-03-04", c.Disposition.Date.String())

	_, err = newCheckCharge("", "813.010", "Misdemeanor Class A", "", "2016-03-04")
	assert.True(t, errors.Is(err, model.ErrUnknownRuling))
}

func TestEvaluate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "charges.yaml")
	require.NoError(t, os.WriteFile(input, []byte(`charges:
  - id: c1
    statute: "813.010"
    level: Misdemeanor Class A
    disposition:
      ruling: convicted
      date: 2019-03-01
  - id: c2
    statute: "not-a-statute"
    level: Felony Class C
  - id: c3
    statute: "164.043"
    level: Misdemeanor Class C
    disposition:
      ruling: convicted
      date: someday
`), 0o644))

	outPath := filepath.Join(dir, "results.json")
	metricsPath := filepath.Join(dir, "expunge.prom")

	_, stderr, err := run(t, "evaluate", input,
		"--as-of", "2024-01-15",
		"--format", "json",
		"--concurrency", "2",
		"--out", outPath,
		"--metrics-file", metricsPath,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc renderedDoc
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Results, 3)

	require.NotNil(t, doc.Results[0].Result)
	assert.Equal(t, "Subject To Restrictions Crime", doc.Results[0].Result.TypeName)
	assert.Equal(t, "2029-03-01", doc.Results[0].Result.TypeEligibility.EligibleDate.String())

	assert.Nil(t, doc.Results[1].Result)
	assert.Contains(t, doc.Results[1].Error, "malformed statute")

	assert.Nil(t, doc.Results[2].Result)
	assert.Contains(t, doc.Results[2].Error, "malformed date")

	assert.Contains(t, stderr, "errors")

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `expunge_charge_errors_total{kind="date"} 1`)
	assert.Contains(t, string(prom), `expunge_charge_errors_total{kind="statute"} 1`)
}

func TestEvaluate_MissingFile(t *testing.T) {
	_, _, err := run(t, "evaluate", filepath.Join(t.TempDir(), "missing.yaml"), "--out", "")
	require.Error(t, err)
}

func TestStatutes(t *testing.T) {
	out, _, err := run(t, "statutes")
	require.NoError(t, err)
	assert.Contains(t, out, "163.305")
	assert.Contains(t, out, "Oregon Vehicle Code")

	// Narrower ranges are listed before the vehicle code
	assert.Less(t, strings.Index(out, "813.010"), strings.Index(out, "801.000"))
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".expunge", "config.yaml")
	require.NoError(t, writeDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg model.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, model.DefaultConfig().Cache, cfg.Cache)
	assert.Equal(t, "json", cfg.Output.Format)

	err = writeDefaultConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestConfigShow_EnvFile(t *testing.T) {
	const key = "EXPUNGE_CACHE_TTL"
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { envFile = "" })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=45m\n"), 0o644))

	out, _, err := run(t, "config", "show", "--env-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ttl: 45m0s")
}
