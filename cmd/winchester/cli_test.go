package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	projectDir = ""
	verbose = false
	chartPreset = ""
	chartOut = "chart.png"
	chartWidth, chartHeight = 0, 0
	logger = zap.NewNop()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestChartWritesPNG(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "outcomes.png")

	out, err := execute(t, "--dir", dir, "chart", "--preset", "case-outcomes", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Case Success Rate")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
	assert.DirExists(t, filepath.Join(dir, ".winchester", "logs"))
}

func TestChartUsesConfiguredPreset(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "rate.png")

	out, err := execute(t, "--dir", dir, "chart", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Our Success Rate")
	assert.FileExists(t, target)
}

func TestChartRejectsUnknownPreset(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "--dir", dir, "chart", "--preset", "revenue", "--out", filepath.Join(dir, "x.png"))
	require.Error(t, err)
}

func TestValidateCatalogBundled(t *testing.T) {
	out, err := execute(t, "--dir", t.TempDir(), "validate-catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "OK: bundled catalog (Winchester & Associates)")
}

func TestValidateCatalogReportsErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	body := `version: 1
firm: Test Firm
practice_areas:
  - title: Tax Law
attorneys:
  - title: Jane Roe
    role: Partner
    category: Maritime Law
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := execute(t, "--dir", dir, "validate-catalog", path)
	require.ErrorIs(t, err, errInvalidCatalog)
	assert.Contains(t, out, "Invalid: "+path)
	assert.Contains(t, out, `"Maritime Law" is not a practice area`)
}

func TestValidateCatalogAcceptsValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	body := `version: 1
firm: Test Firm
practice_areas:
  - title: Tax Law
case_results:
  - title: Audit Defense
    outcome: Penalties waived
    category: Tax Law
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := execute(t, "--dir", dir, "validate-catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK: "+path+" (Test Firm, 2 items)")
}
