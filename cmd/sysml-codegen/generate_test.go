package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenerate_WritesCatalogueToOutputFile(t *testing.T) {
	t.Parallel()

	refsDir := writeCorpusTree(t)
	outPath := filepath.Join(t.TempDir(), "catalogue.go")

	cfg := &Config{RefsDir: refsDir, Output: outPath}
	require.NoError(t, runGenerate(cfg))

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(got), "Kinds")
	assert.Contains(t, string(got), "Element")
}

func TestRunGenerate_ConfigOutputOverridesDefaultWhenFlagNotSet(t *testing.T) {
	t.Parallel()

	refsDir := writeCorpusTree(t)
	outPath := filepath.Join(t.TempDir(), "from-config.go")

	configPath := filepath.Join(t.TempDir(), "config.jsonc")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"output": "`+outPath+`"}`), 0o644))

	cfg := &Config{RefsDir: refsDir, Output: "-", ConfigPath: configPath}
	require.NoError(t, runGenerate(cfg))

	_, err := os.Stat(outPath)
	assert.NoError(t, err)
}

func TestRunGenerate_MissingRefsDirIsAnError(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	err := runGenerate(cfg)
	assert.Error(t, err)
}

func TestRunGenerate_AbortsWhenIngestionReportsAnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ttlDir := filepath.Join(dir, corpusLayout.ttl)
	require.NoError(t, os.MkdirAll(ttlDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ttlDir, "bad.ttl"), []byte("oslc_kerml:Element a rdfs:Class"), 0o644))

	cfg := &Config{RefsDir: dir, Output: filepath.Join(t.TempDir(), "out.go")}
	err := runGenerate(cfg)
	assert.Error(t, err)
}
