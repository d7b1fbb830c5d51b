package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunValidate_PassesWhenTTLAndXMIAgree(t *testing.T) {
	t.Parallel()

	dir := writeCorpusTree(t)
	cfg := &Config{RefsDir: dir}
	assert.NoError(t, runValidate(cfg))
}

func TestRunValidate_FailsOnUnallowlistedTypeMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ttlDir := filepath.Join(dir, corpusLayout.ttl)
	xmiDir := filepath.Join(dir, corpusLayout.xmi)
	require.NoError(t, os.MkdirAll(ttlDir, 0o755))
	require.NoError(t, os.MkdirAll(xmiDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ttlDir, "k.ttl"), []byte(`@prefix oslc_kerml: <urn:x#> .
oslc_kerml:Orphan a rdfs:Class .`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(xmiDir, "k.xmi"), []byte(`<?xml version='1.0'?>
<xmi:XMI xmlns:xmi="http://www.omg.org/spec/XMI/20161101" xmlns:uml="http://www.omg.org/spec/UML/20161101">
  <uml:Package xmi:id="T" name="T">
    <packagedElement xmi:id="T-O" xmi:type="uml:Class" name="Other"/>
  </uml:Package>
</xmi:XMI>`), 0o644))

	cfg := &Config{RefsDir: dir}
	assert.Error(t, runValidate(cfg))
}

func TestRunValidate_AllowlistedTypeMismatchPasses(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ttlDir := filepath.Join(dir, corpusLayout.ttl)
	require.NoError(t, os.MkdirAll(ttlDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ttlDir, "k.ttl"), []byte(`@prefix oslc_kerml: <urn:x#> .
oslc_kerml:Orphan a rdfs:Class .`), 0o644))

	configPath := filepath.Join(t.TempDir(), "config.jsonc")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"allowlistTypes": ["Orphan"]}`), 0o644))

	cfg := &Config{RefsDir: dir, ConfigPath: configPath}
	assert.NoError(t, runValidate(cfg))
}

func TestRunValidate_MissingRefsDirIsAnError(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	assert.Error(t, runValidate(cfg))
}

func TestToSet_BuildsMembershipMapFromSlice(t *testing.T) {
	t.Parallel()

	set := toSet([]string{"a", "b"})
	assert.True(t, set["a"])
	assert.True(t, set["b"])
	assert.False(t, set["c"])
}
