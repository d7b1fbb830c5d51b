package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
)

// envRefsDirVars is checked in order; the first one set wins. Three
// names are accepted because the normative artifacts have shipped under
// all three at different points in this module's history.
var envRefsDirVars = []string{"SYSML_REFS_DIR", "SYSMLV2_REFS_DIR", "SYSML_CORPUS_PATH"}

// Config holds the CLI-flag-level settings shared by both the generate
// and validate subcommands.
type Config struct {
	RefsDir    string
	ConfigPath string
	Output     string
}

// RegisterFlags adds the shared flags to a subcommand's flag set.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.RefsDir, "refs-dir", defaultRefsDir(),
		"directory containing the normative TTL/shapes/XMI/Xtext/JSON-schema artifacts")
	flags.StringVar(&c.ConfigPath, "config", "",
		"path to a JSONC config file (allowlist + output path overrides)")
	flags.StringVarP(&c.Output, "output", "o", "-",
		"output file path for generated source (- for stdout)")
}

func defaultRefsDir() string {
	for _, name := range envRefsDirVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// FileConfig is the JSONC document read from [Config.ConfigPath]: an
// allowlist of known TTL/XMI or Xtext/JSON-schema discrepancies that
// validate should not fail on, plus an optional output path override.
type FileConfig struct {
	Output        string   `json:"output"`
	AllowlistType []string `json:"allowlistTypes"`
	AllowlistEnum []string `json:"allowlistEnums"`
}

// LoadFileConfig reads and decodes a JSONC config file. An empty path
// returns a zero-value FileConfig and no error — the config file is
// optional.
func LoadFileConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	if err := json.Unmarshal(jsonc.ToJSON(raw), &fc); err != nil {
		return FileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}
