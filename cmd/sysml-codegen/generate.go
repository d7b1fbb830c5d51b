package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sysml-go/sysml-core/diag"
)

func newGenerateCommand() *cobra.Command {
	cfg := &Config{}

	cmd := &cobra.Command{
		Use:           "generate",
		Short:         "Generate the kind/subtype/keyword/operator catalogue from the ingested corpus",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGenerate(cfg)
		},
	}
	cfg.RegisterFlags(cmd.Flags())
	return cmd
}

func runGenerate(cfg *Config) error {
	fileCfg, err := LoadFileConfig(cfg.ConfigPath)
	if err != nil {
		return err
	}
	if cfg.Output == "-" && fileCfg.Output != "" {
		cfg.Output = fileCfg.Output
	}

	if cfg.RefsDir == "" {
		return fmt.Errorf("no refs directory set: pass --refs-dir or set one of %v", envRefsDirVars)
	}

	corpus, issues := LoadCorpus(cfg.RefsDir)

	renderer := diag.NewRenderer()
	for _, issue := range issues {
		fmt.Fprintln(os.Stderr, renderer.FormatIssue(issue))
	}
	if hasFatalOrError(issues) {
		return fmt.Errorf("aborting generation: ingestion reported %d issue(s)", len(issues))
	}

	out := EmitCatalogue(corpus)

	if cfg.Output == "" || cfg.Output == "-" {
		_, err := fmt.Fprint(os.Stdout, out)
		return err
	}
	return os.WriteFile(cfg.Output, []byte(out), 0o644)
}

func hasFatalOrError(issues []diag.Issue) bool {
	for _, issue := range issues {
		if issue.Severity().IsFailure() {
			return true
		}
	}
	return false
}
