package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sysml-go/sysml-core/diag"
	"github.com/sysml-go/sysml-core/ingest"
)

func newValidateCommand() *cobra.Command {
	cfg := &Config{}

	cmd := &cobra.Command{
		Use:           "validate",
		Short:         "Cross-validate the TTL/XMI class sets and Xtext/JSON-schema enumerations",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runValidate(cfg)
		},
	}
	cfg.RegisterFlags(cmd.Flags())
	return cmd
}

func runValidate(cfg *Config) error {
	fileCfg, err := LoadFileConfig(cfg.ConfigPath)
	if err != nil {
		return err
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
		return fmt.Errorf("aborting validation: ingestion reported %d issue(s)", len(issues))
	}

	typeReport, enumReports := ingest.ValidateAll(
		typeNames(corpus.Types), corpus.XMIClasses, corpus.XtextEnums, corpus.SchemaEnums)

	typeAllow := toSet(fileCfg.AllowlistType)
	enumAllow := toSet(fileCfg.AllowlistEnum)

	failed := false

	for _, name := range typeReport.OnlyInTTL {
		if typeAllow[name] {
			continue
		}
		failed = true
		fmt.Fprintf(os.Stderr, "type %q present in TTL but not XMI\n", name)
	}
	for _, name := range typeReport.OnlyInXMI {
		if typeAllow[name] {
			continue
		}
		failed = true
		fmt.Fprintf(os.Stderr, "type %q present in XMI but not TTL\n", name)
	}
	for _, report := range enumReports {
		if enumAllow[report.RuleName] {
			continue
		}
		failed = true
		fmt.Fprintf(os.Stderr, "enum %q mismatched: only in xtext=%v only in schema=%v\n",
			report.RuleName, report.OnlyInXtext, report.OnlyInSchema)
	}

	if failed {
		return fmt.Errorf("validation failed")
	}

	fmt.Fprintln(os.Stdout, "validation passed")
	return nil
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
