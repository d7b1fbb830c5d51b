package main

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/sysml-go/sysml-core/diag"
	"github.com/sysml-go/sysml-core/ingest"
	"github.com/sysml-go/sysml-core/ingest/jsonschema"
	"github.com/sysml-go/sysml-core/ingest/shapes"
	"github.com/sysml-go/sysml-core/ingest/ttl"
	"github.com/sysml-go/sysml-core/ingest/xmi"
	"github.com/sysml-go/sysml-core/ingest/xtext"
)

// Corpus is everything LoadCorpus extracted from one refs directory,
// ready to feed the emission and cross-validation passes.
type Corpus struct {
	Types       []ingest.TypeInfo
	Shapes      []ingest.PropertyShape
	XMIClasses  []string
	Constraints []ingest.XmiRelationshipConstraint
	Keywords    []ingest.KeywordInfo
	Operators   []ingest.OperatorInfo
	XtextEnums  []ingest.EnumInfo
	SchemaEnums []ingest.EnumInfo
}

// corpusLayout names the sub-directory under refsDir each format's
// source files live in.
var corpusLayout = struct {
	ttl, shapes, xmi, xtext, jsonschema string
}{"ttl", "shapes", "xmi", "xtext", "jsonschema"}

// LoadCorpus walks the five normative-artifact sub-directories under
// refsDir and parses every file each front end recognizes. A missing
// sub-directory is not an error — a corpus assembled for a single
// format (e.g. only TTL, for a quick type-coverage check) is valid.
func LoadCorpus(refsDir string) (Corpus, []diag.Issue) {
	var corpus Corpus
	var issues []diag.Issue

	for _, name := range listFiles(filepath.Join(refsDir, corpusLayout.ttl)) {
		content, err := os.ReadFile(name)
		if err != nil {
			issues = append(issues, readError(name, err, diag.P002_DANGLING_TRIPLE))
			continue
		}
		types, errs := ttl.Parse(name, string(content))
		corpus.Types = append(corpus.Types, types...)
		issues = append(issues, parseErrorsToIssues(errs, diag.P002_DANGLING_TRIPLE)...)
	}

	for _, name := range listFiles(filepath.Join(refsDir, corpusLayout.shapes)) {
		content, err := os.ReadFile(name)
		if err != nil {
			issues = append(issues, readError(name, err, diag.P003_BAD_SHAPE))
			continue
		}
		resolved, errs := shapes.ResolveSharedProperties(name, string(content))
		corpus.Shapes = append(corpus.Shapes, resolved...)
		issues = append(issues, parseErrorsToIssues(errs, diag.P003_BAD_SHAPE)...)
	}

	for _, name := range listFiles(filepath.Join(refsDir, corpusLayout.xmi)) {
		content, err := os.ReadFile(name)
		if err != nil {
			issues = append(issues, readError(name, err, diag.P005_BAD_XMI))
			continue
		}
		classes, errs := xmi.ParseClasses(name, string(content))
		corpus.XMIClasses = append(corpus.XMIClasses, classes...)
		issues = append(issues, parseErrorsToIssues(errs, diag.P005_BAD_XMI)...)

		constraints, cErrs := xmi.ParseRelationshipConstraints(name, string(content))
		corpus.Constraints = append(corpus.Constraints, constraints...)
		issues = append(issues, parseErrorsToIssues(cErrs, diag.P005_BAD_XMI)...)
	}

	for _, name := range listFiles(filepath.Join(refsDir, corpusLayout.xtext)) {
		content, err := os.ReadFile(name)
		if err != nil {
			issues = append(issues, readError(name, err, diag.P006_BAD_GRAMMAR_RULE))
			continue
		}
		text := string(content)
		corpus.Keywords = append(corpus.Keywords, xtext.ParseKeywords(text)...)
		corpus.Operators = append(corpus.Operators, xtext.ParseOperators(text)...)
		corpus.XtextEnums = append(corpus.XtextEnums, xtext.ParseEnums(text)...)
	}

	for _, name := range listFiles(filepath.Join(refsDir, corpusLayout.jsonschema)) {
		content, err := os.ReadFile(name)
		if err != nil {
			issues = append(issues, readError(name, err, diag.P007_BAD_JSON_SCHEMA))
			continue
		}
		enums, errs := jsonschema.ParseEnums(name, content)
		corpus.SchemaEnums = append(corpus.SchemaEnums, enums...)
		issues = append(issues, parseErrorsToIssues(errs, diag.P007_BAD_JSON_SCHEMA)...)
	}

	return corpus, issues
}

func listFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, filepath.Join(dir, e.Name()))
	}
	sort.Strings(names)
	return names
}

func parseErrorsToIssues(errs []ingest.ParseError, code diag.Code) []diag.Issue {
	out := make([]diag.Issue, 0, len(errs))
	for _, e := range errs {
		builder := diag.NewIssue(diag.Error, code, e.Message).
			WithDetail("source", e.Source)
		if e.Line > 0 {
			builder = builder.WithDetail("line", strconv.Itoa(e.Line))
		}
		out = append(out, builder.Build())
	}
	return out
}

func readError(path string, err error, code diag.Code) diag.Issue {
	return diag.NewIssue(diag.Fatal, code, "read "+path+": "+err.Error()).Build()
}
