package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sysml-go/sysml-core/ingest"
)

// EmitCatalogue renders the deterministic generated-source artifact: the
// kind enumeration, a subtype table sufficient to implement
// is_subtype_of transitively, keyword literal tables, and operator
// tables, in that order. Every listed set is sorted so the same corpus
// always produces byte-identical output, regardless of file read order.
func EmitCatalogue(corpus Corpus) string {
	var sb strings.Builder

	writeKindEnum(&sb, corpus.Types)
	sb.WriteString("\n")
	writeSubtypeTable(&sb, corpus.Types)
	sb.WriteString("\n")
	writeKeywordTables(&sb, corpus.Keywords)
	sb.WriteString("\n")
	writeOperatorTable(&sb, corpus.Operators)

	return sb.String()
}

func writeKindEnum(sb *strings.Builder, types []ingest.TypeInfo) {
	names := typeNames(types)
	sb.WriteString("// Kinds is the closed set of element kinds derived from the ingested corpus.\n")
	sb.WriteString("var Kinds = []string{\n")
	for _, n := range names {
		fmt.Fprintf(sb, "\t%q,\n", n)
	}
	sb.WriteString("}\n")
}

func writeSubtypeTable(sb *strings.Builder, types []ingest.TypeInfo) {
	byName := make(map[string]ingest.TypeInfo, len(types))
	for _, t := range types {
		byName[t.Name] = t
	}
	names := typeNames(types)

	sb.WriteString("// SubtypeTable maps each kind to its declared parent, empty for roots.\n")
	sb.WriteString("var SubtypeTable = map[string]string{\n")
	for _, n := range names {
		parent := byName[n].Parent
		fmt.Fprintf(sb, "\t%q: %q,\n", n, parent)
	}
	sb.WriteString("}\n")
}

func writeKeywordTables(sb *strings.Builder, keywords []ingest.KeywordInfo) {
	sorted := make([]ingest.KeywordInfo, len(keywords))
	copy(sorted, keywords)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].RuleName < sorted[j].RuleName })

	sb.WriteString("// KeywordTables maps each keyword rule name to its sorted literal set.\n")
	sb.WriteString("var KeywordTables = map[string][]string{\n")
	for _, k := range sorted {
		values := append([]string(nil), k.Keywords...)
		sort.Strings(values)
		fmt.Fprintf(sb, "\t%q: {", k.RuleName)
		for i, v := range values {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%q", v)
		}
		sb.WriteString("},\n")
	}
	sb.WriteString("}\n")
}

func writeOperatorTable(sb *strings.Builder, operators []ingest.OperatorInfo) {
	sorted := make([]ingest.OperatorInfo, len(operators))
	copy(sorted, operators)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Precedence < sorted[j].Precedence })

	sb.WriteString("// OperatorTable lists operator rules in precedence order (loosest first).\n")
	sb.WriteString("var OperatorTable = []struct {\n\tRuleName   string\n\tPrecedence int\n\tCategory   string\n}{\n")
	for _, op := range sorted {
		fmt.Fprintf(sb, "\t{RuleName: %q, Precedence: %d, Category: %q},\n", op.RuleName, op.Precedence, op.Category)
	}
	sb.WriteString("}\n")
}

func typeNames(types []ingest.TypeInfo) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
