// Package xtext does line-oriented extraction of three rule families
// from Xtext grammar files: keyword rules (string literals appearing in
// a rule body), operator rules (a hand-enumerated set of grammar rule
// names whose relative order in the file is their precedence), and enum
// rules (pipe-separated value alternatives).
//
// This is deliberately not a grammar parser: Xtext rule syntax is rich
// enough that a line-oriented scan covering exactly what the vocabulary
// rules look like is simpler and more robust than building even a
// partial EBNF parser for a format only read at generation time.
package xtext

import (
	"regexp"
	"strings"

	"github.com/sysml-go/sysml-core/ingest"
)

var (
	ruleHeaderRe = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	quotedRe     = regexp.MustCompile(`'((?:[^'\\]|\\.)*)'`)
)

// operatorRules is the hand-enumerated set of Xtext rule names that
// define operator precedence levels, in the order KerML's expression
// grammar declares them (loosest-binding first).
var operatorRules = []struct {
	name     string
	category string
}{
	{"OrOperator", "logical"},
	{"XorOperator", "logical"},
	{"AndOperator", "logical"},
	{"EqualityOperator", "equality"},
	{"ClassificationTestOperator", "classification"},
	{"RelationalOperator", "relational"},
	{"RangeOperator", "range"},
	{"AdditiveOperator", "additive"},
	{"MultiplicativeOperator", "multiplicative"},
	{"ExponentialOperator", "exponential"},
	{"UnaryOperator", "unary"},
}

func isOperatorRule(ruleName string) (string, bool) {
	for _, r := range operatorRules {
		if r.name == ruleName {
			return r.category, true
		}
	}
	return "", false
}

// ParseKeywords scans content line by line and collects the quoted
// string literals appearing in each rule's body into one
// [ingest.KeywordInfo] per rule, skipping rules recognized as operator
// or enum rules (those are reported separately by [ParseOperators] and
// [ParseEnums]).
func ParseKeywords(content string) []ingest.KeywordInfo {
	var result []ingest.KeywordInfo
	var current ingest.KeywordInfo
	inKeywordRule := false

	flush := func() {
		if inKeywordRule && len(current.Keywords) > 0 {
			result = append(result, current)
		}
		current = ingest.KeywordInfo{}
		inKeywordRule = false
	}

	for _, line := range strings.Split(content, "\n") {
		if name, ok := newRuleHeader(line); ok {
			flush()
			if _, isOp := isOperatorRule(name); !isOp && !isEnumRule(line) {
				current = ingest.KeywordInfo{RuleName: name}
				inKeywordRule = true
			}
		}
		if !inKeywordRule {
			continue
		}
		for _, m := range quotedRe.FindAllStringSubmatch(line, -1) {
			current.Keywords = append(current.Keywords, m[1])
		}
	}
	flush()

	return result
}

// ParseOperators extracts the subset of rules in content that match the
// hand-enumerated operator-rule set, in the order they appear, with
// Precedence assigned by that appearance order (lower means looser
// binding, matching grammar declaration order), so the result is sorted
// by precedence.
func ParseOperators(content string) []ingest.OperatorInfo {
	var result []ingest.OperatorInfo

	for _, line := range strings.Split(content, "\n") {
		name, ok := newRuleHeader(line)
		if !ok {
			continue
		}
		category, isOp := isOperatorRule(name)
		if !isOp {
			continue
		}
		result = append(result, ingest.OperatorInfo{
			RuleName: name,
			Category: category,
		})
	}

	for i := range result {
		result[i].Precedence = i
	}

	return result
}

// ParseEnums extracts pipe-separated value enumerations declared as
// `RuleName : 'a' | 'b' | 'c' ;`.
func ParseEnums(content string) []ingest.EnumInfo {
	var result []ingest.EnumInfo

	for _, line := range strings.Split(content, "\n") {
		if !isEnumRule(line) {
			continue
		}
		name, ok := newRuleHeader(line)
		if !ok {
			continue
		}
		if _, isOp := isOperatorRule(name); isOp {
			continue
		}
		var values []string
		for _, m := range quotedRe.FindAllStringSubmatch(line, -1) {
			values = append(values, m[1])
		}
		if len(values) == 0 {
			continue
		}
		result = append(result, ingest.EnumInfo{Name: name, Values: values})
	}

	return result
}

// isEnumRule reports whether a rule header line's body is a flat
// pipe-separated list of quoted literals with no other rule references
// — the shape an enum rule takes, as opposed to a keyword rule whose
// body mixes literals with non-terminal references.
func isEnumRule(line string) bool {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return false
	}
	body := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line[idx+1:]), ";"))
	if body == "" || !strings.Contains(body, "|") {
		return false
	}
	parts := strings.Split(body, "|")
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if !quotedRe.MatchString(p) || quotedRe.FindString(p) != p {
			return false
		}
	}
	return true
}

func newRuleHeader(line string) (string, bool) {
	m := ruleHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
