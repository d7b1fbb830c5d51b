// Package turtle implements the minimal Turtle lexer shared by the ttl
// and shapes ingestion front ends: enough to recognize prefix
// declarations, subject/predicate-object statements with ';'-separated
// predicate lists, quoted string literals, the 'a' shorthand for
// rdf:type, and '#' line comments, terminated by a top-level '.'.
//
// It is not a general RDF/Turtle implementation — no blank nodes,
// collections, or nested predicate-object lists — only what the OMG
// vocabulary and OSLC shapes files actually use.
package turtle

import "strings"

// Statement is one subject with its predicate-object pairs, as they
// appeared between two top-level '.' terminators.
type Statement struct {
	Line      int
	Subject   string
	Predicate []string
	Object    []string
}

// ParseErrorFunc is how the lexer reports a malformed statement without
// depending on the ingest package's ParseError type directly.
type ParseErrorFunc func(line int, message string)

// Lex splits content into top-level statements. Comments (from '#' to
// end of line, outside quotes) are stripped first; content inside quoted
// strings is never treated as a statement delimiter. onError is called
// once per malformed statement (one missing a subject/predicate/object,
// or left unterminated at end of input); malformed statements are
// skipped rather than aborting the whole parse.
func Lex(content string, onError ParseErrorFunc) []Statement {
	stripped := stripComments(content)

	var stmts []Statement
	var buf strings.Builder
	inQuote := false
	var quoteChar byte
	line := 1
	stmtStartLine := 1
	atStatementStart := true

	flush := func() {
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		atStatementStart = true
		if text == "" {
			return
		}
		stmt, ok := parseStatement(text, stmtStartLine)
		if !ok {
			onError(stmtStartLine, "malformed or dangling triple: "+truncate(text, 60))
			return
		}
		stmts = append(stmts, stmt)
	}

	for i := 0; i < len(stripped); i++ {
		c := stripped[i]
		if c == '\n' {
			line++
		}
		if atStatementStart && !isSpace(c) {
			stmtStartLine = line
			atStatementStart = false
		}
		switch {
		case inQuote:
			buf.WriteByte(c)
			if c == quoteChar && !escaped(stripped, i) {
				inQuote = false
			}
		case c == '"' || c == '\'':
			inQuote = true
			quoteChar = c
			buf.WriteByte(c)
		case c == '.' && statementBoundary(stripped, i):
			buf.WriteByte(' ')
		default:
			buf.WriteByte(c)
		}
		if c == '.' && statementBoundary(stripped, i) {
			flush()
		}
	}
	if strings.TrimSpace(buf.String()) != "" {
		onError(stmtStartLine, "dangling triple: unterminated statement at end of input")
	}

	return stmts
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// statementBoundary reports whether the '.' at index i ends a statement
// rather than appearing inside an IRI or a literal. A terminating '.' is
// followed by whitespace or end of input.
func statementBoundary(s string, i int) bool {
	if i+1 < len(s) {
		return isSpace(s[i+1])
	}
	return true
}

func escaped(s string, i int) bool {
	backslashes := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		backslashes++
	}
	return backslashes%2 == 1
}

// stripComments removes '#'-to-end-of-line comments outside quoted
// strings and <IRI> references, replacing each comment with an empty
// string so line numbers in the result stay aligned with the original.
func stripComments(content string) string {
	lines := strings.Split(content, "\n")
	for idx, l := range lines {
		inQuote := false
		inIRI := false
		var quoteChar byte
		for i := 0; i < len(l); i++ {
			c := l[i]
			if inQuote {
				if c == quoteChar && !escaped(l, i) {
					inQuote = false
				}
				continue
			}
			if inIRI {
				if c == '>' {
					inIRI = false
				}
				continue
			}
			if c == '<' {
				inIRI = true
				continue
			}
			if c == '"' || c == '\'' {
				inQuote = true
				quoteChar = c
				continue
			}
			if c == '#' {
				lines[idx] = l[:i]
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

func parseStatement(text string, line int) (Statement, bool) {
	tokens := tokenize(text)
	if len(tokens) < 3 {
		return Statement{}, false
	}

	subject := tokens[0]
	rest := tokens[1:]

	var predicates, objects []string
	for len(rest) > 0 {
		if len(rest) < 2 {
			return Statement{}, false
		}
		pred := rest[0]
		if pred == "a" {
			pred = "rdf:type"
		}
		obj := rest[1]
		predicates = append(predicates, pred)
		objects = append(objects, obj)
		rest = rest[2:]
		if len(rest) > 0 && rest[0] == ";" {
			rest = rest[1:]
		}
	}

	if len(predicates) == 0 {
		return Statement{}, false
	}

	return Statement{Line: line, Subject: subject, Predicate: predicates, Object: objects}, true
}

// tokenize splits a statement into whitespace-separated tokens, keeping
// quoted strings intact (including their quote characters) and treating
// ';' as its own token.
func tokenize(text string) []string {
	var tokens []string
	var buf strings.Builder
	inQuote := false
	var quoteChar byte

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case inQuote:
			buf.WriteByte(c)
			if c == quoteChar && !escaped(text, i) {
				inQuote = false
			}
		case c == '"' || c == '\'':
			inQuote = true
			quoteChar = c
			buf.WriteByte(c)
		case isSpace(c):
			flush()
		case c == ';':
			flush()
			tokens = append(tokens, ";")
		default:
			buf.WriteByte(c)
		}
	}
	flush()
	return tokens
}

// Unquote strips surrounding quote characters from a Turtle string
// literal token. Non-string tokens (IRIs, prefixed names) are returned
// unchanged.
func Unquote(token string) string {
	if len(token) >= 2 && (token[0] == '"' || token[0] == '\'') && token[len(token)-1] == token[0] {
		return token[1 : len(token)-1]
	}
	return token
}

// LocalName extracts the fragment or final path segment of an IRI or
// prefixed name: "<https://example.org/vocab#PartUsage>" and
// "oslc_sysml:PartUsage" both yield "PartUsage".
func LocalName(token string) string {
	t := strings.TrimPrefix(token, "<")
	t = strings.TrimSuffix(t, ">")
	if idx := strings.LastIndexByte(t, '#'); idx >= 0 {
		return t[idx+1:]
	}
	if idx := strings.LastIndexByte(t, '/'); idx >= 0 {
		return t[idx+1:]
	}
	if idx := strings.LastIndexByte(t, ':'); idx >= 0 {
		return t[idx+1:]
	}
	return t
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
