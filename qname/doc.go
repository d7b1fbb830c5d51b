// Package qname provides QualifiedName, the ::-separated identifier path
// used to name and address elements in a model graph.
//
// A qualified name is an ordered, non-empty sequence of segments. The
// textual syntax joins segments with "::"; a segment may itself contain
// "::" or "\" if those characters are backslash-escaped. [ParseEscaped]
// honors escapes; [Parse] performs a plain, unescaped split. [QualifiedName.String]
// is the exact inverse of ParseEscaped on well-formed input.
package qname
