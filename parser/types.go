package parser

import "github.com/sysml-go/sysml-core/span"

// File is one source document handed to a [Parser]: a source identity for
// diagnostics and spans, plus its raw bytes. Content is read entirely into
// memory — ingestion sources are vocabulary and schema documents, not
// large corpora.
type File struct {
	Source  span.SourceID
	Content []byte
}

// NewFile builds a File from a filesystem path, canonicalizing it into a
// [span.SourceID] the way every span-producing component in this module
// expects.
func NewFile(path string, content []byte) (File, error) {
	id, err := span.SourceIDFromPath(path)
	if err != nil {
		return File{}, err
	}
	return File{Source: id, Content: content}, nil
}
