package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/sysml-go/sysml-core/codec"
	"github.com/sysml-go/sysml-core/graph"
)

// MemoryStore is an in-memory [Store] implementation. It is the
// reference implementation this module ships: real backends live outside
// this module per this package's external-collaborator boundary.
//
// All methods are safe for concurrent use.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string]map[CommitID]Snapshot
	order     map[string][]CommitID
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots: make(map[string]map[CommitID]Snapshot),
		order:     make(map[string][]CommitID),
	}
}

// PutSnapshot implements [Store]. The commit id is the hex-encoded
// SHA-256 digest of the canonical JSON rendering, so two writes of
// logically identical graph content under the same project always
// collide on the same commit id.
func (s *MemoryStore) PutSnapshot(ctx context.Context, project string, meta map[string]string, g *graph.ModelGraph) (CommitID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := codec.CanonicalJSON(g)
	if err != nil {
		return "", err
	}
	commit := contentCommitID(raw)

	metaCopy := make(map[string]string, len(meta))
	for k, v := range meta {
		metaCopy[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byCommit, ok := s.snapshots[project]
	if !ok {
		byCommit = make(map[CommitID]Snapshot)
		s.snapshots[project] = byCommit
	}
	if _, exists := byCommit[commit]; exists {
		return "", ErrConflict
	}

	byCommit[commit] = Snapshot{Project: project, Commit: commit, Meta: metaCopy, Graph: raw}
	s.order[project] = append(s.order[project], commit)
	return commit, nil
}

// GetSnapshot implements [Store].
func (s *MemoryStore) GetSnapshot(ctx context.Context, project string, commit CommitID) (*Snapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	byCommit, ok := s.snapshots[project]
	if !ok {
		return nil, false, nil
	}
	snap, ok := byCommit[commit]
	if !ok {
		return nil, false, nil
	}
	cp := snap
	return &cp, true, nil
}

// Latest implements [Store], returning the most recently written commit
// for project in insertion order.
func (s *MemoryStore) Latest(ctx context.Context, project string) (CommitID, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	commits := s.order[project]
	if len(commits) == 0 {
		return "", false, nil
	}
	return commits[len(commits)-1], true, nil
}

func contentCommitID(canonicalJSON []byte) CommitID {
	sum := sha256.Sum256(canonicalJSON)
	return CommitID(hex.EncodeToString(sum[:]))
}
