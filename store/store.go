package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sysml-go/sysml-core/graph"
)

// CommitID identifies one immutable snapshot of a project's graph.
type CommitID string

// ErrConflict is returned by [Store.PutSnapshot] when a snapshot already
// exists for the given (project, commit) pair.
var ErrConflict = errors.New("store: snapshot already exists for this project and commit")

// ErrNotFound names the "no matching snapshot" case for callers that
// prefer to thread it through existing error-handling paths. [MemoryStore]
// never returns it: its [Store.GetSnapshot] and [Store.Latest] report a
// missing snapshot through the bool return with a nil error.
var ErrNotFound = errors.New("store: snapshot not found")

// Snapshot is one immutable, canonically-serialized graph write.
type Snapshot struct {
	Project string
	Commit  CommitID
	Meta    map[string]string
	Graph   json.RawMessage
}

// Store is the persistence contract. Implementations are external
// collaborators (databases, object stores, version-control-backed blob
// stores); [MemoryStore] is the only implementation this module ships,
// and exists to give Store a runnable reference and something for this
// module's own tests to exercise.
type Store interface {
	// PutSnapshot canonically serializes g, derives its commit id from
	// that content the way a content-addressed blob store would, and
	// writes it under project. It returns [ErrConflict] if project
	// already has a snapshot at the derived commit.
	PutSnapshot(ctx context.Context, project string, meta map[string]string, g *graph.ModelGraph) (CommitID, error)

	// GetSnapshot returns the snapshot written for (project, commit), or
	// (nil, false, nil) if none exists.
	GetSnapshot(ctx context.Context, project string, commit CommitID) (*Snapshot, bool, error)

	// Latest returns the most recently written commit for project, or
	// ("", false, nil) if the project has no snapshots.
	Latest(ctx context.Context, project string) (CommitID, bool, error)
}
