package goal

import "context"

// Document is the persisted form of the whole tree: the id counter plus
// every goal record keyed by id. Ids carry the insertion counter, so load
// can reconstruct insertion order without an extra field.
type Document struct {
	Counter int              `json:"counter"`
	Goals   map[string]*Goal `json:"goals"`
}

// Store persists the goal document. Implementations must replace the whole
// document atomically on Save so a crash mid-write cannot corrupt previously
// committed state. Load returns ErrDocumentNotFound when nothing has been
// persisted yet.
type Store interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}
