// Package snapshot reads the world-snapshot JSON file written each frame
// by the emulator-side memory reader, and watches it for changes.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/firered-ai/tactician/domain/world"
)

// Errors reported by the reader.
var (
	// ErrNotReady indicates the snapshot file does not exist yet.
	ErrNotReady = errors.New("snapshot file not written yet")

	// ErrMidWrite indicates the file was unreadable, most likely because
	// the writer was replacing it. The caller keeps its previous snapshot
	// and retries next tick.
	ErrMidWrite = errors.New("snapshot file unreadable (mid-write)")
)

// Reader reads world snapshots from a file path.
type Reader struct {
	path string
}

// NewReader creates a reader for the given snapshot file.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Path returns the watched file path.
func (r *Reader) Path() string {
	return r.path
}

// Read parses the current snapshot file. It never caches: a failed read
// returns an error and the caller decides whether to reuse its previous
// snapshot.
func (r *Reader) Read() (world.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return world.Snapshot{}, ErrNotReady
		}
		return world.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var s world.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return world.Snapshot{}, fmt.Errorf("%w: %v", ErrMidWrite, err)
	}
	return s, nil
}
