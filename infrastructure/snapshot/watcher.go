package snapshot

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/firered-ai/tactician/domain/world"
	"github.com/firered-ai/tactician/infrastructure/logging"
)

// Watcher delivers a snapshot whenever the emulator rewrites the state
// file. It watches the parent directory (the writer replaces the file, so
// watching the file itself would lose the handle on rename) and falls back
// to polling when the filesystem watch cannot be established.
type Watcher struct {
	reader *Reader
	poll   time.Duration
}

// NewWatcher creates a watcher over reader, polling at pollInterval when
// write events are unavailable.
func NewWatcher(reader *Reader, pollInterval time.Duration) *Watcher {
	if pollInterval <= 0 {
		pollInterval = 500 * time.Millisecond
	}
	return &Watcher{reader: reader, poll: pollInterval}
}

// Watch streams snapshots until ctx is done. Mid-write reads are skipped;
// a snapshot is delivered only when a read succeeds. The channel closes
// when ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context) (<-chan world.Snapshot, error) {
	out := make(chan world.Snapshot)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.reader.Path())); err != nil {
		fsw.Close() // #nosec G104 -- best-effort cleanup in error path
		logging.Warn().
			Add(logging.Component("snapshot")).
			Add(logging.Path(w.reader.Path())).
			Add(logging.ErrorField(err)).
			Msg("filesystem watch unavailable, polling instead")
		go w.pollLoop(ctx, out)
		return out, nil
	}

	go w.watchLoop(ctx, fsw, out)
	return out, nil
}

func (w *Watcher) watchLoop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- world.Snapshot) {
	defer close(out)
	defer fsw.Close()

	// The poll ticker stays on as a safety net: some writers truncate in
	// place, which can coalesce into missed events under load.
	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	target := filepath.Clean(w.reader.Path())
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.deliver(ctx, out)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logging.Debug().
				Add(logging.Component("snapshot")).
				Add(logging.ErrorField(err)).
				Msg("watch error")
		case <-ticker.C:
			w.deliver(ctx, out)
		}
	}
}

func (w *Watcher) pollLoop(ctx context.Context, out chan<- world.Snapshot) {
	defer close(out)

	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.deliver(ctx, out)
		}
	}
}

func (w *Watcher) deliver(ctx context.Context, out chan<- world.Snapshot) {
	s, err := w.reader.Read()
	if err != nil {
		// ErrNotReady and mid-write glitches both resolve on a later
		// tick; the consumer keeps its previous snapshot.
		return
	}
	select {
	case out <- s:
	case <-ctx.Done():
	}
}
