package store

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jizpi-library/fondctl/internal/catalog"
	"go.uber.org/zap"
)

// Snapshot is a full read of both collections. Subscribers treat it as
// immutable.
type Snapshot struct {
	Books      []catalog.Book
	Categories []catalog.Category
}

// debounce window for bursts of filesystem events (temp write + rename).
const watchSettle = 100 * time.Millisecond

// Snapshot reads both collections at once.
func (s *Store) Snapshot() (Snapshot, error) {
	books, err := s.Books()
	if err != nil {
		return Snapshot{}, err
	}
	cats, err := s.Categories()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Books: books, Categories: cats}, nil
}

// Watch emits a full snapshot immediately and again after every change
// to the data directory, until ctx is canceled. The channel is closed on
// shutdown. Unreadable intermediate states are skipped, not fatal.
func (s *Store) Watch(ctx context.Context) (<-chan Snapshot, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return nil, err
	}

	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)
		defer watcher.Close()

		emit := func() {
			snap, err := s.Snapshot()
			if err != nil {
				s.log.Warn("snapshot read failed", zap.Error(err))
				return
			}
			select {
			case out <- snap:
			case <-ctx.Done():
			}
		}
		emit()

		var settle *time.Timer
		var settleC <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if settle == nil {
					settle = time.NewTimer(watchSettle)
					settleC = settle.C
				} else {
					settle.Reset(watchSettle)
				}
			case <-settleC:
				emit()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("watch error", zap.Error(err))
			}
		}
	}()
	return out, nil
}
