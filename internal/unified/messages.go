package unified

import "github.com/jizpi-library/fondctl/internal/store"

// snapshotMsg carries a fresh full-collection snapshot from the watcher.
type snapshotMsg store.Snapshot

// snapshotClosedMsg signals that the watch channel has closed.
type snapshotClosedMsg struct{}

// writeDoneMsg reports the outcome of an asynchronous store write.
type writeDoneMsg struct {
	err error
}

// QuitAppMsg is emitted when the entire application should quit.
type QuitAppMsg struct{}
