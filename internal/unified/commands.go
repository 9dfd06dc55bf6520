package unified

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/store"
)

// waitSnapshot blocks on the watch channel and converts the next
// snapshot into a message. The orchestrator re-arms it after every
// receive, so exactly one receiver is outstanding at a time.
func waitSnapshot(ch <-chan store.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return snapshotClosedMsg{}
		}
		return snapshotMsg(snap)
	}
}

// createBook runs the store write off the update loop. The watcher
// delivers the resulting snapshot; the command only reports the error.
func createBook(st *store.Store, b catalog.Book) tea.Cmd {
	return func() tea.Msg {
		_, err := st.CreateBook(b)
		return writeDoneMsg{err: err}
	}
}

func updateBook(st *store.Store, id string, p catalog.Patch) tea.Cmd {
	return func() tea.Msg {
		_, err := st.UpdateBook(id, p)
		return writeDoneMsg{err: err}
	}
}

func deleteBook(st *store.Store, id string) tea.Cmd {
	return func() tea.Msg {
		return writeDoneMsg{err: st.DeleteBook(id)}
	}
}

func createCategory(st *store.Store, name string) tea.Cmd {
	return func() tea.Msg {
		_, err := st.CreateCategory(name)
		return writeDoneMsg{err: err}
	}
}
