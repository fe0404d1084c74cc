package tui

import "github.com/young1lin/slotlist/internal/store"

// ItemsLoadedMsg replaces the rows, sent when the items file changes
type ItemsLoadedMsg struct {
	Items []string
}

// ActivationRecordedMsg is sent after an activation was stored
type ActivationRecordedMsg struct {
	Activation store.Activation
	Err        error
}

// HistoryLoadedMsg carries the stored activations found at startup
type HistoryLoadedMsg struct {
	Recent []store.Activation // newest first
	Total  int
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// WatcherFailedMsg is sent when the items watcher stops delivering changes
type WatcherFailedMsg struct {
	Err error
}
