// Package view holds the presentation state machine and the HTML renderer
// for the landing page.
package view

import (
	"sync"

	"github.com/driveview/backend/internal/adapter"
)

// Kind enumerates the mutually exclusive view states. Exactly one is active
// at a time; a tagged variant keeps combinations like "loading and error"
// unrepresentable.
type Kind int

const (
	KindLoading Kind = iota
	KindUnauthenticated
	KindError
	KindReady
)

// String returns the template-facing name of the state.
func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindError:
		return "error"
	case KindReady:
		return "ready"
	}
	return "unknown"
}

// State is the current view state. Message is set only for KindError and
// Files only for KindReady.
type State struct {
	Kind    Kind
	Message string
	Files   []adapter.FileRecord
}

// Loading is the state entered on mount and on explicit refresh.
func Loading() State {
	return State{Kind: KindLoading}
}

// Unauthenticated is entered when no credential is attached or the lister
// answered 401.
func Unauthenticated() State {
	return State{Kind: KindUnauthenticated}
}

// Error carries the failure message verbatim.
func Error(message string) State {
	return State{Kind: KindError, Message: message}
}

// Ready carries the listed files; an empty slice is a valid Ready state and
// renders the explicit empty-state message, not an error.
func Ready(files []adapter.FileRecord) State {
	return State{Kind: KindReady, Files: files}
}

// Model drives the state transitions. Each Begin starts a new load
// generation; a Finish carrying a stale generation is ignored, so an
// overlapping refresh replaces the in-flight load rather than racing it.
type Model struct {
	mu    sync.Mutex
	gen   uint64
	state State
}

// NewModel returns a model in the Loading state.
func NewModel() *Model {
	return &Model{state: Loading()}
}

// Begin enters Loading and returns the generation token the eventual Finish
// must present.
func (m *Model) Begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.state = Loading()
	return m.gen
}

// Finish applies a terminal state for the given generation. It reports
// whether the result was applied; results from superseded loads are dropped.
func (m *Model) Finish(gen uint64, s State) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return false
	}
	m.state = s
	return true
}

// State returns the current state.
func (m *Model) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
