// Package session owns the single current-model slot shared by all tools.
package session

import (
	"errors"
	"sync"

	"github.com/bldgsim/osmodel-mcp/internal/model"
)

// ErrNoModel is returned when an operation needs a loaded model and the
// session is empty.
var ErrNoModel = errors.New("no model loaded; use load_osm_model first")

// Session is a two-state machine: Empty, or Loaded with a model and the
// resolved path it came from. Loading replaces any previous model. The
// protocol layer serializes tool calls, but the mutex keeps the pair of
// fields consistent regardless.
type Session struct {
	mu    sync.Mutex
	model *model.Model
	path  string
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Load installs a model and its originating path as the current model.
func (s *Session) Load(m *model.Model, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = m
	s.path = path
}

// Clear empties the session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = nil
	s.path = ""
}

// Current returns the loaded model and its path, or ErrNoModel.
func (s *Session) Current() (*model.Model, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.model == nil {
		return nil, "", ErrNoModel
	}
	return s.model, s.path, nil
}

// Loaded reports whether a model is present.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model != nil
}

// Path returns the originating path of the current model, or "".
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}
