package httpapi

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/powellquiring/wordlehelper/wordle"
)

var errNotFound = errors.New("session not found")

// entry serializes the turns of one session, the core is single threaded
type entry struct {
	mu      sync.Mutex
	id      string
	session *wordle.Session
}

// memory keeps sessions until the process exits
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

func newMemory() *memory {
	return &memory{sessions: make(map[string]*entry)}
}

func (m *memory) add(s *wordle.Session) *entry {
	e := &entry{id: uuid.NewString(), session: s}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[e.id] = e
	return e
}

func (m *memory) get(id string) (*entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.sessions[id]; ok {
		return e, nil
	}
	return nil, errNotFound
}

func (m *memory) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
