package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownForm is returned when a registry does not accept a form name.
var ErrUnknownForm = errors.New("unknown form")

// Assignment is a single form write. A plain write replaces the stored form.
type Assignment struct {
	Name string
	Form Form
	// Background marks a write that only carries a canvas background layer.
	// The stored foreground and attributes stay.
	Background bool
	// Canvas marks the base write of a canvas form. A nil background keeps
	// the stored one, so the host's own background survives.
	Canvas bool
}

// over returns the form stored after writing a on top of prev.
func (a Assignment) over(prev Form) Form {
	switch {
	case a.Background:
		if a.Form.Bg != nil {
			prev.Bg = a.Form.Bg
		}
		return prev
	case a.Canvas && a.Form.Bg == nil:
		f := a.Form
		f.Bg = prev.Bg
		return f
	}
	return a.Form
}

// Registry accepts batches of form assignments. Implementations apply a
// batch as a whole or not at all.
type Registry interface {
	SetMany(batch []Assignment) error
}

// Batch collects assignments for one application pass.
type Batch struct {
	items []Assignment
}

// Set queues a write replacing name with f.
func (b *Batch) Set(name string, f Form) {
	b.items = append(b.items, Assignment{Name: name, Form: f})
}

// Add queues a as is.
func (b *Batch) Add(a Assignment) {
	b.items = append(b.items, a)
}

// Len returns the number of queued assignments.
func (b *Batch) Len() int {
	return len(b.items)
}

// Assignments returns the queued assignments in insertion order.
func (b *Batch) Assignments() []Assignment {
	return b.items
}

// Store is an in-memory Registry. It is safe for concurrent use; readers
// never observe part of a batch.
type Store struct {
	mu    sync.RWMutex
	forms map[string]Form
	known map[string]bool
}

// NewStore creates a Store. If known is non-empty, only those names are
// accepted and any other name fails the whole batch with ErrUnknownForm.
func NewStore(known ...string) *Store {
	s := &Store{forms: make(map[string]Form)}
	if len(known) > 0 {
		s.known = make(map[string]bool, len(known))
		for _, name := range known {
			s.known[name] = true
		}
	}
	return s
}

// Set writes a single form.
func (s *Store) Set(name string, f Form) error {
	return s.SetMany([]Assignment{{Name: name, Form: f}})
}

// SetMany validates every name first, then applies the batch in order under
// one write lock.
func (s *Store) SetMany(batch []Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.known != nil {
		var unknown []string
		for _, a := range batch {
			if !s.known[a.Name] {
				unknown = append(unknown, a.Name)
			}
		}
		if len(unknown) > 0 {
			return fmt.Errorf("%w: %s", ErrUnknownForm, strings.Join(unknown, ", "))
		}
	}

	for _, a := range batch {
		s.forms[a.Name] = a.over(s.forms[a.Name])
	}
	return nil
}

// Get returns the form registered under name.
func (s *Store) Get(name string) (Form, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.forms[name]
	return f, ok
}

// Resolve returns the form for name, falling back to the closest dotted
// parent: "markup.list.checked", then "markup.list", then "markup".
func (s *Store) Resolve(name string) (Form, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for {
		if f, ok := s.forms[name]; ok {
			return f, true
		}
		i := strings.LastIndex(name, ".")
		if i < 0 {
			return Form{}, false
		}
		name = name[:i]
	}
}

// Snapshot returns a copy of every registered form.
func (s *Store) Snapshot() map[string]Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Form, len(s.forms))
	for k, v := range s.forms {
		out[k] = v
	}
	return out
}

// Names returns the registered form names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.forms))
	for k := range s.forms {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
