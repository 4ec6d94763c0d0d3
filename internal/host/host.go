// Package host is an in-memory stand-in for an editor that owns a form
// registry and a list of selectable colorschemes.
package host

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jsvensson/catppuccin/internal/form"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("catppuccin.host")

var (
	ErrDuplicateColorScheme = errors.New("colorscheme already registered")
	ErrUnknownColorScheme   = errors.New("unknown colorscheme")
)

// ColorScheme is what plugins hand to the host.
type ColorScheme interface {
	Name() string
	Apply(reg form.Registry) error
}

// Host keeps registered colorschemes and applies the selected one to its
// form store.
type Host struct {
	mu      sync.Mutex
	forms   *form.Store
	schemes map[string]ColorScheme
	order   []string
	active  string
}

// New creates a host writing into forms. A nil store gets a permissive one.
func New(forms *form.Store) *Host {
	if forms == nil {
		forms = form.NewStore()
	}
	return &Host{
		forms:   forms,
		schemes: make(map[string]ColorScheme),
	}
}

// AddColorScheme makes cs selectable by name.
func (h *Host) AddColorScheme(cs ColorScheme) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := cs.Name()
	if _, ok := h.schemes[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateColorScheme, name)
	}
	h.schemes[name] = cs
	h.order = append(h.order, name)
	log.Debugf("registered colorscheme %s", name)
	return nil
}

// SetColorScheme applies the named scheme. Switches are serialized, so a
// scheme is fully applied before the next one starts.
func (h *Host) SetColorScheme(name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cs, ok := h.schemes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColorScheme, name)
	}
	if err := cs.Apply(h.forms); err != nil {
		log.Errorf("applying colorscheme %s: %s", name, err)
		return err
	}
	h.active = name
	log.Infof("colorscheme set to %s", name)
	return nil
}

// ColorScheme returns the scheme registered under name.
func (h *Host) ColorScheme(name string) (ColorScheme, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	cs, ok := h.schemes[name]
	return cs, ok
}

// ColorSchemes returns scheme names in registration order.
func (h *Host) ColorSchemes() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Active returns the name of the last successfully applied scheme.
func (h *Host) Active() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// Forms returns the host's form store.
func (h *Host) Forms() *form.Store {
	return h.forms
}
