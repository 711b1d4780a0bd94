package store

import (
	"errors"
)

// ErrNoActiveProvider is returned when the store is resolved outside an
// active provider's scope. It signals a wiring defect, not a runtime
// condition, and is never recovered from; the render it interrupts is
// allowed to die.
var ErrNoActiveProvider = errors.New("store: accessed outside an active provider")

// Provider scopes access to a Store. The root composition opens it around
// the component tree; everything below resolves the store through Use.
type Provider struct {
	store  *Store
	active bool
}

func NewProvider(s *Store) *Provider {
	return &Provider{store: s}
}

func (p *Provider) Open() {
	p.active = true
}

func (p *Provider) Close() {
	p.active = false
}

func (p *Provider) Active() bool {
	return p != nil && p.active
}

// Use is the guarded accessor. It fails fast when no provider scope is
// active.
func (p *Provider) Use() (*Store, error) {
	if !p.Active() {
		return nil, ErrNoActiveProvider
	}
	return p.store, nil
}
