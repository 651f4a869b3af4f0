// Package overlay holds the resource-viewer state shared by the resume,
// certificate and lightbox overlays: at most one resource is displayed
// at a time, and an escape observer exists only while one is open.
package overlay

import "sync"

// Listener is invoked when the escape key fires.
type Listener func()

// Registry is where a viewer attaches its escape observer. Attach
// returns the matching detach so the observer can be removed on close.
type Registry interface {
	Attach(l Listener) (detach func())
}

// Viewer tracks the currently displayed resource. Opening attaches an
// escape observer that closes the viewer; closing detaches it, so no
// observer outlives the overlay.
type Viewer struct {
	mu       sync.Mutex
	registry Registry
	current  string
	open     bool
	detach   func()
}

func NewViewer(registry Registry) *Viewer {
	return &Viewer{registry: registry}
}

// Open sets the displayed resource. Re-opening with another resource
// replaces it without stacking a second observer.
func (v *Viewer) Open(url string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.open {
		v.detach = v.registry.Attach(v.escape)
	}
	v.current = url
	v.open = true
}

// Close clears the displayed resource and removes the escape observer.
// Closing an already-closed viewer is a no-op.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closeLocked()
}

func (v *Viewer) closeLocked() {
	if !v.open {
		return
	}
	if v.detach != nil {
		v.detach()
		v.detach = nil
	}
	v.current = ""
	v.open = false
}

func (v *Viewer) escape() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closeLocked()
}

// Current returns the displayed resource, if any.
func (v *Viewer) Current() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current, v.open
}

// KeyBus is a minimal Registry: observers attach and detach, and Press
// delivers one escape event to whoever is attached at that moment.
type KeyBus struct {
	mu        sync.Mutex
	next      int
	listeners map[int]Listener
}

func NewKeyBus() *KeyBus {
	return &KeyBus{listeners: make(map[int]Listener)}
}

func (b *KeyBus) Attach(l Listener) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.listeners[id] = l
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// Press fires the escape event.
func (b *KeyBus) Press() {
	b.mu.Lock()
	attached := make([]Listener, 0, len(b.listeners))
	for _, l := range b.listeners {
		attached = append(attached, l)
	}
	b.mu.Unlock()

	for _, l := range attached {
		l()
	}
}

// Count reports how many observers are currently attached.
func (b *KeyBus) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
