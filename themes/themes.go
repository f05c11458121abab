// Package themes tracks the host's active theme and notifies subscribers
// when it changes. Machine files often tweak faces, fonts or palettes that a
// later theme switch would clobber; subscribing their hook keeps the
// overrides applied across switches.
package themes

import "sync"

// Bus holds the active theme name and its subscribers. The zero value is
// usable; NewBus exists for symmetry with the rest of the module.
type Bus struct {
	mu      sync.Mutex
	current string
	subs    []*Subscription
	nextID  int
}

// NewBus returns a Bus with no active theme.
func NewBus() *Bus {
	return &Bus{}
}

// Current returns the active theme name, or "" when none was set.
func (b *Bus) Current() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Set makes name the active theme and invokes every open subscription with
// it, in registration order. Callbacks run synchronously on the caller.
func (b *Bus) Set(name string) {
	b.mu.Lock()
	b.current = name
	fns := make([]func(string), len(b.subs))
	for i, sub := range b.subs {
		fns[i] = sub.fn
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn(name)
	}
}

// Subscribe registers fn to run after every future theme change. Closing the
// returned subscription stops the calls.
func (b *Bus) Subscribe(fn func(theme string)) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	sub := &Subscription{bus: b, id: b.nextID, fn: fn}
	b.subs = append(b.subs, sub)
	return sub
}

// Reapply invokes fn once with the current theme, then subscribes it for
// every later change. This is the post-load hook pattern: apply machine
// overrides now and again whenever the theme is swapped.
func (b *Bus) Reapply(fn func(theme string)) *Subscription {
	fn(b.Current())
	return b.Subscribe(fn)
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Subscription ties one callback to a Bus for its lifetime.
type Subscription struct {
	bus *Bus
	id  int
	fn  func(string)
}

// Close detaches the subscription; its callback will not run again. Closing
// twice is harmless. The error is always nil and exists to satisfy
// io.Closer.
func (s *Subscription) Close() error {
	if s == nil || s.bus == nil {
		return nil
	}
	s.bus.remove(s.id)
	s.bus = nil
	return nil
}
