// Package event provides the subscribe/dispose plumbing shared by the theme
// store and the header controller.
package event

import "sync"

// Bus fans a value out to every subscribed listener.
//
// The zero value is ready to use.
type Bus[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(T)
}

// Subscribe registers fn and returns a disposer that removes it. The disposer
// may be called any number of times; only the first call has an effect.
func (b *Bus[T]) Subscribe(fn func(T)) (dispose func()) {
	b.mu.Lock()
	if b.subs == nil {
		b.subs = make(map[int]func(T))
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish calls every listener with v. Listeners run outside the lock so they
// may subscribe or dispose while handling the value.
func (b *Bus[T]) Publish(v T) {
	b.mu.Lock()
	listeners := make([]func(T), 0, len(b.subs))
	for _, fn := range b.subs {
		listeners = append(listeners, fn)
	}
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(v)
	}
}

// Len reports the number of live subscriptions.
func (b *Bus[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Nop is a disposer for sources that never publish.
func Nop() {}
