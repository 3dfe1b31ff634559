// Package events provides the in-process change-notification bus that
// decouples the note store from its presentation listeners.
package events

import (
	"log/slog"
	"sync"
)

// Kind identifies a class of store mutation. The granularity is deliberately
// coarse: one event covers all plain and voice note mutations.
type Kind string

const (
	NotesChanged   Kind = "notes.changed"
	FoldersChanged Kind = "folders.changed"
)

// Handler is invoked on the goroutine that published the event, after the
// triggering mutation completed.
type Handler func(kind Kind)

// Subscription identifies a registered handler for later removal.
type Subscription struct {
	kind Kind
	id   int
}

type entry struct {
	id      int
	handler Handler
}

// Bus is a process-wide typed publish/subscribe relay. It holds no state
// beyond its subscriber list and is safe for concurrent use. Unsubscribing
// during delivery is allowed: delivery iterates a snapshot taken under lock.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[Kind][]entry
	logger *slog.Logger
}

func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[Kind][]entry),
		logger: logger,
	}
}

// Subscribe registers a handler for a kind. Handlers run in subscription
// order.
func (b *Bus) Subscribe(kind Kind, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs[kind] = append(b.subs[kind], entry{id: b.nextID, handler: handler})
	return Subscription{kind: kind, id: b.nextID}
}

// Unsubscribe removes a handler. Unknown or already-removed subscriptions are
// ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.subs[sub.kind]
	for i, e := range entries {
		if e.id == sub.id {
			b.subs[sub.kind] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every current subscriber of the kind, in
// subscription order, on the calling goroutine. A panicking handler is
// recovered and logged so it cannot disturb other listeners or the
// publisher.
func (b *Bus) Publish(kind Kind) {
	b.mu.Lock()
	entries := make([]entry, len(b.subs[kind]))
	copy(entries, b.subs[kind])
	b.mu.Unlock()

	for _, e := range entries {
		b.deliver(kind, e)
	}
}

func (b *Bus) deliver(kind Kind, e entry) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked", "kind", string(kind), "panic", r)
		}
	}()
	e.handler(kind)
}
