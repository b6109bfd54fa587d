// Package bus is a synchronous publish/subscribe channel between the game
// core and whatever presents it.
package bus

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/posevs/posevs/internal/logging"
	"go.uber.org/zap"
)

type Handler func(Event)

// Subscription identifies a registered handler.
type Subscription struct {
	id   uuid.UUID
	kind Kind
}

func (s Subscription) Kind() Kind {
	return s.kind
}

type entry struct {
	id uuid.UUID
	fn Handler
}

func New(ctx context.Context) *Bus {
	return &Bus{
		logger:   logging.FromContext(ctx).Named("bus"),
		handlers: map[Kind][]entry{},
	}
}

type Bus struct {
	mtx sync.RWMutex

	logger   *zap.SugaredLogger
	handlers map[Kind][]entry
}

// Subscribe registers fn for every future Publish of kind. Handlers of the same
// kind run in subscription order.
func (b *Bus) Subscribe(kind Kind, fn Handler) Subscription {
	sub := Subscription{id: uuid.New(), kind: kind}

	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.handlers[kind] = append(b.handlers[kind], entry{id: sub.id, fn: fn})

	return sub
}

// Unsubscribe removes sub. Unknown subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	entries := b.handlers[sub.kind]
	for i := range entries {
		if entries[i].id != sub.id {
			continue
		}

		rest := make([]entry, 0, len(entries)-1)
		rest = append(rest, entries[:i]...)
		rest = append(rest, entries[i+1:]...)
		if len(rest) == 0 {
			delete(b.handlers, sub.kind)
		} else {
			b.handlers[sub.kind] = rest
		}
		return
	}
}

// Publish invokes the handlers registered for e's kind before returning.
// A nil event is ignored. A panicking handler is logged and skipped.
func (b *Bus) Publish(e Event) {
	if e == nil {
		return
	}

	b.mtx.RLock()
	entries := b.handlers[e.Kind()]
	b.mtx.RUnlock()

	for _, en := range entries {
		b.invoke(e, en)
	}
}

// Len returns the number of handlers registered for kind.
func (b *Bus) Len(kind Kind) int {
	b.mtx.RLock()
	defer b.mtx.RUnlock()
	return len(b.handlers[kind])
}

func (b *Bus) invoke(e Event, en entry) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Errorw("event handler panicked", "event", e.Kind().String(), "subscription", en.id, "panic", r)
		}
	}()

	en.fn(e)
}
