package application

import (
	"sort"
	"sync"

	"github.com/bnema/persona-relay/internal/domain"
)

type PersonalityHandler func(domain.Personality)

// Notifier fans denial and recorded events out to explicitly registered
// subscribers. Each event reaches every subscriber registered at the time
// it fires exactly once.
type Notifier struct {
	mu       sync.RWMutex
	nextID   uint64
	denied   map[uint64]PersonalityHandler
	recorded map[uint64]PersonalityHandler
}

// Subscription detaches a handler. Unsubscribe is idempotent.
type Subscription struct {
	once   sync.Once
	detach func()
}

func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(s.detach)
}

func NewNotifier() *Notifier {
	return &Notifier{
		denied:   make(map[uint64]PersonalityHandler),
		recorded: make(map[uint64]PersonalityHandler),
	}
}

func (n *Notifier) OnDenied(handler PersonalityHandler) *Subscription {
	return n.subscribe(n.denied, handler)
}

func (n *Notifier) OnRecorded(handler PersonalityHandler) *Subscription {
	return n.subscribe(n.recorded, handler)
}

func (n *Notifier) Denied(personality domain.Personality) {
	n.fire(n.denied, personality)
}

func (n *Notifier) Recorded(personality domain.Personality) {
	n.fire(n.recorded, personality)
}

func (n *Notifier) subscribe(handlers map[uint64]PersonalityHandler, handler PersonalityHandler) *Subscription {
	if handler == nil {
		panic("notifier: nil handler")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	handlers[id] = handler

	return &Subscription{detach: func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(handlers, id)
	}}
}

// fire calls handlers in registration order, outside the lock so a handler
// may subscribe or unsubscribe.
func (n *Notifier) fire(handlers map[uint64]PersonalityHandler, personality domain.Personality) {
	n.mu.RLock()
	ids := make([]uint64, 0, len(handlers))
	for id := range handlers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	snapshot := make([]PersonalityHandler, 0, len(ids))
	for _, id := range ids {
		snapshot = append(snapshot, handlers[id])
	}
	n.mu.RUnlock()

	for _, handler := range snapshot {
		handler(personality)
	}
}
