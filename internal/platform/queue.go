package platform

import (
	"sync"
	"time"
)

// EventSource produces events into every queue it is registered with. Events
// emitted while no queue is registered are dropped.
type EventSource struct {
	name string

	mu     sync.Mutex
	queues []*EventQueue
}

func NewEventSource(name string) *EventSource {
	return &EventSource{name: name}
}

func (src *EventSource) Name() string {
	return src.name
}

// Emit delivers ev to the registered queues. Safe to call from any goroutine.
func (src *EventSource) Emit(ev Event) {
	src.mu.Lock()
	queues := append([]*EventQueue(nil), src.queues...)
	src.mu.Unlock()

	for _, q := range queues {
		q.push(ev)
	}
}

func (src *EventSource) attach(q *EventQueue) {
	src.mu.Lock()
	defer src.mu.Unlock()
	for _, q2 := range src.queues {
		if q2 == q {
			return
		}
	}
	src.queues = append(src.queues, q)
}

func (src *EventSource) detach(q *EventQueue) {
	src.mu.Lock()
	defer src.mu.Unlock()
	for i, q2 := range src.queues {
		if q2 == q {
			src.queues = append(src.queues[:i], src.queues[i+1:]...)
			return
		}
	}
}

// EventQueue is the in-process Queue shared by the backends. Producers push
// from their own goroutines; a single consumer reads.
type EventQueue struct {
	mu      sync.Mutex
	events  []Event
	sources []*EventSource

	notify    chan struct{} // one slot, sticky
	done      chan struct{}
	closeOnce sync.Once
}

var _ Queue = (*EventQueue)(nil)

func NewEventQueue() *EventQueue {
	return &EventQueue{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (q *EventQueue) RegisterEventSource(src *EventSource) {
	q.mu.Lock()
	for _, s := range q.sources {
		if s == src {
			q.mu.Unlock()
			return
		}
	}
	q.sources = append(q.sources, src)
	q.mu.Unlock()
	src.attach(q)
}

func (q *EventQueue) UnregisterEventSource(src *EventSource) {
	q.mu.Lock()
	for i, s := range q.sources {
		if s == src {
			q.sources = append(q.sources[:i], q.sources[i+1:]...)
			break
		}
	}
	q.mu.Unlock()
	src.detach(q)
}

func (q *EventQueue) push(ev Event) {
	if IsNoEvent(ev) {
		return
	}
	q.mu.Lock()
	if q.isClosed() {
		q.mu.Unlock()
		return
	}
	q.events = append(q.events, ev)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

func (q *EventQueue) GetNextEvent() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return NoEvent{}
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev
}

// IsEmpty reports whether no event is pending.
func (q *EventQueue) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events) == 0
}

func (q *EventQueue) WaitForEvent() Event {
	for {
		if ev := q.GetNextEvent(); !IsNoEvent(ev) {
			return ev
		}
		select {
		case <-q.notify:
		case <-q.done:
			return NoEvent{}
		}
	}
}

func (q *EventQueue) WaitForEventTimed(secs float64) Event {
	if secs <= 0 {
		return q.GetNextEvent()
	}
	timer := time.NewTimer(time.Duration(secs * float64(time.Second)))
	defer timer.Stop()
	for {
		if ev := q.GetNextEvent(); !IsNoEvent(ev) {
			return ev
		}
		select {
		case <-q.notify:
		case <-q.done:
			return NoEvent{}
		case <-timer.C:
			return q.GetNextEvent()
		}
	}
}

// Close unregisters all sources and wakes any waiter.
func (q *EventQueue) Close() error {
	q.closeOnce.Do(func() {
		q.mu.Lock()
		sources := q.sources
		q.sources = nil
		q.events = nil
		close(q.done)
		q.mu.Unlock()

		for _, src := range sources {
			src.detach(q)
		}
	})
	return nil
}

func (q *EventQueue) Closed() bool {
	return q.isClosed()
}

func (q *EventQueue) isClosed() bool {
	select {
	case <-q.done:
		return true
	default:
		return false
	}
}
