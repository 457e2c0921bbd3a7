// Package scheduler implements the deferred one-shot timers of the scenes as
// a queue of (fireAt, action) entries drained against the render clock.
//
// Nothing runs on its own goroutine. The owner calls Advance once per frame,
// before reading any state, and Clear on teardown. A cleared queue can never
// fire a stale action.
package scheduler

import (
	"container/heap"
	"time"
)

// ID identifies a scheduled entry for cancellation.
type ID uint64

// Action is the work run when an entry fires.
type Action func()

type entry struct {
	id        ID
	name      string
	fireAt    time.Duration
	seq       uint64
	action    Action
	cancelled bool
	index     int
}

// Queue is a time-ordered set of pending actions. It is not safe for
// concurrent use; the frame loop owns it.
type Queue struct {
	now     time.Duration
	seq     uint64
	items   entryHeap
	byID    map[ID]*entry
	onFire  func(name string, at time.Duration)
	firing  bool
	cleared bool
}

// New creates an empty queue at t=0.
func New() *Queue {
	return &Queue{byID: make(map[ID]*entry)}
}

// OnFire registers a hook invoked before each action runs (used for logging).
func (q *Queue) OnFire(fn func(name string, at time.Duration)) {
	q.onFire = fn
}

// Now returns the queue's notion of current time: the last Advance target,
// or the fire time of the entry currently running.
func (q *Queue) Now() time.Duration {
	return q.now
}

// After schedules fn to run d after Now.
func (q *Queue) After(d time.Duration, name string, fn Action) ID {
	if d < 0 {
		d = 0
	}
	return q.At(q.now+d, name, fn)
}

// At schedules fn at absolute time t.
func (q *Queue) At(t time.Duration, name string, fn Action) ID {
	q.seq++
	e := &entry{
		id:     ID(q.seq),
		name:   name,
		fireAt: t,
		seq:    q.seq,
		action: fn,
	}
	heap.Push(&q.items, e)
	q.byID[e.id] = e
	return e.id
}

// Cancel removes a pending entry. It reports whether the entry was pending.
func (q *Queue) Cancel(id ID) bool {
	e, ok := q.byID[id]
	if !ok {
		return false
	}
	e.cancelled = true
	delete(q.byID, id)
	return true
}

// Pending reports whether an entry with the given name is still armed.
func (q *Queue) Pending(name string) bool {
	for _, e := range q.byID {
		if e.name == name {
			return true
		}
	}
	return false
}

// Len returns the number of armed entries.
func (q *Queue) Len() int {
	return len(q.byID)
}

// Advance fires every entry with fireAt <= now, ordered by fire time and then
// by scheduling order. While an action runs, Now reports that entry's fire
// time, so follow-up timers are relative to when their parent fired. Entries
// scheduled by an action that are already due fire within the same call.
// It returns the number of actions run.
func (q *Queue) Advance(now time.Duration) int {
	if now < q.now {
		now = q.now
	}
	if q.firing {
		return 0
	}
	q.firing = true
	q.cleared = false
	defer func() { q.firing = false }()

	fired := 0
	for len(q.items) > 0 {
		next := q.items[0]
		if next.fireAt > now {
			break
		}
		heap.Pop(&q.items)
		if next.cancelled {
			continue
		}
		delete(q.byID, next.id)
		if next.fireAt > q.now {
			q.now = next.fireAt
		}
		if q.onFire != nil {
			q.onFire(next.name, next.fireAt)
		}
		next.action()
		fired++
		if q.cleared {
			// The action tore the owner down; nothing else may run.
			break
		}
	}
	if now > q.now {
		q.now = now
	}
	return fired
}

// Clear drops every pending entry without running it.
func (q *Queue) Clear() {
	for _, e := range q.items {
		e.cancelled = true
	}
	q.items = q.items[:0]
	q.byID = make(map[ID]*entry)
	q.cleared = true
}

type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].fireAt != h[j].fireAt {
		return h[i].fireAt < h[j].fireAt
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}
