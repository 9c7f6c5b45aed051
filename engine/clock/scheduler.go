// package clock provides the frame-clock scheduler used for deferred gameplay
// callbacks (attack cooldowns and similar). Entries are drained by the owning
// tick, never by a background goroutine, so scheduling stays single-threaded
// and frame-driven.
package clock

import (
	"container/heap"
	"time"
)

// entry is one pending callback with its fire time and insertion sequence.
// The sequence breaks ties so callbacks scheduled for the same instant fire
// in insertion order.
type entry struct {
	at  time.Time
	seq uint64
	fn  func()
}

// entryHeap is a min-heap over (at, seq).
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry{}
	*h = old[:n-1]
	return e
}

// Scheduler is a frame-clock callback queue: a min-heap of (fireTime, fn)
// entries drained at the start of each simulation tick. Not safe for
// concurrent use; ownership follows the single simulation thread.
type Scheduler struct {
	entries entryHeap
	nextSeq uint64
}

// NewScheduler creates an empty Scheduler.
//
// Returns:
//   - *Scheduler: the newly created scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// ScheduleAt queues fn to fire once the frame clock reaches at. A nil fn is
// ignored.
//
// Parameters:
//   - at: the frame-clock time at or after which fn fires
//   - fn: the callback to invoke
func (s *Scheduler) ScheduleAt(at time.Time, fn func()) {
	if fn == nil {
		return
	}
	heap.Push(&s.entries, entry{at: at, seq: s.nextSeq, fn: fn})
	s.nextSeq++
}

// Advance fires every entry whose time is at or before now, in (time,
// insertion) order. Callbacks may schedule further entries; entries newly due
// within the same Advance also fire.
//
// Parameters:
//   - now: the current frame-clock time
//
// Returns:
//   - int: the number of callbacks fired
func (s *Scheduler) Advance(now time.Time) int {
	fired := 0
	for len(s.entries) > 0 && !s.entries[0].at.After(now) {
		e := heap.Pop(&s.entries).(entry)
		e.fn()
		fired++
	}
	return fired
}

// Len reports the number of pending entries.
//
// Returns:
//   - int: pending entry count
func (s *Scheduler) Len() int {
	return len(s.entries)
}
