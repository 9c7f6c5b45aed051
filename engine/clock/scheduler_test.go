package clock

import (
	"testing"
	"time"
)

func TestAdvanceFiresDueEntriesInOrder(t *testing.T) {
	s := NewScheduler()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var order []int
	s.ScheduleAt(base.Add(300*time.Millisecond), func() { order = append(order, 3) })
	s.ScheduleAt(base.Add(100*time.Millisecond), func() { order = append(order, 1) })
	s.ScheduleAt(base.Add(200*time.Millisecond), func() { order = append(order, 2) })

	if fired := s.Advance(base.Add(250 * time.Millisecond)); fired != 2 {
		t.Fatalf("fired = %d, want 2", fired)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("fire order = %v, want [1 2]", order)
	}
	if s.Len() != 1 {
		t.Fatalf("pending = %d, want 1", s.Len())
	}

	if fired := s.Advance(base.Add(time.Second)); fired != 1 {
		t.Fatalf("second drain fired = %d, want 1", fired)
	}
	if len(order) != 3 || order[2] != 3 {
		t.Fatalf("fire order = %v, want [1 2 3]", order)
	}
}

func TestAdvanceSameInstantFiresInInsertionOrder(t *testing.T) {
	s := NewScheduler()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var order []int
	for i := 0; i < 4; i++ {
		i := i
		s.ScheduleAt(at, func() { order = append(order, i) })
	}

	s.Advance(at)
	for i, got := range order {
		if got != i {
			t.Fatalf("order[%d] = %d, want %d", i, got, i)
		}
	}
}

func TestAdvanceFiresNothingBeforeDue(t *testing.T) {
	s := NewScheduler()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	fired := false
	s.ScheduleAt(base.Add(500*time.Millisecond), func() { fired = true })

	if n := s.Advance(base.Add(499 * time.Millisecond)); n != 0 {
		t.Fatalf("fired = %d, want 0", n)
	}
	if fired {
		t.Fatal("callback fired before its time")
	}

	// Exactly at the fire time counts as due.
	if n := s.Advance(base.Add(500 * time.Millisecond)); n != 1 {
		t.Fatalf("fired = %d, want 1", n)
	}
	if !fired {
		t.Fatal("callback did not fire at its time")
	}
}

func TestCallbackMaySchedule(t *testing.T) {
	s := NewScheduler()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var chained bool
	s.ScheduleAt(base, func() {
		// Due immediately: fires within the same Advance.
		s.ScheduleAt(base, func() { chained = true })
	})

	if n := s.Advance(base); n != 2 {
		t.Fatalf("fired = %d, want 2", n)
	}
	if !chained {
		t.Fatal("chained callback did not fire")
	}
}

func TestScheduleNilIgnored(t *testing.T) {
	s := NewScheduler()
	s.ScheduleAt(time.Now(), nil)
	if s.Len() != 0 {
		t.Fatalf("pending = %d, want 0", s.Len())
	}
}
