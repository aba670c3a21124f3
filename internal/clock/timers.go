package clock

import "sort"

type TimerID uint64

type timer struct {
	id   TimerID
	at   float64
	fn   func()
	seq  uint64
	dead bool
}

// Timers holds one-shot continuations keyed on song position. They are
// checked by Run once per tick, so anything that stops the song clock
// stops them too.
type Timers struct {
	pending []*timer
	running []*timer
	next    uint64
}

// At schedules fn for the first Run whose position is at or past pos.
func (t *Timers) At(pos float64, fn func()) TimerID {
	t.next++
	t.pending = append(t.pending, &timer{id: TimerID(t.next), at: pos, fn: fn, seq: t.next})
	return TimerID(t.next)
}

// After schedules fn delay seconds after now.
func (t *Timers) After(now, delay float64, fn func()) TimerID {
	return t.At(now+delay, fn)
}

// Cancel drops a pending timer. Cancelling a fired or unknown timer is a no-op.
func (t *Timers) Cancel(id TimerID) bool {
	for i, p := range t.pending {
		if p.id == id {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return true
		}
	}
	for _, p := range t.running {
		if p.id == id && !p.dead {
			p.dead = true
			return true
		}
	}
	return false
}

// Clear drops every pending timer without running it, including those
// still queued in a Run that is in progress.
func (t *Timers) Clear() {
	t.pending = nil
	for _, p := range t.running {
		p.dead = true
	}
}

func (t *Timers) Len() int {
	return len(t.pending)
}

// Run fires every timer due at now, earliest first, ties in the order they
// were scheduled. Timers added by a callback wait for the next Run.
func (t *Timers) Run(now float64) int {
	var due, rest []*timer
	for _, p := range t.pending {
		if p.at <= now {
			due = append(due, p)
		} else {
			rest = append(rest, p)
		}
	}
	if len(due) == 0 {
		return 0
	}
	t.pending = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	t.running = due
	fired := 0
	for _, p := range due {
		if p.dead {
			continue
		}
		p.dead = true
		p.fn()
		fired++
	}
	t.running = nil
	return fired
}
