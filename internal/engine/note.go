package engine

import (
	"fmt"

	"git.lost.host/meutraa/nota/internal/game"
)

type State int

const (
	Falling State = iota
	InZone
	Retiring
	Gone
)

func (s State) String() string {
	switch s {
	case Falling:
		return "falling"
	case InZone:
		return "in-zone"
	case Retiring:
		return "retiring"
	case Gone:
		return "gone"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func isAllowedTransition(from, to State) bool {
	switch from {
	case Falling:
		return to == InZone || to == Retiring || to == Gone
	case InZone:
		return to == Falling || to == Retiring
	case Retiring:
		return to == Gone
	default:
		return false
	}
}

// Note is a spawned, falling instance of one chart event.
type Note struct {
	Event    *game.NoteEvent
	Lane     string
	Velocity float64 // Units per second, downwards
	SpawnY   float64
	Length   float64

	spawnedAt float64
	retiredAt float64
	y         float64
	lastY     float64
	state     State
	judged    bool
	missed    bool
}

func newNote(e *game.NoteEvent, f Field, pos float64) *Note {
	return &Note{
		Event:     e,
		Lane:      e.Name,
		Velocity:  f.Velocity(e.Time, pos),
		SpawnY:    f.SpawnHeight,
		Length:    e.Duration * f.LengthPerSecond,
		spawnedAt: pos,
		y:         f.SpawnHeight,
		lastY:     f.SpawnHeight,
		state:     Falling,
	}
}

func (n *Note) Name() string      { return n.Event.Name }
func (n *Note) Time() float64     { return n.Event.Time }
func (n *Note) Duration() float64 { return n.Event.Duration }
func (n *Note) State() State      { return n.state }
func (n *Note) Judged() bool      { return n.judged }

// Missed is true for a note that left the screen without being judged.
func (n *Note) Missed() bool { return n.missed }

// Y is the bottom edge of the note.
func (n *Note) Y() float64   { return n.y }
func (n *Note) Top() float64 { return n.y + n.Length }

func (n *Note) String() string {
	return fmt.Sprintf("%v@%.3f(%v)", n.Name(), n.Time(), n.state)
}

func (n *Note) transition(to State) bool {
	if !isAllowedTransition(n.state, to) {
		return false
	}
	n.state = to
	return true
}

// move places the note for song position pos. Position is derived from
// the spawn point, never accumulated, so frame timing cannot drift it.
// Retiring notes stay where they were judged.
func (n *Note) move(pos float64) {
	if n.state == Falling || n.state == InZone {
		n.lastY = n.y
		n.y = n.SpawnY - n.Velocity*(pos-n.spawnedAt)
	}
}

// crossed reports whether the last move took the note from above the
// zone to below it without a frame in between.
func (n *Note) crossed(f Field) bool {
	return n.lastY > f.ZoneHalfHeight && n.Top() < -f.ZoneHalfHeight
}

func (n *Note) enterZone() bool {
	if n.state != Falling {
		return false
	}
	return n.transition(InZone)
}

func (n *Note) exitZone() bool {
	if n.state != InZone {
		return false
	}
	return n.transition(Falling)
}

// OnJudged starts retiring the note. Only the first call has an effect.
func (n *Note) OnJudged() bool {
	if n.judged || !n.transition(Retiring) {
		return false
	}
	n.judged = true
	return true
}

func (n *Note) startRetire(pos float64) {
	n.retiredAt = pos
}

// retire ends a judged note once its duration has passed.
func (n *Note) retire() bool {
	if n.state != Retiring {
		return false
	}
	return n.transition(Gone)
}

// drop removes an unjudged note that fell off screen.
func (n *Note) drop() bool {
	if n.judged || n.state != Falling {
		return false
	}
	n.missed = true
	return n.transition(Gone)
}

// cancel removes a note on reset, whatever its state.
func (n *Note) cancel() {
	n.state = Gone
}

// Scale is the size of a retiring note, shrinking from 1 to 0 over its
// duration.
func (n *Note) Scale(pos float64) float64 {
	switch n.state {
	case Gone:
		return 0
	case Retiring:
		d := n.Duration()
		if d <= 0 {
			return 0
		}
		s := 1 - (pos-n.retiredAt)/d
		if s < 0 {
			return 0
		}
		if s > 1 {
			return 1
		}
		return s
	}
	return 1
}
