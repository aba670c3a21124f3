// Package autoplay plays a chart perfectly, for demos and for checking
// that a chart can be cleared.
package autoplay

import (
	"git.lost.host/meutraa/nota/internal/clock"
	"git.lost.host/meutraa/nota/internal/engine"
)

// Bot presses every lane whose zone holds an unjudged note and holds it
// for the note's duration.
type Bot struct {
	Engine *engine.Engine

	holding map[*engine.Note]clock.TimerID
}

func New(e *engine.Engine) *Bot {
	return &Bot{
		Engine:  e,
		holding: map[*engine.Note]clock.TimerID{},
	}
}

// Tick must follow the engine's Tick, in place of the frame's input.
func (b *Bot) Tick() {
	e := b.Engine
	if e.Paused() {
		return
	}
	for _, lane := range e.Lanes() {
		if e.Finished() {
			break
		}
		n := e.Zone(lane).Occupant()
		if nil == n || n.State() != engine.InZone || n.Judged() || e.Held(lane) {
			continue
		}
		if _, ok := b.holding[n]; ok {
			continue
		}
		if _, ok := e.Press(lane); !ok {
			continue
		}
		note, l := n, lane
		b.holding[note] = e.After(note.Duration(), func() {
			e.Release(l)
			delete(b.holding, note)
		})
	}

	// A note cut short lets go of its lane straight away
	for n, id := range b.holding {
		if n.State() != engine.Gone {
			continue
		}
		e.Cancel(id)
		e.Release(n.Lane)
		delete(b.holding, n)
	}
}

// Reset forgets held notes. The engine's own Reset has already released
// them and cancelled their timers.
func (b *Bot) Reset() {
	b.holding = map[*engine.Note]clock.TimerID{}
}

func (b *Bot) Holding() int {
	return len(b.holding)
}
