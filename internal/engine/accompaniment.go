package engine

import (
	"git.lost.host/meutraa/nota/internal/clock"
	"git.lost.host/meutraa/nota/internal/game"
)

// Accompaniment plays a second chart on its own channel. It shares the
// engine's clock and timers, so it pauses and resets with the game.
type Accompaniment struct {
	Chart   *game.Chart
	Channel int

	sound    Sound
	timers   *clock.Timers
	sounding map[*game.NoteEvent]clock.TimerID
}

func newAccompaniment(chart *game.Chart, channel int, sound Sound, timers *clock.Timers) *Accompaniment {
	return &Accompaniment{
		Chart:    chart,
		Channel:  channel,
		sound:    sound,
		timers:   timers,
		sounding: map[*game.NoteEvent]clock.TimerID{},
	}
}

func (a *Accompaniment) Update(pos float64) {
	for _, e := range a.Chart.Events {
		if e.Spawned || e.Time > pos {
			continue
		}
		e.Spawned = true
		ev := e
		a.sound.PlayNote(ev.Name, a.Channel)
		a.sounding[ev] = a.timers.At(ev.Time+ev.Duration, func() {
			a.sound.StopNote(ev.Name, a.Channel)
			delete(a.sounding, ev)
		})
	}
}

// Stop silences every note still sounding and forgets their timers.
func (a *Accompaniment) Stop() {
	for ev, id := range a.sounding {
		a.timers.Cancel(id)
		a.sound.StopNote(ev.Name, a.Channel)
	}
	a.sounding = map[*game.NoteEvent]clock.TimerID{}
}

func (a *Accompaniment) Reset() {
	a.Stop()
	a.Chart.Reset()
}

func (a *Accompaniment) Sounding() int {
	return len(a.sounding)
}
