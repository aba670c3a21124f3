package engine

import (
	"fmt"
	"log"

	"git.lost.host/meutraa/nota/internal/game"
)

// Scheduler walks a chart against song position and creates notes.
type Scheduler struct {
	Chart *game.Chart
	Field Field
	Zones map[string]*HitZone
	Log   *log.Logger
}

// Spawn creates one note for every event that is due and not yet
// spawned. Events are visited in chart order; no ordering is needed since
// each event is flagged the moment it is handled.
func (s *Scheduler) Spawn(pos float64) []*Note {
	if nil == s.Chart {
		return nil
	}
	var spawned []*Note
	for _, e := range s.Chart.Events {
		if e.Spawned || e.Time > pos {
			continue
		}
		e.Spawned = true
		if _, ok := s.Zones[e.Name]; !ok {
			s.Log.Println(fmt.Errorf("%w: no lane for note %v at %.3f", game.ErrConfiguration, e.Name, e.Time))
			continue
		}
		spawned = append(spawned, newNote(e, s.Field, pos))
	}
	return spawned
}

// Complete reports whether the song is over: nothing left to spawn and
// nothing left on the field.
func (s *Scheduler) Complete(live int) bool {
	if nil == s.Chart {
		return live == 0
	}
	return live == 0 && s.Chart.AllSpawned()
}
