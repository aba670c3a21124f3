package engine

import (
	"fmt"
	"log"

	"git.lost.host/meutraa/nota/internal/game"
)

// Judge turns a press into a verdict using the lane's hit zone.
type Judge struct {
	Zones map[string]*HitZone
	Log   *log.Logger

	// Judged is told about every note a press moved to Retiring
	Judged func(n *Note)
}

func (j *Judge) OnPress(lane string) game.Verdict {
	zone, ok := j.Zones[lane]
	if !ok {
		j.Log.Println(fmt.Errorf("%w: no hit zone for lane %v", game.ErrInconsistent, lane))
		return game.Miss
	}
	note := zone.Occupant()
	if nil == note || note.State() != InZone || note.Judged() {
		return game.Miss
	}
	if !note.OnJudged() {
		return game.Miss
	}
	if nil != j.Judged {
		j.Judged(note)
	}
	return game.Hit(note.Time())
}

// OnRelease has no effect on scoring.
func (j *Judge) OnRelease(lane string) {}
