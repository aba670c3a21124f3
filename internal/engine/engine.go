package engine

import (
	"log"
	"time"

	"git.lost.host/meutraa/nota/internal/chord"
	"git.lost.host/meutraa/nota/internal/clock"
	"git.lost.host/meutraa/nota/internal/game"
	"git.lost.host/meutraa/nota/internal/score"
)

const (
	// ApplauseLength is how long the success applause sounds, in seconds
	ApplauseLength = 2.0

	// ChordIdleAfter seconds without a held note the chord text goes idle
	ChordIdleAfter = 0.5
)

type Options struct {
	Field   Field
	Lanes   []string
	Lead    time.Duration // Song position starts at -Lead
	Channel int           // Sound channel for the player's notes
	Log     *log.Logger
}

// Engine owns everything that changes during a song. It is driven by a
// single host loop: call Tick once per frame, then deliver that frame's
// input with Press and Release, so notes spawned this frame can be judged.
type Engine struct {
	Scorer    score.Scorer
	Applause  *score.ApplauseBar
	Chords    *chord.Tracker
	Presenter Presenter

	chart     *game.Chart
	opts      Options
	log       *log.Logger
	sound     Sound
	clock     *clock.Clock
	timers    *clock.Timers
	zones     map[string]*HitZone
	scheduler *Scheduler
	judge     *Judge
	backing   *Accompaniment

	live      []*Note
	held      map[string]bool
	inputs    []game.Input
	idleTimer clock.TimerID
	finished  bool
	outcome   score.Outcome
}

func New(chart *game.Chart, opts Options, sound Sound, presenter Presenter) *Engine {
	if nil == chart {
		chart = game.NewChart(nil)
	}
	if nil == opts.Log {
		opts.Log = log.Default()
	}
	if len(opts.Lanes) == 0 {
		opts.Lanes = game.Lanes
	}
	if opts.Field == (Field{}) {
		opts.Field = DefaultField
	}
	if nil == sound {
		sound = nopSound{}
	}
	if nil == presenter {
		presenter = NopPresenter{}
	}

	e := &Engine{
		Scorer:    score.NewDefaultScorer(),
		Applause:  score.NewApplauseBar(),
		Chords:    chord.NewTracker(),
		Presenter: presenter,
		chart:     chart,
		opts:      opts,
		log:       opts.Log,
		sound:     sound,
		clock:     clock.New(opts.Lead),
		timers:    &clock.Timers{},
		zones:     map[string]*HitZone{},
		held:      map[string]bool{},
	}
	for _, lane := range opts.Lanes {
		e.zones[lane] = NewHitZone(lane)
	}
	e.scheduler = &Scheduler{Chart: chart, Field: opts.Field, Zones: e.zones, Log: e.log}
	e.judge = &Judge{Zones: e.zones, Log: e.log, Judged: e.onJudged}

	e.Scorer.ResetScore()
	e.Scorer.SetTotalNotes(chart.UniqueTimes())
	return e
}

// SetAccompaniment plays chart on channel alongside the game.
func (e *Engine) SetAccompaniment(chart *game.Chart, channel int) {
	if nil != e.backing {
		e.backing.Stop()
	}
	if nil == chart {
		e.backing = nil
		return
	}
	e.backing = newAccompaniment(chart, channel, e.sound, e.timers)
}

func (e *Engine) Position() float64      { return e.clock.Position() }
func (e *Engine) Paused() bool           { return e.clock.Paused() }
func (e *Engine) Finished() bool         { return e.finished }
func (e *Engine) Outcome() score.Outcome { return e.outcome }
func (e *Engine) Chart() *game.Chart     { return e.chart }
func (e *Engine) Field() Field           { return e.opts.Field }
func (e *Engine) Lanes() []string        { return e.opts.Lanes }
func (e *Engine) Held(lane string) bool  { return e.held[lane] }

// Live lists the notes on the field in spawn order.
func (e *Engine) Live() []*Note {
	return e.live
}

func (e *Engine) Zone(lane string) *HitZone {
	return e.zones[lane]
}

// Inputs is every press of the current run.
func (e *Engine) Inputs() []game.Input {
	return e.inputs
}

func (e *Engine) Snapshot() score.Snapshot {
	s := e.Scorer.Snapshot()
	s.Applause = e.Applause.Fill()
	return s
}

// After runs fn delay seconds of song time from now.
func (e *Engine) After(delay float64, fn func()) clock.TimerID {
	return e.timers.After(e.clock.Position(), delay, fn)
}

func (e *Engine) Cancel(id clock.TimerID) {
	e.timers.Cancel(id)
}

func (e *Engine) Tick(dt time.Duration) {
	e.clock.Advance(dt)
	if e.clock.Paused() {
		return
	}
	pos := e.clock.Position()

	if !e.finished {
		for _, n := range e.scheduler.Spawn(pos) {
			e.live = append(e.live, n)
			e.Presenter.NoteChanged(n)
		}
		if nil != e.backing {
			e.backing.Update(pos)
		}
		e.updateField(pos)
	}

	e.timers.Run(pos)
	e.compact()

	if !e.finished && e.scheduler.Complete(len(e.live)) {
		e.finish(e.Scorer.Outcome())
	}
}

// updateField moves notes and tracks which zone each overlaps.
func (e *Engine) updateField(pos float64) {
	f := e.opts.Field
	for _, n := range e.live {
		if n.State() != Falling && n.State() != InZone {
			continue
		}
		n.move(pos)
		zone := e.zones[n.Lane]
		// A note that skipped the zone in one long frame gets that frame in it
		overlaps := f.Overlaps(n.Y(), n.Top()) || n.crossed(f)
		if overlaps && n.enterZone() {
			zone.Enter(n)
			e.Presenter.NoteChanged(n)
		} else if !overlaps && n.exitZone() {
			zone.Exit(n)
			e.Presenter.NoteChanged(n)
		}
		// An off-screen note is a miss the scorer never hears about
		if f.Gone(n.Top()) && n.drop() {
			zone.Exit(n)
			e.Presenter.NoteChanged(n)
		}
	}
}

func (e *Engine) compact() {
	live := e.live[:0]
	for _, n := range e.live {
		if n.State() != Gone {
			live = append(live, n)
		}
	}
	for i := len(live); i < len(e.live); i++ {
		e.live[i] = nil
	}
	e.live = live
}

func (e *Engine) onJudged(n *Note) {
	pos := e.clock.Position()
	n.startRetire(pos)
	if zone, ok := e.zones[n.Lane]; ok {
		zone.Exit(n)
	}
	e.Presenter.NoteChanged(n)
	e.timers.After(pos, n.Duration(), func() {
		if n.retire() {
			e.Presenter.NoteChanged(n)
		}
	})
}

// Press handles a lane going down. It reports false, doing nothing, if
// the lane was already held.
func (e *Engine) Press(lane string) (game.Verdict, bool) {
	if e.held[lane] {
		return game.Miss, false
	}
	e.held[lane] = true
	e.sound.PlayNote(lane, e.opts.Channel)

	e.timers.Cancel(e.idleTimer)
	e.Chords.Press(lane)
	e.Presenter.ChordChanged(e.Chords.Describe())

	if e.finished || e.clock.Paused() {
		return game.Miss, true
	}

	e.inputs = append(e.inputs, game.Input{Lane: lane, Time: e.clock.Position()})
	active := len(e.live) > 0
	v := e.judge.OnPress(lane)
	if v.Hit {
		if e.Scorer.RegisterHit(v.Time) {
			e.Scorer.AddScore(score.HitPoints)
		}
		if active {
			e.Applause.OnHit()
		}
	} else {
		e.Scorer.RegisterMiss()
		if active {
			e.Applause.OnMiss()
		}
	}
	e.Presenter.Judged(lane, v)
	e.Presenter.ScoreChanged(e.Snapshot())

	if e.Applause.Depleted() {
		e.finish(score.Failure)
	}
	return v, true
}

// Release handles a lane coming up. Releasing a lane that is not held is
// ignored.
func (e *Engine) Release(lane string) {
	if !e.held[lane] {
		return
	}
	delete(e.held, lane)
	e.sound.StopNote(lane, e.opts.Channel)
	e.judge.OnRelease(lane)
	e.Presenter.Released(lane)

	e.Chords.Release(lane)
	if e.Chords.Empty() {
		e.timers.Cancel(e.idleTimer)
		e.idleTimer = e.After(ChordIdleAfter, func() {
			if e.Chords.Empty() {
				e.Presenter.ChordChanged(chord.Idle)
			}
		})
	} else {
		e.Presenter.ChordChanged(e.Chords.Describe())
	}
}

func (e *Engine) Pause() {
	e.clock.Pause()
}

func (e *Engine) Resume() {
	e.clock.Resume()
}

// Reset cancels every note and pending timer, then starts the chart over.
func (e *Engine) Reset() {
	e.timers.Clear()
	for _, n := range e.live {
		n.cancel()
		e.Presenter.NoteChanged(n)
	}
	e.live = nil
	for _, z := range e.zones {
		z.Clear()
	}
	for lane := range e.held {
		e.sound.StopNote(lane, e.opts.Channel)
		e.Presenter.Released(lane)
	}
	e.held = map[string]bool{}
	e.Chords.Reset()
	e.sound.StopNote(game.Applause, e.opts.Channel)

	e.chart.Reset()
	if nil != e.backing {
		e.backing.Reset()
	}
	e.Scorer.ResetScore()
	e.Scorer.SetTotalNotes(e.chart.UniqueTimes())
	e.Applause.Reset()
	e.inputs = nil
	e.finished = false
	e.outcome = score.Failure
	e.clock.Restart(e.opts.Lead)
	e.Presenter.ScoreChanged(e.Snapshot())
}

func (e *Engine) finish(o score.Outcome) {
	if e.finished {
		return
	}
	e.finished = true
	e.outcome = o

	for _, n := range e.live {
		n.cancel()
		e.Presenter.NoteChanged(n)
	}
	e.live = nil
	for _, z := range e.zones {
		z.Clear()
	}
	if nil != e.backing {
		e.backing.Stop()
	}

	accuracy := e.Scorer.GetAccuracyPercent()
	e.log.Printf("song finished: %v, accuracy %.1f%%", o, accuracy)
	e.Presenter.Finished(o, accuracy)

	if o == score.Success {
		e.sound.PlayNote(game.Applause, e.opts.Channel)
		e.After(ApplauseLength, func() {
			e.sound.StopNote(game.Applause, e.opts.Channel)
		})
	}
}
