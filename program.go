package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"git.lost.host/meutraa/nota/internal/autoplay"
	"git.lost.host/meutraa/nota/internal/config"
	"git.lost.host/meutraa/nota/internal/engine"
	"git.lost.host/meutraa/nota/internal/game"
	"git.lost.host/meutraa/nota/internal/history"
	"git.lost.host/meutraa/nota/internal/input"
	"git.lost.host/meutraa/nota/internal/parser"
	"git.lost.host/meutraa/nota/internal/render"
	"git.lost.host/meutraa/nota/internal/sound"
)

// App owns every resource of a session and the loop that drives them.
type App struct {
	Config *config.Config
	Log    *log.Logger

	// Parser overrides the per-extension choice of chart parser
	Parser   parser.Parser
	Renderer render.Renderer

	chart   *game.Chart
	engine  *engine.Engine
	player  sound.Player
	track   *sound.Track
	source  input.Source
	bot     *autoplay.Bot
	history *history.Store

	taps      []string
	saved     bool
	rendering bool
}

func (a *App) Init() error {
	cfg := a.Config
	if nil == a.Log {
		a.Log = log.Default()
	}

	var err error
	a.chart, err = a.parse(cfg.Chart)
	if nil != err {
		return err
	}
	var backing *game.Chart
	if cfg.Backing != "" {
		backing, err = a.parse(cfg.Backing)
		if nil != err {
			return err
		}
	}

	a.player, err = sound.Open(cfg.Sound, sound.Options{
		Device:     cfg.MidiDevice,
		Instrument: cfg.Instrument,
		Channels:   []int{cfg.Channel, cfg.BackingChannel},
		Samples:    cfg.Samples,
		Log:        a.Log,
	})
	if nil != err {
		return err
	}
	if cfg.Track != "" {
		a.track, err = sound.OpenTrack(cfg.Track)
		if nil != err {
			return err
		}
	}

	// A run that cannot be saved is still worth playing
	a.history, err = history.Open(cfg.Database, a.Log)
	if nil != err {
		a.Log.Println(err)
	}

	field := engine.DefaultField
	field.TravelTime = cfg.TravelTime.Seconds()
	if nil == a.Renderer {
		screen := render.NewTerminal(game.Lanes, field, cfg.FramePeriod)
		screen.Length = a.length(backing)
		a.Renderer = screen
	}
	a.engine = engine.New(a.chart, engine.Options{
		Field:   field,
		Lanes:   game.Lanes,
		Lead:    cfg.Delay,
		Channel: cfg.Channel,
		Log:     a.Log,
	}, a.player, a.Renderer)
	if nil != backing {
		a.engine.SetAccompaniment(backing, cfg.BackingChannel)
	}
	if cfg.Autoplay {
		a.bot = autoplay.New(a.engine)
	}

	if err := a.openInput(); nil != err {
		return err
	}
	if err := a.Renderer.Init(cfg.Evdev != ""); nil != err {
		return err
	}
	a.rendering = true
	a.scheduleTrack()
	return nil
}

// length is when the last of the charts and the track stops sounding.
func (a *App) length(backing *game.Chart) float64 {
	end := a.chart.End()
	if nil != backing {
		end = math.Max(end, backing.End())
	}
	if nil != a.track {
		end = math.Max(end, a.track.Length())
	}
	return end
}

func (a *App) parse(file string) (*game.Chart, error) {
	p := a.Parser
	if nil == p {
		p = parser.ForFile(file, a.Config.MidiChannel, a.Log)
	}
	return p.Parse(file)
}

func (a *App) openInput() error {
	bindings, err := input.Bind(a.Config.Keys, game.Lanes)
	if nil != err {
		return err
	}
	if a.Config.Evdev == "" {
		a.source, err = input.OpenKeyboard(bindings, a.Log)
		return err
	}
	codes, err := input.EvdevCodes(bindings)
	if nil != err {
		return fmt.Errorf("unable to bind keys for %v: %w", a.Config.Evdev, err)
	}
	a.source, err = input.OpenEvdev(a.Config.Evdev, codes, a.Log)
	return err
}

// scheduleTrack starts the backing track when the song reaches zero.
func (a *App) scheduleTrack() {
	if nil == a.track {
		return
	}
	delay := -a.engine.Position()
	if delay < 0 {
		delay = 0
	}
	a.engine.After(delay, func() {
		if err := a.track.Play(); nil != err {
			a.Log.Println(err)
		}
	})
}

// Run drives the engine one frame at a time until the player quits.
func (a *App) Run() error {
	period := a.Config.FramePeriod
	last := time.Now()
	for {
		now := time.Now()
		deadline := now.Add(period)

		a.engine.Tick(now.Sub(last))
		last = now

		// Taps from the last frame come up before this frame's input
		for _, lane := range a.taps {
			a.engine.Release(lane)
		}
		a.taps = a.taps[:0]

		quit := a.drain()
		if nil != a.bot {
			a.bot.Tick()
		}
		a.Renderer.Draw(a.engine.Live(), a.engine.Position(), a.engine.Paused())

		if a.engine.Finished() && !a.saved {
			a.save()
		}
		if quit {
			return nil
		}
		time.Sleep(time.Until(deadline))
	}
}

// drain handles every input event that arrived since the last frame. It
// reports whether the player asked to quit.
func (a *App) drain() bool {
	for {
		select {
		case ev, ok := <-a.source.Events():
			if !ok {
				a.Log.Println("input closed")
				return true
			}
			if a.handle(ev) {
				return true
			}
		default:
			return false
		}
	}
}

func (a *App) handle(ev input.Event) bool {
	switch ev.Control {
	case input.Quit:
		return true
	case input.Pause:
		a.togglePause()
		return false
	case input.Restart:
		a.restart()
		return false
	}

	// The bot has the lanes to itself
	if nil != a.bot {
		return false
	}
	if !ev.Pressed {
		a.engine.Release(ev.Lane)
		return false
	}
	if _, ok := a.engine.Press(ev.Lane); ok && ev.Tap {
		a.taps = append(a.taps, ev.Lane)
	}
	return false
}

func (a *App) togglePause() {
	if a.engine.Finished() {
		return
	}
	if a.engine.Paused() {
		a.engine.Resume()
		if nil != a.track {
			a.track.Resume()
		}
		return
	}
	a.engine.Pause()
	if nil != a.track {
		a.track.Pause()
	}
}

func (a *App) restart() {
	if nil != a.track {
		a.track.Stop()
	}
	a.engine.Reset()
	a.Renderer.Reset()
	if nil != a.bot {
		a.bot.Reset()
	}
	a.taps = a.taps[:0]
	a.saved = false
	a.scheduleTrack()
}

func (a *App) save() {
	a.saved = true
	if nil == a.history {
		return
	}
	snap := a.engine.Snapshot()
	best, hadBest := a.history.Best(a.chart)
	err := a.history.Save(a.chart, a.engine.Lanes(), history.Run{
		Score:    snap.Score,
		Accuracy: snap.Accuracy,
		Outcome:  a.engine.Outcome(),
		Autoplay: nil != a.bot,
		Inputs:   a.engine.Inputs(),
	})
	if nil != err {
		a.Log.Println(err)
		return
	}
	if hadBest && snap.Score > best.Score {
		a.Log.Printf("new best score %v (was %v)\n", snap.Score, best.Score)
	}
}

// Close releases everything Init acquired, whether or not it finished.
func (a *App) Close() {
	if nil != a.source {
		if err := a.source.Close(); nil != err {
			a.Log.Println("unable to close input", err)
		}
	}
	if a.rendering {
		if err := a.Renderer.Deinit(); nil != err {
			a.Log.Println("unable to restore terminal", err)
		}
	}
	if nil != a.track {
		a.track.Close()
	}
	if nil != a.player {
		if err := a.player.Close(); nil != err {
			a.Log.Println("unable to close sound", err)
		}
	}
	if nil != a.history {
		a.history.Close()
	}
}
