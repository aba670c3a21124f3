// Package config reads the command line.
package config

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/nota/internal/game"
	"git.lost.host/meutraa/nota/internal/input"
	"git.lost.host/meutraa/nota/internal/sound"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	Chart          string
	Backing        string
	Track          string
	Sound          string
	MidiDevice     int
	ListDevices    bool
	Instrument     int
	Channel        int
	BackingChannel int
	MidiChannel    int
	Samples        string
	Delay          time.Duration
	FramePeriod    time.Duration
	TravelTime     time.Duration
	Autoplay       bool
	Keys           string
	Evdev          string
	Database       string
	LogFile        string
}

// Parse reads args, not including the program name.
func Parse(args []string) (*Config, error) {
	c := &Config{}
	app := kingpin.New("nota", "Play a note chart with falling notes in the terminal.")
	app.Version(Version)

	app.Arg("chart", "Chart file (JSON or .mid)").Required().ExistingFileVar(&c.Chart)
	app.Flag("backing", "Accompaniment chart played alongside").Short('b').ExistingFileVar(&c.Backing)
	app.Flag("track", "Audio file (mp3, ogg, wav) played as a backing track").Short('t').ExistingFileVar(&c.Track)
	app.Flag("sound", "Sound backend").Default(sound.ModeMidi).Short('s').EnumVar(&c.Sound, sound.Modes...)
	app.Flag("midi-device", "MIDI output device id, -1 for the default").Default("-1").IntVar(&c.MidiDevice)
	app.Flag("list-devices", "List MIDI outputs and exit").BoolVar(&c.ListDevices)
	app.Flag("instrument", "General MIDI program for the notes").Default("0").Short('i').IntVar(&c.Instrument)
	app.Flag("channel", "Channel the player's notes sound on").Default("0").IntVar(&c.Channel)
	app.Flag("backing-channel", "Channel the accompaniment sounds on").Default("1").IntVar(&c.BackingChannel)
	app.Flag("midi-channel", "Read only this channel (1-16) from .mid charts, 0 for all").Default("0").IntVar(&c.MidiChannel)
	app.Flag("samples", "Directory of <note>.wav samples for --sound=wav").Default("samples").StringVar(&c.Samples)
	app.Flag("delay", "Start delay").Default("1.5s").Short('d').DurationVar(&c.Delay)
	app.Flag("frame-period", "Render frame period").Default("16ms").Short('p').DurationVar(&c.FramePeriod)
	app.Flag("travel-time", "Time a note takes to fall to the hit line").Default("2s").DurationVar(&c.TravelTime)
	app.Flag("autoplay", "Let the bot play").Short('a').BoolVar(&c.Autoplay)
	app.Flag("keys", "Keys for the lanes, lowest note first").Default(input.DefaultKeys).Short('k').StringVar(&c.Keys)
	app.Flag("evdev", "Read keys from this input device instead of the terminal").StringVar(&c.Evdev)
	app.Flag("db", "Run history database").Default("./scores.db").StringVar(&c.Database)
	app.Flag("log", "Log file").Default("nota.log").StringVar(&c.LogFile)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}
	if err := c.validate(); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.FramePeriod <= 0 {
		return fmt.Errorf("frame period must be positive: %w", game.ErrConfiguration)
	}
	if c.TravelTime <= 0 {
		return fmt.Errorf("travel time must be positive: %w", game.ErrConfiguration)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay cannot be negative: %w", game.ErrConfiguration)
	}
	for _, ch := range []int{c.Channel, c.BackingChannel} {
		if ch < 0 || ch > 15 || ch == sound.ApplauseChannel {
			return fmt.Errorf("channel %v is not available: %w", ch, game.ErrConfiguration)
		}
	}
	if c.MidiChannel < 0 || c.MidiChannel > 16 {
		return fmt.Errorf("midi channel %v is not 0-16: %w", c.MidiChannel, game.ErrConfiguration)
	}
	if c.Instrument < 0 || c.Instrument > 127 {
		return fmt.Errorf("instrument %v is not a MIDI program: %w", c.Instrument, game.ErrConfiguration)
	}
	if _, err := input.Bind(c.Keys, game.Lanes); nil != err {
		return err
	}
	return nil
}
