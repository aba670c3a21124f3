// Package sound turns note identities into audio. Backends never know
// about the game: the engine asks for a note by name on a channel.
package sound

import (
	"fmt"
	"log"

	"git.lost.host/meutraa/nota/internal/game"
)

const (
	ModeMidi = "midi"
	ModeWav  = "wav"
	ModeNone = "none"
)

// Modes are the backends Open understands.
var Modes = []string{ModeMidi, ModeWav, ModeNone}

type Player interface {
	PlayNote(id string, channel int)
	StopNote(id string, channel int)
	Close() error
}

type Options struct {
	Device     int // MIDI output, -1 for the system default
	Instrument int // General MIDI program for the note channels
	Channels   []int
	Samples    string // Directory of <note>.wav files
	Log        *log.Logger
}

// Open starts the backend named by mode.
func Open(mode string, o Options) (Player, error) {
	if nil == o.Log {
		o.Log = log.Default()
	}
	switch mode {
	case ModeMidi:
		return OpenMidi(o.Device, o.Instrument, o.Channels, o.Log)
	case ModeWav:
		ids := append(append([]string{}, game.Lanes...), game.Applause)
		return OpenSampler(o.Samples, ids, o.Log)
	case ModeNone, "":
		return Silent{}, nil
	}
	return nil, fmt.Errorf("unknown sound mode %q: %w", mode, game.ErrConfiguration)
}

// Silent is a player that plays nothing.
type Silent struct{}

func (Silent) PlayNote(id string, channel int) {}
func (Silent) StopNote(id string, channel int) {}
func (Silent) Close() error                    { return nil }
