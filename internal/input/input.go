// Package input turns key presses into lane-tagged events.
package input

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/nota/internal/game"
)

type Control int

const (
	None Control = iota
	Pause
	Restart
	Quit
)

func (c Control) String() string {
	switch c {
	case Pause:
		return "pause"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	}
	return "none"
}

// Event is a lane going down or up, or a control key.
type Event struct {
	Lane    string
	Pressed bool
	Control Control

	// Tap is set by sources that never see a key come up. The host
	// releases the lane itself on the next frame.
	Tap bool
}

type Source interface {
	Events() <-chan Event
	Close() error
}

// DefaultKeys lay the lanes out like a piano: the bottom two rows hold
// the low octave and the top two the middle one.
const DefaultKeys = "zsxdcvgbhnjmq2w3er5t6y7ui"

// Bind pairs each rune of keys with the lane at the same index.
func Bind(keys string, lanes []string) (map[rune]string, error) {
	runes := []rune(strings.ToLower(keys))
	if len(runes) != len(lanes) {
		return nil, fmt.Errorf("%v keys for %v lanes: %w", len(runes), len(lanes), game.ErrConfiguration)
	}
	bindings := make(map[rune]string, len(runes))
	for i, r := range runes {
		if _, ok := bindings[r]; ok {
			return nil, fmt.Errorf("key %q bound twice: %w", r, game.ErrConfiguration)
		}
		if _, ok := controlRunes[r]; ok {
			return nil, fmt.Errorf("key %q is a control key: %w", r, game.ErrConfiguration)
		}
		bindings[r] = lanes[i]
	}
	return bindings, nil
}

var controlRunes = map[rune]Control{
	' ':  Pause,
	'\r': Restart,
	'\n': Restart,
	0x1b: Quit,
}
