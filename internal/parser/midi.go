package parser

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"git.lost.host/meutraa/nota/internal/game"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// DefaultMidiDuration is given to a note that is never released.
const DefaultMidiDuration = 0.5

// MidiParser reads a Standard MIDI File into a chart. Channel 0 keeps
// every channel, otherwise only MIDI channel Channel-1 is read.
type MidiParser struct {
	Log     *log.Logger
	Channel int
}

// ForFile picks the parser for a chart by its extension.
func ForFile(file string, channel int, logger *log.Logger) Parser {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".mid", ".midi":
		return &MidiParser{Log: logger, Channel: channel}
	}
	return &DefaultParser{Log: logger}
}

func (p *MidiParser) logger() *log.Logger {
	if nil == p.Log {
		return log.Default()
	}
	return p.Log
}

func (p *MidiParser) Parse(file string) (*game.Chart, error) {
	s, err := smf.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read midi chart %v: %w", file, err)
	}
	return p.convert(s), nil
}

func (p *MidiParser) ParseBytes(data []byte) (*game.Chart, error) {
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if nil != err {
		return nil, fmt.Errorf("%w: %v", game.ErrData, err)
	}
	return p.convert(s), nil
}

type held struct {
	event *game.NoteEvent
	tick  int64
}

func (p *MidiParser) keep(ch uint8) bool {
	return p.Channel == 0 || int(ch) == p.Channel-1
}

// convert pairs each note start with the next release of the same key on
// the same channel. Releases on the start's own tick are ignored.
func (p *MidiParser) convert(s *smf.SMF) *game.Chart {
	seconds := func(tick int64) float64 {
		return float64(s.TimeAt(tick)) / 1e6
	}

	var events []*game.NoteEvent
	open := 0
	for _, track := range s.Tracks {
		pending := map[[2]uint8][]held{}
		var tick int64
		for _, ev := range track {
			tick += int64(ev.Delta)
			msg := midi.Message(ev.Message)

			var ch, key, vel uint8
			switch {
			case msg.GetNoteStart(&ch, &key, &vel):
				if !p.keep(ch) {
					continue
				}
				e := &game.NoteEvent{
					Name:     game.NoteName(int(key)),
					Time:     seconds(tick),
					Duration: DefaultMidiDuration,
				}
				events = append(events, e)
				id := [2]uint8{ch, key}
				pending[id] = append(pending[id], held{e, tick})
			case msg.GetNoteEnd(&ch, &key):
				id := [2]uint8{ch, key}
				starts := pending[id]
				if len(starts) == 0 || starts[0].tick >= tick {
					continue
				}
				starts[0].event.Duration = seconds(tick) - starts[0].event.Time
				pending[id] = starts[1:]
			}
		}
		for _, starts := range pending {
			open += len(starts)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
	p.logger().Printf("%v notes read from %v tracks, %v never released", len(events), len(s.Tracks), open)
	return game.NewChart(events)
}
