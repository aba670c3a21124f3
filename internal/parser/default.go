package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"math"

	"git.lost.host/meutraa/nota/internal/game"
)

type DefaultParser struct {
	Log *log.Logger
}

// record is one serialized note. Field names follow the chart files the
// MIDI converter exports.
type record struct {
	NoteName string  `json:"noteName"`
	Time     float64 `json:"time"`
	Duration float64 `json:"duration"`
}

type wrapper struct {
	Notes []record `json:"notes"`
}

func (p *DefaultParser) logger() *log.Logger {
	if nil == p.Log {
		return log.Default()
	}
	return p.Log
}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}
	chart, err := p.ParseBytes(data)
	if nil != err {
		return nil, fmt.Errorf("unable to parse chart %v: %w", file, err)
	}
	return chart, nil
}

// ParseBytes accepts either {"notes": [...]} or a bare array of records.
// Malformed records are logged and dropped.
func (p *DefaultParser) ParseBytes(data []byte) (*game.Chart, error) {
	var records []record
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &records); nil != err {
			return nil, err
		}
	} else {
		var w wrapper
		if err := json.Unmarshal(trimmed, &w); nil != err {
			return nil, err
		}
		records = w.Notes
	}

	events := make([]*game.NoteEvent, 0, len(records))
	for i, r := range records {
		if err := validate(r); nil != err {
			p.logger().Printf("skipping chart entry %v: %v", i, err)
			continue
		}
		events = append(events, &game.NoteEvent{
			Name:     r.NoteName,
			Time:     r.Time,
			Duration: r.Duration,
		})
	}
	p.logger().Printf("%v valid notes loaded (%v entries)", len(events), len(records))
	return game.NewChart(events), nil
}

func validate(r record) error {
	switch {
	case r.NoteName == "":
		return fmt.Errorf("%w: empty note name", game.ErrData)
	case math.IsNaN(r.Time) || math.IsInf(r.Time, 0) || r.Time < 0:
		return fmt.Errorf("%w: invalid time %v for %v", game.ErrData, r.Time, r.NoteName)
	case math.IsNaN(r.Duration) || math.IsInf(r.Duration, 0) || r.Duration <= 0:
		return fmt.Errorf("%w: invalid duration %v for %v", game.ErrData, r.Duration, r.NoteName)
	}
	return nil
}
