// Package testdata holds charts shared by tests.
package testdata

import (
	"git.lost.host/meutraa/nota/internal/game"
)

// Melody is the opening of Ode to Joy, one note every half second.
const Melody = `{"notes": [
	{"noteName": "E", "time": 0.0, "duration": 0.4},
	{"noteName": "E", "time": 0.5, "duration": 0.4},
	{"noteName": "F", "time": 1.0, "duration": 0.4},
	{"noteName": "G", "time": 1.5, "duration": 0.4},
	{"noteName": "G", "time": 2.0, "duration": 0.4},
	{"noteName": "F", "time": 2.5, "duration": 0.4},
	{"noteName": "E", "time": 3.0, "duration": 0.4},
	{"noteName": "D", "time": 3.5, "duration": 0.4},
	{"noteName": "C", "time": 4.0, "duration": 0.4},
	{"noteName": "C", "time": 4.5, "duration": 0.4},
	{"noteName": "D", "time": 5.0, "duration": 0.4},
	{"noteName": "E", "time": 5.5, "duration": 0.4},
	{"noteName": "E", "time": 6.0, "duration": 0.6},
	{"noteName": "D", "time": 6.75, "duration": 0.2},
	{"noteName": "D", "time": 7.0, "duration": 0.9}
]}`

// Bass is an accompaniment for Melody, as a bare array.
const Bass = `[
	{"noteName": "C8vb", "time": 0.0, "duration": 1.9},
	{"noteName": "G8vb", "time": 2.0, "duration": 1.9},
	{"noteName": "C8vb", "time": 4.0, "duration": 1.9},
	{"noteName": "G8vb", "time": 6.0, "duration": 1.9}
]`

var melody = []game.NoteEvent{
	{Name: "E", Time: 0.0, Duration: 0.4},
	{Name: "E", Time: 0.5, Duration: 0.4},
	{Name: "F", Time: 1.0, Duration: 0.4},
	{Name: "G", Time: 1.5, Duration: 0.4},
	{Name: "G", Time: 2.0, Duration: 0.4},
	{Name: "F", Time: 2.5, Duration: 0.4},
	{Name: "E", Time: 3.0, Duration: 0.4},
	{Name: "D", Time: 3.5, Duration: 0.4},
	{Name: "C", Time: 4.0, Duration: 0.4},
	{Name: "C", Time: 4.5, Duration: 0.4},
	{Name: "D", Time: 5.0, Duration: 0.4},
	{Name: "E", Time: 5.5, Duration: 0.4},
	{Name: "E", Time: 6.0, Duration: 0.6},
	{Name: "D", Time: 6.75, Duration: 0.2},
	{Name: "D", Time: 7.0, Duration: 0.9},
}

// GetChart returns a fresh copy of Melody.
func GetChart() *game.Chart {
	events := make([]*game.NoteEvent, len(melody))
	for i := range melody {
		e := melody[i]
		events[i] = &e
	}
	return game.NewChart(events)
}
