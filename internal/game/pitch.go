package game

import "strings"

// Applause is a reserved note identity the sound backends map to a
// crowd sound rather than a pitch.
const Applause = "applause"

const (
	octaveDown = "8vb"
	octaveUp   = "8va"
)

var pitchClasses = [...]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Lanes is the default keyboard of the game, two octaves and a top C.
var Lanes = []string{
	"C8vb", "C#8vb", "D8vb", "D#8vb", "E8vb", "F8vb", "F#8vb", "G8vb", "G#8vb", "A8vb", "A#8vb", "B8vb",
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
	"C8va",
}

// Semitone is the distance of a note name from middle C, or false if the
// name is not a note.
func Semitone(name string) (int, bool) {
	base, shift := name, 0
	if strings.HasSuffix(name, octaveDown) {
		base, shift = strings.TrimSuffix(name, octaveDown), -12
	} else if strings.HasSuffix(name, octaveUp) {
		base, shift = strings.TrimSuffix(name, octaveUp), 12
	}
	for i, pc := range pitchClasses {
		if pc == base {
			return i + shift, true
		}
	}
	return 0, false
}

// MidiNumber maps a note name to its MIDI key, C = 60. Unknown names are -1.
func MidiNumber(name string) int {
	s, ok := Semitone(name)
	if !ok {
		return -1
	}
	return 60 + s
}

// NoteName maps a MIDI key to a note name. Octaves outside the three the
// game knows fold onto the middle one.
func NoteName(midi int) string {
	if midi < 0 {
		return ""
	}
	name := pitchClasses[midi%12]
	switch midi/12 - 1 {
	case 3:
		return name + octaveDown
	case 5:
		return name + octaveUp
	}
	return name
}

// IsSharp reports whether the note is a black key.
func IsSharp(name string) bool {
	return strings.Contains(name, "#")
}
