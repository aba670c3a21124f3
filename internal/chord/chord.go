// Package chord names whatever set of notes is currently held.
package chord

import (
	"fmt"
	"sort"
	"strings"

	"git.lost.host/meutraa/nota/internal/game"
)

// Idle is shown once nothing has been held for a while.
const Idle = "..."

var intervalNames = [...]string{
	"unison",
	"minor second",
	"major second",
	"minor third",
	"major third",
	"perfect fourth",
	"tritone",
	"perfect fifth",
	"minor sixth",
	"major sixth",
	"minor seventh",
	"major seventh",
}

type pattern struct {
	name      string
	intervals []int // semitones above the root, reduced to one octave
}

// Checked in order, so seventh chords must come before the triads
// they contain.
var patterns = []pattern{
	{"major seventh", []int{4, 7, 11}},
	{"minor seventh", []int{3, 7, 10}},
	{"dominant seventh", []int{4, 7, 10}},
	{"half diminished", []int{3, 6, 10}},
	{"diminished seventh", []int{3, 6, 9}},
	{"major", []int{4, 7}},
	{"minor", []int{3, 7}},
	{"diminished", []int{3, 6}},
	{"augmented", []int{4, 8}},
	{"sus2", []int{2, 7}},
	{"sus4", []int{5, 7}},
}

type Tracker struct {
	held map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{held: map[string]struct{}{}}
}

func (t *Tracker) Press(note string) {
	t.held[note] = struct{}{}
}

func (t *Tracker) Release(note string) {
	delete(t.held, note)
}

func (t *Tracker) Reset() {
	t.held = map[string]struct{}{}
}

func (t *Tracker) Empty() bool {
	return len(t.held) == 0
}

type held struct {
	name     string
	semitone int
}

// Held lists the known notes being held, lowest first.
func (t *Tracker) Held() []string {
	hs := t.sorted()
	names := make([]string, len(hs))
	for i, h := range hs {
		names[i] = h.name
	}
	return names
}

func (t *Tracker) sorted() []held {
	hs := make([]held, 0, len(t.held))
	for name := range t.held {
		s, ok := game.Semitone(name)
		if !ok {
			continue
		}
		hs = append(hs, held{name, s})
	}
	sort.Slice(hs, func(i, j int) bool {
		if hs[i].semitone != hs[j].semitone {
			return hs[i].semitone < hs[j].semitone
		}
		return hs[i].name < hs[j].name
	})
	return hs
}

// Describe names a single note, a recognised chord rooted on the lowest
// note, or failing that lists the intervals above the lowest note.
func (t *Tracker) Describe() string {
	hs := t.sorted()
	switch len(hs) {
	case 0:
		return ""
	case 1:
		return "Note: " + hs[0].name
	}

	root := hs[0].semitone
	reduced := map[int]bool{}
	names := make([]string, 0, len(hs)-1)
	for _, h := range hs[1:] {
		d := h.semitone - root
		reduced[d%12] = true
		names = append(names, IntervalName(d))
	}

	for _, p := range patterns {
		if matches(reduced, p.intervals) {
			return hs[0].name + " " + p.name
		}
	}
	return "Intervals: " + strings.Join(names, ", ")
}

func matches(reduced map[int]bool, intervals []int) bool {
	for _, i := range intervals {
		if !reduced[i] {
			return false
		}
	}
	return true
}

// IntervalName names a distance in semitones, noting whole octaves above
// the simple interval.
func IntervalName(semitones int) string {
	if semitones < 0 {
		semitones = -semitones
	}
	label := intervalNames[semitones%12]
	if octaves := semitones / 12; octaves > 0 {
		plural := ""
		if octaves > 1 {
			plural = "s"
		}
		return fmt.Sprintf("%v (+%v octave%v)", label, octaves, plural)
	}
	return label
}
