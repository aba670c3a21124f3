package game

import "testing"

var midiTests = map[string]int{
	"C8vb":  48,
	"B8vb":  59,
	"C":     60,
	"A":     69,
	"A#":    70,
	"C8va":  72,
	"B8va":  83,
	"H":     -1,
	"":      -1,
	"C#8vb": 49,
}

func TestMidiNumber(t *testing.T) {
	for name, expected := range midiTests {
		if out := MidiNumber(name); out != expected {
			t.Errorf("MidiNumber(%q) = %v, expected %v", name, out, expected)
		}
	}
}

func TestNoteNameRoundTrip(t *testing.T) {
	for _, lane := range Lanes {
		if out := NoteName(MidiNumber(lane)); out != lane {
			t.Errorf("NoteName(MidiNumber(%q)) = %q", lane, out)
		}
	}
	if out := NoteName(96); out != "C" {
		t.Errorf("unknown octave should fold to the middle one, got %q", out)
	}
}

func TestChartUniqueTimes(t *testing.T) {
	chart := NewChart([]*NoteEvent{
		{Name: "C", Time: 1},
		{Name: "E", Time: 1},
		{Name: "G", Time: 2},
	})
	if n := chart.UniqueTimes(); n != 2 {
		t.Errorf("expected chord to count once, got %v", n)
	}
	chart.Events[0].Spawned = true
	if chart.AllSpawned() {
		t.Fail()
	}
	chart.Reset()
	for _, e := range chart.Events {
		if e.Spawned {
			t.Fail()
		}
	}
	if !NewChart(nil).AllSpawned() {
		t.Log("an empty chart has nothing left to spawn")
		t.Fail()
	}
}
