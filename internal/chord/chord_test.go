package chord

import "testing"

var describeTests = []struct {
	notes    []string
	expected string
}{
	{nil, ""},
	{[]string{"E"}, "Note: E"},
	{[]string{"C", "E", "G"}, "C major"},
	{[]string{"G", "E", "C"}, "C major"},
	{[]string{"A8vb", "C", "E"}, "A8vb minor"},
	{[]string{"C", "E", "G", "B"}, "C major seventh"},
	{[]string{"G8vb", "B8vb", "D", "F"}, "G8vb dominant seventh"},
	{[]string{"B8vb", "D", "F"}, "B8vb diminished"},
	{[]string{"C", "D", "G"}, "C sus2"},
	{[]string{"C8vb", "E"}, "Intervals: major third (+1 octave)"},
	{[]string{"C", "C#"}, "Intervals: minor second"},
	{[]string{"C8vb", "C8va"}, "Intervals: unison (+2 octaves)"},
}

func TestDescribe(t *testing.T) {
	for _, test := range describeTests {
		tr := NewTracker()
		for _, n := range test.notes {
			tr.Press(n)
		}
		if out := tr.Describe(); out != test.expected {
			t.Errorf("%v: got %q, expected %q", test.notes, out, test.expected)
		}
	}
}

func TestReleaseAndUnknown(t *testing.T) {
	tr := NewTracker()
	tr.Press("C")
	tr.Press("E")
	tr.Press("nope")
	tr.Release("E")
	if out := tr.Describe(); out != "Note: C" {
		t.Errorf("got %q", out)
	}
	if held := tr.Held(); len(held) != 1 || held[0] != "C" {
		t.Log(held)
		t.Fail()
	}
	tr.Reset()
	if !tr.Empty() {
		t.Fail()
	}
}
