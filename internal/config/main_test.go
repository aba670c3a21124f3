package config

import (
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"git.lost.host/meutraa/nota/internal/game"
	"git.lost.host/meutraa/nota/internal/input"
	"git.lost.host/meutraa/nota/internal/sound"
)

func chartFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.json")
	if err := ioutil.WriteFile(path, []byte(`{"notes": []}`), 0644); nil != err {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	path := chartFile(t)
	c, err := Parse([]string{path})
	if nil != err {
		t.Fatal(err)
	}
	if c.Chart != path || c.Sound != sound.ModeMidi || c.Keys != input.DefaultKeys {
		t.Fatalf("%+v", c)
	}
	if c.Delay != 1500*time.Millisecond || c.TravelTime != 2*time.Second || c.BackingChannel != 1 || c.MidiDevice != -1 || c.MidiChannel != 0 {
		t.Fatalf("%+v", c)
	}
	if c.Autoplay || c.Backing != "" || c.Evdev != "" {
		t.Fatalf("%+v", c)
	}
}

func TestFlags(t *testing.T) {
	path := chartFile(t)
	c, err := Parse([]string{"-s", "none", "--autoplay", "--travel-time", "1.5s", "--instrument", "40", "--midi-channel", "10", "--backing", path, path})
	if nil != err {
		t.Fatal(err)
	}
	if c.Sound != sound.ModeNone || !c.Autoplay || c.TravelTime != 1500*time.Millisecond || c.Instrument != 40 || c.Backing != path || c.MidiChannel != 10 {
		t.Fatalf("%+v", c)
	}
}

func TestRejects(t *testing.T) {
	path := chartFile(t)
	for _, args := range [][]string{
		{},
		{filepath.Join(t.TempDir(), "missing.json")},
		{"--sound", "kazoo", path},
		{"--frame-period", "0s", path},
		{"--channel", "15", path},
		{"--instrument", "128", path},
		{"--midi-channel", "17", path},
	} {
		if _, err := Parse(args); nil == err {
			t.Errorf("%v accepted", args)
		}
	}

	_, err := Parse([]string{"--keys", "abc", path})
	if !errors.Is(err, game.ErrConfiguration) {
		t.Errorf("short key list: %v", err)
	}
}
