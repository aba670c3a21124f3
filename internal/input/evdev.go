package input

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"syscall"
	"unicode"
)

// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
const (
	evKey = 0x01

	keyEsc   = 1
	keyEnter = 28
	keySpace = 57

	released = 0
	pressed  = 1
)

var evdevCodes = map[rune]uint16{
	'1': 2, '2': 3, '3': 4, '4': 5, '5': 6, '6': 7, '7': 8, '8': 9, '9': 10, '0': 11,
	'q': 16, 'w': 17, 'e': 18, 'r': 19, 't': 20, 'y': 21, 'u': 22, 'i': 23, 'o': 24, 'p': 25,
	'a': 30, 's': 31, 'd': 32, 'f': 33, 'g': 34, 'h': 35, 'j': 36, 'k': 37, 'l': 38,
	'z': 44, 'x': 45, 'c': 46, 'v': 47, 'b': 48, 'n': 49, 'm': 50,
}

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Evdev reads a Linux input device, which does report key up.
type Evdev struct {
	Path  string
	Codes map[uint16]string

	file   *os.File
	events chan Event
	done   chan struct{}
}

// EvdevCodes maps rune bindings onto evdev key codes. Runes with no code
// on a US layout are an error.
func EvdevCodes(bindings map[rune]string) (map[uint16]string, error) {
	codes := make(map[uint16]string, len(bindings))
	for r, lane := range bindings {
		code, ok := evdevCodes[unicode.ToLower(r)]
		if !ok {
			return nil, fmt.Errorf("no key code for %q", r)
		}
		codes[code] = lane
	}
	return codes, nil
}

func OpenEvdev(path string, codes map[uint16]string, logger *log.Logger) (*Evdev, error) {
	file, err := os.Open(path)
	if nil != err {
		return nil, fmt.Errorf("unable to open %v: %w", path, err)
	}
	d := &Evdev{
		Path:   path,
		Codes:  codes,
		file:   file,
		events: make(chan Event, 128),
		done:   make(chan struct{}),
	}
	go d.read(file, logger)
	return d, nil
}

func (d *Evdev) read(r io.Reader, logger *log.Logger) {
	defer close(d.events)
	var ev keyEvent
	for {
		if err := binary.Read(r, binary.LittleEndian, &ev); nil != err {
			select {
			case <-d.done:
			default:
				logger.Println(err, "unable to read keyboard input")
			}
			return
		}
		if e, ok := d.translate(ev); ok {
			select {
			case d.events <- e:
			case <-d.done:
				return
			}
		}
	}
}

func (d *Evdev) translate(ev keyEvent) (Event, bool) {
	if ev.Type != evKey || (ev.Value != pressed && ev.Value != released) {
		return Event{}, false
	}
	down := ev.Value == pressed
	switch ev.Code {
	case keyEsc:
		return Event{Control: Quit}, down
	case keySpace:
		return Event{Control: Pause}, down
	case keyEnter:
		return Event{Control: Restart}, down
	}
	lane, ok := d.Codes[ev.Code]
	if !ok {
		return Event{}, false
	}
	return Event{Lane: lane, Pressed: down}, true
}

func (d *Evdev) Events() <-chan Event {
	return d.events
}

func (d *Evdev) Close() error {
	close(d.done)
	return d.file.Close()
}
