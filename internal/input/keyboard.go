package input

import (
	"fmt"
	"log"
	"unicode"

	"github.com/eiannone/keyboard"
)

// Keyboard reads the controlling terminal. Terminals report no key up,
// so every lane event is a Tap.
type Keyboard struct {
	Bindings map[rune]string

	events chan Event
	done   chan struct{}
}

func OpenKeyboard(bindings map[rune]string, logger *log.Logger) (*Keyboard, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	k := &Keyboard{
		Bindings: bindings,
		events:   make(chan Event, 128),
		done:     make(chan struct{}),
	}
	go func() {
		defer close(k.events)
		for {
			select {
			case <-k.done:
				return
			case key, ok := <-keys:
				if !ok {
					return
				}
				if nil != key.Err {
					logger.Println("unable to read key", key.Err)
					continue
				}
				if ev, ok := k.translate(key.Rune, key.Key); ok {
					select {
					case k.events <- ev:
					case <-k.done:
						return
					}
				}
			}
		}
	}()
	return k, nil
}

func (k *Keyboard) translate(r rune, key keyboard.Key) (Event, bool) {
	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Control: Quit}, true
	case keyboard.KeySpace:
		return Event{Control: Pause}, true
	case keyboard.KeyEnter:
		return Event{Control: Restart}, true
	}
	if c, ok := controlRunes[r]; ok {
		return Event{Control: c}, true
	}
	if lane, ok := k.Bindings[unicode.ToLower(r)]; ok {
		return Event{Lane: lane, Pressed: true, Tap: true}, true
	}
	return Event{}, false
}

func (k *Keyboard) Events() <-chan Event {
	return k.events
}

func (k *Keyboard) Close() error {
	close(k.done)
	return keyboard.Close()
}
