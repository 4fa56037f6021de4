// Package input handles SDL2 input events and maps the keyboard to actions.
package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/polyprism/internal/control"
)

// EventType classifies window events the loop cares about.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
)

// Event represents a processed window event.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// Input polls SDL events and samples the keyboard.
type Input struct {
	events   []Event
	bindings map[control.Action]sdl.Scancode
}

// New creates an input handler with the given action -> SDL key name bindings.
// Must be called after SDL is initialized.
func New(bindings map[string]string) (*Input, error) {
	in := &Input{
		events:   make([]Event, 0, 4),
		bindings: make(map[control.Action]sdl.Scancode, len(bindings)),
	}

	for name, key := range bindings {
		action, err := control.ParseAction(name)
		if err != nil {
			return nil, err
		}
		sc := sdl.GetScancodeFromName(key)
		if sc == sdl.SCANCODE_UNKNOWN {
			return nil, fmt.Errorf("binding %s: unknown key %q", name, key)
		}
		in.bindings[action] = sc
	}

	return in, nil
}

// Poll drains pending SDL events. Returns true if the window was asked to close.
func (i *Input) Poll() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}
		}
	}

	return quit
}

// Events returns the events from the last Poll.
func (i *Input) Events() []Event {
	return i.events
}

// Held samples the keyboard and returns the set of bound actions whose key
// is currently down.
func (i *Input) Held() control.ActionSet {
	keys := sdl.GetKeyboardState()

	var held control.ActionSet
	for action, sc := range i.bindings {
		if int(sc) < len(keys) && keys[sc] != 0 {
			held = held.With(action)
		}
	}
	return held
}
