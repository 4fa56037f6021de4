// Package control defines the input vocabulary shared by the camera, the
// object transform and the render loop, independent of the window backend.
package control

import (
	"fmt"
	"strings"
)

// Action is a logical input binding.
type Action int

const (
	Quit Action = iota
	CameraForward
	CameraBackward
	CameraLeft
	CameraRight
	CameraUp
	CameraDown
	ObjectForward
	ObjectBackward
	ObjectLeft
	ObjectRight
	ObjectUp
	ObjectDown
	ObjectRotate
	ToggleShape

	actionCount
)

var actionNames = [actionCount]string{
	Quit:           "quit",
	CameraForward:  "camera_forward",
	CameraBackward: "camera_backward",
	CameraLeft:     "camera_left",
	CameraRight:    "camera_right",
	CameraUp:       "camera_up",
	CameraDown:     "camera_down",
	ObjectForward:  "object_forward",
	ObjectBackward: "object_backward",
	ObjectLeft:     "object_left",
	ObjectRight:    "object_right",
	ObjectUp:       "object_up",
	ObjectDown:     "object_down",
	ObjectRotate:   "object_rotate",
	ToggleShape:    "toggle_shape",
}

// String returns the config name of the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Actions returns every defined action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// ParseAction looks up an action by its config name (case-insensitive).
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// DefaultBindings maps each action to its SDL key name.
func DefaultBindings() map[string]string {
	return map[string]string{
		Quit.String():           "Escape",
		CameraForward.String():  "W",
		CameraBackward.String(): "S",
		CameraLeft.String():     "A",
		CameraRight.String():    "D",
		CameraUp.String():       "Q",
		CameraDown.String():     "E",
		ObjectForward.String():  "I",
		ObjectBackward.String(): "K",
		ObjectLeft.String():     "J",
		ObjectRight.String():    "L",
		ObjectUp.String():       "U",
		ObjectDown.String():     "O",
		ObjectRotate.String():   "R",
		ToggleShape.String():    "T",
	}
}

// ActionSet is the set of actions held during one frame.
type ActionSet uint32

// NewActionSet returns a set holding the given actions.
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// Has reports whether a is held.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<uint(a)) != 0
}

// With returns the set with a added.
func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<uint(a)
}

// String lists the held actions, e.g. "camera_forward|toggle_shape".
func (s ActionSet) String() string {
	var names []string
	for _, a := range Actions() {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	return strings.Join(names, "|")
}
