package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EventKind is the closed set of input events the viewer reacts to
type EventKind int

const (
	EventQuit EventKind = iota
	EventResized
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventWheel
	EventGesture
	EventKeyUp
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventResized:
		return "resized"
	case EventMouseDown:
		return "mouse-down"
	case EventMouseUp:
		return "mouse-up"
	case EventMouseMove:
		return "mouse-move"
	case EventWheel:
		return "wheel"
	case EventGesture:
		return "gesture"
	case EventKeyUp:
		return "key-up"
	default:
		return "unknown"
	}
}

// Event is one input event. Pointer positions are window-local.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Delta  float64 // wheel notches or pinch distance change
	Button ebiten.MouseButton
	Key    ebiten.Key
	Mods   Modifiers

	// EventResized only
	Window   Size
	Drawable Size
}

// Dispatcher routes events to the viewer. It is called synchronously from
// the game loop for every event.
type Dispatcher struct {
	viewer   *Viewer
	keys     *KeybindingManager
	executor *ActionExecutor

	pressed map[ebiten.MouseButton]bool
	anchorX float64 // last pointer position in drawable space
	anchorY float64
}

// NewDispatcher creates a Dispatcher for viewer
func NewDispatcher(viewer *Viewer, keys *KeybindingManager) *Dispatcher {
	return &Dispatcher{
		viewer:   viewer,
		keys:     keys,
		executor: NewActionExecutor(),
		pressed:  make(map[ebiten.MouseButton]bool),
	}
}

// Dispatch handles one event and reports whether the screen needs a redraw
func (d *Dispatcher) Dispatch(ev Event) bool {
	v := d.viewer

	switch ev.Kind {
	case EventQuit:
		v.Quit()
		return false

	case EventResized:
		v.Resize(ev.Window, ev.Drawable)
		return true

	case EventMouseDown:
		d.pressed[ev.Button] = true
		d.anchorX, d.anchorY = v.Viewport().ToScreen(ev.X, ev.Y)
		return false

	case EventMouseUp:
		delete(d.pressed, ev.Button)
		return false

	case EventMouseMove:
		x, y := v.Viewport().ToScreen(ev.X, ev.Y)
		dx, dy := x-d.anchorX, y-d.anchorY
		d.anchorX, d.anchorY = x, y
		if !d.pressed[ebiten.MouseButtonLeft] {
			return false
		}
		return v.PanBy(dx, dy)

	case EventWheel:
		delta := ev.Delta
		if v.Config().WheelInverted {
			delta = -delta
		}
		x, y := v.Viewport().ToScreen(ev.X, ev.Y)
		return v.ZoomStep(x, y, delta)

	case EventGesture:
		x, y := v.Viewport().ToScreen(ev.X, ev.Y)
		return v.ZoomStep(x, y, ev.Delta)

	case EventKeyUp:
		action := d.keys.ActionFor(ev.Key, ev.Mods)
		if action == "" {
			return false
		}
		debugLog("Key %v -> %s", ev.Key, action)
		return d.executor.ExecuteAction(action, v)
	}

	return false
}

// IsPressed reports whether the mouse button is currently held
func (d *Dispatcher) IsPressed(button ebiten.MouseButton) bool {
	return d.pressed[button]
}
