package input

// Modifier is held when any of its keys is held, so left and right variants
// of the same modifier are interchangeable.
type Modifier []Key

var (
	Ctrl = Modifier{KeyLeftControl, KeyRightControl}
	Alt  = Modifier{KeyLeftAlt, KeyRightAlt}
)

func (m Modifier) held(t *Tracker) bool {
	for _, k := range m {
		if t.IsHeld(k) {
			return true
		}
	}
	return false
}

// Chord fires on the frame its trigger key is released while every modifier
// is still held, i.e. exactly once per press/release of the trigger.
type Chord struct {
	Modifiers []Modifier
	Trigger   Key
}

func (c Chord) Fired(t *Tracker) bool {
	if !t.IsReleased(c.Trigger) {
		return false
	}
	for _, m := range c.Modifiers {
		if !m.held(t) {
			return false
		}
	}
	return true
}

// Command names a viewer action a chord can be bound to.
type Command string

const (
	CommandToggleOverlay    Command = "toggle_overlay"
	CommandToggleFullscreen Command = "toggle_fullscreen"
	CommandNextImage        Command = "next_image"
	CommandNextShader       Command = "next_shader"
)

// Binding maps a chord to a command.
type Binding struct {
	Chord   Chord
	Command Command
	Help    string
}

// Keymap is an ordered list of bindings; earlier bindings have priority.
type Keymap []Binding

// DefaultKeymap is the viewer's keyboard surface. N acts as a second-level
// gate: Ctrl+Alt+N held, then I or S released.
func DefaultKeymap() Keymap {
	return Keymap{
		{
			Chord:   Chord{Modifiers: []Modifier{Ctrl, Alt}, Trigger: KeyO},
			Command: CommandToggleOverlay,
			Help:    "Ctrl+Alt+O",
		},
		{
			Chord:   Chord{Modifiers: []Modifier{Ctrl, Alt}, Trigger: KeyF},
			Command: CommandToggleFullscreen,
			Help:    "Ctrl+Alt+F",
		},
		{
			Chord:   Chord{Modifiers: []Modifier{Ctrl, Alt, {KeyN}}, Trigger: KeyI},
			Command: CommandNextImage,
			Help:    "Ctrl+Alt+N, I",
		},
		{
			Chord:   Chord{Modifiers: []Modifier{Ctrl, Alt, {KeyN}}, Trigger: KeyS},
			Command: CommandNextShader,
			Help:    "Ctrl+Alt+N, S",
		},
	}
}

// Match returns the commands whose chords fired this frame, in priority order.
func (km Keymap) Match(t *Tracker) []Command {
	var fired []Command
	for _, b := range km {
		if b.Chord.Fired(t) {
			fired = append(fired, b.Command)
		}
	}
	return fired
}
