// Package input turns the raw press/release stream of the window backend into
// held and released-this-frame key state, and matches modifier chords on it.
package input

// Key identifies a physical key. Values are backend independent; the platform
// layer translates its own key codes into these.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyF
	KeyI
	KeyN
	KeyO
	KeyS
)

// Action is what happened to a key in one backend event.
type Action int

const (
	Press Action = iota
	Release
	Repeat
)

// Event is one key notification drained from the backend.
type Event struct {
	Key    Key
	Action Action
}

// Tracker holds the per-key state machine Up -> Held -> Up. A key released
// during the last Update is reported by IsReleased until the next Update.
type Tracker struct {
	held     map[Key]bool
	released map[Key]bool
}

func NewTracker() *Tracker {
	return &Tracker{
		held:     make(map[Key]bool),
		released: make(map[Key]bool),
	}
}

// Update starts a new poll cycle: the released set is cleared, then events are
// applied in order. Repeats do not change state; a release of a key that was
// not held is ignored.
func (t *Tracker) Update(events []Event) {
	clear(t.released)
	for _, ev := range events {
		switch ev.Action {
		case Press:
			t.held[ev.Key] = true
		case Release:
			if t.held[ev.Key] {
				delete(t.held, ev.Key)
				t.released[ev.Key] = true
			}
		}
	}
}

func (t *Tracker) IsHeld(k Key) bool {
	return t.held[k]
}

func (t *Tracker) IsReleased(k Key) bool {
	return t.released[k]
}
