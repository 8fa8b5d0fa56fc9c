// Package kbd tracks keyboard state across frames.
//
// It keeps two snapshots of every key, the current frame and the previous
// one, and answers level queries (is the key down now) and edge queries (did
// the key go down or up since the last frame). Update must be called exactly
// once per frame, before any query that frame relies on.
package kbd

// Scancode identifies a physical key. Values follow the USB HID usage page,
// which is also the scancode space SDL uses, so front ends built on SDL can
// copy their keyboard array straight into a Snapshot.
type Scancode int

// NumScancodes is the size of the scancode space.
const NumScancodes = 512

// Scancodes used by the game and the front ends.
const (
	ScancodeUnknown Scancode = 0
	ScancodeQ       Scancode = 20
	ScancodeR       Scancode = 21
	ScancodeS       Scancode = 22
	ScancodeW       Scancode = 26
	ScancodeEscape  Scancode = 41
	ScancodeSpace   Scancode = 44
	ScancodeF1      Scancode = 58
	ScancodeRight   Scancode = 79
	ScancodeLeft    Scancode = 80
	ScancodeDown    Scancode = 81
	ScancodeUp      Scancode = 82
)

// Valid reports whether the scancode lies inside the tracked key space.
func (k Scancode) Valid() bool {
	return k >= 0 && k < NumScancodes
}

// Snapshot is the down/up state of every key captured at one instant.
type Snapshot [NumScancodes]bool

// Down reports whether k is down in the snapshot. Out-of-range keys read as
// released.
func (s *Snapshot) Down(k Scancode) bool {
	if !k.Valid() {
		return false
	}
	return s[k]
}

// Set marks k as down or up. Out-of-range keys are ignored.
func (s *Snapshot) Set(k Scancode, down bool) {
	if !k.Valid() {
		return
	}
	s[k] = down
}

// Source supplies fresh keyboard snapshots, usually a windowing library's
// bulk keyboard array.
type Source interface {
	// ReadKeys overwrites dst with the current state of every key.
	ReadKeys(dst *Snapshot)
}

// State holds the current and previous keyboard snapshots.
type State struct {
	src      Source
	current  Snapshot
	previous Snapshot
}

// New captures an initial snapshot from src. The previous snapshot starts
// with every key released. After the first Update, previous holds the
// initial capture, so keys held since startup do not report a press.
func New(src Source) *State {
	s := &State{src: src}
	if src != nil {
		src.ReadKeys(&s.current)
	}
	return s
}

// Update moves the current snapshot into previous and reads a new current
// snapshot from the source.
func (s *State) Update() {
	s.previous = s.current
	if s.src == nil {
		s.current = Snapshot{}
		return
	}
	s.src.ReadKeys(&s.current)
}

// Quit detaches the source. Later updates read every key as released.
func (s *State) Quit() {
	s.src = nil
}

// IsDown reports whether k is currently pressed.
func (s *State) IsDown(k Scancode) bool {
	return s.current.Down(k)
}

// IsUp reports whether k is currently not pressed.
func (s *State) IsUp(k Scancode) bool {
	return !s.current.Down(k)
}

// WasPressed reports whether k went down since the last frame.
func (s *State) WasPressed(k Scancode) bool {
	if !k.Valid() {
		return false
	}
	return !s.previous[k] && s.current[k]
}

// WasReleased reports whether k went up since the last frame.
func (s *State) WasReleased(k Scancode) bool {
	if !k.Valid() {
		return false
	}
	return s.previous[k] && !s.current[k]
}

// Current returns a copy of the current snapshot.
func (s *State) Current() Snapshot {
	return s.current
}

// Previous returns a copy of the previous snapshot.
func (s *State) Previous() Snapshot {
	return s.previous
}

// SnapshotSource is a Source backed by a mutable snapshot. Tests and
// front ends that receive discrete key events use it to build the level
// state the game polls.
type SnapshotSource struct {
	Keys Snapshot
}

// Press marks keys as down.
func (src *SnapshotSource) Press(keys ...Scancode) {
	for _, k := range keys {
		src.Keys.Set(k, true)
	}
}

// Release marks keys as up.
func (src *SnapshotSource) Release(keys ...Scancode) {
	for _, k := range keys {
		src.Keys.Set(k, false)
	}
}

// ReadKeys implements Source.
func (src *SnapshotSource) ReadKeys(dst *Snapshot) {
	*dst = src.Keys
}
