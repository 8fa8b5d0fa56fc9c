package pong

// Snapshot is a copy of the simulation state at one instant.
type Snapshot struct {
	Left    Paddle
	Right   Paddle
	Puck    Puck
	Running bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Left:    g.left,
		Right:   g.right,
		Puck:    g.puck,
		Running: g.running,
	}
}

// ApplySnapshot overwrites the game state. Used to set up scenarios and to
// restore a saved position; collaborators are left untouched.
func (g *Game) ApplySnapshot(s Snapshot) {
	g.left = s.Left
	g.right = s.Right
	g.puck = s.Puck
	g.running = s.Running
}
