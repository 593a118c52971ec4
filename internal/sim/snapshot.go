package sim

// Snapshot is the full render-facing state after a tick or state change.
// Snake is a copy; callers may hold it across ticks.
type Snapshot struct {
	Snake     []Cell // head first
	Food      Cell
	Score     int
	HighScore int
	Heading   Heading
	Status    Status
	Won       bool
	Ticks     uint64
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	body := make([]Cell, len(g.snake))
	copy(body, g.snake)
	return Snapshot{
		Snake:     body,
		Food:      g.food,
		Score:     g.score,
		HighScore: g.best,
		Heading:   g.heading,
		Status:    g.status,
		Won:       g.won,
		Ticks:     g.ticks,
	}
}
