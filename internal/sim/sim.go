package sim

// FoodScore is the reward for each food cell eaten.
const FoodScore = 10

// Status is the game lifecycle state.
type Status int

const (
	NotStarted Status = iota
	Running
	Paused
	Over
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Over:
		return "Over"
	}
	return "Unknown"
}

// Store persists the high score outside the simulation. SaveHighScore must
// not block the caller; store failures never reach the core.
type Store interface {
	HighScore() int
	SaveHighScore(v int)
}

// Game holds the full simulation state. All methods must be called from a
// single goroutine; RequestHeading between ticks only writes the pending
// heading, which Tick adopts at step one.
type Game struct {
	snake   []Cell // head first, cells pairwise distinct
	food    Cell
	heading Heading // heading in effect for the tick being computed
	pending Heading
	score   int
	best    int
	status  Status
	won     bool
	ticks   uint64
	rng     *Rand
	store   Store
}

// New creates a game in NotStarted with the stored high score preloaded.
// store may be nil (no persistence).
func New(seed uint64, store Store) *Game {
	g := &Game{
		status: NotStarted,
		rng:    NewRand(seed),
		store:  store,
	}
	if store != nil {
		g.best = store.HighScore()
	}
	return g
}

// Start resets snake, food, heading, and score and begins play. It acts as
// restart from any status.
func (g *Game) Start() {
	g.snake = append(g.snake[:0], Cell{X: GridSize / 2, Y: GridSize / 2})
	g.heading = Right
	g.pending = Right
	g.score = 0
	g.won = false
	g.ticks = 0
	g.status = Running
	g.placeFood()
}

// RequestHeading records the heading to adopt on the next tick. Reversals
// are checked against the heading in effect, not the pending one, so two
// requests inside one tick window cannot queue a 180-degree turn.
func (g *Game) RequestHeading(h Heading) {
	if g.status != Running {
		return
	}
	if h == g.heading.Opposite() {
		return
	}
	g.pending = h
}

// TogglePause flips Running and Paused. No-op in NotStarted and Over.
func (g *Game) TogglePause() {
	switch g.status {
	case Running:
		g.status = Paused
	case Paused:
		g.status = Running
	}
}

// Tick advances the simulation one step. It does nothing unless Running.
func (g *Game) Tick() {
	if g.status != Running {
		return
	}
	g.ticks++
	g.heading = g.pending

	dx, dy := g.heading.Delta()
	head := g.snake[0]
	next := Cell{X: head.X + dx, Y: head.Y + dy}

	// Wall first, then self. Either ends the game with no further mutation.
	if next.X < 0 || next.X >= GridSize || next.Y < 0 || next.Y >= GridSize {
		g.end()
		return
	}
	if g.occupied(next) {
		g.end()
		return
	}

	g.snake = append(g.snake, Cell{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = next

	if next == g.food {
		g.score += FoodScore
		g.placeFood()
		return
	}
	g.snake = g.snake[:len(g.snake)-1]
}

func (g *Game) occupied(c Cell) bool {
	for _, s := range g.snake {
		if s == c {
			return true
		}
	}
	return false
}

// end moves to Over and pushes a beaten high score to the store.
func (g *Game) end() {
	g.status = Over
	if g.score > g.best {
		g.best = g.score
		if g.store != nil {
			g.store.SaveHighScore(g.score)
		}
	}
}

// placeFood puts food on a uniformly random free cell. Rejection sampling
// is bounded: after GridSize*GridSize misses it falls back to picking the
// k-th free cell by scan, so Tick always terminates. A board with no free
// cell ends the game as a win.
func (g *Game) placeFood() {
	free := GridSize*GridSize - len(g.snake)
	if free <= 0 {
		g.won = true
		g.end()
		return
	}
	for i := 0; i < GridSize*GridSize; i++ {
		c := Cell{X: g.rng.Intn(GridSize), Y: g.rng.Intn(GridSize)}
		if !g.occupied(c) {
			g.food = c
			return
		}
	}
	k := g.rng.Intn(free)
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			c := Cell{X: x, Y: y}
			if g.occupied(c) {
				continue
			}
			if k == 0 {
				g.food = c
				return
			}
			k--
		}
	}
}
