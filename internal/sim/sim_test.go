package sim

import "testing"

type fakeStore struct {
	best  int
	saved int
	calls int
}

func (f *fakeStore) HighScore() int      { return f.best }
func (f *fakeStore) SaveHighScore(v int) { f.saved = v; f.calls++ }

func cellsEqual(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStartState(t *testing.T) {
	g := New(1, nil)
	if got := g.Snapshot().Status; got != NotStarted {
		t.Fatalf("new game status = %v, want NotStarted", got)
	}

	g.Start()
	s := g.Snapshot()
	if s.Status != Running {
		t.Errorf("status = %v, want Running", s.Status)
	}
	if len(s.Snake) != 1 || s.Snake[0] != (Cell{X: 10, Y: 10}) {
		t.Errorf("snake = %v, want single cell at (10,10)", s.Snake)
	}
	if s.Heading != Right {
		t.Errorf("heading = %v, want Right", s.Heading)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
	if s.Food == s.Snake[0] {
		t.Errorf("food %v coincides with snake", s.Food)
	}
	if s.Food.X < 0 || s.Food.X >= GridSize || s.Food.Y < 0 || s.Food.Y >= GridSize {
		t.Errorf("food %v out of bounds", s.Food)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := New(1, nil)
	g.Start()

	g.RequestHeading(Left) // opposite of the active Right
	if g.pending != Right {
		t.Errorf("pending = %v after reversal request, want Right", g.pending)
	}

	g.RequestHeading(Down)
	if g.pending != Down {
		t.Errorf("pending = %v, want Down", g.pending)
	}
}

func TestReversalGuardUsesActiveHeading(t *testing.T) {
	g := New(1, nil)
	g.Start()

	// Two requests inside one tick window: the guard checks the heading in
	// effect (Right), so Up is accepted and Left is still rejected.
	g.RequestHeading(Up)
	g.RequestHeading(Left)
	if g.pending != Up {
		t.Errorf("pending = %v, want Up (Left must be rejected against active Right)", g.pending)
	}

	// Down is not the opposite of the active Right, so it replaces Up even
	// though it reverses the pending heading.
	g.RequestHeading(Down)
	if g.pending != Down {
		t.Errorf("pending = %v, want Down", g.pending)
	}
}

func TestRequestHeadingIgnoredWhenNotRunning(t *testing.T) {
	g := New(1, nil)
	g.RequestHeading(Down)
	if g.pending != Heading(0) {
		t.Errorf("pending mutated before start: %v", g.pending)
	}

	g.Start()
	g.TogglePause()
	g.RequestHeading(Down)
	if g.pending != Right {
		t.Errorf("pending = %v while paused, want Right", g.pending)
	}
}

func TestLengthInvariantWithoutFood(t *testing.T) {
	g := New(1, nil)
	g.Start()
	g.food = Cell{X: 0, Y: 0} // away from the straight path

	for i := 0; i < 5; i++ {
		g.Tick()
		if g.status != Running {
			t.Fatalf("tick %d: status = %v", i+1, g.status)
		}
		if len(g.snake) != 1 {
			t.Fatalf("tick %d: length = %d, want 1", i+1, len(g.snake))
		}
	}
}

func TestScenarioStraightRun(t *testing.T) {
	// Grid 20, start (10,10) heading Right, food at (15,15): after 5 ticks
	// with no input head is (15,10) and score 0; tick 6 reaches (16,10),
	// which is not food, and the game continues.
	g := New(7, nil)
	g.Start()
	g.food = Cell{X: 15, Y: 15}

	for i := 0; i < 5; i++ {
		g.Tick()
	}
	s := g.Snapshot()
	if s.Snake[0] != (Cell{X: 15, Y: 10}) {
		t.Errorf("head = %v after 5 ticks, want (15,10)", s.Snake[0])
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}

	g.Tick()
	s = g.Snapshot()
	if s.Snake[0] != (Cell{X: 16, Y: 10}) {
		t.Errorf("head = %v after 6 ticks, want (16,10)", s.Snake[0])
	}
	if s.Status != Running {
		t.Errorf("status = %v, want Running", s.Status)
	}
}

func TestScenarioEatAdjacent(t *testing.T) {
	// Food manually placed at (11,10): tick 1 eats it, score 10, length 2,
	// and the regenerated food avoids both snake cells.
	g := New(3, nil)
	g.Start()
	g.food = Cell{X: 11, Y: 10}

	g.Tick()
	s := g.Snapshot()
	if s.Snake[0] != (Cell{X: 11, Y: 10}) {
		t.Fatalf("head = %v, want (11,10)", s.Snake[0])
	}
	if s.Score != FoodScore {
		t.Errorf("score = %d, want %d", s.Score, FoodScore)
	}
	if len(s.Snake) != 2 {
		t.Errorf("length = %d, want 2", len(s.Snake))
	}
	if s.Food == (Cell{X: 11, Y: 10}) || s.Food == (Cell{X: 10, Y: 10}) {
		t.Errorf("regenerated food %v lies on the snake", s.Food)
	}
}

func TestWallCollision(t *testing.T) {
	g := New(1, nil)
	g.Start()
	g.food = Cell{X: 0, Y: 0}

	// Head starts at x=10; nine ticks reach x=19, the last column.
	for i := 0; i < 9; i++ {
		g.Tick()
	}
	before := g.Snapshot()
	if before.Status != Running || before.Snake[0].X != GridSize-1 {
		t.Fatalf("setup failed: %+v", before)
	}

	g.Tick() // x would be 20: wall
	after := g.Snapshot()
	if after.Status != Over {
		t.Errorf("status = %v, want Over", after.Status)
	}
	if !cellsEqual(before.Snake, after.Snake) {
		t.Errorf("snake mutated on collision tick: %v -> %v", before.Snake, after.Snake)
	}
}

func TestWallCollisionAllEdges(t *testing.T) {
	cases := []struct {
		name string
		head Cell
		h    Heading
	}{
		{"left", Cell{X: 0, Y: 5}, Left},
		{"right", Cell{X: GridSize - 1, Y: 5}, Right},
		{"top", Cell{X: 5, Y: 0}, Up},
		{"bottom", Cell{X: 5, Y: GridSize - 1}, Down},
	}
	for _, tc := range cases {
		g := New(1, nil)
		g.Start()
		g.food = Cell{X: 12, Y: 12}
		g.snake = []Cell{tc.head}
		g.heading = tc.h
		g.pending = tc.h
		g.Tick()
		if g.status != Over {
			t.Errorf("%s: status = %v, want Over", tc.name, g.status)
		}
	}
}

func TestSelfCollision(t *testing.T) {
	g := New(1, nil)
	g.Start()
	g.food = Cell{X: 0, Y: 0}

	// Hook shape: moving right from (5,5) lands on (6,5), an occupied cell.
	g.snake = []Cell{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.heading = Right
	g.pending = Right

	g.Tick()
	if g.status != Over {
		t.Errorf("status = %v, want Over", g.status)
	}
	if len(g.snake) != 5 {
		t.Errorf("snake mutated on collision tick, length = %d", len(g.snake))
	}
}

func TestSnakeCellsDistinct(t *testing.T) {
	g := New(99, nil)
	g.Start()

	// Circle the board; headings chosen so the snake keeps turning.
	seq := []Heading{Down, Left, Up, Right}
	for i := 0; i < 400 && g.status == Running; i++ {
		if i%4 == 3 {
			g.RequestHeading(seq[(i/4)%len(seq)])
		}
		g.Tick()

		seen := make(map[Cell]bool, len(g.snake))
		for _, c := range g.snake {
			if seen[c] {
				t.Fatalf("tick %d: duplicate cell %v in %v", i+1, c, g.snake)
			}
			seen[c] = true
		}
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	g := New(5, nil)
	g.Start()

	// Dense diagonal-ish body to stress the sampler.
	g.snake = g.snake[:0]
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize-2; x++ {
			g.snake = append(g.snake, Cell{X: x, Y: y})
		}
	}
	for i := 0; i < 200; i++ {
		g.placeFood()
		if g.occupied(g.food) {
			t.Fatalf("iteration %d: food %v on snake", i, g.food)
		}
	}
}

func TestBoardFullIsWin(t *testing.T) {
	st := &fakeStore{}
	g := New(5, st)
	g.Start()
	g.score = 300

	g.snake = g.snake[:0]
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			g.snake = append(g.snake, Cell{X: x, Y: y})
		}
	}
	g.placeFood()

	s := g.Snapshot()
	if s.Status != Over || !s.Won {
		t.Errorf("status = %v won = %v, want Over/true", s.Status, s.Won)
	}
	if st.calls != 1 || st.saved != 300 {
		t.Errorf("store saves = %d value = %d, want 1/300", st.calls, st.saved)
	}
}

func TestHighScorePersistedOnlyWhenBeaten(t *testing.T) {
	st := &fakeStore{best: 50}
	g := New(2, st)
	g.Start()
	if g.Snapshot().HighScore != 50 {
		t.Fatalf("high score not preloaded from store")
	}

	g.score = 40
	g.end()
	if st.calls != 0 {
		t.Errorf("store written for score below high score")
	}

	g.Start()
	g.score = 60
	g.end()
	if st.calls != 1 || st.saved != 60 {
		t.Errorf("store saves = %d value = %d, want 1/60", st.calls, st.saved)
	}
	if g.Snapshot().HighScore != 60 {
		t.Errorf("in-memory high score = %d, want 60", g.Snapshot().HighScore)
	}
}

func TestTogglePause(t *testing.T) {
	g := New(1, nil)

	g.TogglePause()
	if g.status != NotStarted {
		t.Errorf("pause before start changed status to %v", g.status)
	}

	g.Start()
	before := g.Snapshot()

	g.TogglePause()
	if g.status != Paused {
		t.Fatalf("status = %v, want Paused", g.status)
	}
	g.Tick()
	if g.Snapshot().Ticks != 0 {
		t.Errorf("tick advanced while paused")
	}

	g.TogglePause()
	after := g.Snapshot()
	if after.Status != Running {
		t.Fatalf("status = %v, want Running", after.Status)
	}
	if !cellsEqual(before.Snake, after.Snake) || before.Food != after.Food || before.Score != after.Score {
		t.Errorf("double toggle changed state: %+v -> %+v", before, after)
	}

	g.status = Over
	g.TogglePause()
	if g.status != Over {
		t.Errorf("pause after game over changed status to %v", g.status)
	}
}

func TestPauseCyclesDoNotAffectOutcome(t *testing.T) {
	// Two same-seed games, same heading requests per tick. One toggles
	// pause between every tick; final snapshots must match.
	requests := map[int]Heading{3: Down, 8: Left, 14: Up, 20: Right, 27: Down}

	run := func(pauseEachTick bool) Snapshot {
		g := New(1234, nil)
		g.Start()
		for i := 0; i < 40 && g.status == Running; i++ {
			if h, ok := requests[i]; ok {
				g.RequestHeading(h)
			}
			if pauseEachTick {
				g.TogglePause()
				g.Tick() // discarded: paused
				g.TogglePause()
			}
			g.Tick()
		}
		return g.Snapshot()
	}

	a := run(false)
	b := run(true)
	if !cellsEqual(a.Snake, b.Snake) || a.Food != b.Food || a.Score != b.Score ||
		a.Heading != b.Heading || a.Status != b.Status {
		t.Errorf("paused run diverged:\n  %+v\n  %+v", a, b)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := New(42, nil)
	g2 := New(42, nil)
	g1.Start()
	g2.Start()

	for i := 0; i < 200; i++ {
		if i == 15 {
			g1.RequestHeading(Down)
			g2.RequestHeading(Down)
		}
		if i == 30 {
			g1.RequestHeading(Left)
			g2.RequestHeading(Left)
		}
		if i == 45 {
			g1.RequestHeading(Up)
			g2.RequestHeading(Up)
		}
		g1.Tick()
		g2.Tick()
	}

	a, b := g1.Snapshot(), g2.Snapshot()
	if !cellsEqual(a.Snake, b.Snake) {
		t.Errorf("snake mismatch: %v vs %v", a.Snake, b.Snake)
	}
	if a.Food != b.Food {
		t.Errorf("food mismatch: %v vs %v", a.Food, b.Food)
	}
	if a.Score != b.Score || a.Status != b.Status || a.Ticks != b.Ticks {
		t.Errorf("state mismatch: %+v vs %+v", a, b)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New(1, nil)
	g.Start()
	g.score = 70
	g.end()
	if g.status != Over {
		t.Fatalf("status = %v, want Over", g.status)
	}

	g.Start()
	s := g.Snapshot()
	if s.Status != Running || s.Score != 0 || len(s.Snake) != 1 {
		t.Errorf("restart state = %+v", s)
	}
	if s.HighScore != 70 {
		t.Errorf("high score = %d after restart, want 70", s.HighScore)
	}
}
