package game

import (
	"testing"

	"serpent/internal/sim"
)

func TestLerpRGBEndpoints(t *testing.T) {
	a := RGB{R: 10, G: 20, B: 30}
	b := RGB{R: 200, G: 100, B: 0}
	if got := lerpRGB(a, b, 0); got != a {
		t.Errorf("t=0: got %v, want %v", got, a)
	}
	if got := lerpRGB(a, b, 1); got != b {
		t.Errorf("t=1: got %v, want %v", got, b)
	}
	mid := lerpRGB(a, b, 0.5)
	if mid.R <= a.R || mid.R >= b.R {
		t.Errorf("t=0.5: R=%d not between %d and %d", mid.R, a.R, b.R)
	}
}

func TestClampF(t *testing.T) {
	if got := clampF(-1, 0, 1); got != 0 {
		t.Errorf("below: got %v", got)
	}
	if got := clampF(2, 0, 1); got != 1 {
		t.Errorf("above: got %v", got)
	}
	if got := clampF(0.3, 0, 1); got != 0.3 {
		t.Errorf("inside: got %v", got)
	}
}

func TestBoardSpritesCount(t *testing.T) {
	buf := BoardSprites(nil)
	// Board cells plus the one-cell border ring.
	want := (sim.GridSize + 2) * (sim.GridSize + 2) * 8
	if len(buf) != want {
		t.Errorf("got %d floats, want %d", len(buf), want)
	}
}

func TestSnakeSpritesHeadLast(t *testing.T) {
	snake := []sim.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	buf := SnakeSprites(snake, nil)
	if len(buf) != len(snake)*8 {
		t.Fatalf("got %d floats, want %d", len(buf), len(snake)*8)
	}
	// The last sprite written is the head, so it draws on top.
	hx := buf[len(buf)-8]
	hy := buf[len(buf)-7]
	if hx != 5.5 || hy != 5.5 {
		t.Errorf("head sprite at (%v, %v), want (5.5, 5.5)", hx, hy)
	}
}

func TestFontAtlasCoversCharset(t *testing.T) {
	for _, ch := range fontOrder {
		if _, ok := fontRows[ch]; !ok {
			t.Errorf("glyph %q listed in fontOrder but has no bitmap", ch)
		}
	}
	img := buildFontAtlas()
	if img.Bounds().Dx() != fontCols*FontCellW {
		t.Errorf("atlas width %d, want %d", img.Bounds().Dx(), fontCols*FontCellW)
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("ABC", 2); got != 3*FontCellW*2 {
		t.Errorf("got %d, want %d", got, 3*FontCellW*2)
	}
	if got := TextWidth("", 2); got != 0 {
		t.Errorf("empty: got %d", got)
	}
}

func TestParticleBurstAndDecay(t *testing.T) {
	ps := NewParticleSystem(1)
	ps.SpawnBurst(sim.Cell{X: 3, Y: 3}, Palette.Food)
	if len(ps.ps) != BurstParticles {
		t.Fatalf("got %d particles, want %d", len(ps.ps), BurstParticles)
	}
	// After the longest possible lifetime every particle is gone.
	for i := 0; i < 20; i++ {
		ps.Update(ParticleLifeMax / 10)
	}
	if len(ps.ps) != 0 {
		t.Errorf("%d particles still alive after max lifetime", len(ps.ps))
	}
}

func TestParticleClear(t *testing.T) {
	ps := NewParticleSystem(2)
	ps.SpawnBurst(sim.Cell{X: 0, Y: 0}, Palette.Food)
	ps.Clear()
	if got := ps.RenderData(nil); len(got) != 0 {
		t.Errorf("render data after clear: %d floats", len(got))
	}
}

func TestEventBusDispatch(t *testing.T) {
	bus := NewEventBus()
	var got []EventType
	bus.Subscribe(EventFoodEaten, func(e Event) { got = append(got, e.Type) })
	bus.Subscribe(EventFoodEaten, func(e Event) { got = append(got, e.Type) })
	bus.Subscribe(EventGameOver, func(e Event) { got = append(got, e.Type) })

	bus.Emit(Event{Type: EventFoodEaten})
	if len(got) != 2 {
		t.Errorf("two food handlers should fire, got %d calls", len(got))
	}
	bus.Emit(Event{Type: EventPauseToggled})
	if len(got) != 2 {
		t.Errorf("unsubscribed event fired a handler")
	}
}
