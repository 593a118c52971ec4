package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"serpent/internal/score"
	"serpent/internal/sim"
)

// Run opens the window and drives the game until the window closes.
func Run() {
	runtime.LockOSThread()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		log.Warn().Err(err).Msg("audio init failed, continuing without sound")
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SERPENT_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	store := score.NewStore(log)
	defer store.Flush()
	g := sim.New(seed, store)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(
		float32(Palette.Background.R)/255.0,
		float32(Palette.Background.G)/255.0,
		float32(Palette.Background.B)/255.0,
		1.0,
	)

	particles := NewParticleSystem(seed ^ 0xBEAD)

	bus := NewEventBus()
	bus.Subscribe(EventGameStarted, func(Event) {
		PlaySound(SoundSelect)
		particles.Clear()
	})
	bus.Subscribe(EventFoodEaten, func(e Event) {
		PlaySound(SoundEat)
		particles.SpawnBurst(e.Cell, Palette.Food)
	})
	bus.Subscribe(EventPauseToggled, func(Event) {
		PlaySound(SoundPause)
	})
	bus.Subscribe(EventGameOver, func(e Event) {
		PlaySound(SoundGameOver)
		log.Info().Int("score", e.Score).Msg("game over")
	})
	bus.Subscribe(EventGameWon, func(e Event) {
		PlaySound(SoundWin)
		log.Info().Int("score", e.Score).Msg("board filled")
	})

	input := NewInput()

	// Reusable render buffers.
	var cellBuf, fxBuf, glowBuf []float32

	var tickAcc float64  // accumulates toward the next simulation step
	var foodPulse float64 // cosmetic clock, runs even while paused

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDt {
			dt = MaxFrameDt
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		if h, ok := input.HeadingPressed(window); ok {
			g.RequestHeading(h)
		}

		switch g.Snapshot().Status {
		case sim.NotStarted, sim.Over:
			if input.JustPressed(window, glfw.KeySpace) {
				g.Start()
				tickAcc = 0
				bus.Emit(Event{Type: EventGameStarted})
			}
		case sim.Running, sim.Paused:
			if input.JustPressed(window, glfw.KeyP) {
				g.TogglePause()
				// Resume restarts the interval from scratch: paused time
				// never queues ticks.
				tickAcc = 0
				bus.Emit(Event{Type: EventPauseToggled})
			}
		}

		// Fixed-interval simulation steps. The accumulator only advances
		// while Running, so pausing stops the scheduler entirely.
		if g.Snapshot().Status == sim.Running {
			tickAcc += dt
			for tickAcc >= TickInterval {
				tickAcc -= TickInterval
				before := g.Snapshot()
				g.Tick()
				after := g.Snapshot()
				if after.Score > before.Score {
					bus.Emit(Event{Type: EventFoodEaten, Cell: after.Snake[0], Score: after.Score})
				}
				if after.Status == sim.Over {
					t := EventGameOver
					if after.Won {
						t = EventGameWon
					}
					bus.Emit(Event{Type: t, Score: after.Score})
					break
				}
			}
		} else {
			tickAcc = 0
		}

		foodPulse += dt
		particles.Update(dt)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		snap := g.Snapshot()
		rend.BeginFrame(fbW, fbH)

		cellBuf = BoardSprites(cellBuf[:0])
		if snap.Status != sim.NotStarted {
			cellBuf = SnakeSprites(snap.Snake, cellBuf)
		}
		rend.DrawSprites(cellBuf)

		if snap.Status == sim.Running || snap.Status == sim.Paused {
			glowBuf = FoodGlow(snap.Food, foodPulse, glowBuf[:0])
			rend.DrawGlowSprites(glowBuf)
			fxBuf = FoodSprite(snap.Food, foodPulse, fxBuf[:0])
			rend.DrawFoodSprites(fxBuf)
		}

		fxBuf = particles.RenderData(fxBuf[:0])
		rend.DrawSprites(fxBuf)

		RenderHUD(rend, snap, fbW, fbH)

		window.SwapBuffers()
	}
}
