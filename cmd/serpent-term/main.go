// Terminal front end. Same simulation core as the desktop build,
// drawn with tcell instead of OpenGL.
//
// Arrows or WASD to steer, space to start or restart, p to pause,
// q or Esc to quit.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"serpent/internal/score"
	"serpent/internal/sim"
)

const tickInterval = 150 * time.Millisecond

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	styleBorder  = styleDefault.Foreground(tcell.ColorGray)
	styleHead    = styleDefault.Foreground(tcell.ColorLightGreen).Bold(true)
	styleBody    = styleDefault.Foreground(tcell.ColorGreen)
	styleFood    = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleText    = styleDefault.Foreground(tcell.ColorYellow)
	styleDim     = styleDefault.Foreground(tcell.ColorGray)
)

func newLogger() zerolog.Logger {
	// Stderr shares the tty with the game, so logs go to a file or nowhere.
	if path := os.Getenv("SERPENT_LOG"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			return zerolog.New(f).With().Timestamp().Logger()
		}
	}
	return zerolog.New(io.Discard)
}

func main() {
	log := newLogger()

	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SERPENT_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	store := score.NewStore(log)
	defer store.Flush()
	g := sim.New(seed, store)

	scr, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := scr.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer scr.Fini()
	scr.SetStyle(styleDefault)
	scr.HideCursor()

	evChan := make(chan tcell.Event, 16)
	quitChan := make(chan struct{})
	go scr.ChannelEvents(evChan, quitChan)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	draw(scr, g.Snapshot())

loop:
	for {
		scr.Show()
		select {
		case <-ticker.C:
			if g.Snapshot().Status != sim.Running {
				continue
			}
			before := g.Snapshot()
			g.Tick()
			after := g.Snapshot()
			if after.Score > before.Score {
				scr.Beep()
			}
			if after.Status == sim.Over {
				scr.Beep()
				log.Info().Int("score", after.Score).Bool("won", after.Won).Msg("game over")
			}
			draw(scr, after)
		case ev := <-evChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				scr.Sync()
				draw(scr, g.Snapshot())
			case *tcell.EventKey:
				if done := handleKey(g, ticker, ev); done {
					break loop
				}
				draw(scr, g.Snapshot())
			}
		}
	}
	close(quitChan)
}

func handleKey(g *sim.Game, ticker *time.Ticker, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		g.RequestHeading(sim.Up)
	case tcell.KeyDown:
		g.RequestHeading(sim.Down)
	case tcell.KeyLeft:
		g.RequestHeading(sim.Left)
	case tcell.KeyRight:
		g.RequestHeading(sim.Right)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'w', 'W':
			g.RequestHeading(sim.Up)
		case 's', 'S':
			g.RequestHeading(sim.Down)
		case 'a', 'A':
			g.RequestHeading(sim.Left)
		case 'd', 'D':
			g.RequestHeading(sim.Right)
		case ' ':
			switch g.Snapshot().Status {
			case sim.NotStarted, sim.Over:
				g.Start()
				ticker.Reset(tickInterval)
			}
		case 'p', 'P':
			was := g.Snapshot().Status
			g.TogglePause()
			if was == sim.Paused && g.Snapshot().Status == sim.Running {
				// Resume waits a full interval before the next step.
				ticker.Reset(tickInterval)
			}
		}
	}
	return false
}

func draw(scr tcell.Screen, snap sim.Snapshot) {
	scr.Clear()

	// Border ring around the playfield.
	for x := 0; x <= sim.GridSize+1; x++ {
		scr.SetContent(x*2, 0, '-', nil, styleBorder)
		scr.SetContent(x*2, sim.GridSize+1, '-', nil, styleBorder)
	}
	for y := 0; y <= sim.GridSize+1; y++ {
		scr.SetContent(0, y, '|', nil, styleBorder)
		scr.SetContent((sim.GridSize+1)*2, y, '|', nil, styleBorder)
	}
	scr.SetContent(0, 0, '+', nil, styleBorder)
	scr.SetContent((sim.GridSize+1)*2, 0, '+', nil, styleBorder)
	scr.SetContent(0, sim.GridSize+1, '+', nil, styleBorder)
	scr.SetContent((sim.GridSize+1)*2, sim.GridSize+1, '+', nil, styleBorder)

	// Cells are two columns wide so the board is roughly square.
	put := func(c sim.Cell, r rune, st tcell.Style) {
		scr.SetContent((c.X+1)*2, c.Y+1, r, nil, st)
	}

	switch snap.Status {
	case sim.NotStarted:
		drawCentered(scr, sim.GridSize/2-2, "SERPENT", styleText)
		drawCentered(scr, sim.GridSize/2, "press space to start", styleDim)
		drawCentered(scr, sim.GridSize/2+2, fmt.Sprintf("best: %d", snap.HighScore), styleDim)
	default:
		put(snap.Food, '*', styleFood)
		for i := len(snap.Snake) - 1; i >= 1; i-- {
			put(snap.Snake[i], '#', styleBody)
		}
		put(snap.Snake[0], '@', styleHead)
	}

	status := fmt.Sprintf("score: %d  best: %d", snap.Score, snap.HighScore)
	drawText(scr, 0, sim.GridSize+2, status, styleText)

	switch snap.Status {
	case sim.Paused:
		drawCentered(scr, sim.GridSize/2, "PAUSED", styleText)
	case sim.Over:
		if snap.Won {
			drawCentered(scr, sim.GridSize/2-1, "YOU WIN!", styleText)
		} else {
			drawCentered(scr, sim.GridSize/2-1, "GAME OVER", styleText)
		}
		drawCentered(scr, sim.GridSize/2+1, "press space to restart", styleDim)
	}
}

func drawText(scr tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, r := range text {
		scr.SetContent(x+i, y, r, nil, st)
	}
}

func drawCentered(scr tcell.Screen, y int, text string, st tcell.Style) {
	x := (sim.GridSize+2)*2/2 - len(text)/2
	if x < 0 {
		x = 0
	}
	drawText(scr, x, y+1, text, st)
}
