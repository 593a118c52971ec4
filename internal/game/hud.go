package game

import (
	"fmt"

	"serpent/internal/sim"
)

// RenderHUD draws all screen text for the current state.
func RenderHUD(r *Renderer, snap sim.Snapshot, fbW, fbH int) {
	switch snap.Status {
	case sim.NotStarted:
		title := "SERPENT"
		titleScale := float32(7.0)
		r.DrawString(title, fbW/2-TextWidth(title, titleScale)/2, fbH/2-140, titleScale, Palette.Head)

		msg := "PRESS SPACE TO START"
		r.DrawString(msg, fbW/2-TextWidth(msg, 2.5)/2, fbH/2+10, 2.5, Palette.Text)

		hint := "ARROWS OR WASD TO STEER - P TO PAUSE"
		r.DrawString(hint, fbW/2-TextWidth(hint, 1.5)/2, fbH/2+60, 1.5, Palette.TextDim)

		if snap.HighScore > 0 {
			best := fmt.Sprintf("BEST: %d", snap.HighScore)
			r.DrawString(best, fbW/2-TextWidth(best, 2.0)/2, fbH/2+110, 2.0, Palette.Accent)
		}

	case sim.Running, sim.Paused:
		score := fmt.Sprintf("SCORE: %d", snap.Score)
		r.DrawString(score, 10, 10, 2.0, Palette.Text)

		best := fmt.Sprintf("BEST: %d", snap.HighScore)
		r.DrawString(best, fbW-TextWidth(best, 2.0)-10, 10, 2.0, Palette.TextDim)

		if snap.Status == sim.Paused {
			msg := "PAUSED"
			r.DrawString(msg, fbW/2-TextWidth(msg, 4.0)/2, fbH/2-40, 4.0, Palette.Accent)
			sub := "P TO RESUME"
			r.DrawString(sub, fbW/2-TextWidth(sub, 1.5)/2, fbH/2+20, 1.5, Palette.TextDim)
		}

	case sim.Over:
		if snap.Won {
			msg := "YOU WIN!"
			r.DrawString(msg, fbW/2-TextWidth(msg, 5.0)/2, fbH/2-120, 5.0, Palette.Accent)
		} else {
			msg := "GAME OVER"
			r.DrawString(msg, fbW/2-TextWidth(msg, 5.0)/2, fbH/2-120, 5.0, Palette.Danger)
		}

		final := fmt.Sprintf("FINAL SCORE: %d", snap.Score)
		r.DrawString(final, fbW/2-TextWidth(final, 2.5)/2, fbH/2-30, 2.5, Palette.Text)

		if snap.Score > 0 && snap.Score >= snap.HighScore {
			nb := "NEW HIGH SCORE!"
			r.DrawString(nb, fbW/2-TextWidth(nb, 2.0)/2, fbH/2+15, 2.0, Palette.Accent)
		} else {
			best := fmt.Sprintf("BEST: %d", snap.HighScore)
			r.DrawString(best, fbW/2-TextWidth(best, 2.0)/2, fbH/2+15, 2.0, Palette.TextDim)
		}

		again := "PRESS SPACE TO RESTART"
		r.DrawString(again, fbW/2-TextWidth(again, 1.5)/2, fbH/2+70, 1.5, Palette.Text)
	}

	r.FlushText(fbW, fbH)
}
