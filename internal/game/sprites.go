package game

import (
	"math"

	"serpent/internal/sim"
)

func appendSprite(buf []float32, x, y, size float64, col RGB, alpha, rot float32) []float32 {
	return append(buf,
		float32(x), float32(y), float32(size),
		float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0,
		alpha, rot,
	)
}

// BoardSprites appends the checkerboard cells and a one-cell border frame.
// Cell centres sit at (x+0.5, y+0.5) in cell units.
func BoardSprites(buf []float32) []float32 {
	for y := -1; y <= sim.GridSize; y++ {
		for x := -1; x <= sim.GridSize; x++ {
			inside := x >= 0 && x < sim.GridSize && y >= 0 && y < sim.GridSize
			if !inside {
				buf = appendSprite(buf, float64(x)+0.5, float64(y)+0.5, 1.0, Palette.Border, 1, 0)
				continue
			}
			col := Palette.BoardDark
			if (x+y)%2 == 0 {
				col = Palette.BoardLight
			}
			buf = appendSprite(buf, float64(x)+0.5, float64(y)+0.5, 1.0, col, 1, 0)
		}
	}
	return buf
}

// SnakeSprites appends the snake, tail first so the head draws on top,
// body shading toward the tail.
func SnakeSprites(snake []sim.Cell, buf []float32) []float32 {
	for i := len(snake) - 1; i >= 1; i-- {
		t := 0.0
		if len(snake) > 2 {
			t = float64(i-1) / float64(len(snake)-2)
		}
		col := lerpRGB(Palette.BodyBright, Palette.BodyDim, t)
		c := snake[i]
		buf = appendSprite(buf, float64(c.X)+0.5, float64(c.Y)+0.5, BodySize, col, 1, 0)
	}
	head := snake[0]
	return appendSprite(buf, float64(head.X)+0.5, float64(head.Y)+0.5, HeadSize, Palette.Head, 1, 0)
}

// FoodSprite returns the food cell as a spinning, breathing pickup box.
// t is wall-clock time: the pulse is cosmetic and ignores tick boundaries.
func FoodSprite(food sim.Cell, t float64, buf []float32) []float32 {
	size := FoodSize + FoodPulseDepth*math.Sin(t*FoodPulseRate)
	rot := float32(math.Mod(t*FoodSpinRate, 2*math.Pi))
	return appendSprite(buf, float64(food.X)+0.5, float64(food.Y)+0.5, size, Palette.Food, 0.95, rot)
}

// FoodGlow returns the breathing glow under the food cell.
func FoodGlow(food sim.Cell, t float64, buf []float32) []float32 {
	intensity := 0.14 + 0.06*math.Sin(t*FoodGlowRate)
	col := RGB{
		R: uint8(float64(Palette.FoodGlow.R) * intensity),
		G: uint8(float64(Palette.FoodGlow.G) * intensity),
		B: uint8(float64(Palette.FoodGlow.B) * intensity),
	}
	return appendSprite(buf, float64(food.X)+0.5, float64(food.Y)+0.5, 2.4, col, 1, 0)
}
