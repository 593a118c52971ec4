package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"serpent/internal/sim"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// headingKeys maps steering keys to headings. Arrows and WASD both work.
var headingKeys = []struct {
	key glfw.Key
	h   sim.Heading
}{
	{glfw.KeyUp, sim.Up},
	{glfw.KeyW, sim.Up},
	{glfw.KeyDown, sim.Down},
	{glfw.KeyS, sim.Down},
	{glfw.KeyLeft, sim.Left},
	{glfw.KeyA, sim.Left},
	{glfw.KeyRight, sim.Right},
	{glfw.KeyD, sim.Right},
}

// HeadingPressed returns the heading whose key was newly pressed this
// frame. Edge-triggered so a held key cannot swallow a later tap: the
// pending-heading slot should hold the most recent request.
func (in *Input) HeadingPressed(window *glfw.Window) (sim.Heading, bool) {
	h := sim.Up
	found := false
	for _, hk := range headingKeys {
		if in.JustPressed(window, hk.key) {
			h = hk.h
			found = true
		}
	}
	return h, found
}
