package main

import "serpent/internal/game"

func main() {
	game.Run()
}
