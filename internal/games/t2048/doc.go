// Package t2048 implements the 2048 sliding-tile puzzle.
//
// The package is split along the game's moving parts:
//
//   - logic.go: pure grid math (row collapse, orientation, move detection)
//   - state.go: the Idle/Animating/GameOver state machine that owns the grid
//   - animation.go: the per-tick animator for slides and spawns
//   - input.go: key and swipe mapping, gated on the Idle phase
//   - game.go, render.go: the tick-driven glue and the screen renderer
package t2048
