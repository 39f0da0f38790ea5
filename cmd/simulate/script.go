package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/slimebrawl/systems"
)

// script produces the input for a given tick.
type script func(tick uint64) systems.InputState

var scripts = map[string]func(seed uint64) script{
	"idle": func(uint64) script {
		return func(uint64) systems.InputState { return systems.InputState{} }
	},
	// run right, hop every half second and mix in both attacks
	"runner": func(uint64) script {
		return func(tick uint64) systems.InputState {
			return systems.InputState{
				Right:  tick%180 < 150,
				Left:   tick%180 >= 165,
				Jump:   tick%30 < 4,
				Punch:  tick%20 == 0,
				Ranged: tick%45 == 0,
			}
		}
	},
	"random": func(seed uint64) script {
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		var held systems.InputState
		return func(tick uint64) systems.InputState {
			if tick%15 == 0 {
				held = systems.InputState{
					Left:   rng.IntN(3) == 0,
					Right:  rng.IntN(2) == 0,
					Jump:   rng.IntN(4) == 0,
					Punch:  rng.IntN(5) == 0,
					Ranged: rng.IntN(6) == 0,
				}
			}
			return held
		}
	},
}

func newScript(name string, seed uint64) (script, error) {
	mk, ok := scripts[name]
	if !ok {
		return nil, fmt.Errorf("unknown script %q", name)
	}
	return mk(seed), nil
}

// scriptInput adapts a script to systems.Input for the game's current tick.
type scriptInput struct {
	s     script
	state systems.InputState
}

func (in *scriptInput) advance(tick uint64) { in.state = in.s(tick) }

func (in *scriptInput) IsLeftPressed() bool   { return in.state.Left }
func (in *scriptInput) IsRightPressed() bool  { return in.state.Right }
func (in *scriptInput) IsJumpPressed() bool   { return in.state.Jump }
func (in *scriptInput) IsPunchPressed() bool  { return in.state.Punch }
func (in *scriptInput) IsRangedPressed() bool { return in.state.Ranged }
