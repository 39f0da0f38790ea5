package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Action is a logical client action.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionJump
	ActionPunch
	ActionRanged
	ActionPause
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

// Binding is the set of keys and standard gamepad buttons bound to an action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// DefaultBindings maps every action to its keyboard and gamepad inputs.
var DefaultBindings = [ActionCount]Binding{
	ActionLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionRight: {
		Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionJump: {
		Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp, ebiten.KeySpace},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	ActionPunch: {
		Keys: []ebiten.Key{ebiten.KeyJ},
		// X / Square button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	ActionRanged: {
		Keys: []ebiten.Key{ebiten.KeyK},
		// B / Circle button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	ActionRestart: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
}

const analogDeadzone = 0.25

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// KeyboardInput polls the keyboard and any standard-layout gamepads once per
// frame. It satisfies systems.Input.
type KeyboardInput struct {
	bindings [ActionCount]Binding
	current  [ActionCount]bool
	previous [ActionCount]bool
}

func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{bindings: DefaultBindings}
}

// Poll samples every binding. Must run before the game update each frame.
func (k *KeyboardInput) Poll() {
	k.previous = k.current
	k.current = [ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, binding := range k.bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				k.current[action] = true
			}
		}
		for _, id := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					k.current[action] = true
				}
			}
		}
	}

	// Left stick
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -analogDeadzone {
			k.current[ActionLeft] = true
		}
		if x > analogDeadzone {
			k.current[ActionRight] = true
		}
	}
}

func (k *KeyboardInput) Pressed(a Action) bool { return k.current[a] }

// JustPressed reports whether a went down on this frame.
func (k *KeyboardInput) JustPressed(a Action) bool {
	return k.current[a] && !k.previous[a]
}

func (k *KeyboardInput) IsLeftPressed() bool   { return k.current[ActionLeft] }
func (k *KeyboardInput) IsRightPressed() bool  { return k.current[ActionRight] }
func (k *KeyboardInput) IsJumpPressed() bool   { return k.current[ActionJump] }
func (k *KeyboardInput) IsPunchPressed() bool  { return k.current[ActionPunch] }
func (k *KeyboardInput) IsRangedPressed() bool { return k.current[ActionRanged] }
