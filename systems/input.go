package systems

//go:generate go tool mockgen -destination=./mocks/input_mock.go -package=mocks . Input

// Input is the intent source the player is driven by. Each query reports
// held state and is sampled once per tick.
type Input interface {
	IsLeftPressed() bool
	IsRightPressed() bool
	IsJumpPressed() bool
	IsPunchPressed() bool
	IsRangedPressed() bool
}

// InputState is one tick's worth of sampled intent. It also satisfies Input,
// which makes it handy for scripted play.
type InputState struct {
	Left   bool
	Right  bool
	Jump   bool
	Punch  bool
	Ranged bool
}

func (s InputState) IsLeftPressed() bool   { return s.Left }
func (s InputState) IsRightPressed() bool  { return s.Right }
func (s InputState) IsJumpPressed() bool   { return s.Jump }
func (s InputState) IsPunchPressed() bool  { return s.Punch }
func (s InputState) IsRangedPressed() bool { return s.Ranged }

// SampleInput reads every intent from in exactly once. A nil source reads
// as no input.
func SampleInput(in Input) InputState {
	if in == nil {
		return InputState{}
	}
	return InputState{
		Left:   in.IsLeftPressed(),
		Right:  in.IsRightPressed(),
		Jump:   in.IsJumpPressed(),
		Punch:  in.IsPunchPressed(),
		Ranged: in.IsRangedPressed(),
	}
}
