package components

// Countdown is a frame counter that ticks toward zero and stops there.
type Countdown int

// Tick decrements the counter, never below zero.
func (c *Countdown) Tick() {
	if *c > 0 {
		*c--
	}
}

// Active reports whether frames remain.
func (c Countdown) Active() bool { return c > 0 }

// Start sets the counter, treating negative values as zero.
func (c *Countdown) Start(frames int) {
	if frames < 0 {
		frames = 0
	}
	*c = Countdown(frames)
}
