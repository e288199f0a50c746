package game

import "time"

// Config holds the timing parameters of the turn state machine. Every delay
// runs through the scheduler so tests can drive the machine without sleeping.
type Config struct {
	// Dice roll animation
	RollTicks        int
	RollTickInterval time.Duration

	// Pause between landing on a space and opening its action
	SpaceActionDelay time.Duration

	// Pause before a special event's effect text becomes visible
	EffectRevealDelay time.Duration

	// Pause between a winning move / winning answer and the game ending
	VictoryDelayMove   time.Duration
	VictoryDelayAnswer time.Duration
}

// DefaultConfig returns the standard pacing
func DefaultConfig() Config {
	return Config{
		RollTicks:          10,
		RollTickInterval:   100 * time.Millisecond,
		SpaceActionDelay:   time.Second,
		EffectRevealDelay:  1500 * time.Millisecond,
		VictoryDelayMove:   2 * time.Second,
		VictoryDelayAnswer: time.Second,
	}
}
