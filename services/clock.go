// services/clock.go
package services

// Progression is tap-driven only: time advances as a function of the tap
// counter, never wall-clock. No taps means no state change.
const (
	TapsPerYear     = 500
	TapsPerElection = 2500
	// EventCheckCycle is the tap interval at which the stochastic engine
	// becomes eligible to fire. Tunable game-balance parameter.
	EventCheckCycle = 75
)

// YearForTaps maps a total tap count to the in-game year (starts at 1).
func YearForTaps(totalTaps int64) int {
	return int(totalTaps/TapsPerYear) + 1
}

// ElectionDue reports whether an election triggers at this tap total.
// Elections fire only exactly at multiples of 2500 — a batch that lands
// past a boundary without hitting it skips that election entirely.
func ElectionDue(totalTaps int64) bool {
	return totalTaps >= TapsPerElection && totalTaps%TapsPerElection == 0
}

// eventBoundaryCrossed reports whether an event-check boundary fell
// within a batch of rawTaps ending at newTotal.
func eventBoundaryCrossed(newTotal int64, rawTaps int) bool {
	return newTotal%EventCheckCycle < int64(rawTaps)
}
