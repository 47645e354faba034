// models/population.go
package models

// PopulationClass keys the five support scores. Rebels is semantically
// inverted: a high rebel score means instability, not approval.
type PopulationClass string

const (
	ClassWorking PopulationClass = "working_class"
	ClassMiddle  PopulationClass = "middle_class"
	ClassHigh    PopulationClass = "high_class"
	ClassPoverty PopulationClass = "poverty_class"
	ClassRebels  PopulationClass = "rebels"
)

// PopularityDeltas is a signed change per class, applied with clamping.
type PopularityDeltas map[PopulationClass]int

// PopulationClasses holds the five bounded [0,100] support scores for a
// session. Every mutation path goes through Apply or the rebel-specific
// helpers so the clamps cannot be skipped.
type PopulationClasses struct {
	ID        string `json:"id" gorm:"primaryKey"`
	SessionID string `json:"session_id" gorm:"uniqueIndex;not null"`

	WorkingClass int `json:"working_class_popularity" gorm:"default:50"`
	MiddleClass  int `json:"middle_class_popularity" gorm:"default:50"`
	HighClass    int `json:"high_class_popularity" gorm:"default:50"`
	PovertyClass int `json:"poverty_class_popularity" gorm:"default:50"`
	Rebels       int `json:"rebels_popularity" gorm:"default:20"`

	Timestamps
}

// Two named presets: new sessions start with rebels high (the player has
// not earned legitimacy yet), prestige resets start them low.
func NewGamePopulation(sessionID string) PopulationClasses {
	return PopulationClasses{
		SessionID:    sessionID,
		WorkingClass: 60,
		MiddleClass:  55,
		HighClass:    70,
		PovertyClass: 40,
		Rebels:       80,
	}
}

func ResetPopulation() PopularitySnapshot {
	return PopularitySnapshot{
		WorkingClass: 60,
		MiddleClass:  55,
		HighClass:    70,
		PovertyClass: 40,
		Rebels:       20,
	}
}

// PopularitySnapshot is a plain value set used when overwriting scores.
type PopularitySnapshot struct {
	WorkingClass, MiddleClass, HighClass, PovertyClass, Rebels int
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampRebelScore applies the raised rebel floor: rebellion risk never
// fully disappears, so drift and attack adjustments stay within [10,90].
func ClampRebelScore(v int) int {
	if v < 10 {
		return 10
	}
	if v > 90 {
		return 90
	}
	return v
}

// Get returns the current score for a class.
func (p *PopulationClasses) Get(class PopulationClass) int {
	switch class {
	case ClassWorking:
		return p.WorkingClass
	case ClassMiddle:
		return p.MiddleClass
	case ClassHigh:
		return p.HighClass
	case ClassPoverty:
		return p.PovertyClass
	case ClassRebels:
		return p.Rebels
	}
	return 0
}

func (p *PopulationClasses) set(class PopulationClass, v int) {
	switch class {
	case ClassWorking:
		p.WorkingClass = v
	case ClassMiddle:
		p.MiddleClass = v
	case ClassHigh:
		p.HighClass = v
	case ClassPoverty:
		p.PovertyClass = v
	case ClassRebels:
		p.Rebels = v
	}
}

// Apply adds each delta to its class, clamping every result to [0,100].
// Unknown classes are ignored.
func (p *PopulationClasses) Apply(deltas PopularityDeltas) {
	for class, change := range deltas {
		p.set(class, clampScore(p.Get(class)+change))
	}
}

// AdjustRebels shifts the rebel score within the [10,90] band.
func (p *PopulationClasses) AdjustRebels(delta int) {
	p.Rebels = ClampRebelScore(p.Rebels + delta)
}

// MeanHappiness averages the four non-rebel scores.
func (p *PopulationClasses) MeanHappiness() float64 {
	return float64(p.WorkingClass+p.MiddleClass+p.HighClass+p.PovertyClass) / 4.0
}

// Overwrite replaces all five scores from a snapshot (used on reset).
func (p *PopulationClasses) Overwrite(s PopularitySnapshot) {
	p.WorkingClass = clampScore(s.WorkingClass)
	p.MiddleClass = clampScore(s.MiddleClass)
	p.HighClass = clampScore(s.HighClass)
	p.PovertyClass = clampScore(s.PovertyClass)
	p.Rebels = clampScore(s.Rebels)
}
