// models/law.go
package models

// LawEffects is the effect payload carried by a pending law: a
// multiplicative economy delta (e.g. -0.08 meaning ×0.92) and per-class
// popularity changes.
type LawEffects struct {
	Economy    float64          `json:"economy"`
	Popularity PopularityDeltas `json:"popularity,omitempty"`
}

// PendingLaw is a proposed law counting down its remaining taps.
// The effect payload is snapshotted at proposal time so a catalog edit
// cannot change a law mid-implementation.
type PendingLaw struct {
	ID        string `json:"id" gorm:"primaryKey"`
	SessionID string `json:"session_id" gorm:"index;not null"`

	LawKey         string     `json:"law_key" gorm:"index;not null"`
	LawName        string     `json:"law_name" gorm:"not null"`
	LawDescription string     `json:"law_description"`
	Effects        LawEffects `json:"effects" gorm:"serializer:json"`

	TapsRemaining int `json:"taps_remaining" gorm:"not null"`

	Timestamps
}

// ActiveLaw is an enacted law with ongoing effects. The economy effect
// keeps contributing to the tap-value multiplier chain until repealed;
// repeal reverses it by division, not re-subtraction.
type ActiveLaw struct {
	ID        string `json:"id" gorm:"primaryKey"`
	SessionID string `json:"session_id" gorm:"index;not null"`

	LawKey         string `json:"law_key" gorm:"index;not null"`
	LawName        string `json:"law_name" gorm:"not null"`
	LawDescription string `json:"law_description"`

	EconomyEffect     float64          `json:"economy_effect" gorm:"default:0"`
	PopularityEffects PopularityDeltas `json:"popularity_effects" gorm:"serializer:json"`
	EnactedYear       int              `json:"enacted_year"`

	Timestamps
}
