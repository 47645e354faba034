// models/country.go
package models

// Country is static reference data seeded from the catalog at startup.
// EconomyBonus scales starting money, starting tap value, and the first
// multiplicative stage of every tap batch.
type Country struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"uniqueIndex;not null"`
	FlagEmoji string `json:"flag_emoji"`
	Region    string `json:"region"`

	EconomyBonus   float64 `json:"economy_bonus" gorm:"default:1"`
	MilitaryBonus  float64 `json:"military_bonus" gorm:"default:1"`
	StabilityBonus float64 `json:"stability_bonus" gorm:"default:1"`

	Description string `json:"description"`

	Timestamps
}
