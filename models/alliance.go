// models/alliance.go
package models

// Alliance is a formed diplomatic relationship. Income bonuses from all
// active alliances are summed, +1, then applied as one multiplier in the
// tap-value chain.
type Alliance struct {
	ID        string `json:"id" gorm:"primaryKey"`
	SessionID string `json:"session_id" gorm:"index;not null"`

	AllyName          string  `json:"ally_name" gorm:"not null"`
	RelationshipLevel int     `json:"relationship_level" gorm:"default:50"`
	IncomeBonus       float64 `json:"income_bonus" gorm:"default:0"`
	MilitaryBonus     float64 `json:"military_bonus" gorm:"default:0"`
	TributeCost       int64   `json:"tribute_cost" gorm:"default:0"` // entry cost already paid
	IsActive          bool    `json:"is_active" gorm:"default:true"`

	Timestamps
}
