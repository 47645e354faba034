// models/prestige.go
package models

// Prestige tracks the durable meta-currency and run-scoped multipliers
// for a session lineage. The row survives prestige resets; the reset
// recomputes the run multipliers, not the token balance.
type Prestige struct {
	ID        string `json:"id" gorm:"primaryKey"`
	SessionID string `json:"session_id" gorm:"uniqueIndex;not null"`

	PrestigeLevel         int   `json:"prestige_level" gorm:"default:0"`
	GlobalInfluencePoints int64 `json:"global_influence_points" gorm:"default:0"`

	// Run-scoped multipliers, compounded by election victories.
	EconomyMultiplier    float64 `json:"economy_multiplier" gorm:"default:1"`
	MilitaryMultiplier   float64 `json:"military_multiplier" gorm:"default:1"`
	PopularityMultiplier float64 `json:"popularity_multiplier" gorm:"default:1"`

	DiplomacyTokens int64 `json:"diplomacy_tokens" gorm:"default:0"`
	TotalResets     int   `json:"total_resets" gorm:"default:0"`
	LifetimeMoney   int64 `json:"lifetime_money" gorm:"default:0"`
	LifetimeTaps    int64 `json:"lifetime_taps" gorm:"default:0"`

	Timestamps
}

// PermanentUpgrade is a one-time, non-stackable meta-purchase keyed by
// player identity — it outlives any single session and every reset.
type PermanentUpgrade struct {
	ID       string `json:"id" gorm:"primaryKey"`
	PlayerID string `json:"player_id" gorm:"index:idx_player_upgrade,unique;not null"`

	UpgradeType string  `json:"upgrade_type" gorm:"index:idx_player_upgrade,unique;not null"`
	UpgradeName string  `json:"upgrade_name"`
	BonusValue  float64 `json:"bonus_value" gorm:"default:0"`

	Timestamps
}

// Election is a history row, one per resolved election.
type Election struct {
	ID        string `json:"id" gorm:"primaryKey"`
	SessionID string `json:"session_id" gorm:"index;not null"`

	ElectionYear    int            `json:"election_year"`
	TotalPopularity int            `json:"total_popularity"` // win percentage at the polls
	Won             bool           `json:"won"`
	BonusApplied    map[string]any `json:"bonus_applied" gorm:"serializer:json"`

	Timestamps
}
