// models/session.go
package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SessionStatusActive    = "active"
	SessionStatusAbandoned = "abandoned"
)

// GameSession is one playthrough. TapValue is the *stored* base value —
// laws and upgrades mutate it in place; the effective per-tap yield is
// recomputed from the full modifier chain on every batch.
type GameSession struct {
	ID        string `json:"id" gorm:"primaryKey"`
	PlayerID  string `json:"player_id" gorm:"index;not null"` // links to profile service
	CountryID string `json:"country_id" gorm:"index;not null"`

	Money       int64 `json:"money" gorm:"default:0"`
	TapValue    int64 `json:"tap_value" gorm:"default:1"`
	TotalTaps   int64 `json:"total_taps" gorm:"default:0"`
	CurrentYear int   `json:"current_year" gorm:"default:1"`

	Status string `json:"status" gorm:"default:'active'"` // active | abandoned

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
