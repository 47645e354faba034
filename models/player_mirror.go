// models/player_mirror.go
package models

import "time"

// PlayerMirror is a read-only local copy of profile-service players,
// refreshed by the sync worker. Used for display names in election and
// prestige messages; the game never writes back to the profile service.
type PlayerMirror struct {
	PlayerID    string `json:"player_id" gorm:"primaryKey"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`

	SyncedAt  time.Time `json:"synced_at"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
