// models/military.go
package models

// Military is one row per session. TotalStrength is the cached sum of
// unit count × unit base strength across recruitments, reduced by rebel
// attacks; it must never go negative.
type Military struct {
	ID        string `json:"id" gorm:"primaryKey"`
	SessionID string `json:"session_id" gorm:"uniqueIndex;not null"`

	Infantry int64 `json:"infantry" gorm:"default:0"`
	Tanks    int64 `json:"tanks" gorm:"default:0"`
	AirForce int64 `json:"air_force" gorm:"default:0"`
	Navy     int64 `json:"navy" gorm:"default:0"`

	TotalStrength int64 `json:"total_strength" gorm:"default:0"`

	Timestamps
}

// ReduceStrength subtracts up to loss from the cached strength and returns
// the amount actually removed.
func (m *Military) ReduceStrength(loss int64) int64 {
	if loss > m.TotalStrength {
		loss = m.TotalStrength
	}
	if loss < 0 {
		loss = 0
	}
	m.TotalStrength -= loss
	return loss
}
