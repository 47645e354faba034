// services/satellites.go
package services

import (
	"nation-game-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Missing satellite rows are "zero state", lazily created on first
// mutation. These helpers are the single upsert path for that pattern.

func ensurePopulation(tx *gorm.DB, sessionID string) (*models.PopulationClasses, error) {
	var pop models.PopulationClasses
	err := tx.Where("session_id = ?", sessionID).First(&pop).Error
	if err == gorm.ErrRecordNotFound {
		pop = models.PopulationClasses{
			ID:           uuid.NewString(),
			SessionID:    sessionID,
			WorkingClass: 50,
			MiddleClass:  50,
			HighClass:    50,
			PovertyClass: 50,
			Rebels:       20,
		}
		if err := tx.Create(&pop).Error; err != nil {
			return nil, err
		}
		return &pop, nil
	}
	if err != nil {
		return nil, err
	}
	return &pop, nil
}

func ensureMilitary(tx *gorm.DB, sessionID string) (*models.Military, error) {
	var mil models.Military
	err := tx.Where("session_id = ?", sessionID).First(&mil).Error
	if err == gorm.ErrRecordNotFound {
		mil = models.Military{
			ID:        uuid.NewString(),
			SessionID: sessionID,
		}
		if err := tx.Create(&mil).Error; err != nil {
			return nil, err
		}
		return &mil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mil, nil
}

func ensurePrestige(tx *gorm.DB, sessionID string) (*models.Prestige, error) {
	var pr models.Prestige
	err := tx.Where("session_id = ?", sessionID).First(&pr).Error
	if err == gorm.ErrRecordNotFound {
		pr = models.Prestige{
			ID:                   uuid.NewString(),
			SessionID:            sessionID,
			EconomyMultiplier:    1.0,
			MilitaryMultiplier:   1.0,
			PopularityMultiplier: 1.0,
		}
		if err := tx.Create(&pr).Error; err != nil {
			return nil, err
		}
		return &pr, nil
	}
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// loadSession fetches a session or reports ErrNotFound.
func loadSession(tx *gorm.DB, sessionID string) (*models.GameSession, error) {
	var session models.GameSession
	if err := tx.Where("id = ?", sessionID).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// playerUpgrades returns the player's permanent upgrades; an empty set
// is a valid zero state.
func playerUpgrades(tx *gorm.DB, playerID string) ([]models.PermanentUpgrade, error) {
	var upgrades []models.PermanentUpgrade
	if err := tx.Where("player_id = ?", playerID).Find(&upgrades).Error; err != nil {
		return nil, err
	}
	return upgrades, nil
}
