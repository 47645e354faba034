// services/diplomacy_service.go
package services

import (
	"log"
	"math"
	"strings"

	"nation-game-server/catalog"
	"nation-game-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiplomacyService struct {
	DB *gorm.DB
}

func NewDiplomacyService(db *gorm.DB) *DiplomacyService {
	return &DiplomacyService{DB: db}
}

type AllianceResult struct {
	Alliance   *models.Alliance          `json:"alliance"`
	Population *models.PopulationClasses `json:"population"`
	Money      int64                     `json:"money"`
	CostPaid   int64                     `json:"cost_paid"`
}

// allianceCost applies the diplomatic-master discount, if purchased.
func allianceCost(base int64, upgrades []models.PermanentUpgrade) int64 {
	for _, u := range upgrades {
		if kind, ok := catalog.UpgradeKindOf(u.UpgradeType); ok && kind == catalog.UpgradeDiplomaticMaster {
			return int64(math.Floor(float64(base) * (1 - u.BonusValue)))
		}
	}
	return base
}

// Form signs one diplomatic agreement with a named ally. The entry cost
// is paid up front; bonuses flow into every subsequent tap batch.
func (s *DiplomacyService) Form(sessionID, actionKey, allyName string) (*AllianceResult, error) {
	key := strings.ToUpper(strings.TrimSpace(actionKey))
	action, ok := catalog.DiplomaticActions[key]
	if !ok {
		return nil, ErrInvalidInput
	}
	allyName = strings.TrimSpace(allyName)
	if allyName == "" {
		allyName = action.Name
	}

	var result *AllianceResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		session, err := loadSession(tx, sessionID)
		if err != nil {
			return err
		}

		// Duplication before funds: re-forming an existing alliance is a
		// conflict no matter what the treasury holds.
		var count int64
		if err := tx.Model(&models.Alliance{}).
			Where("session_id = ? AND ally_name = ? AND is_active = ?", sessionID, allyName, true).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyExists
		}

		upgrades, err := playerUpgrades(tx, session.PlayerID)
		if err != nil {
			return err
		}
		cost := allianceCost(action.Cost, upgrades)
		if session.Money < cost {
			return ErrInsufficientFunds
		}

		relationship := 50 + action.RelationshipBonus
		if relationship > 100 {
			relationship = 100
		}
		alliance := models.Alliance{
			ID:                uuid.NewString(),
			SessionID:         sessionID,
			AllyName:          allyName,
			RelationshipLevel: relationship,
			IncomeBonus:       action.IncomeBonus,
			MilitaryBonus:     action.MilitaryBonus,
			TributeCost:       cost,
			IsActive:          true,
		}
		if err := tx.Create(&alliance).Error; err != nil {
			return err
		}

		session.Money -= cost
		if err := tx.Model(session).Update("money", session.Money).Error; err != nil {
			return err
		}

		pop, err := ensurePopulation(tx, sessionID)
		if err != nil {
			return err
		}
		if action.PopularityBonus != 0 {
			pop.Apply(models.PopularityDeltas{
				models.ClassWorking: action.PopularityBonus,
				models.ClassMiddle:  action.PopularityBonus,
			})
			if err := tx.Save(pop).Error; err != nil {
				return err
			}
		}

		result = &AllianceResult{
			Alliance:   &alliance,
			Population: pop,
			Money:      session.Money,
			CostPaid:   cost,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("🤝 Alliance formed: %s with %s for session %s (-$%d)", action.Name, allyName, sessionID, result.CostPaid)
	return result, nil
}

// List returns the session's active alliances.
func (s *DiplomacyService) List(sessionID string) ([]models.Alliance, error) {
	if _, err := loadSession(s.DB, sessionID); err != nil {
		return nil, err
	}
	var alliances []models.Alliance
	err := s.DB.Where("session_id = ? AND is_active = ?", sessionID, true).
		Order("created_at DESC").Find(&alliances).Error
	if err != nil {
		return nil, err
	}
	return alliances, nil
}

// Dissolve deactivates an alliance. No refund: the tribute bought the
// bonuses already collected.
func (s *DiplomacyService) Dissolve(sessionID, allianceID string) error {
	res := s.DB.Model(&models.Alliance{}).
		Where("id = ? AND session_id = ? AND is_active = ?", allianceID, sessionID, true).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
