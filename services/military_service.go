// services/military_service.go
package services

import (
	"log"
	"strings"

	"nation-game-server/catalog"
	"nation-game-server/models"

	"gorm.io/gorm"
)

type MilitaryService struct {
	DB *gorm.DB
}

func NewMilitaryService(db *gorm.DB) *MilitaryService {
	return &MilitaryService{DB: db}
}

type RecruitResult struct {
	Military   *models.Military          `json:"military"`
	Population *models.PopulationClasses `json:"population"`
	Money      int64                     `json:"money"`
	TotalCost  int64                     `json:"total_cost"`
}

// Recruit buys quantity units of one type: money down, counts and cached
// strength up. Militarization plays differently across classes — workers
// resent the spending, the high class approves.
func (s *MilitaryService) Recruit(sessionID, unitType string, quantity int) (*RecruitResult, error) {
	if quantity < 1 {
		return nil, ErrInvalidInput
	}

	unitKey := strings.ToUpper(strings.TrimSpace(unitType))
	unit, ok := catalog.Units[unitKey]
	if !ok {
		return nil, ErrInvalidInput
	}
	totalCost := unit.Cost * int64(quantity)

	var result *RecruitResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		session, err := loadSession(tx, sessionID)
		if err != nil {
			return err
		}
		if session.Money < totalCost {
			return ErrInsufficientFunds
		}

		mil, err := ensureMilitary(tx, sessionID)
		if err != nil {
			return err
		}

		switch unitKey {
		case catalog.UnitInfantry:
			mil.Infantry += int64(quantity)
		case catalog.UnitTanks:
			mil.Tanks += int64(quantity)
		case catalog.UnitAirForce:
			mil.AirForce += int64(quantity)
		case catalog.UnitNavy:
			mil.Navy += int64(quantity)
		}
		mil.TotalStrength += unit.Strength * int64(quantity)
		if err := tx.Save(mil).Error; err != nil {
			return err
		}

		session.Money -= totalCost
		if err := tx.Model(session).Update("money", session.Money).Error; err != nil {
			return err
		}

		pop, err := ensurePopulation(tx, sessionID)
		if err != nil {
			return err
		}
		pop.Apply(models.PopularityDeltas{
			models.ClassWorking: -2,
			models.ClassHigh:    5,
		})
		if err := tx.Save(pop).Error; err != nil {
			return err
		}

		result = &RecruitResult{
			Military:   mil,
			Population: pop,
			Money:      session.Money,
			TotalCost:  totalCost,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("🪖 Recruited %d× %s for session %s (-$%d, strength %d)", quantity, unit.Name, sessionID, totalCost, result.Military.TotalStrength)
	return result, nil
}

// Overview returns the session's military plus the unit catalog.
func (s *MilitaryService) Overview(sessionID string) (*models.Military, error) {
	var mil *models.Military
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := loadSession(tx, sessionID); err != nil {
			return err
		}
		m, err := ensureMilitary(tx, sessionID)
		mil = m
		return err
	})
	if err != nil {
		return nil, err
	}
	return mil, nil
}
