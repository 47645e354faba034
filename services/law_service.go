// services/law_service.go
package services

import (
	"log"
	"math"

	"nation-game-server/catalog"
	"nation-game-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LawService struct {
	DB *gorm.DB
}

func NewLawService(db *gorm.DB) *LawService {
	return &LawService{DB: db}
}

// LawListing partitions the catalog for one session: laws counting down,
// laws in force, and laws still available to propose.
type LawListing struct {
	Pending   []models.PendingLaw `json:"pending_laws"`
	Active    []models.ActiveLaw  `json:"active_laws"`
	Available []AvailableLaw      `json:"available_laws"`
}

type AvailableLaw struct {
	ID string `json:"id"`
	catalog.Law
}

func (s *LawService) List(sessionID string) (*LawListing, error) {
	if _, err := loadSession(s.DB, sessionID); err != nil {
		return nil, err
	}

	var pending []models.PendingLaw
	if err := s.DB.Where("session_id = ?", sessionID).
		Order("created_at DESC").Find(&pending).Error; err != nil {
		return nil, err
	}

	var active []models.ActiveLaw
	if err := s.DB.Where("session_id = ?", sessionID).
		Order("enacted_year DESC").Find(&active).Error; err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(pending)+len(active))
	for _, l := range pending {
		taken[l.LawKey] = true
	}
	for _, l := range active {
		taken[l.LawKey] = true
	}

	available := make([]AvailableLaw, 0, len(catalog.Laws))
	for key, law := range catalog.Laws {
		if !taken[key] {
			available = append(available, AvailableLaw{ID: key, Law: law})
		}
	}

	return &LawListing{Pending: pending, Active: active, Available: available}, nil
}

// Propose creates a pending law counting down from the catalog's
// tapsRequired. The effect payload is snapshotted onto the row.
func (s *LawService) Propose(sessionID, lawKey string) (*models.PendingLaw, error) {
	law, ok := catalog.LawByKey(lawKey)
	if !ok {
		return nil, ErrInvalidInput
	}

	var pending *models.PendingLaw
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := loadSession(tx, sessionID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.PendingLaw{}).
			Where("session_id = ? AND law_key = ?", sessionID, lawKey).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := tx.Model(&models.ActiveLaw{}).
				Where("session_id = ? AND law_key = ?", sessionID, lawKey).
				Count(&count).Error; err != nil {
				return err
			}
		}
		if count > 0 {
			return ErrAlreadyExists
		}

		pending = &models.PendingLaw{
			ID:             uuid.NewString(),
			SessionID:      sessionID,
			LawKey:         lawKey,
			LawName:        law.Name,
			LawDescription: law.Description,
			Effects:        law.Effects,
			TapsRemaining:  law.TapsRequired,
		}
		return tx.Create(pending).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("📜 Law proposed: %s (%d taps to implement) for session %s", law.Name, law.TapsRequired, sessionID)
	return pending, nil
}

// Cancel deletes a pending law. No economic side effect — the law never
// took force.
func (s *LawService) Cancel(sessionID, lawID string) error {
	res := s.DB.Where("id = ? AND session_id = ?", lawID, sessionID).
		Delete(&models.PendingLaw{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Repeal removes an active law and reverses its economy effect by
// dividing the stored tap value by (1+effect). Division, not
// re-subtraction: repeated enact/repeal cycles still drift the tap value
// by truncation, which is accepted behavior.
func (s *LawService) Repeal(sessionID, lawID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var law models.ActiveLaw
		if err := tx.Where("id = ? AND session_id = ?", lawID, sessionID).
			First(&law).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Delete(&law).Error; err != nil {
			return err
		}

		if law.EconomyEffect != 0 {
			session, err := loadSession(tx, sessionID)
			if err != nil {
				return err
			}
			newTap := int64(math.Floor(float64(session.TapValue) / (1 + law.EconomyEffect)))
			if newTap < 1 {
				newTap = 1
			}
			if err := tx.Model(session).Update("tap_value", newTap).Error; err != nil {
				return err
			}
			log.Printf("📜 Repealed %s: tap value %d -> %d", law.LawName, session.TapValue, newTap)
		}
		return nil
	})
}

// Decide resolves a council vote on a suggested law: approval enacts it
// immediately, rejection costs a small working/middle popularity penalty.
func (s *LawService) Decide(sessionID, lawKey string, approve bool) error {
	law, ok := catalog.LawByKey(lawKey)
	if !ok {
		return ErrInvalidInput
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		session, err := loadSession(tx, sessionID)
		if err != nil {
			return err
		}

		pop, err := ensurePopulation(tx, sessionID)
		if err != nil {
			return err
		}

		if !approve {
			pop.Apply(models.PopularityDeltas{
				models.ClassWorking: -2,
				models.ClassMiddle:  -1,
			})
			return tx.Save(pop).Error
		}

		var count int64
		if err := tx.Model(&models.ActiveLaw{}).
			Where("session_id = ? AND law_key = ?", sessionID, lawKey).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyExists
		}

		active := models.ActiveLaw{
			ID:                uuid.NewString(),
			SessionID:         sessionID,
			LawKey:            lawKey,
			LawName:           law.Name,
			LawDescription:    law.Description,
			EconomyEffect:     law.Effects.Economy,
			PopularityEffects: law.Effects.Popularity,
			EnactedYear:       session.CurrentYear,
		}
		if err := tx.Create(&active).Error; err != nil {
			return err
		}

		pop.Apply(law.Effects.Popularity)
		if err := tx.Save(pop).Error; err != nil {
			return err
		}

		if law.Effects.Economy != 0 {
			session.TapValue = applyEconomyEffect(session.TapValue, law.Effects.Economy)
			if err := tx.Model(session).Update("tap_value", session.TapValue).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// applyEconomyEffect folds one law's economy delta into the stored base
// tap value: multiply, truncate, never below 1.
func applyEconomyEffect(tapValue int64, effect float64) int64 {
	v := int64(math.Floor(float64(tapValue) * (1 + effect)))
	if v < 1 {
		v = 1
	}
	return v
}

// fasterLawsBonus finds the faster-laws permanent upgrade, if purchased.
func fasterLawsBonus(upgrades []models.PermanentUpgrade) float64 {
	for _, u := range upgrades {
		if kind, ok := catalog.UpgradeKindOf(u.UpgradeType); ok && kind == catalog.UpgradeFasterLaws {
			return u.BonusValue
		}
	}
	return 0
}

// progressPending advances every pending law by the upgrade-adjusted
// batch size and enacts any that hit exactly zero. Runs inside the tap
// batch's transaction; session.TapValue is kept current across multiple
// enactments in the same tick.
func (s *LawService) progressPending(tx *gorm.DB, session *models.GameSession, taps int, upgrades []models.PermanentUpgrade) ([]string, error) {
	progressMultiplier := 1 + fasterLawsBonus(upgrades)
	effectiveTaps := int(math.Ceil(float64(taps) * progressMultiplier))

	var pending []models.PendingLaw
	if err := tx.Where("session_id = ?", session.ID).Find(&pending).Error; err != nil {
		return nil, err
	}

	var enacted []string
	for _, law := range pending {
		remaining := law.TapsRemaining - effectiveTaps
		if remaining < 0 {
			remaining = 0
		}

		if remaining > 0 {
			if err := tx.Model(&law).Update("taps_remaining", remaining).Error; err != nil {
				return nil, err
			}
			continue
		}

		// Law reaches zero: enact atomically within this transaction.
		active := models.ActiveLaw{
			ID:                uuid.NewString(),
			SessionID:         session.ID,
			LawKey:            law.LawKey,
			LawName:           law.LawName,
			LawDescription:    law.LawDescription,
			EconomyEffect:     law.Effects.Economy,
			PopularityEffects: law.Effects.Popularity,
			EnactedYear:       session.CurrentYear,
		}
		if err := tx.Create(&active).Error; err != nil {
			return nil, err
		}

		if law.Effects.Economy != 0 {
			session.TapValue = applyEconomyEffect(session.TapValue, law.Effects.Economy)
			if err := tx.Model(&models.GameSession{}).Where("id = ?", session.ID).
				Update("tap_value", session.TapValue).Error; err != nil {
				return nil, err
			}
		}

		if len(law.Effects.Popularity) > 0 {
			pop, err := ensurePopulation(tx, session.ID)
			if err != nil {
				return nil, err
			}
			pop.Apply(law.Effects.Popularity)
			if err := tx.Save(pop).Error; err != nil {
				return nil, err
			}
		}

		if err := tx.Delete(&models.PendingLaw{}, "id = ?", law.ID).Error; err != nil {
			return nil, err
		}

		log.Printf("📜 Enacted law: %s (year %d)", law.LawName, session.CurrentYear)
		enacted = append(enacted, law.LawName)
	}

	return enacted, nil
}
