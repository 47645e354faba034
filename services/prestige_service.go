// services/prestige_service.go
package services

import (
	"fmt"
	"log"

	"nation-game-server/catalog"
	"nation-game-server/models"
	"nation-game-server/utils"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Token clamp: even a failed run pays out one token, and no run pays
// more than fifty.
const (
	minResetTokens = 1
	maxResetTokens = 50
)

// Prestige-reset session preset.
const (
	resetMoney    = 1000
	resetTapValue = 1
)

type PrestigeService struct {
	DB *gorm.DB
}

func NewPrestigeService(db *gorm.DB) *PrestigeService {
	return &PrestigeService{DB: db}
}

// CalculateTokens prices a run for prestige reset. Nil population or
// military count as zero state. Clamped to [1, 50].
func CalculateTokens(session *models.GameSession, pop *models.PopulationClasses, mil *models.Military) int64 {
	tokens := session.Money/100000 + session.TotalTaps/5000 + int64(session.CurrentYear/10)

	if pop != nil {
		mean := pop.MeanHappiness()
		if mean > 70 {
			tokens += 5
		}
		if mean > 85 {
			tokens += 10
		}
	}

	if mil != nil && mil.TotalStrength > 500 {
		tokens += mil.TotalStrength / 200
	}

	if tokens < minResetTokens {
		tokens = minResetTokens
	}
	if tokens > maxResetTokens {
		tokens = maxResetTokens
	}
	return tokens
}

type PrestigeView struct {
	Prestige      *models.Prestige                   `json:"prestige"`
	Upgrades      []models.PermanentUpgrade          `json:"owned_upgrades"`
	Shop          map[string]catalog.PrestigeUpgrade `json:"shop"`
	PreviewTokens int64                              `json:"preview_tokens"`
}

// Overview returns the ledger, the shop, and what a reset right now
// would pay.
func (s *PrestigeService) Overview(sessionID string) (*PrestigeView, error) {
	var view *PrestigeView
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		session, err := loadSession(tx, sessionID)
		if err != nil {
			return err
		}
		prestige, err := ensurePrestige(tx, sessionID)
		if err != nil {
			return err
		}
		pop, err := ensurePopulation(tx, sessionID)
		if err != nil {
			return err
		}
		mil, err := ensureMilitary(tx, sessionID)
		if err != nil {
			return err
		}
		owned, err := playerUpgrades(tx, session.PlayerID)
		if err != nil {
			return err
		}
		view = &PrestigeView{
			Prestige:      prestige,
			Upgrades:      owned,
			Shop:          catalog.PrestigeUpgrades,
			PreviewTokens: CalculateTokens(session, pop, mil),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

type ResetResult struct {
	TokensEarned int64               `json:"tokens_earned"`
	Prestige     *models.Prestige    `json:"prestige"`
	Session      *models.GameSession `json:"session"`
}

// Reset cashes the run in for tokens and rewinds the session to the
// reset preset. The session row and its identity survive; laws,
// alliances, and election history do not. Permanent upgrades are keyed
// by player and untouched.
func (s *PrestigeService) Reset(sessionID string) (*ResetResult, error) {
	var result *ResetResult
	var archiveKey string
	var archivePayload map[string]any

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		session, err := loadSession(tx, sessionID)
		if err != nil {
			return err
		}
		pop, err := ensurePopulation(tx, sessionID)
		if err != nil {
			return err
		}
		mil, err := ensureMilitary(tx, sessionID)
		if err != nil {
			return err
		}
		prestige, err := ensurePrestige(tx, sessionID)
		if err != nil {
			return err
		}

		tokens := CalculateTokens(session, pop, mil)

		var country models.Country
		if err := tx.Where("id = ?", session.CountryID).First(&country).Error; err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		// Snapshot the run before rewinding, for the optional archive.
		archiveKey = fmt.Sprintf("runs/%s/%s-reset-%d.json", session.PlayerID, slug.Make(country.Name), prestige.TotalResets+1)
		archivePayload = map[string]any{
			"session_id":   session.ID,
			"player_id":    session.PlayerID,
			"country":      country.Name,
			"final_money":  session.Money,
			"total_taps":   session.TotalTaps,
			"final_year":   session.CurrentYear,
			"tokens":       tokens,
			"reset_number": prestige.TotalResets + 1,
		}

		prestige.DiplomacyTokens += tokens
		prestige.TotalResets++
		prestige.LifetimeMoney += session.Money
		prestige.LifetimeTaps += session.TotalTaps
		prestige.EconomyMultiplier = 1.0
		prestige.MilitaryMultiplier = 1.0
		prestige.PopularityMultiplier = 1.0
		if err := tx.Save(prestige).Error; err != nil {
			return err
		}

		session.Money = resetMoney
		session.TotalTaps = 0
		session.CurrentYear = 1
		session.TapValue = resetTapValue
		if err := tx.Model(session).Updates(map[string]any{
			"money":        session.Money,
			"total_taps":   session.TotalTaps,
			"current_year": session.CurrentYear,
			"tap_value":    session.TapValue,
		}).Error; err != nil {
			return err
		}

		pop.Overwrite(models.ResetPopulation())
		if err := tx.Save(pop).Error; err != nil {
			return err
		}

		mil.Infantry, mil.Tanks, mil.AirForce, mil.Navy, mil.TotalStrength = 0, 0, 0, 0, 0
		if err := tx.Save(mil).Error; err != nil {
			return err
		}

		for _, m := range []any{&models.PendingLaw{}, &models.ActiveLaw{}, &models.Alliance{}, &models.Election{}} {
			if err := tx.Unscoped().Where("session_id = ?", sessionID).Delete(m).Error; err != nil {
				return err
			}
		}

		result = &ResetResult{TokensEarned: tokens, Prestige: prestige, Session: session}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("⭐ Prestige reset for session %s: %s tokens (reset #%d)", sessionID, humanize.Comma(result.TokensEarned), result.Prestige.TotalResets)

	// Archive upload is best-effort and outside the transaction: a dead
	// bucket must never block the reset.
	if err := utils.UploadRunArchive(archiveKey, archivePayload); err != nil {
		log.Printf("❌ Run archive upload failed: %v", err)
	}

	return result, nil
}

// Purchase buys a one-time permanent upgrade with diplomacy tokens. The
// upgrade binds to the player, not the session.
func (s *PrestigeService) Purchase(playerID, sessionID, upgradeKey string) (*models.PermanentUpgrade, error) {
	shopItem, ok := catalog.PrestigeUpgrades[upgradeKey]
	if !ok {
		return nil, ErrInvalidInput
	}

	var purchased *models.PermanentUpgrade
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PermanentUpgrade{}).
			Where("player_id = ? AND upgrade_type = ?", playerID, upgradeKey).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyExists
		}

		prestige, err := ensurePrestige(tx, sessionID)
		if err != nil {
			return err
		}
		if prestige.DiplomacyTokens < shopItem.Cost {
			return ErrInsufficientFunds
		}

		prestige.DiplomacyTokens -= shopItem.Cost
		if err := tx.Save(prestige).Error; err != nil {
			return err
		}

		purchased = &models.PermanentUpgrade{
			ID:          uuid.NewString(),
			PlayerID:    playerID,
			UpgradeType: upgradeKey,
			UpgradeName: shopItem.Name,
			BonusValue:  shopItem.Bonus,
		}
		return tx.Create(purchased).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("⭐ Upgrade purchased: %s by player %s (-%d tokens)", shopItem.Name, playerID, shopItem.Cost)
	return purchased, nil
}
