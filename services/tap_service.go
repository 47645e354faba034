// services/tap_service.go
package services

import (
	"log"

	"nation-game-server/catalog"
	"nation-game-server/models"

	"github.com/dustin/go-humanize"
	"gorm.io/gorm"
)

// MaxTapBatch bounds one resolution request. Clients accumulate taps
// locally and flush in batches; anything past this is a malformed or
// hostile request, not a fast player.
const MaxTapBatch = 10000

type TapService struct {
	DB   *gorm.DB
	Rand Rand
	Laws *LawService
}

func NewTapService(db *gorm.DB, laws *LawService) *TapService {
	return &TapService{DB: db, Rand: NewRand(), Laws: laws}
}

// TapResult is the full post-batch snapshot the client renders from.
// Everything the batch changed is echoed back so the client never has to
// follow up with reads.
type TapResult struct {
	MoneyEarned       int64                     `json:"money_earned"`
	EffectiveTapValue int64                     `json:"effective_tap_value"`
	TotalTaps         int64                     `json:"total_taps"`
	CurrentYear       int                       `json:"current_year"`
	YearChanged       bool                      `json:"year_changed"`
	ElectionDue       bool                      `json:"election_due"`
	EnactedLaws       []string                  `json:"enacted_laws,omitempty"`
	Event             *TriggeredEvent           `json:"event,omitempty"`
	Donation          *TriggeredEvent           `json:"donation,omitempty"`
	Session           *models.GameSession       `json:"session"`
	Population        *models.PopulationClasses `json:"population"`
	Military          *models.Military          `json:"military"`
	PendingLaws       []models.PendingLaw       `json:"pending_laws"`
}

// sessionModifiers assembles the modifier context for one session inside
// an open transaction. Satellite rows are lazily created.
func sessionModifiers(tx *gorm.DB, session *models.GameSession) (TapModifiers, *models.PopulationClasses, *models.Military, []models.PermanentUpgrade, error) {
	var mods TapModifiers

	var country models.Country
	if err := tx.Where("id = ?", session.CountryID).First(&country).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return mods, nil, nil, nil, err
		}
		country.EconomyBonus = 1.0
	}
	mods.CountryBonus = country.EconomyBonus

	prestige, err := ensurePrestige(tx, session.ID)
	if err != nil {
		return mods, nil, nil, nil, err
	}
	mods.PrestigeMultiplier = prestige.EconomyMultiplier

	var activeLaws []models.ActiveLaw
	if err := tx.Where("session_id = ?", session.ID).Find(&activeLaws).Error; err != nil {
		return mods, nil, nil, nil, err
	}
	for _, law := range activeLaws {
		if law.EconomyEffect != 0 {
			mods.LawEffects = append(mods.LawEffects, law.EconomyEffect)
		}
	}

	var alliances []models.Alliance
	if err := tx.Where("session_id = ? AND is_active = ?", session.ID, true).Find(&alliances).Error; err != nil {
		return mods, nil, nil, nil, err
	}
	for _, a := range alliances {
		if a.IncomeBonus != 0 {
			mods.AllianceBonuses = append(mods.AllianceBonuses, a.IncomeBonus)
		}
	}

	upgrades, err := playerUpgrades(tx, session.PlayerID)
	if err != nil {
		return mods, nil, nil, nil, err
	}
	for _, u := range upgrades {
		if kind, ok := catalog.UpgradeKindOf(u.UpgradeType); ok && kind == catalog.UpgradeIncome {
			mods.UpgradeBonuses = append(mods.UpgradeBonuses, u.BonusValue)
		}
	}

	military, err := ensureMilitary(tx, session.ID)
	if err != nil {
		return mods, nil, nil, nil, err
	}
	mods.MilitaryStrength = military.TotalStrength

	population, err := ensurePopulation(tx, session.ID)
	if err != nil {
		return mods, nil, nil, nil, err
	}

	return mods, population, military, upgrades, nil
}

// ResolveTap settles one tap batch atomically: income, clock advance, law
// countdown, and the stochastic engine all commit or roll back together.
func (s *TapService) ResolveTap(sessionID string, taps int) (*TapResult, error) {
	if taps < 1 || taps > MaxTapBatch {
		return nil, ErrInvalidInput
	}

	var result *TapResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		session, err := loadSession(tx, sessionID)
		if err != nil {
			return err
		}

		mods, population, military, upgrades, err := sessionModifiers(tx, session)
		if err != nil {
			return err
		}

		effective := EffectiveTapValue(session.TapValue, mods)
		moneyEarned := int64(taps) * effective

		newTotal := session.TotalTaps + int64(taps)
		newYear := YearForTaps(newTotal)
		yearChanged := newYear != session.CurrentYear

		session.Money += moneyEarned
		session.TotalTaps = newTotal
		session.CurrentYear = newYear
		if err := tx.Model(session).Updates(map[string]any{
			"money":        session.Money,
			"total_taps":   session.TotalTaps,
			"current_year": session.CurrentYear,
		}).Error; err != nil {
			return err
		}

		enacted, err := s.Laws.progressPending(tx, session, taps, upgrades)
		if err != nil {
			return err
		}

		result = &TapResult{
			MoneyEarned:       moneyEarned,
			EffectiveTapValue: effective,
			TotalTaps:         newTotal,
			CurrentYear:       newYear,
			YearChanged:       yearChanged,
			ElectionDue:       ElectionDue(newTotal),
			EnactedLaws:       enacted,
		}

		// The donation trial runs on every batch, independent of the
		// event cycle; only the exclusive-branch engine is gated on the
		// boundary check.
		if donation := rollDonation(s.Rand); donation != nil {
			session.Money += donation.MoneyDelta
			if err := tx.Model(session).Update("money", session.Money).Error; err != nil {
				return err
			}
			log.Printf("💰 Donation for session %s: %s", sessionID, humanize.Comma(donation.MoneyDelta))
			result.Donation = donation
		}

		if eventBoundaryCrossed(newTotal, taps) {
			event, err := runEventCycle(tx, s.Rand, session, population, military, upgrades)
			if err != nil {
				return err
			}
			result.Event = event
		}

		result.Session = session
		result.Population = population
		result.Military = military
		return tx.Where("session_id = ?", sessionID).Find(&result.PendingLaws).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
