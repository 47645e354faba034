// services/session_service.go
package services

import (
	"log"
	"math"
	"time"

	"nation-game-server/catalog"
	"nation-game-server/models"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sessions idle this long get swept to abandoned by the background job.
const sessionIdleCutoff = 30 * 24 * time.Hour

const (
	baseStartingMoney = 5000
	baseTapValue      = 10
)

type SessionService struct {
	DB *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{DB: db}
}

// SessionView is the full readout for one session: everything the client
// dashboard needs in a single response.
type SessionView struct {
	Session           *models.GameSession       `json:"session"`
	Country           *models.Country           `json:"country"`
	Population        *models.PopulationClasses `json:"population"`
	Military          *models.Military          `json:"military"`
	Prestige          *models.Prestige          `json:"prestige"`
	PendingLaws       []models.PendingLaw       `json:"pending_laws"`
	ActiveLaws        []models.ActiveLaw        `json:"active_laws"`
	Alliances         []models.Alliance         `json:"alliances"`
	EffectiveTapValue int64                     `json:"effective_tap_value"`
	ElectionDue       bool                      `json:"election_due"`
}

// Create starts a new playthrough for the chosen country. Country
// bonuses and starting-money upgrades shape the opening position.
func (s *SessionService) Create(playerID, countryID string) (*SessionView, error) {
	var view *SessionView
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var country models.Country
		if err := tx.Where("id = ?", countryID).First(&country).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrInvalidInput
			}
			return err
		}

		upgrades, err := playerUpgrades(tx, playerID)
		if err != nil {
			return err
		}

		money := int64(math.Floor(baseStartingMoney * country.EconomyBonus))
		for _, u := range upgrades {
			if kind, ok := catalog.UpgradeKindOf(u.UpgradeType); ok && kind == catalog.UpgradeStartingMoney {
				money += int64(u.BonusValue)
			}
		}

		session := models.GameSession{
			ID:          uuid.NewString(),
			PlayerID:    playerID,
			CountryID:   country.ID,
			Money:       money,
			TapValue:    int64(math.Floor(baseTapValue * country.EconomyBonus)),
			CurrentYear: 1,
			Status:      models.SessionStatusActive,
		}
		if session.TapValue < 1 {
			session.TapValue = 1
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		pop := models.NewGamePopulation(session.ID)
		pop.ID = uuid.NewString()
		if err := tx.Create(&pop).Error; err != nil {
			return err
		}
		if _, err := ensureMilitary(tx, session.ID); err != nil {
			return err
		}
		if _, err := ensurePrestige(tx, session.ID); err != nil {
			return err
		}

		log.Printf("🎮 New session %s: %s for player %s ($%d)", session.ID, country.Name, playerID, money)
		view, err = loadView(tx, &session)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Latest returns the player's most recent active session, fully hydrated.
func (s *SessionService) Latest(playerID string) (*SessionView, error) {
	var session models.GameSession
	err := s.DB.Where("player_id = ? AND status = ?", playerID, models.SessionStatusActive).
		Order("created_at DESC").First(&session).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var view *SessionView
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		v, err := loadView(tx, &session)
		view = v
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Get returns one session by id, fully hydrated.
func (s *SessionService) Get(sessionID string) (*SessionView, error) {
	var view *SessionView
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		session, err := loadSession(tx, sessionID)
		if err != nil {
			return err
		}
		view, err = loadView(tx, session)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func loadView(tx *gorm.DB, session *models.GameSession) (*SessionView, error) {
	mods, population, military, _, err := sessionModifiers(tx, session)
	if err != nil {
		return nil, err
	}

	var country models.Country
	if err := tx.Where("id = ?", session.CountryID).First(&country).Error; err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	prestige, err := ensurePrestige(tx, session.ID)
	if err != nil {
		return nil, err
	}

	view := &SessionView{
		Session:           session,
		Country:           &country,
		Population:        population,
		Military:          military,
		Prestige:          prestige,
		EffectiveTapValue: EffectiveTapValue(session.TapValue, mods),
		ElectionDue:       ElectionDue(session.TotalTaps),
	}

	if err := tx.Where("session_id = ?", session.ID).Find(&view.PendingLaws).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("session_id = ?", session.ID).Find(&view.ActiveLaws).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("session_id = ? AND is_active = ?", session.ID, true).Find(&view.Alliances).Error; err != nil {
		return nil, err
	}
	return view, nil
}

// Countries lists the selectable countries.
func (s *SessionService) Countries() ([]models.Country, error) {
	var countries []models.Country
	if err := s.DB.Order("name ASC").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// SeedCountries upserts the country catalog. Safe to run on every boot.
func (s *SessionService) SeedCountries() error {
	for _, seed := range catalog.Countries {
		// Lookup by name only; the generated ID and the bonus columns
		// are applied on create and never clobber an existing row.
		var country models.Country
		if err := s.DB.Where(models.Country{Name: seed.Name}).
			Attrs(models.Country{
				ID:             uuid.NewString(),
				FlagEmoji:      seed.FlagEmoji,
				Region:         seed.Region,
				EconomyBonus:   seed.EconomyBonus,
				MilitaryBonus:  seed.MilitaryBonus,
				StabilityBonus: seed.StabilityBonus,
				Description:    seed.Description,
			}).
			FirstOrCreate(&country).Error; err != nil {
			return err
		}
	}
	log.Printf("🌍 Country catalog seeded (%d countries)", len(catalog.Countries))
	return nil
}

// StartSessionSweeper runs the hourly job that marks long-idle sessions
// abandoned. Returns the scheduler so the caller can shut it down.
func (s *SessionService) StartSessionSweeper() (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			cutoff := time.Now().Add(-sessionIdleCutoff)
			res := s.DB.Model(&models.GameSession{}).
				Where("status = ? AND updated_at < ?", models.SessionStatusActive, cutoff).
				Update("status", models.SessionStatusAbandoned)
			if res.Error != nil {
				log.Printf("❌ Session sweep failed: %v", res.Error)
				return
			}
			if res.RowsAffected > 0 {
				log.Printf("🧹 Swept %d idle sessions to abandoned", res.RowsAffected)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	scheduler.Start()
	log.Println("🧹 Session sweeper started (hourly)")
	return scheduler, nil
}
