// services/prestige_service_test.go
package services

import (
	"testing"

	"nation-game-server/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTokensWorkedExample(t *testing.T) {
	session := &models.GameSession{Money: 500000, TotalTaps: 12000, CurrentYear: 25}
	pop := &models.PopulationClasses{WorkingClass: 90, MiddleClass: 90, HighClass: 90, PovertyClass: 90}
	mil := &models.Military{TotalStrength: 0}

	// floor(5) + floor(2.4) + floor(2.5) + 15 = 24
	assert.Equal(t, int64(24), CalculateTokens(session, pop, mil))
}

func TestCalculateTokensClamps(t *testing.T) {
	poor := &models.GameSession{Money: 0, TotalTaps: 0, CurrentYear: 1}
	assert.Equal(t, int64(1), CalculateTokens(poor, nil, nil))

	rich := &models.GameSession{Money: 100000000, TotalTaps: 1000000, CurrentYear: 500}
	assert.Equal(t, int64(50), CalculateTokens(rich, nil, nil))
}

func TestCalculateTokensMilitaryGate(t *testing.T) {
	session := &models.GameSession{}

	// Strength ≤ 500 pays nothing even though 400/200 would floor to 2.
	assert.Equal(t, int64(1), CalculateTokens(session, nil, &models.Military{TotalStrength: 400}))
	assert.Equal(t, int64(3), CalculateTokens(session, nil, &models.Military{TotalStrength: 600}))
}

func TestPrestigeResetRewindsRun(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)

	session.Money = 500000
	session.TotalTaps = 12000
	session.CurrentYear = 25
	session.TapValue = 40
	require.NoError(t, db.Save(session).Error)

	// Leave a run's worth of state behind.
	laws := NewLawService(db)
	_, err := laws.Propose(session.ID, "MINIMUM_WAGE")
	require.NoError(t, err)
	require.NoError(t, laws.Decide(session.ID, "TAX_CUTS", true))
	require.NoError(t, db.Create(&models.Alliance{ID: uuid.NewString(), SessionID: session.ID, AllyName: "Japan", IsActive: true}).Error)

	svc := NewPrestigeService(db)
	result, err := svc.Reset(session.ID)
	require.NoError(t, err)
	assert.Positive(t, result.TokensEarned)

	after, err := loadSession(db, session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), after.Money)
	assert.Zero(t, after.TotalTaps)
	assert.Equal(t, 1, after.CurrentYear)
	assert.Equal(t, int64(1), after.TapValue)

	pop, _ := ensurePopulation(db, session.ID)
	assert.Equal(t, 60, pop.WorkingClass)
	assert.Equal(t, 20, pop.Rebels)

	for _, m := range []any{&models.PendingLaw{}, &models.ActiveLaw{}, &models.Alliance{}, &models.Election{}} {
		var count int64
		require.NoError(t, db.Model(m).Where("session_id = ?", session.ID).Count(&count).Error)
		assert.Zero(t, count)
	}

	prestige, _ := ensurePrestige(db, session.ID)
	assert.Equal(t, 1, prestige.TotalResets)
	assert.Equal(t, int64(500000), prestige.LifetimeMoney)
	assert.Equal(t, int64(12000), prestige.LifetimeTaps)
	assert.InDelta(t, 1.0, prestige.EconomyMultiplier, 1e-9)
}

func TestPrestigeResetKeepsPermanentUpgrades(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)

	require.NoError(t, db.Create(&models.PermanentUpgrade{
		ID:          uuid.NewString(),
		PlayerID:    session.PlayerID,
		UpgradeType: "faster_laws",
		BonusValue:  0.25,
	}).Error)

	svc := NewPrestigeService(db)
	_, err := svc.Reset(session.ID)
	require.NoError(t, err)

	upgrades, err := playerUpgrades(db, session.PlayerID)
	require.NoError(t, err)
	assert.Len(t, upgrades, 1)
}

func TestPurchaseUpgrade(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)

	prestige, _ := ensurePrestige(db, session.ID)
	prestige.DiplomacyTokens = 20
	require.NoError(t, db.Save(prestige).Error)

	svc := NewPrestigeService(db)
	upgrade, err := svc.Purchase(session.PlayerID, session.ID, "faster_laws")
	require.NoError(t, err)
	assert.Equal(t, 0.25, upgrade.BonusValue)

	reloaded, _ := ensurePrestige(db, session.ID)
	assert.Equal(t, int64(8), reloaded.DiplomacyTokens)
}

func TestPurchaseUpgradeDuplicate(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)

	prestige, _ := ensurePrestige(db, session.ID)
	prestige.DiplomacyTokens = 50
	require.NoError(t, db.Save(prestige).Error)

	svc := NewPrestigeService(db)
	_, err := svc.Purchase(session.PlayerID, session.ID, "faster_laws")
	require.NoError(t, err)

	_, err = svc.Purchase(session.PlayerID, session.ID, "faster_laws")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestPurchaseUpgradeInsufficientTokens(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)

	svc := NewPrestigeService(db)
	_, err := svc.Purchase(session.PlayerID, session.ID, "income_multiplier_4")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestPurchaseUpgradeUnknownKey(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)

	svc := NewPrestigeService(db)
	_, err := svc.Purchase(session.PlayerID, session.ID, "NOT_AN_UPGRADE")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
