// services/law_service_test.go
package services

import (
	"testing"

	"nation-game-server/catalog"
	"nation-game-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposeLaw(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	svc := NewLawService(db)

	pending, err := svc.Propose(session.ID, "MINIMUM_WAGE")
	require.NoError(t, err)
	assert.Equal(t, "MINIMUM_WAGE", pending.LawKey)
	assert.Equal(t, catalog.Laws["MINIMUM_WAGE"].TapsRequired, pending.TapsRemaining)
	assert.Equal(t, catalog.Laws["MINIMUM_WAGE"].Effects, pending.Effects)
}

func TestProposeLawDuplicateIsConflict(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	svc := NewLawService(db)

	_, err := svc.Propose(session.ID, "MINIMUM_WAGE")
	require.NoError(t, err)

	_, err = svc.Propose(session.ID, "MINIMUM_WAGE")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestProposeLawUnknownKey(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	svc := NewLawService(db)

	_, err := svc.Propose(session.ID, "NOT_A_LAW")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancelMissingLawIsNotFound(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	svc := NewLawService(db)

	err := svc.Cancel(session.ID, "no-such-law")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnactThenRepealRoundTripsWithinOne(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	svc := NewLawService(db)

	before := session.TapValue

	require.NoError(t, svc.Decide(session.ID, "TAX_CUTS", true))

	var active models.ActiveLaw
	require.NoError(t, db.Where("session_id = ?", session.ID).First(&active).Error)

	require.NoError(t, svc.Repeal(session.ID, active.ID))

	after, err := loadSession(db, session.ID)
	require.NoError(t, err)
	assert.InDelta(t, before, after.TapValue, 1, "enact+repeal drifts at most one unit per cycle")
}

func TestDecideRejectCostsPopularity(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	svc := NewLawService(db)

	require.NoError(t, svc.Decide(session.ID, "MINIMUM_WAGE", false))

	pop, err := ensurePopulation(db, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 48, pop.Get(models.ClassWorking))
	assert.Equal(t, 49, pop.Get(models.ClassMiddle))

	// Rejection never enacts anything.
	var count int64
	require.NoError(t, db.Model(&models.ActiveLaw{}).Where("session_id = ?", session.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProgressPendingEnactsAtZero(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	svc := NewLawService(db)

	pending, err := svc.Propose(session.ID, "MINIMUM_WAGE")
	require.NoError(t, err)

	enacted, err := svc.progressPending(db, session, pending.TapsRemaining, nil)
	require.NoError(t, err)
	require.Len(t, enacted, 1)
	assert.Equal(t, catalog.Laws["MINIMUM_WAGE"].Name, enacted[0])

	var pendingCount, activeCount int64
	require.NoError(t, db.Model(&models.PendingLaw{}).Where("session_id = ?", session.ID).Count(&pendingCount).Error)
	require.NoError(t, db.Model(&models.ActiveLaw{}).Where("session_id = ?", session.ID).Count(&activeCount).Error)
	assert.Zero(t, pendingCount)
	assert.Equal(t, int64(1), activeCount)
}

func TestProgressPendingDecrementsWithFloorZero(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	svc := NewLawService(db)

	pending, err := svc.Propose(session.ID, "MINIMUM_WAGE")
	require.NoError(t, err)

	enacted, err := svc.progressPending(db, session, 10, nil)
	require.NoError(t, err)
	assert.Empty(t, enacted)

	var reloaded models.PendingLaw
	require.NoError(t, db.Where("id = ?", pending.ID).First(&reloaded).Error)
	assert.Equal(t, pending.TapsRemaining-10, reloaded.TapsRemaining)
}

func TestFasterLawsUpgradeRoundsUp(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	svc := NewLawService(db)

	pending, err := svc.Propose(session.ID, "MINIMUM_WAGE")
	require.NoError(t, err)

	upgrades := []models.PermanentUpgrade{
		{UpgradeType: "faster_laws", BonusValue: 0.25},
	}

	// 7 taps × 1.25 = 8.75 → ceil → 9 effective taps.
	_, err = svc.progressPending(db, session, 7, upgrades)
	require.NoError(t, err)

	var reloaded models.PendingLaw
	require.NoError(t, db.Where("id = ?", pending.ID).First(&reloaded).Error)
	assert.Equal(t, pending.TapsRemaining-9, reloaded.TapsRemaining)
}
