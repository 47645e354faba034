// services/election_service_test.go
package services

import (
	"testing"

	"nation-game-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveElectionWin(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	session.TotalTaps = 2500
	session.CurrentYear = YearForTaps(2500)
	require.NoError(t, db.Save(session).Error)

	pop, _ := ensurePopulation(db, session.ID)
	pop.WorkingClass, pop.MiddleClass, pop.HighClass, pop.PovertyClass = 80, 80, 80, 80
	pop.Rebels = 20
	require.NoError(t, db.Save(pop).Error)

	svc := NewElectionService(db)
	result, err := svc.Resolve(session.ID)
	require.NoError(t, err)

	// 4×80 + (100-20) = 400 of 500 votes; margin 300.
	assert.True(t, result.Won)
	assert.Equal(t, 400, result.VotesFor)
	assert.Equal(t, 100, result.VotesAgainst)
	assert.Equal(t, 300, result.Margin)
	assert.InDelta(t, 1.3, result.BonusMultiplier, 1e-9)

	assert.InDelta(t, 1.3, result.Prestige.EconomyMultiplier, 1e-9)
	assert.Equal(t, 1, result.Prestige.PrestigeLevel)
	assert.Equal(t, int64(30), result.Prestige.GlobalInfluencePoints)

	assert.Equal(t, 80, result.Election.TotalPopularity)
}

func TestResolveElectionTieIsALoss(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	session.TotalTaps = 2500
	session.CurrentYear = YearForTaps(2500)
	require.NoError(t, db.Save(session).Error)

	// 4×50 + (100-50) = exactly 250 of 500.
	pop, _ := ensurePopulation(db, session.ID)
	pop.Rebels = 50
	require.NoError(t, db.Save(pop).Error)

	svc := NewElectionService(db)
	result, err := svc.Resolve(session.ID)
	require.NoError(t, err)

	assert.False(t, result.Won)
	assert.Equal(t, 250, result.VotesFor)
	assert.InDelta(t, 1.0, result.Prestige.EconomyMultiplier, 1e-9)
	assert.Zero(t, result.Prestige.PrestigeLevel)
}

func TestResolveElectionOffCycle(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	session.TotalTaps = 2499
	require.NoError(t, db.Save(session).Error)

	svc := NewElectionService(db)
	_, err := svc.Resolve(session.ID)
	assert.ErrorIs(t, err, ErrNotDue)
}

func TestResolveElectionBoundaryOnlyOnce(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	session.TotalTaps = 2500
	session.CurrentYear = YearForTaps(2500)
	require.NoError(t, db.Save(session).Error)

	svc := NewElectionService(db)
	_, err := svc.Resolve(session.ID)
	require.NoError(t, err)

	_, err = svc.Resolve(session.ID)
	assert.ErrorIs(t, err, ErrNotDue)

	var count int64
	require.NoError(t, db.Model(&models.Election{}).Where("session_id = ?", session.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestElectionLossStillRecorded(t *testing.T) {
	db := openTestDB(t)
	session := seedSession(t, db)
	session.TotalTaps = 2500
	session.CurrentYear = YearForTaps(2500)
	require.NoError(t, db.Save(session).Error)

	pop, _ := ensurePopulation(db, session.ID)
	pop.WorkingClass, pop.MiddleClass, pop.HighClass, pop.PovertyClass = 10, 10, 10, 10
	pop.Rebels = 90
	require.NoError(t, db.Save(pop).Error)

	svc := NewElectionService(db)
	result, err := svc.Resolve(session.ID)
	require.NoError(t, err)
	assert.False(t, result.Won)

	history, err := svc.History(session.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.False(t, history[0].Won)
}
