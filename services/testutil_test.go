// services/testutil_test.go
package services

import (
	"fmt"
	"testing"

	"nation-game-server/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own in-memory database with the full
// schema migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Country{},
		&models.GameSession{},
		&models.PopulationClasses{},
		&models.Military{},
		&models.PendingLaw{},
		&models.ActiveLaw{},
		&models.Alliance{},
		&models.Prestige{},
		&models.PermanentUpgrade{},
		&models.Election{},
		&models.PlayerMirror{},
	))
	return db
}

// seedSession creates a country with a neutral 1.0 economy bonus plus a
// session with its satellite rows, and returns the session.
func seedSession(t *testing.T, db *gorm.DB) *models.GameSession {
	t.Helper()

	country := models.Country{
		ID:           uuid.NewString(),
		Name:         "Testland " + uuid.NewString(),
		EconomyBonus: 1.0,
	}
	require.NoError(t, db.Create(&country).Error)

	session := models.GameSession{
		ID:          uuid.NewString(),
		PlayerID:    uuid.NewString(),
		CountryID:   country.ID,
		Money:       5000,
		TapValue:    10,
		CurrentYear: 1,
		Status:      models.SessionStatusActive,
	}
	require.NoError(t, db.Create(&session).Error)

	_, err := ensurePopulation(db, session.ID)
	require.NoError(t, err)
	_, err = ensureMilitary(db, session.ID)
	require.NoError(t, err)
	_, err = ensurePrestige(db, session.ID)
	require.NoError(t, err)

	return &session
}

// scriptedRand replays fixed sequences; exhausted sequences return
// values that fail every probability gate.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if r.fi >= len(r.floats) {
		return 0.999
	}
	v := r.floats[r.fi]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if r.ii >= len(r.ints) {
		return 0
	}
	v := r.ints[r.ii] % n
	r.ii++
	return v
}
