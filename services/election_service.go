// services/election_service.go
package services

import (
	"log"
	"math"

	"nation-game-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TotalElectionVotes is the fixed size of the electorate: each of the
// four civil classes casts up to 100 votes proportional to its approval,
// and the rebel bloc casts what the rebels *don't* hold — high rebel
// support drains the government's share.
const TotalElectionVotes = 500

const majorityThreshold = TotalElectionVotes / 2

type ElectionService struct {
	DB *gorm.DB
}

func NewElectionService(db *gorm.DB) *ElectionService {
	return &ElectionService{DB: db}
}

type ElectionResult struct {
	Won             bool                           `json:"won"`
	VotesFor        int                            `json:"votes_for"`
	VotesAgainst    int                            `json:"votes_against"`
	Margin          int                            `json:"margin"`
	VoteBreakdown   map[models.PopulationClass]int `json:"vote_breakdown"`
	BonusMultiplier float64                        `json:"bonus_multiplier,omitempty"`
	Prestige        *models.Prestige               `json:"prestige"`
	Election        *models.Election               `json:"election"`
}

// countVotes tallies the electorate from a population snapshot.
func countVotes(pop *models.PopulationClasses) (votesFor int, breakdown map[models.PopulationClass]int) {
	breakdown = map[models.PopulationClass]int{
		models.ClassWorking: pop.Get(models.ClassWorking),
		models.ClassMiddle:  pop.Get(models.ClassMiddle),
		models.ClassHigh:    pop.Get(models.ClassHigh),
		models.ClassPoverty: pop.Get(models.ClassPoverty),
		models.ClassRebels:  100 - pop.Get(models.ClassRebels),
	}
	for _, v := range breakdown {
		votesFor += v
	}
	return votesFor, breakdown
}

// Resolve settles the election standing at the current tap boundary.
// Only callable when the tap total sits exactly on an election multiple;
// anything else is ErrNotDue.
func (s *ElectionService) Resolve(sessionID string) (*ElectionResult, error) {
	var result *ElectionResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		session, err := loadSession(tx, sessionID)
		if err != nil {
			return err
		}
		if !ElectionDue(session.TotalTaps) {
			return ErrNotDue
		}

		// One election per boundary: a recorded election at this year
		// means the boundary is already settled.
		var prior int64
		if err := tx.Model(&models.Election{}).
			Where("session_id = ? AND election_year = ?", sessionID, session.CurrentYear).
			Count(&prior).Error; err != nil {
			return err
		}
		if prior > 0 {
			return ErrNotDue
		}

		pop, err := ensurePopulation(tx, sessionID)
		if err != nil {
			return err
		}

		votesFor, breakdown := countVotes(pop)
		votesAgainst := TotalElectionVotes - votesFor
		margin := votesFor - votesAgainst
		won := votesFor > majorityThreshold

		prestige, err := ensurePrestige(tx, sessionID)
		if err != nil {
			return err
		}

		record := models.Election{
			ID:              uuid.NewString(),
			SessionID:       sessionID,
			ElectionYear:    session.CurrentYear,
			TotalPopularity: votesFor * 100 / TotalElectionVotes,
			Won:             won,
		}

		result = &ElectionResult{
			Won:           won,
			VotesFor:      votesFor,
			VotesAgainst:  votesAgainst,
			Margin:        margin,
			VoteBreakdown: breakdown,
		}

		if won {
			bonus := 1 + float64(margin)/1000
			prestige.EconomyMultiplier *= bonus
			prestige.PrestigeLevel++
			prestige.GlobalInfluencePoints += int64(math.Floor(float64(margin) / 10))
			if err := tx.Save(prestige).Error; err != nil {
				return err
			}
			record.BonusApplied = map[string]any{
				"economy_multiplier": bonus,
				"margin":             margin,
			}
			result.BonusMultiplier = bonus
		}

		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		result.Prestige = prestige
		result.Election = &record
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Won {
		log.Printf("🗳️ Election won for session %s: %d/%d votes, ×%.3f economy", sessionID, result.VotesFor, TotalElectionVotes, result.BonusMultiplier)
	} else {
		log.Printf("🗳️ Election lost for session %s: %d/%d votes", sessionID, result.VotesFor, TotalElectionVotes)
	}
	return result, nil
}

// History lists the session's past elections, newest first.
func (s *ElectionService) History(sessionID string) ([]models.Election, error) {
	if _, err := loadSession(s.DB, sessionID); err != nil {
		return nil, err
	}
	var elections []models.Election
	err := s.DB.Where("session_id = ?", sessionID).
		Order("election_year DESC").Find(&elections).Error
	if err != nil {
		return nil, err
	}
	return elections, nil
}
