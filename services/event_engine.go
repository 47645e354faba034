// services/event_engine.go
package services

import (
	"log"
	"math"
	"sort"

	"nation-game-server/catalog"
	"nation-game-server/models"

	"gorm.io/gorm"
)

// Event branch probabilities. The engine only runs at all when a batch
// crosses an event-check boundary; these gate what happens inside one.
const (
	eventEligibilityChance = 0.4
	rebelAttackChance      = 0.3
	basePositiveShare      = 0.6
	maxPositiveShare       = 0.95
	donationChance         = 0.08
	rebelDriftRate         = 0.1
	attackRebelThreshold   = 60
	attackRebelRelief      = 15
)

// TriggeredEvent is the engine's report of what fired during a tap
// batch, echoed back to the client for presentation.
type TriggeredEvent struct {
	Type         string                  `json:"type"` // "rebel_attack" | "event" | "law_suggestion" | "donation"
	Key          string                  `json:"key,omitempty"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	Popularity   models.PopularityDeltas `json:"popularity,omitempty"`
	MoneyDelta   int64                   `json:"money_delta,omitempty"`
	StrengthLost int64                   `json:"strength_lost,omitempty"`
	LawKey       string                  `json:"law_key,omitempty"`
}

func betterEventsBonus(upgrades []models.PermanentUpgrade) float64 {
	for _, u := range upgrades {
		if kind, ok := catalog.UpgradeKindOf(u.UpgradeType); ok && kind == catalog.UpgradeBetterEvents {
			return u.BonusValue
		}
	}
	return 0
}

// rebelDriftTarget is the equilibrium rebel score the drift pulls toward:
// unhappy populations breed rebels, happy ones starve them.
func rebelDriftTarget(meanHappiness float64) int {
	return models.ClampRebelScore(int(math.Round(100 - meanHappiness)))
}

// runEventCycle resolves one eligible event check inside the tap batch's
// transaction. It may mutate population, military, and session money.
// Returns nil when the eligibility roll fails or no branch produced
// anything to report.
func runEventCycle(tx *gorm.DB, r Rand, session *models.GameSession, pop *models.PopulationClasses, mil *models.Military, upgrades []models.PermanentUpgrade) (*TriggeredEvent, error) {
	if r.Float64() >= eventEligibilityChance {
		return nil, nil
	}

	// Rebel support drifts toward the unhappiness equilibrium every
	// eligible cycle. The attack check below intentionally reads the
	// pre-drift score: this cycle's drift shapes the *next* check.
	preRebels := pop.Get(models.ClassRebels)
	target := rebelDriftTarget(pop.MeanHappiness())
	drift := int(math.Round(float64(target-preRebels) * rebelDriftRate))
	if drift != 0 {
		pop.AdjustRebels(drift)
		if err := tx.Save(pop).Error; err != nil {
			return nil, err
		}
	}

	if preRebels > attackRebelThreshold && mil.TotalStrength > 0 && r.Float64() < rebelAttackChance {
		return resolveRebelAttack(tx, r, session, pop, mil)
	}

	positiveShare := basePositiveShare + betterEventsBonus(upgrades)
	if positiveShare > maxPositiveShare {
		positiveShare = maxPositiveShare
	}

	if r.Float64() < positiveShare {
		return resolveRandomEvent(tx, r, pop)
	}
	return suggestLaw(tx, r, session.ID)
}

func resolveRebelAttack(tx *gorm.DB, r Rand, session *models.GameSession, pop *models.PopulationClasses, mil *models.Military) (*TriggeredEvent, error) {
	keys := sortedKeys(catalog.RebelAttacks)
	key := keys[r.Intn(len(keys))]
	attack := catalog.RebelAttacks[key]

	lost := mil.ReduceStrength(attack.MilitaryCost)
	if err := tx.Save(mil).Error; err != nil {
		return nil, err
	}

	var moneyDelta int64
	if session.Money >= attack.MoneyCost {
		moneyDelta = -attack.MoneyCost
		session.Money -= attack.MoneyCost
		if err := tx.Model(session).Update("money", session.Money).Error; err != nil {
			return nil, err
		}
	}

	if len(attack.PopularityLoss) > 0 {
		pop.Apply(attack.PopularityLoss)
	}
	// An attack spends rebel momentum.
	pop.AdjustRebels(-attackRebelRelief)
	if err := tx.Save(pop).Error; err != nil {
		return nil, err
	}

	log.Printf("⚔️ Rebel attack %s on session %s: -%d strength, %d money", key, session.ID, lost, moneyDelta)

	return &TriggeredEvent{
		Type:         "rebel_attack",
		Key:          key,
		Title:        attack.Title,
		Description:  attack.Description,
		Popularity:   attack.PopularityLoss,
		MoneyDelta:   moneyDelta,
		StrengthLost: lost,
	}, nil
}

func resolveRandomEvent(tx *gorm.DB, r Rand, pop *models.PopulationClasses) (*TriggeredEvent, error) {
	keys := sortedKeys(catalog.RandomEvents)
	key := keys[r.Intn(len(keys))]
	event := catalog.RandomEvents[key]

	pop.Apply(event.Popularity)
	if err := tx.Save(pop).Error; err != nil {
		return nil, err
	}

	return &TriggeredEvent{
		Type:        "event",
		Key:         key,
		Title:       event.Title,
		Description: event.Description,
		Popularity:  event.Popularity,
	}, nil
}

// suggestLaw surfaces a council suggestion from laws the session has
// neither pending nor active. Pure advisory: no state changes until the
// player decides on it.
func suggestLaw(tx *gorm.DB, r Rand, sessionID string) (*TriggeredEvent, error) {
	taken := make(map[string]bool)

	var pendingKeys []string
	if err := tx.Model(&models.PendingLaw{}).
		Where("session_id = ?", sessionID).
		Pluck("law_key", &pendingKeys).Error; err != nil {
		return nil, err
	}
	var activeKeys []string
	if err := tx.Model(&models.ActiveLaw{}).
		Where("session_id = ?", sessionID).
		Pluck("law_key", &activeKeys).Error; err != nil {
		return nil, err
	}
	for _, k := range pendingKeys {
		taken[k] = true
	}
	for _, k := range activeKeys {
		taken[k] = true
	}

	candidates := make([]string, 0, len(catalog.Laws))
	for _, k := range sortedKeys(catalog.Laws) {
		if !taken[k] {
			candidates = append(candidates, k)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	key := candidates[r.Intn(len(candidates))]
	law := catalog.Laws[key]

	return &TriggeredEvent{
		Type:        "law_suggestion",
		Key:         key,
		Title:       law.Name,
		Description: law.Description,
		LawKey:      key,
	}, nil
}

// rollDonation runs the independent donation trial for one tap batch.
// Tier selection scales a single roll by the summed tier weights and
// walks the cumulative distribution, so relative rarities hold and the
// walk always lands on a tier. The amount is uniform in [min, max).
func rollDonation(r Rand) *TriggeredEvent {
	if r.Float64() >= donationChance {
		return nil
	}

	var totalWeight float64
	for _, t := range catalog.Donations {
		totalWeight += t.Weight
	}

	roll := r.Float64() * totalWeight
	var cumulative float64
	tier := catalog.Donations[0]
	for _, t := range catalog.Donations {
		cumulative += t.Weight
		if roll < cumulative {
			tier = t
			break
		}
	}

	amount := tier.MinAmount + int64(r.Intn(int(tier.MaxAmount-tier.MinAmount)))
	return &TriggeredEvent{
		Type:        "donation",
		Title:       tier.Title,
		Description: tier.Description,
		MoneyDelta:  amount,
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
