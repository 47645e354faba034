// catalog/events.go
package catalog

import "nation-game-server/models"

// RandomEvent is a positive/neutral popularity event the stochastic
// engine may surface on an eligible tap batch.
type RandomEvent struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Popularity  models.PopularityDeltas `json:"popularity"`
}

var RandomEvents = map[string]RandomEvent{
	"ECONOMIC_BOOM": {
		Title:       "Economic Boom",
		Description: "A tech company announces massive investment in your country",
		Popularity: models.PopularityDeltas{
			models.ClassWorking: 15,
			models.ClassMiddle:  20,
			models.ClassHigh:    25,
			models.ClassRebels:  -10,
		},
	},
	"SUCCESSFUL_SPORTS_TEAM": {
		Title:       "National Sports Victory",
		Description: "Your national team wins an international championship",
		Popularity: models.PopularityDeltas{
			models.ClassWorking: 20,
			models.ClassMiddle:  15,
			models.ClassPoverty: 18,
			models.ClassRebels:  -15,
		},
	},
	"CULTURAL_FESTIVAL": {
		Title:       "Cultural Festival Success",
		Description: "A major cultural festival attracts international attention",
		Popularity: models.PopularityDeltas{
			models.ClassMiddle:  18,
			models.ClassHigh:    12,
			models.ClassWorking: 8,
			models.ClassRebels:  -8,
		},
	},
	"NATURAL_DISASTER_RESPONSE": {
		Title:       "Emergency Response Success",
		Description: "Government handles natural disaster exceptionally well",
		Popularity: models.PopularityDeltas{
			models.ClassWorking: 25,
			models.ClassPoverty: 30,
			models.ClassMiddle:  20,
			models.ClassRebels:  -20,
		},
	},
	"INFRASTRUCTURE_SUCCESS": {
		Title:       "Infrastructure Milestone",
		Description: "Major infrastructure project completed ahead of schedule",
		Popularity: models.PopularityDeltas{
			models.ClassWorking: 15,
			models.ClassMiddle:  22,
			models.ClassHigh:    10,
			models.ClassRebels:  -12,
		},
	},
	"DIPLOMATIC_SUCCESS": {
		Title:       "Diplomatic Victory",
		Description: "Your country successfully mediates international conflict",
		Popularity: models.PopularityDeltas{
			models.ClassHigh:    20,
			models.ClassMiddle:  15,
			models.ClassWorking: 8,
			models.ClassRebels:  -10,
		},
	},
	"CORRUPTION_SCANDAL": {
		Title:       "Corruption Scandal",
		Description: "Opposition politicians caught in major corruption scandal",
		Popularity: models.PopularityDeltas{
			models.ClassWorking: 12,
			models.ClassMiddle:  15,
			models.ClassPoverty: 10,
			models.ClassRebels:  -25,
		},
	},
	"ECONOMIC_RECOVERY": {
		Title:       "Economic Recovery",
		Description: "Unemployment drops to historic lows",
		Popularity: models.PopularityDeltas{
			models.ClassWorking: 25,
			models.ClassPoverty: 30,
			models.ClassMiddle:  15,
			models.ClassRebels:  -18,
		},
	},
}

// RebelAttack is an attack template fired when rebel support is high and
// the player has standing military. Costs are capped at current values
// when applied, never driving strength or money negative.
type RebelAttack struct {
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	MilitaryCost   int64                   `json:"military_cost"`
	MoneyCost      int64                   `json:"money_cost"`
	PopularityLoss models.PopularityDeltas `json:"popularity_loss,omitempty"`
}

var RebelAttacks = map[string]RebelAttack{
	"CIVILIAN_UNREST": {
		Title:        "Civilian Unrest",
		Description:  "Protesters clash with police in the capital. Your military must restore order.",
		MilitaryCost: 50,
		MoneyCost:    10000,
	},
	"SABOTAGE_ATTACK": {
		Title:        "Infrastructure Sabotage",
		Description:  "Rebels have damaged key infrastructure. Military forces are deployed to secure the area.",
		MilitaryCost: 75,
		MoneyCost:    25000,
	},
	"ARMED_UPRISING": {
		Title:        "Armed Uprising",
		Description:  "Armed rebels attack government facilities. Heavy military response required.",
		MilitaryCost: 100,
		MoneyCost:    50000,
	},
	"TERRORIST_BOMBING": {
		Title:        "Terrorist Attack",
		Description:  "Extremists bomb civilian targets. Your military must hunt down the perpetrators.",
		MilitaryCost: 80,
		MoneyCost:    30000,
		PopularityLoss: models.PopularityDeltas{
			models.ClassWorking: -10,
			models.ClassMiddle:  -15,
			models.ClassHigh:    -8,
		},
	},
}

// DonationTier is a weighted donation bucket; the amount granted is
// uniform within [MinAmount, MaxAmount) — the maximum is exclusive.
type DonationTier struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	MinAmount   int64   `json:"min_amount"`
	MaxAmount   int64   `json:"max_amount"`
	Weight      float64 `json:"weight"`
}

// Donations is ordered from common to vanishingly rare; selection scales
// one roll by the summed weights and walks the cumulative distribution.
var Donations = []DonationTier{
	{
		Title:       "Grateful Citizen Donation",
		Description: "A grateful citizen has donated to your government fund!",
		MinAmount:   1000,
		MaxAmount:   6000,
		Weight:      0.15,
	},
	{
		Title:       "Business Community Support",
		Description: "Local businesses have pooled together a donation!",
		MinAmount:   5000,
		MaxAmount:   25000,
		Weight:      0.08,
	},
	{
		Title:       "International Aid",
		Description: "A foreign government has sent financial aid!",
		MinAmount:   10000,
		MaxAmount:   60000,
		Weight:      0.04,
	},
	{
		Title:       "Wealthy Benefactor",
		Description: "A wealthy philanthropist has made a major donation!",
		MinAmount:   50000,
		MaxAmount:   250000,
		Weight:      0.02,
	},
	{
		Title:       "Historic Windfall",
		Description: "An unprecedented donation from multiple sources!",
		MinAmount:   250000,
		MaxAmount:   1000000,
		Weight:      0.005,
	},
}
