// catalog/diplomacy.go
package catalog

// DiplomaticAction is a purchasable agreement. Income and military
// bonuses are additive fractions summed across active alliances before
// being applied as one multiplier.
type DiplomaticAction struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Cost              int64   `json:"cost"`
	IncomeBonus       float64 `json:"income_bonus"`
	MilitaryBonus     float64 `json:"military_bonus"`
	PopularityBonus   int     `json:"popularity_bonus"`
	RelationshipBonus int     `json:"relationship_bonus"`
}

var DiplomaticActions = map[string]DiplomaticAction{
	"TRADE_PARTNERSHIP": {
		Name:              "Trade Partnership Agreement",
		Description:       "Establish lucrative trade routes for economic growth",
		Cost:              5000,
		IncomeBonus:       0.08,
		PopularityBonus:   5,
		RelationshipBonus: 15,
	},
	"MILITARY_ALLIANCE": {
		Name:              "Military Defense Pact",
		Description:       "Joint military cooperation and shared defense",
		Cost:              15000,
		MilitaryBonus:     0.12,
		PopularityBonus:   -2,
		RelationshipBonus: 25,
	},
	"CULTURAL_EXCHANGE": {
		Name:              "Cultural Exchange Program",
		Description:       "Promote arts, education, and cultural understanding",
		Cost:              3000,
		IncomeBonus:       0.03,
		PopularityBonus:   8,
		RelationshipBonus: 20,
	},
	"TECHNOLOGY_SHARING": {
		Name:              "Technology Sharing Agreement",
		Description:       "Exchange scientific knowledge and innovations",
		Cost:              12000,
		IncomeBonus:       0.1,
		MilitaryBonus:     0.05,
		PopularityBonus:   3,
		RelationshipBonus: 18,
	},
	"HUMANITARIAN_AID": {
		Name:              "Humanitarian Aid Partnership",
		Description:       "Coordinate disaster relief and medical assistance",
		Cost:              8000,
		IncomeBonus:       0.02,
		PopularityBonus:   12,
		RelationshipBonus: 22,
	},
	"ENERGY_COOPERATION": {
		Name:              "Energy Cooperation Treaty",
		Description:       "Share renewable energy resources and technology",
		Cost:              10000,
		IncomeBonus:       0.06,
		PopularityBonus:   6,
		RelationshipBonus: 16,
	},
	"SPACE_COLLABORATION": {
		Name:              "Space Exploration Partnership",
		Description:       "Joint space missions and satellite programs",
		Cost:              25000,
		IncomeBonus:       0.05,
		MilitaryBonus:     0.03,
		PopularityBonus:   10,
		RelationshipBonus: 30,
	},
	"INTELLIGENCE_SHARING": {
		Name:              "Intelligence Sharing Agreement",
		Description:       "Exchange security information and counterterrorism data",
		Cost:              18000,
		IncomeBonus:       0.02,
		MilitaryBonus:     0.08,
		PopularityBonus:   -5,
		RelationshipBonus: 15,
	},
	"ENVIRONMENTAL_PACT": {
		Name:              "Environmental Protection Pact",
		Description:       "Joint efforts to combat climate change and pollution",
		Cost:              7000,
		IncomeBonus:       0.04,
		PopularityBonus:   15,
		RelationshipBonus: 25,
	},
	"STUDENT_EXCHANGE": {
		Name:              "Student Exchange Program",
		Description:       "Educational partnerships and scholarship programs",
		Cost:              4000,
		IncomeBonus:       0.03,
		PopularityBonus:   9,
		RelationshipBonus: 18,
	},
	"CYBER_SECURITY_ALLIANCE": {
		Name:              "Cyber Security Alliance",
		Description:       "Protect against cyber threats and digital warfare",
		Cost:              14000,
		IncomeBonus:       0.02,
		MilitaryBonus:     0.06,
		PopularityBonus:   2,
		RelationshipBonus: 12,
	},
	"RESEARCH_CONSORTIUM": {
		Name:              "Scientific Research Consortium",
		Description:       "Collaborative research in medicine and technology",
		Cost:              16000,
		IncomeBonus:       0.07,
		MilitaryBonus:     0.02,
		PopularityBonus:   7,
		RelationshipBonus: 20,
	},
	"TOURISM_PROMOTION": {
		Name:              "Tourism Promotion Alliance",
		Description:       "Joint marketing and visa-free travel agreements",
		Cost:              6000,
		IncomeBonus:       0.05,
		PopularityBonus:   8,
		RelationshipBonus: 14,
	},
	"AGRICULTURAL_COOPERATION": {
		Name:              "Agricultural Cooperation Treaty",
		Description:       "Share farming techniques and food security programs",
		Cost:              5500,
		IncomeBonus:       0.04,
		PopularityBonus:   10,
		RelationshipBonus: 17,
	},
	"MARITIME_SECURITY": {
		Name:              "Maritime Security Partnership",
		Description:       "Joint naval patrols and shipping lane protection",
		Cost:              13000,
		IncomeBonus:       0.03,
		MilitaryBonus:     0.07,
		PopularityBonus:   1,
		RelationshipBonus: 13,
	},
}
