// catalog/laws.go
package catalog

import "nation-game-server/models"

// Law is a static catalog entry. Effects are snapshotted onto the pending
// row at proposal time; services reference laws by key only.
type Law struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	TapsRequired int               `json:"taps_required"`
	Effects      models.LawEffects `json:"effects"`
}

// Laws is the single source of truth for the law catalog. Every resolver
// (propose, council vote, random law suggestions) reads from this table —
// never a local copy.
var Laws = map[string]Law{
	// Welfare & social policy
	"MINIMUM_WAGE": {
		Name:         "Minimum Wage Increase",
		Description:  "Increase minimum wage by 20% to help working families",
		TapsRequired: 150,
		Effects: models.LawEffects{
			Economy: -0.08,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 20,
				models.ClassPoverty: 15,
				models.ClassHigh:    -15,
				models.ClassMiddle:  8,
			},
		},
	},
	"HEALTHCARE_REFORM": {
		Name:         "Universal Healthcare",
		Description:  "Implement free healthcare for all citizens",
		TapsRequired: 200,
		Effects: models.LawEffects{
			Economy: -0.18,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 25,
				models.ClassPoverty: 30,
				models.ClassMiddle:  20,
				models.ClassHigh:    -20,
				models.ClassRebels:  -15,
			},
		},
	},
	"EDUCATION_FUNDING": {
		Name:         "Education Funding Increase",
		Description:  "Double funding for schools and universities",
		TapsRequired: 180,
		Effects: models.LawEffects{
			Economy: -0.1,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 15,
				models.ClassMiddle:  25,
				models.ClassPoverty: 20,
				models.ClassHigh:    -8,
			},
		},
	},
	"AFFORDABLE_HOUSING": {
		Name:         "Affordable Housing Program",
		Description:  "Build low-cost housing for families in need",
		TapsRequired: 170,
		Effects: models.LawEffects{
			Economy: -0.12,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 22,
				models.ClassPoverty: 30,
				models.ClassMiddle:  8,
				models.ClassHigh:    -5,
			},
		},
	},
	"FOOD_SECURITY": {
		Name:         "National Food Security Program",
		Description:  "Ensure everyone has access to nutritious, affordable food",
		TapsRequired: 170,
		Effects: models.LawEffects{
			Economy: -0.1,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 20,
				models.ClassPoverty: 35,
				models.ClassMiddle:  10,
				models.ClassHigh:    -8,
			},
		},
	},
	"WORKER_RIGHTS": {
		Name:         "Worker Protection Act",
		Description:  "Strengthen labor unions and worker bargaining power",
		TapsRequired: 160,
		Effects: models.LawEffects{
			Economy: -0.1,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 30,
				models.ClassMiddle:  10,
				models.ClassPoverty: 15,
				models.ClassHigh:    -25,
			},
		},
	},
	"RENT_CONTROL": {
		Name:         "Rent Control Legislation",
		Description:  "Limit how much landlords can charge for housing",
		TapsRequired: 140,
		Effects: models.LawEffects{
			Economy: -0.08,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 20,
				models.ClassPoverty: 25,
				models.ClassMiddle:  5,
				models.ClassHigh:    -20,
			},
		},
	},
	"FOUR_DAY_WORKWEEK": {
		Name:         "Four-Day Work Week",
		Description:  "Mandate a shorter work week to improve work-life balance",
		TapsRequired: 200,
		Effects: models.LawEffects{
			Economy: -0.15,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 35,
				models.ClassMiddle:  25,
				models.ClassPoverty: 10,
				models.ClassHigh:    -30,
			},
		},
	},

	// Environment & infrastructure
	"INFRASTRUCTURE": {
		Name:         "Infrastructure Investment",
		Description:  "Massive investment in roads, bridges, and public transport",
		TapsRequired: 220,
		Effects: models.LawEffects{
			Economy: 0.1,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 18,
				models.ClassMiddle:  15,
				models.ClassPoverty: 12,
				models.ClassHigh:    8,
			},
		},
	},
	"GREEN_ENERGY": {
		Name:         "Green Energy Initiative",
		Description:  "Invest in renewable energy and reduce carbon emissions",
		TapsRequired: 190,
		Effects: models.LawEffects{
			Economy: -0.05,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 12,
				models.ClassMiddle:  25,
				models.ClassHigh:    -8,
				models.ClassRebels:  -10,
			},
		},
	},
	"ENVIRONMENTAL_PROTECTION": {
		Name:         "Environmental Protection Act",
		Description:  "Strict environmental regulations to combat climate change",
		TapsRequired: 160,
		Effects: models.LawEffects{
			Economy: -0.12,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 10,
				models.ClassMiddle:  25,
				models.ClassHigh:    -18,
				models.ClassRebels:  -10,
			},
		},
	},
	"OCEAN_CLEANUP": {
		Name:         "Ocean Cleanup Initiative",
		Description:  "Massive effort to remove plastic pollution from oceans",
		TapsRequired: 180,
		Effects: models.LawEffects{
			Economy: -0.06,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 10,
				models.ClassMiddle:  20,
				models.ClassPoverty: 8,
				models.ClassHigh:    5,
				models.ClassRebels:  -5,
			},
		},
	},

	// Governance & reform
	"ANTI_CORRUPTION": {
		Name:         "Anti-Corruption Initiative",
		Description:  "Root out corruption in government and business",
		TapsRequired: 100,
		Effects: models.LawEffects{
			Economy: 0.08,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 20,
				models.ClassMiddle:  22,
				models.ClassPoverty: 18,
				models.ClassHigh:    -25,
				models.ClassRebels:  -20,
			},
		},
	},
	"GOVERNMENT_TRANSPARENCY": {
		Name:         "Government Transparency Act",
		Description:  "Require all government decisions to be public",
		TapsRequired: 120,
		Effects: models.LawEffects{
			Economy: 0.02,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 15,
				models.ClassMiddle:  20,
				models.ClassPoverty: 10,
				models.ClassHigh:    -15,
				models.ClassRebels:  -25,
			},
		},
	},
	"ELECTORAL_REFORM": {
		Name:         "Electoral Reform Package",
		Description:  "Reform voting systems to be more fair and accessible",
		TapsRequired: 180,
		Effects: models.LawEffects{
			Economy: -0.02,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 20,
				models.ClassMiddle:  25,
				models.ClassPoverty: 15,
				models.ClassHigh:    -10,
				models.ClassRebels:  -30,
			},
		},
	},
	"LOBBYING_BAN": {
		Name:         "Corporate Lobbying Ban",
		Description:  "Prohibit corporate influence on government decisions",
		TapsRequired: 160,
		Effects: models.LawEffects{
			Economy: -0.05,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 25,
				models.ClassMiddle:  20,
				models.ClassPoverty: 20,
				models.ClassHigh:    -30,
			},
		},
	},

	// Technology & innovation
	"TECH_INNOVATION": {
		Name:         "Technology Innovation Fund",
		Description:  "Government funding for tech startups and innovation",
		TapsRequired: 140,
		Effects: models.LawEffects{
			Economy: 0.08,
			Popularity: models.PopularityDeltas{
				models.ClassHigh:    15,
				models.ClassMiddle:  18,
				models.ClassWorking: -5,
				models.ClassPoverty: -8,
			},
		},
	},
	"INTERNET_FREEDOM": {
		Name:         "Internet Freedom Act",
		Description:  "Protect net neutrality and online privacy rights",
		TapsRequired: 110,
		Effects: models.LawEffects{
			Economy: 0.02,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 10,
				models.ClassMiddle:  20,
				models.ClassHigh:    -5,
				models.ClassRebels:  -15,
			},
		},
	},
	"AI_REGULATION": {
		Name:         "Artificial Intelligence Oversight",
		Description:  "Regulate AI development to ensure safety and ethics",
		TapsRequired: 150,
		Effects: models.LawEffects{
			Economy: -0.04,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 8,
				models.ClassMiddle:  15,
				models.ClassHigh:    -15,
				models.ClassRebels:  -5,
			},
		},
	},

	// Controversial
	"MILITARY_EXPANSION": {
		Name:         "Military Expansion Program",
		Description:  "Increase military spending and recruitment",
		TapsRequired: 140,
		Effects: models.LawEffects{
			Economy: -0.08,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: -5,
				models.ClassHigh:    15,
				models.ClassPoverty: -8,
				models.ClassRebels:  8,
			},
		},
	},
	"SURVEILLANCE_STATE": {
		Name:         "Enhanced Surveillance Program",
		Description:  "Expand government surveillance to improve security",
		TapsRequired: 110,
		Effects: models.LawEffects{
			Economy: -0.05,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: -15,
				models.ClassMiddle:  -20,
				models.ClassHigh:    5,
				models.ClassRebels:  25,
			},
		},
	},
	"AUSTERITY_MEASURES": {
		Name:         "Economic Austerity Package",
		Description:  "Cut government spending to reduce national debt",
		TapsRequired: 130,
		Effects: models.LawEffects{
			Economy: 0.12,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: -20,
				models.ClassPoverty: -25,
				models.ClassMiddle:  -10,
				models.ClassHigh:    20,
			},
		},
	},
	"PRESS_RESTRICTIONS": {
		Name:         "Media Regulation Act",
		Description:  "Government oversight of news media and social platforms",
		TapsRequired: 100,
		Effects: models.LawEffects{
			Economy: 0.02,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: -12,
				models.ClassMiddle:  -18,
				models.ClassHigh:    8,
				models.ClassRebels:  20,
			},
		},
	},
	"PRIVATIZATION": {
		Name:         "Public Service Privatization",
		Description:  "Sell government services to private companies",
		TapsRequired: 150,
		Effects: models.LawEffects{
			Economy: 0.15,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: -18,
				models.ClassPoverty: -22,
				models.ClassMiddle:  -5,
				models.ClassHigh:    25,
			},
		},
	},
	"IMMIGRATION_RESTRICTIONS": {
		Name:         "Immigration Control Act",
		Description:  "Strict limits on immigration and border security",
		TapsRequired: 120,
		Effects: models.LawEffects{
			Economy: -0.04,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 10,
				models.ClassMiddle:  -8,
				models.ClassHigh:    -12,
				models.ClassRebels:  15,
			},
		},
	},

	// Balanced / neutral
	"TAX_CUTS": {
		Name:         "Corporate Tax Cuts",
		Description:  "Reduce corporate tax rates to stimulate business growth",
		TapsRequired: 120,
		Effects: models.LawEffects{
			Economy: 0.15,
			Popularity: models.PopularityDeltas{
				models.ClassHigh:    25,
				models.ClassWorking: -8,
				models.ClassPoverty: -12,
				models.ClassMiddle:  5,
			},
		},
	},
	"LUXURY_TAX": {
		Name:         "Luxury Goods Tax",
		Description:  "Heavy taxes on luxury items and expensive properties",
		TapsRequired: 90,
		Effects: models.LawEffects{
			Economy: -0.06,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 15,
				models.ClassPoverty: 20,
				models.ClassMiddle:  5,
				models.ClassHigh:    -30,
			},
		},
	},
	"TRADE_AGREEMENTS": {
		Name:         "International Trade Deals",
		Description:  "Negotiate favorable trade agreements with other nations",
		TapsRequired: 180,
		Effects: models.LawEffects{
			Economy: 0.12,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: -5,
				models.ClassMiddle:  5,
				models.ClassHigh:    20,
				models.ClassPoverty: -10,
			},
		},
	},
	"SPACE_PROGRAM": {
		Name:         "National Space Program",
		Description:  "Invest in space exploration and satellite technology",
		TapsRequired: 200,
		Effects: models.LawEffects{
			Economy: 0.05,
			Popularity: models.PopularityDeltas{
				models.ClassWorking: 5,
				models.ClassMiddle:  15,
				models.ClassHigh:    10,
				models.ClassPoverty: -8,
			},
		},
	},
}

// LawByKey looks up a catalog law.
func LawByKey(key string) (Law, bool) {
	law, ok := Laws[key]
	return law, ok
}
