// catalog/countries.go
package catalog

// CountrySeed is the startup seed for the countries reference table.
type CountrySeed struct {
	Name           string
	FlagEmoji      string
	Region         string
	EconomyBonus   float64
	MilitaryBonus  float64
	StabilityBonus float64
	Description    string
}

var Countries = []CountrySeed{
	{
		Name: "United States", FlagEmoji: "🇺🇸", Region: "North America",
		EconomyBonus: 1.2, MilitaryBonus: 1.3, StabilityBonus: 1.0,
		Description: "Economic and military powerhouse with a restless electorate",
	},
	{
		Name: "Germany", FlagEmoji: "🇩🇪", Region: "Europe",
		EconomyBonus: 1.15, MilitaryBonus: 0.9, StabilityBonus: 1.2,
		Description: "Industrial engine of Europe, stable but slow to mobilize",
	},
	{
		Name: "Japan", FlagEmoji: "🇯🇵", Region: "Asia",
		EconomyBonus: 1.1, MilitaryBonus: 0.8, StabilityBonus: 1.25,
		Description: "High-tech economy with exceptional social cohesion",
	},
	{
		Name: "Brazil", FlagEmoji: "🇧🇷", Region: "South America",
		EconomyBonus: 0.95, MilitaryBonus: 1.0, StabilityBonus: 0.9,
		Description: "Resource-rich rising power with volatile politics",
	},
	{
		Name: "India", FlagEmoji: "🇮🇳", Region: "Asia",
		EconomyBonus: 1.0, MilitaryBonus: 1.1, StabilityBonus: 0.95,
		Description: "Enormous workforce and growing industrial base",
	},
	{
		Name: "Russia", FlagEmoji: "🇷🇺", Region: "Eurasia",
		EconomyBonus: 0.9, MilitaryBonus: 1.35, StabilityBonus: 0.8,
		Description: "Military giant with a fragile, resource-bound economy",
	},
	{
		Name: "Nigeria", FlagEmoji: "🇳🇬", Region: "Africa",
		EconomyBonus: 0.85, MilitaryBonus: 0.9, StabilityBonus: 0.75,
		Description: "Young, fast-growing nation where everything is still to build",
	},
	{
		Name: "Switzerland", FlagEmoji: "🇨🇭", Region: "Europe",
		EconomyBonus: 1.3, MilitaryBonus: 0.6, StabilityBonus: 1.4,
		Description: "Small, wealthy, and nearly impossible to destabilize",
	},
}

// DiplomacyPartner is a country available for alliance flavor naming.
type DiplomacyPartner struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Stability string `json:"stability"`
	Flag      string `json:"flag"`
}

var DiplomacyPartners = []DiplomacyPartner{
	{Name: "United States", Region: "North America", Stability: "High", Flag: "🇺🇸"},
	{Name: "European Union", Region: "Europe", Stability: "High", Flag: "🇪🇺"},
	{Name: "China", Region: "Asia", Stability: "High", Flag: "🇨🇳"},
	{Name: "Japan", Region: "Asia", Stability: "High", Flag: "🇯🇵"},
	{Name: "India", Region: "Asia", Stability: "Medium", Flag: "🇮🇳"},
	{Name: "Brazil", Region: "South America", Stability: "Medium", Flag: "🇧🇷"},
	{Name: "Russia", Region: "Eurasia", Stability: "Medium", Flag: "🇷🇺"},
	{Name: "Canada", Region: "North America", Stability: "High", Flag: "🇨🇦"},
	{Name: "Australia", Region: "Oceania", Stability: "High", Flag: "🇦🇺"},
	{Name: "South Korea", Region: "Asia", Stability: "High", Flag: "🇰🇷"},
	{Name: "Mexico", Region: "North America", Stability: "Medium", Flag: "🇲🇽"},
	{Name: "Turkey", Region: "Eurasia", Stability: "Medium", Flag: "🇹🇷"},
	{Name: "Saudi Arabia", Region: "Middle East", Stability: "Medium", Flag: "🇸🇦"},
	{Name: "South Africa", Region: "Africa", Stability: "Medium", Flag: "🇿🇦"},
	{Name: "Indonesia", Region: "Asia", Stability: "Medium", Flag: "🇮🇩"},
	{Name: "Egypt", Region: "Africa", Stability: "Medium", Flag: "🇪🇬"},
	{Name: "Argentina", Region: "South America", Stability: "Medium", Flag: "🇦🇷"},
}
