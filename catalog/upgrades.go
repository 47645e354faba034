// catalog/upgrades.go
package catalog

// UpgradeKind determines how a permanent upgrade's bonus value is
// interpreted by the engine.
type UpgradeKind string

const (
	UpgradeIncome           UpgradeKind = "income_multiplier" // multiplicative fraction in the tap chain
	UpgradeStartingMoney    UpgradeKind = "starting_money"    // flat currency on session creation
	UpgradeFasterLaws       UpgradeKind = "faster_laws"       // law progress rate modifier
	UpgradeBetterEvents     UpgradeKind = "better_events"     // shifts event odds toward positive outcomes
	UpgradeDiplomaticMaster UpgradeKind = "diplomatic_master" // alliance cost discount
)

// PrestigeUpgrade is a one-time purchase from the prestige shop, paid in
// diplomacy tokens and bound to the player identity.
type PrestigeUpgrade struct {
	Name  string      `json:"name"`
	Cost  int64       `json:"cost"`
	Bonus float64     `json:"bonus"`
	Kind  UpgradeKind `json:"kind"`
}

var PrestigeUpgrades = map[string]PrestigeUpgrade{
	"income_multiplier_1": {Name: "Income Boost I (+10%)", Cost: 5, Bonus: 0.10, Kind: UpgradeIncome},
	"income_multiplier_2": {Name: "Income Boost II (+25%)", Cost: 15, Bonus: 0.25, Kind: UpgradeIncome},
	"income_multiplier_3": {Name: "Income Boost III (+50%)", Cost: 35, Bonus: 0.50, Kind: UpgradeIncome},
	"income_multiplier_4": {Name: "Income Boost IV (+100%)", Cost: 75, Bonus: 1.00, Kind: UpgradeIncome},
	"starting_money_1":    {Name: "Rich Start I (+$25K)", Cost: 8, Bonus: 25000, Kind: UpgradeStartingMoney},
	"starting_money_2":    {Name: "Rich Start II (+$100K)", Cost: 20, Bonus: 100000, Kind: UpgradeStartingMoney},
	"starting_money_3":    {Name: "Rich Start III (+$500K)", Cost: 50, Bonus: 500000, Kind: UpgradeStartingMoney},
	"faster_laws":         {Name: "Faster Laws (-25% taps required)", Cost: 12, Bonus: 0.25, Kind: UpgradeFasterLaws},
	"better_events":       {Name: "Better Events (+20% positive outcomes)", Cost: 18, Bonus: 0.20, Kind: UpgradeBetterEvents},
	"diplomatic_master":   {Name: "Diplomatic Master (-30% alliance costs)", Cost: 30, Bonus: 0.30, Kind: UpgradeDiplomaticMaster},
}

// UpgradeKindOf maps a stored upgrade type back to its kind. Unknown
// types (removed from the catalog) count as no modifier.
func UpgradeKindOf(upgradeType string) (UpgradeKind, bool) {
	u, ok := PrestigeUpgrades[upgradeType]
	if !ok {
		return "", false
	}
	return u.Kind, true
}
