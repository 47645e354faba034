// catalog/units.go
package catalog

const (
	UnitInfantry = "INFANTRY"
	UnitTanks    = "TANKS"
	UnitAirForce = "AIR_FORCE"
	UnitNavy     = "NAVY"
)

// Unit is a recruitable military unit type.
type Unit struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
	Strength    int64  `json:"strength"`
}

var Units = map[string]Unit{
	UnitInfantry: {
		Name:        "Infantry",
		Description: "Basic ground troops for defense and offense",
		Cost:        500,
		Strength:    10,
	},
	UnitTanks: {
		Name:        "Tanks",
		Description: "Armored vehicles for heavy combat",
		Cost:        25000,
		Strength:    50,
	},
	UnitAirForce: {
		Name:        "Fighter Jets",
		Description: "Air superiority fighters",
		Cost:        50000,
		Strength:    100,
	},
	UnitNavy: {
		Name:        "Naval Ships",
		Description: "Naval vessels for sea control",
		Cost:        100000,
		Strength:    200,
	},
}
