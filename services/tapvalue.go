// services/tapvalue.go
package services

import "math"

// TapModifiers is the full modifier context folded into one effective
// per-tap yield. Absent modifier rows are the identity (1.0 multipliers,
// empty slices, zero strength) — never errors.
type TapModifiers struct {
	CountryBonus       float64   // country economy bonus, default 1.0
	PrestigeMultiplier float64   // run-scoped prestige economy multiplier, default 1.0
	LawEffects         []float64 // economy effect per active law, e.g. -0.08
	AllianceBonuses    []float64 // income bonus per active alliance
	UpgradeBonuses     []float64 // bonus per income-multiplier permanent upgrade
	MilitaryStrength   int64
}

// floorMul multiplies, truncates, and clamps to ≥1. The tap value can
// never reach zero no matter how negative the compounded modifiers are.
func floorMul(v int64, mult float64) int64 {
	out := int64(math.Floor(float64(v) * mult))
	if out < 1 {
		out = 1
	}
	return out
}

// EffectiveTapValue folds the modifier chain into the per-tap yield.
//
// The order is a fixed pipeline, and the value is floored after *every*
// multiplicative stage rather than once on a combined product. That
// per-stage truncation compounds and is load-bearing for numeric parity
// with the live game — do not collapse the stages.
func EffectiveTapValue(base int64, m TapModifiers) int64 {
	v := base
	if v < 1 {
		v = 1
	}

	// 1. Country economy bonus.
	if m.CountryBonus != 0 {
		v = floorMul(v, m.CountryBonus)
	}

	// 2. Prestige run multiplier.
	if m.PrestigeMultiplier != 0 {
		v = floorMul(v, m.PrestigeMultiplier)
	}

	// 3. Active laws, compounded sequentially.
	for _, effect := range m.LawEffects {
		v = floorMul(v, 1+effect)
	}

	// 4. Alliance income bonuses.
	for _, bonus := range m.AllianceBonuses {
		v = floorMul(v, 1+bonus)
	}

	// 5. Income-multiplier permanent upgrades.
	for _, bonus := range m.UpgradeBonuses {
		v = floorMul(v, 1+bonus)
	}

	// 6. Flat military bonus, after all multiplicative stages.
	v += MilitaryTapBonus(m.MilitaryStrength)

	return v
}

// MilitaryTapBonus is the flat per-tap addition from standing military:
// half a point of currency per strength point, truncated.
func MilitaryTapBonus(strength int64) int64 {
	if strength <= 0 {
		return 0
	}
	return strength / 2
}
