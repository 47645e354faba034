// services/tapvalue_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveTapValueNoModifiers(t *testing.T) {
	v := EffectiveTapValue(10, TapModifiers{CountryBonus: 1.0, PrestigeMultiplier: 1.0})
	assert.Equal(t, int64(10), v)
}

func TestEffectiveTapValueAbsentRowsAreIdentity(t *testing.T) {
	// Zero-valued bonus fields mean "row missing", not "multiply by zero".
	v := EffectiveTapValue(10, TapModifiers{})
	assert.Equal(t, int64(10), v)
}

func TestEffectiveTapValueFloorsAfterEachStage(t *testing.T) {
	// Two +15% laws on base 10: per-stage flooring gives
	// floor(10×1.15)=11, floor(11×1.15)=12 — not floor(10×1.3225)=13.
	v := EffectiveTapValue(10, TapModifiers{
		CountryBonus:       1.0,
		PrestigeMultiplier: 1.0,
		LawEffects:         []float64{0.15, 0.15},
	})
	assert.Equal(t, int64(12), v)
}

func TestEffectiveTapValueNeverBelowOne(t *testing.T) {
	v := EffectiveTapValue(10, TapModifiers{
		CountryBonus:       1.0,
		PrestigeMultiplier: 1.0,
		LawEffects:         []float64{-0.99, -0.99, -0.99},
	})
	assert.Equal(t, int64(1), v)
}

func TestEffectiveTapValueFullPipeline(t *testing.T) {
	// base 10 → country 1.2 → 12 → prestige 1.3 → 15 → law -0.08 → 13
	// → alliance +0.08 → 14 → upgrade +0.10 → 15 → +strength 100/2 = 65
	v := EffectiveTapValue(10, TapModifiers{
		CountryBonus:       1.2,
		PrestigeMultiplier: 1.3,
		LawEffects:         []float64{-0.08},
		AllianceBonuses:    []float64{0.08},
		UpgradeBonuses:     []float64{0.10},
		MilitaryStrength:   100,
	})
	assert.Equal(t, int64(65), v)
}

func TestMilitaryTapBonus(t *testing.T) {
	assert.Equal(t, int64(0), MilitaryTapBonus(0))
	assert.Equal(t, int64(0), MilitaryTapBonus(1))
	assert.Equal(t, int64(5), MilitaryTapBonus(10))
	assert.Equal(t, int64(0), MilitaryTapBonus(-50))
}
