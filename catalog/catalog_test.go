// catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLawCatalogSane(t *testing.T) {
	seenNames := map[string]bool{}
	for key, law := range Laws {
		assert.NotEmpty(t, law.Name, "law %s has no name", key)
		assert.Positive(t, law.TapsRequired, "law %s has no tap cost", key)
		assert.False(t, seenNames[law.Name], "duplicate law name %s", law.Name)
		seenNames[law.Name] = true

		// Economy effects are fractional deltas, never whole multipliers.
		assert.Greater(t, law.Effects.Economy, -1.0, "law %s would zero the economy", key)
		assert.Less(t, law.Effects.Economy, 1.0, "law %s economy effect out of range", key)
	}
}

func TestLawByKey(t *testing.T) {
	law, ok := LawByKey("MINIMUM_WAGE")
	assert.True(t, ok)
	assert.Equal(t, "Minimum Wage Increase", law.Name)

	_, ok = LawByKey("NOT_A_LAW")
	assert.False(t, ok)
}

func TestDonationTiersOrderedByRarity(t *testing.T) {
	for i := 1; i < len(Donations); i++ {
		assert.Less(t, Donations[i].Weight, Donations[i-1].Weight, "tiers must go rare-ward")
		assert.Greater(t, Donations[i].MinAmount, Donations[i-1].MinAmount)
	}
	for _, tier := range Donations {
		assert.LessOrEqual(t, tier.MinAmount, tier.MaxAmount)
	}
}

func TestUnitAndUpgradeCatalogs(t *testing.T) {
	for key, unit := range Units {
		assert.Positive(t, unit.Cost, "unit %s", key)
		assert.Positive(t, unit.Strength, "unit %s", key)
	}
	for key, upgrade := range PrestigeUpgrades {
		assert.Positive(t, upgrade.Cost, "upgrade %s", key)
		kind, ok := UpgradeKindOf(key)
		assert.True(t, ok)
		assert.Equal(t, upgrade.Kind, kind)
	}
}

func TestRebelAttacksHaveCosts(t *testing.T) {
	for key, attack := range RebelAttacks {
		assert.Positive(t, attack.MilitaryCost, "attack %s", key)
		assert.Positive(t, attack.MoneyCost, "attack %s", key)
	}
}
