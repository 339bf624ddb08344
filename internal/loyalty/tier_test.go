package loyalty_test

import (
	"testing"

	"credopass/internal/loyalty"

	"github.com/stretchr/testify/assert"
)

func TestForPoints(t *testing.T) {
	cases := []struct {
		points int
		want   loyalty.Tier
	}{
		{0, loyalty.TierBronze},
		{99, loyalty.TierBronze},
		{100, loyalty.TierSilver},
		{249, loyalty.TierSilver},
		{250, loyalty.TierGold},
		{499, loyalty.TierGold},
		{500, loyalty.TierPlatinum},
		{10000, loyalty.TierPlatinum},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, loyalty.ForPoints(c.points), "points=%d", c.points)
	}
}

func TestParseTier(t *testing.T) {
	tier, err := loyalty.ParseTier(" Gold ")
	assert.NoError(t, err)
	assert.Equal(t, loyalty.TierGold, tier)

	_, err = loyalty.ParseTier("diamond")
	assert.ErrorIs(t, err, loyalty.ErrUnknownTier)
}

func TestTiers_Ordered(t *testing.T) {
	assert.Equal(t,
		[]loyalty.Tier{loyalty.TierBronze, loyalty.TierSilver, loyalty.TierGold, loyalty.TierPlatinum},
		loyalty.Tiers(),
	)
}
