package atmosphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LCG_isDeterministicForSameSeed(t *testing.T) {
	a := newLCG(42)
	b := newLCG(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.next(), b.next())
	}
}

func Test_LCG_staysWithinUnitRange(t *testing.T) {
	g := newLCG(1)
	for i := 0; i < 1000; i++ {
		v := g.next()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func Test_Draw_suppressedReturnsEmpty(t *testing.T) {
	g := New(1, []Message{{Category: "FOREST", Text: "A bird chirps.", Chance: 1.0}})
	g.SetSuppressed(true)
	assert.Equal(t, "", g.Draw("FOREST"))
	assert.True(t, g.Suppressed())
}

func Test_Draw_alwaysTriggersAtFullChance(t *testing.T) {
	g := New(1, []Message{{Category: "FOREST", Text: "A bird chirps.", Chance: 1.0}})
	assert.Equal(t, "A bird chirps.", g.Draw("FOREST"))
}

func Test_Draw_neverTriggersAtZeroChance(t *testing.T) {
	g := New(1, []Message{{Category: "FOREST", Text: "A bird chirps.", Chance: 0.0}})
	for i := 0; i < 20; i++ {
		assert.Equal(t, "", g.Draw("FOREST"))
	}
}

func Test_Draw_ignoresOtherCategories(t *testing.T) {
	g := New(1, []Message{{Category: "UNDERGROUND", Text: "Water drips.", Chance: 1.0}})
	assert.Equal(t, "", g.Draw("FOREST"))
}
