package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog(t *testing.T) {
	c := New(Seed())

	products := c.FindAll()
	assert.Len(t, products, 15)

	assert.Equal(t, []string{"Health", "Performance", "Protein", "Recovery"}, c.Categories())

	best := c.BestSellers()
	assert.Len(t, best, 6)
	for _, p := range best {
		assert.True(t, p.IsBestSeller)
	}
}

func TestFindByID(t *testing.T) {
	c := New(Seed())

	p, ok := c.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, "Whey Protein Isolate", p.Name)
	assert.InDelta(t, 49.99, p.Price, 0.001)

	_, ok = c.FindByID("999")
	assert.False(t, ok)
}

func TestFindAllReturnsSnapshot(t *testing.T) {
	c := New(Seed())

	products := c.FindAll()
	products[0].Name = "mutated"

	assert.Equal(t, "Whey Protein Isolate", c.FindAll()[0].Name)
}
