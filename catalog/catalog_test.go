package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inErrors "github.com/azgaming/storefront/internal/errors"
)

func TestDefaultCatalogPlatforms(t *testing.T) {
	c := Default()

	tests := []struct {
		platform Platform
		count    int
		firstID  string
	}{
		{platform: PlatformPS4, count: 10, firstID: "ps4-001"},
		{platform: PlatformPS5, count: 10, firstID: "ps5-001"},
		{platform: PlatformPC, count: 10, firstID: "pc-001"},
	}
	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			items := c.ListByPlatform(tt.platform)
			require.Len(t, items, tt.count)
			assert.Equal(t, tt.firstID, items[0].ID, "definition order must be preserved")
			for _, item := range items {
				assert.Equal(t, tt.platform, item.Platform)
			}
		})
	}
	assert.Len(t, c.Items(), 30)
}

func TestFindByID(t *testing.T) {
	c := Default()

	item, ok := c.FindByID("ps4-001")
	require.True(t, ok)
	assert.Equal(t, "The Last of Us Part II", item.Title)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("39.99")))

	_, ok = c.FindByID("ps9-999")
	assert.False(t, ok)
}

func TestFreeToPlayPriceIsValid(t *testing.T) {
	c := Default()

	item, ok := c.FindByID("pc-003")
	require.True(t, ok)
	assert.True(t, item.Price.IsZero(), "zero price means free to play")
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	items := []Item{
		{ID: "pc-001", Title: "Cyberpunk 2077", Platform: PlatformPC},
		{ID: "pc-001", Title: "Cyberpunk 2077 again", Platform: PlatformPC},
	}

	_, err := New(items)

	assert.ErrorIs(t, err, inErrors.ErrDuplicateItem)
}
