package content

import (
	"context"
	"testing"

	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_DefaultThenReplace(t *testing.T) {
	mem := storage.NewMemoryStorage()
	d := NewDocument(SettingsKey, NewStore(mem, logging.Discard()), DefaultSettings)
	ctx := context.Background()

	assert.Equal(t, DefaultSettings(), d.Get(ctx))

	s := Settings{SiteTitle: "New", Social: Social{Github: "https://github.com/Zachkp"}}
	assert.Equal(t, s, d.Replace(ctx, s))
	assert.Equal(t, s, d.Get(ctx))

	raw, err := mem.Get(ctx, SettingsKey)
	require.NoError(t, err)
	assert.Contains(t, raw, `"siteTitle":"New"`)
}

func TestDocument_CorruptFallsBackToDefault(t *testing.T) {
	mem := storage.NewMemoryStorage()
	d := NewDocument(SettingsKey, NewStore(mem, logging.Discard()), DefaultSettings)
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, SettingsKey, "{broken"))
	assert.Equal(t, DefaultSettings(), d.Get(ctx))
}

func TestDocument_Seed(t *testing.T) {
	d := NewDocument(SettingsKey, NewStore(storage.NewMemoryStorage(), logging.Discard()), DefaultSettings)
	ctx := context.Background()

	assert.True(t, d.Seed(ctx, false))
	d.Replace(ctx, Settings{SiteTitle: "Mine"})
	assert.False(t, d.Seed(ctx, false))
	assert.Equal(t, "Mine", d.Get(ctx).SiteTitle)
}
