package content

import (
	"context"
	"testing"

	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/storage"
	"github.com/Zachkp/portfolio/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadAbsent(t *testing.T) {
	s := NewStore(storage.NewMemoryStorage(), logging.Discard())

	var got []Project
	assert.False(t, s.Load(context.Background(), ProjectsKey, &got))
	assert.Nil(t, got)
}

func TestStore_SaveThenLoad(t *testing.T) {
	s := NewStore(storage.NewMemoryStorage(), logging.Discard())
	ctx := context.Background()

	in := []Project{{ID: "a", Title: "Web App", Tags: []string{"go"}}}
	s.Save(ctx, ProjectsKey, in)

	var out []Project
	require.True(t, s.Load(ctx, ProjectsKey, &out))
	assert.Equal(t, in, out)
}

func TestStore_CorruptBlobIsAbsent(t *testing.T) {
	mem := storage.NewMemoryStorage()
	s := NewStore(mem, logging.Discard())
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, ProjectsKey, `[{"id": "a",`))

	var out []Project
	assert.False(t, s.Load(ctx, ProjectsKey, &out))
}

func TestStore_WrongShapeIsAbsent(t *testing.T) {
	mem := storage.NewMemoryStorage()
	s := NewStore(mem, logging.Discard())
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, ProjectsKey, `{"id": "not-a-list"}`))

	var out []Project
	assert.False(t, s.Load(ctx, ProjectsKey, &out))
}

func TestStore_UnavailableBackendFailsSoft(t *testing.T) {
	flaky := testutil.NewFlakyStorage()
	s := NewStore(flaky, logging.Discard())
	ctx := context.Background()

	flaky.FailSet(true)
	assert.NotPanics(t, func() { s.Save(ctx, ProjectsKey, []Project{{ID: "a"}}) })

	flaky.FailSet(false)
	s.Save(ctx, ProjectsKey, []Project{{ID: "a"}})

	flaky.FailGet(true)
	var out []Project
	assert.False(t, s.Load(ctx, ProjectsKey, &out))
}
