package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnwards/temple/internal/attributetype"
	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/seed"
	"github.com/johnwards/temple/internal/store"
	"github.com/johnwards/temple/internal/testhelpers"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := store.New(testhelpers.NewMigratedDB(t))

	require.NoError(t, seed.Seed(ctx, s))

	types, err := attributetype.List(ctx, s)
	require.NoError(t, err)
	require.Len(t, types, 3)
	assert.Equal(t, "string", types[0].Slug)
	assert.Equal(t, "integer", types[1].Slug)
	assert.Equal(t, "boolean", types[2].Slug)
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.NewMemStore()

	for i := 0; i < 3; i++ {
		require.NoError(t, seed.Seed(ctx, repo))
	}
	assert.Len(t, repo.AttributeTypes, 3)
}

func TestSeed_KeepsEdits(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.NewMemStore()

	_, err := attributetype.Create(ctx, repo, attributetype.CreateRequest{Name: "String", Description: "custom"})
	require.NoError(t, err)
	require.NoError(t, seed.Seed(ctx, repo))

	at, err := attributetype.Get(ctx, repo, "string")
	require.NoError(t, err)
	require.NotNil(t, at.Description)
	assert.Equal(t, "custom", *at.Description)
	assert.Len(t, repo.AttributeTypes, 3)
}

func TestBootstrap_SeedsEmptyCatalogue(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.NewMemStore()

	require.NoError(t, seed.Bootstrap(ctx, repo))
	assert.Len(t, repo.AttributeTypes, 3)
}

func TestBootstrap_LeavesUserChanges(t *testing.T) {
	ctx := context.Background()
	s := store.New(testhelpers.NewMigratedDB(t))

	require.NoError(t, seed.Bootstrap(ctx, s))
	require.NoError(t, attributetype.Delete(ctx, s, "boolean"))
	_, err := attributetype.Update(ctx, s, attributetype.UpdateRequest{Slug: "string", Name: domain.Optional("Text")})
	require.NoError(t, err)

	require.NoError(t, seed.Bootstrap(ctx, s))

	types, err := attributetype.List(ctx, s)
	require.NoError(t, err)
	slugs := make([]string, 0, len(types))
	for _, at := range types {
		slugs = append(slugs, at.Slug)
	}
	assert.ElementsMatch(t, []string{"text", "integer"}, slugs)
}
