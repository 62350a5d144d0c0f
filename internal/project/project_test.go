package project_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/project"
	"github.com/johnwards/temple/internal/testhelpers"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.NewMemStore()

	p, err := project.Create(ctx, repo, project.CreateRequest{Name: "Book Store", Description: "Sells books"})
	require.NoError(t, err)
	assert.Equal(t, "Book Store", p.Name)
	assert.Equal(t, "book-store", p.Slug)
	require.NotNil(t, p.Description)
	assert.Equal(t, "Sells books", *p.Description)
	assert.False(t, p.Archived())
}

func TestCreate_NoDescription(t *testing.T) {
	repo := testhelpers.NewMemStore()

	p, err := project.Create(context.Background(), repo, project.CreateRequest{Name: "Library"})
	require.NoError(t, err)
	assert.Nil(t, p.Description)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"blank", "", "name can't be blank"},
		{"too long", strings.Repeat("a", 51), "name is too long, maximum length is 50 bytes"},
		{"no slug", "!!!", "name must contain a letter or a digit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testhelpers.NewMemStore()
			_, err := project.Create(context.Background(), repo, project.CreateRequest{Name: tt.input})
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Equal(t, tt.message, domain.MessageOf(err))
			assert.Empty(t, repo.Projects)
		})
	}
}

func TestCreate_FiftyBytesAccepted(t *testing.T) {
	repo := testhelpers.NewMemStore()

	_, err := project.Create(context.Background(), repo, project.CreateRequest{Name: strings.Repeat("a", 50)})
	require.NoError(t, err)
}

func TestCreate_DuplicateSlug(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.NewMemStore()

	_, err := project.Create(ctx, repo, project.CreateRequest{Name: "Book Store"})
	require.NoError(t, err)

	_, err = project.Create(ctx, repo, project.CreateRequest{Name: "book store!"})
	require.ErrorIs(t, err, domain.ErrFailedPrecondition)
}

func TestGet_NotFound(t *testing.T) {
	repo := testhelpers.NewMemStore()

	_, err := project.Get(context.Background(), repo, project.GetRequest{Slug: "missing"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArchiveRestore(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.NewMemStore()

	_, err := project.Create(ctx, repo, project.CreateRequest{Name: "Shop"})
	require.NoError(t, err)

	p, err := project.Archive(ctx, repo, project.ArchiveRequest{Slug: "shop"})
	require.NoError(t, err)
	assert.True(t, p.Archived())

	_, err = project.Archive(ctx, repo, project.ArchiveRequest{Slug: "shop"})
	require.ErrorIs(t, err, domain.ErrFailedPrecondition)

	p, err = project.Restore(ctx, repo, project.RestoreRequest{Slug: "shop"})
	require.NoError(t, err)
	assert.False(t, p.Archived())

	_, err = project.Restore(ctx, repo, project.RestoreRequest{Slug: "shop"})
	require.ErrorIs(t, err, domain.ErrFailedPrecondition)
}

func TestList_Filter(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.NewMemStore()

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := project.Create(ctx, repo, project.CreateRequest{Name: name})
		require.NoError(t, err)
	}
	_, err := project.Archive(ctx, repo, project.ArchiveRequest{Slug: "beta"})
	require.NoError(t, err)

	slugs := func(filter domain.ArchiveFilter) []string {
		ps, err := project.List(ctx, repo, project.ListRequest{Filter: filter})
		require.NoError(t, err)
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.Slug
		}
		return out
	}

	assert.Equal(t, []string{"alpha", "gamma"}, slugs(domain.ActiveOnly))
	assert.Equal(t, []string{"beta"}, slugs(domain.ArchivedOnly))
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, slugs(domain.AnyArchiveState))
}

func TestRename(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.NewMemStore()

	_, err := project.Create(ctx, repo, project.CreateRequest{Name: "Shop", Description: "kept"})
	require.NoError(t, err)

	p, err := project.Rename(ctx, repo, project.RenameRequest{Slug: "shop", Name: "Corner Shop"})
	require.NoError(t, err)
	assert.Equal(t, "corner-shop", p.Slug)
	require.NotNil(t, p.Description)
	assert.Equal(t, "kept", *p.Description)

	_, err = project.Get(ctx, repo, project.GetRequest{Slug: "shop"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_ClearDescription(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.NewMemStore()

	_, err := project.Create(ctx, repo, project.CreateRequest{Name: "Shop", Description: "old"})
	require.NoError(t, err)

	empty := ""
	p, err := project.Update(ctx, repo, project.UpdateRequest{Slug: "shop", Description: &empty})
	require.NoError(t, err)
	assert.Equal(t, "shop", p.Slug)
	assert.Nil(t, p.Description)
}

func TestUpdate_InvalidNameChecksBeforeLookup(t *testing.T) {
	repo := testhelpers.NewMemStore()

	blank := ""
	_, err := project.Update(context.Background(), repo, project.UpdateRequest{Slug: "missing", Name: &blank})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.NewMemStore()

	_, err := project.Create(ctx, repo, project.CreateRequest{Name: "Shop"})
	require.NoError(t, err)

	require.NoError(t, project.Delete(ctx, repo, project.DeleteRequest{Slug: "shop"}))
	require.ErrorIs(t, project.Delete(ctx, repo, project.DeleteRequest{Slug: "shop"}), domain.ErrNotFound)
}
