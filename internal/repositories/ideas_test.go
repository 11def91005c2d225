package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/ideaforge/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdeaRepository_OwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	users := NewUserRepository(db)
	ideas := NewIdeaRepository(db)

	alice := mustUser(t, users, "alice")
	bob := mustUser(t, users, "bob")
	idea := mustIdea(t, ideas, alice, "Alice's idea", "health")

	_, err := ideas.GetByID(ctx, idea.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var u models.IdeaUpdate
	u.SetTitle("hijacked")
	_, err = ideas.Update(ctx, idea.ID, bob.ID, u)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ideas.ToggleFavorite(ctx, idea.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, ideas.Delete(ctx, idea.ID, bob.ID), ErrNotFound)

	list, err := ideas.ListByUser(ctx, bob.ID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := ideas.GetByID(ctx, idea.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice's idea", got.Title)
	assert.False(t, got.IsFavorite)
}

func TestIdeaRepository_UnknownID(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	alice := mustUser(t, NewUserRepository(db), "alice")
	ideas := NewIdeaRepository(db)

	_, err := ideas.GetByID(ctx, uuid.New(), alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, ideas.Delete(ctx, uuid.New(), alice.ID), ErrNotFound)
}

func TestIdeaRepository_ToggleFavoriteTwice(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	alice := mustUser(t, NewUserRepository(db), "alice")
	ideas := NewIdeaRepository(db)
	idea := mustIdea(t, ideas, alice, "t", "health")

	first, err := ideas.ToggleFavorite(ctx, idea.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, first.IsFavorite)

	second, err := ideas.ToggleFavorite(ctx, idea.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, second.IsFavorite)

	favs, err := ideas.ListFavorites(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestIdeaRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	alice := mustUser(t, NewUserRepository(db), "alice")
	ideas := NewIdeaRepository(db)
	idea := mustIdea(t, ideas, alice, "Original", "health")

	t.Run("empty update leaves the idea untouched", func(t *testing.T) {
		before, err := ideas.GetByID(ctx, idea.ID, alice.ID)
		require.NoError(t, err)

		update, _, err := models.DecodeIdeaUpdate([]byte(`{"title":null,"unknown":"x"}`))
		require.NoError(t, err)

		got, err := ideas.Update(ctx, idea.ID, alice.ID, update)
		require.NoError(t, err)
		assert.Equal(t, "Original", got.Title)
		assert.Equal(t, "desc of Original", *got.Description)
		assert.Equal(t, "health", *got.Industry)
		assert.True(t, got.UpdatedAt.Equal(before.UpdatedAt))
	})

	t.Run("partial update only touches set fields", func(t *testing.T) {
		time.Sleep(5 * time.Millisecond)
		var u models.IdeaUpdate
		u.SetTitle("Renamed")
		u.SetMarketPotential("huge")

		got, err := ideas.Update(ctx, idea.ID, alice.ID, u)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
		require.NotNil(t, got.MarketPotential)
		assert.Equal(t, "huge", *got.MarketPotential)
		assert.Equal(t, "desc of Original", *got.Description)
		assert.Equal(t, alice.ID, got.UserID)
		assert.True(t, got.UpdatedAt.After(idea.UpdatedAt))
	})
}

func TestIdeaRepository_DeleteAndPaging(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	alice := mustUser(t, NewUserRepository(db), "alice")
	ideas := NewIdeaRepository(db)

	var created []*models.Idea
	for _, title := range []string{"one", "two", "three"} {
		created = append(created, mustIdea(t, ideas, alice, title, "health"))
	}

	page, err := ideas.ListByUser(ctx, alice.ID, 0, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := ideas.ListByUser(ctx, alice.ID, 2, 10)
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	require.NoError(t, ideas.Delete(ctx, created[0].ID, alice.ID))
	_, err = ideas.GetByID(ctx, created[0].ID, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := ideas.ListByUser(ctx, alice.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
