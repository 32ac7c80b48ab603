package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavolo/internal/model"
	"tavolo/internal/storage"
)

func strPtr(s string) *string { return &s }

func TestUsersCreateRoundTrip(t *testing.T) {
	store := storage.NewMemory()
	users := NewUsers(store)
	ctx := context.Background()

	role := model.RoleCustomer
	created, err := users.Save(ctx, model.UserPatch{
		Name:     strPtr("Ada"),
		Email:    strPtr("ada@example.com"),
		Phone:    strPtr("555-0100"),
		Password: strPtr("hunter22"),
		Role:     &role,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	// A fresh service over the same store must see the persisted record.
	got, ok, err := NewUsers(store).ByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestUsersPartialUpdateKeepsOtherFields(t *testing.T) {
	store := storage.NewMemory()
	users := NewUsers(store)
	ctx := context.Background()

	role := model.RoleRestaurantOwner
	created, err := users.Save(ctx, model.UserPatch{
		Name:     strPtr("Ada"),
		Email:    strPtr("ada@example.com"),
		Phone:    strPtr("555-0100"),
		Password: strPtr("hunter22"),
		Role:     &role,
	})
	require.NoError(t, err)

	updated, err := users.Save(ctx, model.UserPatch{
		ID:    created.ID,
		Phone: strPtr("555-0199"),
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, "ada@example.com", updated.Email)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUsersUpdateUnknownID(t *testing.T) {
	users := NewUsers(storage.NewMemory())

	_, err := users.Save(context.Background(), model.UserPatch{
		ID:   "nope",
		Name: strPtr("Ghost"),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsersByEmail(t *testing.T) {
	store := storage.NewMemory()
	users := NewUsers(store)
	ctx := context.Background()

	role := model.RoleCustomer
	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := users.Save(ctx, model.UserPatch{
			Name:     strPtr("Someone"),
			Email:    strPtr(email),
			Phone:    strPtr("555-0100"),
			Password: strPtr("secret1"),
			Role:     &role,
		})
		require.NoError(t, err)
	}

	got, ok, err := users.ByEmail(ctx, "b@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b@example.com", got.Email)

	_, ok, err = users.ByEmail(ctx, "c@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}
