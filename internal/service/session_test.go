package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavolo/internal/model"
	"tavolo/internal/storage"
)

func TestSessionLifecycle(t *testing.T) {
	store := storage.NewMemory()
	session := NewSession(store)
	ctx := context.Background()

	_, ok, err := session.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	user := model.User{
		Meta:  model.Meta{ID: "u1"},
		Name:  "Ada",
		Email: "ada@example.com",
		Role:  model.RoleCustomer,
	}
	require.NoError(t, session.SignIn(ctx, user))

	// A fresh session over the same store restores the user.
	got, ok, err := NewSession(store).Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, got)

	require.NoError(t, session.SignOut(ctx))
	_, ok, err = session.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionCorruptValue(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(context.Background(), "@current_user", "{broken"))

	_, _, err := NewSession(store).Current(context.Background())
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
