package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavolo/internal/model"
	"tavolo/internal/service"
	"tavolo/internal/storage"
)

func newAuth(t *testing.T) (*Auth, *service.Session) {
	t.Helper()
	store := storage.NewMemory()
	session := service.NewSession(store)
	return NewAuth(service.NewUsers(store), session), session
}

func registerInput() RegisterInput {
	return RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Phone:    "555-0100",
		Password: "hunter22",
		Role:     model.RoleCustomer,
	}
}

func TestRegisterSignsIn(t *testing.T) {
	auth, session := newAuth(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, registerInput())
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	current, ok, err := session.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, registerInput())
	require.NoError(t, err)

	in := registerInput()
	in.Name = "Other Ada"
	_, err = auth.Register(ctx, in)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	in := registerInput()
	in.Email = "not-an-email"
	_, err := auth.Register(ctx, in)
	assert.Error(t, err)

	in = registerInput()
	in.Password = "short"
	_, err = auth.Register(ctx, in)
	assert.Error(t, err)

	in = registerInput()
	in.Role = "ADMIN"
	_, err = auth.Register(ctx, in)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	auth, session := newAuth(t)
	ctx := context.Background()

	registered, err := auth.Register(ctx, registerInput())
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx))

	_, err = auth.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = auth.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrUnknownEmail)

	user, err := auth.Login(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	current, ok, err := session.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, registered.ID, current.ID)
}
