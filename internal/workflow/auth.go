package workflow

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tavolo/internal/logger"
	"tavolo/internal/model"
	"tavolo/internal/service"
)

var (
	// ErrEmailTaken is returned by Register when the email already has an
	// account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUnknownEmail is returned by Login when no account has the email.
	ErrUnknownEmail = errors.New("no account for email")
	// ErrWrongPassword is returned by Login on a password mismatch.
	ErrWrongPassword = errors.New("wrong password")
)

// Auth orchestrates registration and sign-in over the user service and the
// session. Passwords are compared as stored, in the clear.
type Auth struct {
	users   *service.Users
	session *service.Session
}

// NewAuth creates the auth workflow.
func NewAuth(users *service.Users, session *service.Session) *Auth {
	return &Auth{users: users, session: session}
}

// RegisterInput is the registration form payload.
type RegisterInput struct {
	Name     string         `validate:"required"`
	Email    string         `validate:"required,email"`
	Phone    string         `validate:"required"`
	Password string         `validate:"required,min=6"`
	Role     model.UserRole `validate:"required,oneof=CUSTOMER RESTAURANT_OWNER"`
}

// Register creates an account and signs it in.
func (a *Auth) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	if err := validateStruct(in); err != nil {
		return model.User{}, err
	}

	if _, ok, err := a.users.ByEmail(ctx, in.Email); err != nil {
		return model.User{}, err
	} else if ok {
		return model.User{}, fmt.Errorf("%q: %w", in.Email, ErrEmailTaken)
	}

	user, err := a.users.Save(ctx, model.UserPatch{
		Name:     &in.Name,
		Email:    &in.Email,
		Phone:    &in.Phone,
		Password: &in.Password,
		Role:     &in.Role,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create account: %w", err)
	}

	if err := a.session.SignIn(ctx, user); err != nil {
		return model.User{}, err
	}
	logger.L().Info("account registered", zap.String("user", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// Login checks credentials and signs the user in.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, error) {
	user, ok, err := a.users.ByEmail(ctx, email)
	if err != nil {
		return model.User{}, err
	}
	if !ok {
		return model.User{}, fmt.Errorf("%q: %w", email, ErrUnknownEmail)
	}
	if user.Password != password {
		return model.User{}, ErrWrongPassword
	}

	if err := a.session.SignIn(ctx, user); err != nil {
		return model.User{}, err
	}
	logger.L().Info("signed in", zap.String("user", user.ID))
	return user, nil
}

// Logout clears the session.
func (a *Auth) Logout(ctx context.Context) error {
	return a.session.SignOut(ctx)
}
