package service

import (
	"context"

	"tavolo/internal/model"
	"tavolo/internal/storage"
)

const usersKey = "@users"

// Users manages the user collection. Updates against an unknown identifier
// fail with ErrNotFound.
type Users struct {
	c collection[model.User, *model.User]
}

// NewUsers creates the user service over the given store.
func NewUsers(store storage.Store) *Users {
	return &Users{c: collection[model.User, *model.User]{
		store: store,
		key:   usersKey,
		mode:  strictUpdate,
	}}
}

// All returns every user in storage order.
func (s *Users) All(ctx context.Context) ([]model.User, error) {
	return s.c.all(ctx)
}

// ByID returns the user with the given identifier, or ok=false.
func (s *Users) ByID(ctx context.Context, id string) (model.User, bool, error) {
	return s.c.byID(ctx, id)
}

// ByEmail returns the first user with the given email, or ok=false.
func (s *Users) ByEmail(ctx context.Context, email string) (model.User, bool, error) {
	return s.c.first(ctx, func(u *model.User) bool { return u.Email == email })
}

// Save creates the user when the patch has no ID, otherwise merges the
// supplied fields into the stored record.
func (s *Users) Save(ctx context.Context, p model.UserPatch) (model.User, error) {
	return s.c.save(ctx, p.ID,
		func() model.User {
			var u model.User
			applyUserPatch(&u, p)
			return u
		},
		func(u *model.User) { applyUserPatch(u, p) },
	)
}

// Delete removes the user. Unknown identifiers are a no-op.
func (s *Users) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, id)
}

func applyUserPatch(u *model.User, p model.UserPatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}
