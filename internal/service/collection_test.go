package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavolo/internal/model"
	"tavolo/internal/storage"
)

// failStore fails every operation with a fixed error.
type failStore struct{ err error }

func (f failStore) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failStore) Set(context.Context, string, string) error         { return f.err }

func TestCollectionCorruptBlob(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "@users", "{not json"))

	_, err := NewUsers(store).All(ctx)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "@users", decodeErr.Key)
}

func TestCollectionStoreFailurePropagates(t *testing.T) {
	boom := errors.New("disk on fire")
	users := NewUsers(failStore{err: boom})
	ctx := context.Background()

	_, err := users.All(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = users.Save(ctx, model.UserPatch{Name: strPtr("Ada")})
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, users.Delete(ctx, "x"), boom)
}

func TestCollectionConcurrentCreates(t *testing.T) {
	store := storage.NewMemory()
	customers := NewCustomers(store)
	ctx := context.Background()

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("c%d@example.com", i)
			_, errs[i] = customers.Save(ctx, model.CustomerPatch{
				Name:  strPtr("Concurrent"),
				Email: &email,
				Phone: strPtr("555-0100"),
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	// The read-modify-write cycle is serialized per collection, so no
	// create may overwrite another.
	all, err := customers.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)
}

func TestCollectionEmptyStore(t *testing.T) {
	users := NewUsers(storage.NewMemory())
	ctx := context.Background()

	all, err := users.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, ok, err := users.ByID(ctx, "anything")
	require.NoError(t, err)
	assert.False(t, ok)
}
