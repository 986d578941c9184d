package session

import (
	"context"
	"sync"
	"testing"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_IssueAndResolve(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Issue(ctx, model.EmployeeIdentity{ID: 1, Username: "quanadmin", Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "quanadmin", identity.Username)
	assert.Equal(t, model.RoleAdmin, identity.Role)
}

func TestMemoryStore_TokensAreUnique(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	identity := model.EmployeeIdentity{ID: 1, Username: "quanadmin", Role: model.RoleAdmin}

	token1, err := store.Issue(ctx, identity)
	require.NoError(t, err)
	token2, err := store.Issue(ctx, identity)
	require.NoError(t, err)

	assert.NotEqual(t, token1, token2)

	// Both tokens stay valid until revoked.
	_, err = store.Resolve(ctx, token1)
	assert.NoError(t, err)
	_, err = store.Resolve(ctx, token2)
	assert.NoError(t, err)
}

func TestMemoryStore_Resolve_UnknownToken(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Resolve(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestMemoryStore_Revoke(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Issue(ctx, model.EmployeeIdentity{ID: 2, Username: "employee_a", Role: model.RoleEmployee})
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, token))

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// Revoking twice is a no-op.
	assert.NoError(t, store.Revoke(ctx, token))
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			token, err := store.Issue(ctx, model.EmployeeIdentity{ID: uint(n), Username: "employee", Role: model.RoleEmployee})
			assert.NoError(t, err)
			_, err = store.Resolve(ctx, token)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
}
