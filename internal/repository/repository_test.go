package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nurpe/freightops/internal/model"
)

func TestRequestRepository_preservesInsertionOrder(t *testing.T) {
	repo := NewRequestRepository()
	repo.Save(model.TransportRequest{ID: "b"})
	repo.Save(model.TransportRequest{ID: "a"})
	repo.Save(model.TransportRequest{ID: "c"})

	// Updating does not move the record.
	repo.Save(model.TransportRequest{ID: "a", IssuedBy: "Мария"})

	list := repo.List()
	require.Len(t, list, 3)
	require.Equal(t, "b", list[0].ID)
	require.Equal(t, "a", list[1].ID)
	require.Equal(t, "c", list[2].ID)
	require.Equal(t, "Мария", list[1].IssuedBy)
}

func TestRequestRepository_getUnknown(t *testing.T) {
	repo := NewRequestRepository()
	_, err := repo.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_deleteAndLookup(t *testing.T) {
	repo := NewUserRepository()
	repo.Save(model.User{ID: "1", Email: "chief@logistics.com"})
	repo.Save(model.User{ID: "2", Email: "maria@logistics.com"})

	user, err := repo.GetByEmail("maria@logistics.com")
	require.NoError(t, err)
	require.Equal(t, "2", user.ID)

	require.NoError(t, repo.Delete("1"))
	require.ErrorIs(t, repo.Delete("1"), ErrNotFound)

	list := repo.List()
	require.Len(t, list, 1)
	require.Equal(t, "2", list[0].ID)
}

func TestActivityRepository_appendOnly(t *testing.T) {
	repo := NewActivityRepository()
	repo.Append(model.ActivityEntry{ID: "a1"})
	repo.Append(model.ActivityEntry{ID: "a2"})

	list := repo.List()
	require.Len(t, list, 2)

	// Mutating the returned slice must not affect the store.
	list[0].ID = "changed"
	require.Equal(t, "a1", repo.List()[0].ID)
}
