package auth

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/freightops/internal/model"
	"github.com/nurpe/freightops/internal/repository"
	"github.com/nurpe/freightops/internal/service"
	"github.com/nurpe/freightops/internal/session"
)

func newProvider(t *testing.T) (*Provider, *repository.ActivityRepository) {
	t.Helper()
	users := repository.NewUserRepository()
	users.Save(model.User{ID: "2", Name: "Мария Сидорова", Role: model.RoleLogistician, Email: "maria@logistics.com"})

	activityRepo := repository.NewActivityRepository()
	activity := service.NewActivityService(activityRepo, zerolog.Nop())
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"))

	provider := NewProvider(users, sessions, activity, zerolog.Nop())
	provider.SetCredential("maria@logistics.com", "maria123")
	return provider, activityRepo
}

func TestProvider_Login(t *testing.T) {
	provider, activity := newProvider(t)

	require.Nil(t, provider.CurrentUser())

	require.True(t, provider.Login("maria@logistics.com", "maria123"))

	user := provider.CurrentUser()
	require.NotNil(t, user)
	require.Equal(t, "Мария Сидорова", user.Name)

	entries := activity.List()
	require.Len(t, entries, 1)
	require.Equal(t, model.ActionLogin, entries[0].Action)
	require.Equal(t, "2", entries[0].UserID)
}

func TestProvider_Login_rejected(t *testing.T) {
	provider, activity := newProvider(t)

	require.False(t, provider.Login("maria@logistics.com", "wrong"))
	require.False(t, provider.Login("nobody@logistics.com", "maria123"))

	require.Nil(t, provider.CurrentUser())
	require.Empty(t, activity.List())
}

func TestProvider_Logout(t *testing.T) {
	provider, _ := newProvider(t)

	require.True(t, provider.Login("maria@logistics.com", "maria123"))
	provider.Logout()
	require.Nil(t, provider.CurrentUser())

	// Logging out twice is harmless.
	provider.Logout()
}

func TestProvider_RemoveCredential(t *testing.T) {
	provider, _ := newProvider(t)

	provider.RemoveCredential("maria@logistics.com")
	require.False(t, provider.Login("maria@logistics.com", "maria123"))
}
