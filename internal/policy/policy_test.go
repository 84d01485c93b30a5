package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nurpe/freightops/internal/model"
)

var (
	chief = model.User{ID: "1", Name: "Иван Петров", Role: model.RoleChiefLogistician}
	maria = model.User{ID: "2", Name: "Мария Сидорова", Role: model.RoleLogistician}
	alex  = model.User{ID: "3", Name: "Алексей Козлов", Role: model.RoleLogistician}
)

func requests() []model.TransportRequest {
	return []model.TransportRequest{
		{ID: "r1", IssuedBy: "Мария Сидорова", Driver: model.Driver{Name: "Сергей Иванов"}},
		{ID: "r2", IssuedBy: "Алексей Козлов", Driver: model.Driver{Name: "Болат Ахметов"}},
		{ID: "r3", IssuedBy: "Иван Петров", Driver: model.Driver{Name: "водитель Мария Сидорова"}},
	}
}

func TestScopeRequests_chiefSeesEverything(t *testing.T) {
	rs := requests()
	require.Equal(t, rs, ScopeRequests(rs, chief))
}

func TestScopeRequests_logisticianScope(t *testing.T) {
	scoped := ScopeRequests(requests(), maria)
	require.Len(t, scoped, 2)
	for _, req := range scoped {
		visible := req.IssuedBy == maria.Name || strings.Contains(req.Driver.Name, maria.Name)
		require.True(t, visible, req.ID)
	}

	scoped = ScopeRequests(requests(), alex)
	require.Len(t, scoped, 1)
	require.Equal(t, "r2", scoped[0].ID)
}

func TestCanEdit(t *testing.T) {
	req := model.TransportRequest{IssuedBy: "Мария Сидорова"}
	require.True(t, CanEdit(req, chief))
	require.True(t, CanEdit(req, maria))
	require.False(t, CanEdit(req, alex))
}

func TestCanManageUsers(t *testing.T) {
	require.True(t, CanManageUsers(chief))
	require.False(t, CanManageUsers(maria))
}

func TestCanDeleteUser(t *testing.T) {
	// Nobody may delete their own account, the chief included.
	require.False(t, CanDeleteUser(chief, chief))
	require.False(t, CanDeleteUser(maria, maria))

	require.True(t, CanDeleteUser(maria, chief))
	require.False(t, CanDeleteUser(alex, maria))
}

func TestScopeActivity(t *testing.T) {
	entries := []model.ActivityEntry{
		{ID: "a1", UserID: "2"},
		{ID: "a2", UserID: "3"},
		{ID: "a3", UserID: "2"},
	}

	require.Equal(t, entries, ScopeActivity(entries, chief))

	scoped := ScopeActivity(entries, maria)
	require.Len(t, scoped, 2)
	require.Equal(t, "a1", scoped[0].ID)
	require.Equal(t, "a3", scoped[1].ID)
}
