package seed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nurpe/freightops/internal/model"
	"github.com/nurpe/freightops/internal/repository"
)

type credRecorder struct {
	byEmail map[string]string
}

func (c *credRecorder) SetCredential(email, password string) {
	c.byEmail[email] = password
}

func TestLoad(t *testing.T) {
	users := repository.NewUserRepository()
	requests := repository.NewRequestRepository()
	documents := repository.NewDocumentRepository()
	activity := repository.NewActivityRepository()
	creds := &credRecorder{byEmail: map[string]string{}}

	Load(users, requests, documents, activity, creds)

	require.Len(t, users.List(), 3)
	require.Len(t, requests.List(), 3)
	require.Len(t, documents.List(), 2)
	require.Len(t, activity.List(), 3)
	require.Len(t, creds.byEmail, 3)
	require.Equal(t, "chief123", creds.byEmail["chief@logistics.com"])
}

func TestFixturesAreCoherent(t *testing.T) {
	requestIDs := map[string]struct{}{}
	issuers := map[string]struct{}{}
	for _, account := range Accounts() {
		require.True(t, account.User.Role.Valid())
		issuers[account.User.Name] = struct{}{}
	}

	chiefs := 0
	for _, account := range Accounts() {
		if account.User.IsChief() {
			chiefs++
		}
	}
	require.Equal(t, 1, chiefs)

	for _, req := range Requests() {
		requestIDs[req.ID] = struct{}{}
		require.True(t, req.Status.Valid(), req.ID)
		require.Contains(t, issuers, req.IssuedBy, req.ID)
		require.GreaterOrEqual(t, req.Cargo.Weight, 0.0, req.ID)
		// The stored margin always agrees with the derivation.
		require.Equal(t,
			model.ComputeMargin(req.Payment.PriceFromCustomer, req.Payment.CostToDriver),
			req.Payment.TotalMargin, req.ID)
		require.False(t, req.Dates.Loading.After(req.Dates.Unloading), req.ID)
	}

	for _, doc := range Documents() {
		require.True(t, doc.Type.Valid(), doc.ID)
		require.True(t, doc.Status.Valid(), doc.ID)
		require.Contains(t, requestIDs, doc.RequestID, doc.ID)
	}

	for _, entry := range Activity() {
		require.True(t, entry.Action.Valid(), entry.ID)
		if entry.RequestID != "" {
			require.Contains(t, requestIDs, entry.RequestID, entry.ID)
		}
	}
}
