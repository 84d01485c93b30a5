package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeMargin(t *testing.T) {
	require.Equal(t, float64(100000), ComputeMargin(600000, 500000))
	require.Equal(t, float64(0), ComputeMargin(0, 0))
	// Margins may legitimately be negative.
	require.Equal(t, float64(-50000), ComputeMargin(450000, 500000))
}

func TestRequestStatus_Valid(t *testing.T) {
	for _, status := range RequestStatuses {
		require.True(t, status.Valid(), string(status))
	}
	require.False(t, RequestStatus("").Valid())
	require.False(t, RequestStatus("cancelled").Valid())
	require.False(t, RequestStatus("COMPLETED").Valid())
}

func TestRequestStatus_Label_total(t *testing.T) {
	seen := map[string]struct{}{}
	for _, status := range RequestStatuses {
		label := status.Label()
		require.NotEmpty(t, label)
		require.NotEqual(t, "Неизвестно", label)
		seen[label] = struct{}{}
	}
	require.Len(t, seen, len(RequestStatuses))
	require.Equal(t, "Неизвестно", RequestStatus("bogus").Label())
}

func TestRequestStatus_InProgress(t *testing.T) {
	require.True(t, StatusLoading.InProgress())
	require.True(t, StatusInTransit.InProgress())
	require.False(t, StatusNotStarted.InProgress())
	require.False(t, StatusUnloading.InProgress())
	require.False(t, StatusCompleted.InProgress())
}

func TestRegistry_CountByStatus(t *testing.T) {
	registry := RequestRegistry{Requests: []TransportRequest{
		{Status: StatusLoading},
		{Status: StatusLoading},
		{Status: StatusCompleted},
	}}

	counts := registry.CountByStatus()
	require.Len(t, counts, len(RequestStatuses))

	byStatus := map[RequestStatus]int{}
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	require.Equal(t, 2, byStatus[StatusLoading])
	require.Equal(t, 1, byStatus[StatusCompleted])
	require.Equal(t, 0, byStatus[StatusNotStarted])
}
