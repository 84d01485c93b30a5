package model

import "time"

// RequestRegistry is a snapshot of already-scoped, already-filtered
// requests prepared for export.
type RequestRegistry struct {
	GeneratedBy User
	GeneratedAt time.Time
	Requests    []TransportRequest
}

// StatusCount pairs a status with how many registry rows carry it.
type StatusCount struct {
	Status RequestStatus
	Count  int
}

// CountByStatus tallies registry rows per status in lifecycle order.
func (r RequestRegistry) CountByStatus() []StatusCount {
	counts := make([]StatusCount, 0, len(RequestStatuses))
	for _, status := range RequestStatuses {
		n := 0
		for _, req := range r.Requests {
			if req.Status == status {
				n++
			}
		}
		counts = append(counts, StatusCount{Status: status, Count: n})
	}
	return counts
}
