// Package policy holds the role-scoped visibility and authorization rules.
// Every place a collection is rendered or mutated must go through these
// predicates; no caller may re-derive them.
package policy

import (
	"strings"

	"github.com/nurpe/freightops/internal/model"
)

// ScopeRequests narrows a request collection to what the user may see.
// The chief logistician sees everything. A logistician sees requests they
// issued plus requests whose driver name contains their name. The
// containment match is inherited behavior; see the assignedLogistician
// open question in DESIGN.md.
func ScopeRequests(requests []model.TransportRequest, user model.User) []model.TransportRequest {
	if user.IsChief() {
		return requests
	}
	scoped := make([]model.TransportRequest, 0, len(requests))
	for _, req := range requests {
		if CanView(req, user) {
			scoped = append(scoped, req)
		}
	}
	return scoped
}

// CanView is the single-request form of ScopeRequests.
func CanView(request model.TransportRequest, user model.User) bool {
	if user.IsChief() {
		return true
	}
	return request.IssuedBy == user.Name || strings.Contains(request.Driver.Name, user.Name)
}

// CanEdit reports whether the user may mutate the request, status updates
// included.
func CanEdit(request model.TransportRequest, user model.User) bool {
	return user.IsChief() || request.IssuedBy == user.Name
}

func CanManageUsers(user model.User) bool {
	return user.IsChief()
}

// CanDeleteUser forbids self-deletion for everyone, the chief included.
func CanDeleteUser(target, actor model.User) bool {
	if target.ID == actor.ID {
		return false
	}
	return CanManageUsers(actor)
}

// ScopeActivity narrows the activity feed: the chief sees all entries, a
// logistician only entries attributed to themselves.
func ScopeActivity(entries []model.ActivityEntry, user model.User) []model.ActivityEntry {
	if user.IsChief() {
		return entries
	}
	scoped := make([]model.ActivityEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.UserID == user.ID {
			scoped = append(scoped, entry)
		}
	}
	return scoped
}
