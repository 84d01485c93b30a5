// Package filter implements the search and filter predicates applied to
// already-scoped collections. Filters combine with logical AND and keep
// the original relative order of the input.
package filter

import (
	"strings"

	"github.com/nurpe/freightops/internal/model"
)

// All is the wildcard value accepted by every categorical filter.
const All = "all"

type RequestFilter struct {
	Search   string
	Status   string
	IssuedBy string
}

// Requests applies the dashboard filter. Search is a case-insensitive
// substring match over cargo name, driver name and both route endpoints;
// an empty term matches everything.
func Requests(requests []model.TransportRequest, f RequestFilter) []model.TransportRequest {
	out := make([]model.TransportRequest, 0, len(requests))
	for _, req := range requests {
		if !matchesRequestSearch(req, f.Search) {
			continue
		}
		if !matchesExact(string(req.Status), f.Status) {
			continue
		}
		if !matchesExact(req.IssuedBy, f.IssuedBy) {
			continue
		}
		out = append(out, req)
	}
	return out
}

type DocumentFilter struct {
	Search string
	Type   string
	Status string
}

// Documents searches over name, request id, driver name and keywords.
func Documents(documents []model.Document, f DocumentFilter) []model.Document {
	out := make([]model.Document, 0, len(documents))
	for _, doc := range documents {
		if !matchesDocumentSearch(doc, f.Search) {
			continue
		}
		if !matchesExact(string(doc.Type), f.Type) {
			continue
		}
		if !matchesExact(string(doc.Status), f.Status) {
			continue
		}
		out = append(out, doc)
	}
	return out
}

type ActivityFilter struct {
	UserID string
	Action string
}

func Activity(entries []model.ActivityEntry, f ActivityFilter) []model.ActivityEntry {
	out := make([]model.ActivityEntry, 0, len(entries))
	for _, entry := range entries {
		if !matchesExact(entry.UserID, f.UserID) {
			continue
		}
		if !matchesExact(string(entry.Action), f.Action) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func matchesRequestSearch(req model.TransportRequest, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return containsFold(req.Cargo.Name, term) ||
		containsFold(req.Driver.Name, term) ||
		containsFold(req.Route.From, term) ||
		containsFold(req.Route.To, term)
}

func matchesDocumentSearch(doc model.Document, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if containsFold(doc.Name, term) ||
		containsFold(doc.RequestID, term) ||
		containsFold(doc.DriverName, term) {
		return true
	}
	for _, keyword := range doc.Keywords {
		if containsFold(keyword, term) {
			return true
		}
	}
	return false
}

// containsFold expects term already lowercased.
func containsFold(value, term string) bool {
	return strings.Contains(strings.ToLower(value), term)
}

// matchesExact treats "" and All as wildcards.
func matchesExact(value, want string) bool {
	return want == "" || want == All || value == want
}
