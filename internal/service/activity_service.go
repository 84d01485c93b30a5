package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/freightops/internal/filter"
	"github.com/nurpe/freightops/internal/model"
	"github.com/nurpe/freightops/internal/policy"
	"github.com/nurpe/freightops/internal/repository"
)

// ActivityService records and lists the append-only activity feed.
type ActivityService struct {
	repo *repository.ActivityRepository
	log  zerolog.Logger
}

func NewActivityService(repo *repository.ActivityRepository, log zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, log: log}
}

// Record appends an audit entry attributed to the actor. requestID may be
// empty for actions not tied to a request.
func (s *ActivityService) Record(actor model.User, action model.ActivityAction, description, requestID string, metadata map[string]string) {
	entry := model.ActivityEntry{
		ID:          uuid.NewString(),
		UserID:      actor.ID,
		UserName:    actor.Name,
		Action:      action,
		Description: description,
		RequestID:   requestID,
		Timestamp:   time.Now().UTC(),
		Metadata:    metadata,
	}
	s.repo.Append(entry)
	s.log.Info().
		Str("user", actor.Name).
		Str("action", string(action)).
		Str("request_id", requestID).
		Msg("activity recorded")
}

// List returns the feed visible to the user, filtered.
func (s *ActivityService) List(user model.User, f filter.ActivityFilter) []model.ActivityEntry {
	scoped := policy.ScopeActivity(s.repo.List(), user)
	return filter.Activity(scoped, f)
}
