package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/freightops/internal/filter"
	"github.com/nurpe/freightops/internal/model"
	"github.com/nurpe/freightops/internal/policy"
	"github.com/nurpe/freightops/internal/repository"
)

type ExcelGenerator interface {
	Generate(registry model.RequestRegistry) ([]byte, error)
}

// RequestService owns every mutation of transport requests. Views receive
// read-only projections through List/Get/Stats and mutate through explicit
// commands, never through shared callbacks.
type RequestService struct {
	repo     *repository.RequestRepository
	activity *ActivityService
	excel    ExcelGenerator
	log      zerolog.Logger
}

func NewRequestService(repo *repository.RequestRepository, activity *ActivityService, excel ExcelGenerator, log zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, activity: activity, excel: excel, log: log}
}

type CreateRequestCommand struct {
	Route     model.Route
	Dates     model.RequestDates
	Driver    model.Driver
	Vehicle   model.Vehicle
	Cargo     model.Cargo
	Payment   model.Payment
	Documents model.DocumentRefs
	Actor     model.User
}

func (s *RequestService) Create(cmd CreateRequestCommand) (*model.TransportRequest, error) {
	if err := validateCreate(cmd); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	req := model.TransportRequest{
		ID:        uuid.NewString(),
		Status:    model.StatusNotStarted,
		Route:     cmd.Route,
		Dates:     cmd.Dates,
		Driver:    cmd.Driver,
		Vehicle:   cmd.Vehicle,
		Cargo:     cmd.Cargo,
		Payment:   cmd.Payment,
		Documents: cmd.Documents,
		IssuedBy:  cmd.Actor.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// TotalMargin is derived, never taken from the command.
	req.Payment.TotalMargin = model.ComputeMargin(req.Payment.PriceFromCustomer, req.Payment.CostToDriver)

	s.repo.Save(req)
	s.activity.Record(cmd.Actor, model.ActionCreateRequest,
		fmt.Sprintf("Создана заявка %s → %s, груз «%s»", req.Route.From, req.Route.To, req.Cargo.Name),
		req.ID, nil)

	s.log.Info().Str("request_id", req.ID).Str("issued_by", req.IssuedBy).Msg("request created")
	return &req, nil
}

func validateCreate(cmd CreateRequestCommand) error {
	switch {
	case cmd.Route.From == "":
		return fmt.Errorf("%w: route from is required", ErrInvalidInput)
	case cmd.Route.To == "":
		return fmt.Errorf("%w: route to is required", ErrInvalidInput)
	case cmd.Dates.Loading.IsZero():
		return fmt.Errorf("%w: loading date is required", ErrInvalidInput)
	case cmd.Dates.Unloading.IsZero():
		return fmt.Errorf("%w: unloading date is required", ErrInvalidInput)
	case cmd.Driver.Name == "":
		return fmt.Errorf("%w: driver name is required", ErrInvalidInput)
	case cmd.Cargo.Name == "":
		return fmt.Errorf("%w: cargo name is required", ErrInvalidInput)
	case cmd.Cargo.Weight < 0:
		return fmt.Errorf("%w: cargo weight must be non-negative", ErrInvalidInput)
	case cmd.Cargo.PalletCount < 0:
		return fmt.Errorf("%w: pallet count must be non-negative", ErrInvalidInput)
	case cmd.Payment.CostToDriver < 0 || cmd.Payment.PriceFromCustomer < 0 || cmd.Payment.Advance < 0:
		return fmt.Errorf("%w: payment amounts must be non-negative", ErrInvalidInput)
	}
	return nil
}

// Get returns a single request. A request outside the caller's visibility
// scope is reported as a permission error, not as absent.
func (s *RequestService) Get(id string, user model.User) (*model.TransportRequest, error) {
	req, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.CanView(req, user) {
		return nil, ErrPermissionDenied
	}
	return &req, nil
}

// List returns the user's visible requests with filters applied, in
// creation order.
func (s *RequestService) List(user model.User, f filter.RequestFilter) []model.TransportRequest {
	scoped := policy.ScopeRequests(s.repo.List(), user)
	return filter.Requests(scoped, f)
}

type RequestStats struct {
	Total      int
	NotStarted int
	InProgress int
	Completed  int
}

// Stats summarizes the user's visible requests. The counts are scoped the
// same way the listing is.
func (s *RequestService) Stats(user model.User) RequestStats {
	stats := RequestStats{}
	for _, req := range policy.ScopeRequests(s.repo.List(), user) {
		stats.Total++
		switch {
		case req.Status == model.StatusNotStarted:
			stats.NotStarted++
		case req.Status.InProgress():
			stats.InProgress++
		case req.Status == model.StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}

type UpdateStatusCommand struct {
	RequestID string
	NewStatus model.RequestStatus
	Actor     model.User
}

// UpdateStatus moves a request to a new lifecycle status. Any recognized
// status may follow any other; only unknown values are rejected. Repeating
// the current status is an idempotent no-op apart from the audit entry.
func (s *RequestService) UpdateStatus(cmd UpdateStatusCommand) (*model.TransportRequest, error) {
	if !cmd.NewStatus.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, cmd.NewStatus)
	}

	req, err := s.repo.Get(cmd.RequestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.CanEdit(req, cmd.Actor) {
		return nil, ErrPermissionDenied
	}

	previous := req.Status
	req.Status = cmd.NewStatus
	req.UpdatedAt = time.Now().UTC()
	s.repo.Save(req)

	action := model.ActionUpdateStatus
	if cmd.NewStatus == model.StatusCompleted {
		action = model.ActionCompleteRequest
	}
	s.activity.Record(cmd.Actor, action,
		fmt.Sprintf("Статус заявки изменен: «%s» → «%s»", previous.Label(), cmd.NewStatus.Label()),
		req.ID, map[string]string{"from": string(previous), "to": string(cmd.NewStatus)})

	s.log.Info().
		Str("request_id", req.ID).
		Str("from", string(previous)).
		Str("to", string(cmd.NewStatus)).
		Msg("request status updated")
	return &req, nil
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportRegistry renders the user's visible, filtered requests into an
// xlsx registry workbook.
func (s *RequestService) ExportRegistry(user model.User, f filter.RequestFilter) (*ExportResult, error) {
	registry := model.RequestRegistry{
		GeneratedBy: user,
		GeneratedAt: time.Now().UTC(),
		Requests:    s.List(user, f),
	}

	content, err := s.excel.Generate(registry)
	if err != nil {
		return nil, err
	}

	s.activity.Record(user, model.ActionOther,
		fmt.Sprintf("Экспорт реестра заявок (%d строк)", len(registry.Requests)), "", nil)

	return &ExportResult{
		FileName: fmt.Sprintf("requests-%s.xlsx", registry.GeneratedAt.Format("20060102-150405")),
		Content:  content,
	}, nil
}
