package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/freightops/internal/filter"
	"github.com/nurpe/freightops/internal/model"
	"github.com/nurpe/freightops/internal/repository"
)

// DocumentService manages document metadata. File contents never pass
// through the core; FileURL is an opaque reference supplied by the caller.
type DocumentService struct {
	repo     *repository.DocumentRepository
	requests *repository.RequestRepository
	activity *ActivityService
	log      zerolog.Logger
}

func NewDocumentService(repo *repository.DocumentRepository, requests *repository.RequestRepository, activity *ActivityService, log zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, requests: requests, activity: activity, log: log}
}

type UploadDocumentCommand struct {
	Name       string
	Type       model.DocumentType
	RequestID  string
	DriverName string
	Keywords   []string
	FileURL    string
	FileSize   int64
	Actor      model.User
}

// Upload registers document metadata against an existing request. New
// documents start pending review.
func (s *DocumentService) Upload(cmd UploadDocumentCommand) (*model.Document, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: document name is required", ErrInvalidInput)
	}
	if !cmd.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown document type %q", ErrInvalidInput, cmd.Type)
	}
	if _, err := s.requests.Get(cmd.RequestID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	doc := model.Document{
		ID:         uuid.NewString(),
		Name:       cmd.Name,
		Type:       cmd.Type,
		Status:     model.DocumentPending,
		RequestID:  cmd.RequestID,
		DriverName: cmd.DriverName,
		Keywords:   cmd.Keywords,
		UploadedAt: time.Now().UTC(),
		UploadedBy: cmd.Actor.Name,
		FileURL:    cmd.FileURL,
		FileSize:   cmd.FileSize,
	}
	s.repo.Save(doc)
	s.activity.Record(cmd.Actor, model.ActionUploadDocument,
		fmt.Sprintf("Загружен документ «%s» (%s)", doc.Name, doc.Type.Label()),
		doc.RequestID, nil)

	s.log.Info().Str("document_id", doc.ID).Str("request_id", doc.RequestID).Msg("document uploaded")
	return &doc, nil
}

// List returns documents with filters applied. The document registry is
// shared across roles, matching the dashboard it backs.
func (s *DocumentService) List(f filter.DocumentFilter) []model.Document {
	return filter.Documents(s.repo.List(), f)
}

// SetStatus reviews a pending document. Only the chief logistician may
// approve or reject.
func (s *DocumentService) SetStatus(id string, status model.DocumentStatus, actor model.User) (*model.Document, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if !actor.IsChief() {
		return nil, ErrPermissionDenied
	}

	doc, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	doc.Status = status
	s.repo.Save(doc)
	s.log.Info().Str("document_id", doc.ID).Str("status", string(status)).Msg("document reviewed")
	return &doc, nil
}
