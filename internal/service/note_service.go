package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"notes-app-be/internal/constant"
	"notes-app-be/internal/dto"
	"notes-app-be/internal/entity"
	"notes-app-be/internal/mapper"
	"notes-app-be/internal/pkg/apperror"
	"notes-app-be/internal/pkg/logger"
	"notes-app-be/internal/repository/contract"
	"notes-app-be/internal/repository/specification"
	"notes-app-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	List(ctx context.Context, query dto.ListNotesQuery) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NoteServiceOption func(*noteService)

// WithClock replaces time.Now as the source of note timestamps.
func WithClock(now func() time.Time) NoteServiceOption {
	return func(s *noteService) {
		s.clock = now
	}
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	mapper           *mapper.NoteMapper
	logger           logger.ILogger
	clock            func() time.Time
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
	opts ...NoteServiceOption,
) INoteService {
	s := &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		mapper:           mapper.NewNoteMapper(),
		logger:           log,
		clock:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// now is UTC at microsecond precision, the resolution PostgreSQL keeps.
func (c *noteService) now() time.Time {
	return c.clock().UTC().Truncate(time.Microsecond)
}

func validateNote(title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return apperror.Validation(constant.MsgTitleContentRequired)
	}
	return nil
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func (c *noteService) List(ctx context.Context, query dto.ListNotesQuery) ([]*dto.NoteResponse, error) {
	var specs []specification.Specification
	if query.Search != "" {
		specs = append(specs, specification.NoteSearchQuery{Query: query.Search})
	}
	if query.Tag != "" {
		specs = append(specs, specification.HasTag{Tag: query.Tag})
	}
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Internal(constant.MsgFetchNotesFailed, err)
	}

	return c.mapper.ToResponses(notes), nil
}

func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if err := validateNote(req.Title, req.Content); err != nil {
		return nil, err
	}

	now := c.now()
	note := entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Tags:      normalizeTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, apperror.Internal(constant.MsgCreateNoteFailed, err)
	}

	res := c.mapper.ToResponse(&note)
	c.publish(ctx, constant.NoteCreatedEvent, note.Id, res)
	return res, nil
}

func (c *noteService) Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Internal(constant.MsgFetchNoteFailed, err)
	}
	if note == nil {
		return nil, apperror.NotFound(constant.MsgNoteNotFound)
	}

	return c.mapper.ToResponse(note), nil
}

func (c *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if err := validateNote(req.Title, req.Content); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(constant.MsgUpdateNoteFailed, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = uow.Rollback()
		}
	}()

	existing, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperror.Internal(constant.MsgUpdateNoteFailed, err)
	}
	if existing == nil {
		return nil, apperror.NotFound(constant.MsgNoteNotFound)
	}

	now := c.now()
	if now.Before(existing.CreatedAt) {
		now = existing.CreatedAt
	}

	note := entity.Note{
		Id:        existing.Id,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      normalizeTags(req.Tags),
		CreatedAt: existing.CreatedAt,
		UpdatedAt: now,
	}

	if err := uow.NoteRepository().Update(ctx, &note); err != nil {
		if errors.Is(err, contract.ErrRecordNotFound) {
			return nil, apperror.NotFound(constant.MsgNoteNotFound)
		}
		return nil, apperror.Internal(constant.MsgUpdateNoteFailed, err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(constant.MsgUpdateNoteFailed, err)
	}
	committed = true

	res := c.mapper.ToResponse(&note)
	c.publish(ctx, constant.NoteUpdatedEvent, note.Id, res)
	return res, nil
}

func (c *noteService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		if errors.Is(err, contract.ErrRecordNotFound) {
			return apperror.NotFound(constant.MsgNoteNotFound)
		}
		return apperror.Internal(constant.MsgDeleteNoteFailed, err)
	}

	c.publish(ctx, constant.NoteDeletedEvent, id, nil)
	return nil
}

// publish is best effort: the write already succeeded.
func (c *noteService) publish(ctx context.Context, eventType string, id uuid.UUID, note *dto.NoteResponse) {
	if c.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.NoteEventMessage{
		Type:   eventType,
		NoteId: id,
		Note:   note,
	})
	if err == nil {
		err = c.publisherService.Publish(ctx, payload)
	}
	if err != nil {
		c.logger.Warn("NoteService", "Failed to publish note event", map[string]interface{}{
			"type":    eventType,
			"note_id": id,
			"error":   err,
		})
	}
}
