package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/spec-kit/loads-service/internal/cache"
	"github.com/spec-kit/loads-service/internal/domain"
	"github.com/spec-kit/loads-service/internal/events"
	"github.com/spec-kit/loads-service/internal/repository"
	apperrors "github.com/spec-kit/loads-service/pkg/util"
)

// LoadService coordinates CRUD over the load collection.
type LoadService struct {
	loads      repository.LoadRepository
	cache      *cache.LoadCache
	dispatcher events.Dispatcher
}

// LoadDependencies bundles requirements for the load service.
type LoadDependencies struct {
	LoadRepo   repository.LoadRepository
	Cache      *cache.LoadCache
	Dispatcher events.Dispatcher
}

// LoadInput describes a create/update payload: five required fields plus
// pass-through extras.
type LoadInput struct {
	Origin      string
	Destination string
	Product     string
	Weight      float64
	Type        string
	Extra       map[string]any
}

// NewLoadService constructs the service.
func NewLoadService(deps LoadDependencies) *LoadService {
	return &LoadService{
		loads:      deps.LoadRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// List returns every load; an empty collection yields an empty slice.
func (s *LoadService) List(ctx context.Context) ([]domain.Load, error) {
	if loads, ok := s.cache.GetList(ctx); ok {
		return loads, nil
	}
	loads, err := s.loads.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetList(ctx, loads)
	return loads, nil
}

// Get returns a single load. Malformed ids read as not-found.
func (s *LoadService) Get(ctx context.Context, id string) (*domain.Load, error) {
	if load, ok := s.cache.GetByID(ctx, id); ok {
		return load, nil
	}
	load, err := s.loads.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) || errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("load")
		}
		return nil, err
	}
	s.cache.SetByID(ctx, id, load)
	return load, nil
}

// Create validates required fields, stamps dateAdded and persists.
func (s *LoadService) Create(ctx context.Context, principalID string, input LoadInput) (*domain.Load, error) {
	if err := validateLoadInput(input); err != nil {
		return nil, err
	}

	load := &domain.Load{
		Origin:      input.Origin,
		Destination: input.Destination,
		Product:     input.Product,
		Weight:      input.Weight,
		Type:        input.Type,
		DateAdded:   time.Now().Unix(),
		Extra:       input.Extra,
	}
	if err := s.loads.Insert(ctx, load); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, "")
	s.publish(ctx, events.Event{
		Type:      events.EventLoadCreated,
		SubjectID: principalID,
		Payload: events.LoadChangedPayload{
			LoadID:      load.ID.Hex(),
			Origin:      load.Origin,
			Destination: load.Destination,
		},
	})
	return load, nil
}

// Update applies the provided fields to an existing load. A load that matches
// but needs no change is still a success; no match is not-found. dateAdded is
// never recomputed.
func (s *LoadService) Update(ctx context.Context, principalID, id string, input LoadInput) error {
	if err := validateLoadInput(input); err != nil {
		return err
	}

	load := &domain.Load{
		Origin:      input.Origin,
		Destination: input.Destination,
		Product:     input.Product,
		Weight:      input.Weight,
		Type:        input.Type,
		Extra:       input.Extra,
	}
	matched, err := s.loads.Update(ctx, id, load)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return apperrors.NewNotFound("load")
		}
		return err
	}
	if matched == 0 {
		return apperrors.NewNotFound("load")
	}

	s.cache.Invalidate(ctx, id)
	s.publish(ctx, events.Event{
		Type:      events.EventLoadUpdated,
		SubjectID: principalID,
		Payload:   events.LoadChangedPayload{LoadID: id},
	})
	return nil
}

// Delete removes a load.
func (s *LoadService) Delete(ctx context.Context, principalID, id string) error {
	deleted, err := s.loads.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return apperrors.NewNotFound("load")
		}
		return err
	}
	if deleted == 0 {
		return apperrors.NewNotFound("load")
	}

	s.cache.Invalidate(ctx, id)
	s.publish(ctx, events.Event{
		Type:      events.EventLoadDeleted,
		SubjectID: principalID,
		Payload:   events.LoadChangedPayload{LoadID: id},
	})
	return nil
}

func validateLoadInput(input LoadInput) error {
	missing := map[string]any{}
	if input.Origin == "" {
		missing["origin"] = "required"
	}
	if input.Destination == "" {
		missing["destination"] = "required"
	}
	if input.Product == "" {
		missing["product"] = "required"
	}
	if input.Weight <= 0 {
		missing["weight"] = "required"
	}
	if input.Type == "" {
		missing["type"] = "required"
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields", missing)
	}
	return nil
}

func (s *LoadService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
