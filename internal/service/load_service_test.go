package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/spec-kit/loads-service/internal/domain"
	"github.com/spec-kit/loads-service/internal/events"
	"github.com/spec-kit/loads-service/internal/repository"
)

type fakeLoadRepo struct {
	docs map[string]*domain.Load
}

func newFakeLoadRepo() *fakeLoadRepo {
	return &fakeLoadRepo{docs: make(map[string]*domain.Load)}
}

func (r *fakeLoadRepo) Insert(_ context.Context, load *domain.Load) error {
	load.ID = bson.NewObjectID()
	clone := *load
	r.docs[load.ID.Hex()] = &clone
	return nil
}

func (r *fakeLoadRepo) FindAll(context.Context) ([]domain.Load, error) {
	loads := []domain.Load{}
	for _, load := range r.docs {
		loads = append(loads, *load)
	}
	return loads, nil
}

func (r *fakeLoadRepo) FindByID(_ context.Context, id string) (*domain.Load, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	load, ok := r.docs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *load
	return &clone, nil
}

func (r *fakeLoadRepo) Update(_ context.Context, id string, load *domain.Load) (int64, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return 0, repository.ErrInvalidID
	}
	existing, ok := r.docs[id]
	if !ok {
		return 0, nil
	}
	existing.Origin = load.Origin
	existing.Destination = load.Destination
	existing.Product = load.Product
	existing.Weight = load.Weight
	existing.Type = load.Type
	for k, v := range load.Extra {
		if existing.Extra == nil {
			existing.Extra = make(map[string]any)
		}
		existing.Extra[k] = v
	}
	return 1, nil
}

func (r *fakeLoadRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return 0, repository.ErrInvalidID
	}
	if _, ok := r.docs[id]; !ok {
		return 0, nil
	}
	delete(r.docs, id)
	return 1, nil
}

func validInput() LoadInput {
	return LoadInput{
		Origin:      "Chicago",
		Destination: "Dallas",
		Product:     "Steel coils",
		Weight:      42000,
		Type:        "Flatbed",
	}
}

func newLoadService(repo repository.LoadRepository, dispatcher events.Dispatcher) *LoadService {
	return NewLoadService(LoadDependencies{LoadRepo: repo, Dispatcher: dispatcher})
}

func TestCreate_MissingFieldValidation(t *testing.T) {
	t.Parallel()

	repo := newFakeLoadRepo()
	svc := newLoadService(repo, nil)

	input := validInput()
	input.Weight = 0
	_, err := svc.Create(context.Background(), "u1", input)
	requireDomainCode(t, err, "VALIDATION_FAILED")
	require.Empty(t, repo.docs)
}

func TestCreate_StampsDateAdded(t *testing.T) {
	t.Parallel()

	repo := newFakeLoadRepo()
	svc := newLoadService(repo, nil)

	before := time.Now().Unix()
	load, err := svc.Create(context.Background(), "u1", validInput())
	after := time.Now().Unix()
	require.NoError(t, err)
	require.GreaterOrEqual(t, load.DateAdded, before)
	require.LessOrEqual(t, load.DateAdded, after)
	require.False(t, load.ID.IsZero())
}

func TestCreate_PublishesEvent(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	created := 0
	dispatcher.Subscribe(events.EventLoadCreated, func(context.Context, events.Event) error {
		created++
		return nil
	})

	svc := newLoadService(newFakeLoadRepo(), dispatcher)
	_, err := svc.Create(context.Background(), "u1", validInput())
	require.NoError(t, err)
	require.Equal(t, 1, created)
}

func TestGet_RoundTripWithExtras(t *testing.T) {
	t.Parallel()

	svc := newLoadService(newFakeLoadRepo(), nil)

	input := validInput()
	input.Extra = map[string]any{"broker": "ACME Logistics", "rate": 1850.0}
	created, err := svc.Create(context.Background(), "u1", input)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "Chicago", got.Origin)
	require.Equal(t, created.DateAdded, got.DateAdded)
	require.Equal(t, "ACME Logistics", got.Extra["broker"])
}

func TestGet_MalformedIDNotFound(t *testing.T) {
	t.Parallel()

	svc := newLoadService(newFakeLoadRepo(), nil)

	_, err := svc.Get(context.Background(), "not-a-hex-id")
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestGet_MissingNotFound(t *testing.T) {
	t.Parallel()

	svc := newLoadService(newFakeLoadRepo(), nil)

	_, err := svc.Get(context.Background(), bson.NewObjectID().Hex())
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestUpdate_NonexistentIDNotFound(t *testing.T) {
	t.Parallel()

	svc := newLoadService(newFakeLoadRepo(), nil)

	err := svc.Update(context.Background(), "u1", bson.NewObjectID().Hex(), validInput())
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestUpdate_PreservesDateAdded(t *testing.T) {
	t.Parallel()

	repo := newFakeLoadRepo()
	svc := newLoadService(repo, nil)

	created, err := svc.Create(context.Background(), "u1", validInput())
	require.NoError(t, err)

	updated := validInput()
	updated.Destination = "Houston"
	require.NoError(t, svc.Update(context.Background(), "u1", created.ID.Hex(), updated))

	got, err := svc.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "Houston", got.Destination)
	require.Equal(t, created.DateAdded, got.DateAdded)
}

func TestUpdate_MissingFieldValidation(t *testing.T) {
	t.Parallel()

	repo := newFakeLoadRepo()
	svc := newLoadService(repo, nil)

	created, err := svc.Create(context.Background(), "u1", validInput())
	require.NoError(t, err)

	input := validInput()
	input.Origin = ""
	err = svc.Update(context.Background(), "u1", created.ID.Hex(), input)
	requireDomainCode(t, err, "VALIDATION_FAILED")
	require.Equal(t, "Chicago", repo.docs[created.ID.Hex()].Origin)
}

func TestDelete_NonexistentIDNotFound(t *testing.T) {
	t.Parallel()

	svc := newLoadService(newFakeLoadRepo(), nil)

	err := svc.Delete(context.Background(), "u1", bson.NewObjectID().Hex())
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestDelete_RemovesDocument(t *testing.T) {
	t.Parallel()

	repo := newFakeLoadRepo()
	svc := newLoadService(repo, nil)

	created, err := svc.Create(context.Background(), "u1", validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "u1", created.ID.Hex()))
	require.Empty(t, repo.docs)
}

func TestList_EmptyCollection(t *testing.T) {
	t.Parallel()

	svc := newLoadService(newFakeLoadRepo(), nil)

	loads, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loads)
	require.Empty(t, loads)
}
