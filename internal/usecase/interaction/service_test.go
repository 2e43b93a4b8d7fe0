package interaction

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/hcp-crm/internal/domain/entities"
	"github.com/johnquangdev/hcp-crm/internal/infrastructure/database"
)

// memoryRepository keeps rows in a slice and mimics the store's ordering
type memoryRepository struct {
	mu        sync.Mutex
	rows      []*entities.Interaction
	nextID    int64
	err       error
	lastLimit int
}

func (r *memoryRepository) Create(_ context.Context, i *entities.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	i.ID = r.nextID
	i.CreatedAt = time.Now().UTC()
	i.UpdatedAt = i.CreatedAt
	stored := *i
	r.rows = append(r.rows, &stored)
	return nil
}

func (r *memoryRepository) List(_ context.Context, skip, limit int) ([]*entities.Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit
	if r.err != nil {
		return nil, r.err
	}
	sorted := append([]*entities.Interaction(nil), r.rows...)
	sort.SliceStable(sorted, func(a, b int) bool {
		if !sorted[a].InteractionDatetime.Equal(sorted[b].InteractionDatetime) {
			return sorted[a].InteractionDatetime.After(sorted[b].InteractionDatetime)
		}
		return sorted[a].ID > sorted[b].ID
	})
	out := make([]*entities.Interaction, 0)
	for i := skip; i < len(sorted) && i < skip+limit; i++ {
		out = append(out, sorted[i])
	}
	return out, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (*entities.Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, row := range r.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, entities.ErrInteractionNotFound
}

func strPtr(s string) *string { return &s }

func at(day, hour int) time.Time {
	return time.Date(2025, 5, day, hour, 0, 0, 0, time.UTC)
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	svc := NewInteractionService(&memoryRepository{}, nil, nil)
	record := entities.InteractionRecord{
		HCPName:              "Dr. Jane Doe",
		InteractionType:      strPtr("Meeting"),
		InteractionDatetime:  time.Date(2025, 5, 3, 19, 30, 0, 0, time.UTC),
		Attendees:            strPtr("Dr. Doe, Rep"),
		TopicsDiscussed:      strPtr("Efficacy data"),
		Summary:              strPtr("Positive reception"),
		MaterialsShared:      strPtr("Brochure"),
		HCPSentiment:         entities.SentimentPositive,
		Outcomes:             strPtr("Agreed to trial"),
		FollowUpActions:      strPtr("Send samples"),
		AISuggestedFollowUps: strPtr("Schedule call"),
	}

	created, err := svc.CreateInteraction(context.Background(), record)
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := svc.GetInteraction(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, record, got.InteractionRecord)
}

func TestCreateInteraction_DefaultsSentiment(t *testing.T) {
	svc := NewInteractionService(&memoryRepository{}, nil, nil)

	created, err := svc.CreateInteraction(context.Background(), entities.InteractionRecord{
		HCPName:             "Dr. A",
		InteractionDatetime: at(1, 9),
	})

	require.NoError(t, err)
	assert.Equal(t, entities.SentimentUnknown, created.HCPSentiment)
}

func TestCreateInteraction_StoreError(t *testing.T) {
	repo := &memoryRepository{err: database.ErrPoolUnavailable}
	svc := NewInteractionService(repo, nil, nil)

	_, err := svc.CreateInteraction(context.Background(), entities.InteractionRecord{HCPName: "Dr. A", InteractionDatetime: at(1, 9)})

	assert.ErrorIs(t, err, database.ErrPoolUnavailable)
	assert.Empty(t, repo.rows)
}

func TestListInteractions_OrderAndPagination(t *testing.T) {
	repo := &memoryRepository{}
	svc := NewInteractionService(repo, nil, nil)
	ctx := context.Background()

	for _, when := range []time.Time{at(2, 9), at(5, 9), at(1, 9), at(4, 9), at(3, 9)} {
		_, err := svc.CreateInteraction(ctx, entities.InteractionRecord{HCPName: "Dr. " + when.Format("02"), InteractionDatetime: when})
		require.NoError(t, err)
	}

	all, err := svc.ListInteractions(ctx, DefaultSkip, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].InteractionDatetime.After(all[i].InteractionDatetime))
	}

	page, err := svc.ListInteractions(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, all[1].ID, page[0].ID)
	assert.Equal(t, all[2].ID, page[1].ID)

	beyond, err := svc.ListInteractions(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestListInteractions_Bounds(t *testing.T) {
	repo := &memoryRepository{}
	svc := NewInteractionService(repo, nil, nil)

	_, err := svc.ListInteractions(context.Background(), -1, -1)
	var verr *entities.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "skip", verr.Fields[0].Field)
	assert.Equal(t, "limit", verr.Fields[1].Field)
	assert.ErrorIs(t, err, entities.ErrInvalidRecord)
}

func TestListInteractions_LimitPassedThrough(t *testing.T) {
	repo := &memoryRepository{}
	svc := NewInteractionService(repo, nil, nil)
	ctx := context.Background()

	for i := 0; i < 1100; i++ {
		_, err := svc.CreateInteraction(ctx, entities.InteractionRecord{
			HCPName:             "Dr. A",
			InteractionDatetime: at(1, 9).Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	all, err := svc.ListInteractions(ctx, 0, 1100)
	require.NoError(t, err)
	assert.Len(t, all, 1100)
	assert.Equal(t, 1100, repo.lastLimit)

	page, err := svc.ListInteractions(ctx, 1050, 100)
	require.NoError(t, err)
	assert.Len(t, page, 50)

	empty, err := svc.ListInteractions(ctx, 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	assert.Equal(t, 0, repo.lastLimit)
}

func TestGetInteraction_NotFound(t *testing.T) {
	svc := NewInteractionService(&memoryRepository{}, nil, nil)

	_, err := svc.GetInteraction(context.Background(), 12345)

	assert.ErrorIs(t, err, entities.ErrInteractionNotFound)
}
