package interaction

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/hcp-crm/internal/domain/entities"
	"github.com/johnquangdev/hcp-crm/internal/domain/repositories"
	"github.com/johnquangdev/hcp-crm/internal/observability/metrics"
)

// Pagination defaults for ListInteractions
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// Service defines the interface for the interaction use case
type Service interface {
	// CreateInteraction persists a validated record and returns the stored row
	CreateInteraction(ctx context.Context, record entities.InteractionRecord) (*entities.Interaction, error)

	// ListInteractions returns the page [skip, skip+limit) of interactions, newest first.
	// A zero limit yields an empty page.
	ListInteractions(ctx context.Context, skip, limit int) ([]*entities.Interaction, error)

	// GetInteraction retrieves one interaction by ID
	GetInteraction(ctx context.Context, id int64) (*entities.Interaction, error)
}

type interactionService struct {
	repo    repositories.InteractionRepository
	metrics *metrics.CRMMetrics
	logger  *zap.Logger
}

// NewInteractionService creates a new interaction service
func NewInteractionService(repo repositories.InteractionRepository, m *metrics.CRMMetrics, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &interactionService{repo: repo, metrics: m, logger: logger}
}

func (s *interactionService) CreateInteraction(ctx context.Context, record entities.InteractionRecord) (*entities.Interaction, error) {
	interaction := entities.NewInteraction(record)

	if err := s.repo.Create(ctx, interaction); err != nil {
		s.metrics.ObserveCreated(false)
		return nil, fmt.Errorf("create interaction: %w", err)
	}
	s.metrics.ObserveCreated(true)

	s.logger.Info("Interaction logged",
		zap.Int64("interaction_id", interaction.ID),
		zap.String("hcp_name", interaction.HCPName),
	)
	return interaction, nil
}

func (s *interactionService) ListInteractions(ctx context.Context, skip, limit int) ([]*entities.Interaction, error) {
	var verr entities.ValidationError
	if skip < 0 {
		verr.Fields = append(verr.Fields, entities.FieldError{
			Field:   "skip",
			Rule:    "gte",
			Message: "Input should be greater than or equal to 0",
		})
	}
	if limit < 0 {
		verr.Fields = append(verr.Fields, entities.FieldError{
			Field:   "limit",
			Rule:    "gte",
			Message: "Input should be greater than or equal to 0",
		})
	}
	if len(verr.Fields) > 0 {
		return nil, &verr
	}

	interactions, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	return interactions, nil
}

func (s *interactionService) GetInteraction(ctx context.Context, id int64) (*entities.Interaction, error) {
	interaction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get interaction %d: %w", id, err)
	}
	return interaction, nil
}
