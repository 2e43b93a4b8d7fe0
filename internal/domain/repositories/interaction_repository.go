package repositories

import (
	"context"

	"github.com/johnquangdev/hcp-crm/internal/domain/entities"
)

// InteractionRepository defines the interface for interaction data access
type InteractionRepository interface {
	// Create inserts the interaction and fills in its ID and timestamps
	Create(ctx context.Context, interaction *entities.Interaction) error

	// List returns interactions, most recent interaction_datetime first
	List(ctx context.Context, skip, limit int) ([]*entities.Interaction, error)

	// FindByID retrieves an interaction by ID
	FindByID(ctx context.Context, id int64) (*entities.Interaction, error)
}
