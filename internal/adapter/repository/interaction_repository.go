package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/johnquangdev/hcp-crm/internal/domain/entities"
	"github.com/johnquangdev/hcp-crm/internal/domain/repositories"
	"github.com/johnquangdev/hcp-crm/internal/infrastructure/database"
)

// interactionRepository implements the InteractionRepository interface.
// Each call holds one pooled connection for its whole duration.
type interactionRepository struct {
	gw *database.Gateway
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(gw *database.Gateway) repositories.InteractionRepository {
	return &interactionRepository{gw: gw}
}

// Create inserts one row in its own transaction
func (r *interactionRepository) Create(ctx context.Context, interaction *entities.Interaction) error {
	return r.gw.WithConn(ctx, func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			return tx.Create(interaction).Error
		})
	})
}

// List returns a page of interactions ordered by interaction_datetime, newest first
func (r *interactionRepository) List(ctx context.Context, skip, limit int) ([]*entities.Interaction, error) {
	interactions := make([]*entities.Interaction, 0)
	err := r.gw.WithConn(ctx, func(conn *gorm.DB) error {
		return conn.
			Order("interaction_datetime DESC").
			Order("id DESC").
			Offset(skip).
			Limit(limit).
			Find(&interactions).Error
	})
	if err != nil {
		return nil, err
	}
	return interactions, nil
}

// FindByID retrieves an interaction by ID
func (r *interactionRepository) FindByID(ctx context.Context, id int64) (*entities.Interaction, error) {
	var interaction entities.Interaction
	err := r.gw.WithConn(ctx, func(conn *gorm.DB) error {
		return conn.Where("id = ?", id).Take(&interaction).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrInteractionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}
