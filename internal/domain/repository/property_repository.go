package repository

import (
	"context"

	"github.com/adityawp/casaly/internal/domain/entity"
)

// PropertyRepository defines the interface for listing database operations.
type PropertyRepository interface {
	Create(ctx context.Context, p *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	// List returns all listings, optionally filtered by type.
	List(ctx context.Context, typeFilter string) ([]*entity.Property, error)
	ListFeatured(ctx context.Context) ([]*entity.Property, error)
	CountByType(ctx context.Context) (map[string]int64, error)
	Update(ctx context.Context, p *entity.Property) error
	Delete(ctx context.Context, id string) error
}
