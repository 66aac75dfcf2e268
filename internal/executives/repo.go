package executives

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nikhilbhatia/shopsight-backend/pkg/db/models"
)

// Repository defines persistence operations for the sales executive roster.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListExecutives(ctx context.Context) ([]models.SalesExecutive, error)
	FindExecutive(ctx context.Context, id uuid.UUID) (*models.SalesExecutive, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an executives repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// ListExecutives fetches the full roster; performance reports baseline on
// every executive, including those with no orders in the window.
func (r *repository) ListExecutives(ctx context.Context) ([]models.SalesExecutive, error) {
	var executives []models.SalesExecutive
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Order("name ASC, id ASC").
		Find(&executives).Error
	if err != nil {
		return nil, err
	}
	return executives, nil
}

func (r *repository) FindExecutive(ctx context.Context, id uuid.UUID) (*models.SalesExecutive, error) {
	var executive models.SalesExecutive
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Where("id = ?", id).
		First(&executive).Error
	if err != nil {
		return nil, err
	}
	return &executive, nil
}
