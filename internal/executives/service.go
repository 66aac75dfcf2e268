package executives

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nikhilbhatia/shopsight-backend/pkg/db/models"
	pkgerrors "github.com/nikhilbhatia/shopsight-backend/pkg/errors"
)

// Service exposes read operations for the executive roster.
type Service interface {
	ListExecutives(ctx context.Context) ([]models.SalesExecutive, error)
	GetExecutive(ctx context.Context, id uuid.UUID) (*models.SalesExecutive, error)
}

type service struct {
	repo Repository
}

// NewService wires an executives service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListExecutives(ctx context.Context) ([]models.SalesExecutive, error) {
	executives, err := s.repo.ListExecutives(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing executives")
	}
	return executives, nil
}

func (s *service) GetExecutive(ctx context.Context, id uuid.UUID) (*models.SalesExecutive, error) {
	executive, err := s.repo.FindExecutive(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "executive not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching executive")
	}
	return executive, nil
}
