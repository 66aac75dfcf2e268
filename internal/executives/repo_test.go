package executives

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nikhilbhatia/shopsight-backend/pkg/db/models"
	pkgerrors "github.com/nikhilbhatia/shopsight-backend/pkg/errors"
)

func setupExecutivesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.SalesExecutive{}))
	return db
}

func TestRepositoryListExecutivesResolvesManager(t *testing.T) {
	db := setupExecutivesTestDB(t)
	repo := NewRepository(db)

	manager := &models.SalesExecutive{Name: "Priya"}
	require.NoError(t, db.Create(manager).Error)
	rep := &models.SalesExecutive{Name: "Arjun", ManagerID: &manager.ID}
	require.NoError(t, db.Create(rep).Error)

	executives, err := repo.ListExecutives(context.Background())
	require.NoError(t, err)
	require.Len(t, executives, 2)

	assert.Equal(t, "Arjun", executives[0].Name)
	require.NotNil(t, executives[0].Manager)
	assert.Equal(t, "Priya", executives[0].Manager.Name)
	assert.Nil(t, executives[1].Manager)
}

func TestServiceGetExecutiveNotFound(t *testing.T) {
	svc := NewService(NewRepository(setupExecutivesTestDB(t)))

	_, err := svc.GetExecutive(context.Background(), uuid.New())
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}
