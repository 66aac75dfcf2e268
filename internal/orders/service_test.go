package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilbhatia/shopsight-backend/pkg/enums"
	pkgerrors "github.com/nikhilbhatia/shopsight-backend/pkg/errors"
	"github.com/nikhilbhatia/shopsight-backend/pkg/pagination"
)

func TestServiceListOrdersRejectsUnknownStatus(t *testing.T) {
	svc := NewService(NewRepository(setupOrdersTestDB(t)))

	_, err := svc.ListOrders(context.Background(), pagination.Params{}, "teleported")
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestServiceListOrdersByStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	svc := NewService(NewRepository(db))

	now := time.Now().UTC()
	mustCreateTestOrder(t, db, enums.OrderStatusDelivered, now)
	mustCreateTestOrder(t, db, enums.OrderStatusPending, now)

	list, err := svc.ListOrders(context.Background(), pagination.Params{}, "delivered")
	require.NoError(t, err)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, enums.OrderStatusDelivered, list.Orders[0].Status)
}

func TestServiceGetOrderNotFound(t *testing.T) {
	svc := NewService(NewRepository(setupOrdersTestDB(t)))

	_, err := svc.GetOrder(context.Background(), uuid.New())
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}
