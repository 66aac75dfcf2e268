package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("delivered")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusDelivered, status)

	_, err = ParseOrderStatus("teleported")
	require.Error(t, err)

	_, err = ParseOrderStatus("")
	require.Error(t, err)
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, status := range validOrderStatuses {
		assert.True(t, status.IsValid(), status)
	}
	assert.False(t, OrderStatus("teleported").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
