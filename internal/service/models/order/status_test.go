package order_test

import (
	"testing"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	status, err := order.ParseStatus("PENDING")
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, status)

	_, err = order.ParseStatus("SHIPPED")
	require.ErrorIs(t, err, order.ErrInvalidStatus)

	_, err = order.ParseStatus("pending")
	require.ErrorIs(t, err, order.ErrInvalidStatus, "status parsing is case sensitive")
}
