package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	for _, status := range OrderStatuses() {
		assert.True(t, status.Valid(), "expected %q to be valid", status)
	}

	invalid := []OrderStatus{
		"",
		"Shipped",
		"delivered",
		"PENDING",
		"In transit",
		"In  Transit",
	}
	for _, status := range invalid {
		assert.False(t, status.Valid(), "expected %q to be invalid", status)
	}
}

func TestOrderStatuses_CoversLifecycle(t *testing.T) {
	statuses := OrderStatuses()

	assert.Len(t, statuses, 5)
	assert.Equal(t, StatusPending, statuses[0])
	assert.Equal(t, StatusCancelled, statuses[len(statuses)-1])
}
