package audit

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppmdesk.io/ppmdesk/internal/domain"
	"ppmdesk.io/ppmdesk/internal/provider"
	"ppmdesk.io/ppmdesk/internal/testutil"
)

func TestLogger_RecordBulkChanges(t *testing.T) {
	mock := testutil.SeededProvider(t)
	l := NewLogger(mock)

	changes := []domain.BulkChange{
		{ChangeType: "ppm_cost", ChangeReason: "2025 rates", RequestedBy: "alice", ServicePlanID: 300, BuildingID: 10},
		{ChangeType: "ppm_cost", ChangeReason: "2025 rates", RequestedBy: "alice", ServicePlanID: 300, BuildingID: 11},
	}
	n, err := l.RecordBulkChanges(context.Background(), changes)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, changes, mock.BulkChanges())
}

func TestLogger_RecordBulkChanges_Empty(t *testing.T) {
	mock := provider.NewMockProvider()
	n, err := NewLogger(mock).RecordBulkChanges(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, mock.Calls())
}

func TestLogger_RecordBulkChanges_Failure(t *testing.T) {
	mock := provider.NewMockProvider()
	boom := errors.New("insert failed")
	mock.FailOn("BulkInsertBulkChanges", boom)

	_, err := NewLogger(mock).RecordBulkChanges(context.Background(), []domain.BulkChange{{ChangeType: "fk_sup_id"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestLogger_LogAction(t *testing.T) {
	id := NewLogger(provider.NewMockProvider()).LogAction(context.Background(), "asset.verify", "asset", "200", "bob", nil)
	assert.True(t, strings.HasPrefix(id, "audit-"))
}
