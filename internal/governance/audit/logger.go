// Package audit records operator actions.
//
// Bulk revisions are persisted as ppm_bulk_change rows through the data
// provider. Every other auditable action is written as a structured log
// record.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/domain"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
)

// ChangeWriter persists bulk change audit rows.
type ChangeWriter interface {
	BulkInsertBulkChanges(ctx context.Context, changes []domain.BulkChange) (int, error)
}

// Logger writes audit records.
type Logger struct {
	changes ChangeWriter
}

// NewLogger creates a new audit Logger.
func NewLogger(changes ChangeWriter) *Logger {
	return &Logger{changes: changes}
}

// LogAction records an auditable action and returns its audit id.
func (l *Logger) LogAction(ctx context.Context, action, resourceType, resourceID, actor string, details map[string]interface{}) string {
	id := generateAuditID()
	logger.FromContext(ctx).Info("Audit",
		zap.String("audit_id", id),
		zap.String("action", action),
		zap.String("resource_type", resourceType),
		zap.String("resource_id", resourceID),
		zap.String("actor", actor),
		zap.Any("details", details),
	)
	return id
}

// RecordBulkChanges writes one audit row per revised building service plan
// in a single insert.
func (l *Logger) RecordBulkChanges(ctx context.Context, changes []domain.BulkChange) (int, error) {
	if len(changes) == 0 {
		return 0, nil
	}
	n, err := l.changes.BulkInsertBulkChanges(ctx, changes)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to write bulk change audit",
			zap.Int("entries", len(changes)),
			zap.String("change_type", changes[0].ChangeType),
			zap.Error(err),
		)
		return 0, fmt.Errorf("write bulk change audit: %w", err)
	}
	return n, nil
}

// LogBulkRevision records a committed bulk revision.
func (l *Logger) LogBulkRevision(ctx context.Context, actor, column string, keys []int, atomic bool) string {
	return l.LogAction(ctx, "service_plan.bulk_revise", "ppm_building_service_plan", fmt.Sprint(keys), actor, map[string]interface{}{
		"column": column,
		"rows":   len(keys),
		"atomic": atomic,
	})
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
