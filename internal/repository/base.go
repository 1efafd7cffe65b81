// Package repository implements the data access layer for the application.
package repository

import (
	"errors"
	"log/slog"
	"strings"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/observability"

	"gorm.io/gorm"
)

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; SQLite reports "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// translateWriteError classifies a write-transaction failure: uniqueness
// violations slipping past the application-level existence check become
// ALREADY_EXISTS, anything else a retryable CONFLICT.
func translateWriteError(err error, duplicateMsg string) error {
	if err == nil {
		return nil
	}
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if isUniqueConstraintError(err) {
		return models.NewAlreadyExistsError(duplicateMsg)
	}
	return models.NewConflictError(err)
}

// incrementCounter bumps a denormalized counter column on the aggregate row.
// Must be called inside the same transaction as the edge/row mutation it mirrors.
func incrementCounter(tx *gorm.DB, model interface{}, column string, id uint) error {
	return tx.Model(model).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}

// decrementCounterFloor decrements a denormalized counter with a floor of zero.
// The guard lives in the WHERE clause so the counter can never go negative;
// an existing row left unmatched means the counter had already drifted to zero
// and the clamp is recorded instead of failing the transaction.
func decrementCounterFloor(tx *gorm.DB, model interface{}, column string, id uint) error {
	res := tx.Model(model).
		Where("id = ? AND "+column+" > 0", id).
		UpdateColumn(column, gorm.Expr(column+" - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		logUnderflowClamp(column, id)
	}
	return nil
}

// recordMutation counts a relationship mutation by kind and outcome.
func recordMutation(kind string, err error) {
	outcome := "ok"
	switch {
	case models.HasCode(err, models.CodeAlreadyExists):
		outcome = "duplicate"
	case models.HasCode(err, models.CodeNotFound):
		outcome = "missing"
	case err != nil:
		outcome = "error"
	}
	observability.RelationshipMutations.WithLabelValues(kind, outcome).Inc()
}

// logUnderflowClamp records a counter decrement that hit the zero floor.
// The mutation still commits; the drift is surfaced through logs and metrics.
func logUnderflowClamp(counter string, id uint) {
	observability.CounterUnderflowClamps.WithLabelValues(counter).Inc()
	middleware.Logger.Warn("counter underflow clamped at zero",
		slog.String("counter", counter),
		slog.Any("id", id),
	)
}
