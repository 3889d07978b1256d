package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/punch/internal/domain"
)

// GetActiveTimer implements TimerStore.GetActiveTimer
func (r *SQLiteRepository) GetActiveTimer(ctx context.Context, userID string) (*domain.Timer, error) {
	var model ActiveTimerModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error
	}, 3)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load active timer: %w", err)
	}

	timer := timerModelToDomain(model)
	return &timer, nil
}

// SaveActiveTimer implements TimerStore.SaveActiveTimer
func (r *SQLiteRepository) SaveActiveTimer(ctx context.Context, timer domain.Timer) error {
	if timer.UserID == "" {
		return errors.New("active timer has no user")
	}
	model := domainToTimerModel(timer)
	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).Create(&model).Error
	}, 3)
}

// DeleteActiveTimer implements TimerStore.DeleteActiveTimer
func (r *SQLiteRepository) DeleteActiveTimer(ctx context.Context, userID string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&ActiveTimerModel{}).Error
	}, 3)
}
