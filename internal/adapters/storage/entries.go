package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/punch/internal/domain"
)

// ListEntries implements EntryStore.ListEntries, newest first
func (r *SQLiteRepository) ListEntries(ctx context.Context, scope string) ([]domain.TimeEntry, error) {
	var models []TimeEntryModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("scope = ?", scope).
			Order("start_time DESC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached entries: %w", err)
	}

	entries := make([]domain.TimeEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, entryModelToDomain(m))
	}
	return entries, nil
}

// ReplaceEntries implements EntryStore.ReplaceEntries
func (r *SQLiteRepository) ReplaceEntries(ctx context.Context, scope string, entries []domain.TimeEntry) error {
	models := make([]TimeEntryModel, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.ID == "" || e.Sample || seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		models = append(models, domainToEntryModel(scope, e))
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("scope = ?", scope).Delete(&TimeEntryModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear scope %s: %w", scope, err)
			}
			if len(models) == 0 {
				return nil
			}
			return tx.CreateInBatches(&models, 100).Error
		})
	}, 3)
}

// UpsertEntry implements EntryStore.UpsertEntry. Copies of the entry cached
// under other scopes are updated too.
func (r *SQLiteRepository) UpsertEntry(ctx context.Context, scope string, entry domain.TimeEntry) error {
	if entry.ID == "" || entry.Sample {
		return nil
	}
	model := domainToEntryModel(scope, entry)

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}, {Name: "scope"}},
				UpdateAll: true,
			}).Create(&model).Error
			if err != nil {
				return err
			}

			return tx.Model(&TimeEntryModel{}).
				Where("id = ? AND scope <> ?", entry.ID, scope).
				Updates(map[string]any{
					"billable":    entry.Billable,
					"description": entry.Description,
					"duration":    entry.Duration,
					"end_time":    toNullableTime(entry.EndTime),
					"status":      string(entry.Status),
					"unsynced":    entry.Unsynced,
				}).Error
		})
	}, 3)
}

// DeleteEntry implements EntryStore.DeleteEntry across every scope
func (r *SQLiteRepository) DeleteEntry(ctx context.Context, entryID string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", entryID).Delete(&TimeEntryModel{}).Error
	}, 3)
}

// ListUnsynced implements EntryStore.ListUnsynced, one row per entry id
func (r *SQLiteRepository) ListUnsynced(ctx context.Context) ([]domain.TimeEntry, error) {
	var models []TimeEntryModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("unsynced = ?", true).Order("updated_at ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsynced entries: %w", err)
	}

	seen := make(map[string]bool, len(models))
	entries := make([]domain.TimeEntry, 0, len(models))
	for _, m := range models {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		entries = append(entries, entryModelToDomain(m))
	}
	return entries, nil
}
