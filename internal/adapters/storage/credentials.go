package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
)

// LoadCredentials implements CredentialStore.LoadCredentials.
// A half-written pair is treated as no session.
func (r *SQLiteRepository) LoadCredentials(ctx context.Context) (*domain.Session, error) {
	var rows []CredentialModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("name IN ?", []string{credentialToken, credentialUser}).
			Find(&rows).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Name] = row.Value
	}

	token, user := values[credentialToken], values[credentialUser]
	if token == "" || user == "" {
		if token != "" || user != "" {
			logging.Logger.Warn("Ignoring incomplete stored credentials")
		}
		return nil, nil
	}

	session := &domain.Session{Token: token}
	if err := json.Unmarshal([]byte(user), &session.User); err != nil {
		logging.Logger.Warn("Ignoring unreadable stored user", "error", err)
		return nil, nil
	}
	return session, nil
}

// SaveCredentials implements CredentialStore.SaveCredentials
func (r *SQLiteRepository) SaveCredentials(ctx context.Context, session domain.Session) error {
	if session.Token == "" {
		return errors.New("refusing to store an empty token")
	}
	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	rows := []CredentialModel{
		{Name: credentialToken, Value: session.Token},
		{Name: credentialUser, Value: string(user)},
	}
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&rows).Error
		})
	}, 3)
}

// ClearCredentials implements CredentialStore.ClearCredentials
func (r *SQLiteRepository) ClearCredentials(ctx context.Context) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("name IN ?", []string{credentialToken, credentialUser}).
			Delete(&CredentialModel{}).Error
	}, 3)
}
