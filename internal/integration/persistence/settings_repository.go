// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// FindByUser retrieves the settings for a user.
func (r *settingsRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	var settingsModel model.UserSettingsModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSettingsNotFound
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Save creates or updates the settings for a user. The user id carries a
// unique index, so an upsert keeps one row per user.
func (r *settingsRepository) Save(ctx context.Context, settings *entity.UserSettings) error {
	settingsModel := model.SettingsFromEntity(settings)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(settingsModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
