// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UserSettingsModel represents the user_settings table in the database.
type UserSettingsModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	DefaultCurrency     string         `gorm:"type:varchar(3);default:'USD'"`
	PreferredCurrencies pq.StringArray `gorm:"type:text[]"`
	ItemsPerPage        int            `gorm:"default:10"`
	CreatedAt           time.Time      `gorm:"not null"`
	UpdatedAt           time.Time      `gorm:"not null"`
}

// TableName returns the table name for the UserSettingsModel.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// ToEntity converts a UserSettingsModel to a domain UserSettings entity.
func (m *UserSettingsModel) ToEntity() *entity.UserSettings {
	return &entity.UserSettings{
		ID:                  m.ID,
		UserID:              m.UserID,
		DefaultCurrency:     m.DefaultCurrency,
		PreferredCurrencies: []string(m.PreferredCurrencies),
		ItemsPerPage:        m.ItemsPerPage,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// SettingsFromEntity creates a UserSettingsModel from a domain UserSettings entity.
func SettingsFromEntity(settings *entity.UserSettings) *UserSettingsModel {
	return &UserSettingsModel{
		ID:                  settings.ID,
		UserID:              settings.UserID,
		DefaultCurrency:     settings.DefaultCurrency,
		PreferredCurrencies: pq.StringArray(settings.PreferredCurrencies),
		ItemsPerPage:        settings.ItemsPerPage,
		CreatedAt:           settings.CreatedAt,
		UpdatedAt:           settings.UpdatedAt,
	}
}
