// Package settings contains user settings use cases.
package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GetSettingsInput represents the input for fetching user settings.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsOutput represents the output of fetching user settings.
type GetSettingsOutput struct {
	Settings *entity.UserSettings
}

// GetSettingsUseCase fetches a user's settings, falling back to defaults when
// no row exists yet.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute fetches the settings.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
	settings, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		// Missing row degrades to defaults rather than an error; settings are
		// seeded at registration but older accounts may predate that.
		return &GetSettingsOutput{Settings: entity.NewUserSettings(input.UserID)}, nil
	}

	return &GetSettingsOutput{Settings: settings}, nil
}
