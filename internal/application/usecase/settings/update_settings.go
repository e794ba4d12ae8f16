// Package settings contains user settings use cases.
package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

const (
	// MinItemsPerPage bounds the pagination preference.
	MinItemsPerPage = 5
	// MaxItemsPerPage bounds the pagination preference.
	MaxItemsPerPage = 100
)

// UpdateSettingsInput represents the input for updating user settings. Nil
// fields leave the current value unchanged.
type UpdateSettingsInput struct {
	UserID              uuid.UUID
	DefaultCurrency     *string
	PreferredCurrencies []string
	ItemsPerPage        *int
}

// UpdateSettingsOutput represents the output of updating user settings.
type UpdateSettingsOutput struct {
	Settings *entity.UserSettings
}

// UpdateSettingsUseCase handles user settings updates.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute performs the settings update.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	settings, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		settings = entity.NewUserSettings(input.UserID)
	}

	if input.DefaultCurrency != nil {
		code := strings.ToUpper(strings.TrimSpace(*input.DefaultCurrency))
		if !valueobject.IsSupportedCurrency(code) {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidDefaultCurrency,
				fmt.Sprintf("unsupported default currency %q", *input.DefaultCurrency),
				domainerror.ErrInvalidDefaultCurrency,
			)
		}
		settings.DefaultCurrency = code
	}

	if input.PreferredCurrencies != nil {
		normalized := make([]string, 0, len(input.PreferredCurrencies))
		for _, raw := range input.PreferredCurrencies {
			code := strings.ToUpper(strings.TrimSpace(raw))
			if !valueobject.IsSupportedCurrency(code) {
				return nil, domainerror.NewSettingsError(
					domainerror.ErrCodeInvalidPreferredCurrency,
					fmt.Sprintf("unsupported preferred currency %q", raw),
					domainerror.ErrInvalidPreferredCurrency,
				)
			}
			normalized = append(normalized, code)
		}
		settings.PreferredCurrencies = normalized
	}

	if input.ItemsPerPage != nil {
		if *input.ItemsPerPage < MinItemsPerPage || *input.ItemsPerPage > MaxItemsPerPage {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidItemsPerPage,
				fmt.Sprintf("items per page must be between %d and %d", MinItemsPerPage, MaxItemsPerPage),
				domainerror.ErrInvalidItemsPerPage,
			)
		}
		settings.ItemsPerPage = *input.ItemsPerPage
	}

	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &UpdateSettingsOutput{Settings: settings}, nil
}
