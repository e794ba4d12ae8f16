// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for settings update.
// All fields are optional; absent fields are left unchanged.
type UpdateSettingsRequest struct {
	DefaultCurrency     *string  `json:"default_currency,omitempty" binding:"omitempty,len=3"`
	PreferredCurrencies []string `json:"preferred_currencies,omitempty"`
	ItemsPerPage        *int     `json:"items_per_page,omitempty"`
}

// SettingsResponse represents user settings in API responses.
type SettingsResponse struct {
	DefaultCurrency     string    `json:"default_currency"`
	PreferredCurrencies []string  `json:"preferred_currencies"`
	ItemsPerPage        int       `json:"items_per_page"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ToSettingsResponse converts a domain UserSettings entity to a SettingsResponse DTO.
func ToSettingsResponse(settings *entity.UserSettings) SettingsResponse {
	return SettingsResponse{
		DefaultCurrency:     settings.DefaultCurrency,
		PreferredCurrencies: settings.PreferredCurrencies,
		ItemsPerPage:        settings.ItemsPerPage,
		UpdatedAt:           settings.UpdatedAt,
	}
}
