// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is the currency assigned to new users.
const DefaultCurrency = "USD"

// DefaultPreferredCurrencies is the currency list offered on expense forms
// until the user customizes it.
var DefaultPreferredCurrencies = []string{"USD", "EUR", "GBP", "AUD"}

// UserSettings holds per-user display preferences consumed by the report and
// presentation layers.
type UserSettings struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	DefaultCurrency     string
	PreferredCurrencies []string
	ItemsPerPage        int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewUserSettings creates settings with default values for a new user.
func NewUserSettings(userID uuid.UUID) *UserSettings {
	now := time.Now().UTC()
	return &UserSettings{
		ID:                  uuid.New(),
		UserID:              userID,
		DefaultCurrency:     DefaultCurrency,
		PreferredCurrencies: append([]string(nil), DefaultPreferredCurrencies...),
		ItemsPerPage:        10,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
