// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// UncategorizedName is the breakdown bucket used for expenses without a category.
const UncategorizedName = "Uncategorized"

// Category represents an expense category in the Expense Tracker system.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	Color       string
	Icon        string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
// Defaulting logic for color and icon is applied in the Application layer
// before calling this constructor.
func NewCategory(userID uuid.UUID, name, description, color, icon string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Color:       color,
		Icon:        icon,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
