// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.CategoryModel{}, &model.ExpenseModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedCategory(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *entity.Category {
	t.Helper()

	category := entity.NewCategory(userID, name, "", entity.DefaultCategoryColor, entity.DefaultCategoryIcon)
	if err := NewCategoryRepository(db).Create(context.Background(), category); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return category
}

func seedExpense(t *testing.T, repo adapter.ExpenseRepository, expense *entity.Expense) {
	t.Helper()

	if err := repo.Create(context.Background(), expense); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}
}

func TestExpenseRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	userID := uuid.New()

	expense := entity.NewExpense(
		userID, nil, "Desk lamp",
		decimal.NewFromFloat(49.99), "USD",
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		true, false, nil, nil,
	)
	seedExpense(t, repo, expense)

	t.Run("round-trips an expense", func(t *testing.T) {
		found, err := repo.FindByID(ctx, expense.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.Amount.Equal(decimal.NewFromFloat(49.99)) {
			t.Errorf("expected amount 49.99, got %s", found.Amount)
		}
		if found.Currency != "USD" || !found.IsTaxDeductible {
			t.Errorf("unexpected fields: %+v", found)
		}
	})

	t.Run("update persists changes", func(t *testing.T) {
		expense.Description = "Desk lamp (replacement)"
		expense.Amount = decimal.NewFromFloat(59.99)
		if err := repo.Update(ctx, expense); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, expense.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Description != "Desk lamp (replacement)" {
			t.Errorf("unexpected description %q", found.Description)
		}
	})

	t.Run("delete is soft and hides the record", func(t *testing.T) {
		if err := repo.Delete(ctx, expense.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := repo.FindByID(ctx, expense.ID)
		if !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}

		var count int64
		db.Model(&model.ExpenseModel{}).Unscoped().Where("id = ?", expense.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected soft-deleted row to remain, got %d rows", count)
		}
	})
}

func TestExpenseRepository_FindByUserAndPeriod(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	userID := uuid.New()
	food := seedCategory(t, db, userID, "Food")

	inPeriod := entity.NewExpense(
		userID, &food.ID, "Groceries",
		decimal.NewFromInt(80), "USD",
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		true, false, nil, nil,
	)
	beforePeriod := entity.NewExpense(
		userID, nil, "Old purchase",
		decimal.NewFromInt(10), "USD",
		time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC),
		true, false, nil, nil,
	)
	otherUser := entity.NewExpense(
		uuid.New(), nil, "Not mine",
		decimal.NewFromInt(10), "USD",
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		true, false, nil, nil,
	)
	seedExpense(t, repo, inPeriod)
	seedExpense(t, repo, beforePeriod)
	seedExpense(t, repo, otherUser)

	expenses, err := repo.FindByUserAndPeriod(ctx, userID,
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}
	if expenses[0].Expense.Description != "Groceries" {
		t.Errorf("unexpected expense %q", expenses[0].Expense.Description)
	}
	if expenses[0].CategoryName() != "Food" {
		t.Errorf("expected category Food, got %q", expenses[0].CategoryName())
	}
}

func TestExpenseRepository_Pagination(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	userID := uuid.New()

	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedExpense(t, repo, entity.NewExpense(
			userID, nil, "Item",
			decimal.NewFromInt(int64(i+1)), "USD",
			base.AddDate(0, 0, i),
			false, false, nil, nil,
		))
	}

	result, err := repo.FindByUser(ctx, userID, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Total != 5 || result.TotalPages != 3 {
		t.Errorf("expected total 5 over 3 pages, got %d over %d", result.Total, result.TotalPages)
	}
	if len(result.Expenses) != 2 {
		t.Fatalf("expected 2 expenses on the page, got %d", len(result.Expenses))
	}
	// Newest first.
	if !result.Expenses[0].Expense.Amount.Equal(decimal.NewFromInt(5)) {
		t.Errorf("expected newest expense first, got amount %s", result.Expenses[0].Expense.Amount)
	}
}

func TestExpenseRepository_Search(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	userID := uuid.New()
	food := seedCategory(t, db, userID, "Food")

	monthly := entity.FrequencyMonthly
	date := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	seedExpense(t, repo, entity.NewExpense(userID, &food.ID, "Lunch meeting", decimal.NewFromInt(30), "USD", date, true, false, nil, nil))
	seedExpense(t, repo, entity.NewExpense(userID, nil, "Software subscription", decimal.NewFromInt(15), "EUR", date, false, true, &monthly, nil))

	t.Run("filters by search term", func(t *testing.T) {
		result, err := repo.Search(ctx, userID, adapter.ExpenseFilter{SearchTerm: "subscription"}, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 1 || result.Expenses[0].Expense.Description != "Software subscription" {
			t.Errorf("unexpected result: total=%d", result.Total)
		}
	})

	t.Run("filters by currency and deductible flag", func(t *testing.T) {
		usd := "USD"
		deductible := true
		result, err := repo.Search(ctx, userID, adapter.ExpenseFilter{
			Currency:        &usd,
			IsTaxDeductible: &deductible,
		}, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 1 || result.Expenses[0].Expense.Description != "Lunch meeting" {
			t.Errorf("unexpected result: total=%d", result.Total)
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		result, err := repo.Search(ctx, userID, adapter.ExpenseFilter{CategoryID: &food.ID}, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 1 {
			t.Errorf("expected 1 match, got %d", result.Total)
		}
	})
}

func TestExpenseRepository_FindRecurring(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	userID := uuid.New()

	weekly := entity.FrequencyWeekly
	date := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	seedExpense(t, repo, entity.NewExpense(userID, nil, "Gym", decimal.NewFromInt(20), "USD", date, false, true, &weekly, nil))
	seedExpense(t, repo, entity.NewExpense(userID, nil, "One-off", decimal.NewFromInt(99), "USD", date, false, false, nil, nil))

	expenses, err := repo.FindRecurring(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(expenses) != 1 {
		t.Fatalf("expected 1 recurring expense, got %d", len(expenses))
	}
	if expenses[0].Expense.RecurringFrequency == nil || *expenses[0].Expense.RecurringFrequency != entity.FrequencyWeekly {
		t.Errorf("unexpected frequency %v", expenses[0].Expense.RecurringFrequency)
	}
}
