package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budgeteur/backend/internal/domain/valueobject"
	"github.com/budgeteur/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

func seedTag(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	tag := &model.TagModel{Name: name, CreatedAt: time.Now().UTC()}
	require.NoError(t, db.Create(tag).Error)
	return tag.ID
}

func seedTransaction(t *testing.T, db *gorm.DB, date time.Time, amount string, tagID *int64) int64 {
	t.Helper()
	tx := &model.TransactionModel{
		Date:        date,
		Description: "seed",
		Amount:      decimal.RequireFromString(amount),
		TagID:       tagID,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, db.Create(tx).Error)
	return tx.ID
}

func TestTransactionRepository_FindInRange(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	food := seedTag(t, db, "Food")
	first := seedTransaction(t, db, valueobject.NewDate(2024, 9, 10), "-12.50", &food)
	second := seedTransaction(t, db, valueobject.NewDate(2024, 9, 10), "-3", nil)
	later := seedTransaction(t, db, valueobject.NewDate(2024, 9, 30), "1500", nil)
	seedTransaction(t, db, valueobject.NewDate(2024, 10, 1), "-1", nil)
	seedTransaction(t, db, valueobject.NewDate(2024, 8, 31), "-1", nil)

	september := valueobject.RangeFor(valueobject.RangeMonth, valueobject.NewDate(2024, 9, 1))
	txs, err := repo.FindInRange(ctx, september)
	require.NoError(t, err)

	require.Len(t, txs, 3)
	assert.Equal(t, []int64{later, first, second}, []int64{txs[0].ID, txs[1].ID, txs[2].ID})
	assert.True(t, txs[1].Amount.Equal(decimal.RequireFromString("-12.5")))
	require.NotNil(t, txs[1].TagName)
	assert.Equal(t, "Food", *txs[1].TagName)
	assert.Equal(t, "Other", txs[2].TagLabel())
	assert.True(t, txs[0].Date.Equal(valueobject.NewDate(2024, 9, 30)))
}

func TestTransactionRepository_GetDateBounds(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	bounds, err := repo.GetDateBounds(ctx)
	require.NoError(t, err)
	assert.False(t, bounds.HasData())

	seedTransaction(t, db, valueobject.NewDate(2024, 3, 2), "-1", nil)
	seedTransaction(t, db, valueobject.NewDate(2023, 11, 20), "-1", nil)
	seedTransaction(t, db, valueobject.NewDate(2024, 1, 5), "-1", nil)

	bounds, err = repo.GetDateBounds(ctx)
	require.NoError(t, err)
	require.True(t, bounds.HasData())
	assert.Equal(t, 3, bounds.TotalTransactions)
	assert.True(t, bounds.OldestDate.Equal(valueobject.NewDate(2023, 11, 20)))
	assert.True(t, bounds.NewestDate.Equal(valueobject.NewDate(2024, 3, 2)))
}

func TestTagRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	rent := seedTag(t, db, "Rent")
	food := seedTag(t, db, "Food")

	tags, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Food", tags[0].Name)
	assert.Equal(t, "Rent", tags[1].Name)

	missing, err := repo.FindMissingIDs(ctx, []int64{rent, 999, food})
	require.NoError(t, err)
	assert.Equal(t, []int64{999}, missing)
}

func TestPreferenceRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewPreferenceRepository(db)
	ctx := context.Background()

	food := seedTag(t, db, "Food")
	rent := seedTag(t, db, "Rent")

	ids, err := repo.GetExcludedTagIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, repo.ReplaceExcludedTagIDs(ctx, []int64{rent, food}))
	ids, err = repo.GetExcludedTagIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{food, rent}, ids)

	require.NoError(t, repo.ReplaceExcludedTagIDs(ctx, []int64{rent}))
	ids, err = repo.GetExcludedTagIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{rent}, ids)

	t.Run("deleting a tag drops its exclusion", func(t *testing.T) {
		require.NoError(t, db.Delete(&model.TagModel{}, rent).Error)
		ids, err := repo.GetExcludedTagIDs(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("empty replace clears", func(t *testing.T) {
		require.NoError(t, repo.ReplaceExcludedTagIDs(ctx, []int64{food}))
		require.NoError(t, repo.ReplaceExcludedTagIDs(ctx, nil))
		ids, err := repo.GetExcludedTagIDs(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}
