package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

type fakeTransactionRepo struct {
	txs []*entity.Transaction
	err error
}

func (f *fakeTransactionRepo) FindInRange(_ context.Context, r valueobject.DateRange) ([]*entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var found []*entity.Transaction
	for _, tx := range f.txs {
		if r.Contains(tx.Date) {
			found = append(found, tx)
		}
	}
	return found, nil
}

func (f *fakeTransactionRepo) GetDateBounds(_ context.Context) (*entity.TransactionDateBounds, error) {
	if f.err != nil {
		return nil, f.err
	}
	bounds := &entity.TransactionDateBounds{TotalTransactions: len(f.txs)}
	for _, tx := range f.txs {
		d := tx.Date
		if bounds.OldestDate == nil || d.Before(*bounds.OldestDate) {
			bounds.OldestDate = &d
		}
		if bounds.NewestDate == nil || d.After(*bounds.NewestDate) {
			bounds.NewestDate = &d
		}
	}
	return bounds, nil
}

type fakeTagRepo struct {
	tags []*entity.Tag
}

func (f *fakeTagRepo) FindAll(_ context.Context) ([]*entity.Tag, error) {
	return f.tags, nil
}

func (f *fakeTagRepo) FindMissingIDs(_ context.Context, ids []int64) ([]int64, error) {
	known := map[int64]bool{}
	for _, tag := range f.tags {
		known[tag.ID] = true
	}
	var missing []int64
	for _, id := range ids {
		if !known[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

type fakePreferenceRepo struct {
	excluded []int64
}

func (f *fakePreferenceRepo) GetExcludedTagIDs(_ context.Context) ([]int64, error) {
	return f.excluded, nil
}

func (f *fakePreferenceRepo) ReplaceExcludedTagIDs(_ context.Context, ids []int64) error {
	f.excluded = ids
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newTx(id int64, date time.Time, amount string, tag *entity.Tag) *entity.Transaction {
	tx := &entity.Transaction{
		ID:          id,
		Date:        date,
		Description: "tx",
		Amount:      decimal.RequireFromString(amount),
	}
	if tag != nil {
		tx.TagID = &tag.ID
		tx.TagName = &tag.Name
	}
	return tx
}
