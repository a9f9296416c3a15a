package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

func day(year int, month time.Month, d int) time.Time {
	return valueobject.NewDate(year, month, d)
}

func newTx(id int64, date time.Time, amount string) *entity.Transaction {
	return &entity.Transaction{
		ID:          id,
		Date:        date,
		Description: "tx",
		Amount:      decimal.RequireFromString(amount),
	}
}

func tagged(tx *entity.Transaction, tagID int64, name string) *entity.Transaction {
	tx.TagID = &tagID
	tx.TagName = &name
	return tx
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
