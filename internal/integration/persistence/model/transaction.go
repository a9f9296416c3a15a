package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgeteur/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TagID       *int64          `gorm:"index"`
	ImportID    *int64          `gorm:"index"`
	CreatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Tag *TagModel `gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
// The tag name is only set when the Tag relation was preloaded.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	tx := &entity.Transaction{
		ID:          m.ID,
		Date:        time.Date(m.Date.Year(), m.Date.Month(), m.Date.Day(), 0, 0, 0, 0, time.UTC),
		Description: m.Description,
		Amount:      m.Amount,
		TagID:       m.TagID,
		ImportID:    m.ImportID,
		CreatedAt:   m.CreatedAt,
	}
	if m.Tag != nil {
		name := m.Tag.Name
		tx.TagName = &name
	}
	return tx
}

// TransactionFromEntity converts a domain Transaction entity to a TransactionModel.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          t.ID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		TagID:       t.TagID,
		ImportID:    t.ImportID,
		CreatedAt:   t.CreatedAt,
	}
}
