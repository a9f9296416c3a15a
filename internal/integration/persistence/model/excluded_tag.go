package model

// ExcludedTagModel represents the excluded_tags table: one row per tag left out of aggregates.
type ExcludedTagModel struct {
	TagID int64 `gorm:"primaryKey;autoIncrement:false"`

	Tag *TagModel `gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the ExcludedTagModel.
func (ExcludedTagModel) TableName() string {
	return "excluded_tags"
}

// AllModels lists every model in migration order.
func AllModels() []any {
	return []any{
		&TagModel{},
		&TransactionModel{},
		&ExcludedTagModel{},
	}
}
