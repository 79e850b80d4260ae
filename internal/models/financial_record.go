package models

import "time"

const (
	RecordTypeRevenue = "receita"
	RecordTypeExpense = "despesa"
)

type FinancialRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Description string  `gorm:"size:255;not null" json:"description"`
	Amount      float64 `gorm:"not null" json:"amount"`

	// receita ou despesa
	RecordType string `gorm:"size:20;not null" json:"record_type"`
	Category   string `gorm:"size:50" json:"category"`

	RecordDate time.Time `json:"record_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
