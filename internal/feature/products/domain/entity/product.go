// Package entity defines the persisted product record.
package entity

import "github.com/shopspring/decimal"

// Product is a catalogue entry. Deleting a product that orders reference is
// not guarded here; the database foreign key has the last word.
type Product struct {
	ID    int64           `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"size:255;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
}
