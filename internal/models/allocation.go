package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allocation is the amount of money an envelope receives for one month.
// Applying an allocation preview creates or updates these resources.
type Allocation struct {
	Timestamps
	EnvelopeID uuid.UUID       `gorm:"primaryKey"` // ID of the envelope
	Envelope   Envelope        `json:"-"`
	Month      types.Month     `gorm:"primaryKey"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note       string
}

var (
	ErrAllocationMonthNotUnique = errors.New("you can not create multiple allocations for the same envelope and month")
	ErrAllocationAmountNegative = errors.New("allocation amounts must not be negative")
	ErrAllocationMonthNotSet    = errors.New("the month for an allocation must be set")
)

func (a *Allocation) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*Allocation)
	return tx.First(&Envelope{}, toSave.EnvelopeID).Error
}

func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	a.Note = strings.TrimSpace(a.Note)

	if a.Month.IsZero() {
		return ErrAllocationMonthNotSet
	}

	if a.Amount.IsNegative() {
		return ErrAllocationAmountNegative
	}

	return nil
}
