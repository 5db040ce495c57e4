package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a transaction between two accounts.
type Transaction struct {
	DefaultModel
	Date                 time.Time
	Amount               decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note                 string
	SourceAccountID      uuid.UUID `gorm:"check:source_destination_different,source_account_id != destination_account_id"`
	SourceAccount        Account   `json:"-"`
	DestinationAccountID uuid.UUID
	DestinationAccount   Account `json:"-"`
	EnvelopeID           *uuid.UUID
	Envelope             *Envelope `json:"-"`
	Reconciled           bool
}

var ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies that all resources the transaction
// references exist.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	err := tx.First(&Account{}, toSave.SourceAccountID).Error
	if err != nil {
		return err
	}

	err = tx.First(&Account{}, toSave.DestinationAccountID).Error
	if err != nil {
		return err
	}

	if toSave.EnvelopeID != nil {
		return tx.First(&Envelope{}, toSave.EnvelopeID).Error
	}

	return nil
}

// BeforeSave sets the timezone for the date to UTC and verifies the amount.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Note = strings.TrimSpace(t.Note)

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}
