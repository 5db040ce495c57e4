package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EnvelopeStatus is the funding status of an envelope.
//
// swagger:enum EnvelopeStatus
type EnvelopeStatus string

const (
	EnvelopeStatusActive    EnvelopeStatus = "ACTIVE"
	EnvelopeStatusPaused    EnvelopeStatus = "PAUSED"
	EnvelopeStatusOverspent EnvelopeStatus = "OVERSPENT"
	EnvelopeStatusDepleted  EnvelopeStatus = "DEPLETED"
)

// Envelope represents an envelope in your budget.
type Envelope struct {
	DefaultModel
	CategoryID    uuid.UUID `gorm:"uniqueIndex:envelope_category_name"`
	Category      Category  `json:"-"`
	Name          string    `gorm:"uniqueIndex:envelope_category_name"`
	Note          string
	Status        EnvelopeStatus `gorm:"default:ACTIVE"`
	Priority      *uint8         // 1 is the highest priority. Unset envelopes default to 5 during allocation
	EmergencyFund bool
	Archived      bool
}

var (
	ErrEnvelopeStatusInvalid      = errors.New("the envelope status is invalid")
	ErrEnvelopePriorityOutOfRange = errors.New("the envelope priority must be between 1 and 10")
)

func (e *Envelope) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Envelope)
	return e.checkIntegrity(tx, *toSave)
}

func (e *Envelope) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Envelope)

	if tx.Statement.Changed("CategoryID") {
		err := e.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the category the envelope references exists.
func (e *Envelope) checkIntegrity(tx *gorm.DB, toSave Envelope) error {
	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Note = strings.TrimSpace(e.Note)

	if e.Status == "" {
		e.Status = EnvelopeStatusActive
	}

	switch e.Status {
	case EnvelopeStatusActive, EnvelopeStatusPaused, EnvelopeStatusOverspent, EnvelopeStatusDepleted:
	default:
		return fmt.Errorf("%w: %s", ErrEnvelopeStatusInvalid, e.Status)
	}

	if e.Priority != nil && (*e.Priority < 1 || *e.Priority > 10) {
		return ErrEnvelopePriorityOutOfRange
	}

	return nil
}

// Spent returns the amount spent from the envelope in the month.
//
// Transactions from an internal to an external account count as spending,
// transactions from an external to an internal account count as refunds
// and lower the spent amount.
func (e Envelope) Spent(db *gorm.DB, month types.Month) (decimal.Decimal, error) {
	var transactions []Transaction

	err := db.
		Joins("SourceAccount").
		Joins("DestinationAccount").
		Where("transactions.envelope_id = ?", e.ID).
		Find(&transactions).Error
	if err != nil {
		return decimal.Zero, err
	}

	spent := decimal.Zero
	for _, transaction := range transactions {
		if !month.Contains(transaction.Date) {
			continue
		}

		if !transaction.SourceAccount.External && transaction.DestinationAccount.External {
			spent = spent.Add(transaction.Amount)
		}

		if transaction.SourceAccount.External && !transaction.DestinationAccount.External {
			spent = spent.Sub(transaction.Amount)
		}
	}

	return spent, nil
}

// Allocated returns the amount allocated to the envelope for the month.
// An envelope without an allocation for the month has zero allocated.
func (e Envelope) Allocated(db *gorm.DB, month types.Month) (decimal.Decimal, error) {
	var allocation Allocation

	err := db.First(&allocation, "envelope_id = ? AND month = ?", e.ID, month).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}

		return decimal.Zero, err
	}

	return allocation.Amount, nil
}
