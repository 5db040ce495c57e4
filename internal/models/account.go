package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account represents an asset account (internal) or a
// payee/payer (external).
type Account struct {
	DefaultModel
	BudgetID uuid.UUID `gorm:"uniqueIndex:account_budget_name"`
	Budget   Budget    `json:"-"`
	Name     string    `gorm:"uniqueIndex:account_budget_name"`
	Note     string
	External bool
	Archived bool
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Account)
	return a.checkIntegrity(tx, *toSave)
}

func (a *Account) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Account)

	if tx.Statement.Changed("BudgetID") {
		err := a.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the budget the account references exists.
func (a *Account) checkIntegrity(tx *gorm.DB, toSave Account) error {
	return tx.First(&Budget{}, toSave.BudgetID).Error
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	return nil
}
