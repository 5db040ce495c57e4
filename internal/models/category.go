package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups envelopes in a budget.
type Category struct {
	DefaultModel
	BudgetID uuid.UUID `gorm:"uniqueIndex:category_budget_name"`
	Budget   Budget    `json:"-"`
	Name     string    `gorm:"uniqueIndex:category_budget_name"`
	Note     string
	Archived bool
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	return c.checkIntegrity(tx, *toSave)
}

func (c *Category) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Category)

	if tx.Statement.Changed("BudgetID") {
		err := c.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the budget the category references exists.
func (c *Category) checkIntegrity(tx *gorm.DB, toSave Category) error {
	return tx.First(&Budget{}, toSave.BudgetID).Error
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}

// Envelopes returns all envelopes for the category.
func (c Category) Envelopes(db *gorm.DB) ([]Envelope, error) {
	var envelopes []Envelope

	err := db.Where(&Envelope{CategoryID: c.ID}).Find(&envelopes).Error
	if err != nil {
		return []Envelope{}, err
	}

	return envelopes, nil
}
