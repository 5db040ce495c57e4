package models

import (
	"errors"
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Budget represents a budget
//
// A budget is the highest level of organization in PocketPlan, all other
// resources reference it directly or transitively.
type Budget struct {
	DefaultModel
	Name     string
	Note     string
	Currency string
	Archived bool
}

var ErrBudgetCurrencyInvalid = errors.New("the currency for a budget must be a valid ISO 4217 code")

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)
	b.Currency = strings.ToUpper(strings.TrimSpace(b.Currency))

	if b.Currency != "" {
		if _, err := currency.ParseISO(b.Currency); err != nil {
			return ErrBudgetCurrencyInvalid
		}
	}

	return nil
}
